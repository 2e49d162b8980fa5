// Package gong provides an authenticated client for the Gong call-recording
// API. Every outbound request is signed with HMAC-SHA256 over the request's
// method, path, timestamp and payload.
package gong
