package gong

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strings"
)

// Signature computes the HMAC-SHA256 request signature keyed by the access
// secret. The string-to-sign joins method, path, timestamp and the serialized
// payload with newlines, in that order; the path excludes the query string,
// and payload is empty when the request carries neither body nor parameters.
// The result is the base64 encoding of the raw digest.
func Signature(secret []byte, method, path, timestamp string, payload []byte) string {
	stringToSign := strings.Join([]string{method, path, timestamp, string(payload)}, "\n")

	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(stringToSign))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
