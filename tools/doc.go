// Package tools defines the Tool interface, including registration, parameter schema, and MCP integration. Tools expose external systems and APIs in a structured, extensible way.
package tools
