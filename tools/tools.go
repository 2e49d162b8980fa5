package tools

import (
	"context"

	mcp "github.com/metoro-io/mcp-golang"
)

// McpServerRegistrator is the registration surface of an MCP server; the
// metoro-io server satisfies it. Keeping the dispatch table behind this
// interface decouples the tools from any specific protocol transport.
type McpServerRegistrator interface {
	RegisterTool(name string, description string, handler any) error
}

// ITool is a named operation with a declared parameter schema.
type ITool interface {
	// Name returns the name of the Tool.
	Name() string
	// Description returns the description of the tool, to be used in the
	// operation listing.
	Description() string
	// Parameters returns the parameters definition of the operation.
	Parameters() any

	// Call executes the tool with the given input and returns the result.
	Call(context.Context, string) (string, error)
}

type Tool[I any, O any] interface {
	ITool
	Run(context.Context, *I) (*O, error)
}

// IMCPTool is an interface that extends ITool to include functionality for
// registering the tool with an MCP server.
// The RegisterMCP method allows the tool to be registered with a given
// MCP Server.
type IMCPTool interface {
	ITool
	RegisterMCP(registrator McpServerRegistrator) error
}

type MCPTool[I any] interface {
	IMCPTool
	RunMCP(context.Context, *I) (*mcp.ToolResponse, error)
}
