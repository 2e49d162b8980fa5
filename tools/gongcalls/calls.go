// Package gongcalls exposes the Gong calls API as MCP tools: one to list
// calls, one to retrieve transcripts. Successful results are the remote JSON
// pretty-printed; failures become an in-band {"error": ...} payload at the
// MCP boundary.
package gongcalls

import (
	"context"
	"encoding/json"
	"reflect"

	"github.com/cockroachdb/errors"
	mcp "github.com/metoro-io/mcp-golang"

	"github.com/zentriq/gong-mcp/pkg/gong"
	"github.com/zentriq/gong-mcp/pkg/jsonutil"
	"github.com/zentriq/gong-mcp/pkg/schema"
	"github.com/zentriq/gong-mcp/tools"
)

const ListCallsToolName = "listCalls"

// ListCallsRequest represents the tool input.
type ListCallsRequest struct {
	FromDateTime string `json:"fromDateTime,omitempty" yaml:"fromDateTime,omitempty" jsonschema:"title=From,description=Start date/time in ISO format (e.g. 2024-03-01T00:00:00Z)."`
	ToDateTime   string `json:"toDateTime,omitempty" yaml:"toDateTime,omitempty" jsonschema:"title=To,description=End date/time in ISO format (e.g. 2024-03-31T23:59:59Z)."`
}

// Result holds the remote JSON response verbatim.
type Result struct {
	Raw json.RawMessage `json:"-"`
}

func (r *Result) String() string {
	return jsonutil.JSONIndent(string(r.Raw))
}

// ListCallsTool lists Gong calls with optional date range filtering.
type ListCallsTool struct {
	name        string
	description string
	funcParams  any

	client *gong.Client
}

var _ tools.Tool[ListCallsRequest, Result] = (*ListCallsTool)(nil)
var _ tools.MCPTool[ListCallsRequest] = (*ListCallsTool)(nil)

func NewListCalls(client *gong.Client) (*ListCallsTool, error) {
	sc, err := schema.New(reflect.TypeOf(ListCallsRequest{}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create schema")
	}
	tool := &ListCallsTool{
		name:        ListCallsToolName,
		description: "List Gong calls with optional date range filtering. Returns call details including ID, title, start/end times, participants, and duration.",
		funcParams:  sc.Parameters,
		client:      client,
	}
	return tool, nil
}

func (t *ListCallsTool) Name() string {
	return t.name
}

func (t *ListCallsTool) Description() string {
	return t.description
}

func (t *ListCallsTool) Parameters() any {
	return t.funcParams
}

func (t *ListCallsTool) Run(ctx context.Context, req *ListCallsRequest) (*Result, error) {
	raw, err := t.client.ListCalls(ctx, req.FromDateTime, req.ToDateTime)
	if err != nil {
		return nil, err
	}
	return &Result{Raw: raw}, nil
}

func (t *ListCallsTool) Call(ctx context.Context, input string) (string, error) {
	var req ListCallsRequest
	if err := json.Unmarshal(jsonutil.CleanJSON([]byte(input)), &req); err != nil {
		return "", errors.Wrap(err, "failed to unmarshal input")
	}
	out, err := t.Run(ctx, &req)
	if err != nil {
		return "", err
	}
	return out.String(), nil
}

func (t *ListCallsTool) RegisterMCP(registrator tools.McpServerRegistrator) error {
	return registrator.RegisterTool(t.name, t.description, t.RunMCP)
}

// RunMCP is the protocol boundary: failures are converted into the uniform
// {"error": ...} payload, never surfaced as a transport-level error.
func (t *ListCallsTool) RunMCP(ctx context.Context, req *ListCallsRequest) (*mcp.ToolResponse, error) {
	res, err := t.Run(ctx, req)
	if err != nil {
		return mcp.NewToolResponse(mcp.NewTextContent(jsonutil.ErrorJSON(err))), nil
	}
	return mcp.NewToolResponse(mcp.NewTextContent(res.String())), nil
}
