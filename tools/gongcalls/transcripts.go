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

const RetrieveTranscriptsToolName = "retrieveTranscripts"

// RetrieveTranscriptsRequest represents the tool input.
type RetrieveTranscriptsRequest struct {
	CallIDs []string `json:"callIds" yaml:"callIds" jsonschema:"title=Call IDs,description=Array of Gong call IDs to retrieve transcripts for."`
}

// RetrieveTranscriptsTool retrieves transcripts for the specified call IDs.
type RetrieveTranscriptsTool struct {
	name        string
	description string
	funcParams  any

	client *gong.Client
}

var _ tools.Tool[RetrieveTranscriptsRequest, Result] = (*RetrieveTranscriptsTool)(nil)
var _ tools.MCPTool[RetrieveTranscriptsRequest] = (*RetrieveTranscriptsTool)(nil)

func NewRetrieveTranscripts(client *gong.Client) (*RetrieveTranscriptsTool, error) {
	sc, err := schema.New(reflect.TypeOf(RetrieveTranscriptsRequest{}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create schema")
	}
	tool := &RetrieveTranscriptsTool{
		name:        RetrieveTranscriptsToolName,
		description: "Retrieve transcripts for specified call IDs. Returns detailed transcripts including speaker IDs, topics, and timestamped sentences.",
		funcParams:  sc.Parameters,
		client:      client,
	}
	return tool, nil
}

func (t *RetrieveTranscriptsTool) Name() string {
	return t.name
}

func (t *RetrieveTranscriptsTool) Description() string {
	return t.description
}

func (t *RetrieveTranscriptsTool) Parameters() any {
	return t.funcParams
}

func (t *RetrieveTranscriptsTool) Run(ctx context.Context, req *RetrieveTranscriptsRequest) (*Result, error) {
	if len(req.CallIDs) == 0 {
		return nil, errors.New("invalid request: empty callIds")
	}
	raw, err := t.client.RetrieveTranscripts(ctx, req.CallIDs)
	if err != nil {
		return nil, err
	}
	return &Result{Raw: raw}, nil
}

func (t *RetrieveTranscriptsTool) Call(ctx context.Context, input string) (string, error) {
	var req RetrieveTranscriptsRequest
	if err := json.Unmarshal(jsonutil.CleanJSON([]byte(input)), &req); err != nil {
		return "", errors.Wrap(err, "failed to unmarshal input")
	}
	out, err := t.Run(ctx, &req)
	if err != nil {
		return "", err
	}
	return out.String(), nil
}

func (t *RetrieveTranscriptsTool) RegisterMCP(registrator tools.McpServerRegistrator) error {
	return registrator.RegisterTool(t.name, t.description, t.RunMCP)
}

// RunMCP converts failures into the uniform {"error": ...} payload so the
// host protocol never sees a domain failure out-of-band.
func (t *RetrieveTranscriptsTool) RunMCP(ctx context.Context, req *RetrieveTranscriptsRequest) (*mcp.ToolResponse, error) {
	res, err := t.Run(ctx, req)
	if err != nil {
		return mcp.NewToolResponse(mcp.NewTextContent(jsonutil.ErrorJSON(err))), nil
	}
	return mcp.NewToolResponse(mcp.NewTextContent(res.String())), nil
}
