package gongcalls_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zentriq/gong-mcp/pkg/gong"
	"github.com/zentriq/gong-mcp/pkg/jsonutil"
	"github.com/zentriq/gong-mcp/tools/gongcalls"
)

func newTestGongClient(t *testing.T, handler http.HandlerFunc) *gong.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &gong.Config{
		AccessKey:    "key1",
		AccessSecret: "secret1",
	}
	return gong.New(cfg).
		WithBaseURL(server.URL).
		WithHTTPClient(server.Client())
}

func Test_ListCallsTool(t *testing.T) {
	client := newTestGongClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/calls", r.URL.Path)
		assert.Equal(t, "2024-03-01T00:00:00Z", r.URL.Query().Get("fromDateTime"))

		_ = json.NewEncoder(w).Encode(gong.CallsResponse{
			Calls: []gong.Call{{ID: "id1", Title: "Weekly sync", Duration: 1800}},
		})
	})

	tool, err := gongcalls.NewListCalls(client)
	require.NoError(t, err)

	assert.Equal(t, gongcalls.ListCallsToolName, tool.Name())
	assert.Contains(t, tool.Description(), "date range")

	expParams := `{
	"type": "object",
	"properties": {
		"fromDateTime": {
			"type": "string",
			"title": "From",
			"description": "Start date/time in ISO format (e.g. 2024-03-01T00:00:00Z)."
		},
		"toDateTime": {
			"type": "string",
			"title": "To",
			"description": "End date/time in ISO format (e.g. 2024-03-31T23:59:59Z)."
		}
	}
}`
	require.JSONEq(t, expParams, jsonutil.ToJSON(tool.Parameters()))

	ctx := context.Background()

	out, err := tool.Call(ctx, `{"fromDateTime": "2024-03-01T00:00:00Z"}`)
	require.NoError(t, err)
	// pretty-printed pass-through of the remote response
	assert.Contains(t, out, "\t\t\t\"id\": \"id1\"")
	assert.Contains(t, out, `"title": "Weekly sync"`)

	_, err = tool.Call(ctx, "not json at all")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal input")
}

func Test_ListCallsTool_RunMCP(t *testing.T) {
	client := newTestGongClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(gong.CallsResponse{
			Calls: []gong.Call{{ID: "id1", Title: "Weekly sync"}},
		})
	})

	tool, err := gongcalls.NewListCalls(client)
	require.NoError(t, err)

	resp, err := tool.RunMCP(context.Background(), &gongcalls.ListCallsRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Content, 1)

	text := resp.Content[0].TextContent.Text
	assert.Contains(t, text, `"id": "id1"`)
}

func Test_ListCallsTool_RemoteErrorInBand(t *testing.T) {
	client := newTestGongClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"errors":["boom"]}`))
	})

	tool, err := gongcalls.NewListCalls(client)
	require.NoError(t, err)

	// the MCP boundary converts the failure to data, never an error
	resp, err := tool.RunMCP(context.Background(), &gongcalls.ListCallsRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Content, 1)

	var payload map[string]string
	require.NoError(t, json.Unmarshal([]byte(resp.Content[0].TextContent.Text), &payload))
	assert.Contains(t, payload["error"], "status 500")
}
