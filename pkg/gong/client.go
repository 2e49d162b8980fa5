package gong

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/xlog"
)

var logger = xlog.NewPackageLogger("github.com/zentriq/gong-mcp", "gong")

// timestampFormat renders UTC instants as ISO-8601 with a microsecond
// fraction and a literal Z, the form the signing contract expects.
const timestampFormat = "2006-01-02T15:04:05.000000Z"

// Client issues signed requests against the Gong API. Credentials are
// immutable for the client's lifetime; Close releases the held connections.
type Client struct {
	cfg        *Config
	httpClient *http.Client
	basicAuth  string
}

// New creates a Client from the configuration.
func New(cfg *Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
		basicAuth:  base64.StdEncoding.EncodeToString([]byte(cfg.AccessKey + ":" + cfg.AccessSecret)),
	}
}

// WithHTTPClient sets the HTTP client to use.
func (c *Client) WithHTTPClient(client *http.Client) *Client {
	c.httpClient = client
	return c
}

// WithBaseURL sets the API endpoint.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.cfg.BaseURL = baseURL
	return c
}

// Close releases the idle connections held by the underlying transport.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// ListCalls returns the calls in the optional date range. Empty bounds are
// omitted from both the request and the signed payload.
func (c *Client) ListCalls(ctx context.Context, fromDateTime, toDateTime string) (json.RawMessage, error) {
	params := map[string]string{}
	if fromDateTime != "" {
		params["fromDateTime"] = fromDateTime
	}
	if toDateTime != "" {
		params["toDateTime"] = toDateTime
	}
	return c.do(ctx, http.MethodGet, "/calls", params, nil)
}

// RetrieveTranscripts returns the transcripts for the given call IDs, with
// entities, interaction summaries and trackers included.
func (c *Client) RetrieveTranscripts(ctx context.Context, callIDs []string) (json.RawMessage, error) {
	req := &TranscriptRequest{
		Filter: TranscriptFilter{
			CallIDs:                    callIDs,
			IncludeEntities:            true,
			IncludeInteractionsSummary: true,
			IncludeTrackers:            true,
		},
	}
	return c.do(ctx, http.MethodPost, "/calls/transcript", nil, req)
}

// do executes one signed request. The signing payload is the compact JSON of
// the body when one is present, of the query parameters otherwise, empty when
// neither exists. The timestamp is regenerated per call, so a signature is
// never valid for more than the request it was derived for.
func (c *Client) do(ctx context.Context, method, path string, params map[string]string, body any) (json.RawMessage, error) {
	timestamp := time.Now().UTC().Format(timestampFormat)

	var payload []byte
	var bodyJSON []byte
	if body != nil {
		js, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal request body")
		}
		bodyJSON = js
		payload = js
	} else if len(params) > 0 {
		// map keys marshal sorted, so the signed form is canonical
		js, err := json.Marshal(params)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal request parameters")
		}
		payload = js
	}

	endpoint := c.cfg.BaseURL + path
	if len(params) > 0 {
		q := url.Values{}
		for k, v := range params {
			q.Set(k, v)
		}
		endpoint += "?" + q.Encode()
	}

	var rd io.Reader
	if bodyJSON != nil {
		rd = bytes.NewReader(bodyJSON)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, rd)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Basic "+c.basicAuth)
	req.Header.Set("X-Gong-AccessKey", c.cfg.AccessKey)
	req.Header.Set("X-Gong-Timestamp", timestamp)
	req.Header.Set("X-Gong-Signature", Signature([]byte(c.cfg.AccessSecret), method, path, timestamp, payload))

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.WithMessagef(err, "request failed: %s %s", method, path)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to read response: %s %s", method, path)
	}

	if res.StatusCode >= http.StatusMultipleChoices {
		logger.ContextKV(ctx, xlog.ERROR,
			"method", method,
			"path", path,
			"status", res.StatusCode,
		)
		return nil, errors.Errorf("request failed: %s %s: status %d: %s", method, path, res.StatusCode, snippet(data))
	}

	if !json.Valid(data) {
		return nil, errors.Errorf("invalid JSON response: %s %s", method, path)
	}

	logger.ContextKV(ctx, xlog.DEBUG,
		"method", method,
		"path", path,
		"status", res.StatusCode,
		"size", len(data),
	)
	return json.RawMessage(data), nil
}

const maxSnippet = 256

func snippet(body []byte) string {
	if len(body) > maxSnippet {
		body = body[:maxSnippet]
	}
	return string(bytes.TrimSpace(body))
}
