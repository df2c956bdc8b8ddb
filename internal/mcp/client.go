package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"compkit/internal/api"
	"compkit/internal/clone"
	"compkit/internal/conversation"
)

// maxResponseBytes bounds API responses; clone replies carry base64 screenshots.
const maxResponseBytes = 64 << 20

// ErrUnreachable wraps transport failures talking to the HTTP API.
var ErrUnreachable = errors.New("component API unreachable")

// APIError is a non-2xx reply from the HTTP API.
type APIError struct {
	Status  int
	Message string
	Body    []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API returned %d: %s", e.Status, e.Message)
}

// Client calls the compkit HTTP API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a Client for baseURL with a per-request timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string { return c.baseURL }

func (c *Client) post(ctx context.Context, path string, in, out interface{}) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("%w: read response: %w", ErrUnreachable, err)
	}

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode), Body: data}
		var msg struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(data, &msg) == nil && msg.Error != "" {
			apiErr.Message = msg.Error
		}
		return apiErr
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response from %s: %w", path, err)
	}
	return nil
}

// ListComponents calls POST /api/component/list.
func (c *Client) ListComponents(ctx context.Context, req api.ListRequest) (*api.ListResponse, error) {
	var out api.ListResponse
	if err := c.post(ctx, "/api/component/list", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ComponentDetails calls POST /api/component/details. A 404 is not an error:
// the reply carries the not-found Markdown with Metadata.Found false.
func (c *Client) ComponentDetails(ctx context.Context, req api.DetailsRequest) (*api.DetailsResponse, error) {
	var out api.DetailsResponse
	err := c.post(ctx, "/api/component/details", req, &out)

	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
		if jerr := json.Unmarshal(apiErr.Body, &out); jerr == nil && out.Result != "" {
			return &out, nil
		}
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Clone calls POST /api/clone.
func (c *Client) Clone(ctx context.Context, req clone.Request) (*clone.Response, error) {
	var out clone.Response
	if err := c.post(ctx, "/api/clone", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Template calls POST /api/template.
func (c *Client) Template(ctx context.Context, req api.ConversationRequest) (*conversation.Reply, error) {
	return c.converse(ctx, "/api/template", req)
}

// Landing calls POST /api/landing.
func (c *Client) Landing(ctx context.Context, req api.ConversationRequest) (*conversation.Reply, error) {
	return c.converse(ctx, "/api/landing", req)
}

func (c *Client) converse(ctx context.Context, path string, req api.ConversationRequest) (*conversation.Reply, error) {
	var out conversation.Reply
	if err := c.post(ctx, path, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
