package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"compkit/internal/api"
	"compkit/internal/catalog"
	"compkit/internal/clone"
	"compkit/internal/config"
	"compkit/internal/conversation"
	"compkit/internal/logging"
	"compkit/internal/patterns"
	"compkit/internal/screenshot"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCapturer struct{}

func (stubCapturer) Capture(ctx context.Context, url string, opts screenshot.Options) (*screenshot.Capture, error) {
	return &screenshot.Capture{
		ID:        "cap-1",
		Image:     "aW1n",
		MimeType:  "image/png",
		Width:     1280,
		Height:    800,
		URL:       url,
		Timestamp: time.Now(),
		HTML:      "<title>Pricing plans</title>",
	}, nil
}

func (stubCapturer) Get(id string) (*screenshot.Capture, bool) { return nil, false }

// newTestServer returns an MCP server talking to a live in-process API.
func newTestServer(t *testing.T) *Server {
	t.Helper()
	logger, _ := logging.NewTestLogger()
	cat := catalog.Default()
	matcher := patterns.Default(logger)

	cfg := config.DefaultConfig()
	apiSrv, err := api.NewServer(cfg, api.Services{
		Catalog:  cat,
		Clone:    clone.NewService(cat, matcher, stubCapturer{}, 5, logger),
		Template: conversation.NewTemplateFlow(cat, matcher, logger),
		Landing:  conversation.NewLandingFlow(cat, matcher, logger),
	}, logger)
	require.NoError(t, err)

	ts := httptest.NewServer(apiSrv.Handler())
	t.Cleanup(ts.Close)

	cfg.APIURL = ts.URL
	cfg.ClientTimeout = 5 * time.Second
	return NewServer(&cfg, logger)
}

// newOfflineServer returns an MCP server whose API is down.
func newOfflineServer(t *testing.T) *Server {
	t.Helper()
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	logger, _ := logging.NewTestLogger()
	cfg := config.DefaultConfig()
	cfg.APIURL = url
	cfg.ClientTimeout = 2 * time.Second
	return NewServer(&cfg, logger)
}

func call(args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{Params: mcp.CallToolParams{Arguments: args}}
}

func text(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.NotEmpty(t, res.Content)
	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "first content is text")
	return tc.Text
}

func TestTools_Registered(t *testing.T) {
	s := newTestServer(t)

	var names []string
	for _, tool := range s.tools() {
		names = append(names, tool.Tool.Name)
		assert.NotEmpty(t, tool.Tool.Description, tool.Tool.Name)
		assert.NotNil(t, tool.Handler, tool.Tool.Name)
	}
	assert.Equal(t, []string{
		"list_components",
		"get_component_details",
		"clone_frontend",
		"generate_template",
		"generate_landing_page",
	}, names)
}

func TestTools_ListedOverJSONRPC(t *testing.T) {
	s := newTestServer(t)

	msg := s.mcpServer.HandleMessage(context.Background(), json.RawMessage(`{"jsonrpc":"2.0","id":1,"method":"tools/list"}`))
	out, err := json.Marshal(msg)
	require.NoError(t, err)
	for _, name := range []string{"list_components", "get_component_details", "clone_frontend", "generate_template", "generate_landing_page"} {
		assert.Contains(t, string(out), `"`+name+`"`)
	}
}

func TestListComponents(t *testing.T) {
	s := newTestServer(t)

	res, err := s.handleListComponents(context.Background(), call(map[string]any{"query": "button", "limit": 2}))
	require.NoError(t, err)
	assert.False(t, res.IsError)

	out := text(t, res)
	assert.Contains(t, out, `Found 2 components for "button"`)
	assert.Contains(t, out, "`button`")
	assert.Contains(t, out, "npx shadcn@latest add button")
}

func TestListComponents_NoMatch(t *testing.T) {
	s := newTestServer(t)

	res, err := s.handleListComponents(context.Background(), call(map[string]any{"query": "qqqzzz"}))
	require.NoError(t, err)
	assert.Contains(t, text(t, res), "No components matched")
}

func TestListComponents_APIErrorIsToolError(t *testing.T) {
	s := newTestServer(t)

	res, err := s.handleListComponents(context.Background(), call(map[string]any{"category": "widgets"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, text(t, res), "unknown category")
}

func TestComponentDetails(t *testing.T) {
	s := newTestServer(t)

	res, err := s.handleComponentDetails(context.Background(), call(map[string]any{"componentName": "btn"}))
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Contains(t, text(t, res), "npx shadcn@latest add button")
}

func TestComponentDetails_NotFoundIsMarkdown(t *testing.T) {
	s := newTestServer(t)

	res, err := s.handleComponentDetails(context.Background(), call(map[string]any{"componentName": "qqqzzz"}))
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Contains(t, text(t, res), "# Component not found")
}

func TestComponentDetails_MissingName(t *testing.T) {
	s := newTestServer(t)

	res, err := s.handleComponentDetails(context.Background(), call(map[string]any{}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestClone_ReturnsImages(t *testing.T) {
	s := newTestServer(t)

	res, err := s.handleClone(context.Background(), call(map[string]any{
		"requestType": "initial_analysis",
		"url":         "https://acme.test",
		"width":       float64(1024),
	}))
	require.NoError(t, err)
	require.False(t, res.IsError, text(t, res))

	assert.Contains(t, text(t, res), "# Clone analysis: https://acme.test")
	assert.Contains(t, text(t, res), "Session: `")
	require.Len(t, res.Content, 3)
	img, ok := res.Content[2].(mcp.ImageContent)
	require.True(t, ok)
	assert.Equal(t, "aW1n", img.Data)
	assert.Equal(t, "image/png", img.MIMEType)
}

func TestClone_UnknownRequestType(t *testing.T) {
	s := newTestServer(t)

	res, err := s.handleClone(context.Background(), call(map[string]any{"requestType": "teleport"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, text(t, res), "unknown request type")

	res, err = s.handleClone(context.Background(), call(map[string]any{}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestConversation_RoundTripsState(t *testing.T) {
	s := newTestServer(t)
	handler := s.handleConversation("landing")

	res, err := handler(context.Background(), call(map[string]any{"message": "A budgeting app"}))
	require.NoError(t, err)
	out := text(t, res)
	assert.Contains(t, out, "**Question 2 of 4:**")
	assert.Contains(t, out, `"currentStep":1`)

	// Pass the state back as an object, the way assistants send JSON.
	state := map[string]any{
		"currentStep": float64(1),
		"totalSteps":  float64(4),
		"answers":     map[string]any{conversation.KeyProduct: "A budgeting app"},
	}
	res, err = handler(context.Background(), call(map[string]any{"message": "students", "conversationState": state}))
	require.NoError(t, err)
	assert.Contains(t, text(t, res), "**Question 3 of 4:**")

	// And as a JSON string.
	res, err = handler(context.Background(), call(map[string]any{
		"message":           "hero, pricing",
		"conversationState": `{"currentStep":2,"totalSteps":4,"answers":{"product":"A budgeting app","audience":"students"}}`,
	}))
	require.NoError(t, err)
	assert.Contains(t, text(t, res), "**Question 4 of 4:**")
}

func TestConversation_Errors(t *testing.T) {
	s := newTestServer(t)
	handler := s.handleConversation("template")

	res, err := handler(context.Background(), call(map[string]any{}))
	require.NoError(t, err)
	assert.True(t, res.IsError)

	res, err = handler(context.Background(), call(map[string]any{"message": "x", "conversationState": "{not json"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, text(t, res), "invalid conversationState")
}

func TestFallbacks_WhenAPIUnreachable(t *testing.T) {
	s := newOfflineServer(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		run     func() (*mcp.CallToolResult, error)
		content string
	}{
		{"list", func() (*mcp.CallToolResult, error) {
			return s.handleListComponents(ctx, call(map[string]any{"query": "carousel"}))
		}, "https://ui.shadcn.com/docs/components"},
		{"details", func() (*mcp.CallToolResult, error) {
			return s.handleComponentDetails(ctx, call(map[string]any{"componentName": "Date Picker"}))
		}, "npx shadcn@latest add date-picker"},
		{"clone", func() (*mcp.CallToolResult, error) {
			return s.handleClone(ctx, call(map[string]any{"requestType": "initial_analysis", "url": "https://acme.test"}))
		}, "Cloning a frontend by hand"},
		{"template", func() (*mcp.CallToolResult, error) {
			return s.handleConversation("template")(ctx, call(map[string]any{"message": "SaaS"}))
		}, "Plan a project template"},
		{"landing", func() (*mcp.CallToolResult, error) {
			return s.handleConversation("landing")(ctx, call(map[string]any{"message": "SaaS"}))
		}, "Plan a landing page"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := tt.run()
			require.NoError(t, err)
			assert.False(t, res.IsError)
			out := text(t, res)
			assert.Contains(t, out, "is not reachable")
			assert.Contains(t, out, tt.content)
		})
	}
}

func TestParseState(t *testing.T) {
	st, err := parseState(nil)
	require.NoError(t, err)
	assert.Nil(t, st)

	st, err = parseState("  ")
	require.NoError(t, err)
	assert.Nil(t, st)

	st, err = parseState(map[string]any{"currentStep": 3, "answers": map[string]any{"a": "b"}})
	require.NoError(t, err)
	assert.Equal(t, 3, st.CurrentStep)
	assert.Equal(t, "b", st.Answers["a"])
}

func TestClient_TrimsBaseURL(t *testing.T) {
	c := NewClient("http://localhost:3001/", time.Second)
	assert.Equal(t, "http://localhost:3001", c.BaseURL())
	assert.False(t, strings.HasSuffix(c.BaseURL(), "/"))
}
