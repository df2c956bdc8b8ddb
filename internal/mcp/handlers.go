package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"compkit/internal/api"
	"compkit/internal/clone"
	"compkit/internal/conversation"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// failure turns a client error into a tool result: the fallback text when the
// API is unreachable, a tool error otherwise.
func (s *Server) failure(tool string, err error, fallback func() string) *mcp.CallToolResult {
	if errors.Is(err, ErrUnreachable) {
		s.logger.Warn("API unreachable, returning fallback", "tool", tool, "error", err)
		return mcp.NewToolResultText(fallback())
	}
	s.logger.Error("Tool call failed", "tool", tool, "error", err)
	return mcp.NewToolResultError(err.Error())
}

func (s *Server) handleListComponents(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := req.GetString("query", "")
	category := req.GetString("category", "")
	limit := req.GetInt("limit", 0)
	s.logger.Debug("Tool called", "tool", "list_components", "query", query, "category", category)

	resp, err := s.client.ListComponents(ctx, api.ListRequest{Query: query, Category: category, Limit: limit})
	if err != nil {
		return s.failure("list_components", err, func() string {
			return listFallback(s.client.BaseURL(), query, category)
		}), nil
	}
	return mcp.NewToolResultText(formatList(query, resp)), nil
}

func formatList(query string, resp *api.ListResponse) string {
	if len(resp.Results) == 0 {
		return fmt.Sprintf("No components matched %q. Try a broader term or list_components without a query.", query)
	}

	var b strings.Builder
	if query != "" {
		fmt.Fprintf(&b, "Found %d components for %q:\n\n", len(resp.Results), query)
	} else {
		fmt.Fprintf(&b, "%d components:\n\n", len(resp.Results))
	}
	for _, r := range resp.Results {
		fmt.Fprintf(&b, "- **%s** (`%s`, %s): %s\n  `%s`\n", r.Name, r.Key, r.Category, r.Description, r.InstallCommand)
	}
	b.WriteString("\nUse get_component_details for usage and imports.")
	return b.String()
}

func (s *Server) handleComponentDetails(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("componentName")
	if err != nil || strings.TrimSpace(name) == "" {
		return mcp.NewToolResultError("componentName is required"), nil
	}
	s.logger.Debug("Tool called", "tool", "get_component_details", "component", name)

	resp, err := s.client.ComponentDetails(ctx, api.DetailsRequest{
		ComponentName:                  name,
		AbsolutePathToCurrentFile:      req.GetString("absolutePathToCurrentFile", ""),
		AbsolutePathToProjectDirectory: req.GetString("absolutePathToProjectDirectory", ""),
	})
	if err != nil {
		return s.failure("get_component_details", err, func() string {
			return detailsFallback(s.client.BaseURL(), name)
		}), nil
	}
	return mcp.NewToolResultText(resp.Result), nil
}

func (s *Server) handleClone(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	requestType, err := req.RequireString("requestType")
	if err != nil {
		return mcp.NewToolResultError("requestType is required"), nil
	}
	s.logger.Debug("Tool called", "tool", "clone_frontend", "requestType", requestType)

	resp, err := s.client.Clone(ctx, clone.Request{
		RequestType:          clone.RequestType(requestType),
		URL:                  req.GetString("url", ""),
		FullPage:             req.GetBool("fullPage", false),
		Width:                req.GetInt("width", 0),
		Height:               req.GetInt("height", 0),
		WaitForSelector:      req.GetString("waitForSelector", ""),
		Delay:                req.GetInt("delay", 0),
		Analysis:             req.GetString("analysis", ""),
		OriginalURL:          req.GetString("originalUrl", ""),
		OriginalScreenshotID: req.GetString("originalScreenshotId", ""),
		CloneURL:             req.GetString("cloneUrl", ""),
		Iteration:            req.GetInt("iteration", 0),
		Feedback:             req.GetString("feedback", ""),
		MaxIterations:        req.GetInt("maxIterations", 0),
	})
	if err != nil {
		return s.failure("clone_frontend", err, func() string {
			return cloneFallback(s.client.BaseURL(), requestType)
		}), nil
	}
	return cloneResult(resp), nil
}

// cloneResult returns the guidance text followed by each screenshot as
// image content.
func cloneResult(resp *clone.Response) *mcp.CallToolResult {
	text := resp.Text
	if resp.SessionID != "" {
		text += fmt.Sprintf("\n\nSession: `%s`", resp.SessionID)
	}

	content := []mcp.Content{mcp.NewTextContent(text)}
	for _, shot := range resp.Screenshots {
		content = append(content,
			mcp.NewTextContent(fmt.Sprintf("Screenshot %s of %s (%dx%d, id %s)", shot.Label, shot.URL, shot.Width, shot.Height, shot.ID)),
			mcp.NewImageContent(shot.Image, shot.MimeType),
		)
	}
	return &mcp.CallToolResult{Content: content}
}

func (s *Server) handleConversation(flow string) server.ToolHandlerFunc {
	tool := "generate_template"
	call := s.client.Template
	if flow == "landing" {
		tool = "generate_landing_page"
		call = s.client.Landing
	}

	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		message, err := req.RequireString("message")
		if err != nil || strings.TrimSpace(message) == "" {
			return mcp.NewToolResultError("message is required"), nil
		}
		state, err := parseState(req.GetArguments()["conversationState"])
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		s.logger.Debug("Tool called", "tool", tool, "hasState", state != nil)

		reply, err := call(ctx, api.ConversationRequest{Message: message, ConversationState: state})
		if err != nil {
			return s.failure(tool, err, func() string {
				return conversationFallback(s.client.BaseURL(), flow)
			}), nil
		}
		return mcp.NewToolResultText(conversationText(reply)), nil
	}
}

// parseState accepts the state as a JSON object or a JSON string.
func parseState(v interface{}) (*conversation.State, error) {
	var raw []byte
	switch t := v.(type) {
	case nil:
		return nil, nil
	case string:
		if strings.TrimSpace(t) == "" {
			return nil, nil
		}
		raw = []byte(t)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return nil, fmt.Errorf("invalid conversationState: %w", err)
		}
		raw = b
	}

	var state conversation.State
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("invalid conversationState: %w", err)
	}
	return &state, nil
}

func conversationText(reply *conversation.Reply) string {
	state, _ := json.Marshal(reply.State)
	var b strings.Builder
	b.WriteString(reply.Result)
	b.WriteString("\n\n---\n")
	if reply.Complete {
		b.WriteString("All questions answered. ")
	}
	fmt.Fprintf(&b, "conversationState for the next call:\n\n```json\n%s\n```", state)
	return b.String()
}
