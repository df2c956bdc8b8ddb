package api

import (
	"errors"
	"net/http"
	"strings"

	"compkit/internal/catalog"
	"compkit/internal/clone"
	"compkit/internal/conversation"
	"compkit/internal/screenshot"
)

// ListRequest is the body of POST /api/component/list.
type ListRequest struct {
	Query    string `json:"query"`
	Category string `json:"category"`
	Limit    int    `json:"limit"`
}

// ListMetadata describes how a list response was produced.
type ListMetadata struct {
	Query    string `json:"query,omitempty"`
	Category string `json:"category,omitempty"`
	Limit    int    `json:"limit,omitempty"`
	Total    int    `json:"total"`

	// Mode is "search" for ranked results and "all" for the unranked listing.
	Mode       string                  `json:"mode"`
	Categories []catalog.CategoryCount `json:"categories,omitempty"`
}

// ListResponse is the reply to POST /api/component/list.
type ListResponse struct {
	Results  []catalog.Summary `json:"results"`
	Metadata ListMetadata      `json:"metadata"`
}

func (s *Server) listComponents(w http.ResponseWriter, r *http.Request) {
	var req ListRequest
	if err := decode(w, r, &req); err != nil {
		Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Limit < 0 {
		Error(w, http.StatusBadRequest, "limit must not be negative")
		return
	}

	var category catalog.Category
	if strings.TrimSpace(req.Category) != "" {
		c, ok := catalog.ParseCategory(req.Category)
		if !ok {
			Error(w, http.StatusBadRequest, "unknown category "+req.Category)
			return
		}
		category = c
	}

	resp := ListResponse{
		Results: []catalog.Summary{},
		Metadata: ListMetadata{
			Query:    req.Query,
			Category: string(category),
			Limit:    req.Limit,
		},
	}

	if strings.TrimSpace(req.Query) == "" {
		resp.Metadata.Mode = "all"
		resp.Metadata.Categories = s.svc.Catalog.CategoryCounts()
		for _, rec := range s.svc.Catalog.List(category, req.Limit) {
			resp.Results = append(resp.Results, catalog.Summarize(rec))
		}
	} else {
		resp.Metadata.Mode = "search"
		hits := s.svc.Catalog.Search(req.Query, catalog.SearchOptions{Category: category, Limit: req.Limit})
		for _, hit := range hits {
			sum := catalog.Summarize(hit.Component)
			sum.Score = hit.Score
			resp.Results = append(resp.Results, sum)
		}
	}
	resp.Metadata.Total = len(resp.Results)

	JSON(w, http.StatusOK, resp)
}

// DetailsRequest is the body of POST /api/component/details.
type DetailsRequest struct {
	ComponentName                  string `json:"componentName"`
	AbsolutePathToCurrentFile      string `json:"absolutePathToCurrentFile"`
	AbsolutePathToProjectDirectory string `json:"absolutePathToProjectDirectory"`
}

// DetailsMetadata describes the resolved component and project.
type DetailsMetadata struct {
	Found          bool     `json:"found"`
	Component      string   `json:"component,omitempty"`
	MatchedBy      string   `json:"matchedBy,omitempty"`
	PackageManager string   `json:"packageManager,omitempty"`
	TypeScript     *bool    `json:"typescript,omitempty"`
	ProjectError   string   `json:"projectError,omitempty"`
	Suggestions    []string `json:"suggestions,omitempty"`
}

// DetailsResponse is the reply to POST /api/component/details.
type DetailsResponse struct {
	Result   string          `json:"result"`
	Metadata DetailsMetadata `json:"metadata"`
}

func (s *Server) componentDetails(w http.ResponseWriter, r *http.Request) {
	var req DetailsRequest
	if err := decode(w, r, &req); err != nil {
		Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.ComponentName) == "" {
		Error(w, http.StatusBadRequest, "componentName is required")
		return
	}

	d := s.svc.Catalog.Details(catalog.DetailsRequest{
		ComponentName: req.ComponentName,
		CurrentFile:   req.AbsolutePathToCurrentFile,
		ProjectDir:    req.AbsolutePathToProjectDirectory,
	})

	resp := DetailsResponse{Result: d.Markdown, Metadata: DetailsMetadata{Found: d.Found}}
	if !d.Found {
		for _, sug := range d.Suggestions {
			resp.Metadata.Suggestions = append(resp.Metadata.Suggestions, sug.Component.Key)
		}
		JSON(w, http.StatusNotFound, resp)
		return
	}

	resp.Metadata.Component = d.Component.Key
	resp.Metadata.MatchedBy = string(d.Rule)
	if d.Project != nil {
		resp.Metadata.PackageManager = string(d.Project.PackageManager)
		ts := d.Project.TypeScript
		resp.Metadata.TypeScript = &ts
	}
	if d.ProjectErr != nil {
		s.logger.Warn("Failed to inspect project", "dir", req.AbsolutePathToProjectDirectory, "error", d.ProjectErr)
		resp.Metadata.ProjectError = d.ProjectErr.Error()
	}
	JSON(w, http.StatusOK, resp)
}

func (s *Server) cloneFrontend(w http.ResponseWriter, r *http.Request) {
	var req clone.Request
	if err := decode(w, r, &req); err != nil {
		Error(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := s.svc.Clone.Handle(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, clone.ErrUnknownRequestType),
			errors.Is(err, clone.ErrInvalidRequest),
			errors.Is(err, screenshot.ErrInvalidURL):
			Error(w, http.StatusBadRequest, err.Error())
		default:
			s.logger.Error("Clone request failed", "type", req.RequestType, "error", err)
			Error(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	JSON(w, http.StatusOK, resp)
}

// ConversationRequest is the body of POST /api/template and /api/landing.
type ConversationRequest struct {
	Message           string              `json:"message"`
	ConversationState *conversation.State `json:"conversationState,omitempty"`
}

func (s *Server) conversation(flow *conversation.Flow) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ConversationRequest
		if err := decode(w, r, &req); err != nil {
			Error(w, http.StatusBadRequest, err.Error())
			return
		}

		reply, err := flow.Advance(req.ConversationState, req.Message)
		if err != nil {
			if errors.Is(err, conversation.ErrMessageRequired) {
				Error(w, http.StatusBadRequest, err.Error())
				return
			}
			Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		JSON(w, http.StatusOK, reply)
	}
}
