// Package clone drives the clone-frontend workflow: capture a reference
// page, suggest components for it, compare the clone against the original
// and guide each refinement round.
package clone

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"compkit/internal/catalog"
	"compkit/internal/logging"
	"compkit/internal/patterns"
	"compkit/internal/screenshot"

	"github.com/google/uuid"
)

var (
	// ErrUnknownRequestType is returned for a requestType outside the four known ones.
	ErrUnknownRequestType = errors.New("unknown request type")
	// ErrInvalidRequest is returned when a request lacks a field its type needs.
	ErrInvalidRequest = errors.New("invalid request")
)

// RequestType selects the workflow step.
type RequestType string

const (
	InitialAnalysis     RequestType = "initial_analysis"
	ComponentSuggestion RequestType = "component_suggestion"
	CompareScreenshots  RequestType = "compare_screenshots"
	IterationGuide      RequestType = "iteration_guide"
)

// RequestTypes lists the accepted request types.
func RequestTypes() []RequestType {
	return []RequestType{InitialAnalysis, ComponentSuggestion, CompareScreenshots, IterationGuide}
}

// Request is the union of every request type's fields.
type Request struct {
	RequestType RequestType `json:"requestType"`

	// initial_analysis
	URL             string `json:"url,omitempty"`
	FullPage        bool   `json:"fullPage,omitempty"`
	Width           int    `json:"width,omitempty"`
	Height          int    `json:"height,omitempty"`
	WaitForSelector string `json:"waitForSelector,omitempty"`

	// Delay is in milliseconds.
	Delay int `json:"delay,omitempty"`

	// component_suggestion
	Analysis string `json:"analysis,omitempty"`

	// compare_screenshots
	OriginalURL          string `json:"originalUrl,omitempty"`
	OriginalScreenshotID string `json:"originalScreenshotId,omitempty"`
	CloneURL             string `json:"cloneUrl,omitempty"`

	// iteration_guide
	Iteration     int    `json:"iteration,omitempty"`
	Feedback      string `json:"feedback,omitempty"`
	MaxIterations int    `json:"maxIterations,omitempty"`
}

func (r Request) captureOptions() screenshot.Options {
	return screenshot.Options{
		FullPage:        r.FullPage,
		Width:           r.Width,
		Height:          r.Height,
		WaitForSelector: r.WaitForSelector,
		Delay:           time.Duration(r.Delay) * time.Millisecond,
	}
}

// Screenshot is a capture as returned to callers.
type Screenshot struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	Image     string    `json:"image"`
	MimeType  string    `json:"mimeType"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	URL       string    `json:"url"`
	Timestamp time.Time `json:"timestamp"`
}

func fromCapture(label string, c *screenshot.Capture) Screenshot {
	return Screenshot{
		ID:        c.ID,
		Label:     label,
		Image:     c.Image,
		MimeType:  c.MimeType,
		Width:     c.Width,
		Height:    c.Height,
		URL:       c.URL,
		Timestamp: c.Timestamp,
	}
}

// Response is the outcome of any request type. Text is always set.
type Response struct {
	Text          string              `json:"text"`
	SessionID     string              `json:"sessionId,omitempty"`
	Screenshots   []Screenshot        `json:"screenshots,omitempty"`
	Components    []catalog.Summary   `json:"components,omitempty"`
	Installations []string            `json:"installations,omitempty"`
	Outline       *screenshot.Outline `json:"outline,omitempty"`
	Patterns      []patterns.Hit      `json:"patterns,omitempty"`
	Comparison    *Comparison         `json:"comparison,omitempty"`
}

// Capturer is the screenshot capability the workflow needs.
type Capturer interface {
	Capture(ctx context.Context, url string, opts screenshot.Options) (*screenshot.Capture, error)
	Get(id string) (*screenshot.Capture, bool)
}

// Service runs clone requests.
type Service struct {
	catalog       *catalog.Catalog
	matcher       *patterns.Matcher
	capturer      Capturer
	maxIterations int
	logger        *logging.AppLogger
}

// NewService returns a Service. maxIterations is the default refinement
// budget when a request does not carry one.
func NewService(cat *catalog.Catalog, matcher *patterns.Matcher, capturer Capturer, maxIterations int, logger *logging.AppLogger) *Service {
	if logger == nil {
		logger = logging.GetDefault()
	}
	if maxIterations <= 0 {
		maxIterations = 5
	}
	return &Service{
		catalog:       cat,
		matcher:       matcher,
		capturer:      capturer,
		maxIterations: maxIterations,
		logger:        logger,
	}
}

// Handle dispatches req on its RequestType.
func (s *Service) Handle(ctx context.Context, req Request) (*Response, error) {
	s.logger.DebugObject("clone request", req)

	switch req.RequestType {
	case InitialAnalysis:
		return s.initialAnalysis(ctx, req)
	case ComponentSuggestion:
		return s.componentSuggestion(req)
	case CompareScreenshots:
		return s.compareScreenshots(ctx, req)
	case IterationGuide:
		return s.iterationGuide(req)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRequestType, req.RequestType)
	}
}

func (s *Service) initialAnalysis(ctx context.Context, req Request) (*Response, error) {
	if strings.TrimSpace(req.URL) == "" {
		return nil, fmt.Errorf("%w: url is required", ErrInvalidRequest)
	}

	shot, err := s.capturer.Capture(ctx, req.URL, req.captureOptions())
	if err != nil {
		return nil, err
	}

	var outline *screenshot.Outline
	analysis := req.URL
	if shot.HTML != "" {
		o, err := screenshot.ExtractOutline(shot.HTML)
		if err != nil {
			s.logger.Warn("Failed to extract page outline", "url", req.URL, "error", err)
		} else {
			outline = &o
			analysis = o.Text()
		}
	}

	match := s.matcher.Match(analysis)
	comps, installs := s.resolve(match)

	resp := &Response{
		SessionID:     uuid.NewString(),
		Screenshots:   []Screenshot{fromCapture("original", shot)},
		Components:    comps,
		Installations: installs,
		Outline:       outline,
		Patterns:      match.Hits,
	}
	resp.Text = initialAnalysisText(req.URL, shot, outline, match, comps)
	return resp, nil
}

func (s *Service) componentSuggestion(req Request) (*Response, error) {
	if strings.TrimSpace(req.Analysis) == "" {
		return nil, fmt.Errorf("%w: analysis is required", ErrInvalidRequest)
	}

	match := s.matcher.Match(req.Analysis)
	comps, installs := s.resolve(match)
	return &Response{
		Text:          suggestionText(match, comps),
		Components:    comps,
		Installations: installs,
		Patterns:      match.Hits,
	}, nil
}

func (s *Service) compareScreenshots(ctx context.Context, req Request) (*Response, error) {
	if strings.TrimSpace(req.CloneURL) == "" {
		return nil, fmt.Errorf("%w: cloneUrl is required", ErrInvalidRequest)
	}
	if req.OriginalURL == "" && req.OriginalScreenshotID == "" {
		return nil, fmt.Errorf("%w: originalUrl or originalScreenshotId is required", ErrInvalidRequest)
	}

	var original *screenshot.Capture
	if req.OriginalScreenshotID != "" {
		if c, ok := s.capturer.Get(req.OriginalScreenshotID); ok {
			original = c
		} else if req.OriginalURL == "" {
			return nil, fmt.Errorf("%w: screenshot %s is no longer available, send originalUrl instead", ErrInvalidRequest, req.OriginalScreenshotID)
		}
	}

	opts := req.captureOptions()
	if original == nil {
		c, err := s.capturer.Capture(ctx, req.OriginalURL, opts)
		if err != nil {
			return nil, err
		}
		original = c
	}

	// Capture the clone at the original's size so the two line up.
	if opts.Width <= 0 && !opts.FullPage {
		opts.Width, opts.Height = original.Width, original.Height
	}
	clone, err := s.capturer.Capture(ctx, req.CloneURL, opts)
	if err != nil {
		return nil, err
	}

	cmp := Compare(original, clone)
	return &Response{
		Text:        comparisonText(original, clone, cmp),
		Screenshots: []Screenshot{fromCapture("original", original), fromCapture("clone", clone)},
		Comparison:  &cmp,
	}, nil
}

func (s *Service) iterationGuide(req Request) (*Response, error) {
	if req.Iteration < 0 {
		return nil, fmt.Errorf("%w: iteration must not be negative", ErrInvalidRequest)
	}
	iteration := req.Iteration
	if iteration == 0 {
		iteration = 1
	}
	budget := req.MaxIterations
	if budget <= 0 {
		budget = s.maxIterations
	}
	return &Response{Text: iterationText(iteration, budget, req.Feedback)}, nil
}

func (s *Service) resolve(match patterns.Result) ([]catalog.Summary, []string) {
	comps := make([]catalog.Summary, 0, len(match.Suggestions))
	installs := make([]string, 0, len(match.Suggestions))
	for _, sug := range match.Suggestions {
		r, ok := s.catalog.Get(sug.Key)
		if !ok {
			s.logger.Warn("Suggested component missing from catalog", "key", sug.Key)
			continue
		}
		sum := catalog.Summarize(r)
		sum.Score = sug.Priority
		comps = append(comps, sum)
		installs = append(installs, r.Install())
	}
	return comps, installs
}
