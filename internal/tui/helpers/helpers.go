package helpers

import (
	"compkit/internal/catalog"
	"compkit/internal/config"
	"compkit/internal/conversation"
	"compkit/internal/logging"
	"compkit/internal/render"
)

// NavigateToMainMenuMsg asks the root model to return to the menu.
type NavigateToMainMenuMsg struct{}

// UIContext carries what screens need to build themselves.
type UIContext struct {
	Width    int
	Height   int
	Config   *config.Config
	Logger   *logging.AppLogger
	Catalog  *catalog.Catalog
	Template *conversation.Flow
	Landing  *conversation.Flow
	Renderer *render.Renderer
	// OutputDir is where wizard results are saved; empty means the working
	// directory.
	OutputDir string
}

func NewUIContext(width, height int, cfg *config.Config, logger *logging.AppLogger) UIContext {
	return UIContext{
		Width:  width,
		Height: height,
		Config: cfg,
		Logger: logger,
	}
}

// HasValidDimensions checks if the context has valid window dimensions
func (ctx UIContext) HasValidDimensions() bool {
	return ctx.Width > 0 && ctx.Height > 0
}

// Flow returns the conversation flow by name.
func (ctx UIContext) Flow(name string) *conversation.Flow {
	switch name {
	case "template":
		return ctx.Template
	case "landing":
		return ctx.Landing
	}
	return nil
}
