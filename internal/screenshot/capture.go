// Package screenshot captures web pages through one shared headless browser.
//
// The Capturer owns the browser handle: it is launched on first use,
// relaunched when found disconnected, and released by Close. Every capture
// opens and closes its own page. Nothing is retried.
package screenshot

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"time"

	"compkit/internal/config"
	"compkit/internal/logging"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
)

var (
	// ErrCaptureFailed wraps every browser-side failure: launch, navigation,
	// selector wait and the screenshot itself.
	ErrCaptureFailed = errors.New("capture failed")
	// ErrInvalidURL is returned before any browser work for unusable URLs.
	ErrInvalidURL = errors.New("invalid url")
)

// Launcher starts a browser process.
type Launcher interface {
	Launch(ctx context.Context) (Browser, error)
}

// Browser is a running browser process.
type Browser interface {
	NewPage(ctx context.Context) (Page, error)
	Connected() bool
	Close() error
}

// Page is one browser tab. Every blocking method honors ctx's deadline.
type Page interface {
	SetViewport(ctx context.Context, width, height int) error
	Goto(ctx context.Context, url string) error
	WaitForSelector(ctx context.Context, selector string) error
	Screenshot(ctx context.Context, fullPage bool) ([]byte, error)
	// Dimensions reports the full scrollable size of the document.
	Dimensions(ctx context.Context) (width, height int, err error)
	HTML(ctx context.Context) (string, error)
	Close() error
}

// Options tune a single capture. Zero values fall back to the configured defaults.
type Options struct {
	FullPage        bool          `json:"fullPage"`
	Width           int           `json:"width,omitempty"`
	Height          int           `json:"height,omitempty"`
	WaitForSelector string        `json:"waitForSelector,omitempty"`
	Delay           time.Duration `json:"delay,omitempty"`
}

// Capture is a captured page.
type Capture struct {
	ID        string    `json:"id"`
	Image     string    `json:"image"`
	MimeType  string    `json:"mimeType"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	URL       string    `json:"url"`
	Timestamp time.Time `json:"timestamp"`

	// HTML is the page markup at capture time, when it could be read.
	HTML string `json:"-"`
}

// PNG decodes the image.
func (c *Capture) PNG() ([]byte, error) {
	return base64.StdEncoding.DecodeString(c.Image)
}

// Capturer takes screenshots through a lazily launched, shared browser and
// remembers recent captures by ID.
type Capturer struct {
	launcher Launcher
	cfg      config.ScreenshotConfig
	logger   *logging.AppLogger

	mu      sync.Mutex
	browser Browser
	closed  bool

	recent *lru.Cache[string, *Capture]
}

// NewCapturer returns a Capturer. No browser is started until the first capture.
func NewCapturer(launcher Launcher, cfg config.ScreenshotConfig, logger *logging.AppLogger) (*Capturer, error) {
	if launcher == nil {
		return nil, fmt.Errorf("launcher is nil")
	}
	if logger == nil {
		logger = logging.GetDefault()
	}
	size := cfg.CacheSize
	if size <= 0 {
		size = config.DefaultConfig().Screenshot.CacheSize
	}
	recent, err := lru.New[string, *Capture](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create capture cache: %w", err)
	}
	return &Capturer{launcher: launcher, cfg: cfg, logger: logger, recent: recent}, nil
}

// acquire returns the shared browser, launching or relaunching it as needed.
func (c *Capturer) acquire(ctx context.Context) (Browser, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, fmt.Errorf("capturer is closed")
	}
	if c.browser != nil && c.browser.Connected() {
		return c.browser, nil
	}
	if c.browser != nil {
		c.logger.Warn("Browser disconnected, relaunching")
		_ = c.browser.Close()
		c.browser = nil
	}

	start := time.Now()
	b, err := c.launcher.Launch(ctx)
	if err != nil {
		return nil, fmt.Errorf("launch browser: %w", err)
	}
	c.logger.LogPerformance("browser launch", start)
	c.logger.Info("Browser launched")
	c.browser = b
	return b, nil
}

// Capture navigates to rawURL and screenshots it. Browser failures are
// returned wrapped in ErrCaptureFailed with the cause attached.
func (c *Capturer) Capture(ctx context.Context, rawURL string, opts Options) (*Capture, error) {
	if err := validateURL(rawURL); err != nil {
		return nil, err
	}

	width, height := opts.Width, opts.Height
	if width <= 0 {
		width = c.cfg.DefaultWidth
	}
	if height <= 0 {
		height = c.cfg.DefaultHeight
	}

	start := time.Now()
	c.logger.Debug("Capturing", "url", rawURL, "fullPage", opts.FullPage, "width", width, "height", height)

	browser, err := c.acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCaptureFailed, err)
	}

	page, err := browser.NewPage(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: open page: %w", ErrCaptureFailed, err)
	}
	defer func() {
		if err := page.Close(); err != nil {
			c.logger.Debug("Failed to close page", "error", err)
		}
	}()

	if err := page.SetViewport(ctx, width, height); err != nil {
		return nil, fmt.Errorf("%w: set viewport: %w", ErrCaptureFailed, err)
	}

	if err := withTimeout(ctx, c.cfg.NavigationTimeout, func(ctx context.Context) error {
		return page.Goto(ctx, rawURL)
	}); err != nil {
		return nil, fmt.Errorf("%w: navigate to %s: %w", ErrCaptureFailed, rawURL, err)
	}

	if opts.WaitForSelector != "" {
		if err := withTimeout(ctx, c.cfg.SelectorTimeout, func(ctx context.Context) error {
			return page.WaitForSelector(ctx, opts.WaitForSelector)
		}); err != nil {
			return nil, fmt.Errorf("%w: wait for selector %q: %w", ErrCaptureFailed, opts.WaitForSelector, err)
		}
	}

	if opts.Delay > 0 {
		select {
		case <-time.After(opts.Delay):
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %w", ErrCaptureFailed, ctx.Err())
		}
	}

	img, err := page.Screenshot(ctx, opts.FullPage)
	if err != nil {
		return nil, fmt.Errorf("%w: screenshot: %w", ErrCaptureFailed, err)
	}

	if opts.FullPage {
		w, h, err := page.Dimensions(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: measure page: %w", ErrCaptureFailed, err)
		}
		width, height = w, h
	}

	html, err := page.HTML(ctx)
	if err != nil {
		c.logger.Debug("Failed to read page HTML", "url", rawURL, "error", err)
	}

	capture := &Capture{
		ID:        uuid.NewString(),
		Image:     base64.StdEncoding.EncodeToString(img),
		MimeType:  "image/png",
		Width:     width,
		Height:    height,
		URL:       rawURL,
		Timestamp: time.Now().UTC(),
		HTML:      html,
	}
	c.recent.Add(capture.ID, capture)

	c.logger.LogPerformance("capture "+rawURL, start)
	c.logger.Info("Captured page", "url", rawURL, "id", capture.ID, "bytes", len(img))
	return capture, nil
}

// Get returns a recent capture by ID.
func (c *Capturer) Get(id string) (*Capture, bool) {
	return c.recent.Get(id)
}

// Close releases the browser. Later captures fail.
func (c *Capturer) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	if c.browser == nil {
		return nil
	}
	err := c.browser.Close()
	c.browser = nil
	if err != nil {
		return fmt.Errorf("close browser: %w", err)
	}
	c.logger.Info("Browser closed")
	return nil
}

func withTimeout(ctx context.Context, d time.Duration, fn func(context.Context) error) error {
	if d > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d)
		defer cancel()
	}
	return fn(ctx)
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" && u.Scheme != "file" {
		return fmt.Errorf("%w: unsupported scheme %q", ErrInvalidURL, u.Scheme)
	}
	if u.Scheme != "file" && u.Host == "" {
		return fmt.Errorf("%w: missing host", ErrInvalidURL)
	}
	return nil
}
