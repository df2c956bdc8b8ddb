package screenshot

import (
	"context"
	"fmt"

	"compkit/internal/config"

	"github.com/chromedp/chromedp"
)

// ChromeLauncher launches Chrome through chromedp.
type ChromeLauncher struct {
	ExecPath string
	Headless bool
}

// NewChromeLauncher returns a launcher configured from cfg.
func NewChromeLauncher(cfg config.ScreenshotConfig) *ChromeLauncher {
	return &ChromeLauncher{ExecPath: cfg.ChromePath, Headless: cfg.Headless}
}

// Launch starts a browser process. The process lives until Close, not until
// ctx ends; ctx only bounds startup.
func (l *ChromeLauncher) Launch(ctx context.Context) (Browser, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", l.Headless),
		chromedp.Flag("hide-scrollbars", true),
	)
	if l.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(l.ExecPath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), opts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	started := make(chan error, 1)
	go func() { started <- chromedp.Run(browserCtx) }()

	select {
	case err := <-started:
		if err != nil {
			browserCancel()
			allocCancel()
			return nil, fmt.Errorf("start chrome: %w", err)
		}
	case <-ctx.Done():
		browserCancel()
		allocCancel()
		return nil, fmt.Errorf("start chrome: %w", ctx.Err())
	}

	return &chromeBrowser{ctx: browserCtx, cancel: browserCancel, allocCancel: allocCancel}, nil
}

type chromeBrowser struct {
	ctx         context.Context
	cancel      context.CancelFunc
	allocCancel context.CancelFunc
}

func (b *chromeBrowser) NewPage(ctx context.Context) (Page, error) {
	if !b.Connected() {
		return nil, fmt.Errorf("browser is not connected")
	}
	tabCtx, cancel := chromedp.NewContext(b.ctx)
	// The first Run creates the target and ties it to the context it is
	// given, so it runs on tabCtx itself and ctx only bounds the wait.
	opened := make(chan error, 1)
	go func() { opened <- chromedp.Run(tabCtx) }()

	select {
	case err := <-opened:
		if err != nil {
			cancel()
			return nil, fmt.Errorf("open tab: %w", err)
		}
	case <-ctx.Done():
		cancel()
		return nil, ctx.Err()
	}
	return &chromePage{ctx: tabCtx, cancel: cancel}, nil
}

func (b *chromeBrowser) Connected() bool {
	return b.ctx.Err() == nil
}

func (b *chromeBrowser) Close() error {
	err := chromedp.Cancel(b.ctx)
	b.cancel()
	b.allocCancel()
	return err
}

type chromePage struct {
	ctx    context.Context
	cancel context.CancelFunc
}

// run executes actions on tab, aborting when ctx is done or past its deadline.
func run(ctx, tab context.Context, actions ...chromedp.Action) error {
	runCtx, cancel := context.WithCancel(tab)
	defer cancel()
	if deadline, ok := ctx.Deadline(); ok {
		var cancelDeadline context.CancelFunc
		runCtx, cancelDeadline = context.WithDeadline(runCtx, deadline)
		defer cancelDeadline()
	}
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	if err := chromedp.Run(runCtx, actions...); err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("%w: %w", ctx.Err(), err)
		}
		return err
	}
	return nil
}

func (p *chromePage) SetViewport(ctx context.Context, width, height int) error {
	return run(ctx, p.ctx, chromedp.EmulateViewport(int64(width), int64(height)))
}

func (p *chromePage) Goto(ctx context.Context, url string) error {
	return run(ctx, p.ctx, chromedp.Navigate(url))
}

func (p *chromePage) WaitForSelector(ctx context.Context, selector string) error {
	return run(ctx, p.ctx, chromedp.WaitReady(selector, chromedp.ByQuery))
}

func (p *chromePage) Screenshot(ctx context.Context, fullPage bool) ([]byte, error) {
	var buf []byte
	action := chromedp.CaptureScreenshot(&buf)
	if fullPage {
		// Quality 100 keeps the output PNG.
		action = chromedp.FullScreenshot(&buf, 100)
	}
	if err := run(ctx, p.ctx, action); err != nil {
		return nil, err
	}
	return buf, nil
}

func (p *chromePage) Dimensions(ctx context.Context) (int, int, error) {
	var dims []int
	err := run(ctx, p.ctx, chromedp.Evaluate(
		`[document.documentElement.scrollWidth, document.documentElement.scrollHeight]`, &dims))
	if err != nil {
		return 0, 0, err
	}
	if len(dims) != 2 {
		return 0, 0, fmt.Errorf("unexpected dimensions %v", dims)
	}
	return dims[0], dims[1], nil
}

func (p *chromePage) HTML(ctx context.Context) (string, error) {
	var html string
	if err := run(ctx, p.ctx, chromedp.OuterHTML("html", &html, chromedp.ByQuery)); err != nil {
		return "", err
	}
	return html, nil
}

func (p *chromePage) Close() error {
	p.cancel()
	return nil
}
