package screenshot

import (
	"context"
	"encoding/base64"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"compkit/internal/config"
	"compkit/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const neverSelector = "#never-appears"

type fakeLauncher struct {
	mu        sync.Mutex
	launches  int
	browsers  []*fakeBrowser
	launchErr error
	gotoErr   error
	html      string
}

func (l *fakeLauncher) Launch(ctx context.Context) (Browser, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.launches++
	if l.launchErr != nil {
		return nil, l.launchErr
	}
	b := &fakeBrowser{launcher: l}
	b.connected.Store(true)
	l.browsers = append(l.browsers, b)
	return b, nil
}

func (l *fakeLauncher) launchCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.launches
}

type fakeBrowser struct {
	launcher    *fakeLauncher
	connected   atomic.Bool
	closed      atomic.Bool
	pagesOpened atomic.Int32
	pagesClosed atomic.Int32
}

func (b *fakeBrowser) NewPage(ctx context.Context) (Page, error) {
	b.pagesOpened.Add(1)
	return &fakePage{browser: b}, nil
}

func (b *fakeBrowser) Connected() bool { return b.connected.Load() }

func (b *fakeBrowser) Close() error {
	b.closed.Store(true)
	b.connected.Store(false)
	return nil
}

type fakePage struct {
	browser       *fakeBrowser
	width, height int
}

func (p *fakePage) SetViewport(ctx context.Context, width, height int) error {
	p.width, p.height = width, height
	return nil
}

func (p *fakePage) Goto(ctx context.Context, url string) error {
	return p.browser.launcher.gotoErr
}

func (p *fakePage) WaitForSelector(ctx context.Context, selector string) error {
	if selector == neverSelector {
		<-ctx.Done()
		return ctx.Err()
	}
	return nil
}

func (p *fakePage) Screenshot(ctx context.Context, fullPage bool) ([]byte, error) {
	if fullPage {
		return []byte("full-png"), nil
	}
	return []byte("viewport-png"), nil
}

func (p *fakePage) Dimensions(ctx context.Context) (int, int, error) {
	return p.width, 4200, nil
}

func (p *fakePage) HTML(ctx context.Context) (string, error) {
	return p.browser.launcher.html, nil
}

func (p *fakePage) Close() error {
	p.browser.pagesClosed.Add(1)
	return nil
}

func testConfig() config.ScreenshotConfig {
	cfg := config.DefaultConfig().Screenshot
	cfg.NavigationTimeout = time.Second
	cfg.SelectorTimeout = 50 * time.Millisecond
	return cfg
}

func newTestCapturer(t *testing.T, l *fakeLauncher, cfg config.ScreenshotConfig) *Capturer {
	t.Helper()
	logger, _ := logging.NewTestLogger()
	c, err := NewCapturer(l, cfg, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestCapture_Viewport(t *testing.T) {
	l := &fakeLauncher{html: "<html><title>Home</title></html>"}
	c := newTestCapturer(t, l, testConfig())

	shot, err := c.Capture(context.Background(), "https://example.com", Options{})
	require.NoError(t, err)

	png, err := shot.PNG()
	require.NoError(t, err)
	assert.Equal(t, "viewport-png", string(png))
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("viewport-png")), shot.Image)
	assert.Equal(t, "image/png", shot.MimeType)
	assert.Equal(t, 1280, shot.Width)
	assert.Equal(t, 800, shot.Height)
	assert.Equal(t, "https://example.com", shot.URL)
	assert.NotEmpty(t, shot.ID)
	assert.WithinDuration(t, time.Now(), shot.Timestamp, 5*time.Second)
	assert.Equal(t, "<html><title>Home</title></html>", shot.HTML)

	b := l.browsers[0]
	assert.Equal(t, int32(1), b.pagesOpened.Load())
	assert.Equal(t, int32(1), b.pagesClosed.Load(), "each capture closes its page")
}

func TestCapture_FullPageUsesDocumentSize(t *testing.T) {
	l := &fakeLauncher{}
	c := newTestCapturer(t, l, testConfig())

	shot, err := c.Capture(context.Background(), "https://example.com", Options{FullPage: true, Width: 390, Height: 844})
	require.NoError(t, err)
	png, _ := shot.PNG()
	assert.Equal(t, "full-png", string(png))
	assert.Equal(t, 390, shot.Width)
	assert.Equal(t, 4200, shot.Height)
}

func TestCapture_LaunchesLazilyAndReuses(t *testing.T) {
	l := &fakeLauncher{}
	c := newTestCapturer(t, l, testConfig())
	assert.Equal(t, 0, l.launchCount())

	for i := 0; i < 3; i++ {
		_, err := c.Capture(context.Background(), "https://example.com", Options{})
		require.NoError(t, err)
	}
	assert.Equal(t, 1, l.launchCount())
	assert.Equal(t, int32(3), l.browsers[0].pagesOpened.Load())
}

func TestCapture_ConcurrentCallsShareBrowser(t *testing.T) {
	l := &fakeLauncher{}
	c := newTestCapturer(t, l, testConfig())

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.Capture(context.Background(), "https://example.com", Options{})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
	assert.Equal(t, 1, l.launchCount())
}

func TestCapture_RelaunchesDisconnectedBrowser(t *testing.T) {
	l := &fakeLauncher{}
	c := newTestCapturer(t, l, testConfig())

	_, err := c.Capture(context.Background(), "https://example.com", Options{})
	require.NoError(t, err)
	l.browsers[0].connected.Store(false)

	_, err = c.Capture(context.Background(), "https://example.com", Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, l.launchCount())
	assert.True(t, l.browsers[0].closed.Load())
	assert.False(t, l.browsers[1].closed.Load())
}

func TestCapture_SelectorTimeout(t *testing.T) {
	l := &fakeLauncher{}
	c := newTestCapturer(t, l, testConfig())

	start := time.Now()
	_, err := c.Capture(context.Background(), "https://example.com", Options{WaitForSelector: neverSelector})
	elapsed := time.Since(start)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCaptureFailed)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Contains(t, err.Error(), neverSelector)
	assert.Less(t, elapsed, 2*time.Second, "selector wait must be bounded")
	assert.Equal(t, int32(1), l.browsers[0].pagesClosed.Load())
}

func TestCapture_NavigationFailure(t *testing.T) {
	cause := errors.New("net::ERR_NAME_NOT_RESOLVED")
	l := &fakeLauncher{gotoErr: cause}
	c := newTestCapturer(t, l, testConfig())

	_, err := c.Capture(context.Background(), "https://nope.invalid", Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCaptureFailed)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, 1, l.launchCount(), "no retry")
}

func TestCapture_LaunchFailure(t *testing.T) {
	l := &fakeLauncher{launchErr: errors.New("chrome not found")}
	c := newTestCapturer(t, l, testConfig())

	_, err := c.Capture(context.Background(), "https://example.com", Options{})
	assert.ErrorIs(t, err, ErrCaptureFailed)
	assert.Contains(t, err.Error(), "chrome not found")
}

func TestCapture_InvalidURL(t *testing.T) {
	l := &fakeLauncher{}
	c := newTestCapturer(t, l, testConfig())

	for _, u := range []string{"", "example.com", "ftp://example.com/x", "https://", "::bad"} {
		_, err := c.Capture(context.Background(), u, Options{})
		assert.ErrorIs(t, err, ErrInvalidURL, u)
		assert.NotErrorIs(t, err, ErrCaptureFailed, u)
	}
	assert.Equal(t, 0, l.launchCount())
}

func TestCapture_DelayHonorsContext(t *testing.T) {
	l := &fakeLauncher{}
	c := newTestCapturer(t, l, testConfig())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := c.Capture(ctx, "https://example.com", Options{Delay: time.Minute})
	assert.ErrorIs(t, err, ErrCaptureFailed)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestCapture_RecentCaptures(t *testing.T) {
	l := &fakeLauncher{}
	cfg := testConfig()
	cfg.CacheSize = 2
	c := newTestCapturer(t, l, cfg)

	var ids []string
	for i := 0; i < 3; i++ {
		shot, err := c.Capture(context.Background(), "https://example.com", Options{})
		require.NoError(t, err)
		ids = append(ids, shot.ID)
	}

	_, ok := c.Get(ids[0])
	assert.False(t, ok, "oldest capture evicted")
	got, ok := c.Get(ids[2])
	require.True(t, ok)
	assert.Equal(t, ids[2], got.ID)
	_, ok = c.Get("unknown")
	assert.False(t, ok)
}

func TestClose_ReleasesBrowser(t *testing.T) {
	l := &fakeLauncher{}
	c := newTestCapturer(t, l, testConfig())

	require.NoError(t, c.Close(), "closing before launch is fine")

	c2 := newTestCapturer(t, l, testConfig())
	_, err := c2.Capture(context.Background(), "https://example.com", Options{})
	require.NoError(t, err)
	require.NoError(t, c2.Close())
	assert.True(t, l.browsers[0].closed.Load())

	_, err = c2.Capture(context.Background(), "https://example.com", Options{})
	assert.ErrorIs(t, err, ErrCaptureFailed)
	assert.Equal(t, 1, l.launchCount())
}

func TestNewCapturer_RequiresLauncher(t *testing.T) {
	_, err := NewCapturer(nil, testConfig(), nil)
	assert.Error(t, err)
}
