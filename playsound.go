// Package playsound plays short audio files by delegating to whichever
// native command-line audio utility is available on the host: the
// multimedia API on Windows, afplay on macOS, and gst-play-1.0, ffplay
// or aplay/mpg123 elsewhere. Sounds may be local paths or http(s) URLs;
// remote sounds are downloaded once per process and the downloads are
// removed by Cleanup.
package playsound

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/jmylchreest/playsound/internal/fetch"
	"github.com/jmylchreest/playsound/internal/player"
)

// Options configures a Dispatcher. Zero values select defaults.
type Options struct {
	// Logger receives debug logs. Nil uses slog.Default.
	Logger *slog.Logger
	// HTTPClient is used for remote sounds. Nil uses a client with
	// fetch.DefaultTimeout.
	HTTPClient *http.Client
	// DownloadTimeout overrides the default HTTP client timeout.
	// Ignored when HTTPClient is set.
	DownloadTimeout time.Duration
	// DownloadDir is where remote sounds are stored. Empty uses the
	// system temp directory.
	DownloadDir string
	// UserAgent overrides the User-Agent header on downloads.
	UserAgent string
}

// Dispatcher routes playback requests to a backend. It owns the
// download cache and the lazily selected default backend; create a
// fresh Dispatcher per test for isolation, or use the package-level
// functions for the shared process-wide one.
type Dispatcher struct {
	mu            sync.Mutex
	defaultPlayer player.Player

	cache    *fetch.Cache
	selector *player.Selector
	logger   *slog.Logger

	// selectFn is the default-backend selection; a test seam.
	selectFn func(ctx context.Context) (player.Player, error)
}

// New creates a Dispatcher.
func New(opts Options) *Dispatcher {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	client := opts.HTTPClient
	if client == nil && opts.DownloadTimeout > 0 {
		client = &http.Client{Timeout: opts.DownloadTimeout}
	}

	selector := player.NewSelector(logger)
	return &Dispatcher{
		cache: fetch.NewCache(fetch.CacheOptions{
			Client:    client,
			Dir:       opts.DownloadDir,
			UserAgent: opts.UserAgent,
			Logger:    logger,
		}),
		selector: selector,
		logger:   logger,
		selectFn: selector.SelectDefault,
	}
}

// Play plays sound and blocks until the backend's external process
// exits. An empty backend selects the process default, probing the
// host on first use. sound may be a local path or an http(s) URL.
func (d *Dispatcher) Play(ctx context.Context, sound, backend string) error {
	p, err := d.resolveBackend(ctx, backend)
	if err != nil {
		return err
	}
	path, err := d.cache.Resolve(ctx, sound)
	if err != nil {
		return err
	}

	d.logger.Debug("playing sound", "backend", p.Name(), "path", path)
	return p.Play(ctx, path)
}

// Start begins playing sound on a background goroutine and returns a
// Task handle immediately. Backend and path resolution still happen
// synchronously, so unknown backends, missing files and download
// failures surface here; only playback itself is deferred to the Task.
func (d *Dispatcher) Start(ctx context.Context, sound, backend string) (*Task, error) {
	p, err := d.resolveBackend(ctx, backend)
	if err != nil {
		return nil, err
	}
	path, err := d.cache.Resolve(ctx, sound)
	if err != nil {
		return nil, err
	}

	d.logger.Debug("starting background playback", "backend", p.Name(), "path", path)
	t := newTask()
	go func() {
		t.finish(p.Play(ctx, path))
	}()
	return t, nil
}

// resolveBackend maps an explicit name through the registry, or picks
// the process default on the first auto-selected call. A failed
// selection is not cached; the next call probes again.
func (d *Dispatcher) resolveBackend(ctx context.Context, backend string) (player.Player, error) {
	if backend != "" {
		return player.Resolve(backend)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.defaultPlayer != nil {
		return d.defaultPlayer, nil
	}

	p, err := d.selectFn(ctx)
	if err != nil {
		return nil, err
	}
	d.defaultPlayer = p
	d.logger.Debug("default backend selected", "backend", p.Name())
	return p, nil
}

// ResetDefaultBackend clears the cached default so the next
// auto-selected call probes the host again.
func (d *Dispatcher) ResetDefaultBackend() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.defaultPlayer = nil
}

// Usable reports whether the named backend can be expected to work on
// this host.
func (d *Dispatcher) Usable(ctx context.Context, backend string) bool {
	return d.selector.Usable(ctx, backend)
}

// Cleanup deletes every file downloaded for remote sounds. Call it
// once when done playing, typically deferred from main.
func (d *Dispatcher) Cleanup() error {
	return d.cache.Cleanup()
}

// AvailableBackends returns the names of all registered backends.
func AvailableBackends() []string {
	return player.Available()
}

var (
	defaultDispatcher *Dispatcher
	defaultOnce       sync.Once
)

// Default returns the shared process-wide Dispatcher.
func Default() *Dispatcher {
	defaultOnce.Do(func() {
		defaultDispatcher = New(Options{})
	})
	return defaultDispatcher
}

// Play plays sound with the default backend and blocks until playback
// finishes, using the shared Dispatcher.
func Play(sound string) error {
	return Default().Play(context.Background(), sound, "")
}

// Start plays sound in the background with the default backend, using
// the shared Dispatcher.
func Start(sound string) (*Task, error) {
	return Default().Start(context.Background(), sound, "")
}

// Cleanup removes the shared Dispatcher's cached downloads. There is
// no portable at-exit hook in Go; defer this from main.
func Cleanup() error {
	return Default().Cleanup()
}
