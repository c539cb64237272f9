package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/oklog/ulid/v2"
)

// Errors returned by resolution and download.
var (
	// ErrFileNotFound indicates a local sound path that does not exist.
	ErrFileNotFound = errors.New("file not found")
	// ErrDownloadFailed indicates a network or HTTP failure fetching a
	// remote sound.
	ErrDownloadFailed = errors.New("download failed")
)

// Default download settings. The User-Agent matches a desktop browser;
// some sound hosts refuse generic client strings.
const (
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 6.1; Win64; x64)"
	DefaultTimeout   = 30 * time.Second
)

// CacheOptions configures a Cache. Zero values select defaults.
type CacheOptions struct {
	// Client is the HTTP client for downloads. Nil uses a client with
	// DefaultTimeout.
	Client *http.Client
	// Dir is the directory for downloaded files. Empty uses os.TempDir.
	Dir string
	// UserAgent overrides the request User-Agent header.
	UserAgent string
	// Logger receives download debug logs. Nil uses slog.Default.
	Logger *slog.Logger
}

// Cache maps URLs to downloaded local files. Each distinct URL is
// fetched at most once per Cache lifetime; concurrent first requests
// for the same URL share a single download. Every file the cache
// creates is owned by it and removed by Cleanup.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*cacheEntry

	client    *http.Client
	dir       string
	userAgent string
	logger    *slog.Logger
}

// cacheEntry is the per-URL slot. ready closes when the download
// finishes; path and err are valid only after that.
type cacheEntry struct {
	ready chan struct{}
	path  string
	err   error
}

// NewCache creates a Cache.
func NewCache(opts CacheOptions) *Cache {
	client := opts.Client
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	dir := opts.Dir
	if dir == "" {
		dir = os.TempDir()
	}
	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Cache{
		entries:   make(map[string]*cacheEntry),
		client:    client,
		dir:       dir,
		userAgent: userAgent,
		logger:    logger,
	}
}

// GetOrFetch returns the local path for link, downloading it on first
// request. Concurrent callers for the same uncached link wait for the
// one in-flight download rather than racing their own.
func (c *Cache) GetOrFetch(ctx context.Context, link string) (string, error) {
	c.mu.Lock()
	if e, ok := c.entries[link]; ok {
		c.mu.Unlock()
		select {
		case <-e.ready:
		case <-ctx.Done():
			return "", fmt.Errorf("%w: %w", ErrDownloadFailed, ctx.Err())
		}
		return e.path, e.err
	}

	e := &cacheEntry{ready: make(chan struct{})}
	c.entries[link] = e
	c.mu.Unlock()

	e.path, e.err = c.download(ctx, link)
	close(e.ready)

	if e.err != nil {
		// Failed downloads are not cached; the next request retries.
		c.mu.Lock()
		if c.entries[link] == e {
			delete(c.entries, link)
		}
		c.mu.Unlock()
	}
	return e.path, e.err
}

// download fetches link into a fresh temporary file and returns its path.
func (c *Cache) download(ctx context.Context, link string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDownloadFailed, err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDownloadFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %s: %s", ErrDownloadFailed, link, resp.Status)
	}

	dst := filepath.Join(c.dir, "playsound-"+ulid.Make().String()+urlSuffix(link))
	f, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDownloadFailed, err)
	}

	n, err := io.Copy(f, resp.Body)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(dst)
		return "", fmt.Errorf("%w: %s: %w", ErrDownloadFailed, link, err)
	}

	c.logger.Debug("downloaded sound",
		"url", link, "path", dst, "size", humanize.Bytes(uint64(n)))
	return dst, nil
}

// urlSuffix extracts the file extension from the URL's path component,
// so the temporary file keeps a recognizable suffix for the players.
func urlSuffix(link string) string {
	u, err := url.Parse(link)
	if err != nil {
		return ""
	}
	return path.Ext(u.Path)
}

// Cleanup deletes every file the cache downloaded. Individual delete
// failures do not stop the sweep; they are joined into the returned
// error. The cache is empty afterwards.
func (c *Cache) Cleanup() error {
	c.mu.Lock()
	entries := c.entries
	c.entries = make(map[string]*cacheEntry)
	c.mu.Unlock()

	var errs []error
	for link, e := range entries {
		<-e.ready
		if e.err != nil || e.path == "" {
			continue
		}
		if err := os.Remove(e.path); err != nil && !errors.Is(err, os.ErrNotExist) {
			c.logger.Warn("failed to remove cached download",
				"url", link, "path", e.path, "error", err)
			errs = append(errs, err)
			continue
		}
		c.logger.Debug("removed cached download", "url", link, "path", e.path)
	}
	return errors.Join(errs...)
}
