package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"time"
)

// DefaultDataPath is where the catalog lives relative to the page.
const DefaultDataPath = "data.json"

var ErrUpstreamStatus = errors.New("catalog upstream returned non-success status")

// Source produces the flat list of catalog items.
type Source interface {
	Load(ctx context.Context) ([]Item, error)
}

// FileSource reads data.json from disk.
type FileSource struct {
	Path string
}

func (s FileSource) Load(ctx context.Context) ([]Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path := s.Path
	if path == "" {
		path = DefaultDataPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	items, err := DecodeItems(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return items, nil
}

func (s FileSource) String() string { return "file:" + s.Path }

// HTTPSource fetches data.json from a remote URL.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

func (s HTTPSource) Load(ctx context.Context) ([]Item, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", s.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch %s: %w: %d", s.URL, ErrUpstreamStatus, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.URL, err)
	}
	items, err := DecodeItems(body)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.URL, err)
	}
	return items, nil
}

func (s HTTPSource) String() string { return "http:" + s.URL }

// CachedSource keeps the last successful load for TTL. Failures are never
// cached.
type CachedSource struct {
	Source Source
	TTL    time.Duration

	mu       sync.Mutex
	items    []Item
	loadedAt time.Time
	now      func() time.Time
}

// NewCachedSource wraps src. A non-positive ttl disables caching.
func NewCachedSource(src Source, ttl time.Duration) *CachedSource {
	return &CachedSource{Source: src, TTL: ttl, now: time.Now}
}

func (c *CachedSource) Load(ctx context.Context) ([]Item, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now
	if now == nil {
		now = time.Now
	}
	if !c.loadedAt.IsZero() && c.TTL > 0 && now().Sub(c.loadedAt) < c.TTL {
		return c.items, nil
	}

	items, err := c.Source.Load(ctx)
	if err != nil {
		return nil, err
	}
	c.items = items
	c.loadedAt = now()
	return items, nil
}

// Invalidate drops the cached catalog.
func (c *CachedSource) Invalidate() {
	c.mu.Lock()
	c.items = nil
	c.loadedAt = time.Time{}
	c.mu.Unlock()
}

func (c *CachedSource) String() string { return fmt.Sprintf("cached(%v)", c.Source) }

// Result is the outcome of one asynchronous load.
type Result struct {
	Items []Item
	Err   error
}

// LoadAsync runs src.Load in its own goroutine. The returned channel yields
// exactly one Result and is then closed.
func LoadAsync(ctx context.Context, src Source) <-chan Result {
	out := make(chan Result, 1)
	go func() {
		defer close(out)
		items, err := src.Load(ctx)
		out <- Result{Items: items, Err: err}
	}()
	return out
}
