// Package media is a read-through cache for backend-hosted uploads.
// Profile photos are referenced by backend file paths; serving them
// through the frontend keeps the backend host out of page markup and
// avoids refetching the same image on every card render.
package media

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path"
	"strings"
	"sync"

	"github.com/spf13/afero"
)

// Fetcher retrieves an upload from the backend host.
type Fetcher interface {
	Media(ctx context.Context, path string) (io.ReadCloser, string, error)
}

// Cache serves uploads from an afero filesystem, fetching misses from the
// backend exactly once per path.
type Cache struct {
	fs      afero.Fs
	fetcher Fetcher

	mu       sync.Mutex
	inflight map[string]*sync.WaitGroup
}

// NewCache creates a cache over fs. Production wires an OsFs rooted at the
// configured cache directory; tests use a MemMapFs.
func NewCache(fs afero.Fs, fetcher Fetcher) *Cache {
	return &Cache{
		fs:       fs,
		fetcher:  fetcher,
		inflight: map[string]*sync.WaitGroup{},
	}
}

// Open returns the content and content type for the upload at remotePath,
// reading the cache first and falling back to the backend. The caller owns
// the returned reader.
func (c *Cache) Open(ctx context.Context, remotePath string) (io.ReadCloser, string, error) {
	key, err := cacheKey(remotePath)
	if err != nil {
		return nil, "", err
	}

	// Fast path: already cached.
	if f, err := c.fs.Open(key); err == nil {
		return f, contentTypeFor(key), nil
	}

	// Coalesce concurrent fetches of the same path.
	c.mu.Lock()
	if wg, ok := c.inflight[key]; ok {
		c.mu.Unlock()
		wg.Wait()
		if f, err := c.fs.Open(key); err == nil {
			return f, contentTypeFor(key), nil
		}
		// The other fetch failed; fall through and try ourselves.
		c.mu.Lock()
	}
	wg := &sync.WaitGroup{}
	wg.Add(1)
	c.inflight[key] = wg
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		delete(c.inflight, key)
		c.mu.Unlock()
		wg.Done()
	}()

	body, ctype, err := c.fetcher.Media(ctx, remotePath)
	if err != nil {
		return nil, "", err
	}
	defer body.Close()

	if err := c.fs.MkdirAll(path.Dir(key), 0o755); err != nil {
		return nil, "", fmt.Errorf("preparing cache dir: %w", err)
	}
	if err := afero.WriteReader(c.fs, key, body); err != nil {
		return nil, "", fmt.Errorf("writing cache entry: %w", err)
	}

	f, err := c.fs.Open(key)
	if err != nil {
		return nil, "", fmt.Errorf("reopening cache entry: %w", err)
	}
	if ctype == "" {
		ctype = contentTypeFor(key)
	}
	return f, ctype, nil
}

// Fs exposes the underlying cache filesystem for inspection in tests.
func (c *Cache) Fs() afero.Fs { return c.fs }

// cacheKey normalizes a backend file path into a cache-relative path.
// Cleaning against an anchored root resolves any ".." segments, so the key
// cannot climb out of the cache filesystem.
func cacheKey(remotePath string) (string, error) {
	cleaned := path.Clean("/" + strings.TrimPrefix(remotePath, "/"))
	if cleaned == "/" || strings.Contains(cleaned, "..") {
		return "", fmt.Errorf("invalid media path %q", remotePath)
	}
	return strings.TrimPrefix(cleaned, "/"), nil
}

func contentTypeFor(key string) string {
	if ctype := mime.TypeByExtension(path.Ext(key)); ctype != "" {
		return ctype
	}
	return "application/octet-stream"
}
