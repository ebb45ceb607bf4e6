package scraper

import (
	"context"
	"crypto/sha1"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Cache keeps raw page markup on disk, one file per source locator.
type Cache struct {
	dir string

	// TTL is how long a cached page stays valid; zero keeps pages forever.
	TTL time.Duration
}

// NewCache creates a Cache rooted at dir, creating it if needed
func NewCache(dir string) (*Cache, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(dir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dir = filepath.Join(home, dir[2:])
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}

	return &Cache{dir: dir}, nil
}

// Dir returns the cache directory
func (c *Cache) Dir() string {
	return c.dir
}

func (c *Cache) path(url string) string {
	return filepath.Join(c.dir, fmt.Sprintf("%x.html", sha1.Sum([]byte(url))))
}

func (c *Cache) expired(info os.FileInfo) bool {
	return c.TTL > 0 && time.Since(info.ModTime()) > c.TTL
}

// Load returns the cached page for url. ok is false on a cache miss or when
// the page has expired; expired pages are removed.
func (c *Cache) Load(url string) (data []byte, ok bool, err error) {
	p := c.path(url)
	if info, err := os.Stat(p); err == nil && c.expired(info) {
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			return nil, false, fmt.Errorf("removing expired page: %w", err)
		}
		return nil, false, nil
	}

	data, err = os.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("reading cached page: %w", err)
	}
	return data, true, nil
}

// Save stores the page for url
func (c *Cache) Save(url string, data []byte) error {
	if err := os.WriteFile(c.path(url), data, 0644); err != nil {
		return fmt.Errorf("writing cached page: %w", err)
	}
	return nil
}

// CleanExpired removes every expired page and returns how many were removed
func (c *Cache) CleanExpired() (int, error) {
	if c.TTL <= 0 {
		return 0, nil
	}
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return 0, fmt.Errorf("reading cache directory: %w", err)
	}

	removed := 0
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".html" {
			continue
		}
		info, err := e.Info()
		if err != nil || !c.expired(info) {
			continue
		}
		if err := os.Remove(filepath.Join(c.dir, e.Name())); err != nil {
			return removed, fmt.Errorf("removing expired page: %w", err)
		}
		removed++
	}
	return removed, nil
}

// CachedFetcher serves pages from a Cache and fills it from Next on a miss.
type CachedFetcher struct {
	Next  Fetcher
	Cache *Cache
}

// Fetch implements Fetcher
func (f *CachedFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	data, ok, err := f.Cache.Load(url)
	if err != nil {
		return nil, err
	}
	if ok {
		return data, nil
	}

	data, err = f.Next.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	if err := f.Cache.Save(url, data); err != nil {
		return nil, err
	}
	return data, nil
}
