package scraper

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"
)

type countingFetcher struct {
	calls int
	data  []byte
	err   error
}

func (f *countingFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	f.calls++
	return f.data, f.err
}

func TestCachedFetcher(t *testing.T) {
	cache, err := NewCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewCache() error: %v", err)
	}
	next := &countingFetcher{data: []byte("<table></table>")}
	f := &CachedFetcher{Next: next, Cache: cache}

	for i := 0; i < 3; i++ {
		data, err := f.Fetch(context.Background(), "https://example.com/qb")
		if err != nil {
			t.Fatalf("Fetch() error: %v", err)
		}
		if string(data) != "<table></table>" {
			t.Errorf("Fetch() = %q", data)
		}
	}
	if next.calls != 1 {
		t.Errorf("underlying fetcher called %d times, want 1", next.calls)
	}

	if _, err := f.Fetch(context.Background(), "https://example.com/rb"); err != nil {
		t.Fatalf("Fetch(rb) error: %v", err)
	}
	if next.calls != 2 {
		t.Errorf("underlying fetcher called %d times, want 2", next.calls)
	}
}

func TestCachedFetcher_ErrorNotCached(t *testing.T) {
	cache, err := NewCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewCache() error: %v", err)
	}
	next := &countingFetcher{err: errors.New("boom")}
	f := &CachedFetcher{Next: next, Cache: cache}

	if _, err := f.Fetch(context.Background(), "https://example.com/qb"); err == nil {
		t.Fatal("Fetch() expected error")
	}
	if _, ok, _ := cache.Load("https://example.com/qb"); ok {
		t.Error("failed fetch was cached")
	}
}

func TestCache_TTL(t *testing.T) {
	cache, err := NewCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewCache() error: %v", err)
	}
	cache.TTL = time.Hour

	if err := cache.Save("fresh", []byte("a")); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if err := cache.Save("stale", []byte("b")); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	old := time.Now().Add(-2 * time.Hour)
	if err := os.Chtimes(cache.path("stale"), old, old); err != nil {
		t.Fatalf("Chtimes() error: %v", err)
	}

	if _, ok, _ := cache.Load("fresh"); !ok {
		t.Error("fresh page should be a hit")
	}
	if _, ok, _ := cache.Load("stale"); ok {
		t.Error("stale page should be a miss")
	}
	if _, err := os.Stat(cache.path("stale")); !os.IsNotExist(err) {
		t.Error("stale page should be removed on load")
	}
}

func TestCache_CleanExpired(t *testing.T) {
	cache, err := NewCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewCache() error: %v", err)
	}

	for _, url := range []string{"a", "b", "c"} {
		if err := cache.Save(url, []byte(url)); err != nil {
			t.Fatalf("Save() error: %v", err)
		}
	}
	old := time.Now().Add(-48 * time.Hour)
	for _, url := range []string{"a", "b"} {
		if err := os.Chtimes(cache.path(url), old, old); err != nil {
			t.Fatalf("Chtimes() error: %v", err)
		}
	}

	if n, _ := cache.CleanExpired(); n != 0 {
		t.Errorf("CleanExpired() without TTL removed %d", n)
	}

	cache.TTL = 24 * time.Hour
	n, err := cache.CleanExpired()
	if err != nil {
		t.Fatalf("CleanExpired() error: %v", err)
	}
	if n != 2 {
		t.Errorf("CleanExpired() = %d, want 2", n)
	}
	if _, ok, _ := cache.Load("c"); !ok {
		t.Error("unexpired page was removed")
	}
}
