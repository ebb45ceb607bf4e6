package scraper

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestFetch(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		statusCode int
		wantError  bool
	}{
		{
			name:       "successful fetch",
			body:       "<html><table></table></html>",
			statusCode: http.StatusOK,
		},
		{
			name:       "HTTP error",
			statusCode: http.StatusNotFound,
			wantError:  true,
		},
		{
			name:       "server error",
			statusCode: http.StatusInternalServerError,
			wantError:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if ua := r.Header.Get("User-Agent"); !strings.Contains(ua, "ffpoints") {
					t.Errorf("User-Agent = %q, should contain 'ffpoints'", ua)
				}
				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			data, err := New().Fetch(context.Background(), server.URL)

			if tt.wantError {
				var fetchErr *FetchError
				if !errors.As(err, &fetchErr) {
					t.Fatalf("Fetch() error = %v, want FetchError", err)
				}
				if fetchErr.StatusCode != tt.statusCode {
					t.Errorf("FetchError.StatusCode = %d, want %d", fetchErr.StatusCode, tt.statusCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("Fetch() unexpected error: %v", err)
			}
			if string(data) != tt.body {
				t.Errorf("Fetch() = %q, want %q", data, tt.body)
			}
		})
	}
}

func TestFetch_CustomUserAgent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ua := r.Header.Get("User-Agent"); ua != "custom/2.0" {
			t.Errorf("User-Agent = %q, want custom/2.0", ua)
		}
	}))
	defer server.Close()

	s := New(WithUserAgent("custom/2.0"), WithTimeout(5*time.Second))
	if _, err := s.Fetch(context.Background(), server.URL); err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}
}

func TestFetch_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := New().Fetch(context.Background(), url)
	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("Fetch() error = %v, want FetchError", err)
	}
	if fetchErr.StatusCode != 0 || fetchErr.Unwrap() == nil {
		t.Errorf("FetchError = %+v, want transport error", fetchErr)
	}
}

func TestFetch_RateLimitHonoursContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer server.Close()

	s := New(WithRateLimit(time.Hour))
	if _, err := s.Fetch(context.Background(), server.URL); err != nil {
		t.Fatalf("first Fetch() error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if _, err := s.Fetch(ctx, server.URL); err == nil {
		t.Error("second Fetch() expected rate limit error")
	}
}

func TestFetch_LocalFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "page.html")
	if err := os.WriteFile(path, []byte("<table></table>"), 0644); err != nil {
		t.Fatal(err)
	}

	s := New()
	for _, loc := range []string{path, "file://" + path} {
		data, err := s.Fetch(context.Background(), loc)
		if err != nil {
			t.Fatalf("Fetch(%q) error: %v", loc, err)
		}
		if string(data) != "<table></table>" {
			t.Errorf("Fetch(%q) = %q", loc, data)
		}
	}

	_, err := s.Fetch(context.Background(), filepath.Join(dir, "missing.html"))
	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Errorf("Fetch(missing) error = %v, want FetchError", err)
	}
}

func TestNew(t *testing.T) {
	s := New()

	if s == nil {
		t.Fatal("New() returned nil")
	}
	if s.client == nil {
		t.Error("scraper client is nil")
	}
	if s.client.Timeout != Timeout {
		t.Errorf("client timeout = %v, want %v", s.client.Timeout, Timeout)
	}
	if s.userAgent != UserAgent {
		t.Errorf("userAgent = %q, want %q", s.userAgent, UserAgent)
	}
}
