package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	UserAgent   = "ffpoints/1.0 (github.com/pfrederiksen/ffpoints)"
	Timeout     = 30 * time.Second
	MaxBodySize = 10 << 20
)

// Fetcher returns the raw markup behind a source locator
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Scraper fetches stats pages over HTTP. Locators without an http(s) scheme
// are read from the local filesystem.
type Scraper struct {
	client    *http.Client
	userAgent string
	limiter   *rate.Limiter
}

// Option configures a Scraper
type Option func(*Scraper)

// WithTimeout sets the per-request timeout
func WithTimeout(d time.Duration) Option {
	return func(s *Scraper) {
		if d > 0 {
			s.client.Timeout = d
		}
	}
}

// WithUserAgent overrides the User-Agent header
func WithUserAgent(ua string) Option {
	return func(s *Scraper) {
		if ua != "" {
			s.userAgent = ua
		}
	}
}

// WithRateLimit spaces requests at least interval apart. Zero disables the limit.
func WithRateLimit(interval time.Duration) Option {
	return func(s *Scraper) {
		if interval > 0 {
			s.limiter = rate.NewLimiter(rate.Every(interval), 1)
		} else {
			s.limiter = rate.NewLimiter(rate.Inf, 1)
		}
	}
}

// WithHTTPClient replaces the underlying client
func WithHTTPClient(c *http.Client) Option {
	return func(s *Scraper) {
		if c != nil {
			s.client = c
		}
	}
}

// New creates a new Scraper instance
func New(opts ...Option) *Scraper {
	s := &Scraper{
		client: &http.Client{
			Timeout: Timeout,
		},
		userAgent: UserAgent,
		limiter:   rate.NewLimiter(rate.Inf, 1),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Fetch retrieves the page at url
func (s *Scraper) Fetch(ctx context.Context, url string) ([]byte, error) {
	if !isRemote(url) {
		return readLocal(url)
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{URL: url, Err: fmt.Errorf("creating request: %w", err)}
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize))
	if err != nil {
		return nil, &FetchError{URL: url, Err: fmt.Errorf("reading body: %w", err)}
	}
	return body, nil
}

func isRemote(url string) bool {
	return strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://")
}

// readLocal loads a file:// locator or plain path
func readLocal(url string) ([]byte, error) {
	path := strings.TrimPrefix(url, "file://")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	return data, nil
}
