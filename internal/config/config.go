package config

import (
	"fmt"
	"maps"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"

	"github.com/pfrederiksen/ffpoints/internal/player"
	"github.com/pfrederiksen/ffpoints/internal/scoring"
)

const (
	// AppName is used for XDG directory paths.
	AppName = "ffpoints"

	DefaultLeagueName  = "Radical Ultimate FFF Experience"
	DefaultSeason      = 2019
	DefaultScoring     = "ppr"
	DefaultTimeout     = 30 * time.Second
	DefaultRateLimit   = 1 * time.Second
	DefaultConcurrency = 1
	DefaultCacheTTL    = 24 * time.Hour
	DefaultUserAgent   = "ffpoints/1.0 (github.com/pfrederiksen/ffpoints)"

	// StatsBaseURL is the CBS Sports fantasy stats root.
	StatsBaseURL = "https://www.cbssports.com/fantasy/football/stats"
)

// League describes what to score
type League struct {
	Name    string
	Season  int
	Week    int
	Scoring string
	Sources map[player.Position]string
	Rules   map[player.Position]scoring.Rule
}

// Config holds the league plus fetch behaviour
type Config struct {
	League League

	Timeout     time.Duration
	RateLimit   time.Duration
	Concurrency int
	UserAgent   string

	// CacheDir enables the raw page cache when non-empty.
	CacheDir string
	CacheTTL time.Duration
}

// Default returns the reference league with default fetch settings
func Default() *Config {
	c := &Config{
		League: League{
			Name:    DefaultLeagueName,
			Season:  DefaultSeason,
			Scoring: DefaultScoring,
			Rules:   scoring.DefaultRules(),
		},
		Timeout:     DefaultTimeout,
		RateLimit:   DefaultRateLimit,
		Concurrency: DefaultConcurrency,
		UserAgent:   DefaultUserAgent,
		CacheTTL:    DefaultCacheTTL,
	}
	c.League.Sources = DefaultSources(c.League.Season, c.League.Week, c.League.Scoring)
	return c
}

// URLFor builds the CBS stats page URL for a position. Week 0 selects the
// season totals page.
func URLFor(pos player.Position, season, week int, format string) string {
	period := "season"
	if week > 0 {
		period = fmt.Sprintf("%d", week)
	}
	return fmt.Sprintf("%s/%s/%d/%s/stats/%s/", StatsBaseURL, pos, season, period, strings.ToLower(format))
}

// DefaultSources returns a CBS URL for every position
func DefaultSources(season, week int, format string) map[player.Position]string {
	sources := make(map[player.Position]string, len(player.Positions))
	for _, pos := range player.Positions {
		sources[pos] = URLFor(pos, season, week, format)
	}
	return sources
}

// SetPeriod changes the season, week and scoring format and regenerates
// every source that still points at a generated CBS URL. Custom locators
// are left alone and removed positions stay removed.
func (c *Config) SetPeriod(season, week int, format string) {
	old := DefaultSources(c.League.Season, c.League.Week, c.League.Scoring)
	next := DefaultSources(season, week, format)
	sources := maps.Clone(c.League.Sources)
	if sources == nil {
		sources = make(map[player.Position]string)
	}
	for _, pos := range player.Positions {
		if cur, ok := sources[pos]; ok && cur == old[pos] {
			sources[pos] = next[pos]
		}
	}
	c.League.Season = season
	c.League.Week = week
	c.League.Scoring = format
	c.League.Sources = sources
}

// Rule returns the scoring rule for pos; nil means unscored.
func (l League) Rule(pos player.Position) scoring.Rule {
	return l.Rules[pos]
}

// Validate checks the configuration, returning the first problem found.
func (c *Config) Validate() error {
	if c.League.Season < 1000 || c.League.Season > 9999 {
		return ErrInvalidSeason
	}
	if c.League.Week < 0 || c.League.Week > 22 {
		return ErrInvalidWeek
	}
	if strings.TrimSpace(c.League.Scoring) == "" {
		return ErrInvalidScoring
	}
	if len(c.League.Sources) == 0 {
		return ErrNoSources
	}
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	if c.RateLimit < 0 {
		return ErrInvalidRateLimit
	}
	if c.Concurrency < 1 {
		return ErrInvalidConcurrency
	}
	return nil
}

// XDGConfigDir returns the per-user config directory
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// XDGCacheDir returns the per-user cache directory used for raw pages
func XDGCacheDir() string {
	return filepath.Join(xdg.CacheHome, AppName)
}
