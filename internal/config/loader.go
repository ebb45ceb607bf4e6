package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/pfrederiksen/ffpoints/internal/player"
	"github.com/pfrederiksen/ffpoints/internal/scoring"
)

// DefaultConfigFile is looked up in the working directory
const DefaultConfigFile = ".ffpoints.yaml"

// File is the YAML layout of a league file
type File struct {
	Name    string                  `yaml:"name"`
	Season  int                     `yaml:"season"`
	Week    int                     `yaml:"week"`
	Scoring string                  `yaml:"scoring"`
	Sources map[string]string       `yaml:"sources"`
	Rules   map[string]scoring.Rule `yaml:"rules"`
	Fetch   FetchFile               `yaml:"fetch"`
}

// FetchFile is the fetch section of a league file
type FetchFile struct {
	Timeout     time.Duration  `yaml:"timeout"`
	RateLimit   *time.Duration `yaml:"rate_limit"`
	Concurrency int            `yaml:"concurrency"`
	UserAgent   string         `yaml:"user_agent"`
	CacheDir    string         `yaml:"cache_dir"`
	CacheTTL    *time.Duration `yaml:"cache_ttl"`
}

// Load reads a league file and merges it over Default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user-provided config path
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// Parse merges YAML league settings over Default.
func Parse(data []byte) (*Config, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return f.apply(Default())
}

func (f File) apply(c *Config) (*Config, error) {
	if f.Name != "" {
		c.League.Name = f.Name
	}

	season, week, format := c.League.Season, c.League.Week, c.League.Scoring
	if f.Season != 0 {
		season = f.Season
	}
	if f.Week != 0 {
		week = f.Week
	}
	if f.Scoring != "" {
		format = f.Scoring
	}
	c.SetPeriod(season, week, format)

	for key, url := range f.Sources {
		pos, err := player.ParsePosition(key)
		if err != nil {
			return nil, fmt.Errorf("sources: %w", err)
		}
		if url == "" {
			delete(c.League.Sources, pos)
			continue
		}
		c.League.Sources[pos] = url
	}

	for key, rule := range f.Rules {
		pos, err := player.ParsePosition(key)
		if err != nil {
			return nil, fmt.Errorf("rules: %w", err)
		}
		c.League.Rules[pos] = rule
	}

	if f.Fetch.Timeout != 0 {
		c.Timeout = f.Fetch.Timeout
	}
	if f.Fetch.RateLimit != nil {
		c.RateLimit = *f.Fetch.RateLimit
	}
	if f.Fetch.Concurrency != 0 {
		c.Concurrency = f.Fetch.Concurrency
	}
	if f.Fetch.UserAgent != "" {
		c.UserAgent = f.Fetch.UserAgent
	}
	if f.Fetch.CacheDir != "" {
		c.CacheDir = f.Fetch.CacheDir
	}
	if f.Fetch.CacheTTL != nil {
		c.CacheTTL = *f.Fetch.CacheTTL
	}

	return c, nil
}

// FindConfigFile searches for a league file in the following order:
// 1. configPath, if specified
// 2. .ffpoints.yaml in the current directory
// 3. config.yaml in the XDG config directory
//
// Returns an empty string if none exists.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	if cwd, err := os.Getwd(); err == nil {
		p := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	p := filepath.Join(XDGConfigDir(), "config.yaml")
	if _, err := os.Stat(p); err == nil {
		return p
	}

	return ""
}
