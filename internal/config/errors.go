package config

import "errors"

// Configuration validation errors returned by Config.Validate.
var (
	// ErrNoSources is returned when no position has a source locator.
	ErrNoSources = errors.New("no sources configured: set a season or list sources per position")

	// ErrInvalidSeason is returned when the season is not a plausible NFL year.
	ErrInvalidSeason = errors.New("invalid season: must be a four-digit year")

	// ErrInvalidWeek is returned when the week is outside 0-22. Week 0 means
	// the full season.
	ErrInvalidWeek = errors.New("invalid week: must be between 0 and 22")

	// ErrInvalidTimeout is returned when the fetch timeout is not positive.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidRateLimit is returned when the delay between requests is negative.
	ErrInvalidRateLimit = errors.New("invalid rate limit: must be non-negative")

	// ErrInvalidConcurrency is returned when fewer than one fetch may run at a time.
	ErrInvalidConcurrency = errors.New("invalid concurrency: must be at least 1")

	// ErrInvalidScoring is returned when the scoring format is empty.
	ErrInvalidScoring = errors.New("invalid scoring format: must not be empty")
)

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")
