package scraper

import "fmt"

// FetchError reports a failure retrieving a source page
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetching %s: unexpected status code: %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// ParseError reports markup without the expected table structure
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parsing stats table: %s: %v", e.Reason, e.Err)
	}
	return "parsing stats table: " + e.Reason
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// SchemaMismatchError reports a row whose values do not line up with the
// table's columns.
type SchemaMismatchError struct {
	Row          int
	WantIdentity int
	GotIdentity  int
	WantStats    int
	GotStats     int
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("row %d: got %d identity and %d stat values, schema has %d and %d",
		e.Row, e.GotIdentity, e.GotStats, e.WantIdentity, e.WantStats)
}
