// Package scraper fetches fantasy stats pages and turns their primary table
// into player tables.
//
// Fetching goes through the Fetcher interface so callers can substitute local
// files, a page cache, or a test server. Extract locates the first table in the
// markup and collapses its two-part header cells ("yds" + "Passing Yards") into
// labels like "yds (Passing Yards)". Normalize converts each raw row into a
// player.Record, splitting the compound name/position/team cell and coercing
// every other cell to a number, with anything unparseable counted as zero.
package scraper
