// Package player holds the parsed form of a stats page: positions, the column
// schema shared by every row of a table, typed player records and the
// per-position table that owns them.
//
// Records are built once by the scraper's normalizer and never edited in place.
// Scoring produces a new table whose records carry adjusted fantasy points.
package player
