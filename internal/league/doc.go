// Package league builds every position table for one league: it fetches each
// source page, extracts and normalizes the stats table, scores it with the
// league's rule for that position and sorts the result by adjusted fantasy
// points.
//
// A failure at any stage for any position aborts the whole build; there is no
// partial league.
package league
