package player

import "slices"

// Synthetic identity labels inserted for offensive positions, whose first
// cell packs name, position and team together.
const (
	ColumnPosition = "Position"
	ColumnTeam     = "Team"
)

// ColumnPoints is the display label of the computed score.
const ColumnPoints = "adjusted fantasy points"

// Schema describes the columns shared by every record of a table.
// Identity columns hold text, stat columns hold numbers.
type Schema struct {
	Identity []string `json:"identity"`
	Stats    []string `json:"stats"`
}

// NewSchema splits extracted column labels into identity and stat columns.
// The first label is always identity; offensive positions carry two more.
func NewSchema(columns []string, defense bool) Schema {
	n := 3
	if defense {
		n = 1
	}
	if n > len(columns) {
		n = len(columns)
	}
	return Schema{
		Identity: slices.Clone(columns[:n]),
		Stats:    slices.Clone(columns[n:]),
	}
}

// Len is the number of value slots a row must produce
func (s Schema) Len() int {
	return len(s.Identity) + len(s.Stats)
}

// Columns returns all labels in display order
func (s Schema) Columns() []string {
	cols := make([]string, 0, s.Len())
	cols = append(cols, s.Identity...)
	return append(cols, s.Stats...)
}

// HasStat reports whether label is one of the schema's stat columns
func (s Schema) HasStat(label string) bool {
	return slices.Contains(s.Stats, label)
}

// WithStats returns a copy of the schema with any missing labels appended.
func (s Schema) WithStats(labels ...string) Schema {
	out := Schema{
		Identity: slices.Clone(s.Identity),
		Stats:    slices.Clone(s.Stats),
	}
	for _, l := range labels {
		if !out.HasStat(l) {
			out.Stats = append(out.Stats, l)
		}
	}
	return out
}
