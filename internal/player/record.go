package player

import (
	"maps"
	"strconv"
)

// Record is one parsed row of a stats table.
// Stats is dense over the table schema: a stat the source left blank is 0.
type Record struct {
	Name     string             `json:"name"`
	Position string             `json:"position,omitempty"`
	Team     string             `json:"team,omitempty"`
	Stats    map[string]float64 `json:"stats"`
	Points   float64            `json:"adjusted_fantasy_points"`
	Scored   bool               `json:"scored"`
}

// NewRecord zips identity and stat values against schema. Callers check the
// lengths first; surplus values on either side are ignored.
func NewRecord(schema Schema, identity []string, stats []float64) Record {
	r := Record{Stats: make(map[string]float64, len(schema.Stats))}
	for i, v := range identity {
		switch i {
		case 0:
			r.Name = v
		case 1:
			r.Position = v
		case 2:
			r.Team = v
		}
	}
	for i, label := range schema.Stats {
		if i < len(stats) {
			r.Stats[label] = stats[i]
		}
	}
	return r
}

// Stat returns the value for a stat column and whether the column exists
func (r Record) Stat(label string) (float64, bool) {
	v, ok := r.Stats[label]
	return v, ok
}

// Clone returns a deep copy so scoring can add derived stats without
// touching the source record.
func (r Record) Clone() Record {
	out := r
	out.Stats = maps.Clone(r.Stats)
	if out.Stats == nil {
		out.Stats = make(map[string]float64)
	}
	return out
}

// identity returns the i-th identity value
func (r Record) identity(i int) string {
	switch i {
	case 0:
		return r.Name
	case 1:
		return r.Position
	case 2:
		return r.Team
	}
	return ""
}

// FormatStat renders a stat value without trailing zeros
func FormatStat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatPoints renders a point total to two decimals
func FormatPoints(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
