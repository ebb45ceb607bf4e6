package player

import (
	"fmt"
	"sort"
)

// Table is the collection of records parsed for one position.
type Table struct {
	Position Position `json:"position"`
	Schema   Schema   `json:"schema"`
	Records  []Record `json:"players"`
	Scored   bool     `json:"scored"`
}

// NewTable creates an empty table sized for n records
func NewTable(pos Position, schema Schema, n int) *Table {
	return &Table{
		Position: pos,
		Schema:   schema,
		Records:  make([]Record, 0, n),
	}
}

// Len returns the number of records
func (t *Table) Len() int {
	return len(t.Records)
}

// Append adds a fully built record
func (t *Table) Append(r Record) {
	t.Records = append(t.Records, r)
}

// SortByPoints orders records by adjusted fantasy points, highest first.
// Ties keep their source order.
func (t *Table) SortByPoints() {
	sort.SliceStable(t.Records, func(i, j int) bool {
		return t.Records[i].Points > t.Records[j].Points
	})
}

// SortBy orders records by a stat column (or the points column), highest
// first. Ties keep their current order.
func (t *Table) SortBy(label string) error {
	if label == "" || label == ColumnPoints {
		t.SortByPoints()
		return nil
	}
	if !t.Schema.HasStat(label) {
		return fmt.Errorf("unknown column %q for %s", label, t.Position)
	}
	sort.SliceStable(t.Records, func(i, j int) bool {
		return t.Records[i].Stats[label] > t.Records[j].Stats[label]
	})
	return nil
}

// Top returns a shallow copy of the table holding at most n records.
// n <= 0 keeps every record.
func (t *Table) Top(n int) *Table {
	out := *t
	if n > 0 && n < len(t.Records) {
		out.Records = t.Records[:n]
	}
	return &out
}

// Columns returns the display header, including the points column when the
// table has been scored.
func (t *Table) Columns() []string {
	cols := t.Schema.Columns()
	if t.Scored {
		cols = append(cols, ColumnPoints)
	}
	return cols
}

// Rows renders every record as strings aligned with Columns.
func (t *Table) Rows() [][]string {
	rows := make([][]string, 0, len(t.Records))
	for _, r := range t.Records {
		row := make([]string, 0, t.Schema.Len()+1)
		for i := range t.Schema.Identity {
			row = append(row, r.identity(i))
		}
		for _, label := range t.Schema.Stats {
			row = append(row, FormatStat(r.Stats[label]))
		}
		if t.Scored {
			row = append(row, FormatPoints(r.Points))
		}
		rows = append(rows, row)
	}
	return rows
}
