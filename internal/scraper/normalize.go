package scraper

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/pfrederiksen/ffpoints/internal/player"
)

// tokenSep separates name, position and team inside a compound cell
var tokenSep = regexp.MustCompile(`\s{2,}|[\n\t]`)

func splitTokens(text string) []string {
	var out []string
	for _, tok := range tokenSep.Split(text, -1) {
		tok = strings.TrimSpace(tok)
		if tok != "" {
			out = append(out, tok)
		}
	}
	return out
}

// ParseFloat coerces a stat cell to a number. Blank cells, dash placeholders
// and anything else unparseable are 0.
func ParseFloat(text string) float64 {
	text = strings.ReplaceAll(strings.TrimSpace(text), ",", "")
	if text == "" {
		return 0
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func isNumeric(text string) bool {
	_, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(text), ",", ""), 64)
	return err == nil
}

// Normalize converts a raw row into a record for schema. ok is false for
// rows with no data cells, such as header rows. index is only used to
// identify the row in a SchemaMismatchError.
func Normalize(row RawRow, schema player.Schema, index int) (rec player.Record, ok bool, err error) {
	if len(row.Cells) == 0 {
		return player.Record{}, false, nil
	}

	identity := make([]string, 0, len(schema.Identity))
	stats := make([]float64, 0, len(schema.Stats))
	for i, c := range row.Cells {
		if c.Compound {
			identity = append(identity, c.Tokens...)
			continue
		}
		// Plain-text identity cells show up on team pages without nested markup.
		if i == 0 && len(schema.Identity) > 0 && c.Text != "" && !isNumeric(c.Text) {
			identity = append(identity, c.Text)
			continue
		}
		stats = append(stats, ParseFloat(c.Text))
	}

	if len(identity) != len(schema.Identity) || len(stats) != len(schema.Stats) {
		return player.Record{}, false, &SchemaMismatchError{
			Row:          index,
			WantIdentity: len(schema.Identity),
			GotIdentity:  len(identity),
			WantStats:    len(schema.Stats),
			GotStats:     len(stats),
		}
	}

	return player.NewRecord(schema, identity, stats), true, nil
}

// NormalizeTable builds a position table from an extracted table. The first
// row that does not fit the schema aborts the whole table.
func NormalizeTable(raw *RawTable, pos player.Position) (*player.Table, error) {
	schema := player.NewSchema(raw.Columns, pos.IsDefense())
	table := player.NewTable(pos, schema, len(raw.Rows))

	for i, row := range raw.Rows {
		rec, ok, err := Normalize(row, schema, i)
		if err != nil {
			return nil, err
		}
		if ok {
			table.Append(rec)
		}
	}
	return table, nil
}
