package scraper

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pfrederiksen/ffpoints/internal/player"
)

// headerRowSelector matches the stat abbreviation row on CBS stats pages
const headerRowSelector = "tr.TableBase-headTr"

// RawTable is the untyped content of a stats table
type RawTable struct {
	Columns []string
	Rows    []RawRow
	// Dropped holds a trailing header fragment that had no partner.
	Dropped string
}

// RawRow is one tr of the table, in source order
type RawRow struct {
	Cells []Cell
}

// Cell is a single td. Compound cells pack several identity values
// (name, position, team) into nested spans.
type Cell struct {
	Text     string
	Compound bool
	Tokens   []string
}

// Extract parses markup and returns the column labels and rows of its first
// table. Offensive tables get synthetic Position and Team labels after the
// identity column.
func Extract(r io.Reader, defense bool) (*RawTable, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, &ParseError{Reason: "reading markup", Err: err}
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, &ParseError{Reason: "no table element"}
	}

	header := table.Find(headerRowSelector).First()
	if header.Length() == 0 {
		header = table.Find("thead tr").Last()
	}
	if header.Length() == 0 {
		return nil, &ParseError{Reason: "missing header row"}
	}

	fragments := headerFragments(header.Text())
	if len(fragments) == 0 {
		return nil, &ParseError{Reason: "empty header row"}
	}

	raw := &RawTable{}
	raw.Columns, raw.Dropped = buildColumns(fragments, defense)

	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		row := RawRow{}
		tr.ChildrenFiltered("td").Each(func(_ int, td *goquery.Selection) {
			row.Cells = append(row.Cells, readCell(td))
		})
		raw.Rows = append(raw.Rows, row)
	})

	return raw, nil
}

// headerFragments splits header text on line breaks, trimming and dropping
// blank segments.
func headerFragments(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// buildColumns pairs fragments after the first as "abbrev (description)".
// An odd trailing fragment is returned separately and not labelled.
func buildColumns(fragments []string, defense bool) ([]string, string) {
	cols := []string{fragments[0]}
	if !defense {
		cols = append(cols, player.ColumnPosition, player.ColumnTeam)
	}

	rest := fragments[1:]
	for i := 0; i+1 < len(rest); i += 2 {
		cols = append(cols, rest[i]+" ("+rest[i+1]+")")
	}

	var dropped string
	if len(rest)%2 == 1 {
		dropped = rest[len(rest)-1]
	}
	return cols, dropped
}

// readCell marks span-bearing cells as compound, except a span wrapping a
// single number, which is a styled stat value.
func readCell(td *goquery.Selection) Cell {
	text := strings.TrimSpace(td.Text())
	span := td.Find("span").First()
	if span.Length() == 0 {
		return Cell{Text: text}
	}
	tokens := splitTokens(span.Text())
	if len(tokens) == 1 && isNumeric(tokens[0]) {
		return Cell{Text: text}
	}
	return Cell{
		Text:     text,
		Compound: true,
		Tokens:   tokens,
	}
}
