package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/pfrederiksen/ffpoints/internal/league"
	"github.com/pfrederiksen/ffpoints/internal/player"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText     OutputFormat = "text"
	FormatJSON     OutputFormat = "json"
	FormatMarkdown OutputFormat = "markdown"
)

// ParseFormat validates a --format value
func ParseFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatMarkdown:
		return f, nil
	case "md":
		return FormatMarkdown, nil
	}
	return "", fmt.Errorf("invalid format: %s (must be 'text', 'json' or 'markdown')", s)
}

// OutputResult contains data to be output
type OutputResult struct {
	League      string          `json:"league"`
	Season      int             `json:"season"`
	Week        int             `json:"week,omitempty"`
	RunID       string          `json:"run_id"`
	GeneratedAt time.Time       `json:"generated_at"`
	Tables      []*player.Table `json:"tables"`
}

// NewOutputResult selects and orders the tables to display. The league's
// tables are not modified.
func NewOutputResult(l *league.League, season, week int, opts DisplayOptions) (*OutputResult, error) {
	result := &OutputResult{
		League:      l.Name,
		Season:      season,
		Week:        week,
		RunID:       l.RunID,
		GeneratedAt: time.Now().UTC(),
	}

	for _, t := range l.Tables() {
		if len(opts.Positions) > 0 && !slices.Contains(opts.Positions, t.Position) {
			continue
		}
		view, err := arrange(t, opts)
		if err != nil {
			return nil, err
		}
		result.Tables = append(result.Tables, view)
	}
	return result, nil
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result)
	case FormatMarkdown:
		return writeMarkdown(w, result)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs results as JSON
func writeJSON(w io.Writer, result *OutputResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeText outputs one grid per position
func writeText(w io.Writer, result *OutputResult) error {
	fmt.Fprintln(w, result.League)

	if len(result.Tables) == 0 {
		fmt.Fprintln(w, "No tables built.")
		return nil
	}

	for _, t := range result.Tables {
		fmt.Fprintf(w, "\n%s (%d players)\n", t.Position, t.Len())
		if err := renderGrid(w, t.Columns(), t.Rows()); err != nil {
			return fmt.Errorf("rendering %s: %w", t.Position, err)
		}
	}
	return nil
}

func renderGrid(w io.Writer, header []string, rows [][]string) error {
	table := tablewriter.NewWriter(w)
	table.Header(toAny(header)...)
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
