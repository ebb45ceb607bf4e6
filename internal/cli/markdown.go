package cli

import (
	"fmt"
	"io"

	"github.com/nao1215/markdown"
)

// writeMarkdown outputs the league as a Markdown document with one section
// per position
func writeMarkdown(w io.Writer, result *OutputResult) error {
	md := markdown.NewMarkdown(w)

	md.H1(result.League)
	md.PlainText("")
	if result.Week > 0 {
		md.PlainTextf("Season %d, week %d", result.Season, result.Week)
	} else {
		md.PlainTextf("Season %d", result.Season)
	}
	md.PlainText("")

	if len(result.Tables) == 0 {
		md.PlainText("No tables built.")
		return md.Build()
	}

	for _, t := range result.Tables {
		md.H2(fmt.Sprintf("%s (%d players)", t.Position, t.Len()))
		md.PlainText("")
		md.Table(markdown.TableSet{
			Header: t.Columns(),
			Rows:   t.Rows(),
		})
		md.PlainText("")
	}

	return md.Build()
}
