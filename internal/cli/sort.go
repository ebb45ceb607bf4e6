package cli

import (
	"slices"

	"github.com/pfrederiksen/ffpoints/internal/player"
)

// DisplayOptions controls which positions and rows are printed
type DisplayOptions struct {
	Positions []player.Position
	SortBy    string
	Top       int
}

// arrange returns a copy of t re-sorted by opts.SortBy and cut to opts.Top.
// Without --sort-by the build order (points, highest first) is kept.
func arrange(t *player.Table, opts DisplayOptions) (*player.Table, error) {
	view := *t
	view.Records = slices.Clone(t.Records)

	if opts.SortBy != "" {
		if err := view.SortBy(opts.SortBy); err != nil {
			return nil, err
		}
	}
	return view.Top(opts.Top), nil
}

// parsePositions converts --position values, dropping duplicates
func parsePositions(values []string) ([]player.Position, error) {
	out := make([]player.Position, 0, len(values))
	for _, v := range values {
		pos, err := player.ParsePosition(v)
		if err != nil {
			return nil, err
		}
		if !slices.Contains(out, pos) {
			out = append(out, pos)
		}
	}
	return out, nil
}
