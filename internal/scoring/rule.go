package scoring

import (
	"fmt"

	"github.com/pfrederiksen/ffpoints/internal/player"
)

// Term weights one stat column
type Term struct {
	Column string  `yaml:"column" json:"column"`
	Weight float64 `yaml:"weight" json:"weight"`
}

// Rule is a position's scoring rule set
type Rule []Term

// Weight returns the weight for column
func (r Rule) Weight(column string) (float64, bool) {
	for _, t := range r {
		if t.Column == column {
			return t.Weight, true
		}
	}
	return 0, false
}

// Columns lists the columns the rule reads, in order
func (r Rule) Columns() []string {
	cols := make([]string, len(r))
	for i, t := range r {
		cols[i] = t.Column
	}
	return cols
}

// Family groups positions that share scoring behaviour
type Family string

const (
	FamilyQB   Family = "qb"
	FamilyFlex Family = "flex"
	FamilyTE   Family = "te"
	FamilyDST  Family = "dst"
	// FamilyBasic is a plain weighted sum, used for kickers when a league
	// configures a kicker rule.
	FamilyBasic Family = "basic"
)

// FamilyOf returns the scoring family for a position
func FamilyOf(pos player.Position) Family {
	switch pos {
	case player.QB:
		return FamilyQB
	case player.RB, player.WR:
		return FamilyFlex
	case player.TE:
		return FamilyTE
	case player.DST:
		return FamilyDST
	default:
		return FamilyBasic
	}
}

// derived is a column the engine can synthesize from yardage
type derived struct {
	column string
	yards  string
}

var fallbacks = map[Family][]derived{
	FamilyFlex: {
		{column: ReceivingFirstDowns, yards: ReceivingYards},
		{column: RushingFirstDowns, yards: RushingYards},
	},
	FamilyTE: {
		{column: ReceivingFirstDowns, yards: ReceivingYards},
	},
}

// fallbacksFor returns the derivable columns the rule actually weights
func fallbacksFor(fam Family, rule Rule) []derived {
	var out []derived
	for _, d := range fallbacks[fam] {
		if _, ok := rule.Weight(d.column); ok {
			out = append(out, d)
		}
	}
	return out
}

func hasFallback(fam Family, column string) bool {
	for _, d := range fallbacks[fam] {
		if d.column == column {
			return true
		}
	}
	return false
}

// RuleKeyError reports a rule column missing from a table with no way to
// derive it.
type RuleKeyError struct {
	Position player.Position
	Column   string
}

func (e *RuleKeyError) Error() string {
	return fmt.Sprintf("%s rule column %q not found in table", e.Position, e.Column)
}

// Validate checks that every column the rule needs is present in schema or
// derivable for the position.
func Validate(pos player.Position, rule Rule, schema player.Schema) error {
	fam := FamilyOf(pos)
	for _, t := range rule {
		if schema.HasStat(t.Column) || hasFallback(fam, t.Column) {
			continue
		}
		return &RuleKeyError{Position: pos, Column: t.Column}
	}
	if fam == FamilyDST && !schema.HasStat(PointsAllowedPerGame) {
		return &RuleKeyError{Position: pos, Column: PointsAllowedPerGame}
	}
	return nil
}
