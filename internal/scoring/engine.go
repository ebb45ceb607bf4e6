package scoring

import (
	"github.com/pfrederiksen/ffpoints/internal/player"
)

// ppgTiers maps points allowed per game to the DST bonus. Bounds are
// inclusive and checked in order; anything above the last bound gets
// ppgFloorBonus.
var ppgTiers = []struct {
	max   float64
	bonus float64
}{
	{6, 7},
	{13, 4},
	{20, 1},
	{27, 0},
	{35, -1},
}

const (
	shutoutBonus  = 10.0
	ppgFloorBonus = -4.0
)

// PPGBonus returns the DST bonus for points allowed per game
func PPGBonus(ppg float64) float64 {
	if ppg == 0 {
		return shutoutBonus
	}
	for _, t := range ppgTiers {
		if ppg <= t.max {
			return t.bonus
		}
	}
	return ppgFloorBonus
}

// Score returns a scored copy of table. An empty rule leaves the table
// unscored, which is how kickers are handled by default.
func Score(pos player.Position, rule Rule, table *player.Table) (*player.Table, error) {
	if len(rule) == 0 {
		out := *table
		out.Scored = false
		return &out, nil
	}

	if err := Validate(pos, rule, table.Schema); err != nil {
		return nil, err
	}

	fam := FamilyOf(pos)
	fbs := fallbacksFor(fam, rule)
	schema := table.Schema
	out := player.NewTable(pos, schema, table.Len())

	for _, rec := range table.Records {
		scored, synthesized, err := scoreRecord(pos, fam, rule, fbs, rec)
		if err != nil {
			return nil, err
		}
		if synthesized {
			for _, d := range fbs {
				schema = schema.WithStats(d.column)
			}
		}
		out.Append(scored)
	}

	out.Schema = schema
	out.Scored = true
	return out, nil
}

// scoreRecord computes one record's points. When any derivable first-down
// column is missing, all of them are recomputed from yardage together, the
// already-weighted values are written back to the record and added once.
// First-down values the source did carry still count at their own weight.
func scoreRecord(pos player.Position, fam Family, rule Rule, fbs []derived, rec player.Record) (player.Record, bool, error) {
	out := rec.Clone()

	present := make(map[string]float64, len(fbs))
	synthesize := false
	for _, d := range fbs {
		if v, ok := out.Stat(d.column); ok {
			present[d.column] = v
		} else {
			synthesize = true
		}
	}

	var total float64
	if synthesize {
		for _, d := range fbs {
			w, _ := rule.Weight(d.column)
			v := out.Stats[d.yards] / YardsPerFirstDown * w
			out.Stats[d.column] = v
			total += v
		}
	}

	for _, t := range rule {
		if synthesize && isDerived(fbs, t.Column) {
			if v, ok := present[t.Column]; ok {
				total += v * t.Weight
			}
			continue
		}
		v, ok := out.Stat(t.Column)
		if !ok {
			return player.Record{}, false, &RuleKeyError{Position: pos, Column: t.Column}
		}
		total += v * t.Weight
	}

	if fam == FamilyDST {
		ppg, ok := out.Stat(PointsAllowedPerGame)
		if !ok {
			return player.Record{}, false, &RuleKeyError{Position: pos, Column: PointsAllowedPerGame}
		}
		total += PPGBonus(ppg)
	}

	out.Points = total
	out.Scored = true
	return out, synthesize, nil
}

func isDerived(fbs []derived, column string) bool {
	for _, d := range fbs {
		if d.column == column {
			return true
		}
	}
	return false
}
