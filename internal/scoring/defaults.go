package scoring

import "github.com/pfrederiksen/ffpoints/internal/player"

// DefaultRules returns the reference league's rules. Kickers have none.
func DefaultRules() map[player.Position]Rule {
	flex := Rule{
		{Column: RushingTD, Weight: 6},
		{Column: RushingYards, Weight: 0.1},
		{Column: ReceivingYards, Weight: 0.1},
		{Column: FumblesLost, Weight: -2},
		{Column: ReceivingTD, Weight: 6},
		{Column: ReceivingFirstDowns, Weight: 1},
		{Column: RushingFirstDowns, Weight: 1},
	}

	return map[player.Position]Rule{
		player.QB: {
			{Column: PassingTD, Weight: 4},
			{Column: PassingYards, Weight: 0.04},
			{Column: Interceptions, Weight: -2},
			{Column: RushingYards, Weight: 0.1},
			{Column: FumblesLost, Weight: -2},
		},
		player.RB: flex,
		player.WR: append(Rule(nil), flex...),
		player.TE: {
			{Column: ReceivingYards, Weight: 0.1},
			{Column: FumblesLost, Weight: -2},
			{Column: ReceivingTD, Weight: 6},
			{Column: ReceivingFirstDowns, Weight: 1},
		},
		player.DST: {
			{Column: DefInterceptions, Weight: 3},
			{Column: Safeties, Weight: 2},
			{Column: Sacks, Weight: 1},
			{Column: FumblesRecovered, Weight: 2},
			{Column: DefensiveTD, Weight: 7},
		},
	}
}
