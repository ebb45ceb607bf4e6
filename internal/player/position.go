package player

import (
	"fmt"
	"strings"
)

// Position is a fantasy roster position
type Position string

const (
	QB  Position = "QB"
	RB  Position = "RB"
	WR  Position = "WR"
	TE  Position = "TE"
	K   Position = "K"
	DST Position = "DST"
)

// Positions lists every position in league build order
var Positions = []Position{QB, RB, WR, TE, K, DST}

// ParsePosition converts a position code such as "qb" or "D/ST" to a Position
func ParsePosition(s string) (Position, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "QB":
		return QB, nil
	case "RB":
		return RB, nil
	case "WR":
		return WR, nil
	case "TE":
		return TE, nil
	case "K", "PK":
		return K, nil
	case "DST", "D/ST", "DEF":
		return DST, nil
	default:
		return "", fmt.Errorf("unknown position: %q", s)
	}
}

// IsDefense reports whether rows for this position describe a whole team
// rather than a single player.
func (p Position) IsDefense() bool {
	return p == DST
}

// Index returns the position's slot in Positions, or -1.
func (p Position) Index() int {
	for i, pos := range Positions {
		if pos == p {
			return i
		}
	}
	return -1
}

func (p Position) String() string {
	return string(p)
}
