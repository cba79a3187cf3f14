// Package advolume classifies accounts into follower brackets and compares
// their actual ad volume against the expected counts for their bracket.
package advolume

import "github.com/Aurelian-Chen/NovasX/pkg/units"

// Bracket is one of six fixed follower ranges, in ten-thousands of
// followers. Ranges are half-open [lo, hi); the last is open-ended.
type Bracket int

const (
	Bracket1To10 Bracket = iota
	Bracket10To50
	Bracket50To100
	Bracket100To500
	Bracket500To1000
	Bracket1000Plus
)

var bracketNames = [...]string{
	"1-10万", "10-50万", "50-100万",
	"100-500万", "500-1000万", "1000万+",
}

// String returns the bracket's display name.
func (b Bracket) String() string {
	if b < 0 || int(b) >= len(bracketNames) {
		return "unknown"
	}
	return bracketNames[b]
}

// Brackets returns all brackets in ascending order.
func Brackets() []Bracket {
	return []Bracket{
		Bracket1To10, Bracket10To50, Bracket50To100,
		Bracket100To500, Bracket500To1000, Bracket1000Plus,
	}
}

// BracketFor classifies a follower count (in ten-thousands) into its
// bracket. Counts below the first bracket's lower bound still classify into
// the first bracket, so the brackets partition [0, infinity).
func BracketFor(fans units.WanFollowers) Bracket {
	switch {
	case fans < 10:
		return Bracket1To10
	case fans < 50:
		return Bracket10To50
	case fans < 100:
		return Bracket50To100
	case fans < 500:
		return Bracket100To500
	case fans < 1000:
		return Bracket500To1000
	default:
		return Bracket1000Plus
	}
}
