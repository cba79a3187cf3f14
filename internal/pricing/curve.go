// Package pricing computes single-ad prices from per-category follower
// curves and platform-relative coefficients.
package pricing

import (
	"fmt"

	"github.com/Aurelian-Chen/NovasX/internal/catalog"
	"github.com/Aurelian-Chen/NovasX/pkg/units"
)

// Breakpoint anchors a category's price curve at one follower count.
type Breakpoint struct {
	Followers units.Followers
	Price     float64
}

type segment struct {
	start     units.Followers
	end       units.Followers
	slope     float64
	intercept float64
}

// Curve is a continuous piecewise-linear price function over follower
// counts. Curves are built once at startup from fixed breakpoint data and
// never mutated; Value is safe for concurrent callers.
type Curve struct {
	breakpoints []Breakpoint
	segments    []segment
}

// NewCurve builds a curve from breakpoints sorted ascending by follower
// count. At least two breakpoints are required and follower counts must be
// strictly increasing, otherwise segment slopes would divide by zero.
// Continuity holds by construction: each segment's slope and intercept are
// derived from its two endpoints, so adjacent segments meet exactly.
func NewCurve(breakpoints []Breakpoint) (*Curve, error) {
	if len(breakpoints) < 2 {
		return nil, fmt.Errorf("%w: a price curve needs at least 2 breakpoints, got %d",
			catalog.ErrInvalidInput, len(breakpoints))
	}

	segments := make([]segment, 0, len(breakpoints)-1)
	for i := 0; i < len(breakpoints)-1; i++ {
		lo, hi := breakpoints[i], breakpoints[i+1]
		if hi.Followers <= lo.Followers {
			return nil, fmt.Errorf("%w: breakpoint follower counts must be strictly increasing (%.0f then %.0f)",
				catalog.ErrInvalidInput, float64(lo.Followers), float64(hi.Followers))
		}
		slope := (hi.Price - lo.Price) / float64(hi.Followers-lo.Followers)
		segments = append(segments, segment{
			start:     lo.Followers,
			end:       hi.Followers,
			slope:     slope,
			intercept: lo.Price - slope*float64(lo.Followers),
		})
	}

	bps := make([]Breakpoint, len(breakpoints))
	copy(bps, breakpoints)
	return &Curve{breakpoints: bps, segments: segments}, nil
}

// mustCurve panics on invalid reference data; only used for the compiled-in
// tables, which are exercised by tests.
func mustCurve(breakpoints []Breakpoint) *Curve {
	c, err := NewCurve(breakpoints)
	if err != nil {
		panic(err)
	}
	return c
}

// Value evaluates the curve at x. Segments match on the half-open interval
// [start, end); beyond the last breakpoint the final segment's line
// continues unclamped. Behavior for negative x is not defined here; callers
// reject negative follower counts before evaluating.
func (c *Curve) Value(x units.Followers) float64 {
	for _, s := range c.segments {
		if x >= s.start && x < s.end {
			return s.slope*float64(x) + s.intercept
		}
	}
	last := c.segments[len(c.segments)-1]
	return last.slope*float64(x) + last.intercept
}

// Breakpoints returns the follower counts anchoring the curve.
func (c *Curve) Breakpoints() []units.Followers {
	out := make([]units.Followers, len(c.breakpoints))
	for i, bp := range c.breakpoints {
		out[i] = bp.Followers
	}
	return out
}
