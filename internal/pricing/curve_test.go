package pricing

import (
	"errors"
	"math"
	"testing"

	"github.com/Aurelian-Chen/NovasX/internal/catalog"
	"github.com/Aurelian-Chen/NovasX/pkg/constants"
	"github.com/Aurelian-Chen/NovasX/pkg/units"
)

func TestNewCurveRejectsTooFewBreakpoints(t *testing.T) {
	_, err := NewCurve([]Breakpoint{{Followers: 0, Price: 100}})
	if err == nil {
		t.Fatal("expected error for a single breakpoint")
	}
	if !errors.Is(err, catalog.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestNewCurveRejectsNonIncreasingBreakpoints(t *testing.T) {
	cases := [][]Breakpoint{
		{{Followers: 0, Price: 100}, {Followers: 0, Price: 200}},
		{{Followers: 100, Price: 100}, {Followers: 50, Price: 200}},
	}
	for _, bps := range cases {
		if _, err := NewCurve(bps); !errors.Is(err, catalog.ErrInvalidInput) {
			t.Errorf("breakpoints %v: expected ErrInvalidInput, got %v", bps, err)
		}
	}
}

func TestCurveInterpolatesWithinSegments(t *testing.T) {
	curve, err := NewCurve([]Breakpoint{
		{Followers: 0, Price: 200},
		{Followers: 60000, Price: 6800},
		{Followers: 300000, Price: 15200},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		x        units.Followers
		expected float64
	}{
		{0, 200},
		{30000, 3500}, // midpoint of the first segment
		{60000, 6800}, // exact breakpoint hit
	}
	for _, tt := range tests {
		if got := curve.Value(tt.x); math.Abs(got-tt.expected) > 1e-9 {
			t.Errorf("Value(%v) = %v, expected %v", tt.x, got, tt.expected)
		}
	}
}

func TestCurveContinuityAtAllBreakpoints(t *testing.T) {
	// Adjacent segments must agree at their shared breakpoint for every
	// category curve.
	for category, curve := range buildBaseCurves() {
		for _, bp := range curve.Breakpoints()[1:] {
			epsilon := units.Followers(1e-6)
			left := curve.Value(bp - epsilon)
			right := curve.Value(bp)
			// A step of 1e-6 followers moves the price by at most
			// slope*1e-6, far below the continuity tolerance.
			if math.Abs(left-right) > constants.ContinuityTolerance+1e-3 {
				t.Errorf("%s: discontinuity at %v: left %v right %v", category, bp, left, right)
			}
		}
	}
}

func TestCurveExtrapolatesLastSegmentLinearly(t *testing.T) {
	curves := buildBaseCurves()
	curve := curves[catalog.CategoryAgriculture]
	breakpoints := curve.Breakpoints()
	last := breakpoints[len(breakpoints)-1]
	prev := breakpoints[len(breakpoints)-2]
	slope := (curve.Value(last) - curve.Value(prev)) / float64(last-prev)

	for _, beyond := range []units.Followers{last, last + 1e6, last + 1e7} {
		got := curve.Value(beyond)
		expected := curve.Value(last) + slope*float64(beyond-last)
		if math.Abs(got-expected) > 1e-6 {
			t.Errorf("Value(%v) = %v, expected linear extrapolation %v", beyond, got, expected)
		}
	}
}

func TestReferenceCurvesCoverAllCategories(t *testing.T) {
	curves := buildBaseCurves()
	if len(curves) != constants.SupportedCategories {
		t.Fatalf("expected %d curves, got %d", constants.SupportedCategories, len(curves))
	}
	for _, category := range catalog.CategoriesInDefinitionOrder() {
		if _, ok := curves[category]; !ok {
			t.Errorf("no curve for category %s", category)
		}
	}
}
