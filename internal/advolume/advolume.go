package advolume

import (
	"github.com/Aurelian-Chen/NovasX/internal/catalog"
	"github.com/Aurelian-Chen/NovasX/pkg/constants"
	"github.com/Aurelian-Chen/NovasX/pkg/mathutil"
	"github.com/Aurelian-Chen/NovasX/pkg/units"
)

// Matrix answers expected-ad-count lookups over the compiled-in industry
// tables. Built once, read-only, safe for concurrent callers.
type Matrix struct {
	counts map[catalog.Platform]countTable
}

// NewMatrix constructs the expected-ad-count matrix.
func NewMatrix() *Matrix {
	return &Matrix{counts: buildMatrix()}
}

// ExpectedAdCount returns the industry-average yearly ad count for accounts
// of the given platform, category, and follower bracket. Combinations absent
// from the tables yield 0 rather than an error; a missing baseline is a
// signal, not a failure.
func (m *Matrix) ExpectedAdCount(platform catalog.Platform, category catalog.Category, fans units.WanFollowers) int {
	table, ok := m.counts[platform]
	if !ok {
		return 0
	}
	row, ok := table[BracketFor(fans)]
	if !ok {
		return 0
	}
	return row[category]
}

// DevelopmentRatio compares actual yearly ad count against the bracket's
// expected count, rounded to two decimals. When no baseline exists the
// ratio is 0 rather than a division by zero.
func (m *Matrix) DevelopmentRatio(platform catalog.Platform, category catalog.Category, fans units.WanFollowers, actualAds int) float64 {
	expected := m.ExpectedAdCount(platform, category, fans)
	if expected == 0 {
		return 0
	}
	return mathutil.Round(float64(actualAds) / float64(expected))
}

// Level grades a development ratio.
type Level int

const (
	LevelUnderDeveloped Level = iota
	LevelNormal
	LevelFullyDeveloped
)

// String returns the level's display name.
func (l Level) String() string {
	switch l {
	case LevelUnderDeveloped:
		return "开发不足"
	case LevelFullyDeveloped:
		return "充分开发"
	default:
		return "正常水平"
	}
}

// LevelFor grades a development ratio against the fixed thresholds:
// below 0.8 under-developed, above 1.2 fully developed, normal between.
func LevelFor(ratio float64) Level {
	switch {
	case ratio < constants.UnderDevelopedBelow:
		return LevelUnderDeveloped
	case ratio > constants.OverDevelopedAbove:
		return LevelFullyDeveloped
	default:
		return LevelNormal
	}
}
