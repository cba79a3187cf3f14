// Package valuation projects an account's follower count, yearly ad volume,
// and yearly revenue over a multi-year horizon.
package valuation

import (
	"fmt"
	"math"

	"github.com/Aurelian-Chen/NovasX/internal/advolume"
	"github.com/Aurelian-Chen/NovasX/internal/catalog"
	"github.com/Aurelian-Chen/NovasX/pkg/constants"
	"github.com/Aurelian-Chen/NovasX/pkg/mathutil"
	"github.com/Aurelian-Chen/NovasX/pkg/units"
	"github.com/Aurelian-Chen/NovasX/pkg/validation"
	"go.uber.org/zap"
)

// Model projects commercial value from the compiled-in platform and
// category growth parameters. Stateless per call; one Model may serve
// concurrent callers.
type Model struct {
	logger *zap.Logger
	matrix *advolume.Matrix
}

// NewModel constructs a valuation model over the given ad-volume matrix. A
// nil matrix gets a fresh one.
func NewModel(logger *zap.Logger, matrix *advolume.Matrix) *Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	if matrix == nil {
		matrix = advolume.NewMatrix()
	}
	return &Model{logger: logger, matrix: matrix}
}

// Options carries the optional inputs of a projection.
type Options struct {
	// SingleAdPriceWan is the current single-ad price in ten-thousands of
	// the base currency. When nil it is derived via ProjectedAdValue.
	SingleAdPriceWan *float64

	// Years lists the years to project, defaulting to 1 through 5.
	Years []int

	// GrowthRate is a caller-supplied annual follower growth percentage
	// (20 means 20%). When set the projection compounds at this rate; when
	// nil the default logarithmic growth model applies.
	GrowthRate *float64
}

// YearProjection is one projected year.
type YearProjection struct {
	Year int `json:"year"`
	// FansWan is the projected follower count in ten-thousands.
	FansWan float64 `json:"fansWan"`
	// AdCount is the expected yearly ad count at the projected size.
	AdCount int `json:"adCount"`
	// RevenueWan is the projected yearly revenue in ten-thousands,
	// including the fixed non-advertising uplift.
	RevenueWan float64 `json:"revenueWan"`
}

// Summary is a five-year projection plus its cumulative rollup.
type Summary struct {
	Rows []YearProjection `json:"rows"`
	// TotalAdCount sums the per-year ad counts.
	TotalAdCount int `json:"totalAdCount"`
	// TotalRevenueWan sums the per-year revenues.
	TotalRevenueWan float64 `json:"totalRevenueWan"`
	// FinalFansWan is the final projected year's follower count.
	FinalFansWan float64 `json:"finalFansWan"`
}

// ProjectedAdValue estimates a single-ad price (in ten-thousands) for an
// account of the given size when the caller has no current quote:
// 0.1 * sqrt(fans) * category ad-count factor, rounded to two decimals.
func (m *Model) ProjectedAdValue(fans units.WanFollowers, platform catalog.Platform, category catalog.Category) (float64, error) {
	params, ok := categoryParams[category]
	if !ok {
		return 0, fmt.Errorf("%w: %s", catalog.ErrUnknownCategory, category)
	}
	return mathutil.Round(constants.BaseAdValueFactor * math.Sqrt(float64(fans)) * params.AdCountFactor), nil
}

// PredictValue projects (followers, ad count, revenue) for each requested
// year.
//
// Follower growth follows one of two regimes. With a caller-supplied rate g
// it compounds with no ceiling:
//
//	f(year) = f0 * (1 + g/100)^year
//
// Otherwise the default model grows logarithmically and additively:
//
//	f(year) = f0 + k * ln(year+1) * (1 + α)
//
// The platform fan limit is not applied in either regime. Expected ad
// counts come from the ad-volume matrix at each year's projected size; the
// ad price scales with relative follower growth through the category's
// price growth factor; revenue adds the fixed non-advertising uplift.
func (m *Model) PredictValue(followers units.Followers, platform catalog.Platform, category catalog.Category, opts Options) ([]YearProjection, error) {
	if err := validation.CheckFollowers(followers); err != nil {
		return nil, err
	}
	platParams, ok := platformParams[platform]
	if !ok {
		return nil, fmt.Errorf("%w: %s", catalog.ErrUnknownPlatform, platform)
	}
	catParams, ok := categoryParams[category]
	if !ok {
		return nil, fmt.Errorf("%w: %s", catalog.ErrUnknownCategory, category)
	}

	fansWan := followers.Wan()

	adPrice := 0.0
	if opts.SingleAdPriceWan != nil {
		adPrice = *opts.SingleAdPriceWan
	} else {
		derived, err := m.ProjectedAdValue(fansWan, platform, category)
		if err != nil {
			return nil, err
		}
		adPrice = derived
		m.logger.Debug("derived single-ad price",
			zap.String("op", "valuation.PredictValue"),
			zap.Float64("adPriceWan", adPrice),
		)
	}

	years := opts.Years
	if len(years) == 0 {
		years = defaultYears()
	}

	results := make([]YearProjection, 0, len(years))
	for _, year := range years {
		var ft units.WanFollowers
		if opts.GrowthRate != nil {
			ft = fansWan * units.WanFollowers(math.Pow(1+*opts.GrowthRate/100, float64(year)))
		} else {
			ft = fansWan + units.WanFollowers(platParams.GrowthCoeff*math.Log(float64(year)+1)*(1+catParams.GrowthAdj))
		}

		adCount := m.matrix.ExpectedAdCount(platform, category, ft)

		// Relative growth is zero for an account starting from zero
		// followers; there is no base to grow relative to.
		relativeGrowth := 0.0
		if fansWan > 0 {
			relativeGrowth = float64(ft-fansWan) / float64(fansWan)
		}
		price := adPrice * (1 + relativeGrowth*catParams.PriceGrowthFactor)

		revenue := float64(adCount) * price * constants.RevenueUplift

		results = append(results, YearProjection{
			Year:       year,
			FansWan:    mathutil.Round(float64(ft)),
			AdCount:    adCount,
			RevenueWan: mathutil.Round(revenue),
		})
	}

	return results, nil
}

// SummaryTable runs the five-year projection and appends the cumulative
// rollup: total ad count, total revenue, and the final year's followers.
func (m *Model) SummaryTable(followers units.Followers, platform catalog.Platform, category catalog.Category, opts Options) (*Summary, error) {
	opts.Years = defaultYears()
	rows, err := m.PredictValue(followers, platform, category, opts)
	if err != nil {
		return nil, err
	}

	summary := &Summary{Rows: rows}
	total := 0.0
	for _, row := range rows {
		summary.TotalAdCount += row.AdCount
		total += row.RevenueWan
	}
	summary.TotalRevenueWan = mathutil.Round(total)
	summary.FinalFansWan = rows[len(rows)-1].FansWan
	return summary, nil
}

func defaultYears() []int {
	years := make([]int, constants.DefaultHorizonYears)
	for i := range years {
		years[i] = i + 1
	}
	return years
}
