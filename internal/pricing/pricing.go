package pricing

import (
	"fmt"

	"github.com/Aurelian-Chen/NovasX/internal/catalog"
	"github.com/Aurelian-Chen/NovasX/pkg/units"
	"github.com/Aurelian-Chen/NovasX/pkg/validation"
	"go.uber.org/zap"
)

// Table computes single-ad prices from the compiled-in base curves and the
// platform coefficient matrix. All reference data is built once in NewTable
// and read-only afterwards, so one Table may serve concurrent callers.
type Table struct {
	logger *zap.Logger
	curves map[catalog.Category]*Curve
}

// NewTable constructs a pricing table over the reference curves.
func NewTable(logger *zap.Logger) *Table {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Table{
		logger: logger,
		curves: buildBaseCurves(),
	}
}

// BasePrice evaluates the category's reference-platform curve at the given
// follower count, before any platform adjustment.
func (t *Table) BasePrice(category catalog.Category, followers units.Followers) (float64, error) {
	if err := validation.CheckFollowers(followers); err != nil {
		return 0, err
	}
	curve, ok := t.curves[category]
	if !ok {
		return 0, fmt.Errorf("%w: %s", catalog.ErrUnknownCategory, category)
	}
	return curve.Value(followers), nil
}

// Price computes the platform-adjusted single-ad price. For the film/variety
// category a celebrity account doubles the base price before the platform
// coefficient applies.
//
// The platform is deliberately not required to exist in the coefficient
// matrix: an unlisted platform prices at the neutral 1.0 multiplier. The
// category, by contrast, must have a curve; without one there is no price.
func (t *Table) Price(platform catalog.Platform, category catalog.Category, followers units.Followers, celebrity bool) (float64, error) {
	base, err := t.BasePrice(category, followers)
	if err != nil {
		return 0, err
	}
	row, ok := coefficientMatrix[category]
	if !ok {
		return 0, fmt.Errorf("%w: no coefficients for %s", catalog.ErrUnknownCategory, category)
	}

	if category == catalog.CelebrityCategory && celebrity {
		base *= 2
	}

	coeff, ok := row[platform]
	if !ok {
		coeff = 1.0
		t.logger.Debug("platform missing from coefficient matrix, pricing at neutral multiplier",
			zap.String("op", "pricing.Price"),
			zap.String("platform", string(platform)),
			zap.String("category", string(category)),
		)
	}

	return base * coeff, nil
}

// AllPlatformPrices evaluates Price for every supported platform.
func (t *Table) AllPlatformPrices(category catalog.Category, followers units.Followers, celebrity bool) (map[catalog.Platform]float64, error) {
	prices := make(map[catalog.Platform]float64, len(catalog.Platforms()))
	for _, platform := range catalog.Platforms() {
		price, err := t.Price(platform, category, followers, celebrity)
		if err != nil {
			return nil, err
		}
		prices[platform] = price
	}
	return prices, nil
}

// Categories returns the supported categories in pinyin order.
func (t *Table) Categories() []catalog.Category {
	return catalog.Categories()
}

// Platforms returns the supported platforms in presentation order.
func (t *Table) Platforms() []catalog.Platform {
	return catalog.Platforms()
}

// FollowerBreakpoints returns the follower counts anchoring the first
// category's curve (in definition order), used by callers to annotate
// charts. Only this one category's breakpoints are exposed; other
// categories' grids are private and not guaranteed identical.
func (t *Table) FollowerBreakpoints() []units.Followers {
	first := catalog.CategoriesInDefinitionOrder()[0]
	return t.curves[first].Breakpoints()
}

// BestPlatform returns the platform commanding the highest price for the
// category at the given follower count, together with that price. Ties keep
// the earlier platform in presentation order.
func (t *Table) BestPlatform(category catalog.Category, followers units.Followers, celebrity bool) (catalog.Platform, float64, error) {
	prices, err := t.AllPlatformPrices(category, followers, celebrity)
	if err != nil {
		return "", 0, err
	}
	var best catalog.Platform
	bestPrice := -1.0
	for _, platform := range catalog.Platforms() {
		if prices[platform] > bestPrice {
			best = platform
			bestPrice = prices[platform]
		}
	}
	return best, bestPrice, nil
}

// NextMilestone returns the first exposed breakpoint above the current
// follower count and the platform-adjusted price there. ok is false when the
// count is already past the last breakpoint.
func (t *Table) NextMilestone(platform catalog.Platform, category catalog.Category, followers units.Followers) (units.Followers, float64, bool, error) {
	if err := validation.CheckFollowers(followers); err != nil {
		return 0, 0, false, err
	}
	for _, bp := range t.FollowerBreakpoints() {
		if bp > followers {
			price, err := t.Price(platform, category, bp, false)
			if err != nil {
				return 0, 0, false, err
			}
			return bp, price, true, nil
		}
	}
	return 0, 0, false, nil
}
