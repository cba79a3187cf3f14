package pricing

import (
	"errors"
	"math"
	"testing"

	"github.com/Aurelian-Chen/NovasX/internal/catalog"
	"github.com/Aurelian-Chen/NovasX/pkg/constants"
	"github.com/Aurelian-Chen/NovasX/pkg/units"
	"go.uber.org/zap"
)

func toFollowers(v float64) units.Followers {
	return units.Followers(v)
}

func TestBasePriceReferenceScenarios(t *testing.T) {
	table := NewTable(zap.NewNop())

	tests := []struct {
		name      string
		followers float64
		expected  float64
	}{
		{"first breakpoint", 0, 200},
		{"exact breakpoint", 60000, 6800},
		{"segment midpoint", 30000, 3500},
	}
	for _, tt := range tests {
		got, err := table.BasePrice(catalog.CategoryAgriculture, toFollowers(tt.followers))
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.name, err)
		}
		if math.Abs(got-tt.expected) > 1e-9 {
			t.Errorf("%s: BasePrice = %v, expected %v", tt.name, got, tt.expected)
		}
	}
}

func TestBasePriceUnknownCategory(t *testing.T) {
	table := NewTable(zap.NewNop())
	_, err := table.BasePrice(catalog.Category("电竞"), 1000)
	if !errors.Is(err, catalog.ErrUnknownCategory) {
		t.Errorf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestBasePriceRejectsNegativeFollowers(t *testing.T) {
	table := NewTable(zap.NewNop())
	_, err := table.BasePrice(catalog.CategoryAgriculture, -1)
	if !errors.Is(err, catalog.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestPriceReferencePlatformIsNeutral(t *testing.T) {
	table := NewTable(zap.NewNop())
	for _, category := range catalog.Categories() {
		for _, followers := range []float64{0, 50000, 500000, 30000000} {
			base, err := table.BasePrice(category, toFollowers(followers))
			if err != nil {
				t.Fatalf("%s: %v", category, err)
			}
			price, err := table.Price(catalog.ReferencePlatform, category, toFollowers(followers), false)
			if err != nil {
				t.Fatalf("%s: %v", category, err)
			}
			if math.Abs(base-price) > 1e-9 {
				t.Errorf("%s at %v: reference platform price %v != base price %v",
					category, followers, price, base)
			}
		}
	}
}

func TestPriceAppliesPlatformCoefficient(t *testing.T) {
	table := NewTable(zap.NewNop())
	// Agriculture on Kuaishou carries a 1.8 multiplier.
	base, err := table.BasePrice(catalog.CategoryAgriculture, 60000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	price, err := table.Price(catalog.PlatformKuaishou, catalog.CategoryAgriculture, 60000, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(price-base*1.8) > 1e-9 {
		t.Errorf("Kuaishou price = %v, expected %v", price, base*1.8)
	}
}

func TestPriceUnlistedPlatformPricesAtNeutralMultiplier(t *testing.T) {
	table := NewTable(zap.NewNop())
	base, err := table.BasePrice(catalog.CategoryGaming, 100000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	price, err := table.Price(catalog.Platform("微博"), catalog.CategoryGaming, 100000, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(price-base) > 1e-9 {
		t.Errorf("unlisted platform price = %v, expected neutral %v", price, base)
	}
}

func TestPriceCelebrityBonus(t *testing.T) {
	table := NewTable(zap.NewNop())
	for _, platform := range catalog.Platforms() {
		regular, err := table.Price(platform, catalog.CategoryFilmVariety, 500000, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		celebrity, err := table.Price(platform, catalog.CategoryFilmVariety, 500000, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if math.Abs(celebrity-2*regular) > 1e-9 {
			t.Errorf("%s: celebrity price %v, expected double of %v", platform, celebrity, regular)
		}
	}

	// The bonus only applies to the film/variety category.
	regular, _ := table.Price(catalog.PlatformDouyin, catalog.CategoryMakeup, 500000, false)
	flagged, _ := table.Price(catalog.PlatformDouyin, catalog.CategoryMakeup, 500000, true)
	if regular != flagged {
		t.Errorf("celebrity flag changed price for non-celebrity category: %v vs %v", regular, flagged)
	}
}

func TestAllPlatformPricesCoversEveryPlatform(t *testing.T) {
	table := NewTable(zap.NewNop())
	prices, err := table.AllPlatformPrices(catalog.CategoryFood, 200000, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(prices) != constants.SupportedPlatforms {
		t.Fatalf("expected %d prices, got %d", constants.SupportedPlatforms, len(prices))
	}
	for _, platform := range catalog.Platforms() {
		if _, ok := prices[platform]; !ok {
			t.Errorf("missing price for platform %s", platform)
		}
	}
}

func TestCategoriesPinyinOrdering(t *testing.T) {
	table := NewTable(zap.NewNop())
	categories := table.Categories()
	if len(categories) != constants.SupportedCategories {
		t.Fatalf("expected %d categories, got %d", constants.SupportedCategories, len(categories))
	}
	if categories[0] != catalog.CategoryFinance {
		t.Errorf("expected 财经 first (caijing), got %s", categories[0])
	}
	if categories[1] != catalog.CategoryTalent {
		t.Errorf("expected 才艺技能 second (caiyijineng), got %s", categories[1])
	}
	if categories[len(categories)-1] != catalog.CategoryCareer {
		t.Errorf("expected 职场 last (zhichang), got %s", categories[len(categories)-1])
	}
}

func TestFollowerBreakpointsExposesFirstCategoryGrid(t *testing.T) {
	table := NewTable(zap.NewNop())
	breakpoints := table.FollowerBreakpoints()
	expected := []float64{0, 6e4, 30e4, 75e4, 300e4, 750e4, 2000e4}
	if len(breakpoints) != len(expected) {
		t.Fatalf("expected %d breakpoints, got %d", len(expected), len(breakpoints))
	}
	for i, bp := range breakpoints {
		if float64(bp) != expected[i] {
			t.Errorf("breakpoint %d = %v, expected %v", i, bp, expected[i])
		}
	}
}

func TestBestPlatform(t *testing.T) {
	table := NewTable(zap.NewNop())
	// Agriculture's strongest coefficient is Kuaishou at 1.8.
	best, price, err := table.BestPlatform(catalog.CategoryAgriculture, 100000, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if best != catalog.PlatformKuaishou {
		t.Errorf("expected Kuaishou, got %s", best)
	}
	if price <= 0 {
		t.Errorf("expected positive price, got %v", price)
	}
}

func TestNextMilestone(t *testing.T) {
	table := NewTable(zap.NewNop())

	milestone, price, ok, err := table.NextMilestone(catalog.PlatformDouyin, catalog.CategoryAgriculture, 100000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected a next milestone at 100k followers")
	}
	if float64(milestone) != 30e4 {
		t.Errorf("expected milestone 300000, got %v", milestone)
	}
	if math.Abs(price-15200) > 1e-9 {
		t.Errorf("expected milestone price 15200, got %v", price)
	}

	// Past the last breakpoint there is nothing left to chase.
	_, _, ok, err = table.NextMilestone(catalog.PlatformDouyin, catalog.CategoryAgriculture, 3e7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected no milestone beyond the last breakpoint")
	}
}
