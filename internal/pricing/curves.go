package pricing

import (
	"github.com/Aurelian-Chen/NovasX/internal/catalog"
	"github.com/Aurelian-Chen/NovasX/pkg/units"
)

// curveScale is the follower grid the reference curves are anchored on.
// Only the first category's grid is ever exposed to callers; the grids are
// not guaranteed to stay identical across categories.
var curveScale = []units.Followers{0, 6e4, 30e4, 75e4, 300e4, 750e4, 2000e4}

// onScale anchors one price per grid point.
func onScale(prices ...float64) []Breakpoint {
	bps := make([]Breakpoint, len(prices))
	for i, p := range prices {
		bps[i] = Breakpoint{Followers: curveScale[i], Price: p}
	}
	return bps
}

// buildBaseCurves constructs the per-category base price curves, calibrated
// for the reference platform from 2023 industry quote data.
func buildBaseCurves() map[catalog.Category]*Curve {
	return map[catalog.Category]*Curve{
		catalog.CategoryAgriculture:   mustCurve(onScale(200, 6800, 15200, 32000, 68000, 250000, 420000)),
		catalog.CategoryACG:           mustCurve(onScale(300, 5500, 11200, 26000, 45000, 180000, 260000)),
		catalog.CategoryHealth:        mustCurve(onScale(500, 8000, 18000, 38000, 110000, 220000, 350000)),
		catalog.CategoryHobbies:       mustCurve(onScale(0, 6000, 15000, 35000, 70000, 150000, 300000)),
		catalog.CategoryOther:         mustCurve(onScale(0, 7500, 16000, 30000, 60000, 140000, 280000)),
		catalog.CategoryMedical:       mustCurve(onScale(1000, 8500, 20000, 45000, 95000, 200000, 400000)),
		catalog.CategoryEntertainment: mustCurve(onScale(0, 5000, 12000, 25000, 50000, 100000, 200000)),
		catalog.CategoryHomeDecor:     mustCurve(onScale(0, 10000, 21000, 52000, 78000, 120000, 220000)),
		catalog.CategoryComedy:        mustCurve(onScale(0, 7000, 19000, 45000, 90000, 200000, 400000)),
		catalog.CategoryFilmVariety:   mustCurve(onScale(2500, 7000, 23500, 52500, 126000, 220000, 400000)),
		catalog.CategoryEmotions:      mustCurve(onScale(500, 8500, 22000, 60000, 110000, 210000, 450000)),
		catalog.CategoryTalent:        mustCurve(onScale(0, 9500, 25000, 50000, 90000, 160000, 300000)),
		catalog.CategoryEducation:     mustCurve(onScale(0, 8000, 22000, 45000, 85000, 180000, 380000)),
		catalog.CategoryCulture:       mustCurve(onScale(0, 6000, 18000, 40000, 80000, 160000, 300000)),
		catalog.CategoryTravel:        mustCurve(onScale(0, 6500, 20000, 50000, 95000, 180000, 450000)),
		catalog.CategoryNews:          mustCurve(onScale(0, 7000, 18000, 40000, 75000, 140000, 280000)),
		catalog.CategoryFashion:       mustCurve(onScale(1000, 9500, 35000, 75000, 130000, 250000, 1000000)),
		catalog.CategoryParenting:     mustCurve(onScale(0, 9000, 22000, 60000, 95000, 180000, 360000)),
		catalog.CategoryAutomotive:    mustCurve(onScale(500, 8000, 32000, 98000, 150000, 220000, 720000)),
		catalog.CategoryGaming:        mustCurve(onScale(200, 6500, 18000, 42000, 75000, 120000, 220000)),
		catalog.CategoryLifestyle:     mustCurve(onScale(500, 8500, 22000, 50000, 95000, 180000, 400000)),
		catalog.CategoryScience:       mustCurve(onScale(0, 8000, 20000, 45000, 85000, 160000, 320000)),
		catalog.CategoryTech:          mustCurve(onScale(500, 8500, 22000, 50000, 95000, 180000, 400000)),
		catalog.CategoryMakeup:        mustCurve(onScale(2000, 9500, 38000, 95000, 145000, 240000, 880000)),
		catalog.CategoryPersonalCare:  mustCurve(onScale(0, 9000, 25000, 55000, 100000, 180000, 380000)),
		catalog.CategoryFood:          mustCurve(onScale(0, 7500, 20000, 45000, 85000, 150000, 350000)),
		catalog.CategoryCareer:        mustCurve(onScale(0, 7000, 18000, 40000, 75000, 140000, 280000)),
		catalog.CategoryPets:          mustCurve(onScale(500, 8500, 18000, 35000, 65000, 120000, 240000)),
		catalog.CategoryFinance:       mustCurve(onScale(500, 9500, 35000, 75000, 160000, 300000, 1800000)),
		catalog.CategoryFitness:       mustCurve(onScale(0, 7000, 20000, 55000, 95000, 170000, 350000)),
		catalog.CategoryMusic:         mustCurve(onScale(0, 7500, 18000, 40000, 80000, 150000, 300000)),
		catalog.CategoryLooks:         mustCurve(onScale(0, 8000, 20000, 45000, 85000, 160000, 320000)),
	}
}
