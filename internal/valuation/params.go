package valuation

import "github.com/Aurelian-Chen/NovasX/internal/catalog"

// PlatformParams carries the growth-model coefficients for one platform.
type PlatformParams struct {
	// GrowthCoeff scales the logarithmic follower growth term.
	GrowthCoeff float64
	// AdVolumeMultiplier weights the platform's ad supply.
	AdVolumeMultiplier float64
	// FanLimitWan is the platform's follower ceiling in ten-thousands. It is
	// reference data only: the default growth formula does not apply it, and
	// capping must not be introduced without a product decision since it
	// would shift every downstream valuation figure.
	FanLimitWan float64
}

// CategoryParams carries the growth-model coefficients for one category.
type CategoryParams struct {
	// GrowthAdj adjusts the platform growth term per category.
	GrowthAdj float64
	// AdCountFactor scales the default single-ad price estimate.
	AdCountFactor float64
	// PriceGrowthFactor couples ad price growth to relative follower growth.
	PriceGrowthFactor float64
}

var platformParams = map[catalog.Platform]PlatformParams{
	catalog.PlatformDouyin:      {GrowthCoeff: 0.75, AdVolumeMultiplier: 1.2, FanLimitWan: 500},
	catalog.PlatformXiaohongshu: {GrowthCoeff: 0.65, AdVolumeMultiplier: 1.0, FanLimitWan: 300},
	catalog.PlatformBilibili:    {GrowthCoeff: 0.55, AdVolumeMultiplier: 0.8, FanLimitWan: 200},
	catalog.PlatformKuaishou:    {GrowthCoeff: 0.45, AdVolumeMultiplier: 0.6, FanLimitWan: 400},
}

var categoryParams = map[catalog.Category]CategoryParams{
	catalog.CategoryAgriculture:   {GrowthAdj: 0.45, AdCountFactor: 1.2, PriceGrowthFactor: 0.6},
	catalog.CategoryACG:           {GrowthAdj: 0.50, AdCountFactor: 1.4, PriceGrowthFactor: 0.7},
	catalog.CategoryHealth:        {GrowthAdj: 0.30, AdCountFactor: 0.8, PriceGrowthFactor: 0.4},
	catalog.CategoryHobbies:       {GrowthAdj: 0.35, AdCountFactor: 0.9, PriceGrowthFactor: 0.5},
	catalog.CategoryOther:         {GrowthAdj: 0.25, AdCountFactor: 0.6, PriceGrowthFactor: 0.3},
	catalog.CategoryMedical:       {GrowthAdj: 0.32, AdCountFactor: 0.7, PriceGrowthFactor: 0.5},
	catalog.CategoryEntertainment: {GrowthAdj: 0.40, AdCountFactor: 1.1, PriceGrowthFactor: 0.6},
	catalog.CategoryHomeDecor:     {GrowthAdj: 0.38, AdCountFactor: 1.3, PriceGrowthFactor: 0.7},
	catalog.CategoryComedy:        {GrowthAdj: 0.42, AdCountFactor: 1.0, PriceGrowthFactor: 0.5},
	catalog.CategoryFilmVariety:   {GrowthAdj: 0.35, AdCountFactor: 1.1, PriceGrowthFactor: 0.6},
	catalog.CategoryEmotions:      {GrowthAdj: 0.36, AdCountFactor: 1.0, PriceGrowthFactor: 0.6},
	catalog.CategoryTalent:        {GrowthAdj: 0.37, AdCountFactor: 1.1, PriceGrowthFactor: 0.6},
	catalog.CategoryEducation:     {GrowthAdj: 0.33, AdCountFactor: 0.9, PriceGrowthFactor: 0.5},
	catalog.CategoryCulture:       {GrowthAdj: 0.34, AdCountFactor: 0.9, PriceGrowthFactor: 0.5},
	catalog.CategoryTravel:        {GrowthAdj: 0.39, AdCountFactor: 1.2, PriceGrowthFactor: 0.7},
	catalog.CategoryNews:          {GrowthAdj: 0.30, AdCountFactor: 0.7, PriceGrowthFactor: 0.4},
	catalog.CategoryFashion:       {GrowthAdj: 0.43, AdCountFactor: 1.5, PriceGrowthFactor: 0.8},
	catalog.CategoryParenting:     {GrowthAdj: 0.40, AdCountFactor: 1.4, PriceGrowthFactor: 0.7},
	catalog.CategoryAutomotive:    {GrowthAdj: 0.38, AdCountFactor: 1.3, PriceGrowthFactor: 0.8},
	catalog.CategoryGaming:        {GrowthAdj: 0.45, AdCountFactor: 1.3, PriceGrowthFactor: 0.7},
	catalog.CategoryLifestyle:     {GrowthAdj: 0.36, AdCountFactor: 1.0, PriceGrowthFactor: 0.6},
	catalog.CategoryScience:       {GrowthAdj: 0.35, AdCountFactor: 1.1, PriceGrowthFactor: 0.6},
	catalog.CategoryTech:          {GrowthAdj: 0.42, AdCountFactor: 1.4, PriceGrowthFactor: 0.9},
	catalog.CategoryMakeup:        {GrowthAdj: 0.48, AdCountFactor: 1.6, PriceGrowthFactor: 0.9},
	catalog.CategoryPersonalCare:  {GrowthAdj: 0.45, AdCountFactor: 1.5, PriceGrowthFactor: 0.8},
	catalog.CategoryFood:          {GrowthAdj: 0.44, AdCountFactor: 1.4, PriceGrowthFactor: 0.7},
	catalog.CategoryCareer:        {GrowthAdj: 0.37, AdCountFactor: 1.0, PriceGrowthFactor: 0.6},
	catalog.CategoryPets:          {GrowthAdj: 0.41, AdCountFactor: 1.2, PriceGrowthFactor: 0.6},
	catalog.CategoryFinance:       {GrowthAdj: 0.39, AdCountFactor: 1.3, PriceGrowthFactor: 0.8},
	catalog.CategoryFitness:       {GrowthAdj: 0.40, AdCountFactor: 1.2, PriceGrowthFactor: 0.7},
	catalog.CategoryMusic:         {GrowthAdj: 0.38, AdCountFactor: 1.1, PriceGrowthFactor: 0.6},
	catalog.CategoryLooks:         {GrowthAdj: 0.46, AdCountFactor: 1.3, PriceGrowthFactor: 0.8},
}
