package pricing

import "github.com/Aurelian-Chen/NovasX/internal/catalog"

// coefficientMatrix maps category -> platform -> price multiplier relative
// to the reference platform, whose multiplier is fixed at 1.0 for every
// category. Platforms absent from a row price at the neutral 1.0.
var coefficientMatrix = map[catalog.Category]map[catalog.Platform]float64{
	catalog.CategoryAgriculture:   {catalog.PlatformXiaohongshu: 0.5, catalog.PlatformBilibili: 0.3, catalog.PlatformKuaishou: 1.8, catalog.PlatformDouyin: 1},
	catalog.CategoryACG:           {catalog.PlatformXiaohongshu: 0.7, catalog.PlatformBilibili: 2.2, catalog.PlatformKuaishou: 0.4, catalog.PlatformDouyin: 1},
	catalog.CategoryHealth:        {catalog.PlatformXiaohongshu: 1.3, catalog.PlatformBilibili: 0.8, catalog.PlatformKuaishou: 1.1, catalog.PlatformDouyin: 1},
	catalog.CategoryHobbies:       {catalog.PlatformXiaohongshu: 1.2, catalog.PlatformBilibili: 1.4, catalog.PlatformKuaishou: 0.9, catalog.PlatformDouyin: 1},
	catalog.CategoryOther:         {catalog.PlatformXiaohongshu: 0.8, catalog.PlatformBilibili: 0.9, catalog.PlatformKuaishou: 1.0, catalog.PlatformDouyin: 1},
	catalog.CategoryMedical:       {catalog.PlatformXiaohongshu: 1.0, catalog.PlatformBilibili: 0.6, catalog.PlatformKuaishou: 1.3, catalog.PlatformDouyin: 1},
	catalog.CategoryEntertainment: {catalog.PlatformXiaohongshu: 0.9, catalog.PlatformBilibili: 1.1, catalog.PlatformKuaishou: 1.4, catalog.PlatformDouyin: 1},
	catalog.CategoryHomeDecor:     {catalog.PlatformXiaohongshu: 1.8, catalog.PlatformBilibili: 0.5, catalog.PlatformKuaishou: 1.0, catalog.PlatformDouyin: 1},
	catalog.CategoryComedy:        {catalog.PlatformXiaohongshu: 0.7, catalog.PlatformBilibili: 1.0, catalog.PlatformKuaishou: 1.6, catalog.PlatformDouyin: 1},
	catalog.CategoryFilmVariety:   {catalog.PlatformXiaohongshu: 0.8, catalog.PlatformBilibili: 1.7, catalog.PlatformKuaishou: 0.9, catalog.PlatformDouyin: 1},
	catalog.CategoryEmotions:      {catalog.PlatformXiaohongshu: 1.6, catalog.PlatformBilibili: 0.7, catalog.PlatformKuaishou: 1.0, catalog.PlatformDouyin: 1},
	catalog.CategoryTalent:        {catalog.PlatformXiaohongshu: 1.1, catalog.PlatformBilibili: 1.5, catalog.PlatformKuaishou: 0.8, catalog.PlatformDouyin: 1},
	catalog.CategoryEducation:     {catalog.PlatformXiaohongshu: 1.0, catalog.PlatformBilibili: 1.6, catalog.PlatformKuaishou: 0.6, catalog.PlatformDouyin: 1},
	catalog.CategoryCulture:       {catalog.PlatformXiaohongshu: 1.1, catalog.PlatformBilibili: 1.8, catalog.PlatformKuaishou: 0.5, catalog.PlatformDouyin: 1},
	catalog.CategoryTravel:        {catalog.PlatformXiaohongshu: 1.6, catalog.PlatformBilibili: 0.9, catalog.PlatformKuaishou: 1.1, catalog.PlatformDouyin: 1},
	catalog.CategoryNews:          {catalog.PlatformXiaohongshu: 0.6, catalog.PlatformBilibili: 1.3, catalog.PlatformKuaishou: 1.1, catalog.PlatformDouyin: 1},
	catalog.CategoryFashion:       {catalog.PlatformXiaohongshu: 1.9, catalog.PlatformBilibili: 0.8, catalog.PlatformKuaishou: 1.2, catalog.PlatformDouyin: 1},
	catalog.CategoryParenting:     {catalog.PlatformXiaohongshu: 1.5, catalog.PlatformBilibili: 0.4, catalog.PlatformKuaishou: 1.5, catalog.PlatformDouyin: 1},
	catalog.CategoryAutomotive:    {catalog.PlatformXiaohongshu: 0.7, catalog.PlatformBilibili: 1.1, catalog.PlatformKuaishou: 0.9, catalog.PlatformDouyin: 1},
	catalog.CategoryGaming:        {catalog.PlatformXiaohongshu: 0.5, catalog.PlatformBilibili: 2.0, catalog.PlatformKuaishou: 0.7, catalog.PlatformDouyin: 1},
	catalog.CategoryLifestyle:     {catalog.PlatformXiaohongshu: 1.3, catalog.PlatformBilibili: 1.0, catalog.PlatformKuaishou: 1.5, catalog.PlatformDouyin: 1},
	catalog.CategoryScience:       {catalog.PlatformXiaohongshu: 0.9, catalog.PlatformBilibili: 1.7, catalog.PlatformKuaishou: 0.6, catalog.PlatformDouyin: 1},
	catalog.CategoryTech:          {catalog.PlatformXiaohongshu: 0.6, catalog.PlatformBilibili: 1.8, catalog.PlatformKuaishou: 0.8, catalog.PlatformDouyin: 1},
	catalog.CategoryMakeup:        {catalog.PlatformXiaohongshu: 2.0, catalog.PlatformBilibili: 0.6, catalog.PlatformKuaishou: 1.0, catalog.PlatformDouyin: 1},
	catalog.CategoryPersonalCare:  {catalog.PlatformXiaohongshu: 1.7, catalog.PlatformBilibili: 0.5, catalog.PlatformKuaishou: 0.9, catalog.PlatformDouyin: 1},
	catalog.CategoryFood:          {catalog.PlatformXiaohongshu: 1.5, catalog.PlatformBilibili: 1.0, catalog.PlatformKuaishou: 1.4, catalog.PlatformDouyin: 1},
	catalog.CategoryCareer:        {catalog.PlatformXiaohongshu: 1.1, catalog.PlatformBilibili: 1.4, catalog.PlatformKuaishou: 0.7, catalog.PlatformDouyin: 1},
	catalog.CategoryPets:          {catalog.PlatformXiaohongshu: 1.2, catalog.PlatformBilibili: 1.1, catalog.PlatformKuaishou: 1.4, catalog.PlatformDouyin: 1},
	catalog.CategoryFinance:       {catalog.PlatformXiaohongshu: 0.8, catalog.PlatformBilibili: 1.0, catalog.PlatformKuaishou: 0.5, catalog.PlatformDouyin: 1},
	catalog.CategoryFitness:       {catalog.PlatformXiaohongshu: 1.1, catalog.PlatformBilibili: 0.9, catalog.PlatformKuaishou: 1.0, catalog.PlatformDouyin: 1},
	catalog.CategoryMusic:         {catalog.PlatformXiaohongshu: 1.0, catalog.PlatformBilibili: 1.5, catalog.PlatformKuaishou: 1.1, catalog.PlatformDouyin: 1},
	catalog.CategoryLooks:         {catalog.PlatformXiaohongshu: 1.4, catalog.PlatformBilibili: 1.0, catalog.PlatformKuaishou: 1.3, catalog.PlatformDouyin: 1},
}
