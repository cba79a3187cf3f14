package advolume

import "github.com/Aurelian-Chen/NovasX/internal/catalog"

// The expected-ad-count matrices hold 2023 industry averages per platform,
// bracket, and category. Rows list counts for every category in catalog
// definition order; buildMatrix zips them back into keyed maps.

var douyinRows = map[Bracket][]int{
	Bracket1To10:     {8, 5, 6, 7, 4, 5, 12, 8, 15, 9, 12, 9, 5, 6, 9, 5, 20, 12, 6, 8, 15, 5, 8, 22, 18, 15, 6, 12, 5, 9, 10, 15},
	Bracket10To50:    {12, 8, 9, 10, 6, 8, 22, 12, 30, 15, 18, 15, 8, 9, 15, 8, 38, 18, 9, 12, 30, 8, 12, 45, 38, 30, 9, 18, 8, 15, 18, 30},
	Bracket50To100:   {18, 13, 15, 16, 10, 12, 45, 18, 60, 30, 38, 22, 12, 15, 30, 12, 75, 38, 15, 18, 60, 12, 18, 90, 75, 60, 15, 38, 12, 30, 38, 60},
	Bracket100To500:  {35, 20, 22, 25, 15, 20, 90, 35, 120, 60, 75, 38, 22, 22, 60, 20, 150, 75, 22, 35, 120, 18, 35, 180, 150, 120, 22, 75, 18, 60, 75, 120},
	Bracket500To1000: {55, 35, 38, 40, 25, 35, 150, 55, 230, 120, 150, 75, 38, 38, 120, 35, 300, 150, 38, 55, 230, 35, 55, 370, 300, 230, 38, 150, 35, 120, 150, 230},
	Bracket1000Plus:  {80, 50, 60, 65, 40, 55, 220, 80, 300, 180, 200, 110, 50, 60, 150, 50, 400, 200, 50, 80, 280, 50, 80, 500, 450, 350, 50, 200, 50, 150, 200, 300},
}

var xiaohongshuRows = map[Bracket][]int{
	Bracket1To10:     {5, 3, 6, 5, 3, 5, 8, 9, 6, 5, 9, 6, 5, 5, 12, 4, 22, 15, 5, 4, 12, 4, 6, 30, 22, 18, 5, 9, 4, 12, 8, 18},
	Bracket10To50:    {9, 6, 12, 8, 5, 9, 15, 18, 12, 9, 18, 12, 9, 9, 22, 6, 45, 30, 9, 6, 22, 6, 12, 60, 45, 38, 9, 18, 6, 22, 15, 38},
	Bracket50To100:   {15, 10, 20, 12, 8, 15, 25, 30, 20, 15, 30, 20, 15, 15, 38, 10, 75, 55, 15, 10, 38, 10, 20, 100, 75, 60, 15, 30, 10, 38, 25, 60},
	Bracket100To500:  {25, 15, 35, 20, 12, 25, 45, 55, 35, 25, 55, 35, 25, 25, 75, 15, 150, 90, 25, 15, 75, 15, 35, 200, 150, 120, 25, 55, 15, 75, 45, 120},
	Bracket500To1000: {40, 25, 60, 35, 20, 40, 80, 90, 60, 40, 90, 60, 40, 40, 120, 25, 250, 150, 40, 25, 120, 25, 60, 350, 250, 200, 40, 90, 25, 120, 80, 200},
	Bracket1000Plus:  {60, 40, 90, 55, 30, 60, 120, 130, 90, 60, 130, 90, 60, 60, 180, 40, 350, 220, 60, 40, 180, 40, 90, 500, 380, 300, 60, 130, 40, 180, 120, 300},
}

var bilibiliRows = map[Bracket][]int{
	Bracket1To10:     {4, 8, 5, 6, 3, 5, 6, 5, 7, 6, 5, 6, 5, 6, 8, 4, 12, 6, 5, 10, 7, 6, 8, 15, 12, 10, 5, 7, 5, 8, 7, 10},
	Bracket10To50:    {7, 15, 9, 10, 5, 8, 12, 9, 12, 12, 9, 12, 9, 12, 15, 6, 22, 12, 9, 18, 12, 12, 15, 30, 22, 18, 9, 12, 9, 15, 12, 18},
	Bracket50To100:   {12, 25, 15, 16, 8, 12, 20, 15, 20, 20, 15, 20, 15, 20, 25, 10, 38, 20, 15, 30, 20, 20, 25, 55, 38, 30, 15, 20, 15, 25, 20, 30},
	Bracket100To500:  {20, 45, 25, 25, 12, 20, 35, 25, 35, 35, 25, 35, 25, 35, 45, 15, 75, 35, 25, 55, 35, 35, 45, 90, 75, 55, 25, 35, 25, 45, 35, 55},
	Bracket500To1000: {30, 70, 40, 40, 20, 35, 60, 40, 60, 60, 40, 60, 40, 60, 70, 25, 120, 60, 40, 90, 60, 60, 70, 150, 120, 90, 40, 60, 40, 70, 60, 90},
	Bracket1000Plus:  {50, 100, 60, 65, 30, 55, 90, 60, 90, 90, 60, 90, 60, 90, 100, 40, 180, 90, 60, 130, 90, 90, 100, 220, 180, 130, 60, 90, 60, 100, 90, 130},
}

var kuaishouRows = map[Bracket][]int{
	Bracket1To10:     {10, 6, 8, 7, 5, 6, 15, 8, 18, 10, 12, 10, 6, 8, 12, 5, 22, 15, 8, 10, 15, 6, 8, 25, 20, 18, 8, 12, 6, 12, 10, 18},
	Bracket10To50:    {18, 12, 15, 12, 8, 10, 30, 15, 38, 18, 22, 18, 12, 15, 22, 8, 45, 30, 15, 18, 30, 12, 15, 50, 40, 38, 15, 22, 12, 22, 18, 38},
	Bracket50To100:   {30, 20, 25, 20, 12, 16, 55, 25, 60, 30, 38, 30, 20, 25, 38, 12, 75, 55, 25, 30, 55, 20, 25, 90, 75, 60, 25, 38, 20, 38, 30, 60},
	Bracket100To500:  {60, 35, 45, 35, 20, 25, 90, 45, 120, 60, 75, 60, 35, 45, 75, 20, 150, 90, 45, 60, 90, 35, 45, 180, 150, 120, 45, 75, 35, 75, 60, 120},
	Bracket500To1000: {100, 60, 80, 60, 35, 40, 150, 80, 200, 100, 120, 100, 60, 80, 120, 35, 250, 150, 80, 100, 150, 60, 80, 300, 250, 200, 80, 120, 60, 120, 100, 200},
	Bracket1000Plus:  {150, 90, 120, 90, 55, 65, 220, 120, 300, 150, 180, 150, 90, 120, 180, 55, 350, 220, 120, 150, 220, 90, 120, 450, 380, 300, 120, 180, 90, 180, 150, 300},
}

type countTable map[Bracket]map[catalog.Category]int

func buildPlatformTable(rows map[Bracket][]int) countTable {
	categories := catalog.CategoriesInDefinitionOrder()
	table := make(countTable, len(rows))
	for bracket, counts := range rows {
		if len(counts) != len(categories) {
			panic("advolume: bracket row length does not match category count")
		}
		entry := make(map[catalog.Category]int, len(categories))
		for i, category := range categories {
			entry[category] = counts[i]
		}
		table[bracket] = entry
	}
	return table
}

func buildMatrix() map[catalog.Platform]countTable {
	return map[catalog.Platform]countTable{
		catalog.PlatformDouyin:      buildPlatformTable(douyinRows),
		catalog.PlatformXiaohongshu: buildPlatformTable(xiaohongshuRows),
		catalog.PlatformBilibili:    buildPlatformTable(bilibiliRows),
		catalog.PlatformKuaishou:    buildPlatformTable(kuaishouRows),
	}
}
