// Package output provides utilities for formatting and displaying pricing
// and valuation results.
package output

import (
	"fmt"

	"github.com/Aurelian-Chen/NovasX/internal/advolume"
	"github.com/Aurelian-Chen/NovasX/internal/catalog"
	"github.com/Aurelian-Chen/NovasX/internal/valuation"
	"github.com/Aurelian-Chen/NovasX/pkg/units"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyPrices outputs a human-readable per-platform price comparison.
func PrettyPrices(category catalog.Category, followers units.Followers, prices map[catalog.Platform]float64) {
	p := message.NewPrinter(language.English)
	_, _ = p.Printf("--- Prices for %s at %.0f followers ---\n", string(category), float64(followers))
	fmt.Printf("Platform | Price\n")
	fmt.Printf("________ | _____\n")
	for _, platform := range catalog.Platforms() {
		_, _ = p.Printf("%s | %.2f\n", string(platform), prices[platform])
	}
}

// CsvPrices outputs the per-platform comparison in comma-separated form.
func CsvPrices(category catalog.Category, prices map[catalog.Platform]float64) {
	fmt.Printf("\"platform\",\"category\",\"price\"\n")
	for _, platform := range catalog.Platforms() {
		fmt.Printf("%q,%q,%.2f\n", string(platform), string(category), prices[platform])
	}
}

// PrettySummary outputs a human-readable valuation table with the
// cumulative rollup row.
func PrettySummary(platform catalog.Platform, category catalog.Category, summary *valuation.Summary) {
	p := message.NewPrinter(language.English)
	_, _ = p.Printf("--- Valuation for %s / %s ---\n", string(platform), string(category))
	fmt.Printf("Year  | Fans (wan) | Ads | Revenue (wan)\n")
	fmt.Printf("____  | __________ | ___ | _____________\n")
	for _, row := range summary.Rows {
		_, _ = p.Printf("%d     | %.2f | %d | %.2f\n", row.Year, row.FansWan, row.AdCount, row.RevenueWan)
	}
	_, _ = p.Printf("total | %.2f | %d | %.2f\n", summary.FinalFansWan, summary.TotalAdCount, summary.TotalRevenueWan)
}

// CsvSummary outputs the valuation table in comma-separated form, rollup
// row last.
func CsvSummary(summary *valuation.Summary) {
	fmt.Printf("\"year\",\"fansWan\",\"adCount\",\"revenueWan\"\n")
	for _, row := range summary.Rows {
		fmt.Printf("%d,%.2f,%d,%.2f\n", row.Year, row.FansWan, row.AdCount, row.RevenueWan)
	}
	fmt.Printf("\"total\",%.2f,%d,%.2f\n", summary.FinalFansWan, summary.TotalAdCount, summary.TotalRevenueWan)
}

// PrettyDevelopment outputs a human-readable development readout.
func PrettyDevelopment(platform catalog.Platform, category catalog.Category, fans units.WanFollowers, expected, actual int, ratio float64) {
	p := message.NewPrinter(language.English)
	level := advolume.LevelFor(ratio)
	_, _ = p.Printf("--- Development for %s / %s (%s) ---\n",
		string(platform), string(category), advolume.BracketFor(fans))
	_, _ = p.Printf("expected ads: %d | actual ads: %d\n", expected, actual)
	_, _ = p.Printf("ratio: %.2fx (%s)\n", ratio, level)
}
