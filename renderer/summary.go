package renderer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/seyda/warehouse"
)

// SummaryMarkdown renders the derived financial aggregates.
func SummaryMarkdown(f warehouse.Financials) string {
	var b strings.Builder
	fmt.Fprintln(&b, "# Financial Summary")
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "- Total Revenue: %s\n", f.TotalRevenue)
	fmt.Fprintf(&b, "- Total Expenses: %s\n", f.TotalExpenses)
	fmt.Fprintf(&b, "- Tax Liability: %s\n", f.TaxLiability)
	fmt.Fprintf(&b, "- Net Profit: %s\n", f.NetProfit)
	fmt.Fprintf(&b, "- Tax Rate: %s\n", f.TaxRate)
	return b.String()
}

// PeriodicMarkdown renders the monthly or yearly rollups in chronological
// order. Bucket keys sort chronologically because they are "YYYY-MM"/"YYYY".
func PeriodicMarkdown(title string, stats map[string]warehouse.PeriodStats) string {
	if len(stats) == 0 {
		return "No activity recorded.\n"
	}
	keys := make([]string, 0, len(stats))
	for k := range stats {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	fmt.Fprintln(&b, "| Period | Revenue | Expenses | Profit |")
	fmt.Fprintln(&b, "|--------|--------:|---------:|-------:|")
	for _, k := range keys {
		s := stats[k]
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", k, s.Revenue, s.Expenses, s.Profit)
	}
	return b.String()
}

// PricesMarkdown renders the price table with the derived per-kg price.
func PricesMarkdown(rows []warehouse.PriceRow) string {
	var b strings.Builder
	fmt.Fprintln(&b, "# Product Prices")
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "| Category | Price | Package Size | Price/kg |")
	fmt.Fprintln(&b, "|----------|------:|-------------:|---------:|")
	for _, r := range rows {
		size, perKg := "unset", "-"
		if r.PackageSize > 0 {
			size = r.PackageSize.String()
			perKg = r.PricePerKg.String()
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", r.Category, r.Price, size, perKg)
	}
	return b.String()
}
