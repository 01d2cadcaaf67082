package renderer

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/seyda/warehouse"
)

// FarmerReportMarkdown renders the per-farmer purchase summary.
func FarmerReportMarkdown(r warehouse.FarmerReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Purchases from %s\n\n", r.Farmer.Name)
	fmt.Fprintf(&b, "- Purchases: %d\n", r.Purchases)
	fmt.Fprintf(&b, "- Total Quantity: %s kg\n", r.TotalKg)
	fmt.Fprintf(&b, "- Total Cost: %s\n", r.TotalCost)
	fmt.Fprintf(&b, "- Average Price: %s/kg\n", r.AveragePrice)

	ConditionalBlock(&b, func(w io.Writer) bool {
		if len(r.ByProductType) == 0 {
			return false
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, "| Type | Purchases | Quantity (kg) | Cost |")
		fmt.Fprintln(w, "|------|----------:|--------------:|-----:|")
		for _, t := range warehouse.ProductTypes() {
			s, ok := r.ByProductType[t]
			if !ok {
				continue
			}
			fmt.Fprintf(w, "| %s | %d | %s | %s |\n", t, s.Purchases, s.QuantityKg, s.Cost)
		}
		return true
	})
	return b.String()
}

// RangeReportMarkdown renders the date-range purchase summary.
func RangeReportMarkdown(r warehouse.RangeReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Purchases from %s to %s\n\n", r.Range.From, r.Range.To)
	fmt.Fprintf(&b, "- Purchases: %d\n", r.Purchases)
	fmt.Fprintf(&b, "- Total Quantity: %s kg\n", r.TotalKg)
	fmt.Fprintf(&b, "- Total Cost: %s\n", r.TotalCost)
	fmt.Fprintf(&b, "- Average Price: %s/kg\n", r.AveragePrice)

	ConditionalBlock(&b, func(w io.Writer) bool {
		if len(r.ByProductType) == 0 {
			return false
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, "## By Product Type")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "| Type | Purchases | Quantity (kg) | Cost |")
		fmt.Fprintln(w, "|------|----------:|--------------:|-----:|")
		for _, t := range warehouse.ProductTypes() {
			s, ok := r.ByProductType[t]
			if !ok {
				continue
			}
			fmt.Fprintf(w, "| %s | %d | %s | %s |\n", t, s.Purchases, s.QuantityKg, s.Cost)
		}
		return true
	})

	ConditionalBlock(&b, func(w io.Writer) bool {
		if len(r.ByFarmer) == 0 {
			return false
		}
		names := make([]string, 0, len(r.ByFarmer))
		for name := range r.ByFarmer {
			names = append(names, name)
		}
		sort.Strings(names)

		fmt.Fprintln(w)
		fmt.Fprintln(w, "## By Farmer")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "| Farmer | Purchases | Quantity (kg) | Cost |")
		fmt.Fprintln(w, "|--------|----------:|--------------:|-----:|")
		for _, name := range names {
			s := r.ByFarmer[name]
			fmt.Fprintf(w, "| %s | %d | %s | %s |\n", name, s.Purchases, s.QuantityKg, s.Cost)
		}
		return true
	})
	return b.String()
}
