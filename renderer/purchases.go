package renderer

import (
	"fmt"
	"strings"

	"github.com/seyda/warehouse"
)

// PurchasesMarkdown renders a purchase listing as a markdown table. Farmer
// ids are resolved to names through the warehouse.
func PurchasesMarkdown(w *warehouse.Warehouse, purchases []warehouse.Purchase) string {
	if len(purchases) == 0 {
		return "No purchases recorded.\n"
	}
	var b strings.Builder
	fmt.Fprintln(&b, "# Purchases")
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "| ID | Farmer | Type | Quantity (kg) | Price/kg | Total Cost | Date |")
	fmt.Fprintln(&b, "|---:|--------|------|--------------:|---------:|-----------:|------|")
	for _, p := range purchases {
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s | %s | %s |\n",
			p.ID, w.FarmerName(p.FarmerID), p.ProductType, p.Quantity.Kg(), p.PricePerKg, p.TotalCost(), p.Date)
	}
	return b.String()
}
