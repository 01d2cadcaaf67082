package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/seyda/warehouse"
)

// InventoryMarkdown renders both stages of the stock ledger: raw mass by
// product type and packaged stock by category, flagging categories at or
// below their minimum-stock threshold.
func InventoryMarkdown(w *warehouse.Warehouse) string {
	inv := w.Inventory()
	var b strings.Builder

	fmt.Fprintln(&b, "# Inventory")
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "## Unprocessed Stock")
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "| Type | Amount |")
	fmt.Fprintln(&b, "|------|-------:|")
	for _, t := range warehouse.ProductTypes() {
		fmt.Fprintf(&b, "| %s | %s |\n", t, inv.UnprocessedGrams(t))
	}

	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "## Processed Stock")
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "| Category | Packages | Package Size | Minimum | |")
	fmt.Fprintln(&b, "|----------|---------:|-------------:|--------:|---|")
	for _, c := range warehouse.Categories() {
		flag := ""
		if inv.Processed(c) <= inv.MinimumStock(c) {
			flag = "⚠ low"
		}
		size := "unset"
		if inv.PackageSize(c) > 0 {
			size = inv.PackageSize(c).String()
		}
		fmt.Fprintf(&b, "| %s | %d | %s | %d | %s |\n", c, inv.Processed(c), size, inv.MinimumStock(c), flag)
	}
	return b.String()
}

// LowStockMarkdown renders only the categories below their threshold, or
// nothing when all categories are sufficiently stocked.
func LowStockMarkdown(low []warehouse.LowStock) string {
	var b strings.Builder
	ConditionalBlock(&b, func(w io.Writer) bool {
		if len(low) == 0 {
			fmt.Fprintln(w, "All categories are above their minimum stock.")
			return true
		}
		fmt.Fprintln(w, "# Low Stock")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "| Category | Packages | Minimum |")
		fmt.Fprintln(w, "|----------|---------:|--------:|")
		for _, l := range low {
			fmt.Fprintf(w, "| %s | %d | %d |\n", l.Category, l.Count, l.Minimum)
		}
		return true
	})
	return b.String()
}
