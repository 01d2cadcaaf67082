package renderer

import (
	"fmt"
	"strings"

	"github.com/seyda/warehouse"
)

// OrdersMarkdown renders an order listing as a markdown table.
func OrdersMarkdown(orders []warehouse.Order) string {
	if len(orders) == 0 {
		return "No orders recorded.\n"
	}
	var b strings.Builder
	fmt.Fprintln(&b, "# Orders")
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "| ID | Customer | Contact | Category | Qty | Total | Tax | Status | Date |")
	fmt.Fprintln(&b, "|---:|----------|---------|----------|----:|------:|----:|--------|------|")
	for _, o := range orders {
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %d | %s | %s | %s | %s |\n",
			o.ID, o.CustomerName, o.Contact, o.Category, o.Quantity, o.TotalPrice, o.Tax, o.Status, o.Date)
	}
	return b.String()
}
