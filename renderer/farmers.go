package renderer

import (
	"fmt"
	"strings"

	"github.com/seyda/warehouse"
)

// FarmersMarkdown renders the farmer list as a markdown table.
func FarmersMarkdown(farmers []warehouse.Farmer) string {
	if len(farmers) == 0 {
		return "No farmers recorded.\n"
	}
	var b strings.Builder
	fmt.Fprintln(&b, "# Farmers")
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "| ID | Name | Phone | Email | City |")
	fmt.Fprintln(&b, "|---:|------|-------|-------|------|")
	for _, f := range farmers {
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s |\n", f.ID, f.Name, f.Phone, f.Email, f.City)
	}
	return b.String()
}
