package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/seyda/warehouse"
	"github.com/seyda/warehouse/date"
	"github.com/seyda/warehouse/renderer"
)

type purchasesCmd struct {
	ptype  string
	farmer int
	from   string
	to     string
	sort   string
}

func (*purchasesCmd) Name() string     { return "purchases" }
func (*purchasesCmd) Synopsis() string { return "list recorded purchases" }
func (*purchasesCmd) Usage() string {
	return `whs purchases [-type <type>] [-farmer <id>] [-from <date>] [-to <date>] [-sort <criteria>]

  Lists purchases, optionally filtered by product type, farmer and date range,
  sorted by date, farmer, type, quantity, price or cost.
`
}

func (c *purchasesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ptype, "type", "", "Only purchases of this product type")
	f.IntVar(&c.farmer, "farmer", 0, "Only purchases from this farmer id")
	f.StringVar(&c.from, "from", "", "Only purchases on or after this date")
	f.StringVar(&c.to, "to", "", "Only purchases on or before this date")
	f.StringVar(&c.sort, "sort", "date", "Sort criteria (date, farmer, type, quantity, price, cost)")
}

func (c *purchasesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	filter := warehouse.PurchaseFilter{FarmerID: c.farmer}
	if c.ptype != "" {
		productType, err := warehouse.ParseProductType(c.ptype)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		filter.ProductType = productType
	}
	r, status := parseRange(c.from, c.to)
	if status != subcommands.ExitSuccess {
		return status
	}
	filter.Range = r

	criteria, err := warehouse.ParsePurchaseSort(c.sort)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	w, err := DecodeWarehouse()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	purchases := w.FilterPurchases(filter)
	w.SortPurchases(purchases, criteria)
	printMarkdown(renderer.PurchasesMarkdown(w, purchases))
	return subcommands.ExitSuccess
}

// parseRange builds a date range from optional -from and -to flag values.
func parseRange(from, to string) (date.Range, subcommands.ExitStatus) {
	var r date.Range
	if from != "" {
		d, err := warehouse.ParseDate(from)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -from date: %v\n", err)
			return r, subcommands.ExitUsageError
		}
		r.From = d
	}
	if to != "" {
		d, err := warehouse.ParseDate(to)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -to date: %v\n", err)
			return r, subcommands.ExitUsageError
		}
		r.To = d
	}
	return r, subcommands.ExitSuccess
}
