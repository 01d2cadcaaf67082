package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/seyda/warehouse"
	"github.com/seyda/warehouse/renderer"
)

type ordersCmd struct {
	status   string
	customer string
	category string
	from     string
	to       string
}

func (*ordersCmd) Name() string     { return "orders" }
func (*ordersCmd) Synopsis() string { return "list customer orders" }
func (*ordersCmd) Usage() string {
	return `whs orders [-status <status>] [-customer <name>] [-category <category>] [-from <date>] [-to <date>]

  Lists orders, optionally filtered by status, customer name substring,
  category and date range.
`
}

func (c *ordersCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.status, "status", "", "Only orders in this status")
	f.StringVar(&c.customer, "customer", "", "Only orders whose customer name contains this text")
	f.StringVar(&c.category, "category", "", "Only orders of this package category")
	f.StringVar(&c.from, "from", "", "Only orders on or after this date")
	f.StringVar(&c.to, "to", "", "Only orders on or before this date")
}

func (c *ordersCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	filter := warehouse.OrderFilter{Customer: c.customer}
	if c.status != "" {
		status, err := warehouse.ParseStatus(c.status)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		filter.Status = status
	}
	if c.category != "" {
		category, err := warehouse.ParseCategory(c.category)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		filter.Category = category
	}
	r, status := parseRange(c.from, c.to)
	if status != subcommands.ExitSuccess {
		return status
	}
	filter.Range = r

	w, err := DecodeWarehouse()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.OrdersMarkdown(w.FilterOrders(filter)))
	return subcommands.ExitSuccess
}
