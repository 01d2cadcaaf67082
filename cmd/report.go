package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/seyda/warehouse/renderer"
)

type farmerReportCmd struct {
	id int
}

func (*farmerReportCmd) Name() string     { return "farmer-report" }
func (*farmerReportCmd) Synopsis() string { return "display the purchase history of one farmer" }
func (*farmerReportCmd) Usage() string {
	return `whs farmer-report -id <id>

  Displays everything bought from one farmer: totals and a per-product-type
  breakdown of mass and cost.
`
}

func (c *farmerReportCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", -1, "Id of the farmer to report on")
}

func (c *farmerReportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id < 0 {
		fmt.Fprintln(os.Stderr, "Error: -id flag is required.")
		return subcommands.ExitUsageError
	}

	w, err := DecodeWarehouse()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	report, err := w.ReportFarmer(c.id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reporting on farmer %d: %v\n", c.id, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.FarmerReportMarkdown(report))
	return subcommands.ExitSuccess
}

type rangeReportCmd struct {
	from string
	to   string
}

func (*rangeReportCmd) Name() string     { return "report" }
func (*rangeReportCmd) Synopsis() string { return "display purchase totals over a date range" }
func (*rangeReportCmd) Usage() string {
	return `whs report [-from <date>] [-to <date>]

  Displays purchase totals over a date range, broken down by product type and
  by farmer. Open boundaries are allowed: omitting -from or -to leaves that
  side unbounded.
`
}

func (c *rangeReportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Start of the range (YYYY-MM-DD)")
	f.StringVar(&c.to, "to", "", "End of the range (YYYY-MM-DD)")
}

func (c *rangeReportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, status := parseRange(c.from, c.to)
	if status != subcommands.ExitSuccess {
		return status
	}

	w, err := DecodeWarehouse()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RangeReportMarkdown(w.ReportRange(r)))
	return subcommands.ExitSuccess
}
