package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/seyda/warehouse/renderer"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the warehouse financial summary" }
func (*summaryCmd) Usage() string {
	return `whs summary

  Displays the financial summary of the warehouse: total revenue, total
  expenses, tax liability and net profit.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	w, err := DecodeWarehouse()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SummaryMarkdown(w.Financials()))
	return subcommands.ExitSuccess
}

type monthlyCmd struct{}

func (*monthlyCmd) Name() string     { return "monthly" }
func (*monthlyCmd) Synopsis() string { return "display the month-by-month profit breakdown" }
func (*monthlyCmd) Usage() string {
	return `whs monthly

  Displays revenue, expenses and profit per calendar month.
`
}

func (c *monthlyCmd) SetFlags(f *flag.FlagSet) {}

func (c *monthlyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	w, err := DecodeWarehouse()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.PeriodicMarkdown("Monthly Profit", w.Financials().MonthlyStats))
	return subcommands.ExitSuccess
}

type yearlyCmd struct{}

func (*yearlyCmd) Name() string     { return "yearly" }
func (*yearlyCmd) Synopsis() string { return "display the year-by-year profit breakdown" }
func (*yearlyCmd) Usage() string {
	return `whs yearly

  Displays revenue, expenses and profit per calendar year.
`
}

func (c *yearlyCmd) SetFlags(f *flag.FlagSet) {}

func (c *yearlyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	w, err := DecodeWarehouse()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.PeriodicMarkdown("Yearly Profit", w.Financials().YearlyStats))
	return subcommands.ExitSuccess
}
