package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
	"github.com/seyda/warehouse"
)

type exportCmd struct {
	what string
	out  string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export purchases or orders as CSV" }
func (*exportCmd) Usage() string {
	return `whs export -what <purchases|orders> [-o <file>]

  Exports the purchase or order log as CSV, to stdout by default.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.what, "what", "", "Log to export (purchases, orders)")
	f.StringVar(&c.out, "o", "", "Output file (defaults to stdout)")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	w, err := DecodeWarehouse()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var out io.Writer = os.Stdout
	if c.out != "" {
		file, err := os.Create(c.out)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file %q: %v\n", c.out, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		out = file
	}

	switch c.what {
	case "purchases":
		err = warehouse.ExportPurchasesCSV(out, w)
	case "orders":
		err = warehouse.ExportOrdersCSV(out, w)
	default:
		fmt.Fprintln(os.Stderr, "Error: -what must be 'purchases' or 'orders'.")
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting %s: %v\n", c.what, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
