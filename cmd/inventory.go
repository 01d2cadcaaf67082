package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/seyda/warehouse/renderer"
)

type inventoryCmd struct{}

func (*inventoryCmd) Name() string     { return "inventory" }
func (*inventoryCmd) Synopsis() string { return "display the raw and packaged stock levels" }
func (*inventoryCmd) Usage() string {
	return `whs inventory

  Displays the unprocessed pools per product type and the packaged stock per
  category, flagging categories at or below their minimum level.
`
}

func (c *inventoryCmd) SetFlags(f *flag.FlagSet) {}

func (c *inventoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	w, err := DecodeWarehouse()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.InventoryMarkdown(w))
	return subcommands.ExitSuccess
}

type lowStockCmd struct{}

func (*lowStockCmd) Name() string     { return "low-stock" }
func (*lowStockCmd) Synopsis() string { return "list package categories that need restocking" }
func (*lowStockCmd) Usage() string {
	return `whs low-stock

  Lists the package categories whose packaged stock is at or below their
  minimum level.
`
}

func (c *lowStockCmd) SetFlags(f *flag.FlagSet) {}

func (c *lowStockCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	w, err := DecodeWarehouse()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.LowStockMarkdown(w.LowStockReport()))
	return subcommands.ExitSuccess
}
