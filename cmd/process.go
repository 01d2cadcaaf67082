package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/seyda/warehouse"
)

type processCmd struct {
	ptype    string
	category string
	quantity int
}

func (*processCmd) Name() string     { return "process" }
func (*processCmd) Synopsis() string { return "package raw product into a category" }
func (*processCmd) Usage() string {
	return `whs process -type <type> -category <category> -n <quantity>

  Packages raw product into finished packages: debits quantity times the
  category's package size from the raw pool and credits the packaged count.
  Fails atomically when the raw pool holds less than the required mass.

Usage Examples:
# Package 50 small (100g) packs out of the fresh pool.
$ whs process -type fresh -category small -n 50
`
}

func (c *processCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ptype, "type", "", "Source product type (fresh, frozen, organic)")
	f.StringVar(&c.category, "category", "", "Target package category")
	f.IntVar(&c.quantity, "n", 0, "Number of packages to produce")
}

func (c *processCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ptype == "" || c.category == "" {
		fmt.Fprintln(os.Stderr, "Error: -type and -category flags are required.")
		return subcommands.ExitUsageError
	}
	productType, err := warehouse.ParseProductType(c.ptype)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	category, err := warehouse.ParseCategory(c.category)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	w, err := DecodeWarehouse()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := w.ProcessInventory(productType, category, c.quantity); err != nil {
		fmt.Fprintf(os.Stderr, "Error processing inventory: %v\n", err)
		return subcommands.ExitFailure
	}

	if status := EncodeWarehouse(w); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Successfully processed %d %s packages from %s (%s left in pool)\n",
		c.quantity, category, productType, w.Inventory().UnprocessedGrams(productType))
	return subcommands.ExitSuccess
}

type packSizeCmd struct {
	grams int64
}

func (*packSizeCmd) Name() string     { return "pack-size" }
func (*packSizeCmd) Synopsis() string { return "set the premium package size" }
func (*packSizeCmd) Usage() string {
	return `whs pack-size -g <grams>

  Sets the package size of the premium category. Premium is the only category
  whose size is configurable, and it must be set before premium packages can
  be produced.
`
}

func (c *packSizeCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.grams, "g", 0, "Premium package size, in grams")
}

func (c *packSizeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	w, err := DecodeWarehouse()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := w.SetPremiumPackageSize(warehouse.Grams(c.grams)); err != nil {
		fmt.Fprintf(os.Stderr, "Error setting premium package size: %v\n", err)
		return subcommands.ExitFailure
	}

	if status := EncodeWarehouse(w); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Successfully set premium package size to %s\n", warehouse.Grams(c.grams))
	return subcommands.ExitSuccess
}
