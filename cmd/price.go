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

type priceCmd struct {
	category string
	price    float64
}

func (*priceCmd) Name() string     { return "price" }
func (*priceCmd) Synopsis() string { return "set the selling price of a package category" }
func (*priceCmd) Usage() string {
	return `whs price -category <category> -p <price>

  Sets the per-package selling price of a category. Existing orders keep the
  price they were created with; only future orders use the new price.
`
}

func (c *priceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "category", "", "Package category to re-price")
	f.Float64Var(&c.price, "p", 0, "New price per package")
}

func (c *priceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.category == "" {
		fmt.Fprintln(os.Stderr, "Error: -category flag is required.")
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

	if err := w.UpdateProductPrice(category, warehouse.M(c.price)); err != nil {
		fmt.Fprintf(os.Stderr, "Error updating price: %v\n", err)
		return subcommands.ExitFailure
	}

	if status := EncodeWarehouse(w); status != subcommands.ExitSuccess {
		return status
	}
	price, _ := w.Price(category)
	fmt.Printf("Successfully set %s price to %s\n", category, price)
	return subcommands.ExitSuccess
}

type pricesCmd struct{}

func (*pricesCmd) Name() string     { return "prices" }
func (*pricesCmd) Synopsis() string { return "display the price table" }
func (*pricesCmd) Usage() string {
	return `whs prices

  Displays every package category with its size, selling price and the
  effective price per kilogram.
`
}

func (c *pricesCmd) SetFlags(f *flag.FlagSet) {}

func (c *pricesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	w, err := DecodeWarehouse()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.PricesMarkdown(w.PriceTable()))
	return subcommands.ExitSuccess
}
