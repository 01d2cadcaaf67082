package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/seyda/warehouse"
)

type purchaseCmd struct {
	farmer int
	ptype  string
	kg     float64
	price  float64
	date   string
}

func (*purchaseCmd) Name() string     { return "purchase" }
func (*purchaseCmd) Synopsis() string { return "record a raw product purchase from a farmer" }
func (*purchaseCmd) Usage() string {
	return `whs purchase -farmer <id> -type <type> -kg <quantity> -price <price-per-kg> [-d <date>]

  Records a purchase from a farmer. The quantity is in kilograms and is
  credited to the unprocessed pool of the product type in grams.

Usage Examples:
# Buy 25.5 kg of fresh hazelnuts from farmer 3 at 4.20 per kg.
$ whs purchase -farmer 3 -type fresh -kg 25.5 -price 4.20
`
}

func (c *purchaseCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.farmer, "farmer", -1, "Id of the supplying farmer")
	f.StringVar(&c.ptype, "type", "", "Product type (fresh, frozen, organic)")
	f.Float64Var(&c.kg, "kg", 0, "Quantity bought, in kilograms")
	f.Float64Var(&c.price, "price", 0, "Price per kilogram")
	f.StringVar(&c.date, "d", warehouse.Today().String(), "Purchase date (YYYY-MM-DD)")
}

func (c *purchaseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.farmer < 0 || c.ptype == "" {
		fmt.Fprintln(os.Stderr, "Error: -farmer and -type flags are required.")
		return subcommands.ExitUsageError
	}
	productType, err := warehouse.ParseProductType(c.ptype)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	on, err := warehouse.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	w, err := DecodeWarehouse()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	id, err := w.RecordPurchase(c.farmer, productType, warehouse.Q(c.kg), warehouse.M(c.price), on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error recording purchase: %v\n", err)
		return subcommands.ExitFailure
	}

	if status := EncodeWarehouse(w); status != subcommands.ExitSuccess {
		return status
	}
	purchase, _ := w.Purchase(id)
	fmt.Printf("Successfully recorded purchase %d (%s from %s, total %s)\n",
		id, purchase.Quantity, w.FarmerName(purchase.FarmerID), purchase.TotalCost())
	return subcommands.ExitSuccess
}

type updatePurchaseCmd struct {
	id     int
	farmer int
	ptype  string
	kg     float64
	price  float64
	date   string
}

func (*updatePurchaseCmd) Name() string     { return "update-purchase" }
func (*updatePurchaseCmd) Synopsis() string { return "correct a recorded purchase" }
func (*updatePurchaseCmd) Usage() string {
	return `whs update-purchase -id <id> [-farmer <id>] [-type <type>] [-kg <quantity>] [-price <price-per-kg>] [-d <date>]

  Corrects a purchase. Omitted flags keep the current value. The raw pool is
  reconciled: the original mass is debited before the new mass is credited,
  and the update is rejected when the original mass was already processed.
`
}

func (c *updatePurchaseCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", -1, "Id of the purchase to update")
	f.IntVar(&c.farmer, "farmer", 0, "New supplying farmer id")
	f.StringVar(&c.ptype, "type", "", "New product type (fresh, frozen, organic)")
	f.Float64Var(&c.kg, "kg", 0, "New quantity, in kilograms")
	f.Float64Var(&c.price, "price", 0, "New price per kilogram")
	f.StringVar(&c.date, "d", "", "New purchase date (YYYY-MM-DD)")
}

func (c *updatePurchaseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id < 0 {
		fmt.Fprintln(os.Stderr, "Error: -id flag is required.")
		return subcommands.ExitUsageError
	}

	update := warehouse.PurchaseUpdate{FarmerID: c.farmer}
	if c.ptype != "" {
		productType, err := warehouse.ParseProductType(c.ptype)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		update.ProductType = productType
	}
	if c.kg != 0 {
		update.Kg = warehouse.Q(c.kg)
	}
	if c.price != 0 {
		update.PricePerKg = warehouse.M(c.price)
	}
	if c.date != "" {
		on, err := warehouse.ParseDate(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
		update.Date = on
	}

	w, err := DecodeWarehouse()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := w.UpdatePurchase(c.id, update); err != nil {
		fmt.Fprintf(os.Stderr, "Error updating purchase %d: %v\n", c.id, err)
		return subcommands.ExitFailure
	}

	if status := EncodeWarehouse(w); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Successfully updated purchase %d\n", c.id)
	return subcommands.ExitSuccess
}

type deletePurchaseCmd struct {
	id int
}

func (*deletePurchaseCmd) Name() string     { return "delete-purchase" }
func (*deletePurchaseCmd) Synopsis() string { return "delete a purchase and debit its mass" }
func (*deletePurchaseCmd) Usage() string {
	return `whs delete-purchase -id <id>

  Deletes a purchase and debits its mass from the raw pool. Rejected when the
  mass was already consumed by processing.
`
}

func (c *deletePurchaseCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", -1, "Id of the purchase to delete")
}

func (c *deletePurchaseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id < 0 {
		fmt.Fprintln(os.Stderr, "Error: -id flag is required.")
		return subcommands.ExitUsageError
	}

	w, err := DecodeWarehouse()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := w.DeletePurchase(c.id); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting purchase %d: %v\n", c.id, err)
		return subcommands.ExitFailure
	}

	if status := EncodeWarehouse(w); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Successfully deleted purchase %d\n", c.id)
	return subcommands.ExitSuccess
}
