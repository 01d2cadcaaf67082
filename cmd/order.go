package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/seyda/warehouse"
)

type orderCmd struct {
	customer string
	contact  string
	shipping string
	category string
	quantity int
	date     string
}

func (*orderCmd) Name() string     { return "order" }
func (*orderCmd) Synopsis() string { return "create a customer order and reserve stock" }
func (*orderCmd) Usage() string {
	return `whs order -customer <name> -contact <phone> -shipping <address> -category <category> -n <quantity> [-d <date>]

  Creates a customer order. The order is priced from the current price table,
  taxed at the warehouse tax rate, and the packaged stock is reserved
  immediately. Fails when the category holds fewer packages than ordered.

Usage Examples:
# Order 12 medium packs for a customer.
$ whs order -customer "Ali Demir" -contact 05321234567 -shipping "Çark Cd. 12, Sakarya" -category medium -n 12
`
}

func (c *orderCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.customer, "customer", "", "Customer full name")
	f.StringVar(&c.contact, "contact", "", "Customer contact phone, exactly 11 digits")
	f.StringVar(&c.shipping, "shipping", "", "Shipping address, at least 10 characters")
	f.StringVar(&c.category, "category", "", "Package category to order")
	f.IntVar(&c.quantity, "n", 0, "Number of packages ordered")
	f.StringVar(&c.date, "d", warehouse.Today().String(), "Order date (YYYY-MM-DD)")
}

func (c *orderCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.category == "" {
		fmt.Fprintln(os.Stderr, "Error: -category flag is required.")
		return subcommands.ExitUsageError
	}
	category, err := warehouse.ParseCategory(c.category)
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

	id, err := w.CreateOrder(c.customer, c.contact, c.shipping, category, c.quantity, on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating order: %v\n", err)
		return subcommands.ExitFailure
	}

	if status := EncodeWarehouse(w); status != subcommands.ExitSuccess {
		return status
	}
	order, _ := w.Order(id)
	fmt.Printf("Successfully created order %d (%d x %s, total %s incl. %s tax)\n",
		id, order.Quantity, order.Category, order.TotalPrice, order.Tax)
	return subcommands.ExitSuccess
}

type updateOrderCmd struct {
	id       int
	customer string
	contact  string
	shipping string
	category string
	quantity int
	date     string
}

func (*updateOrderCmd) Name() string     { return "update-order" }
func (*updateOrderCmd) Synopsis() string { return "modify an order, re-reserving stock" }
func (*updateOrderCmd) Usage() string {
	return `whs update-order -id <id> [-customer <name>] [-contact <contact>] [-shipping <address>] [-category <category>] [-n <quantity>] [-d <date>]

  Modifies an order. Omitted flags keep the current value. When the category
  or quantity changes, the old reservation is returned before the new one is
  taken; on insufficient stock the original reservation is restored and the
  order is left unchanged. The order is re-priced at the current price table.
`
}

func (c *updateOrderCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", -1, "Id of the order to update")
	f.StringVar(&c.customer, "customer", "", "New customer full name")
	f.StringVar(&c.contact, "contact", "", "New customer contact")
	f.StringVar(&c.shipping, "shipping", "", "New shipping address")
	f.StringVar(&c.category, "category", "", "New package category")
	f.IntVar(&c.quantity, "n", 0, "New number of packages")
	f.StringVar(&c.date, "d", "", "New order date (YYYY-MM-DD)")
}

func (c *updateOrderCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id < 0 {
		fmt.Fprintln(os.Stderr, "Error: -id flag is required.")
		return subcommands.ExitUsageError
	}

	update := warehouse.OrderUpdate{
		CustomerName: c.customer,
		Contact:      c.contact,
		ShippingInfo: c.shipping,
		Quantity:     c.quantity,
	}
	if c.category != "" {
		category, err := warehouse.ParseCategory(c.category)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		update.Category = category
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

	if err := w.UpdateOrder(c.id, update); err != nil {
		fmt.Fprintf(os.Stderr, "Error updating order %d: %v\n", c.id, err)
		return subcommands.ExitFailure
	}

	if status := EncodeWarehouse(w); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Successfully updated order %d\n", c.id)
	return subcommands.ExitSuccess
}

type orderStatusCmd struct {
	id     int
	status string
}

func (*orderStatusCmd) Name() string     { return "order-status" }
func (*orderStatusCmd) Synopsis() string { return "advance an order through its lifecycle" }
func (*orderStatusCmd) Usage() string {
	return `whs order-status -id <id> -status <status>

  Sets the status of an order (pending, processed, shipped, delivered).
`
}

func (c *orderStatusCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", -1, "Id of the order")
	f.StringVar(&c.status, "status", "", "New status (pending, processed, shipped, delivered)")
}

func (c *orderStatusCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id < 0 || c.status == "" {
		fmt.Fprintln(os.Stderr, "Error: -id and -status flags are required.")
		return subcommands.ExitUsageError
	}
	status, err := warehouse.ParseStatus(c.status)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	w, err := DecodeWarehouse()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := w.UpdateOrderStatus(c.id, status); err != nil {
		fmt.Fprintf(os.Stderr, "Error updating order %d: %v\n", c.id, err)
		return subcommands.ExitFailure
	}

	if exit := EncodeWarehouse(w); exit != subcommands.ExitSuccess {
		return exit
	}
	fmt.Printf("Successfully set order %d to %s\n", c.id, status)
	return subcommands.ExitSuccess
}

type deleteOrderCmd struct {
	id int
}

func (*deleteOrderCmd) Name() string     { return "delete-order" }
func (*deleteOrderCmd) Synopsis() string { return "delete an order and return its stock" }
func (*deleteOrderCmd) Usage() string {
	return `whs delete-order -id <id>

  Deletes an order and returns its reserved stock to the ledger, unless the
  order was already delivered.
`
}

func (c *deleteOrderCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", -1, "Id of the order to delete")
}

func (c *deleteOrderCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id < 0 {
		fmt.Fprintln(os.Stderr, "Error: -id flag is required.")
		return subcommands.ExitUsageError
	}

	w, err := DecodeWarehouse()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := w.DeleteOrder(c.id); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting order %d: %v\n", c.id, err)
		return subcommands.ExitFailure
	}

	if status := EncodeWarehouse(w); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Successfully deleted order %d\n", c.id)
	return subcommands.ExitSuccess
}
