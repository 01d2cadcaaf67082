package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type addFarmerCmd struct {
	name  string
	phone string
	email string
	city  string
}

func (*addFarmerCmd) Name() string     { return "add-farmer" }
func (*addFarmerCmd) Synopsis() string { return "register a farmer supplying the warehouse" }
func (*addFarmerCmd) Usage() string {
	return `whs add-farmer -name <name> -phone <phone> -email <email> -city <city>

  Registers a farmer. The name must be at least two letters per word with no
  digits, the phone exactly 11 digits, and the email a valid address.
`
}

func (c *addFarmerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Full name of the farmer (e.g., 'Ayşe Kaya')")
	f.StringVar(&c.phone, "phone", "", "Phone number, exactly 11 digits")
	f.StringVar(&c.email, "email", "", "Email address")
	f.StringVar(&c.city, "city", "", "City the farmer operates from")
}

func (c *addFarmerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	w, err := DecodeWarehouse()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	id, err := w.AddFarmer(c.name, c.phone, c.email, c.city)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error adding farmer: %v\n", err)
		return subcommands.ExitFailure
	}

	if status := EncodeWarehouse(w); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Successfully added farmer %q with id %d\n", c.name, id)
	return subcommands.ExitSuccess
}

type updateFarmerCmd struct {
	id    int
	name  string
	phone string
	email string
	city  string
}

func (*updateFarmerCmd) Name() string     { return "update-farmer" }
func (*updateFarmerCmd) Synopsis() string { return "update an existing farmer's contact details" }
func (*updateFarmerCmd) Usage() string {
	return `whs update-farmer -id <id> [-name <name>] [-phone <phone>] [-email <email>] [-city <city>]

  Updates a farmer. Omitted flags keep the current value.
`
}

func (c *updateFarmerCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", -1, "Id of the farmer to update")
	f.StringVar(&c.name, "name", "", "New full name")
	f.StringVar(&c.phone, "phone", "", "New phone number, exactly 11 digits")
	f.StringVar(&c.email, "email", "", "New email address")
	f.StringVar(&c.city, "city", "", "New city")
}

func (c *updateFarmerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id < 0 {
		fmt.Fprintln(os.Stderr, "Error: -id flag is required.")
		return subcommands.ExitUsageError
	}

	w, err := DecodeWarehouse()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := w.UpdateFarmer(c.id, c.name, c.phone, c.email, c.city); err != nil {
		fmt.Fprintf(os.Stderr, "Error updating farmer %d: %v\n", c.id, err)
		return subcommands.ExitFailure
	}

	if status := EncodeWarehouse(w); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Successfully updated farmer %d\n", c.id)
	return subcommands.ExitSuccess
}

type deleteFarmerCmd struct {
	id int
}

func (*deleteFarmerCmd) Name() string     { return "delete-farmer" }
func (*deleteFarmerCmd) Synopsis() string { return "delete a farmer with no recorded purchases" }
func (*deleteFarmerCmd) Usage() string {
	return `whs delete-farmer -id <id>

  Deletes a farmer. A farmer referenced by purchases cannot be deleted,
  the purchase log keeps its history intact.
`
}

func (c *deleteFarmerCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", -1, "Id of the farmer to delete")
}

func (c *deleteFarmerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id < 0 {
		fmt.Fprintln(os.Stderr, "Error: -id flag is required.")
		return subcommands.ExitUsageError
	}

	w, err := DecodeWarehouse()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := w.DeleteFarmer(c.id); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting farmer %d: %v\n", c.id, err)
		return subcommands.ExitFailure
	}

	if status := EncodeWarehouse(w); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Successfully deleted farmer %d\n", c.id)
	return subcommands.ExitSuccess
}
