// Command migrate converts legacy warehouse exports into snapshot files.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/seyda/warehouse"
)

func main() {
	// The migrate tool needs its own set of flags, independent of the main whs tool.
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)

	commander := subcommands.NewCommander(flag.CommandLine, "migrate")
	commander.Register(&legacyCmd{}, "")
	commander.Register(&checkCmd{}, "")
	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// --- legacyCmd ---

type legacyCmd struct {
	in  string
	out string
}

func (*legacyCmd) Name() string { return "legacy" }
func (*legacyCmd) Synopsis() string {
	return "converts a legacy browser-app export into a snapshot file"
}
func (*legacyCmd) Usage() string {
	return `migrate legacy -in <legacy_export.json> -out <warehouse.json>

Converts a legacy export (the browser application's saved state) into a whs
snapshot. The input and output files must differ to prevent accidental data loss.
`
}
func (c *legacyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.in, "in", "", "The path to the legacy export file.")
	f.StringVar(&c.out, "out", "", "The path where the new snapshot file will be written.")
}

func (c *legacyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.in == "" || c.out == "" {
		fmt.Fprintln(os.Stderr, "Error: -in and -out flags are required.")
		return subcommands.ExitUsageError
	}
	if c.in == c.out {
		fmt.Fprintln(os.Stderr, "Error: -in and -out must be different files.")
		return subcommands.ExitUsageError
	}

	in, err := os.Open(c.in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening legacy export %q: %v\n", c.in, err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	w, err := warehouse.ImportLegacy(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing legacy export %q: %v\n", c.in, err)
		return subcommands.ExitFailure
	}

	out, err := os.Create(c.out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating snapshot file %q: %v\n", c.out, err)
		return subcommands.ExitFailure
	}
	defer out.Close()

	if err := warehouse.EncodeSnapshot(out, w); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing snapshot file %q: %v\n", c.out, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully migrated %q into %q (%d farmers, %d purchases, %d orders)\n",
		c.in, c.out, len(w.Farmers()), len(w.Purchases()), len(w.Orders()))
	return subcommands.ExitSuccess
}

// --- checkCmd ---

type checkCmd struct {
	in string
}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "validates a snapshot file" }
func (*checkCmd) Usage() string {
	return `migrate check -in <warehouse.json>

Decodes and fully validates a snapshot file, reporting the first problem found.
`
}
func (c *checkCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.in, "in", "", "The path to the snapshot file to validate.")
}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.in == "" {
		fmt.Fprintln(os.Stderr, "Error: -in flag is required.")
		return subcommands.ExitUsageError
	}

	in, err := os.Open(c.in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening snapshot file %q: %v\n", c.in, err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	w, err := warehouse.DecodeSnapshot(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Snapshot %q is invalid: %v\n", c.in, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Snapshot %q is valid (%d farmers, %d purchases, %d orders)\n",
		c.in, len(w.Farmers()), len(w.Purchases()), len(w.Orders()))
	return subcommands.ExitSuccess
}
