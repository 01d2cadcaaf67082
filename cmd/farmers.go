package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/seyda/warehouse/renderer"
)

type farmersCmd struct{}

func (*farmersCmd) Name() string     { return "farmers" }
func (*farmersCmd) Synopsis() string { return "list the registered farmers" }
func (*farmersCmd) Usage() string {
	return `whs farmers

  Lists all registered farmers with their contact details.
`
}

func (c *farmersCmd) SetFlags(f *flag.FlagSet) {}

func (c *farmersCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	w, err := DecodeWarehouse()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.FarmersMarkdown(w.Farmers()))
	return subcommands.ExitSuccess
}
