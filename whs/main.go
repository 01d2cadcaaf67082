package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/seyda/warehouse/cmd"
)

func main() {
	// Shell completion, a no-op outside of a completion request.
	sub := make(map[string]*complete.Command, len(cmd.Commands))
	for _, name := range cmd.Names() {
		sub[name] = &complete.Command{}
	}
	completion := &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"warehouse-file": predict.Files("*.json"),
			"verbose":        predict.Nothing,
		},
	}
	completion.Complete("whs")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	if !*cmd.Verbose {
		log.SetOutput(io.Discard)
	}

	// An unknown subcommand may be an external whs-<subcommand> extension.
	if name := flag.Arg(0); name != "" && sub[name] == nil && name != "help" && name != "flags" {
		if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}

	os.Exit(int(commander.Execute(context.Background())))
}
