// Package cmd implements the CLI application to manage a warehouse.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/google/subcommands"
	"github.com/seyda/warehouse"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global vaariables.

var warehouseFile = flag.String("warehouse-file", defaultWarehouseFile(), "Path to the warehouse snapshot file (JSON format)")
var Verbose = flag.Bool("verbose", envVerbose(), "Log verbose processing information")

func defaultWarehouseFile() string {
	if f := os.Getenv(EnvWarehouseFile); f != "" {
		return f
	}
	return "warehouse.json"
}

func envVerbose() bool { return os.Getenv(EnvVerbose) == "true" }

// DecodeWarehouse decodes the warehouse from the app snapshot file.
func DecodeWarehouse() (*warehouse.Warehouse, error) {
	f, err := os.Open(*warehouseFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Println("warning, warehouse file does not exist, starting with an empty warehouse instead")
			return warehouse.New(), nil
		}
		return nil, fmt.Errorf("could not open warehouse file %q: %w", *warehouseFile, err)
	}
	defer f.Close()

	w, err := warehouse.DecodeSnapshot(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode warehouse file %q: %w", *warehouseFile, err)
	}
	return w, nil
}

// EncodeWarehouse writes the warehouse back into the app snapshot file.
func EncodeWarehouse(w *warehouse.Warehouse) subcommands.ExitStatus {
	f, err := os.Create(*warehouseFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening warehouse file %q: %v\n", *warehouseFile, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := warehouse.EncodeSnapshot(f, w); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to warehouse file %q: %v\n", *warehouseFile, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
