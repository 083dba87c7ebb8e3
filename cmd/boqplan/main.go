package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/omarzaki/boqplan/internal/catalog"
	"github.com/omarzaki/boqplan/internal/cli"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		var usage *cli.UsageError
		if errors.As(err, &usage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run() error {
	app := &cli.App{
		Catalogue: catalog.Embedded(),
		Out:       os.Stdout,
	}

	// Interactive picker only when stdin is a real terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// BOQPLAN_CATALOG points at a YAML catalogue without needing the flag.
	if path := os.Getenv("BOQPLAN_CATALOG"); path != "" {
		cat, err := catalog.LoadFile(path)
		if err != nil {
			return err
		}
		app.Catalogue = cat
	}

	return cli.NewRootCmd(app).Execute()
}
