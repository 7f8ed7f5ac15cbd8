// platillos browses the bundled dish catalog.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"workshop-scheduler/internal/catalog"
	"workshop-scheduler/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var file string
	flagSet := pflag.NewFlagSet("platillos", pflag.ContinueOnError)
	flagSet.StringVar(&file, "file", "", "YAML dish list to use instead of the bundled one")
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}

	var (
		cat *catalog.Catalog
		err error
	)
	if file != "" {
		data, readErr := os.ReadFile(file)
		if readErr != nil {
			return readErr
		}
		cat, err = catalog.Parse(data)
	} else {
		cat, err = catalog.Load()
	}
	if err != nil {
		return fmt.Errorf("catalog: %w", err)
	}

	_, err = tea.NewProgram(tui.NewCatalog(cat.All()), tea.WithAltScreen()).Run()
	return err
}
