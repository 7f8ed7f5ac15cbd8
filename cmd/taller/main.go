// taller is the terminal appointment scheduler for the workshop. It
// keeps its appointments in a local SQLite file by default.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"workshop-scheduler/internal/config"
	"workshop-scheduler/internal/logging"
	"workshop-scheduler/internal/model"
	"workshop-scheduler/internal/store"
	"workshop-scheduler/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	var logOutput string
	flagSet := pflag.NewFlagSet("taller", pflag.ContinueOnError)
	flagSet.StringVar(&cfg.Driver, "driver", cfg.Driver, "storage driver: memory, sqlite or postgres")
	flagSet.StringVar(&cfg.SQLitePath, "db", cfg.SQLitePath, "SQLite database file")
	flagSet.StringVar(&cfg.DatabaseURL, "database-url", cfg.DatabaseURL, "Postgres connection URL")
	flagSet.StringVar(&logOutput, "log-output", "", "write log records to this file")
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}

	// the alternate screen owns stdout and stderr
	var logWriter io.Writer = io.Discard
	if logOutput != "" {
		f, err := os.OpenFile(logOutput, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logWriter = f
	}
	logger := logging.SetupWriter(logWriter, logging.LevelFromEnv())

	ctx := context.Background()
	kv, err := store.Open(ctx, cfg.Driver, cfg.DSN())
	if err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	defer kv.Close()

	st := store.New[model.Appointment](kv, cfg.StorageKey, store.WithLogger(logger))
	st.Load(ctx)

	loc := cfg.Location()
	app := tui.NewWorkshop(st, func() time.Time { return time.Now().In(loc) })
	defer app.Close()

	_, err = tea.NewProgram(app, tea.WithAltScreen()).Run()
	return err
}
