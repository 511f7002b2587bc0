package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/astanczak/pomo/internal/app"
	"github.com/astanczak/pomo/internal/audio"
	"github.com/astanczak/pomo/internal/config"
	"github.com/astanczak/pomo/internal/db"
	"github.com/astanczak/pomo/internal/notify"
	"github.com/astanczak/pomo/internal/repository"
	"github.com/astanczak/pomo/internal/selfcheck"
	"github.com/astanczak/pomo/internal/stats"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// The stats record is trust-sensitive: broken arithmetic must never run.
	if err := selfcheck.Run(); err != nil {
		return err
	}

	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return fmt.Errorf("pomo needs an interactive terminal")
	}

	dir, err := config.Dir()
	if err != nil {
		return err
	}
	cfg, err := config.Load(dir)
	if err != nil {
		return err
	}

	store := stats.NewStore(filepath.Join(dir, "stats.json"))

	// The interval ledger is best effort: without a database the loop
	// still runs, it just keeps no history.
	var history repository.IntervalRepo
	if database, err := db.Open(filepath.Join(dir, "pomo.db")); err == nil {
		defer database.Close()
		history = repository.NewSQLiteIntervalRepo(database)
	}

	var notifier notify.Notifier = notify.Nop{}
	if cfg.Notifications {
		notifier = notify.Desktop{}
	}

	var player audio.Looper = audio.NopLooper{}
	if cfg.Sound {
		if p, err := audio.NewPlayer(cfg.SampleRate); err == nil {
			player = p
		}
	}

	application := app.New(cfg, store, history, notifier, player)

	root := &cobra.Command{
		Use:           "pomo",
		Short:         "Pomodoro timer with brown noise and usage statistics",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return application.Run()
		},
	}
	return root.Execute()
}
