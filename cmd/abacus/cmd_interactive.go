package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"abacus/cmd/abacus/ui"
	"abacus/internal/config"
	"abacus/internal/logging"
)

// runInteractive starts the keypad TUI with live config reload.
func runInteractive(cmd *cobra.Command, args []string) error {
	rt, err := openRuntime()
	if err != nil {
		return err
	}
	defer rt.Close()

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var updates <-chan *config.Config
	if w, err := config.NewWatcher(rt.configPath); err != nil {
		logging.ConfigWarn("live reload disabled: %v", err)
	} else if err := w.Start(ctx); err != nil {
		logging.ConfigWarn("live reload disabled: %v", err)
		w.Stop()
	} else {
		defer w.Stop()
		updates = w.Updates()
	}

	model := ui.NewModel(ui.Deps{
		Calculator: rt.newCalculator(""),
		Memory:     rt.memory,
		Themes:     rt.themes,
		History:    rt.store,
		Config:     rt.cfg,
		Updates:    updates,
	})
	p := tea.NewProgram(model, tea.WithAltScreen())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		_, err := p.Run()
		return err
	})
	g.Go(func() error {
		<-gctx.Done()
		p.Quit()
		return nil
	})

	logging.UI("keypad started")
	err = g.Wait()
	logging.UI("keypad stopped")
	return err
}
