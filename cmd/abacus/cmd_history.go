package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var historyLimit int

// historyCmd lists recent evaluations
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent evaluations, newest first",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the evaluation history",
	Args:  cobra.NoArgs,
	RunE:  runHistoryClear,
}

func runHistory(cmd *cobra.Command, args []string) error {
	rt, err := openRuntime()
	if err != nil {
		return err
	}
	defer rt.Close()

	limit := historyLimit
	if limit < 0 {
		limit = rt.cfg.Display.HistoryLimit
	}

	entries, err := rt.store.RecentHistory(limit)
	if err != nil {
		return fmt.Errorf("failed to read history: %w", err)
	}
	if len(entries) == 0 {
		fmt.Println("No evaluations yet.")
		return nil
	}
	for _, e := range entries {
		fmt.Printf("%s  %s = %s\n", e.CreatedAt.Format("2006-01-02 15:04:05"), e.Expression, e.Result)
	}
	return nil
}

func runHistoryClear(cmd *cobra.Command, args []string) error {
	rt, err := openRuntime()
	if err != nil {
		return err
	}
	defer rt.Close()

	if err := rt.store.ClearHistory(); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	fmt.Println("History cleared.")
	return nil
}
