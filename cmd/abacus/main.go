package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose    bool
	workspace  string
	configPath string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "abacus",
	Short: "abacus - keypad calculator for the terminal",
	Long: `abacus evaluates arithmetic typed on a keypad: + - * / ^ %, parentheses,
square root, square, reciprocal and negate, with a persistent memory register.

State (memory register, theme, evaluation history) lives in .abacus/ inside the
workspace.

Run without arguments to start the interactive keypad.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// The keypad owns the terminal; no console logger for it.
		if !cmd.HasParent() {
			return nil
		}

		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	Args: cobra.NoArgs,
	RunE: runInteractive,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&workspace, "workspace", "w", "", "Workspace directory (default: current)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: <workspace>/.abacus/config.yaml)")

	memCmd.AddCommand(memAddCmd)
	memCmd.AddCommand(memSubCmd)
	memCmd.AddCommand(memRecallCmd)
	memCmd.AddCommand(memClearCmd)

	historyCmd.Flags().IntVar(&historyLimit, "limit", -1, "Number of entries to show (default: display.history_limit, 0 = all)")
	historyCmd.AddCommand(historyClearCmd)

	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(pressCmd)
	rootCmd.AddCommand(memCmd)
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(initCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
