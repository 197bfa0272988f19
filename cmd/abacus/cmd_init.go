package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"abacus/internal/config"
)

// initCmd creates the workspace state directory
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .abacus/ with a default config.yaml",
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	path := resolveConfigPath()
	if _, err := os.Stat(path); err == nil {
		fmt.Printf("Already initialized: %s\n", path)
		fmt.Println("To reinitialize, delete the file first.")
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to check %s: %w", path, err)
	}

	if err := config.DefaultConfig().Save(path); err != nil {
		return err
	}
	logger.Info("initialized workspace", zap.String("config", path))
	fmt.Printf("Created %s\n", path)
	return nil
}
