package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"abacus/internal/theme"
)

// themeCmd shows or changes the stored theme
var themeCmd = &cobra.Command{
	Use:   "theme [light|dark|toggle|system]",
	Short: "Show or set the keypad theme",
	Long: `Without arguments prints the active theme.

  light, dark   store the preference
  toggle        store the opposite of the active theme
  system        forget the stored preference and follow the config default
                or the terminal background`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"light", "dark", "toggle", "system"},
	RunE:      runTheme,
}

func runTheme(cmd *cobra.Command, args []string) error {
	rt, err := openRuntime()
	if err != nil {
		return err
	}
	defer rt.Close()

	if len(args) == 1 {
		switch arg := args[0]; arg {
		case "toggle":
			rt.themes.Toggle()
		case "system":
			rt.themes.Reset()
		default:
			p, ok := theme.Parse(arg)
			if !ok {
				return fmt.Errorf("unknown theme %q (valid: light, dark, toggle, system)", arg)
			}
			rt.themes.Set(p)
		}
	}

	current := rt.themes.Current()
	_, stored := rt.themes.Stored()
	logger.Debug("theme resolved", zap.String("theme", current.String()), zap.Bool("stored", stored))
	fmt.Println(current)
	return nil
}
