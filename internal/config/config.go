package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"abacus/internal/calc"
	"abacus/internal/store"
	"abacus/internal/theme"
)

const (
	// StateDirName is the per-workspace state directory.
	StateDirName = ".abacus"
	// ConfigFileName is the config file inside StateDirName.
	ConfigFileName = "config.yaml"
	// ThemeSystem defers to terminal background detection.
	ThemeSystem = "system"
)

// Config holds all abacus configuration.
type Config struct {
	// Storage backend for the memory register, theme and history
	Storage StorageConfig `yaml:"storage"`

	// Theme fallback when nothing is stored
	Theme ThemeConfig `yaml:"theme"`

	// Result formatting and history
	Display DisplayConfig `yaml:"display"`

	// Interactive keypad settings
	UI UIConfig `yaml:"ui"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// StorageConfig selects the store driver.
type StorageConfig struct {
	Driver       string `yaml:"driver"`        // sqlite, memory
	DatabasePath string `yaml:"database_path"` // relative paths resolve inside .abacus/
}

// ThemeConfig configures the theme fallback.
type ThemeConfig struct {
	Default string `yaml:"default"` // light, dark, system
}

// DisplayConfig configures result formatting.
type DisplayConfig struct {
	Precision    int `yaml:"precision"`     // significant digits, 1..17
	HistoryLimit int `yaml:"history_limit"` // entries shown by default, 0 = all
}

// UIConfig configures the TUI.
type UIConfig struct {
	FlashDuration string `yaml:"flash_duration"` // key-press highlight, e.g. "150ms"
	ShowHistory   bool   `yaml:"show_history"`   // open the history pane on start
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Driver:       store.DriverSQLite,
			DatabasePath: "abacus.db",
		},
		Theme: ThemeConfig{
			Default: ThemeSystem,
		},
		Display: DisplayConfig{
			Precision:    calc.DefaultPrecision,
			HistoryLimit: 20,
		},
		UI: UIConfig{
			FlashDuration: "150ms",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// StateDir returns the .abacus directory of a workspace.
func StateDir(workspace string) string {
	return filepath.Join(workspace, StateDirName)
}

// DefaultPath returns the config file path of a workspace.
func DefaultPath(workspace string) string {
	return filepath.Join(StateDir(workspace), ConfigFileName)
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides apply in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if path := os.Getenv("ABACUS_DB"); path != "" {
		c.Storage.DatabasePath = path
	}
	if driver := os.Getenv("ABACUS_STORAGE"); driver != "" {
		c.Storage.Driver = driver
	}
	if t := os.Getenv("ABACUS_THEME"); t != "" {
		c.Theme.Default = t
	}
}

// DatabaseFile resolves Storage.DatabasePath against the state directory.
func (c *Config) DatabaseFile(stateDir string) string {
	if filepath.IsAbs(c.Storage.DatabasePath) {
		return c.Storage.DatabasePath
	}
	return filepath.Join(stateDir, c.Storage.DatabasePath)
}

// GetFlashDuration returns the key flash duration.
func (c *Config) GetFlashDuration() time.Duration {
	d, err := time.ParseDuration(c.UI.FlashDuration)
	if err != nil {
		return 150 * time.Millisecond
	}
	return d
}

// ThemeDefault returns the configured fallback. ok is false for "system".
func (c *Config) ThemeDefault() (theme.Preference, bool) {
	return theme.Parse(c.Theme.Default)
}

// Evaluator returns an evaluator using the display precision.
func (c *Config) Evaluator() calc.Evaluator {
	return calc.NewEvaluator(c.Display.Precision)
}

// ValidDrivers lists the supported storage drivers.
var ValidDrivers = []string{store.DriverSQLite, store.DriverMemory}

// Validate validates the configuration.
func (c *Config) Validate() error {
	validDriver := false
	for _, d := range ValidDrivers {
		if c.Storage.Driver == d {
			validDriver = true
			break
		}
	}
	if !validDriver {
		return fmt.Errorf("invalid storage driver: %s (valid: %v)", c.Storage.Driver, ValidDrivers)
	}
	if c.Storage.Driver == store.DriverSQLite && c.Storage.DatabasePath == "" {
		return fmt.Errorf("storage.database_path is required for the sqlite driver")
	}

	if c.Theme.Default != "" && c.Theme.Default != ThemeSystem {
		if _, ok := theme.Parse(c.Theme.Default); !ok {
			return fmt.Errorf("invalid theme default: %s (valid: light, dark, system)", c.Theme.Default)
		}
	}

	if c.Display.Precision < 1 || c.Display.Precision > 17 {
		return fmt.Errorf("display.precision must be between 1 and 17, got %d", c.Display.Precision)
	}
	if c.Display.HistoryLimit < 0 {
		return fmt.Errorf("display.history_limit must not be negative, got %d", c.Display.HistoryLimit)
	}

	if c.UI.FlashDuration != "" {
		if _, err := time.ParseDuration(c.UI.FlashDuration); err != nil {
			return fmt.Errorf("invalid ui.flash_duration %q: %w", c.UI.FlashDuration, err)
		}
	}

	return c.Logging.Validate()
}
