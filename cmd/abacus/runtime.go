package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"abacus/internal/calc"
	"abacus/internal/calculator"
	"abacus/internal/config"
	"abacus/internal/logging"
	"abacus/internal/memory"
	"abacus/internal/store"
	"abacus/internal/theme"
)

// runtime is everything a command needs, opened from the workspace.
type runtime struct {
	cfg        *config.Config
	configPath string
	stateDir   string

	store  store.Store
	memory *memory.Register
	themes *theme.Manager
}

func resolveWorkspace() string {
	if workspace != "" {
		return workspace
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return cwd
}

func resolveConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return config.DefaultPath(resolveWorkspace())
}

// openRuntime loads the config, starts file logging and opens the store.
func openRuntime() (*runtime, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	ws := resolveWorkspace()
	stateDir := config.StateDir(ws)
	cfgPath := resolveConfigPath()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgPath, err)
	}

	if err := logging.Initialize(stateDir, cfg.Logging.Options()); err != nil {
		logger.Warn("file logging disabled", zap.Error(err))
	}
	logging.Boot("workspace %s, config %s", ws, cfgPath)

	dbPath := cfg.DatabaseFile(stateDir)
	st, err := store.Open(cfg.Storage.Driver, dbPath)
	if err != nil {
		logging.CloseAll()
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	logger.Debug("store opened", zap.String("driver", cfg.Storage.Driver), zap.String("path", dbPath))

	var themeOpts []theme.Option
	if p, ok := cfg.ThemeDefault(); ok {
		themeOpts = append(themeOpts, theme.WithDefault(p))
	}

	return &runtime{
		cfg:        cfg,
		configPath: cfgPath,
		stateDir:   stateDir,
		store:      st,
		memory:     memory.NewRegister(st),
		themes:     theme.NewManager(st, themeOpts...),
	}, nil
}

// newCalculator returns a Calculator wired to the runtime's memory and history.
func (r *runtime) newCalculator(start calc.Buffer) *calculator.Calculator {
	return calculator.New(
		calculator.WithEvaluator(r.cfg.Evaluator()),
		calculator.WithMemory(r.memory),
		calculator.WithHistory(r.store),
		calculator.WithBuffer(start),
	)
}

func (r *runtime) format(v float64) string {
	return r.cfg.Evaluator().Format(v)
}

func (r *runtime) Close() error {
	err := r.store.Close()
	logging.CloseAll()
	return err
}
