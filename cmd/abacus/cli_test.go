package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"abacus/internal/config"
)

func run(t *testing.T, fn func(*cobra.Command, []string) error, args ...string) (string, error) {
	t.Helper()
	var err error
	out := captureOutput(t, func() {
		err = fn(&cobra.Command{}, args)
	})
	return strings.TrimSpace(out), err
}

func TestInitCmd(t *testing.T) {
	ws := setupWorkspace(t)

	out, err := run(t, runInit)
	require.NoError(t, err)
	assert.Contains(t, out, "Created")

	path := filepath.Join(ws, ".abacus", "config.yaml")
	_, err = os.Stat(path)
	require.NoError(t, err, "config.yaml was not created")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)

	// Second run is a no-op
	out, err = run(t, runInit)
	require.NoError(t, err)
	assert.Contains(t, out, "Already initialized")
}

func TestEvalCmd(t *testing.T) {
	setupWorkspace(t)

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"2+2"}, "4"},
		{[]string{"10", "/", "4"}, "2.5"},
		{[]string{"50%"}, "0.5"},
		{[]string{"(1+2)*3^2"}, "27"},
		{[]string{"6×7"}, "42"},
		{[]string{"0.1+0.2"}, "0.3"},
	}
	for _, tt := range tests {
		out, err := run(t, runEval, tt.args...)
		require.NoError(t, err, tt.args)
		assert.Equal(t, tt.want, out, tt.args)
	}
}

func TestEvalCmdError(t *testing.T) {
	setupWorkspace(t)

	for _, expr := range []string{"2+a", "2+", "1/0", "(()"} {
		out, err := run(t, runEval, expr)
		assert.Error(t, err, expr)
		assert.Equal(t, "Error", out, expr)
	}
}

func TestPressCmd(t *testing.T) {
	setupWorkspace(t)

	out, err := run(t, runPress, "1", "2", "+", "3", "equals")
	require.NoError(t, err)
	assert.Equal(t, "15", out)

	out, err = run(t, runPress, "0", "reciprocal")
	require.NoError(t, err)
	assert.Equal(t, "NaN", out)

	out, err = run(t, runPress, "9", "sqrt", "square", "negate")
	require.NoError(t, err)
	assert.Equal(t, "-9", out)

	out, err = run(t, runPress, "4", "5", "delete", "clear")
	require.NoError(t, err)
	assert.Equal(t, "0", out)
}

func TestMemCmdsPersistAcrossRuns(t *testing.T) {
	setupWorkspace(t)

	out, err := run(t, runMemRecall)
	require.NoError(t, err)
	assert.Equal(t, "0", out)

	out, err = run(t, runMemAdd, "3")
	require.NoError(t, err)
	assert.Equal(t, "3", out)

	out, err = run(t, runMemAdd, "1.5*2")
	require.NoError(t, err)
	assert.Equal(t, "6", out)

	out, err = run(t, runMemSub, "1")
	require.NoError(t, err)
	assert.Equal(t, "5", out)

	out, err = run(t, runPress, "mem-recall")
	require.NoError(t, err)
	assert.Equal(t, "5", out)

	_, err = run(t, runMemClear)
	require.NoError(t, err)

	out, err = run(t, runMemRecall)
	require.NoError(t, err)
	assert.Equal(t, "0", out)
}

func TestMemAddInvalidExpression(t *testing.T) {
	setupWorkspace(t)

	_, err := run(t, runMemAdd, "2+")
	assert.Error(t, err)

	out, err := run(t, runMemRecall)
	require.NoError(t, err)
	assert.Equal(t, "0", out, "register untouched")
}

func TestThemeCmd(t *testing.T) {
	setupWorkspace(t)

	out, err := run(t, runTheme)
	require.NoError(t, err)
	assert.Equal(t, "light", out, "follows detection when nothing is stored")

	out, err = run(t, runTheme, "dark")
	require.NoError(t, err)
	assert.Equal(t, "dark", out)

	out, err = run(t, runTheme)
	require.NoError(t, err)
	assert.Equal(t, "dark", out, "stored preference persists")

	out, err = run(t, runTheme, "toggle")
	require.NoError(t, err)
	assert.Equal(t, "light", out)

	t.Setenv("ABACUS_DARK_MODE", "true")
	out, err = run(t, runTheme, "system")
	require.NoError(t, err)
	assert.Equal(t, "dark", out)

	_, err = run(t, runTheme, "sepia")
	assert.Error(t, err)
}

func TestThemeCmdConfigDefault(t *testing.T) {
	setupWorkspace(t)
	t.Setenv("ABACUS_THEME", "dark")

	out, err := run(t, runTheme)
	require.NoError(t, err)
	assert.Equal(t, "dark", out)
}

func TestHistoryCmd(t *testing.T) {
	setupWorkspace(t)

	out, err := run(t, runHistory)
	require.NoError(t, err)
	assert.Contains(t, out, "No evaluations yet")

	for _, expr := range []string{"1+1", "2+2", "3+3"} {
		_, err := run(t, runEval, expr)
		require.NoError(t, err)
	}
	_, _ = run(t, runEval, "2+")

	out, err = run(t, runHistory)
	require.NoError(t, err)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasSuffix(lines[0], "3+3 = 6"), lines[0])
	assert.True(t, strings.HasSuffix(lines[2], "1+1 = 2"), lines[2])

	historyLimit = 1
	out, err = run(t, runHistory)
	require.NoError(t, err)
	assert.Len(t, strings.Split(out, "\n"), 1)

	_, err = run(t, runHistoryClear)
	require.NoError(t, err)

	historyLimit = -1
	out, err = run(t, runHistory)
	require.NoError(t, err)
	assert.Contains(t, out, "No evaluations yet")
}

func TestMemoryDriverKeepsNothing(t *testing.T) {
	setupWorkspace(t)
	t.Setenv("ABACUS_STORAGE", "memory")

	_, err := run(t, runMemAdd, "7")
	require.NoError(t, err)

	out, err := run(t, runMemRecall)
	require.NoError(t, err)
	assert.Equal(t, "0", out, "in-memory store does not outlive the command")
}

func TestInvalidConfigRejected(t *testing.T) {
	ws := setupWorkspace(t)

	cfg := config.DefaultConfig()
	cfg.Display.Precision = 40
	require.NoError(t, cfg.Save(filepath.Join(ws, ".abacus", "config.yaml")))

	_, err := run(t, runEval, "1+1")
	assert.Error(t, err)
}

func TestExplicitConfigFlag(t *testing.T) {
	ws := setupWorkspace(t)

	path := filepath.Join(ws, "custom.yaml")
	cfg := config.DefaultConfig()
	cfg.Display.Precision = 3
	require.NoError(t, cfg.Save(path))
	configPath = path

	out, err := run(t, runEval, "2/3")
	require.NoError(t, err)
	assert.Equal(t, "0.667", out)
}
