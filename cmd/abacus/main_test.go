package main

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"abacus/internal/logging"
)

// setupWorkspace points the global flags at a fresh temp workspace.
func setupWorkspace(t *testing.T) string {
	t.Helper()
	logger = zap.NewNop()

	t.Setenv("ABACUS_DB", "")
	t.Setenv("ABACUS_STORAGE", "")
	t.Setenv("ABACUS_THEME", "")
	t.Setenv("ABACUS_DARK_MODE", "false")

	ws := t.TempDir()
	workspace = ws
	configPath = ""
	historyLimit = -1
	t.Cleanup(func() {
		workspace = ""
		configPath = ""
		historyLimit = -1
		logging.CloseAll()
	})
	return ws
}

func captureOutput(t *testing.T, fn func()) string {
	t.Helper()

	origOut := os.Stdout
	origErr := os.Stderr
	rOut, wOut, _ := os.Pipe()
	rErr, wErr, _ := os.Pipe()
	os.Stdout = wOut
	os.Stderr = wErr

	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, rOut)
		_, _ = io.Copy(&buf, rErr)
		done <- buf.String()
	}()

	fn()

	_ = wOut.Close()
	_ = wErr.Close()
	os.Stdout = origOut
	os.Stderr = origErr
	return <-done
}

func TestRootCommandTree(t *testing.T) {
	want := map[string]bool{"eval": false, "press": false, "mem": false, "theme": false, "history": false, "init": false}
	for _, c := range rootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %s not registered", name)
		}
	}

	for _, name := range []string{"verbose", "workspace", "config"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("missing global flag --%s", name)
		}
	}
}

func TestPersistentPreRunSkipsRootOnly(t *testing.T) {
	orig := logger
	t.Cleanup(func() { logger = orig })

	logger = nil
	if err := rootCmd.PersistentPreRunE(rootCmd, nil); err != nil {
		t.Fatalf("root pre-run failed: %v", err)
	}
	if logger != nil {
		t.Fatal("root command should not build a console logger")
	}

	for _, cmd := range []*cobra.Command{evalCmd, memAddCmd, historyClearCmd} {
		logger = nil
		if err := rootCmd.PersistentPreRunE(cmd, nil); err != nil {
			t.Fatalf("%s pre-run failed: %v", cmd.CommandPath(), err)
		}
		if logger == nil {
			t.Errorf("%s should get a console logger", cmd.CommandPath())
		}
	}
}
