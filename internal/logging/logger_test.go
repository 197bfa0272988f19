package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func readLog(t *testing.T, dir string, cat Category) string {
	t.Helper()
	CloseAll()
	date := time.Now().Format("2006-01-02")
	data, err := os.ReadFile(filepath.Join(dir, "logs", date+"_"+string(cat)+".log"))
	if err != nil {
		t.Fatalf("read log for %s: %v", cat, err)
	}
	return string(data)
}

func TestProductionModeWritesNothing(t *testing.T) {
	dir := t.TempDir()
	if err := Initialize(dir, Options{}); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	defer CloseAll()

	Calc("should not be written")
	if IsDebugMode() {
		t.Fatal("expected debug mode off")
	}
	if _, err := os.Stat(filepath.Join(dir, "logs")); !os.IsNotExist(err) {
		t.Fatalf("logs directory should not exist in production mode, stat err=%v", err)
	}
}

func TestAllCategoriesLog(t *testing.T) {
	dir := t.TempDir()
	if err := Initialize(dir, Options{DebugMode: true, Level: "debug"}); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	defer CloseAll()

	for _, cat := range AllCategories {
		Get(cat).Info("hello from %s", cat)
	}

	for _, cat := range AllCategories {
		content := readLog(t, dir, cat)
		if !strings.Contains(content, "hello from "+string(cat)) {
			t.Errorf("category %s missing message, got: %q", cat, content)
		}
	}
}

func TestCategoryFilter(t *testing.T) {
	dir := t.TempDir()
	err := Initialize(dir, Options{
		DebugMode:  true,
		Categories: map[string]bool{"store": false},
	})
	if err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	defer CloseAll()

	if IsCategoryEnabled(CategoryStore) {
		t.Error("store category should be disabled")
	}
	if !IsCategoryEnabled(CategoryCalc) {
		t.Error("unlisted category should default to enabled")
	}

	Store("dropped")
	date := time.Now().Format("2006-01-02")
	if _, err := os.Stat(filepath.Join(dir, "logs", date+"_store.log")); !os.IsNotExist(err) {
		t.Errorf("disabled category should not create a file")
	}
}

func TestLevelFiltering(t *testing.T) {
	dir := t.TempDir()
	if err := Initialize(dir, Options{DebugMode: true, Level: "warn"}); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	defer CloseAll()

	CalcDebug("debug line")
	Calc("info line")
	Get(CategoryCalc).Warn("warn line")

	content := readLog(t, dir, CategoryCalc)
	if strings.Contains(content, "debug line") || strings.Contains(content, "info line") {
		t.Errorf("lines below warn should be filtered, got: %q", content)
	}
	if !strings.Contains(content, "warn line") {
		t.Errorf("warn line missing, got: %q", content)
	}
}

func TestJSONFormat(t *testing.T) {
	dir := t.TempDir()
	if err := Initialize(dir, Options{DebugMode: true, JSONFormat: true}); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	defer CloseAll()

	Get(CategoryMemory).With("value", 3).Info("register updated")

	content := strings.TrimSpace(readLog(t, dir, CategoryMemory))
	var entry map[string]interface{}
	if err := json.Unmarshal([]byte(content), &entry); err != nil {
		t.Fatalf("expected one JSON line, got %q: %v", content, err)
	}
	if entry["msg"] != "register updated" {
		t.Errorf("unexpected msg: %v", entry["msg"])
	}
	if entry["logger"] != "memory" {
		t.Errorf("unexpected logger name: %v", entry["logger"])
	}
	if entry["value"] != float64(3) {
		t.Errorf("unexpected value field: %v", entry["value"])
	}
}

func TestInitializeRequiresDir(t *testing.T) {
	if err := Initialize("", Options{}); err == nil {
		t.Fatal("expected error for empty state directory")
	}
}
