// Package store persists calculator state: a small key-value table for the
// memory register and theme preference, and the evaluation history.
package store

import (
	"fmt"
	"time"
)

// Entry is the result of a key lookup. Found is false when the key was
// never set (or was deleted); read failures are reported as errors instead.
type Entry struct {
	Value string
	Found bool
}

// KV is the key-value side of a store.
type KV interface {
	Get(key string) (Entry, error)
	Put(key, value string) error
	Delete(key string) error
}

// HistoryEntry is one successful evaluation.
type HistoryEntry struct {
	ID         string
	Expression string
	Result     string
	CreatedAt  time.Time
}

// History records evaluations, newest first on read.
type History interface {
	AppendHistory(expression, result string) (HistoryEntry, error)
	RecentHistory(limit int) ([]HistoryEntry, error)
	ClearHistory() error
}

// Store is a KV with history that must be closed.
type Store interface {
	KV
	History
	Close() error
}

// Drivers accepted by Open.
const (
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

// Open returns the store selected by driver. The memory driver ignores path.
func Open(driver, path string) (Store, error) {
	switch driver {
	case DriverSQLite, "":
		return NewLocalStore(path)
	case DriverMemory:
		return NewMemoryStore(), nil
	}
	return nil, fmt.Errorf("unknown storage driver %q (valid: %s, %s)", driver, DriverSQLite, DriverMemory)
}
