package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"abacus/internal/logging"
)

// LocalStore implements Store on a SQLite file.
//
// Tables:
//   - kv: one row per key ("memory", "theme")
//   - history: one row per successful evaluation
//
// The cgo build uses mattn/go-sqlite3; CGO_ENABLED=0 builds fall back to
// modernc.org/sqlite.
type LocalStore struct {
	db     *sql.DB
	mu     sync.RWMutex
	dbPath string
}

// NewLocalStore initializes the SQLite database at the given path.
func NewLocalStore(path string) (*LocalStore, error) {
	logging.Store("Initializing LocalStore at path: %s (driver %s)", path, sqlDriverName)

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		logging.Get(logging.CategoryStore).Error("Failed to create directory %s: %v", dir, err)
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open(sqlDriverName, path)
	if err != nil {
		logging.Get(logging.CategoryStore).Error("Failed to open database at %s: %v", path, err)
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		logging.StoreDebug("Failed to set sqlite busy_timeout: %v", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		logging.StoreDebug("Failed to set sqlite journal_mode=WAL: %v", err)
	}

	s := &LocalStore{db: db, dbPath: path}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return s, nil
}

// initialize creates a fresh schema or migrates an older one.
func (s *LocalStore) initialize() error {
	if tableExists(s.db, "kv") {
		return RunMigrations(s.db)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS history (
		id TEXT PRIMARY KEY,
		expression TEXT NOT NULL,
		result TEXT NOT NULL,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_history_created ON history(created_at);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return err
	}
	return SetSchemaVersion(s.db, CurrentSchemaVersion)
}

// Path returns the database file path.
func (s *LocalStore) Path() string {
	return s.dbPath
}

// Close closes the database connection.
func (s *LocalStore) Close() error {
	logging.StoreDebug("Closing LocalStore at %s", s.dbPath)
	return s.db.Close()
}
