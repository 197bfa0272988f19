package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"abacus/internal/logging"
)

// Get reads key. A missing row is Entry{Found: false} with a nil error.
func (s *LocalStore) Get(key string) (Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var value string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		logging.StoreDebug("kv get %s: not set", key)
		return Entry{}, nil
	}
	if err != nil {
		return Entry{}, fmt.Errorf("failed to read %s: %w", key, err)
	}
	logging.StoreDebug("kv get %s = %q", key, value)
	return Entry{Value: value, Found: true}, nil
}

// Put writes key, replacing any previous value.
func (s *LocalStore) Put(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UnixNano())
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	logging.StoreDebug("kv put %s = %q", key, value)
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *LocalStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec("DELETE FROM kv WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	logging.StoreDebug("kv delete %s", key)
	return nil
}
