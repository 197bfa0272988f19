package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"abacus/internal/logging"
)

// AppendHistory records one evaluation.
func (s *LocalStore) AppendHistory(expression, result string) (HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := HistoryEntry{
		ID:         uuid.NewString(),
		Expression: expression,
		Result:     result,
		CreatedAt:  time.Now(),
	}
	_, err := s.db.Exec(
		"INSERT INTO history (id, expression, result, created_at) VALUES (?, ?, ?, ?)",
		entry.ID, entry.Expression, entry.Result, entry.CreatedAt.UnixNano())
	if err != nil {
		return HistoryEntry{}, fmt.Errorf("failed to record history: %w", err)
	}
	logging.StoreDebug("history append %s: %s = %s", entry.ID, expression, result)
	return entry, nil
}

// RecentHistory returns up to limit entries, newest first. A limit <= 0
// returns everything.
func (s *LocalStore) RecentHistory(limit int) ([]HistoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := "SELECT id, expression, result, created_at FROM history ORDER BY created_at DESC, rowid DESC"
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		var e HistoryEntry
		var created int64
		if err := rows.Scan(&e.ID, &e.Expression, &e.Result, &created); err != nil {
			return nil, fmt.Errorf("failed to scan history: %w", err)
		}
		e.CreatedAt = time.Unix(0, created)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// ClearHistory deletes every history entry.
func (s *LocalStore) ClearHistory() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec("DELETE FROM history"); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	logging.Store("history cleared")
	return nil
}
