package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Get reads an integer value. ok is false when the key has never been set.
// A stored value that is not an integer yields an error.
func (s *Store) Get(key string) (int, bool, error) {
	var raw string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot read %s: %w", key, err)
	}

	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, true, fmt.Errorf("storage: value of %s is not an integer: %w", key, err)
	}
	return v, true, nil
}

// Raise stores value under key unless a larger value is already stored,
// so concurrent writers can never lower it. A stored value that is not an
// integer counts as 0 and is replaced.
func (s *Store) Raise(key string, value int) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET
		   value = MAX(CAST(kv.value AS INTEGER), CAST(excluded.value AS INTEGER))`,
		key, strconv.Itoa(value),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write %s: %w", key, err)
	}
	return nil
}

// Delete removes a key. Deleting a missing key is not an error.
func (s *Store) Delete(key string) error {
	if _, err := s.db.Exec("DELETE FROM kv WHERE key = ?", key); err != nil {
		return fmt.Errorf("storage: cannot delete %s: %w", key, err)
	}
	return nil
}
