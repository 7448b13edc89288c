// Package state remembers small pieces of session state between runs: the
// file browser position and the last location typed in the prompt. It keeps
// no track data; the playlist always starts empty.
package state

import (
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/llehouerou/hnl/internal/logging"
)

const (
	appName      = "hnl"
	dbFileName   = "state.db"
	saveDebounce = 500 * time.Millisecond
)

// Store is the SQLite backed session state. Writes are debounced: values
// set within saveDebounce of each other reach the database in one
// transaction.
type Store struct {
	db  *sql.DB
	log *log.Logger

	mu      sync.Mutex
	timer   *time.Timer
	pending map[string]string

	// writeMu keeps a timer flush from racing Close.
	writeMu sync.Mutex
}

// Open opens the state database in the user's data directory.
func Open(logger *log.Logger) (*Store, error) {
	dbPath, err := xdg.DataFile(filepath.Join(appName, dbFileName))
	if err != nil {
		return nil, err
	}
	return OpenPath(dbPath, logger)
}

// OpenPath opens the state database at path, creating it and its
// directory if needed. A nil logger discards write failures.
func OpenPath(path string, logger *log.Logger) (*Store, error) {
	if logger == nil {
		logger = logging.New(nil)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate %s: %w", path, err)
	}

	return &Store{
		db:      db,
		log:     logging.With(logger, "component", "state"),
		pending: make(map[string]string),
	}, nil
}

// Close writes pending values and closes the database.
func (s *Store) Close() error {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.mu.Unlock()

	s.flush()
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.db.Close()
}

// set queues values for the next write and restarts the delay.
func (s *Store) set(values map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	maps.Copy(s.pending, values)
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(saveDebounce, s.flush)
}

func (s *Store) flush() {
	s.mu.Lock()
	pending := s.pending
	s.pending = make(map[string]string)
	s.mu.Unlock()

	if len(pending) == 0 {
		return
	}
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if err := putValues(s.db, pending); err != nil {
		s.log.Warn("save session state", "keys", len(pending), "err", err)
	}
}

func putValues(db *sql.DB, values map[string]string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	stmt, err := tx.Prepare(`
		INSERT INTO session_state (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for k, v := range values {
		if _, err := stmt.Exec(k, v); err != nil {
			return fmt.Errorf("%s: %w", k, err)
		}
	}
	return tx.Commit()
}

// getValue returns the stored value of key and whether there is one.
func getValue(db *sql.DB, key string) (string, bool, error) {
	var value string
	err := db.QueryRow(`SELECT value FROM session_state WHERE key = ?`, key).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", false, nil
	case err != nil:
		return "", false, err
	}
	return value, true, nil
}
