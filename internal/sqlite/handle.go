// Package sqlite implements the database-handle registry and statement
// executor over the embedded SQLite store. Each open database is one
// exclusively-owned connection; the registry maps logical names to handles
// and guarantees that a handle is never closed while a statement against
// it is in flight.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"sync"

	_ "modernc.org/sqlite" // register pure-Go SQLite driver
)

// Handle wraps one open SQLite connection plus its filesystem path.
// Statement execution and close both take mu, so a close waits for the
// in-flight statement instead of racing it.
type Handle struct {
	mu     sync.Mutex
	db     *sql.DB
	path   string
	closed bool
}

// openHandle opens the database file at path and configures it for
// concurrent-friendly durability: write-ahead logging, relaxed synchronous
// flushing, and a busy timeout so writers wait for the WAL lock instead of
// failing immediately. On any failure the connection is released and nil
// is returned; a Handle is either fully open or does not exist.
func openHandle(path string) (*Handle, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	// One connection per handle. Transaction control statements issued
	// through Exec must land on the same underlying connection as the
	// statements they bracket.
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("configuring %s: %w", path, err)
		}
	}

	return &Handle{db: db, path: path}, nil
}

// Path returns the filesystem path of the backing file.
func (h *Handle) Path() string { return h.path }

// FileSize returns the current size of the backing file in bytes, or 0 if
// the file is absent.
func (h *Handle) FileSize() int64 {
	st, err := os.Stat(h.path)
	if err != nil {
		return 0
	}
	return st.Size()
}

// close releases the underlying connection exactly once. It blocks until
// any in-flight statement on this handle has finished.
func (h *Handle) close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil
	}
	h.closed = true
	return h.db.Close()
}
