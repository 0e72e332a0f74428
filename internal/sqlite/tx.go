package sqlite

import (
	"fmt"

	"github.com/josedab/pocket/pkg/types"
)

// Transaction helpers issue the control statement directly against the
// handle's connection. No nesting, no savepoints, no automatic rollback on
// a failed statement between begin and commit: the caller owns transaction
// discipline. A transaction left open blocks only its own database; the
// per-handle lock is released between calls, so other databases stay live.

// Begin starts a transaction on the named database.
func (r *Registry) Begin(name string) error {
	return r.control(name, "begin", "BEGIN TRANSACTION;")
}

// Commit commits the open transaction on the named database.
func (r *Registry) Commit(name string) error {
	return r.control(name, "commit", "COMMIT;")
}

// Rollback rolls back the open transaction on the named database.
func (r *Registry) Rollback(name string) error {
	return r.control(name, "rollback", "ROLLBACK;")
}

func (r *Registry) control(name, op, stmtText string) error {
	h := r.resolve(name)
	if h == nil {
		return fmt.Errorf("%s %q: %w", op, name, types.ErrDatabaseNotOpen)
	}
	return h.control(stmtText)
}

func (h *Handle) control(stmtText string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return types.ErrDatabaseNotOpen
	}
	if _, err := h.db.Exec(stmtText); err != nil {
		return fmt.Errorf("transaction control: %w", err)
	}
	return nil
}
