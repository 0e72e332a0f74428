// Package trace persists a per-statement journal at the bridge boundary:
// which operation ran against which database, how long it took, and
// whether it failed. Entries are recorded asynchronously into a dedicated
// SQLite file so journaling never adds latency to the caller's statement.
package trace

import (
	"time"

	"github.com/google/uuid"
)

// Entry is a single statement trace record.
type Entry struct {
	TraceID    string // correlation id, one UUID per recorded call
	Database   string // logical database name
	Op         string // "query", "exec", "begin", "commit", "rollback"
	Statement  string // SQL text, empty for transaction control
	DurationUs int64  // microseconds
	Error      string // empty on success
	Timestamp  int64  // unix microseconds
}

// NewEntry builds an Entry for a finished call.
func NewEntry(database, op, statement string, d time.Duration, err error) *Entry {
	e := &Entry{
		TraceID:    uuid.NewString(),
		Database:   database,
		Op:         op,
		Statement:  statement,
		DurationUs: d.Microseconds(),
		Timestamp:  time.Now().UnixMicro(),
	}
	if err != nil {
		e.Error = err.Error()
	}
	return e
}
