package trace

import (
	"database/sql"
	"fmt"
	"log/slog"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// Schema for the statement_traces table, applied by Open.
const Schema = `
CREATE TABLE IF NOT EXISTS statement_traces (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	trace_id TEXT NOT NULL,
	database_name TEXT NOT NULL,
	op TEXT NOT NULL,
	statement TEXT,
	duration_us INTEGER NOT NULL,
	error TEXT,
	timestamp INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_statement_traces_ts ON statement_traces(timestamp);
CREATE INDEX IF NOT EXISTS idx_statement_traces_db ON statement_traces(database_name);
`

const (
	bufferSize = 1024
	batchSize  = 64
)

// Store persists trace entries to a SQLite file asynchronously.
type Store struct {
	db   *sql.DB
	ch   chan *Entry
	done chan struct{}
	once sync.Once

	mu     sync.RWMutex
	closed bool
}

// Open creates a trace store backed by the SQLite file at path, applying
// the schema and starting the flush goroutine.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening trace store %s: %w", path, err)
	}
	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing trace store: %w", err)
	}

	s := &Store{
		db:   db,
		ch:   make(chan *Entry, bufferSize),
		done: make(chan struct{}),
	}
	go s.flushLoop()
	return s, nil
}

// RecordAsync queues an entry for persistence. Non-blocking; drops the
// entry if the buffer is full (to avoid backpressure on statement callers)
// or if the store is already closed.
func (s *Store) RecordAsync(e *Entry) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return
	}
	select {
	case s.ch <- e:
	default:
	}
}

// Close drains the buffer, stops the flush goroutine, and closes the file.
// Close is idempotent.
func (s *Store) Close() error {
	s.once.Do(func() {
		s.mu.Lock()
		s.closed = true
		s.mu.Unlock()
		close(s.ch)
		<-s.done
	})
	return s.db.Close()
}

func (s *Store) flushLoop() {
	defer close(s.done)

	batch := make([]*Entry, 0, batchSize)
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case e, ok := <-s.ch:
			if !ok {
				s.flushBatch(batch)
				return
			}
			batch = append(batch, e)
			if len(batch) >= batchSize {
				s.flushBatch(batch)
				batch = batch[:0]
			}
		case <-ticker.C:
			if len(batch) > 0 {
				s.flushBatch(batch)
				batch = batch[:0]
			}
		}
	}
}

func (s *Store) flushBatch(batch []*Entry) {
	if len(batch) == 0 {
		return
	}

	tx, err := s.db.Begin()
	if err != nil {
		slog.Error("trace store: begin tx", "error", err)
		return
	}

	stmt, err := tx.Prepare(`INSERT INTO statement_traces
		(trace_id, database_name, op, statement, duration_us, error, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		slog.Error("trace store: prepare", "error", err)
		return
	}
	defer stmt.Close()

	for _, e := range batch {
		if _, err := stmt.Exec(e.TraceID, e.Database, e.Op, e.Statement,
			e.DurationUs, e.Error, e.Timestamp); err != nil {
			slog.Error("trace store: insert", "error", err)
		}
	}

	if err := tx.Commit(); err != nil {
		slog.Error("trace store: commit", "error", err)
	}
}
