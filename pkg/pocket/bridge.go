// Package pocket exposes the embedded-SQLite bridge: open named databases,
// run reads and writes with typed parameters, and bracket writes in
// transactions.
//
// A Bridge is an explicitly constructed, explicitly closed object; it owns
// one handle registry for its lifetime and there is no ambient global
// state. The core is synchronous and blocking: callers decide which
// goroutine invokes each operation, and nothing here yields mid-execution.
//
// Example:
//
//	bridge, err := pocket.New(types.Config{DataDir: ".pocket-db"})
//	if err != nil {
//		return err
//	}
//	defer bridge.Close()
//
//	bridge.Open("app", "")
//	bridge.Exec("app", "CREATE TABLE t (v TEXT)", nil)
//	bridge.Exec("app", "INSERT INTO t VALUES (?)", []types.Value{types.Text("hello")})
//	rows, err := bridge.Query("app", "SELECT v FROM t", nil)
package pocket

import (
	"fmt"
	"os"
	"time"

	"github.com/josedab/pocket/internal/paths"
	"github.com/josedab/pocket/internal/sqlite"
	"github.com/josedab/pocket/internal/trace"
	"github.com/josedab/pocket/pkg/types"
)

// Version is the pocket release version.
const Version = "0.1.0"

// Bridge owns the handle registry and, optionally, the statement trace
// journal. All methods are safe for concurrent use; operations on
// different databases proceed in parallel, while statements against one
// database serialize on its handle.
type Bridge struct {
	cfg    types.Config
	reg    *sqlite.Registry
	traces *trace.Store
}

// New constructs a Bridge from cfg. An empty DataDir resolves through the
// standard precedence chain (POCKET_DATA_DIR, then $(CWD)/.pocket-db); the
// directory is created if absent. When cfg.TraceFile is set the trace
// journal is opened as well.
func New(cfg types.Config) (*Bridge, error) {
	if cfg.DataDir == "" {
		dir, err := paths.ResolveDataDir("", "")
		if err != nil {
			return nil, fmt.Errorf("resolve data dir: %w", err)
		}
		cfg.DataDir = dir
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	b := &Bridge{
		cfg: cfg,
		reg: sqlite.NewRegistry(cfg.DataDir),
	}

	if cfg.TraceFile != "" {
		store, err := trace.Open(cfg.TraceFile)
		if err != nil {
			return nil, err
		}
		b.traces = store
	}
	return b, nil
}

// Open registers a database under name, creating or opening the backing
// file at path (or DataDir/name.db when path is empty). Opening a name
// that is already registered is a no-op success.
func (b *Bridge) Open(name, path string) (bool, error) {
	return b.reg.Open(name, path)
}

// CloseDatabase closes the named database; no-op if it is not open.
func (b *Bridge) CloseDatabase(name string) {
	b.reg.Close(name)
}

// Exists reports whether the named database is currently open.
func (b *Bridge) Exists(name string) bool {
	return b.reg.Exists(name)
}

// Delete closes the named database if open, then removes its backing file.
// It fails if the file does not exist.
func (b *Bridge) Delete(name string) error {
	return b.reg.Delete(name)
}

// Size returns the backing file size in bytes, or 0 if the database is not
// open or its file is absent.
func (b *Bridge) Size(name string) int64 {
	return b.reg.Size(name)
}

// Names returns the open database names in sorted order.
func (b *Bridge) Names() []string {
	return b.reg.Names()
}

// Query runs sql as a read against the named database and returns the
// result rows. Parameters bind positionally in order.
func (b *Bridge) Query(name, sqlText string, params []types.Value) ([]types.Row, error) {
	start := time.Now()
	rows, err := b.reg.Query(name, sqlText, params)
	b.record(name, "query", sqlText, start, err)
	return rows, err
}

// Exec runs sql for its side effect against the named database and
// returns the rows-changed count reported by the store.
func (b *Bridge) Exec(name, sqlText string, params []types.Value) (int64, error) {
	start := time.Now()
	n, err := b.reg.Exec(name, sqlText, params)
	b.record(name, "exec", sqlText, start, err)
	return n, err
}

// Begin starts a transaction on the named database. The caller owns
// transaction discipline: a transaction left open holds the write lock on
// that database until committed or rolled back (other databases are
// unaffected).
func (b *Bridge) Begin(name string) error {
	start := time.Now()
	err := b.reg.Begin(name)
	b.record(name, "begin", "", start, err)
	return err
}

// Commit commits the open transaction on the named database.
func (b *Bridge) Commit(name string) error {
	start := time.Now()
	err := b.reg.Commit(name)
	b.record(name, "commit", "", start, err)
	return err
}

// Rollback rolls back the open transaction on the named database.
func (b *Bridge) Rollback(name string) error {
	start := time.Now()
	err := b.reg.Rollback(name)
	b.record(name, "rollback", "", start, err)
	return err
}

// Close tears down the bridge: every remaining handle is closed and the
// trace journal, if open, is flushed and closed. Close is idempotent;
// operations after Close fail with ErrBridgeClosed or ErrDatabaseNotOpen.
func (b *Bridge) Close() error {
	err := b.reg.CloseAll()
	if b.traces != nil {
		if terr := b.traces.Close(); terr != nil && err == nil {
			err = terr
		}
	}
	return err
}

func (b *Bridge) record(name, op, sqlText string, start time.Time, err error) {
	if b.traces == nil {
		return
	}
	b.traces.RecordAsync(trace.NewEntry(name, op, sqlText, time.Since(start), err))
}
