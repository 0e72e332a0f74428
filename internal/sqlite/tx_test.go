// Tests for transaction helpers: commit persistence, rollback, error
// surfacing, and isolation of an open transaction to its own database.
package sqlite

import (
	"errors"
	"testing"

	"github.com/josedab/pocket/pkg/types"
)

func countRows(t *testing.T, r *Registry, name string) string {
	t.Helper()
	rows, err := r.Query(name, "SELECT COUNT(*) AS n FROM t", nil)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	return rows[0].Value("n")
}

func TestTx_CommitPersists(t *testing.T) {
	r := newTestRegistry(t)

	if _, err := r.Exec("test", "CREATE TABLE t (v TEXT)", nil); err != nil {
		t.Fatal(err)
	}

	if err := r.Begin("test"); err != nil {
		t.Fatalf("begin: %v", err)
	}
	if _, err := r.Exec("test", "INSERT INTO t VALUES ('kept')", nil); err != nil {
		t.Fatal(err)
	}
	if err := r.Commit("test"); err != nil {
		t.Fatalf("commit: %v", err)
	}

	if got := countRows(t, r, "test"); got != "1" {
		t.Errorf("rows after commit = %s, want 1", got)
	}
}

func TestTx_RollbackDiscards(t *testing.T) {
	r := newTestRegistry(t)

	if _, err := r.Exec("test", "CREATE TABLE t (v TEXT)", nil); err != nil {
		t.Fatal(err)
	}

	if err := r.Begin("test"); err != nil {
		t.Fatalf("begin: %v", err)
	}
	if _, err := r.Exec("test", "INSERT INTO t VALUES ('discarded')", nil); err != nil {
		t.Fatal(err)
	}
	if err := r.Rollback("test"); err != nil {
		t.Fatalf("rollback: %v", err)
	}

	if got := countRows(t, r, "test"); got != "0" {
		t.Errorf("rows after rollback = %s, want 0", got)
	}
}

func TestTx_ControlFailuresSurface(t *testing.T) {
	r := newTestRegistry(t)

	// Commit with no open transaction fails at the store; the error must
	// reach the caller instead of being swallowed.
	if err := r.Commit("test"); err == nil {
		t.Error("commit outside a transaction must return an error")
	}
	if err := r.Rollback("test"); err == nil {
		t.Error("rollback outside a transaction must return an error")
	}

	// Nested begin is unsupported and fails at the store.
	if err := r.Begin("test"); err != nil {
		t.Fatalf("begin: %v", err)
	}
	if err := r.Begin("test"); err == nil {
		t.Error("nested begin must return an error")
	}
	if err := r.Rollback("test"); err != nil {
		t.Fatalf("rollback: %v", err)
	}
}

func TestTx_UnknownDatabase(t *testing.T) {
	r := newTestRegistry(t)

	for _, call := range []func(string) error{r.Begin, r.Commit, r.Rollback} {
		if err := call("nope"); !errors.Is(err, types.ErrDatabaseNotOpen) {
			t.Errorf("got %v, want ErrDatabaseNotOpen", err)
		}
	}
}

// An open transaction holds only its own handle; other databases stay
// fully usable.
func TestTx_OpenTransactionDoesNotBlockOtherDatabases(t *testing.T) {
	r := newTestRegistry(t)
	if _, err := r.Open("other", ""); err != nil {
		t.Fatal(err)
	}

	if _, err := r.Exec("test", "CREATE TABLE t (v TEXT)", nil); err != nil {
		t.Fatal(err)
	}
	if err := r.Begin("test"); err != nil {
		t.Fatalf("begin: %v", err)
	}
	if _, err := r.Exec("test", "INSERT INTO t VALUES ('pending')", nil); err != nil {
		t.Fatal(err)
	}

	// With the transaction on "test" still open, "other" accepts work.
	if _, err := r.Exec("other", "CREATE TABLE u (v TEXT)", nil); err != nil {
		t.Fatalf("exec on other database: %v", err)
	}
	if _, err := r.Query("other", "SELECT v FROM u", nil); err != nil {
		t.Fatalf("query on other database: %v", err)
	}

	if err := r.Commit("test"); err != nil {
		t.Fatalf("commit: %v", err)
	}
}
