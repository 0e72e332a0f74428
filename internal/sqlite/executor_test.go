// Tests for statement execution: parameter binding, text coercion, NULL
// preservation, rows-changed counts, and failure surfacing.
package sqlite

import (
	"errors"
	"testing"

	"github.com/josedab/pocket/pkg/types"
)

// newTestRegistry returns a registry with one open database named "test".
func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	r := NewRegistry(t.TempDir())
	t.Cleanup(func() { r.CloseAll() })
	if _, err := r.Open("test", ""); err != nil {
		t.Fatalf("open: %v", err)
	}
	return r
}

func TestExec_RowsChangedCount(t *testing.T) {
	r := newTestRegistry(t)

	if _, err := r.Exec("test", "CREATE TABLE t (v INTEGER)", nil); err != nil {
		t.Fatal(err)
	}

	n, err := r.Exec("test", "INSERT INTO t VALUES (1)", nil)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("first insert changed %d rows, want 1", n)
	}

	// The count reports the most recent statement, not a running total.
	n, err = r.Exec("test", "INSERT INTO t VALUES (1)", nil)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("second insert changed %d rows, want 1", n)
	}

	n, err = r.Exec("test", "UPDATE t SET v = 2", nil)
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("update changed %d rows, want 2", n)
	}
}

func TestQuery_TextRoundTrip(t *testing.T) {
	r := newTestRegistry(t)

	if _, err := r.Exec("test", "CREATE TABLE t (v TEXT)", nil); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Exec("test", "INSERT INTO t VALUES (?)",
		[]types.Value{types.Text("hello")}); err != nil {
		t.Fatal(err)
	}

	rows, err := r.Query("test", "SELECT v FROM t", nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if got := rows[0].Value("v"); got != "hello" {
		t.Errorf("v = %q, want %q", got, "hello")
	}
}

func TestQuery_ParameterBinding(t *testing.T) {
	r := newTestRegistry(t)

	if _, err := r.Exec("test",
		`CREATE TABLE t (txt TEXT, num REAL, flag INTEGER, "nothing" TEXT)`, nil); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Exec("test", "INSERT INTO t VALUES (?, ?, ?, ?)",
		[]types.Value{
			types.Text("abc"),
			types.Number(4.5),
			types.Bool(true),
			types.Null(),
		}); err != nil {
		t.Fatal(err)
	}

	rows, err := r.Query("test", `SELECT txt, num, flag, "nothing" FROM t`, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}

	row := rows[0]
	if got := row.Value("txt"); got != "abc" {
		t.Errorf("txt = %q", got)
	}
	if got := row.Value("num"); got != "4.5" {
		t.Errorf("num = %q, want 4.5", got)
	}
	// Booleans bind as integer 0/1.
	if got := row.Value("flag"); got != "1" {
		t.Errorf("flag = %q, want 1", got)
	}

	// NULL renders as "" but stays marked as NULL.
	col, ok := row.Get("nothing")
	if !ok {
		t.Fatal("column nothing missing")
	}
	if !col.Null || col.Value != "" {
		t.Errorf("nothing = %+v, want NULL with empty text", col)
	}
}

func TestQuery_ColumnOrderFollowsStatement(t *testing.T) {
	r := newTestRegistry(t)

	if _, err := r.Exec("test", "CREATE TABLE t (a TEXT, b TEXT)", nil); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Exec("test", "INSERT INTO t VALUES ('1', '2')", nil); err != nil {
		t.Fatal(err)
	}

	rows, err := r.Query("test", "SELECT b, a FROM t", nil)
	if err != nil {
		t.Fatal(err)
	}
	cols := rows[0].Columns
	if cols[0].Name != "b" || cols[1].Name != "a" {
		t.Errorf("column order = [%s, %s], want [b, a]", cols[0].Name, cols[1].Name)
	}
}

func TestQuery_EmptyResultIsNotAnError(t *testing.T) {
	r := newTestRegistry(t)

	if _, err := r.Exec("test", "CREATE TABLE t (v TEXT)", nil); err != nil {
		t.Fatal(err)
	}
	rows, err := r.Query("test", "SELECT v FROM t", nil)
	if err != nil {
		t.Fatalf("zero-row query must succeed, got %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("got %d rows, want 0", len(rows))
	}
}

func TestQuery_PrepareFailureSurfaces(t *testing.T) {
	r := newTestRegistry(t)

	if _, err := r.Query("test", "NOT VALID SQL", nil); err == nil {
		t.Error("malformed read must return an error")
	}
	if _, err := r.Exec("test", "NOT VALID SQL", nil); err == nil {
		t.Error("malformed write must return an error")
	}
}

func TestQuery_UnknownDatabase(t *testing.T) {
	r := newTestRegistry(t)

	if _, err := r.Query("nope", "SELECT 1", nil); !errors.Is(err, types.ErrDatabaseNotOpen) {
		t.Errorf("query: %v, want ErrDatabaseNotOpen", err)
	}
	if _, err := r.Exec("nope", "SELECT 1", nil); !errors.Is(err, types.ErrDatabaseNotOpen) {
		t.Errorf("exec: %v, want ErrDatabaseNotOpen", err)
	}
}
