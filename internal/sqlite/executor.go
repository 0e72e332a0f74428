package sqlite

import (
	"fmt"
	"strconv"
	"time"

	"github.com/josedab/pocket/pkg/types"
)

// Query resolves name and runs sql as a read, returning the result rows.
// Returns types.ErrDatabaseNotOpen when name is not registered, so zero
// rows from a successful query stays distinguishable from a missing
// database.
func (r *Registry) Query(name, sqlText string, params []types.Value) ([]types.Row, error) {
	h := r.resolve(name)
	if h == nil {
		return nil, fmt.Errorf("query %q: %w", name, types.ErrDatabaseNotOpen)
	}
	return h.query(sqlText, params)
}

// Exec resolves name and runs sql for its side effect, returning the
// number of rows changed by the statement.
func (r *Registry) Exec(name, sqlText string, params []types.Value) (int64, error) {
	h := r.resolve(name)
	if h == nil {
		return 0, fmt.Errorf("exec %q: %w", name, types.ErrDatabaseNotOpen)
	}
	return h.exec(sqlText, params)
}

// query prepares sqlText, binds params positionally (1-based, in order),
// and collects every row with columns in store-reported order. The
// prepared statement is finalized on every exit path.
func (h *Handle) query(sqlText string, params []types.Value) ([]types.Row, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil, types.ErrDatabaseNotOpen
	}

	stmt, err := h.db.Prepare(sqlText)
	if err != nil {
		return nil, fmt.Errorf("preparing statement: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.Query(bindArgs(params)...)
	if err != nil {
		return nil, fmt.Errorf("executing query: %w", err)
	}
	defer rows.Close()

	names, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("reading column names: %w", err)
	}

	var result []types.Row
	raw := make([]any, len(names))
	ptrs := make([]any, len(names))
	for i := range raw {
		ptrs[i] = &raw[i]
	}

	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		row := types.Row{Columns: make([]types.Column, len(names))}
		for i, colName := range names {
			text, null := columnText(raw[i])
			row.Columns[i] = types.Column{Name: colName, Value: text, Null: null}
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		// Rows collected before the failure are discarded; a partial
		// result must not masquerade as a complete one.
		return nil, fmt.Errorf("stepping query: %w", err)
	}
	return result, nil
}

// exec prepares sqlText, binds params, consumes the statement for its side
// effect, and returns the rows-changed count reported by the store.
func (h *Handle) exec(sqlText string, params []types.Value) (int64, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return 0, types.ErrDatabaseNotOpen
	}

	stmt, err := h.db.Prepare(sqlText)
	if err != nil {
		return 0, fmt.Errorf("preparing statement: %w", err)
	}
	defer stmt.Close()

	res, err := stmt.Exec(bindArgs(params)...)
	if err != nil {
		return 0, fmt.Errorf("executing statement: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("reading rows changed: %w", err)
	}
	return n, nil
}

// bindArgs maps the parameter sequence to driver bind arguments: NULL,
// double, transient text, or integer 0/1 for booleans.
func bindArgs(params []types.Value) []any {
	if len(params) == 0 {
		return nil
	}
	args := make([]any, len(params))
	for i, p := range params {
		args[i] = p.Arg()
	}
	return args
}

// columnText coerces a scanned column value to its textual representation
// and reports whether the store returned NULL.
func columnText(v any) (text string, null bool) {
	switch t := v.(type) {
	case nil:
		return "", true
	case string:
		return t, false
	case []byte:
		return string(t), false
	case int64:
		return strconv.FormatInt(t, 10), false
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64), false
	case bool:
		if t {
			return "1", false
		}
		return "0", false
	case time.Time:
		return t.Format(time.RFC3339Nano), false
	default:
		return fmt.Sprint(t), false
	}
}
