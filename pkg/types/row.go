package types

// Column is a single result cell: the column name, its textual rendering,
// and whether the store reported NULL. A NULL column renders as the empty
// string but keeps Null set, so NULL stays distinguishable from "".
type Column struct {
	Name  string
	Value string
	Null  bool
}

// Row is one result row with columns in store-reported order.
type Row struct {
	Columns []Column
}

// Get returns the first column with the given name.
func (r Row) Get(name string) (Column, bool) {
	for _, c := range r.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// Value returns the textual value of the named column, or "" if the column
// is absent or NULL.
func (r Row) Value(name string) string {
	c, _ := r.Get(name)
	return c.Value
}
