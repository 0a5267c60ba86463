package enum

// Row is one record of an enumeration: a dense view of the original input
// tuple, padded with nil up to the full column width. Rows are value types
// sharing the parent enumeration's schema; copying one is cheap and does
// not copy the underlying data.
type Row struct {
	columns []string
	colPos  map[string]int
	values  []any
}

// Get returns the entry for the named column and whether the column exists
// in the schema. Padding shows up as a present nil, not as a missing
// column.
func (r Row) Get(column string) (any, bool) {
	pos, ok := r.colPos[column]
	if !ok {
		return nil, false
	}
	return r.values[pos], true
}

// Value returns the entry for the named column, or nil when the column is
// not part of the schema. Use Get to distinguish an absent column from a
// nil entry.
func (r Row) Value(column string) any {
	v, _ := r.Get(column)
	return v
}

// At returns the entry at column position i. It panics when i is out of
// range, mirroring slice indexing.
func (r Row) At(i int) any {
	return r.values[i]
}

// Len returns the number of columns.
func (r Row) Len() int {
	return len(r.values)
}

// Columns returns a copy of the column names in schema order.
func (r Row) Columns() []string {
	out := make([]string, len(r.columns))
	copy(out, r.columns)
	return out
}

// Map returns the row as a freshly-allocated column-name to value map.
// Mutating the result does not affect the enumeration.
func (r Row) Map() map[string]any {
	out := make(map[string]any, len(r.columns))
	for i, name := range r.columns {
		out[name] = r.values[i]
	}
	return out
}
