package enum

import (
	"fmt"
	"iter"
	"reflect"
	"sync"

	"github.com/sculpt-web/sculpt"
)

// Conventional column names. Every enumeration carries a value column and
// an id column; a label column unlocks the Labels extraction.
const (
	ColumnValue = "value"
	ColumnID    = "id"
	ColumnLabel = "label"
)

// Pair is one entry of a two-column extraction, as consumed by model field
// choices and display drop-downs. Value holds the first column's entry and
// Label the second's.
type Pair struct {
	Value any
	Label any
}

// Enumeration is an immutable, ordered collection of fixed-width rows.
//
// Rows are addressable by position, by the unique "id" label, and by any
// indexed column value. Construction builds all indexes up front; after
// that the structure is strictly read-only and safe for concurrent use.
type Enumeration struct {
	columns []string
	colPos  map[string]int
	rows    []Row
	index   map[string]map[any]int

	choicesOnce sync.Once
	choices     []Pair

	labelsOnce sync.Once
	labels     []Pair
	labelsErr  error
}

type options struct {
	columns []string
}

// Option customizes enumeration construction.
type Option func(*options)

// WithColumns replaces the default ("value", "id") schema. The value and
// id columns may appear at any position but must both be present.
func WithColumns(columns ...string) Option {
	return func(o *options) {
		o.columns = columns
	}
}

// New builds an Enumeration from the given rows.
//
// Each row may be at most as long as the column list; short rows are padded
// with nil. Duplicate column names, over-long rows, and a schema missing
// the value or id column fail with sculpt.ErrInvalidConfig.
//
// Values in the id column must be unique and comparable across all rows;
// this is the caller's contract, not enforced here (a duplicate id makes
// the later row win in the index, matching positional last-write order).
func New(rows [][]any, opts ...Option) (*Enumeration, error) {
	const op = "enum.New"

	cfg := options{columns: []string{ColumnValue, ColumnID}}
	for _, opt := range opts {
		opt(&cfg)
	}

	columns := make([]string, len(cfg.columns))
	copy(columns, cfg.columns)

	colPos := make(map[string]int, len(columns))
	for i, name := range columns {
		if _, dup := colPos[name]; dup {
			return nil, sculpt.NewConfigurationError(op,
				fmt.Errorf("duplicate column name %q: %w", name, sculpt.ErrInvalidConfig))
		}
		colPos[name] = i
	}

	for _, required := range []string{ColumnValue, ColumnID} {
		if _, ok := colPos[required]; !ok {
			return nil, sculpt.NewConfigurationError(op,
				fmt.Errorf("schema is missing required column %q: %w", required, sculpt.ErrInvalidConfig))
		}
	}

	for i, row := range rows {
		if len(row) > len(columns) {
			return nil, sculpt.NewConfigurationError(op,
				fmt.Errorf("row %d has %d entries but schema has %d columns: %w",
					i, len(row), len(columns), sculpt.ErrInvalidConfig))
		}
	}

	// Dense per-row views, padded with nil where the input row was short.
	dense := make([]Row, len(rows))
	for i, row := range rows {
		values := make([]any, len(columns))
		copy(values, row)
		dense[i] = Row{columns: columns, colPos: colPos, values: values}
	}

	// Reverse indexes, one per column. Only explicitly-present, indexable
	// values participate; padding never does.
	index := make(map[string]map[any]int, len(columns))
	for ci, name := range columns {
		idx := make(map[any]int)
		for ri, row := range rows {
			if ci >= len(row) || !indexable(row[ci]) {
				continue
			}
			idx[row[ci]] = ri
		}
		index[name] = idx
	}

	return &Enumeration{
		columns: columns,
		colPos:  colPos,
		rows:    dense,
		index:   index,
	}, nil
}

// MustNew is like New but panics on error. It is intended for package-level
// enumeration constants, where a construction failure is a programming bug.
func MustNew(rows [][]any, opts ...Option) *Enumeration {
	e, err := New(rows, opts...)
	if err != nil {
		panic(err)
	}
	return e
}

// indexable reports whether a cell value can serve as a lookup key.
// This is the explicit filter that decides which entries join a column's
// reverse index; it exists so unindexable payloads degrade to "not found"
// instead of panicking inside a map operation.
func indexable(v any) bool {
	if v == nil {
		return true
	}
	return reflect.TypeOf(v).Comparable()
}

// Get returns the row whose entry in column equals key.
//
// It fails with sculpt.ErrNotFound when the column is unknown, the key is
// not indexed for that column, or the only matching cell held an
// unindexable value (treated identically to "not found").
func (e *Enumeration) Get(column string, key any) (Row, error) {
	const op = "enum.Get"

	idx, ok := e.index[column]
	if !ok {
		return Row{}, sculpt.NewNotFoundError(op,
			fmt.Errorf("unknown column %q: %w", column, sculpt.ErrNotFound))
	}
	if !indexable(key) {
		return Row{}, sculpt.NewNotFoundError(op,
			fmt.Errorf("key of type %T is not indexable: %w", key, sculpt.ErrNotFound))
	}
	pos, ok := idx[key]
	if !ok {
		return Row{}, sculpt.NewNotFoundError(op,
			fmt.Errorf("no row with %s = %v: %w", column, key, sculpt.ErrNotFound))
	}
	return e.rows[pos], nil
}

// ValueOf performs attribute-style lookup: it returns the value-column
// entry of the row labeled by the given id.
//
// A miss fails with sculpt.ErrAttributeNotFound rather than ErrNotFound,
// so reflection and templating layers see a natural "no such attribute"
// failure shape.
func (e *Enumeration) ValueOf(label string) (any, error) {
	row, err := e.Get(ColumnID, label)
	if err != nil {
		return nil, sculpt.NewAttributeError("enum.ValueOf",
			fmt.Errorf("no enumeration entry labeled %q: %w", label, sculpt.ErrAttributeNotFound))
	}
	return row.Value(ColumnValue), nil
}

// Contains reports whether key is present in the id column's index.
// Values present only in other columns do not count as members.
func (e *Enumeration) Contains(key any) bool {
	if !indexable(key) {
		return false
	}
	_, ok := e.index[ColumnID][key]
	return ok
}

// Tuples produces, in row order, the (row[colA], row[colB]) pairs for
// every row. It fails with sculpt.ErrNotFound if either column is unknown.
func (e *Enumeration) Tuples(colA, colB string) ([]Pair, error) {
	const op = "enum.Tuples"

	pa, ok := e.colPos[colA]
	if !ok {
		return nil, sculpt.NewNotFoundError(op,
			fmt.Errorf("unknown column %q: %w", colA, sculpt.ErrNotFound))
	}
	pb, ok := e.colPos[colB]
	if !ok {
		return nil, sculpt.NewNotFoundError(op,
			fmt.Errorf("unknown column %q: %w", colB, sculpt.ErrNotFound))
	}

	pairs := make([]Pair, len(e.rows))
	for i, row := range e.rows {
		pairs[i] = Pair{Value: row.At(pa), Label: row.At(pb)}
	}
	return pairs, nil
}

// Choices returns the (value, id) pairs for every row, in row order, as
// expected by model field choice lists. The result is computed once and
// cached; the cached slice must not be modified by callers.
func (e *Enumeration) Choices() []Pair {
	e.choicesOnce.Do(func() {
		// value and id are guaranteed present by construction.
		e.choices, _ = e.Tuples(ColumnValue, ColumnID)
	})
	return e.choices
}

// Labels returns the (value, label) pairs for every row, for use in
// human-readable drop-downs. It requires a "label" column and fails with
// sculpt.ErrNotFound otherwise. The result is computed once and cached.
func (e *Enumeration) Labels() ([]Pair, error) {
	e.labelsOnce.Do(func() {
		e.labels, e.labelsErr = e.Tuples(ColumnValue, ColumnLabel)
	})
	return e.labels, e.labelsErr
}

// Columns returns a copy of the column names in schema order.
func (e *Enumeration) Columns() []string {
	out := make([]string, len(e.columns))
	copy(out, e.columns)
	return out
}

// Len returns the number of rows.
func (e *Enumeration) Len() int {
	return len(e.rows)
}

// Row returns the row at position i, failing with sculpt.ErrNotFound when
// i is out of range.
func (e *Enumeration) Row(i int) (Row, error) {
	if i < 0 || i >= len(e.rows) {
		return Row{}, sculpt.NewNotFoundError("enum.Row",
			fmt.Errorf("row index %d out of range [0, %d): %w", i, len(e.rows), sculpt.ErrNotFound))
	}
	return e.rows[i], nil
}

// All returns an iterator over the rows in construction order. The
// sequence is restartable; ranging over it multiple times yields the same
// rows each time.
func (e *Enumeration) All() iter.Seq[Row] {
	return func(yield func(Row) bool) {
		for _, row := range e.rows {
			if !yield(row) {
				return
			}
		}
	}
}

// Set rejects any attempt to replace a row or cell. Enumerations are
// read-only; the error is returned rather than panicking so the failure
// surfaces through normal error flow.
func (e *Enumeration) Set(key any, row ...any) error {
	return sculpt.NewUnsupportedError("enum.Set",
		fmt.Errorf("enumeration does not support assignment: %w", sculpt.ErrReadOnly))
}

// Delete rejects any attempt to remove a row, by position or by key.
func (e *Enumeration) Delete(key any) error {
	return sculpt.NewUnsupportedError("enum.Delete",
		fmt.Errorf("enumeration does not support deletion: %w", sculpt.ErrReadOnly))
}
