package enum

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sculpt-web/sculpt"
)

func testStatuses(t *testing.T) *Enumeration {
	t.Helper()
	e, err := New([][]any{
		{0, "FOO"},
		{1, "BAR"},
	})
	require.NoError(t, err)
	return e
}

func testFormats(t *testing.T) *Enumeration {
	t.Helper()
	e, err := New([][]any{
		{0, "FOO", "Foo Label"},
		{1, "BAR", "Bar Label"},
	}, WithColumns("value", "id", "label"))
	require.NoError(t, err)
	return e
}

func TestNew_DefaultColumns(t *testing.T) {
	e := testStatuses(t)

	assert.Equal(t, []string{"value", "id"}, e.Columns())
	assert.Equal(t, 2, e.Len())
}

func TestNew_ConfigurationErrors(t *testing.T) {
	tests := []struct {
		name string
		rows [][]any
		opts []Option
	}{
		{
			name: "duplicate column names",
			rows: [][]any{{0, "FOO"}},
			opts: []Option{WithColumns("value", "value")},
		},
		{
			name: "row wider than schema",
			rows: [][]any{{0, "FOO", "extra"}},
		},
		{
			name: "missing id column",
			rows: [][]any{{0, "FOO"}},
			opts: []Option{WithColumns("value", "name")},
		},
		{
			name: "missing value column",
			rows: [][]any{{0, "FOO"}},
			opts: []Option{WithColumns("id", "label")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := New(tt.rows, tt.opts...)
			assert.Nil(t, e, "no partially-built structure on error")
			assert.ErrorIs(t, err, sculpt.ErrInvalidConfig)
		})
	}
}

func TestMustNew_PanicsOnBadInput(t *testing.T) {
	assert.Panics(t, func() {
		MustNew([][]any{{0, "FOO"}}, WithColumns("value", "value"))
	})
}

func TestGet(t *testing.T) {
	e := testFormats(t)

	row, err := e.Get("id", "FOO")
	require.NoError(t, err)
	assert.Equal(t, 0, row.Value("value"))
	assert.Equal(t, "Foo Label", row.Value("label"))

	row, err = e.Get("label", "Bar Label")
	require.NoError(t, err)
	assert.Equal(t, "BAR", row.Value("id"))

	_, err = e.Get("id", "MISSING")
	assert.ErrorIs(t, err, sculpt.ErrNotFound)

	_, err = e.Get("nope", "FOO")
	assert.ErrorIs(t, err, sculpt.ErrNotFound)
}

func TestGet_UnindexableValuesSkipped(t *testing.T) {
	// The third column holds slices, which cannot be map keys; that
	// column's index is simply empty and lookups miss.
	e, err := New([][]any{
		{0, "FOO", []int{1, 2}},
		{1, "BAR", []int{3, 4}},
	}, WithColumns("value", "id", "tags"))
	require.NoError(t, err)

	_, err = e.Get("tags", []int{1, 2})
	assert.ErrorIs(t, err, sculpt.ErrNotFound)

	// Rows still carry the unindexable payload.
	row, err := e.Get("id", "FOO")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, row.Value("tags"))
}

func TestValueOf(t *testing.T) {
	e := testStatuses(t)

	v, err := e.ValueOf("FOO")
	require.NoError(t, err)
	assert.Equal(t, 0, v)

	_, err = e.ValueOf("MISSING")
	assert.ErrorIs(t, err, sculpt.ErrAttributeNotFound)
	assert.NotErrorIs(t, err, sculpt.ErrNotFound,
		"attribute misses must not look like plain lookup misses")
}

func TestContains(t *testing.T) {
	e := testStatuses(t)

	assert.True(t, e.Contains("FOO"))
	assert.True(t, e.Contains("BAR"))
	assert.False(t, e.Contains("MISSING"))
	assert.False(t, e.Contains(1), "values are not ids")
	assert.False(t, e.Contains([]int{1}), "unindexable keys are never members")
}

func TestChoices(t *testing.T) {
	e := testStatuses(t)

	want := []Pair{
		{Value: 0, Label: "FOO"},
		{Value: 1, Label: "BAR"},
	}
	assert.Equal(t, want, e.Choices())

	// Cached: repeated calls return the same backing slice.
	first := e.Choices()
	second := e.Choices()
	assert.Equal(t, first, second)
	assert.Same(t, &first[0], &second[0])
}

func TestLabels(t *testing.T) {
	e := testFormats(t)

	labels, err := e.Labels()
	require.NoError(t, err)
	want := []Pair{
		{Value: 0, Label: "Foo Label"},
		{Value: 1, Label: "Bar Label"},
	}
	assert.Equal(t, want, labels)
}

func TestLabels_NoLabelColumn(t *testing.T) {
	e := testStatuses(t)

	_, err := e.Labels()
	assert.ErrorIs(t, err, sculpt.ErrNotFound)

	// The error is cached too; a second call reports the same failure.
	_, err = e.Labels()
	assert.ErrorIs(t, err, sculpt.ErrNotFound)
}

func TestTuples(t *testing.T) {
	e := testFormats(t)

	pairs, err := e.Tuples("id", "label")
	require.NoError(t, err)
	want := []Pair{
		{Value: "FOO", Label: "Foo Label"},
		{Value: "BAR", Label: "Bar Label"},
	}
	assert.Equal(t, want, pairs)

	_, err = e.Tuples("id", "nope")
	assert.ErrorIs(t, err, sculpt.ErrNotFound)
}

func TestRowPadding(t *testing.T) {
	e, err := New([][]any{
		{0, "FOO", "Foo Label"},
		{1, "BAR"}, // label padded with nil
	}, WithColumns("value", "id", "label"))
	require.NoError(t, err)

	row, err := e.Get("id", "BAR")
	require.NoError(t, err)

	v, ok := row.Get("label")
	assert.True(t, ok, "padded column is present, not missing")
	assert.Nil(t, v)
	assert.Equal(t, 3, row.Len())

	// Padding is not indexed: no row has label == nil in its input.
	_, err = e.Get("label", nil)
	assert.ErrorIs(t, err, sculpt.ErrNotFound)
}

func TestIteration(t *testing.T) {
	e := testStatuses(t)

	var ids []any
	for row := range e.All() {
		ids = append(ids, row.Value("id"))
	}
	assert.Equal(t, []any{"FOO", "BAR"}, ids)

	// Restartable: a second full pass sees the same rows.
	ids = nil
	for row := range e.All() {
		ids = append(ids, row.Value("id"))
	}
	assert.Equal(t, []any{"FOO", "BAR"}, ids)

	// Early break does not disturb anything.
	for range e.All() {
		break
	}
	assert.Equal(t, 2, e.Len())
}

func TestPositionalAccess(t *testing.T) {
	e := testStatuses(t)

	row, err := e.Row(1)
	require.NoError(t, err)
	assert.Equal(t, 1, row.At(0))
	assert.Equal(t, "BAR", row.At(1))

	_, err = e.Row(2)
	assert.ErrorIs(t, err, sculpt.ErrNotFound)
	_, err = e.Row(-1)
	assert.ErrorIs(t, err, sculpt.ErrNotFound)
}

func TestMutationRejected(t *testing.T) {
	e := testStatuses(t)

	err := e.Set(0, 2, "BAZ")
	assert.ErrorIs(t, err, sculpt.ErrReadOnly)

	err = e.Set("FOO", 2)
	assert.ErrorIs(t, err, sculpt.ErrReadOnly)

	err = e.Delete("FOO")
	assert.ErrorIs(t, err, sculpt.ErrReadOnly)

	err = e.Delete(0)
	assert.ErrorIs(t, err, sculpt.ErrReadOnly)

	var serr *sculpt.Error
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, sculpt.KindUnsupported, serr.Kind)

	// Observable state unchanged after rejected mutations.
	assert.Equal(t, 2, e.Len())
	v, err := e.ValueOf("FOO")
	require.NoError(t, err)
	assert.Equal(t, 0, v)
}

func TestRowMap(t *testing.T) {
	e := testFormats(t)

	row, err := e.Get("id", "FOO")
	require.NoError(t, err)

	m := row.Map()
	assert.Equal(t, map[string]any{"value": 0, "id": "FOO", "label": "Foo Label"}, m)

	// The map is a copy; mutating it does not leak into the row.
	m["value"] = 99
	assert.Equal(t, 0, row.Value("value"))
}

func TestConcurrentReads(t *testing.T) {
	e := testFormats(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = e.Choices()
			_, _ = e.Labels()
			_, _ = e.Get("id", "FOO")
			_ = e.Contains("BAR")
		}()
	}
	wg.Wait()

	assert.Equal(t, 2, len(e.Choices()))
}
