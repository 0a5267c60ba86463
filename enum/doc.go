// Package enum provides immutable indexed record sets for enumerated values.
//
// An Enumeration is an ordered collection of fixed-width rows defined
// statically in code, addressable by position, by any indexed column value,
// and by its unique "id" label. It is the bridge between readable constants
// in code and the (value, label) pair lists that model field choices and
// form drop-downs expect.
//
// # Usage
//
// Declare an enumeration as a package-level constant:
//
//	var Statuses = enum.MustNew([][]any{
//	    {0, "DRAFT"},
//	    {1, "PUBLISHED"},
//	})
//
//	Statuses.Choices()             // [(0, DRAFT), (1, PUBLISHED)]
//	Statuses.ValueOf("DRAFT")      // 0, nil
//	Statuses.Contains("PUBLISHED") // true
//
// Additional columns turn an enumeration into a miniature record set whose
// rows are defined by code rather than a database:
//
//	var Formats = enum.MustNew([][]any{
//	    {0, "PDF", "PDF document"},
//	    {1, "CSV", "Comma-separated values"},
//	}, enum.WithColumns("value", "id", "label"))
//
//	Formats.Labels()                     // [(0, PDF document), (1, Comma-separated values)]
//	row, _ := Formats.Get("label", "PDF document")
//	row.Value("id")                      // "PDF"
//
// # Immutability
//
// Enumerations are read-only by design: this data is supposed to be static.
// Set and Delete exist only to fail with sculpt.ErrReadOnly. If you find
// yourself wanting to modify an enumeration's rows at run time, you want a
// different data structure.
//
// Because the structure never changes after construction, it may be shared
// freely across goroutines without locking. The cached Choices and Labels
// extractions are guarded by sync.Once for concurrent first access.
//
// # Indexing
//
// Each column gets a reverse index from cell value to row position, built
// once at construction. Values whose dynamic type is not comparable (slices,
// maps, funcs) are filtered out of that column's index; looking such a value
// up later reports "not found" rather than erroring. This is a deliberate
// lenient policy: a column of helper structs is still perfectly usable as
// row payload, it just cannot be used as a lookup key.
package enum
