// Package sculpt provides shared helper types for the Sculpt web framework.
//
// The library is a small collection of building blocks that Sculpt
// applications lean on constantly but that do not belong to any one app:
// enumerated record sets usable as model field choices, parsing and merging
// helpers for data arriving from outside sources, version string comparison,
// slug generation, and an initializer registry for packages that need to run
// setup code in a predictable order.
//
// # Packages
//
//   - enum: immutable indexed record sets ("enumerations") with
//     attribute-style lookup and choice/label pair generation
//   - parser: JSON decoding, ISO datetime parsing, nested-structure
//     extraction, and recursive map merging
//   - version: digit-run-aware version string comparison
//   - slug: URL slug generation
//   - autoload: named initializer registration and ordered execution
//
// # Error Handling
//
// This root package defines the sentinel errors and the structured Error
// type shared by all subpackages. Callers are expected to test failures
// with errors.Is against the sentinels:
//
//	row, err := states.Get("id", "ACTIVE")
//	if errors.Is(err, sculpt.ErrNotFound) {
//		// no such entry
//	}
//
// All helpers here are pure in-memory logic with no transient failure
// modes; errors propagate to the immediate caller and there is no internal
// retry or recovery.
package sculpt
