// Package parser provides decoding and extraction helpers for data arriving
// from outside sources.
//
// Outside data is messy: timestamps come as strings, payloads are deeply
// nested with no schema guarantees, and configuration fragments arrive as
// partial maps that must be layered over defaults. The helpers here handle
// those cases with deliberately simple contracts:
//
//   - DecodeJSON / DecodeJSONLines: generic JSON decoding for single
//     objects and newline-delimited streams
//   - DateTime: strict ISO-8601 timestamp parsing
//   - Extract: quiet nested-structure descent that returns nil on any miss
//   - Merge: recursive map merging, second map winning on conflict
//
// Extract is intentionally forgiving — probing a decoded payload for an
// optional deeply-nested field should not require a chain of type
// assertions — while the decode helpers report errors normally.
package parser
