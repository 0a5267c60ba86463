// Package version compares version strings the way humans read them.
//
// Plain lexical comparison gets version ordering wrong as soon as a
// numeric component reaches two digits: "1.10" sorts before "1.2". The
// comparator here walks both strings character by character, but whenever
// both sides sit on a digit it consumes the whole digit run from each and
// compares the runs as integers. Everything else compares as characters,
// and equal-by-algorithm strings fall back to plain lexical order so the
// result is a total order.
//
// This is not semver: there are no release/pre-release rules, and any
// characters are allowed. It only understands ASCII digits 0-9 — don't
// try to do cute things with version numbers.
package version
