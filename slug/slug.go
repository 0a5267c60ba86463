// Package slug generates URL slugs.
//
// It defers to gosimple/slug for transliteration and character handling,
// with one local fix: path separators become hyphens instead of being
// dropped, so "a/b testing" slugs to "a-b-testing" rather than
// "ab-testing".
package slug

import (
	"strings"

	gslug "github.com/gosimple/slug"
)

// Make returns a URL-safe slug for s. Slashes are replaced with hyphens
// before slugification so path-like titles keep their word boundaries.
func Make(s string) string {
	return gslug.Make(strings.ReplaceAll(s, "/", "-"))
}

// IsSlug reports whether s already is a valid slug.
func IsSlug(s string) bool {
	return gslug.IsSlug(s)
}
