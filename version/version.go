package version

import "strings"

// Compare returns -1, 0, or 1 ordering version strings a and b.
//
// Comparison proceeds character by character, except that when both sides
// sit on a digit the full consecutive digit run is taken from each and the
// two runs are compared as integers. Therefore:
//
//	1.1     < 1.2
//	1.2     < 1.10
//	1.2a    < 1.2q
//	1.1.15  < 1.2.9
//	1.103b  < 1.1011c    (103 < 1011)
//	1.1.b   < 1.01.c     (b < c)
//	1.01    < 1.1        (lexical compare if no difference)
//
// When the walk finds no difference, plain lexical comparison decides, so
// distinct strings never compare equal.
func Compare(a, b string) int {
	posA, posB := 0, 0
	for posA < len(a) && posB < len(b) {
		if isDigit(a[posA]) && isDigit(b[posB]) {
			runA := digitRun(a, posA)
			runB := digitRun(b, posB)
			if r := compareRuns(runA, runB); r != 0 {
				return r
			}
			posA += len(runA)
			posB += len(runB)
			continue
		}

		if a[posA] != b[posB] {
			if a[posA] < b[posB] {
				return -1
			}
			return 1
		}
		posA++
		posB++
	}

	// No differences found above; fall back to plain string ordering.
	return strings.Compare(a, b)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// digitRun returns the maximal run of consecutive digits starting at pos.
func digitRun(s string, pos int) string {
	end := pos
	for end < len(s) && isDigit(s[end]) {
		end++
	}
	return s[pos:end]
}

// compareRuns orders two digit runs by integer value. Leading zeros are
// stripped rather than converting, so arbitrarily long runs cannot
// overflow.
func compareRuns(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}
