package version

import "testing"

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{name: "simple minor bump", a: "1.1", b: "1.2", want: -1},
		{name: "two-digit beats one-digit", a: "1.2", b: "1.10", want: -1},
		{name: "suffix letters compare as characters", a: "1.2a", b: "1.2q", want: -1},
		{name: "digit runs compare numerically", a: "1.1.15", b: "1.2.9", want: -1},
		{name: "run length does not decide alone", a: "1.103b", b: "1.1011c", want: -1},
		{name: "letters after equal numbers", a: "1.1.b", b: "1.01.c", want: -1},
		{name: "lexical tie-break on leading zeros", a: "1.01", b: "1.1", want: -1},
		{name: "identical", a: "2.4.1", b: "2.4.1", want: 0},
		{name: "greater than", a: "10.0", b: "9.9", want: 1},
		{name: "prefix is smaller", a: "1.2", b: "1.2.1", want: -1},
		{name: "empty sorts first", a: "", b: "0.0.1", want: -1},
		{name: "both empty", a: "", b: "", want: 0},
		{name: "huge runs compare without overflow", a: "1.184467440737095516160", b: "1.184467440737095516161", want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.want {
				t.Errorf("Compare(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
			// Antisymmetry: swapping the arguments flips the sign.
			if got := Compare(tt.b, tt.a); got != -tt.want {
				t.Errorf("Compare(%q, %q) = %d, want %d", tt.b, tt.a, got, -tt.want)
			}
		})
	}
}
