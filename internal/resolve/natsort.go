package resolve

import (
	"sort"
	"strings"
)

// SortNatural sorts items in natural order over key(item): runs of digits are
// compared numerically, other runs case-insensitively, chunk by chunk.
func SortNatural(items []string, key func(string) string) {
	sort.SliceStable(items, func(i, j int) bool {
		return NaturalLess(key(items[i]), key(items[j]))
	})
}

// NaturalLess reports whether a sorts before b in natural order.
func NaturalLess(a, b string) bool {
	ac, bc := chunks(a), chunks(b)
	for i := 0; i < len(ac) && i < len(bc); i++ {
		if c := compareChunks(ac[i], bc[i]); c != 0 {
			return c < 0
		}
	}
	return len(ac) < len(bc)
}

type chunk struct {
	text    string
	numeric bool
}

// chunks splits s into alternating digit and non-digit runs.
func chunks(s string) []chunk {
	var out []chunk
	start := 0
	numeric := false
	for i, r := range s {
		isDigit := r >= '0' && r <= '9'
		if i == 0 {
			numeric = isDigit
			continue
		}
		if isDigit != numeric {
			out = append(out, chunk{text: s[start:i], numeric: numeric})
			start = i
			numeric = isDigit
		}
	}
	if start < len(s) {
		out = append(out, chunk{text: s[start:], numeric: numeric})
	}
	return out
}

func compareChunks(a, b chunk) int {
	if a.numeric && b.numeric {
		return compareNumeric(a.text, b.text)
	}
	return strings.Compare(strings.ToLower(a.text), strings.ToLower(b.text))
}

// compareNumeric compares two digit runs by value without parsing, so runs of
// any length are safe.
func compareNumeric(a, b string) int {
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
