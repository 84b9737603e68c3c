package kernel

import "iter"

// Naive is the byte-by-byte substring search kernel: O(n*m) worst case, but
// cache-friendly and branch-predictable for the short literals typical of
// LIKE patterns.
type Naive struct{}

// NewNaive constructs the naive kernel. Always available.
func NewNaive() *Naive { return &Naive{} }

func (Naive) Name() string { return "naive" }

func (Naive) FindFirst(haystack, needle []byte, start int) int {
	if result, ok := boundsCheck(haystack, needle, start); ok {
		return result
	}
	n, m := len(haystack), len(needle)
	for p := start; p+m <= n; p++ {
		if naiveEqualAt(haystack, needle, p) {
			return p
		}
	}
	return -1
}

func (k Naive) FindAll(haystack, needle []byte, start int) iter.Seq[int] {
	return func(yield func(int) bool) {
		if result, ok := boundsCheck(haystack, needle, start); ok {
			if result >= 0 {
				yield(result)
			}
			return
		}
		n, m := len(haystack), len(needle)
		for p := start; p+m <= n; p++ {
			if naiveEqualAt(haystack, needle, p) {
				if !yield(p) {
					return
				}
			}
		}
	}
}

func naiveEqualAt(haystack, needle []byte, p int) bool {
	for i := 0; i < len(needle); i++ {
		if haystack[p+i] != needle[i] {
			return false
		}
	}
	return true
}
