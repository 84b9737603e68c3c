package kernel

import (
	"iter"

	"github.com/TriedAngle/likey/internal/simd"
)

// NaiveSIMD is the vector-first-byte-filter kernel: it scans for candidate
// positions using a SIMD-style (SWAR-accelerated, see package simd) first-
// byte/rare-byte search and verifies each candidate with a scalar compare.
// It wins over plain Naive on long haystacks because most of the scan never
// touches the needle-length comparison at all.
type NaiveSIMD struct{}

// NewNaiveSIMD constructs the Naive-SIMD kernel if the running CPU
// supports the vector feature its broadcast-compare scan requires (SSSE3
// on amd64, NEON on arm64). Returns (nil, false) otherwise - like
// ShortLUT, this kernel must either be fully present with its contract or
// absent from the planner, never silently downgraded to a different
// algorithm under the same name.
func NewNaiveSIMD() (*NaiveSIMD, bool) {
	if !NaiveSIMDAvailable() {
		return nil, false
	}
	return &NaiveSIMD{}, true
}

func (NaiveSIMD) Name() string { return "naive-simd" }

func (NaiveSIMD) FindFirst(haystack, needle []byte, start int) int {
	if result, ok := boundsCheck(haystack, needle, start); ok {
		return result
	}
	p := simd.Memmem(haystack[start:], needle)
	if p == -1 {
		return -1
	}
	return start + p
}

func (k NaiveSIMD) FindAll(haystack, needle []byte, start int) iter.Seq[int] {
	return func(yield func(int) bool) {
		if result, ok := boundsCheck(haystack, needle, start); ok {
			if result >= 0 {
				yield(result)
			}
			return
		}
		pos := start
		for {
			p := k.FindFirst(haystack, needle, pos)
			if p == -1 {
				return
			}
			if !yield(p) {
				return
			}
			pos = p + 1
		}
	}
}
