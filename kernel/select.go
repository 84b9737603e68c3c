package kernel

import "github.com/TriedAngle/likey/internal/simd"

// Hints summarizes the properties the pattern compiler computes about a
// literal, used to pick a primary search kernel for it (spec.md's "Kernel
// hints: total literal length, longest literal, alphabet popcount").
type Hints struct {
	Len              int
	AlphabetPopcount int
}

// ComputeHints derives selection hints for a literal.
func ComputeHints(literal []byte) Hints {
	return Hints{
		Len:              len(literal),
		AlphabetPopcount: simd.AlphabetPopcount(literal),
	}
}

// Select picks the primary kernel for a literal given its hints, following
// spec.md §4.1 rule 5 ("Select primary kernel") and the package doc's
// dispatch-once-at-compile-time design:
//
//   - an empty needle gets Naive;
//   - needles <= 8 bytes prefer Short-LUT when the CPU feature is present;
//   - needles of 4 or more bytes with a dense alphabet (at least len/2+1
//     distinct bytes, so rare-byte anchoring pays off) prefer Naive-SIMD
//     when its CPU feature is present;
//   - remaining needles of 6 or more bytes use Boyer-Moore;
//   - everything shorter falls back to KMP, which guarantees O(n+m) with no
//     CPU-feature dependency.
func Select(hints Hints) Kernel {
	if hints.Len == 0 {
		return NewNaive()
	}
	if hints.Len <= 8 {
		if lut, ok := NewShortLUT(hints.Len); ok {
			return lut
		}
	}
	if hints.AlphabetPopcount >= hints.Len/2+1 && hints.Len >= 4 {
		if k, ok := NewNaiveSIMD(); ok {
			return k
		}
	}
	if hints.Len >= 6 {
		return NewBoyerMoore()
	}
	return NewKMP()
}
