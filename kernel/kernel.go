// Package kernel provides the family of interchangeable substring-search
// kernels used to locate a LIKE pattern's literal runs inside a row.
//
// Every kernel in this package implements the same uniform contract (find
// the first occurrence of a needle at or after a start offset; enumerate
// every occurrence in ascending order) so that the pattern compiler and the
// row evaluator can pick whichever kernel suits a given literal without the
// callers ever branching on which one was chosen. Kernel selection happens
// once, at plan-compile time (see package pattern); the row-evaluation hot
// loop calls through the chosen Kernel value directly, never through a
// dynamic capability lookup per byte compared.
//
// Feature-gated kernels (NaiveSIMD, ShortLUT) are only constructible when
// the running CPU actually has the instruction-set support their names
// imply; see Available. A missing feature never silently downgrades such a
// kernel to a different, slower algorithm under the same name - if the
// feature is absent, the constructor returns (nil, false) and the planner
// must select a different kernel entirely. (ShortLUT does hand needles
// longer than 8 bytes to the naive scan; see ShortLUT.)
package kernel

import "iter"

// Kernel is the uniform substring-search contract every search algorithm in
// this package implements.
//
// Contract (binding on every implementation):
//   - FindFirst returns the smallest offset p >= start such that
//     haystack[p:p+len(needle)] equals needle, or -1 if none exists.
//   - An empty needle matches at start (if 0 <= start <= len(haystack)).
//   - start outside [0, len(haystack)] returns -1 (not -1 for start ==
//     len(haystack) when needle is empty - that case matches at start).
//   - FindAll yields every such offset in ascending order, lazily.
//
// All kernels must agree on FindFirst and FindAll for every (needle,
// haystack) pair; this is a tested property (see kernel_equivalence_test.go).
type Kernel interface {
	// Name identifies the kernel, e.g. "naive", "kmp", "boyer-moore".
	Name() string

	// FindFirst returns the first match offset at or after start, or -1.
	FindFirst(haystack, needle []byte, start int) int

	// FindAll lazily yields every match offset at or after start, ascending.
	FindAll(haystack, needle []byte, start int) iter.Seq[int]
}

// FindLast returns the rightmost match offset at or after start, or -1.
//
// Per the row evaluator's anchored-end back-off rule, the only way to find
// the rightmost occurrence of a literal under a Kernel's ascending-only
// contract is to walk the offsets FindAll produces and keep the last one -
// there is no backtracking or independent reverse algorithm per kernel.
func FindLast(k Kernel, haystack, needle []byte, start int) int {
	last := -1
	for p := range k.FindAll(haystack, needle, start) {
		last = p
	}
	return last
}

// validateStart reports whether start is in range for a FindFirst/FindAll
// call, independent of needle length (spec: out-of-range start is simply
// not-found, never a panic).
func validateStart(haystack []byte, start int) bool {
	return start >= 0 && start <= len(haystack)
}

// boundsCheck centralizes the two universal edge cases every kernel must
// handle identically before running its own algorithm: an out-of-range
// start, and an empty needle (which always "matches" at start). ok is false
// when the caller should run its real search loop instead.
func boundsCheck(haystack, needle []byte, start int) (result int, ok bool) {
	if !validateStart(haystack, start) {
		return -1, true
	}
	if len(needle) == 0 {
		return start, true
	}
	return 0, false
}
