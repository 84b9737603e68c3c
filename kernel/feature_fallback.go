//go:build !amd64 && !arm64

package kernel

// Available reports whether ShortLUT may be constructed on this CPU.
// On architectures without an x/sys/cpu SSSE3/NEON probe, the feature is
// never reported available: the planner falls back to KMP/Boyer-Moore
// instead of guessing.
func Available() bool { return false }

// NaiveSIMDAvailable reports whether NaiveSIMD may be constructed on this
// CPU. Same reasoning as Available: no probe, so never offered.
func NaiveSIMDAvailable() bool { return false }
