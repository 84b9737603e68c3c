//go:build amd64

package kernel

import "golang.org/x/sys/cpu"

// hasShortLUTFeature records whether the running CPU supports the instruction set
// Short-LUT's shuffle-based table lookup requires (SSSE3 on amd64). Checked
// once at package init, per the spec's "feature-gate at build time; do not
// attempt runtime feature detection inside the hot path" rule - this flag
// is read, never recomputed, by every ShortLUT construction.
var hasShortLUTFeature = cpu.X86.HasSSSE3

// hasNaiveSIMDFeature gates Naive-SIMD the same way: its broadcast-compare
// scan is a vector operation too (SSSE3 on amd64), not a portable one, so
// it needs the same build-time CPU-feature check as Short-LUT.
var hasNaiveSIMDFeature = cpu.X86.HasSSSE3

// Available reports whether ShortLUT may be constructed on this CPU.
func Available() bool { return hasShortLUTFeature }

// NaiveSIMDAvailable reports whether NaiveSIMD may be constructed on this CPU.
func NaiveSIMDAvailable() bool { return hasNaiveSIMDFeature }
