//go:build arm64

package kernel

import "golang.org/x/sys/cpu"

// hasShortLUTFeature records whether the running CPU supports the instruction set
// Short-LUT's shuffle-based table lookup requires (NEON/ASIMD on arm64).
var hasShortLUTFeature = cpu.ARM64.HasASIMD

// hasNaiveSIMDFeature gates Naive-SIMD the same way: its broadcast-compare
// scan needs the same vector feature as Short-LUT (NEON/ASIMD on arm64).
var hasNaiveSIMDFeature = cpu.ARM64.HasASIMD

// Available reports whether ShortLUT may be constructed on this CPU.
func Available() bool { return hasShortLUTFeature }

// NaiveSIMDAvailable reports whether NaiveSIMD may be constructed on this CPU.
func NaiveSIMDAvailable() bool { return hasNaiveSIMDFeature }
