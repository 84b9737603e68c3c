// Package simd provides vectorized-style byte-search primitives used by the
// Naive-SIMD and Short-LUT kernels.
//
// The retrieval pack this module is grounded on ships assembly-backed AVX2
// memchr routines gated by golang.org/x/sys/cpu, but the corresponding .s
// files are not part of this module's source tree. Rather than declare
// //go:noescape functions with no body, every primitive here is the portable
// Go SWAR (SIMD Within A Register) fallback the teacher itself documents and
// ships as its non-amd64 path — processing 8 bytes at a time via uint64
// bitwise tricks instead of real vector instructions. Kernel availability
// (see kernel.Available) is still gated on CPU feature flags so the
// planner's choices match what a vector-backed build would offer.
package simd

import (
	"encoding/binary"
	"math/bits"
)

// Memchr returns the index of the first instance of needle in haystack, or
// -1 if needle is not present.
func Memchr(haystack []byte, needle byte) int {
	n := len(haystack)
	if n == 0 {
		return -1
	}

	if n < 8 {
		for i := 0; i < n; i++ {
			if haystack[i] == needle {
				return i
			}
		}
		return -1
	}

	needleMask := uint64(needle) * 0x0101010101010101
	i := 0
	for i+8 <= n {
		chunk := binary.LittleEndian.Uint64(haystack[i:])
		xor := chunk ^ needleMask
		const lo8 = 0x0101010101010101
		const hi8 = 0x8080808080808080
		hasZero := (xor - lo8) & ^xor & hi8
		if hasZero != 0 {
			return i + bits.TrailingZeros64(hasZero)/8
		}
		i += 8
	}
	for i < n {
		if haystack[i] == needle {
			return i
		}
		i++
	}
	return -1
}

// MemchrPair returns the first position where byte1 occurs and byte2 occurs
// offset bytes later, or -1. This lets a search kernel verify two bytes of a
// needle in their correct relative positions far more cheaply than a full
// comparison, the same two-byte-anchor trick the teacher's MemchrPair
// documents for substring prefiltering.
func MemchrPair(haystack []byte, byte1, byte2 byte, offset int) int {
	if offset < 0 || len(haystack) <= offset {
		return -1
	}
	if offset == 0 {
		if byte1 != byte2 {
			return -1
		}
		return Memchr(haystack, byte1)
	}
	limit := len(haystack) - offset
	for i := 0; i < limit; i++ {
		if haystack[i] == byte1 && haystack[i+offset] == byte2 {
			return i
		}
	}
	return -1
}

// Memmem returns the index of the first occurrence of needle in haystack, or
// -1. It combines the rare-byte heuristic from byteFrequencies (via
// SelectRareByte) with Memchr
// scanning: find candidates for the rarest byte in needle, then verify the
// full needle at each candidate.
func Memmem(haystack, needle []byte) int {
	needleLen := len(needle)
	haystackLen := len(haystack)

	if needleLen == 0 {
		return 0
	}
	if haystackLen == 0 || needleLen > haystackLen {
		return -1
	}
	if needleLen == 1 {
		return Memchr(haystack, needle[0])
	}

	rareByte, rareIdx := SelectRareByte(needle)

	searchStart := 0
	for {
		candidate := Memchr(haystack[searchStart:], rareByte)
		if candidate == -1 {
			return -1
		}
		candidate += searchStart

		needleStart := candidate - rareIdx
		if needleStart < 0 || needleStart+needleLen > haystackLen {
			searchStart = candidate + 1
			if searchStart >= haystackLen {
				return -1
			}
			continue
		}

		if bytesEqual(haystack[needleStart:needleStart+needleLen], needle) {
			return needleStart
		}

		searchStart = candidate + 1
		if searchStart >= haystackLen {
			return -1
		}
	}
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
