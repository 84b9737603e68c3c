package kernel

import "iter"

// KMP is the Knuth-Morris-Pratt kernel: O(n+m) guaranteed, using the
// needle's prefix-function table to skip re-comparing bytes already known
// to match after a mismatch.
//
// The prefix table is computed once per needle (see BuildPrefixTable) and
// is reused across every row the pattern compiler matches this literal
// against - it never needs to be rebuilt mid-scan.
type KMP struct{}

// NewKMP constructs the KMP kernel. Always available.
func NewKMP() *KMP { return &KMP{} }

func (KMP) Name() string { return "kmp" }

// PrefixTable holds the precomputed KMP failure function for a needle.
//
// Table[i] is the length of the longest proper prefix of needle[0..=i]
// that is also a suffix of needle[0..=i], per spec.md's "KMP table"
// definition.
type PrefixTable []int

// BuildPrefixTable computes the KMP prefix function for needle.
func BuildPrefixTable(needle []byte) PrefixTable {
	m := len(needle)
	table := make(PrefixTable, m)
	if m == 0 {
		return table
	}
	k := 0
	for i := 1; i < m; i++ {
		for k > 0 && needle[k] != needle[i] {
			k = table[k-1]
		}
		if needle[k] == needle[i] {
			k++
		}
		table[i] = k
	}
	return table
}

func (k KMP) FindFirst(haystack, needle []byte, start int) int {
	if result, ok := boundsCheck(haystack, needle, start); ok {
		return result
	}
	table := BuildPrefixTable(needle)
	return kmpSearch(haystack, needle, table, start)
}

func (k KMP) FindAll(haystack, needle []byte, start int) iter.Seq[int] {
	return func(yield func(int) bool) {
		if result, ok := boundsCheck(haystack, needle, start); ok {
			if result >= 0 {
				yield(result)
			}
			return
		}
		table := BuildPrefixTable(needle)
		pos := start
		for {
			p := kmpSearch(haystack, needle, table, pos)
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

// FindFirstWithTable runs a KMP search reusing a prefix table the caller
// already built (the compiled pattern's primary-needle table), avoiding
// recomputation on every row.
func FindFirstWithTable(haystack, needle []byte, table PrefixTable, start int) int {
	if result, ok := boundsCheck(haystack, needle, start); ok {
		return result
	}
	return kmpSearch(haystack, needle, table, start)
}

func kmpSearch(haystack, needle []byte, table PrefixTable, start int) int {
	n, m := len(haystack), len(needle)
	j := 0
	i := start
	for i < n {
		if haystack[i] == needle[j] {
			i++
			j++
			if j == m {
				return i - j
			}
		} else if j > 0 {
			j = table[j-1]
		} else {
			i++
		}
	}
	return -1
}
