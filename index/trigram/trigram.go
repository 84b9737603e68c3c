// Package trigram builds an inverted index from every 3-byte gram present
// in a corpus to the sorted list of row IDs containing it, per spec.md
// §3/§4.2's trigram index component.
//
// Trigram extraction follows the direct byte-shift packing the retrieval
// pack's trigram reference uses for its ASCII fast path (three bytes packed
// into one uint32 key); this index drops that reference's fuzzy-threshold
// candidate scoring and mutable per-file update/invalidation machinery,
// since spec.md's corpus is built once and queried with an exact AND-
// intersection of every literal's trigrams, not a best-effort file ranker.
package trigram

import "github.com/TriedAngle/likey/index"

// Config tunes construction. The only current knob is a postings-list
// capacity hint; see DefaultConfig.
type Config struct {
	// ExpectedRowsPerGram seeds posting-list slice capacity to reduce
	// reallocation while streaming the corpus once at build time.
	ExpectedRowsPerGram int
}

// DefaultConfig returns this module's construction defaults.
func DefaultConfig() Config {
	return Config{ExpectedRowsPerGram: 4}
}

// pack encodes 3 consecutive bytes into a single lookup key, identical to
// the reference's ASCII trigram hash.
func pack(a, b, c byte) uint32 {
	return uint32(a)<<16 | uint32(b)<<8 | uint32(c)
}

// Index is an immutable trigram postings index over one corpus.
type Index struct {
	postings map[uint32][]int32
}

// Build streams rows once, recording for every 3-byte gram the sorted,
// deduplicated set of row IDs it appears in.
func Build(rows [][]byte, cfg Config) (*Index, *index.BuildError) {
	postings := make(map[uint32][]int32)
	capHint := cfg.ExpectedRowsPerGram
	if capHint <= 0 {
		capHint = 1
	}

	for rowID, row := range rows {
		if len(row) < 3 {
			continue
		}
		seen := make(map[uint32]bool)
		for i := 0; i+3 <= len(row); i++ {
			key := pack(row[i], row[i+1], row[i+2])
			if seen[key] {
				continue
			}
			seen[key] = true
			list, ok := postings[key]
			if !ok {
				list = make([]int32, 0, capHint)
			}
			postings[key] = append(list, int32(rowID))
		}
	}

	return &Index{postings: postings}, nil
}

// Grams returns the 3-byte gram at every offset of literal, in order; a gram
// that occurs more than once in literal is returned more than once. literal must have length >= 3; callers check this
// before calling (a literal shorter than 3 bytes is not trigram-queryable,
// per spec.md §4.2's "otherwise trigram is inapplicable").
func Grams(literal []byte) []uint32 {
	if len(literal) < 3 {
		return nil
	}
	grams := make([]uint32, 0, len(literal)-2)
	for i := 0; i+3 <= len(literal); i++ {
		grams = append(grams, pack(literal[i], literal[i+1], literal[i+2]))
	}
	return grams
}

// Candidates returns the sorted row IDs that could contain literal: the
// k-way sorted-merge intersection of every one of its trigrams' posting
// lists. An empty (non-nil) result means no row has all of literal's
// trigrams (including when one of them is not indexed at all); nil means
// literal is too short to have any grams.
func (idx *Index) Candidates(literal []byte) []int {
	grams := Grams(literal)
	if len(grams) == 0 {
		return nil
	}

	lists := make([][]int32, 0, len(grams))
	for _, g := range grams {
		list, ok := idx.postings[g]
		if !ok {
			return []int{}
		}
		lists = append(lists, list)
	}

	result := intersectSorted(lists)
	out := make([]int, len(result))
	for i, v := range result {
		out[i] = int(v)
	}
	return out
}

// intersectSorted computes the intersection of N already-sorted,
// deduplicated int32 slices via a k-way sorted merge: advance every
// cursor in lockstep, and only emit a value once every list's cursor
// agrees on it.
func intersectSorted(lists [][]int32) []int32 {
	if len(lists) == 0 {
		return nil
	}
	cursors := make([]int, len(lists))
	var out []int32

	for {
		maxVal := int32(-1)
		for i, list := range lists {
			if cursors[i] >= len(list) {
				return out
			}
			if list[cursors[i]] > maxVal {
				maxVal = list[cursors[i]]
			}
		}

		allMatch := true
		for i, list := range lists {
			for cursors[i] < len(list) && list[cursors[i]] < maxVal {
				cursors[i]++
			}
			if cursors[i] >= len(list) {
				return out
			}
			if list[cursors[i]] != maxVal {
				allMatch = false
			}
		}

		if allMatch {
			out = append(out, maxVal)
			for i := range lists {
				cursors[i]++
			}
		}
	}
}
