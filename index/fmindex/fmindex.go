// Package fmindex builds a Burrows-Wheeler-transform self-index over a
// corpus's concatenated bytes and answers exact-substring backward-search
// queries against it, per spec.md §3/§4.2's FM-index component.
//
// The construction mirrors the suffix-sorting approach the retrieval pack's
// BWT reference builds (sort full rotations, read the BWT off the sorted
// order's last column), generalized from a single sequence to a corpus of
// many rows stored back to back with one terminator after the last row
// (rows are not separated from each other, so an occurrence may span a row
// boundary; it is attributed to the row it starts in), and replacing its full
// suffix array and skip-list-only first column with the sampled
// occurrence-checkpoint / SA-sample scheme spec.md's data model calls for.
package fmindex

import (
	"bytes"
	"sort"

	"github.com/TriedAngle/likey/index"
	"github.com/TriedAngle/likey/internal/conv"
)

// terminator is appended once to the end of the concatenated corpus before
// building the index. It must not appear anywhere in row data; Build
// reports index.UnsupportedFeature if it does, since a byte value that
// isn't actually the smallest possible byte would break backward search's
// assumption that the terminator sorts first.
const terminator = 0x00

// Config tunes the index's space/time tradeoff. Both sampling intervals
// are tuning knobs spec.md explicitly leaves unprescribed (§9 "Open
// questions"); the defaults below are this module's own decision, recorded
// in DESIGN.md.
type Config struct {
	// OccSampleInterval is how often (in BWT positions) a full occurrence
	// checkpoint is stored; ranks between checkpoints are recovered by a
	// short linear scan.
	OccSampleInterval int
	// SASampleInterval is how often (in sorted-suffix positions) the
	// actual suffix-array value is stored; positions between samples are
	// resolved by walking the LF-mapping until a sampled position is hit.
	SASampleInterval int
}

// DefaultConfig returns the sampling intervals this module uses when the
// caller doesn't need to tune them. Occurrence rank recovery scans at most
// OccSampleInterval-1 BWT bytes past a checkpoint. SA resolution walks the
// LF-mapping until it reaches a sampled sorted-suffix position; samples are
// taken by sorted position rather than by corpus offset, so the length of
// that walk is not bounded by SASampleInterval.
func DefaultConfig() Config {
	return Config{
		OccSampleInterval: 32,
		SASampleInterval:  16,
	}
}

// Index is an immutable FM-index over one corpus. Build it once; every
// read operation (Search, ResolveRow) is safe to call concurrently since
// nothing here mutates after construction (spec.md §5).
type Index struct {
	bwt []byte
	n   int

	// c[b] is the number of bytes in the corpus (with terminator) strictly
	// less than b - the start offset of b's block in the sorted first
	// column.
	c [256]int

	occInterval    int
	occCheckpoints [][256]int32
	saInterval     int
	saSamples      map[int]int32
	rowStarts      []int
}

// Build constructs an FM-index over corpusBytes, a single contiguous byte
// region holding every row back to back, and rowOffsets, the monotonically
// increasing row-start offsets into it (row i occupies
// [rowOffsets[i], rowOffsets[i+1]), with an implicit final entry at
// len(corpusBytes)).
func Build(corpusBytes []byte, rowOffsets []int, cfg Config) (*Index, *index.BuildError) {
	if bytes.IndexByte(corpusBytes, terminator) != -1 {
		return nil, &index.BuildError{
			Kind:    index.UnsupportedFeature,
			Message: "corpus contains the FM-index terminator byte",
		}
	}

	text := make([]byte, len(corpusBytes)+1)
	copy(text, corpusBytes)
	text[len(corpusBytes)] = terminator
	n := len(text)

	sa := make([]int, n)
	for i := range sa {
		sa[i] = i
	}
	sort.Slice(sa, func(i, j int) bool {
		return bytes.Compare(text[sa[i]:], text[sa[j]:]) < 0
	})

	bwt := make([]byte, n)
	for i, pos := range sa {
		if pos == 0 {
			bwt[i] = terminator
		} else {
			bwt[i] = text[pos-1]
		}
	}

	var c [256]int
	for _, b := range text {
		c[b]++
	}
	running := 0
	for b := 0; b < 256; b++ {
		count := c[b]
		c[b] = running
		running += count
	}

	occInterval := cfg.OccSampleInterval
	if occInterval <= 0 {
		occInterval = 1
	}
	numCheckpoints := n/occInterval + 1
	occCheckpoints := make([][256]int32, numCheckpoints)
	var running256 [256]int32
	for i := 0; i < n; i++ {
		if i%occInterval == 0 {
			occCheckpoints[i/occInterval] = running256
		}
		running256[bwt[i]]++
	}
	if n%occInterval == 0 {
		occCheckpoints[n/occInterval] = running256
	}

	saInterval := cfg.SASampleInterval
	if saInterval <= 0 {
		saInterval = 1
	}
	saSamples := make(map[int]int32)
	for i, pos := range sa {
		if i%saInterval == 0 {
			saSamples[i] = conv.IntToInt32(pos)
		}
	}

	rowStarts := make([]int, len(rowOffsets))
	copy(rowStarts, rowOffsets)

	return &Index{
		bwt:            bwt,
		n:              n,
		c:              c,
		occInterval:    occInterval,
		occCheckpoints: occCheckpoints,
		saInterval:     saInterval,
		saSamples:      saSamples,
		rowStarts:      rowStarts,
	}, nil
}

// occ returns the number of occurrences of byte b in bwt[0:pos].
func (idx *Index) occ(b byte, pos int) int {
	checkpoint := pos / idx.occInterval
	count := int(idx.occCheckpoints[checkpoint][b])
	for i := checkpoint * idx.occInterval; i < pos; i++ {
		if idx.bwt[i] == b {
			count++
		}
	}
	return count
}

// Search runs backward search for literal and returns the half-open
// SA-interval [lo, hi) of suffixes beginning with it. An empty interval
// (lo == hi) means literal does not occur in the corpus.
func (idx *Index) Search(literal []byte) (lo, hi int) {
	lo, hi = 0, idx.n
	for i := len(literal) - 1; i >= 0; i-- {
		if lo >= hi {
			return 0, 0
		}
		b := literal[i]
		lo = idx.c[b] + idx.occ(b, lo)
		hi = idx.c[b] + idx.occ(b, hi)
	}
	return lo, hi
}

// resolveOffset maps a sorted-suffix-array position to its corpus offset,
// walking the LF-mapping from the nearest sampled position.
func (idx *Index) resolveOffset(saPos int) int {
	steps := 0
	pos := saPos
	for {
		if sample, ok := idx.saSamples[pos]; ok {
			return (int(sample) + steps) % idx.n
		}
		b := idx.bwt[pos]
		pos = idx.c[b] + idx.occ(b, pos)
		steps++
	}
}

// ResolveRow maps a suffix-array position to the row ID that offset falls
// within. A pure binary search over rowStarts - Index has no mutable
// per-call state, so concurrent callers (including parallel scans across
// disjoint row ranges, spec.md §5) never race on it.
func (idx *Index) ResolveRow(saPos int) int {
	offset := idx.resolveOffset(saPos)
	return idx.offsetToRow(offset)
}

func (idx *Index) offsetToRow(offset int) int {
	row := sort.Search(len(idx.rowStarts), func(i int) bool {
		return idx.rowStarts[i] > offset
	}) - 1
	if row < 0 {
		row = 0
	}
	return row
}

// RowCount returns the number of rows in the corpus the index was built over.
func (idx *Index) RowCount() int {
	return len(idx.rowStarts)
}
