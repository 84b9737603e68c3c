// Package dataset implements the dataset-level driver: given a corpus and a
// compiled LIKE plan, chooses between row-wise scanning and index-
// accelerated lookup and emits matching row IDs in ascending order, per
// spec.md §4.4.
//
// The driver coordinates three independent collaborators (row evaluator,
// FM-index, trigram index) the way the teacher's meta.Engine coordinates
// its three regex engines: strategy selection happens once per query,
// based on what indexes are present and what the plan's longest literal
// looks like, and the chosen strategy never falls back mid-scan - only at
// selection time.
package dataset

import (
	"sort"

	"github.com/TriedAngle/likey/eval"
	"github.com/TriedAngle/likey/index/fmindex"
	"github.com/TriedAngle/likey/index/trigram"
	"github.com/TriedAngle/likey/pattern"
)

// Config controls driver strategy selection, mirroring the teacher's
// meta.Config shape (a plain struct with a DefaultConfig constructor; see
// SPEC_FULL.md §6).
type Config struct {
	// FMIndexMinLiteralLen is the shortest longest-literal length for
	// which the driver will prefer the FM-index over row-wise scanning.
	FMIndexMinLiteralLen int
	// TrigramMinLiteralLen is the shortest longest-literal length for
	// which the driver will prefer the trigram index. Trigrams need at
	// least 3 bytes to form a single gram, so this cannot go below 3.
	TrigramMinLiteralLen int
}

// DefaultConfig returns the driver's default strategy thresholds.
func DefaultConfig() Config {
	return Config{
		FMIndexMinLiteralLen: 4,
		TrigramMinLiteralLen: 3,
	}
}

// Dataset is a loaded corpus plus whichever accelerator indexes were built
// over it. All fields are immutable after construction and safe to share
// across concurrent queries (spec.md §5).
type Dataset struct {
	corpusBytes []byte
	rowOffsets  []int
	fm          *fmindex.Index
	tg          *trigram.Index
	config      Config
}

// New wraps a corpus with optional prebuilt indexes. Either index may be
// nil, in which case the driver falls back to the next strategy down to
// row-wise scanning.
func New(corpusBytes []byte, rowOffsets []int, fm *fmindex.Index, tg *trigram.Index, config Config) *Dataset {
	return &Dataset{
		corpusBytes: corpusBytes,
		rowOffsets:  rowOffsets,
		fm:          fm,
		tg:          tg,
		config:      config,
	}
}

// RowCount returns the number of rows in the dataset.
func (d *Dataset) RowCount() int {
	return len(d.rowOffsets)
}

// Row returns the byte slice for row i.
func (d *Dataset) Row(i int) []byte {
	start := d.rowOffsets[i]
	end := len(d.corpusBytes)
	if i+1 < len(d.rowOffsets) {
		end = d.rowOffsets[i+1]
	}
	return d.corpusBytes[start:end]
}

// Scan evaluates plan against every row of the dataset and returns matching
// row IDs in ascending order, choosing the fastest available strategy.
func (d *Dataset) Scan(plan *pattern.Plan) []int {
	switch d.chooseStrategy(plan) {
	case strategyFMIndex:
		return d.scanFMIndex(plan)
	case strategyTrigram:
		return d.scanTrigram(plan)
	default:
		return d.scanRows(plan)
	}
}

type strategy int

const (
	strategyRowScan strategy = iota
	strategyFMIndex
	strategyTrigram
)

func (d *Dataset) chooseStrategy(plan *pattern.Plan) strategy {
	longest := plan.PrimaryTokenIndex
	longestLen := 0
	if longest >= 0 {
		longestLen = len(plan.Tokens[longest].Bytes)
	}

	if d.fm != nil && longestLen >= d.config.FMIndexMinLiteralLen {
		return strategyFMIndex
	}
	if d.tg != nil && longestLen >= 3 && longestLen >= d.config.TrigramMinLiteralLen {
		return strategyTrigram
	}
	return strategyRowScan
}

// scanRows is the fallback strategy: iterate every row in order and call
// the row evaluator.
func (d *Dataset) scanRows(plan *pattern.Plan) []int {
	var matches []int
	for i := 0; i < len(d.rowOffsets); i++ {
		if eval.MatchRow(plan, d.Row(i)) {
			matches = append(matches, i)
		}
	}
	return matches
}

// scanFMIndex backward-searches the FM-index for the plan's longest
// literal, resolves the SA interval to candidate rows, verifies each
// candidate against the full plan, and suppresses duplicate row IDs
// (several SA positions can resolve to the same row).
func (d *Dataset) scanFMIndex(plan *pattern.Plan) []int {
	literal := plan.Tokens[plan.PrimaryTokenIndex].Bytes
	lo, hi := d.fm.Search(literal)
	if lo >= hi {
		return nil
	}

	seen := make(map[int]bool, hi-lo)
	var candidates []int
	for saPos := lo; saPos < hi; saPos++ {
		row := d.fm.ResolveRow(saPos)
		if !seen[row] {
			seen[row] = true
			candidates = append(candidates, row)
		}
	}
	sort.Ints(candidates)

	var matches []int
	for _, row := range candidates {
		if eval.MatchRow(plan, d.Row(row)) {
			matches = append(matches, row)
		}
	}
	return matches
}

// scanTrigram intersects the posting lists of every trigram in the plan's
// longest literal and verifies the surviving rows.
func (d *Dataset) scanTrigram(plan *pattern.Plan) []int {
	literal := plan.Tokens[plan.PrimaryTokenIndex].Bytes
	candidates := d.tg.Candidates(literal)

	var matches []int
	for _, row := range candidates {
		if eval.MatchRow(plan, d.Row(row)) {
			matches = append(matches, row)
		}
	}
	return matches
}
