// Package likey accelerates SQL-style LIKE predicate evaluation over large
// immutable text corpora.
//
// A LIKE source string is compiled once into a Plan and then reused across
// every row, or against a corpus-wide index: '%' matches any byte sequence
// including empty, '_' matches exactly one byte, and every other byte is
// literal. There is no escape syntax and no case folding.
//
// Basic usage:
//
//	plan := likey.Compile([]byte("app%"))
//	if likey.MatchRow(plan, []byte("application")) {
//	    fmt.Println("matched!")
//	}
//
// Against a loaded dataset, with or without prebuilt accelerator indexes:
//
//	ds := likey.NewDataset(corpusBytes, rowOffsets, nil, nil, dataset.DefaultConfig())
//	rowIDs := likey.Scan(plan, ds)
package likey

import (
	"github.com/TriedAngle/likey/dataset"
	"github.com/TriedAngle/likey/eval"
	"github.com/TriedAngle/likey/index/fmindex"
	"github.com/TriedAngle/likey/index/trigram"
	"github.com/TriedAngle/likey/pattern"
)

// Plan is a compiled LIKE pattern, reusable across every row or scan.
type Plan = pattern.Plan

// Dataset is a loaded corpus plus whichever accelerator indexes were built
// over it.
type Dataset = dataset.Dataset

// Compile lowers a LIKE source string into a Plan. Compilation is
// infallible: every byte sequence is a legal pattern (spec.md §4.1).
func Compile(src []byte) *Plan {
	return pattern.Compile(src)
}

// MatchRow reports whether row satisfies plan. Pure function of (plan, row).
func MatchRow(plan *Plan, row []byte) bool {
	return eval.MatchRow(plan, row)
}

// NewDataset wraps a corpus with optional prebuilt FM-index and trigram
// index. Either index may be nil.
func NewDataset(corpusBytes []byte, rowOffsets []int, fm *fmindex.Index, tg *trigram.Index, config dataset.Config) *Dataset {
	return dataset.New(corpusBytes, rowOffsets, fm, tg, config)
}

// Scan evaluates plan against every row of ds and returns matching row IDs
// in ascending order, using whichever accelerator index (if any) applies.
func Scan(plan *Plan, ds *Dataset) []int {
	return ds.Scan(plan)
}
