package pattern

import (
	"github.com/TriedAngle/likey/kernel"
)

// Plan is an immutable compiled LIKE pattern (spec.md §3's "Compiled
// pattern"). A Plan is built once by Compile and then reused across every
// row or against a corpus-wide index. Its precomputed tables cover the
// primary literal only: a search for any other literal builds the kernel's
// tables per call, and a plan with a MultiLiteral automaton groups each
// row's occurrences into a fresh map, so evaluation can allocate.
type Plan struct {
	Anchor AnchorMode
	Tokens []Token

	// TotalLiteralLen is the sum of every Literal token's length. The row
	// evaluator's O(1) length-bound fast path (spec.md §8 "Length bound")
	// uses MinRowLen, which also counts every OneGap's Width and every
	// FreeGap's MinSkip.
	TotalLiteralLen int
	// MinRowLen is the minimum row length any row must have to possibly
	// match: the sum of every Literal length, OneGap width, and FreeGap
	// MinSkip.
	MinRowLen int

	// PrimaryKernel is the search kernel chosen once for the whole plan
	// (spec.md §4.1 rule 5) and reused for every literal-after-gap search
	// the row evaluator performs.
	PrimaryKernel kernel.Kernel
	// PrimaryTokenIndex is the index into Tokens of the literal the
	// primary kernel's auxiliary tables were precomputed for (the longest
	// literal token, ties broken by earliest position). -1 if the plan
	// has no literal tokens at all.
	PrimaryTokenIndex int
	// PrimaryKMPTable / PrimaryBMTables / PrimaryLUTMasks hold whichever
	// auxiliary structure PrimaryKernel actually uses, precomputed once.
	// Only the field matching PrimaryKernel.Name() is populated.
	PrimaryKMPTable kernel.PrefixTable
	PrimaryBMTables kernel.Tables
	PrimaryLUTMasks kernel.Masks

	// MultiLiteral accelerates plans with two or more Literal tokens by
	// scanning a row once for every literal instead of once per token (see
	// SPEC_FULL.md §4.6). Nil when the plan has fewer than two literals or
	// automaton construction failed (the evaluator always has the
	// per-token fallback available).
	MultiLiteral *kernel.MultiLiteral
	// LiteralTokenPositions maps a kernel.Occurrence.LiteralIndex (the
	// order literals were fed to MultiLiteral) back to its Token index.
	LiteralTokenPositions []int
}

// IsMatchEverything reports whether the plan matches every row including
// the empty row, per spec.md §8's tautology property: a pattern consisting
// solely of '%' collapses to a single Floating FreeGap with MinSkip == 0.
func (p *Plan) IsMatchEverything() bool {
	return len(p.Tokens) == 1 && p.Tokens[0].Kind == FreeGap && p.Tokens[0].MinSkip == 0
}

// IsAllLiteral reports whether every token is a Literal (no gaps at all),
// enabling the evaluator's byte-exact-equality fast path.
func (p *Plan) IsAllLiteral() bool {
	for _, t := range p.Tokens {
		if t.Kind != Literal {
			return false
		}
	}
	return true
}

// IsLiteralAndOneGap reports whether every token is a Literal or a OneGap
// (no unbounded gaps), enabling the evaluator's fixed-length fast path.
func (p *Plan) IsLiteralAndOneGap() bool {
	for _, t := range p.Tokens {
		if t.Kind != Literal && t.Kind != OneGap {
			return false
		}
	}
	return true
}

func (p *Plan) computeHints() {
	longestIdx := -1
	longestLen := -1
	minRow := 0

	for i, t := range p.Tokens {
		switch t.Kind {
		case Literal:
			p.TotalLiteralLen += len(t.Bytes)
			minRow += len(t.Bytes)
			if len(t.Bytes) > longestLen {
				longestLen = len(t.Bytes)
				longestIdx = i
			}
		case OneGap:
			minRow += t.Width
		case FreeGap:
			minRow += t.MinSkip
		}
	}

	p.PrimaryTokenIndex = longestIdx
	p.MinRowLen = minRow
}

func (p *Plan) buildKernels() {
	if p.PrimaryTokenIndex >= 0 {
		needle := p.Tokens[p.PrimaryTokenIndex].Bytes
		hints := kernel.ComputeHints(needle)
		p.PrimaryKernel = kernel.Select(hints)

		switch p.PrimaryKernel.Name() {
		case "kmp":
			p.PrimaryKMPTable = kernel.BuildPrefixTable(needle)
		case "boyer-moore":
			p.PrimaryBMTables = kernel.BuildTables(needle)
		case "short-lut":
			p.PrimaryLUTMasks = kernel.BuildMasks(needle)
		}
	} else {
		p.PrimaryKernel = kernel.NewKMP()
	}

	p.buildMultiLiteral()
}

func (p *Plan) buildMultiLiteral() {
	var literals [][]byte
	var positions []int
	for i, t := range p.Tokens {
		if t.Kind == Literal {
			literals = append(literals, t.Bytes)
			positions = append(positions, i)
		}
	}
	if len(literals) < 2 {
		return
	}

	ml, err := kernel.NewMultiLiteral(literals)
	if err != nil {
		return
	}
	p.MultiLiteral = ml
	p.LiteralTokenPositions = positions
}

// SearchLiteral locates tokenBytes (the bytes of the Literal token at
// tokenIndex) within haystack at or after start, using the plan's
// precomputed auxiliary tables when tokenIndex is the primary token, and a
// freshly built table otherwise (spec.md §4.1 rule 5: "plus any literal
// that the evaluator will itself need to match positionally").
func (p *Plan) SearchLiteral(tokenIndex int, haystack, tokenBytes []byte, start int) int {
	if tokenIndex == p.PrimaryTokenIndex {
		switch p.PrimaryKernel.Name() {
		case "kmp":
			return kernel.FindFirstWithTable(haystack, tokenBytes, p.PrimaryKMPTable, start)
		case "boyer-moore":
			return kernel.FindFirstWithTables(haystack, tokenBytes, p.PrimaryBMTables, start)
		case "short-lut":
			return kernel.FindFirstWithMasks(haystack, tokenBytes, p.PrimaryLUTMasks, start)
		}
	}
	return p.PrimaryKernel.FindFirst(haystack, tokenBytes, start)
}

// SearchLiteralLast locates the rightmost occurrence of tokenBytes within
// haystack at or after start (spec.md §4.3's anchored-end back-off rule).
func (p *Plan) SearchLiteralLast(haystack, tokenBytes []byte, start int) int {
	return kernel.FindLast(p.PrimaryKernel, haystack, tokenBytes, start)
}
