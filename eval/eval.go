// Package eval implements the row evaluator: given a compiled pattern.Plan
// and one row's bytes, decide whether the row satisfies the pattern.
//
// Every exported function here is a pure function of (plan, row bytes).
// Allocations are scoped to a single call and never retained across rows:
// the multi-literal acceleration path groups occurrences into a map, and
// kernel searches for literals other than the plan's primary one, as well
// as rightmost searches, may build tables or iterators per call.
package eval

import (
	"bytes"
	"sort"

	"github.com/TriedAngle/likey/pattern"
)

// MatchRow reports whether row satisfies plan.
//
// When plan carries a multi-literal automaton (two or more Literal tokens),
// MatchRow scans the row once with it instead of re-searching per token;
// otherwise it falls back to the plan's chosen per-token kernel. Both paths
// are required to agree on every row (see MatchRowFallback).
func MatchRow(plan *pattern.Plan, row []byte) bool {
	if result, handled := fastPath(plan, row); handled {
		return result
	}
	if plan.MultiLiteral != nil {
		return matchGeneral(plan, row, groupSearcher{groupOccurrences(plan, row)})
	}
	return matchGeneral(plan, row, kernelSearcher{plan})
}

// MatchRowFallback evaluates row using only the per-token kernel search
// path, even when plan has a multi-literal automaton available. It exists
// to test that the multi-literal acceleration path and the fallback path
// never disagree (SPEC_FULL.md §9's multi-literal kernel agreement
// property); ordinary callers should use MatchRow.
func MatchRowFallback(plan *pattern.Plan, row []byte) bool {
	if result, handled := fastPath(plan, row); handled {
		return result
	}
	return matchGeneral(plan, row, kernelSearcher{plan})
}

// fastPath implements spec.md §4.3 item 1 plus the universal length bound
// (§8's "Length bound" property, which holds regardless of anchoring).
// handled is false when none of the fast paths apply and the caller must
// fall through to the general token walk.
func fastPath(plan *pattern.Plan, row []byte) (result bool, handled bool) {
	if plan.IsMatchEverything() {
		return true, true
	}
	if len(row) < plan.MinRowLen {
		return false, true
	}
	if plan.Anchor != pattern.AnchoredBoth {
		return false, false
	}
	if len(plan.Tokens) == 0 {
		// An empty pattern (spec.md §3 invariant) matches only the empty
		// row. The length bound above rejects nothing here since
		// MinRowLen == 0, so a non-empty row is rejected here.
		return len(row) == 0, true
	}
	if plan.IsAllLiteral() {
		return bytes.Equal(row, plan.Tokens[0].Bytes), true
	}
	if plan.IsLiteralAndOneGap() {
		if len(row) != plan.MinRowLen {
			return false, true
		}
		return matchPositional(plan.Tokens, row), true
	}
	return false, false
}

// matchPositional verifies a Literal/OneGap-only token list against a row
// already known to have exactly the right length: every offset is
// deterministic, so no search is needed.
func matchPositional(tokens []pattern.Token, row []byte) bool {
	c := 0
	for _, t := range tokens {
		switch t.Kind {
		case pattern.Literal:
			if !bytes.Equal(row[c:c+len(t.Bytes)], t.Bytes) {
				return false
			}
			c += len(t.Bytes)
		case pattern.OneGap:
			c += t.Width
		}
	}
	return true
}

// literalSearcher abstracts where a Literal token's occurrences come from:
// either the plan's chosen kernel (searched fresh per call) or a
// precomputed multi-literal occurrence table.
type literalSearcher interface {
	// first returns the leftmost occurrence of lit (token tokenIndex) at or
	// after threshold, or -1.
	first(row []byte, tokenIndex int, lit []byte, threshold int) int
	// last returns the rightmost occurrence of lit (token tokenIndex) at or
	// after threshold, or -1.
	last(row []byte, tokenIndex int, lit []byte, threshold int) int
}

type kernelSearcher struct{ plan *pattern.Plan }

func (s kernelSearcher) first(row []byte, tokenIndex int, lit []byte, threshold int) int {
	return s.plan.SearchLiteral(tokenIndex, row, lit, threshold)
}

func (s kernelSearcher) last(row []byte, tokenIndex int, lit []byte, threshold int) int {
	return s.plan.SearchLiteralLast(row, lit, threshold)
}

type groupSearcher struct{ groups map[int][]int }

func (s groupSearcher) first(row []byte, tokenIndex int, lit []byte, threshold int) int {
	starts := s.groups[tokenIndex]
	i := sort.Search(len(starts), func(i int) bool { return starts[i] >= threshold })
	if i == len(starts) {
		return -1
	}
	return starts[i]
}

func (s groupSearcher) last(row []byte, tokenIndex int, lit []byte, threshold int) int {
	starts := s.groups[tokenIndex]
	if len(starts) == 0 {
		return -1
	}
	rightmost := starts[len(starts)-1]
	if rightmost < threshold {
		return -1
	}
	return rightmost
}

// groupOccurrences runs the plan's multi-literal automaton once over row
// and buckets the resulting occurrences by token index, preserving the
// ascending order FindAllOccurrences already produces.
func groupOccurrences(plan *pattern.Plan, row []byte) map[int][]int {
	groups := make(map[int][]int, len(plan.LiteralTokenPositions))
	for occ := range plan.MultiLiteral.FindAllOccurrences(row, 0) {
		tokenIndex := plan.LiteralTokenPositions[occ.LiteralIndex]
		groups[tokenIndex] = append(groups[tokenIndex], occ.Start)
	}
	return groups
}

// matchGeneral implements spec.md §4.3 item 2's general-case token walk
// and item 3's anchored-end back-off rule, sourcing literal occurrences
// from searcher.
func matchGeneral(plan *pattern.Plan, row []byte, searcher literalSearcher) bool {
	tokens := plan.Tokens
	n := len(tokens)
	c := 0
	afterFreeGap := false
	freeGapMinSkip := 0
	anchoredEnd := plan.Anchor == pattern.AnchoredBoth || plan.Anchor == pattern.AnchoredEnd

	for i := 0; i < n; i++ {
		t := tokens[i]
		switch t.Kind {
		case pattern.Literal:
			isLast := i == n-1
			if !afterFreeGap {
				// First token under an anchored start, or immediately
				// follows a OneGap: the offset is deterministic.
				if len(row)-c < len(t.Bytes) {
					return false
				}
				if !bytes.Equal(row[c:c+len(t.Bytes)], t.Bytes) {
					return false
				}
				c += len(t.Bytes)
				break
			}

			threshold := c + freeGapMinSkip
			if threshold > len(row) {
				return false
			}
			if isLast && anchoredEnd {
				p := searcher.last(row, i, t.Bytes, threshold)
				if p == -1 || p+len(t.Bytes) != len(row) {
					return false
				}
				c = p + len(t.Bytes)
			} else {
				p := searcher.first(row, i, t.Bytes, threshold)
				if p == -1 {
					return false
				}
				c = p + len(t.Bytes)
			}
			afterFreeGap = false

		case pattern.OneGap:
			if len(row)-c < t.Width {
				return false
			}
			c += t.Width
			afterFreeGap = false

		case pattern.FreeGap:
			afterFreeGap = true
			freeGapMinSkip = t.MinSkip
		}
	}

	if afterFreeGap {
		// Terminal FreeGap: nothing follows it, so the row is accepted as
		// soon as the minimum skip fits (spec.md §4.3 item 2's "FreeGap
		// without a following Literal").
		return c+freeGapMinSkip <= len(row)
	}

	if anchoredEnd {
		return c == len(row)
	}
	return true
}
