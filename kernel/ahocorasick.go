package kernel

import (
	"bytes"
	"iter"

	"github.com/coregx/ahocorasick"
)

// MultiLiteral wraps a github.com/coregx/ahocorasick automaton to locate
// every literal token of a compiled LIKE plan in a single left-to-right
// pass over a row, instead of re-scanning the row once per token.
//
// This is the byte-oriented analogue of the teacher engine's Aho-Corasick
// literal-engine bypass (used there for large regex alternations): a LIKE
// pattern's literal runs are never alternatives, but they are still a set
// of fixed strings that must all be located, and one automaton pass finds
// all of them at once. The row evaluator falls back to the per-token
// kernel search whenever a plan has fewer than two literal tokens, since
// building an automaton is not worth it for a single literal.
type MultiLiteral struct {
	automaton *ahocorasick.Automaton
	literals  [][]byte
}

// Occurrence is one located literal token: Start/End bound the match in the
// row, and LiteralIndex identifies which literal (by position in the slice
// passed to NewMultiLiteral) was found there.
type Occurrence struct {
	Start, End    int
	LiteralIndex int
}

// NewMultiLiteral builds an automaton over literals. literals must be the
// compiled plan's literal token byte slices, in token order; duplicate or
// overlapping literal bytes are fine (the automaton reports every match).
func NewMultiLiteral(literals [][]byte) (*MultiLiteral, error) {
	builder := ahocorasick.NewBuilder()
	for _, lit := range literals {
		builder.AddPattern(lit)
	}
	automaton, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &MultiLiteral{automaton: automaton, literals: literals}, nil
}

// FindAllOccurrences lazily yields every occurrence of every literal at or
// after start, in ascending order of Start.
//
// The underlying automaton reports one match span (Start/End) per call, not
// which configured pattern produced it nor which other literals start at the
// same position, so at each reported Start every literal is compared against
// the row there and one Occurrence is yielded per literal that matches (in
// literal order) - cheap, since a compiled LIKE pattern rarely carries more
// than a handful of literal tokens.
func (ml *MultiLiteral) FindAllOccurrences(haystack []byte, start int) iter.Seq[Occurrence] {
	return func(yield func(Occurrence) bool) {
		at := start
		for at <= len(haystack) {
			m := ml.automaton.Find(haystack, at)
			if m == nil {
				return
			}
			for idx, lit := range ml.literals {
				if bytes.HasPrefix(haystack[m.Start:], lit) {
					if !yield(Occurrence{Start: m.Start, End: m.Start + len(lit), LiteralIndex: idx}) {
						return
					}
				}
			}
			at = m.Start + 1
		}
	}
}

func (ml *MultiLiteral) identify(matched []byte) int {
	for i, lit := range ml.literals {
		if len(lit) == len(matched) && bytes.Equal(lit, matched) {
			return i
		}
	}
	return -1
}
