package pattern

// Compile lowers a LIKE source string into a Plan. Compilation never
// fails: any byte sequence is a legal pattern (spec.md §4.1 "Failure
// modes: none internal"), and repeated or interleaved wildcards are
// normalized rather than rejected.
func Compile(src []byte) *Plan {
	tokens := tokenize(src)
	tokens = collapse(tokens)

	plan := &Plan{
		Anchor: deriveAnchor(tokens),
		Tokens: tokens,
	}
	plan.computeHints()
	plan.buildKernels()
	return plan
}

// tokenize performs the left-to-right scan of spec.md §4.1 rule 1: runs of
// literal bytes become Literal tokens, runs of '_' become OneGap tokens,
// and runs of '%' become FreeGap tokens. No collapsing across gap kinds
// happens yet - that is collapse's job.
func tokenize(src []byte) []Token {
	var tokens []Token
	i := 0
	for i < len(src) {
		switch src[i] {
		case '%':
			j := i
			for j < len(src) && src[j] == '%' {
				j++
			}
			tokens = append(tokens, Token{Kind: FreeGap, MinSkip: 0})
			i = j
		case '_':
			j := i
			for j < len(src) && src[j] == '_' {
				j++
			}
			tokens = append(tokens, Token{Kind: OneGap, Width: j - i})
			i = j
		default:
			j := i
			for j < len(src) && src[j] != '%' && src[j] != '_' {
				j++
			}
			tokens = append(tokens, Token{Kind: Literal, Bytes: src[i:j]})
			i = j
		}
	}
	return tokens
}

// collapse applies spec.md §4.1 rule 2 and the data-model invariants of
// §3: adjacent FreeGaps merge, and a OneGap adjacent to a FreeGap is
// absorbed into that FreeGap's MinSkip and removed as a separate token.
//
// A single left-to-right pass suffices: every OneGap run is bounded by
// either a Literal or the start/end of the pattern on the non-FreeGap
// side, so once a FreeGap has absorbed its neighbors on both sides it
// never needs revisiting.
func collapse(tokens []Token) []Token {
	out := make([]Token, 0, len(tokens))
	i := 0
	for i < len(tokens) {
		t := tokens[i]
		if t.Kind != FreeGap {
			out = append(out, t)
			i++
			continue
		}

		// Absorb a OneGap immediately preceding this FreeGap, if the
		// previous emitted token is one (it wasn't itself absorbed into an
		// earlier FreeGap, since FreeGaps never emit before absorbing).
		if n := len(out); n > 0 && out[n-1].Kind == OneGap {
			t.MinSkip += out[n-1].Width
			out = out[:n-1]
		}

		// Merge any number of subsequent FreeGap/OneGap tokens that belong
		// to this same collapsed gap.
		j := i + 1
		for j < len(tokens) && (tokens[j].Kind == FreeGap || tokens[j].Kind == OneGap) {
			if tokens[j].Kind == OneGap {
				t.MinSkip += tokens[j].Width
			}
			j++
		}

		out = append(out, t)
		i = j
	}
	return out
}

// deriveAnchor implements spec.md §4.1 rule 3: anchoring is set by the
// absence of a leading/trailing FreeGap.
func deriveAnchor(tokens []Token) AnchorMode {
	if len(tokens) == 0 {
		return AnchoredBoth
	}
	startFree := tokens[0].Kind == FreeGap
	endFree := tokens[len(tokens)-1].Kind == FreeGap

	switch {
	case !startFree && !endFree:
		return AnchoredBoth
	case !startFree && endFree:
		return AnchoredStart
	case startFree && !endFree:
		return AnchoredEnd
	default:
		return Floating
	}
}
