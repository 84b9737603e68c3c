package pattern

import (
	"bytes"
	"testing"
)

func TestTokenizeAndCollapse(t *testing.T) {
	tests := []struct {
		src    string
		anchor AnchorMode
		tokens []Token
	}{
		{"abc", AnchoredBoth, []Token{{Kind: Literal, Bytes: []byte("abc")}}},
		{"a_c", AnchoredBoth, []Token{
			{Kind: Literal, Bytes: []byte("a")},
			{Kind: OneGap, Width: 1},
			{Kind: Literal, Bytes: []byte("c")},
		}},
		{"a%c", AnchoredBoth, []Token{
			{Kind: Literal, Bytes: []byte("a")},
			{Kind: FreeGap, MinSkip: 0},
			{Kind: Literal, Bytes: []byte("c")},
		}},
		{"a%%%c", AnchoredBoth, []Token{
			{Kind: Literal, Bytes: []byte("a")},
			{Kind: FreeGap, MinSkip: 0},
			{Kind: Literal, Bytes: []byte("c")},
		}},
		{"a_%c", AnchoredBoth, []Token{
			{Kind: Literal, Bytes: []byte("a")},
			{Kind: FreeGap, MinSkip: 1},
			{Kind: Literal, Bytes: []byte("c")},
		}},
		{"a%_c", AnchoredBoth, []Token{
			{Kind: Literal, Bytes: []byte("a")},
			{Kind: FreeGap, MinSkip: 1},
			{Kind: Literal, Bytes: []byte("c")},
		}},
		{"a_%_c", AnchoredBoth, []Token{
			{Kind: Literal, Bytes: []byte("a")},
			{Kind: FreeGap, MinSkip: 2},
			{Kind: Literal, Bytes: []byte("c")},
		}},
		{"%abc", AnchoredEnd, []Token{
			{Kind: FreeGap, MinSkip: 0},
			{Kind: Literal, Bytes: []byte("abc")},
		}},
		{"abc%", AnchoredStart, []Token{
			{Kind: Literal, Bytes: []byte("abc")},
			{Kind: FreeGap, MinSkip: 0},
		}},
		{"%abc%", Floating, []Token{
			{Kind: FreeGap, MinSkip: 0},
			{Kind: Literal, Bytes: []byte("abc")},
			{Kind: FreeGap, MinSkip: 0},
		}},
		{"%", Floating, []Token{{Kind: FreeGap, MinSkip: 0}}},
		{"_%_", Floating, []Token{{Kind: FreeGap, MinSkip: 2}}},
		{"", AnchoredBoth, nil},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			plan := Compile([]byte(tt.src))
			if plan.Anchor != tt.anchor {
				t.Errorf("anchor = %v, want %v", plan.Anchor, tt.anchor)
			}
			if !tokensEqual(plan.Tokens, tt.tokens) {
				t.Errorf("tokens = %+v, want %+v", plan.Tokens, tt.tokens)
			}
		})
	}
}

// TestAnchorIdempotence is the spec's "compiling a pattern twice yields
// equal plans" property.
func TestAnchorIdempotence(t *testing.T) {
	srcs := []string{"", "%", "a%b", "a_b%c_d", "%%%___%%"}
	for _, src := range srcs {
		p1 := Compile([]byte(src))
		p2 := Compile([]byte(src))
		if p1.Anchor != p2.Anchor || !tokensEqual(p1.Tokens, p2.Tokens) {
			t.Errorf("Compile(%q) not idempotent", src)
		}
	}
}

// TestWildcardCollapse is the spec's "wildcard collapse" property: patterns
// differing only in the placement/count of adjacent wildcards compile to
// the same token list.
func TestWildcardCollapse(t *testing.T) {
	equivalents := [][2]string{
		{"a%b", "a%%b"},
		{"a%b", "a%%%b"},
		{"a_%b", "a%_b"},
		{"a__%b", "a%__b"},
	}
	for _, pair := range equivalents {
		p1 := Compile([]byte(pair[0]))
		p2 := Compile([]byte(pair[1]))
		if p1.Anchor != p2.Anchor || !tokensEqual(p1.Tokens, p2.Tokens) {
			t.Errorf("Compile(%q) and Compile(%q) should collapse identically, got %+v vs %+v",
				pair[0], pair[1], p1.Tokens, p2.Tokens)
		}
	}
}

func TestPlanHints(t *testing.T) {
	plan := Compile([]byte("ab%cde_f"))
	if plan.TotalLiteralLen != 6 {
		t.Errorf("TotalLiteralLen = %d, want 6", plan.TotalLiteralLen)
	}
	if plan.PrimaryKernel == nil {
		t.Fatal("PrimaryKernel must be set")
	}
}

func TestPlanMatchEverything(t *testing.T) {
	plan := Compile([]byte("%"))
	if !plan.IsMatchEverything() {
		t.Error("a bare % must be recognized as match-everything")
	}
	plan2 := Compile([]byte("%%%"))
	if !plan2.IsMatchEverything() {
		t.Error("repeated % must collapse to match-everything")
	}
	plan3 := Compile([]byte("%_%"))
	if plan3.IsMatchEverything() {
		t.Error("%_% requires at least one byte and must not be match-everything")
	}
}

func tokensEqual(a, b []Token) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Kind != b[i].Kind || a[i].Width != b[i].Width || a[i].MinSkip != b[i].MinSkip {
			return false
		}
		if !bytes.Equal(a[i].Bytes, b[i].Bytes) {
			return false
		}
	}
	return true
}
