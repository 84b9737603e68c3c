package eval

import (
	"testing"

	"github.com/TriedAngle/likey/pattern"
)

// TestMatchRowScenarios mirrors the concrete corpus/pattern scenarios used
// to pin down LIKE semantics: every literal byte is matched byte-exact,
// '_' matches exactly one byte including space or another wildcard byte,
// and '%' matches any run including empty.
func TestMatchRowScenarios(t *testing.T) {
	tests := []struct {
		corpus  []string
		pat     string
		matches []int
	}{
		{[]string{"apple", "application", "pineapple", "banana", ""}, "app%", []int{0, 1}},
		{[]string{"apple", "application", "pineapple", "banana", ""}, "%apple", []int{0, 2}},
		{[]string{"apple", "application", "pineapple", "banana", ""}, "%app%", []int{0, 1, 2}},
		{[]string{"abc", "a_c", "a c", "ac"}, "a_c", []int{0, 1, 2}},
		{[]string{"abc", "a_c", "a c", "ac"}, "ac", []int{3}},
		{[]string{"ATCGATCG", "GGGG", "ATCG", "TCGA"}, "%ATCG", []int{0, 2}},
		{[]string{"ATCGATCG", "GGGG", "ATCG", "TCGA"}, "ATCG%", []int{0, 2}},
		{[]string{"ATCGATCG", "GGGG", "ATCG", "TCGA"}, "%ATCG%", []int{0, 2}},
		{[]string{"", "%", "_", "%_%"}, "%", []int{0, 1, 2, 3}},
		{[]string{"", "%", "_", "%_%"}, "_", []int{1, 2}},
		{[]string{"", "%", "_", "%_%"}, "%_%", []int{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.pat, func(t *testing.T) {
			plan := pattern.Compile([]byte(tt.pat))
			var got []int
			for i, row := range tt.corpus {
				if MatchRow(plan, []byte(row)) {
					got = append(got, i)
				}
			}
			if !intSliceEqual(got, tt.matches) {
				t.Errorf("pattern %q: got matches %v, want %v", tt.pat, got, tt.matches)
			}
		})
	}
}

func TestMatchRowLengthBound(t *testing.T) {
	plan := pattern.Compile([]byte("abcdef"))
	if MatchRow(plan, []byte("abcde")) {
		t.Errorf("row shorter than the literal must not match in O(1)")
	}
}

// TestMultiLiteralAgreement verifies the multi-literal acceleration path
// never disagrees with the per-token fallback, for plans with multiple
// literal tokens.
func TestMultiLiteralAgreement(t *testing.T) {
	patterns := []string{
		"foo%bar",
		"%foo%bar%",
		"foo_bar%baz",
		"%abc%def%ghi%",
		"a%b%c%d",
	}
	rows := []string{
		"foobar",
		"xxfooyybarzz",
		"foo_barXbaz",
		"abcXdefXghiX",
		"abcdefghi",
		"",
		"nomatch",
		"a b c d",
	}

	for _, pat := range patterns {
		plan := pattern.Compile([]byte(pat))
		if plan.MultiLiteral == nil {
			t.Fatalf("pattern %q: expected a multi-literal automaton", pat)
		}
		for _, row := range rows {
			got := MatchRow(plan, []byte(row))
			want := MatchRowFallback(plan, []byte(row))
			if got != want {
				t.Errorf("pattern %q, row %q: MatchRow=%v MatchRowFallback=%v", pat, row, got, want)
			}
		}
	}
}

func TestMatchRowAnchoredEndPicksRightmost(t *testing.T) {
	plan := pattern.Compile([]byte("%ab"))
	if !MatchRow(plan, []byte("abab")) {
		t.Errorf("expected match: rightmost occurrence of \"ab\" ends the row")
	}
	if MatchRow(plan, []byte("abx")) {
		t.Errorf("unexpected match: row does not end with \"ab\"")
	}
}

func intSliceEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
