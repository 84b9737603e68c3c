package likey

import (
	"testing"

	"github.com/TriedAngle/likey/dataset"
	"github.com/TriedAngle/likey/index/fmindex"
	"github.com/TriedAngle/likey/index/trigram"
)

func TestCompileAndMatchRow(t *testing.T) {
	cases := []struct {
		pattern string
		row     string
		want    bool
	}{
		{"app%", "apple", true},
		{"app%", "banana", false},
		{"%apple", "pineapple", true},
		{"%apple", "applesauce", false},
		{"%app%", "pineapple", true},
		{"a_c", "abc", true},
		{"a_c", "ac", false},
		{"%", "anything at all", true},
		{"%", "", true},
		{"", "", true},
		{"", "x", false},
	}

	for _, c := range cases {
		plan := Compile([]byte(c.pattern))
		got := MatchRow(plan, []byte(c.row))
		if got != c.want {
			t.Errorf("MatchRow(%q, %q) = %v, want %v", c.pattern, c.row, got, c.want)
		}
	}
}

func buildTestCorpus(rows []string) ([]byte, []int) {
	var corpus []byte
	offsets := make([]int, len(rows))
	for i, r := range rows {
		offsets[i] = len(corpus)
		corpus = append(corpus, r...)
	}
	return corpus, offsets
}

func TestNewDatasetAndScan(t *testing.T) {
	rows := []string{"apple", "application", "pineapple", "banana", "grape"}
	corpus, offsets := buildTestCorpus(rows)

	rowBytes := make([][]byte, len(rows))
	for i, r := range rows {
		rowBytes[i] = []byte(r)
	}

	fm, buildErr := fmindex.Build(corpus, offsets, fmindex.DefaultConfig())
	if buildErr != nil {
		t.Fatalf("fmindex.Build failed: %v", buildErr)
	}
	tg, buildErr := trigram.Build(rowBytes, trigram.DefaultConfig())
	if buildErr != nil {
		t.Fatalf("trigram.Build failed: %v", buildErr)
	}

	ds := NewDataset(corpus, offsets, fm, tg, dataset.DefaultConfig())
	plan := Compile([]byte("%apple"))

	got := Scan(plan, ds)
	want := []int{0, 2}
	if len(got) != len(want) {
		t.Fatalf("Scan(%q) = %v, want %v", "%apple", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Scan(%q) = %v, want %v", "%apple", got, want)
		}
	}
}

func TestScanWithoutIndexes(t *testing.T) {
	rows := []string{"abc", "abd", "xyz"}
	corpus, offsets := buildTestCorpus(rows)

	ds := NewDataset(corpus, offsets, nil, nil, dataset.DefaultConfig())
	plan := Compile([]byte("ab_"))

	got := Scan(plan, ds)
	want := []int{0, 1}
	if len(got) != len(want) {
		t.Fatalf("Scan(%q) = %v, want %v", "ab_", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Scan(%q) = %v, want %v", "ab_", got, want)
		}
	}
}
