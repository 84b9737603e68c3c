package fmindex

import (
	"bytes"
	"sort"
	"testing"
)

func buildFixture(t *testing.T, rows []string) (*Index, []int) {
	t.Helper()
	var corpus []byte
	rowOffsets := make([]int, len(rows))
	for i, r := range rows {
		rowOffsets[i] = len(corpus)
		corpus = append(corpus, r...)
	}
	idx, buildErr := Build(corpus, rowOffsets, DefaultConfig())
	if buildErr != nil {
		t.Fatalf("Build failed: %v", buildErr)
	}
	return idx, rowOffsets
}

func TestSearchAndResolveRow(t *testing.T) {
	rows := []string{"apple", "application", "pineapple", "banana"}
	idx, _ := buildFixture(t, rows)

	lo, hi := idx.Search([]byte("apple"))
	if lo >= hi {
		t.Fatal("expected apple to be found")
	}

	gotRows := make(map[int]bool)
	for p := lo; p < hi; p++ {
		gotRows[idx.ResolveRow(p)] = true
	}

	want := map[int]bool{0: true, 2: true}
	if len(gotRows) != len(want) {
		t.Fatalf("got rows %v, want %v", gotRows, want)
	}
	for r := range want {
		if !gotRows[r] {
			t.Errorf("missing row %d in %v", r, gotRows)
		}
	}
}

func TestSearchNotFound(t *testing.T) {
	idx, _ := buildFixture(t, []string{"apple", "banana"})
	lo, hi := idx.Search([]byte("zzz"))
	if lo < hi {
		t.Errorf("expected not-found, got interval [%d,%d)", lo, hi)
	}
}

func TestSearchAgreesWithBytesIndex(t *testing.T) {
	rows := []string{"mississippi", "banana", "abracadabra", "the quick brown fox"}
	idx, rowOffsets := buildFixture(t, rows)

	needles := []string{"iss", "ana", "abra", "brown", "xyz", "a"}
	for _, needle := range needles {
		lo, hi := idx.Search([]byte(needle))

		wantRows := make(map[int]bool)
		for i, r := range rows {
			if bytes.Contains([]byte(r), []byte(needle)) {
				wantRows[i] = true
			}
		}

		gotRows := make(map[int]bool)
		for p := lo; p < hi; p++ {
			gotRows[idx.ResolveRow(p)] = true
		}

		if len(gotRows) != len(wantRows) {
			t.Errorf("needle %q: got rows %v, want %v (offsets %v)", needle, gotRows, wantRows, rowOffsets)
			continue
		}
		for r := range wantRows {
			if !gotRows[r] {
				t.Errorf("needle %q: missing row %d", needle, r)
			}
		}
	}
}

func TestBuildRejectsTerminatorByte(t *testing.T) {
	corpus := []byte{'a', 'b', 0x00, 'c'}
	_, buildErr := Build(corpus, []int{0}, DefaultConfig())
	if buildErr == nil {
		t.Fatal("expected a build error when corpus contains the terminator byte")
	}
}

func TestResolveRowSorted(t *testing.T) {
	rows := []string{"one", "two", "three", "four", "five"}
	idx, _ := buildFixture(t, rows)
	lo, hi := idx.Search([]byte("o"))
	var got []int
	for p := lo; p < hi; p++ {
		got = append(got, idx.ResolveRow(p))
	}
	sort.Ints(got)
	want := []int{0, 1, 3} // "one", "two", "four" contain "o"
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}
