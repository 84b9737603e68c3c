package kernel

import (
	"bytes"
	"iter"
)

// StdFind delegates to the standard library's bytes.Index, serving as the
// trusted baseline every other kernel's output is compared against in
// equivalence tests.
type StdFind struct{}

// NewStdFind constructs the stdlib-delegating kernel. Always available.
func NewStdFind() *StdFind { return &StdFind{} }

func (StdFind) Name() string { return "std-find" }

func (StdFind) FindFirst(haystack, needle []byte, start int) int {
	if result, ok := boundsCheck(haystack, needle, start); ok {
		return result
	}
	p := bytes.Index(haystack[start:], needle)
	if p == -1 {
		return -1
	}
	return start + p
}

func (k StdFind) FindAll(haystack, needle []byte, start int) iter.Seq[int] {
	return func(yield func(int) bool) {
		if result, ok := boundsCheck(haystack, needle, start); ok {
			if result >= 0 {
				yield(result)
			}
			return
		}
		pos := start
		for {
			p := k.FindFirst(haystack, needle, pos)
			if p == -1 {
				return
			}
			if !yield(p) {
				return
			}
			pos = p + 1
		}
	}
}
