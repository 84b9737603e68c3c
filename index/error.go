// Package index holds the shared build-error type for the corpus-wide
// accelerator indexes (FM-index, trigram index). Indexes themselves live in
// the index/fmindex and index/trigram subpackages; this package only
// defines the error kind both report, so the dataset driver can type-switch
// on a single vocabulary regardless of which index failed to build.
package index

import "fmt"

// BuildErrorKind classifies why an index failed to build. Per spec.md §7,
// these are fatal for that particular index but must not poison the
// dataset: the driver falls back to row-wise scanning instead.
type BuildErrorKind int

const (
	// OutOfMemory means the index could not allocate its backing storage.
	OutOfMemory BuildErrorKind = iota
	// CorruptIndex means a prebuilt/deserialized index failed a structural
	// sanity check (e.g. row-start offsets not monotonically increasing).
	CorruptIndex
	// UnsupportedFeature means the corpus itself is incompatible with the
	// index (e.g. the FM-index's terminator byte appears in row data).
	UnsupportedFeature
)

func (k BuildErrorKind) String() string {
	switch k {
	case OutOfMemory:
		return "OutOfMemory"
	case CorruptIndex:
		return "CorruptIndex"
	case UnsupportedFeature:
		return "UnsupportedFeature"
	default:
		return "Unknown"
	}
}

// BuildError reports a failure building an index. It deliberately carries
// no wrapped error: index build failures are classified, not diagnosed, per
// the ambient error-handling style this module follows (see nfa.BuildError).
type BuildError struct {
	Kind    BuildErrorKind
	Message string
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("index build error (%s): %s", e.Kind, e.Message)
}

// Is enables errors.Is(err, &index.BuildError{Kind: index.OutOfMemory})-style
// comparisons by kind: any *BuildError target with the same Kind matches,
// whatever its Message.
func (e *BuildError) Is(target error) bool {
	other, ok := target.(*BuildError)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}
