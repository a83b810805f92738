package matrix

import (
	"github.com/gosci-dev/gosci/internal/array"
)

// DenseBackend is the seam to a dense linear-algebra implementation used
// for decomposition-heavy operations. The backend receives the validated
// nested representation and returns results in the same form; elements
// coming back are always floats (the dense path widens integers).
//
// The engine works without a backend, in which case decomposition-based
// operations report themselves unavailable instead of degrading silently.
type DenseBackend interface {
	// Name identifies the backend, e.g. "gonum".
	Name() string

	// Inverse computes the inverse of a square matrix. Singular input
	// is reported by wrapping ErrSingular; the caller maps it onto the
	// engine's arithmetic error.
	Inverse(rows []array.Value) ([]array.Value, error)
}

// denseBackend is the registered decomposition backend, nil when the
// build excludes one.
var denseBackend DenseBackend

// SetDenseBackend registers the decomposition backend. Passing nil
// removes it. Registration happens at init time from the public facade;
// the engine itself never mutates it afterwards.
func SetDenseBackend(b DenseBackend) {
	denseBackend = b
}

// HasDenseBackend reports whether a decomposition backend is registered.
func HasDenseBackend() bool {
	return denseBackend != nil
}
