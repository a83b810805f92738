package matrix

import "errors"

// ErrSingular marks a dense-backend failure on singular input. Backends
// wrap it with %w so Inv can detect singularity with errors.Is instead
// of inspecting message text.
var ErrSingular = errors.New("matrix is singular")

// Error is the arithmetic/shape error reported by transforming matrix
// operations. Validation predicates never produce it; they classify
// malformed input as false instead.
type Error struct {
	Op  string // operation that failed, e.g. "horzcat"
	Msg string // human-readable description; tests assert on substrings
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Op + ": " + e.Msg
}

// errorf builds a typed matrix error for the given operation.
func errorf(op, msg string) *Error {
	return &Error{Op: op, Msg: msg}
}

// Contract messages shared by several operations. The wording is part of
// the public surface: callers and tests match on these substrings.
const (
	msgRowArrays   = "matrix must contain row arrays"
	msgEqualLength = "matrix rows must have equal length"
	msgNumericOnly = "matrix elements must be INT or FLOAT"
	msgSameRows    = "matrices must have the same number of rows"
	msgSameCols    = "matrices must have the same number of columns"
	msgNotSquare   = "matrix must be square"
	msgSingular    = "matrix is singular"
	msgNoBackend   = "dense backend not available"
)
