package matrix

import (
	"errors"
)

// Inv computes the matrix inverse through the registered dense backend.
//
// The source is validated up front: every element must be an int or
// float scalar and the matrix must be square. Results always contain
// float elements; callers that need integer preservation must stay off
// the dense path. Singular input is reported as an arithmetic error, not
// a panic.
func Inv(m Matrix) (Matrix, error) {
	if !HasDenseBackend() {
		return Matrix{}, errorf("inv", msgNoBackend)
	}
	grid, err := m.cells("inv")
	if err != nil {
		return Matrix{}, err
	}
	if len(grid) > 0 && len(grid) != len(grid[0]) {
		return Matrix{}, errorf("inv", msgNotSquare)
	}
	rows, err := denseBackend.Inverse(m.rows)
	if err != nil {
		if errors.Is(err, ErrSingular) {
			return Matrix{}, errorf("inv", msgSingular)
		}
		return Matrix{}, errorf("inv", err.Error())
	}
	return Matrix{rows: rows}, nil
}
