package matrix

import (
	"github.com/gosci-dev/gosci/internal/array"
)

// Full creates an r×c matrix with every cell set to the given value.
func Full(r, c int, v array.Value) (Matrix, error) {
	if r < 0 || c < 0 {
		return Matrix{}, errorf("full", "dimensions must be non-negative")
	}
	rows := make([]array.Value, r)
	for i := range rows {
		row := make([]array.Value, c)
		for j := range row {
			row[j] = v
		}
		rows[i] = array.List(row)
	}
	return Matrix{rows: rows}, nil
}

// Zeros creates an r×c matrix of float zeros.
func Zeros(r, c int) (Matrix, error) {
	return Full(r, c, array.Float(0))
}

// Ones creates an r×c matrix of float ones.
func Ones(r, c int) (Matrix, error) {
	return Full(r, c, array.Float(1))
}

// Eye creates the n×n identity matrix.
func Eye(n int) (Matrix, error) {
	return EyeRect(n, n)
}

// EyeRect creates an r×c matrix with float ones on the main diagonal and
// float zeros elsewhere, MATLAB's rectangular identity.
func EyeRect(r, c int) (Matrix, error) {
	m, err := Full(r, c, array.Float(0))
	if err != nil {
		return Matrix{}, err
	}
	for i := 0; i < r && i < c; i++ {
		m.rows[i].Array()[i] = array.Float(1)
	}
	return m, nil
}

// Diag follows MATLAB's dual contract: given a list-like input (flat
// list, row vector, or column vector) it builds a square matrix with the
// values on the main diagonal; given a matrix it extracts the main
// diagonal as a column vector. Diagonal values keep their original int or
// float kind; the fill is float zero.
func Diag(raw []array.Value) (Matrix, error) {
	if flat, ok := array.ToList(raw); ok && scalarsOnly(flat) {
		n := len(flat)
		m, err := Full(n, n, array.Float(0))
		if err != nil {
			return Matrix{}, err
		}
		for i, v := range flat {
			m.rows[i].Array()[i] = v
		}
		return m, nil
	}

	grid, err := FromArray(raw).cells("diag")
	if err != nil {
		return Matrix{}, err
	}
	n := len(grid)
	if n > 0 && len(grid[0]) < n {
		n = len(grid[0])
	}
	diag := make([]array.Value, n)
	for i := 0; i < n; i++ {
		diag[i] = grid[i][i]
	}
	return ColumnVector(diag), nil
}

// scalarsOnly reports whether every element of a flat list is a numeric
// scalar. A nested array behind a scalar first element passes ToList's
// spine check but must take the matrix path instead.
func scalarsOnly(flat []array.Value) bool {
	for _, v := range flat {
		if !v.IsNumeric() {
			return false
		}
	}
	return true
}
