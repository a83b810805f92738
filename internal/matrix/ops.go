package matrix

import (
	"github.com/gosci-dev/gosci/internal/array"
)

// Transpose swaps the row and column roles of the matrix: an r×c input
// yields a c×r result. It operates directly over the nested
// representation and therefore preserves integer elements; the dense
// backend path used by Inv widens to float and must agree with this one
// on the numeric values modulo that widening.
func Transpose(m Matrix) (Matrix, error) {
	grid, err := m.cells("transpose")
	if err != nil {
		return Matrix{}, err
	}
	if len(grid) == 0 {
		return Matrix{rows: []array.Value{}}, nil
	}
	rows, cols := len(grid), len(grid[0])
	out := make([]array.Value, cols)
	for j := 0; j < cols; j++ {
		row := make([]array.Value, rows)
		for i := 0; i < rows; i++ {
			row[i] = grid[i][j]
		}
		out[j] = array.List(row)
	}
	return Matrix{rows: out}, nil
}

// Horzcat concatenates two matrices horizontally. Both operands must
// have the same number of rows; row i of the result is row i of a
// followed by row i of b.
func Horzcat(a, b Matrix) (Matrix, error) {
	left, err := a.cells("horzcat")
	if err != nil {
		return Matrix{}, err
	}
	right, err := b.cells("horzcat")
	if err != nil {
		return Matrix{}, err
	}
	if len(left) != len(right) {
		return Matrix{}, errorf("horzcat", msgSameRows)
	}
	out := make([]array.Value, len(left))
	for i := range left {
		row := make([]array.Value, 0, len(left[i])+len(right[i]))
		row = append(row, left[i]...)
		row = append(row, right[i]...)
		out[i] = array.List(row)
	}
	return Matrix{rows: out}, nil
}

// Vertcat concatenates two matrices vertically. Both operands must have
// the same number of columns; the rows of b follow the rows of a.
func Vertcat(a, b Matrix) (Matrix, error) {
	top, err := a.cells("vertcat")
	if err != nil {
		return Matrix{}, err
	}
	bottom, err := b.cells("vertcat")
	if err != nil {
		return Matrix{}, err
	}
	if len(top) > 0 && len(bottom) > 0 && len(top[0]) != len(bottom[0]) {
		return Matrix{}, errorf("vertcat", msgSameCols)
	}
	out := make([]array.Value, 0, len(top)+len(bottom))
	for _, row := range top {
		out = append(out, array.List(append([]array.Value(nil), row...)))
	}
	for _, row := range bottom {
		out = append(out, array.List(append([]array.Value(nil), row...)))
	}
	return Matrix{rows: out}, nil
}

// Repmat tiles the matrix mr times vertically and mc times horizontally:
// an r×c source yields an (r*mr)×(c*mc) result where output cell (i, j)
// equals source cell (i mod r, j mod c).
func Repmat(m Matrix, mr, mc int) (Matrix, error) {
	grid, err := m.cells("repmat")
	if err != nil {
		return Matrix{}, err
	}
	if mr < 0 || mc < 0 {
		return Matrix{}, errorf("repmat", "replication counts must be non-negative")
	}
	rows := len(grid)
	if rows == 0 || mr == 0 || mc == 0 {
		return Matrix{rows: []array.Value{}}, nil
	}
	cols := len(grid[0])
	out := make([]array.Value, rows*mr)
	for i := 0; i < rows*mr; i++ {
		row := make([]array.Value, cols*mc)
		for j := 0; j < cols*mc; j++ {
			row[j] = grid[i%rows][j%cols]
		}
		out[i] = array.List(row)
	}
	return Matrix{rows: out}, nil
}
