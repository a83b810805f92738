// Package matrix implements matrix and vector handles with MATLAB-like
// orientation semantics over nested dynamic arrays.
package matrix

import (
	"github.com/gosci-dev/gosci/internal/array"
)

// Matrix wraps a nested dynamic array interpreted as a matrix: a sequence
// of row arrays. The handle owns no independent storage beyond the slice
// it wraps and is disposable; operations return fresh handles rather than
// mutating the receiver.
type Matrix struct {
	rows []array.Value
}

// FromArray wraps a raw nested array as a Matrix without validating it.
// Operations validate shape and element types at the point of use.
func FromArray(raw []array.Value) Matrix {
	return Matrix{rows: raw}
}

// RowVector wraps a flat sequence as a single-row matrix (1×n).
func RowVector(data []array.Value) Matrix {
	row := make([]array.Value, len(data))
	copy(row, data)
	return Matrix{rows: []array.Value{array.List(row)}}
}

// ColumnVector wraps each element of a flat sequence as its own
// single-element row, producing an n×1 matrix.
func ColumnVector(data []array.Value) Matrix {
	rows := make([]array.Value, len(data))
	for i, v := range data {
		rows[i] = array.Arr(v)
	}
	return Matrix{rows: rows}
}

// ToArray returns the underlying nested array.
func (m Matrix) ToArray() []array.Value {
	return m.rows
}

// Size returns the matrix's dimension extents.
func (m Matrix) Size() array.Shape {
	return array.Size(m.rows)
}

// AsRow returns the matrix as a row vector (1×n), reshaping a column
// vector if necessary. A 1×1 matrix is returned unchanged. The second
// result is false when the matrix is neither 1×n nor n×1.
func (m Matrix) AsRow() (Matrix, bool) {
	s := m.Size()
	if len(s) != 2 {
		return Matrix{}, false
	}
	switch {
	case s[0] == 1:
		return m, true
	case s[1] == 1:
		return RowVector(array.Flatten(m.rows)), true
	default:
		return Matrix{}, false
	}
}

// AsColumn returns the matrix as a column vector (n×1), reshaping a row
// vector if necessary. Symmetric to AsRow.
func (m Matrix) AsColumn() (Matrix, bool) {
	s := m.Size()
	if len(s) != 2 {
		return Matrix{}, false
	}
	switch {
	case s[1] == 1:
		return m, true
	case s[0] == 1:
		return ColumnVector(array.Flatten(m.rows)), true
	default:
		return Matrix{}, false
	}
}

// Vector wraps a flat one-dimensional numeric sequence. It is distinct
// from a 1×n or n×1 Matrix; the two are related only through explicit
// conversion (RowVector, ColumnVector, array.ToList).
type Vector struct {
	data []array.Value
}

// VectorFromArray wraps a flat sequence as a Vector.
func VectorFromArray(raw []array.Value) Vector {
	return Vector{data: raw}
}

// ToArray returns the underlying flat sequence.
func (v Vector) ToArray() []array.Value {
	return v.data
}

// Len returns the number of elements.
func (v Vector) Len() int {
	return len(v.data)
}

// cells validates the matrix and returns its scalar grid.
//
// Every row must be an array, all rows must share the first row's length,
// and every element must be an int or float scalar. The returned grid
// references the original values; callers copy when building results.
// An empty matrix yields an empty grid. op tags the returned error.
func (m Matrix) cells(op string) ([][]array.Value, error) {
	grid := make([][]array.Value, len(m.rows))
	cols := -1
	for i, r := range m.rows {
		if !r.IsArray() {
			return nil, errorf(op, msgRowArrays)
		}
		row := r.Array()
		if cols < 0 {
			cols = len(row)
		} else if len(row) != cols {
			return nil, errorf(op, msgEqualLength)
		}
		for _, v := range row {
			if !v.IsNumeric() {
				return nil, errorf(op, msgNumericOnly)
			}
		}
		grid[i] = row
	}
	return grid, nil
}
