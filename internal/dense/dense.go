// Package dense bridges the nested dynamic representation into gonum's
// fixed dense matrix type for decomposition-heavy operations.
//
// The bridge is transient by design: a dense matrix is created from the
// dynamic form, handed to a decomposition routine, and converted back.
// Integer elements widen to float64 on the way in and stay floats on the
// way out; this one-directional widening is the documented lossy boundary
// of the dense path.
package dense

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/gosci-dev/gosci/internal/array"
	"github.com/gosci-dev/gosci/internal/matrix"
)

// Backend implements matrix.DenseBackend on top of gonum.
type Backend struct{}

// Name identifies the backend.
func (Backend) Name() string { return "gonum" }

// ToDense converts a nested dynamic matrix into a gonum dense matrix.
//
// An empty input yields a 0×0 dense matrix, an explicit degenerate case
// rather than an error. Every row must itself be an array, all rows must
// share the first row's length, and every element must be an int or
// float scalar.
func ToDense(rows []array.Value) (*mat.Dense, error) {
	if len(rows) == 0 {
		return &mat.Dense{}, nil
	}
	if !rows[0].IsArray() {
		return nil, errors.New("matrix must contain row arrays")
	}
	cols := len(rows[0].Array())
	data := make([]float64, 0, len(rows)*cols)
	for _, r := range rows {
		if !r.IsArray() {
			return nil, errors.New("matrix must contain row arrays")
		}
		row := r.Array()
		if len(row) != cols {
			return nil, errors.New("matrix rows must have equal length")
		}
		for _, v := range row {
			if !v.IsNumeric() {
				return nil, errors.New("matrix elements must be INT or FLOAT")
			}
			data = append(data, v.Float())
		}
	}
	if cols == 0 {
		return &mat.Dense{}, nil
	}
	return mat.NewDense(len(rows), cols, data), nil
}

// FromDense converts a gonum matrix back into the nested dynamic form.
// All elements of the result are floats, even when the original matrix
// held only integers.
func FromDense(m mat.Matrix) []array.Value {
	r, c := m.Dims()
	rows := make([]array.Value, r)
	for i := 0; i < r; i++ {
		row := make([]array.Value, c)
		for j := 0; j < c; j++ {
			row[j] = array.Float(m.At(i, j))
		}
		rows[i] = array.List(row)
	}
	return rows
}

// Inverse computes the inverse of a square dynamic matrix via gonum's
// LU-based routine. Singular input surfaces as an error wrapping
// matrix.ErrSingular; the matrix layer maps it onto its arithmetic
// error.
func (Backend) Inverse(rows []array.Value) ([]array.Value, error) {
	d, err := ToDense(rows)
	if err != nil {
		return nil, err
	}
	r, c := d.Dims()
	if r != c {
		return nil, fmt.Errorf("inverse requires a square matrix, got %d×%d", r, c)
	}
	if r == 0 {
		return []array.Value{}, nil
	}
	var inv mat.Dense
	if err := inv.Inverse(d); err != nil {
		return nil, fmt.Errorf("%w: %v", matrix.ErrSingular, err)
	}
	return FromDense(&inv), nil
}

// Transpose runs the dense-path transpose. It exists so the nested-path
// Transpose can be cross-checked against the backend; both must agree on
// the numeric values modulo int→float widening.
func Transpose(rows []array.Value) ([]array.Value, error) {
	d, err := ToDense(rows)
	if err != nil {
		return nil, err
	}
	return FromDense(d.T()), nil
}
