package matrix

import (
	"github.com/gosci-dev/gosci/internal/array"
)

// Grid is the paired result of Meshgrid.
type Grid struct {
	X Matrix // x coordinates replicated down the rows
	Y Matrix // y coordinates replicated across the columns
}

// Meshgrid expands two coordinate sequences into a pair of coordinate
// matrices, MATLAB style. The inputs may each be a flat list, a row
// vector, or a column vector; both grids have shape [len(y), len(x)]
// regardless of which input is longer. The X grid repeats x in every row
// and the Y grid repeats y[i] across row i.
func Meshgrid(x, y []array.Value) (Grid, error) {
	xs, err := listLike("meshgrid", x)
	if err != nil {
		return Grid{}, err
	}
	ys, err := listLike("meshgrid", y)
	if err != nil {
		return Grid{}, err
	}

	xGrid := make([]array.Value, len(ys))
	yGrid := make([]array.Value, len(ys))
	for i, yv := range ys {
		xRow := make([]array.Value, len(xs))
		copy(xRow, xs)
		xGrid[i] = array.List(xRow)

		yRow := make([]array.Value, len(xs))
		for j := range yRow {
			yRow[j] = yv
		}
		yGrid[i] = array.List(yRow)
	}
	return Grid{X: Matrix{rows: xGrid}, Y: Matrix{rows: yGrid}}, nil
}

// listLike normalizes a coordinate input to a flat numeric list.
func listLike(op string, raw []array.Value) ([]array.Value, error) {
	flat, ok := array.ToList(raw)
	if !ok {
		return nil, errorf(op, "input must be a list, row vector, or column vector")
	}
	for _, v := range flat {
		if !v.IsNumeric() {
			return nil, errorf(op, msgNumericOnly)
		}
	}
	return flat, nil
}
