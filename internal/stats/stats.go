// Package stats implements scalar reductions and moving-window statistics
// over list-like numeric input.
//
// Every function accepts a flat list, a row vector, or a column vector
// interchangeably; the input is normalized to a flat list before any
// computation. Reductions that can stay integral (Sum, Prod, Max, Min)
// preserve integer results on all-int input.
package stats

import (
	"github.com/gosci-dev/gosci/internal/array"
	"github.com/gosci-dev/gosci/internal/matrix"
)

const msgListLike = "input must be a numeric list, row vector, or column vector"

// normalize flattens list-like input and verifies that every element is
// a numeric scalar. Nested arrays hiding behind a scalar first element
// are rejected here, not deeper in a reduction loop.
func normalize(op string, raw []array.Value) ([]array.Value, error) {
	flat, ok := array.ToList(raw)
	if !ok {
		return nil, &matrix.Error{Op: op, Msg: msgListLike}
	}
	for _, v := range flat {
		if !v.IsNumeric() {
			return nil, &matrix.Error{Op: op, Msg: msgListLike}
		}
	}
	return flat, nil
}

// nonEmpty guards the reductions that have no identity value.
func nonEmpty(op string, flat []array.Value) error {
	if len(flat) == 0 {
		return &matrix.Error{Op: op, Msg: "input must not be empty"}
	}
	return nil
}

// allInt reports whether every element of a flat list is an integer.
func allInt(flat []array.Value) bool {
	for _, v := range flat {
		if !v.IsInt() {
			return false
		}
	}
	return true
}

// Sum returns the sum of the elements. The result is an integer value
// when every input element is an integer; empty input sums to INT 0,
// MATLAB's additive identity.
func Sum(raw []array.Value) (array.Value, error) {
	flat, err := normalize("sum", raw)
	if err != nil {
		return array.Value{}, err
	}
	if allInt(flat) {
		var s int64
		for _, v := range flat {
			s += v.Int()
		}
		return array.Int(s), nil
	}
	var s float64
	for _, v := range flat {
		s += v.Float()
	}
	return array.Float(s), nil
}

// Prod returns the product of the elements, integer-preserving like
// Sum; empty input multiplies to INT 1, the multiplicative identity.
func Prod(raw []array.Value) (array.Value, error) {
	flat, err := normalize("prod", raw)
	if err != nil {
		return array.Value{}, err
	}
	if allInt(flat) {
		var p int64 = 1
		for _, v := range flat {
			p *= v.Int()
		}
		return array.Int(p), nil
	}
	p := 1.0
	for _, v := range flat {
		p *= v.Float()
	}
	return array.Float(p), nil
}

// Mean returns the arithmetic mean of the elements, always a float.
func Mean(raw []array.Value) (array.Value, error) {
	flat, err := normalize("mean", raw)
	if err != nil {
		return array.Value{}, err
	}
	if err := nonEmpty("mean", flat); err != nil {
		return array.Value{}, err
	}
	var s float64
	for _, v := range flat {
		s += v.Float()
	}
	return array.Float(s / float64(len(flat))), nil
}

// Max returns the largest element, keeping its original int/float kind.
func Max(raw []array.Value) (array.Value, error) {
	flat, err := normalize("max", raw)
	if err != nil {
		return array.Value{}, err
	}
	if err := nonEmpty("max", flat); err != nil {
		return array.Value{}, err
	}
	best := flat[0]
	for _, v := range flat[1:] {
		if v.Float() > best.Float() {
			best = v
		}
	}
	return best, nil
}

// Min returns the smallest element, keeping its original int/float kind.
func Min(raw []array.Value) (array.Value, error) {
	flat, err := normalize("min", raw)
	if err != nil {
		return array.Value{}, err
	}
	if err := nonEmpty("min", flat); err != nil {
		return array.Value{}, err
	}
	best := flat[0]
	for _, v := range flat[1:] {
		if v.Float() < best.Float() {
			best = v
		}
	}
	return best, nil
}

// ArgMax returns the index of the largest element. Ties resolve to the
// first occurrence.
func ArgMax(raw []array.Value) (int, error) {
	flat, err := normalize("argmax", raw)
	if err != nil {
		return 0, err
	}
	if err := nonEmpty("argmax", flat); err != nil {
		return 0, err
	}
	idx := 0
	for i, v := range flat[1:] {
		if v.Float() > flat[idx].Float() {
			idx = i + 1
		}
	}
	return idx, nil
}

// ArgMin returns the index of the smallest element. Ties resolve to the
// first occurrence.
func ArgMin(raw []array.Value) (int, error) {
	flat, err := normalize("argmin", raw)
	if err != nil {
		return 0, err
	}
	if err := nonEmpty("argmin", flat); err != nil {
		return 0, err
	}
	idx := 0
	for i, v := range flat[1:] {
		if v.Float() < flat[idx].Float() {
			idx = i + 1
		}
	}
	return idx, nil
}
