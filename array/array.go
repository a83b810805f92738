// Copyright 2025 The gosci Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package array provides the public API for gosci's dynamic values, shape
// classification, and validation predicates.
//
// A numeric array is a possibly-nested sequence of dynamically typed
// values: integer or float scalars, further arrays, or opaque non-numeric
// payloads. Shapes are classified without mutation, and the predicates
// never fail — malformed input classifies as false.
//
// Example:
//
//	raw := []array.Value{
//	    array.Arr(array.Int(1), array.Int(2), array.Int(3)),
//	    array.Arr(array.Int(4), array.Int(5), array.Int(6)),
//	}
//	array.IsMatrix(raw)  // true
//	array.Size(raw)      // Shape{2, 3}
package array

import (
	"github.com/gosci-dev/gosci/internal/array"
)

// Kind is the runtime tag of a Value.
type Kind = array.Kind

// Supported value kinds.
const (
	KindInt   Kind = array.KindInt
	KindFloat Kind = array.KindFloat
	KindArray Kind = array.KindArray
	KindOther Kind = array.KindOther
)

// Value is a tagged dynamic value: an int or float scalar, a nested
// array, or an opaque non-numeric payload.
type Value = array.Value

// Shape represents the dimension extents of a nested numeric array.
type Shape = array.Shape

// Constructors

// Int constructs an integer Value.
func Int(v int64) Value { return array.Int(v) }

// Float constructs a floating-point Value.
func Float(v float64) Value { return array.Float(v) }

// Arr constructs an array Value from its elements.
func Arr(elems ...Value) Value { return array.Arr(elems...) }

// List constructs an array Value wrapping the given slice.
func List(elems []Value) Value { return array.List(elems) }

// Wrap constructs a non-numeric Value carrying an arbitrary payload.
func Wrap(v any) Value { return array.Wrap(v) }

// FromAny converts a raw dynamically typed value (int, float64, []any,
// ...) into a Value. This is the conversion boundary for scripting-engine
// glue.
func FromAny(v any) Value { return array.FromAny(v) }

// Shape queries

// Size classifies a nested array and returns its dimension extents.
func Size(arr []Value) Shape { return array.Size(arr) }

// NumElements counts the scalar elements of a nested array.
func NumElements(arr []Value) int { return array.NumElements(arr) }

// Flatten returns the scalars of a nested array in row-major order.
func Flatten(arr []Value) []Value { return array.Flatten(arr) }

// ToList normalizes a flat list, row vector, or column vector to a flat
// list, reporting false for any other shape.
func ToList(arr []Value) ([]Value, bool) { return array.ToList(arr) }

// Predicates

// IsList reports whether the array is a flat one-dimensional list.
func IsList(arr []Value) bool { return array.IsList(arr) }

// IsNumericArray reports whether every element, at any depth, is numeric.
func IsNumericArray(arr []Value) bool { return array.IsNumericArray(arr) }

// IsNumericList reports whether the array is a flat list of numeric
// elements.
func IsNumericList(arr []Value) bool { return array.IsNumericList(arr) }

// IsIntList reports whether the array is a flat list of integers.
func IsIntList(arr []Value) bool { return array.IsIntList(arr) }

// IsFloatList reports whether the array is a flat list of floats.
func IsFloatList(arr []Value) bool { return array.IsFloatList(arr) }

// IsRowVector reports whether the array is a 1×n matrix.
func IsRowVector(arr []Value) bool { return array.IsRowVector(arr) }

// IsColumnVector reports whether the array is an n×1 matrix.
func IsColumnVector(arr []Value) bool { return array.IsColumnVector(arr) }

// IsMatrix reports whether the array is a rectangular 2-D matrix.
func IsMatrix(arr []Value) bool { return array.IsMatrix(arr) }
