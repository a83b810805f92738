// Copyright 2025 The gosci Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matrix provides the public API for gosci's matrix and vector
// handles and the structural matrix operations.
//
// A Matrix wraps a nested dynamic array as a sequence of row arrays and
// exposes MATLAB-like orientation semantics: a flat list, a row vector
// (1×n), and a column vector (n×1) are distinct representations related
// by explicit conversion. Structural operations validate shape and
// element types and fail with a typed *Error; they never coerce silently.
//
// Example:
//
//	row := matrix.RowVector([]array.Value{array.Int(1), array.Int(2)})
//	col, _ := row.AsColumn()              // 2×1
//	t, _ := matrix.Transpose(col)         // back to 1×2
//	inv, err := matrix.Inv(m)             // dense backend required
package matrix

import (
	"github.com/gosci-dev/gosci/internal/array"
	"github.com/gosci-dev/gosci/internal/matrix"
)

// Matrix wraps a nested dynamic array interpreted as a matrix.
type Matrix = matrix.Matrix

// Vector wraps a flat one-dimensional numeric sequence.
type Vector = matrix.Vector

// Error is the arithmetic/shape error reported by transforming matrix
// operations.
type Error = matrix.Error

// ErrSingular marks a dense-backend failure on singular input. Backend
// implementations wrap it with %w.
var ErrSingular = matrix.ErrSingular

// Grid is the paired result of Meshgrid.
type Grid = matrix.Grid

// DenseBackend is the seam to a dense linear-algebra implementation used
// for decomposition-heavy operations such as Inv.
type DenseBackend = matrix.DenseBackend

// Constructors and converters

// FromArray wraps a raw nested array as a Matrix.
func FromArray(raw []array.Value) Matrix { return matrix.FromArray(raw) }

// RowVector wraps a flat sequence as a single-row matrix (1×n).
func RowVector(data []array.Value) Matrix { return matrix.RowVector(data) }

// ColumnVector wraps a flat sequence as an n×1 matrix.
func ColumnVector(data []array.Value) Matrix { return matrix.ColumnVector(data) }

// VectorFromArray wraps a flat sequence as a Vector.
func VectorFromArray(raw []array.Value) Vector { return matrix.VectorFromArray(raw) }

// Structural operations

// Transpose swaps row and column roles, preserving integer elements.
func Transpose(m Matrix) (Matrix, error) { return matrix.Transpose(m) }

// Horzcat concatenates two matrices horizontally. Fails when the row
// counts differ.
func Horzcat(a, b Matrix) (Matrix, error) { return matrix.Horzcat(a, b) }

// Vertcat concatenates two matrices vertically. Fails when the column
// counts differ.
func Vertcat(a, b Matrix) (Matrix, error) { return matrix.Vertcat(a, b) }

// Repmat tiles the matrix mr times vertically and mc times horizontally.
func Repmat(m Matrix, mr, mc int) (Matrix, error) { return matrix.Repmat(m, mr, mc) }

// Meshgrid expands two coordinate sequences (each a flat list, row
// vector, or column vector) into paired coordinate matrices of shape
// [len(y), len(x)].
func Meshgrid(x, y []array.Value) (Grid, error) { return matrix.Meshgrid(x, y) }

// Inv computes the matrix inverse through the registered dense backend.
func Inv(m Matrix) (Matrix, error) { return matrix.Inv(m) }

// Creation helpers

// Eye creates the n×n identity matrix.
func Eye(n int) (Matrix, error) { return matrix.Eye(n) }

// EyeRect creates an r×c rectangular identity matrix.
func EyeRect(r, c int) (Matrix, error) { return matrix.EyeRect(r, c) }

// Zeros creates an r×c matrix of float zeros.
func Zeros(r, c int) (Matrix, error) { return matrix.Zeros(r, c) }

// Ones creates an r×c matrix of float ones.
func Ones(r, c int) (Matrix, error) { return matrix.Ones(r, c) }

// Full creates an r×c matrix with every cell set to v.
func Full(r, c int, v array.Value) (Matrix, error) { return matrix.Full(r, c, v) }

// Diag builds a diagonal matrix from list-like input or extracts the
// main diagonal of a matrix as a column vector.
func Diag(raw []array.Value) (Matrix, error) { return matrix.Diag(raw) }

// Backend control

// SetDenseBackend registers the decomposition backend.
func SetDenseBackend(b DenseBackend) { matrix.SetDenseBackend(b) }

// HasDenseBackend reports whether a decomposition backend is registered.
func HasDenseBackend() bool { return matrix.HasDenseBackend() }
