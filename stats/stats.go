// Copyright 2025 The gosci Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package stats provides the public API for gosci's reductions and
// moving-window statistics.
//
// Every function accepts its numeric input as a flat list, a row vector,
// or a column vector interchangeably; orientation is normalized before
// computation. Moving-window results are returned as flat float lists.
//
// Example:
//
//	v := []array.Value{array.Int(1), array.Int(2), array.Int(3), array.Int(4)}
//	out, _ := stats.MovMean(v, 3)  // [1.5, 2.0, 3.0, 3.5]
package stats

import (
	"github.com/gosci-dev/gosci/internal/array"
	"github.com/gosci-dev/gosci/internal/stats"
)

// Reductions

// Sum returns the sum of the elements, integer-valued on all-int input.
// Empty input sums to the additive identity, INT 0.
func Sum(raw []array.Value) (array.Value, error) { return stats.Sum(raw) }

// Prod returns the product of the elements, integer-valued on all-int
// input. Empty input multiplies to the multiplicative identity, INT 1.
func Prod(raw []array.Value) (array.Value, error) { return stats.Prod(raw) }

// Mean returns the arithmetic mean, always a float. Empty input is an
// error.
func Mean(raw []array.Value) (array.Value, error) { return stats.Mean(raw) }

// Max returns the largest element, keeping its original kind. Empty
// input is an error.
func Max(raw []array.Value) (array.Value, error) { return stats.Max(raw) }

// Min returns the smallest element, keeping its original kind. Empty
// input is an error.
func Min(raw []array.Value) (array.Value, error) { return stats.Min(raw) }

// ArgMax returns the index of the largest element. Empty input is an
// error.
func ArgMax(raw []array.Value) (int, error) { return stats.ArgMax(raw) }

// ArgMin returns the index of the smallest element. Empty input is an
// error.
func ArgMin(raw []array.Value) (int, error) { return stats.ArgMin(raw) }

// Moving-window statistics

// MovMean computes the centered moving average with window size k.
func MovMean(raw []array.Value, k int) ([]array.Value, error) { return stats.MovMean(raw, k) }

// MovSum computes the centered moving sum with window size k.
func MovSum(raw []array.Value, k int) ([]array.Value, error) { return stats.MovSum(raw, k) }
