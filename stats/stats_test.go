// Copyright 2025 The gosci Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package stats_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gosci-dev/gosci/array"
	"github.com/gosci-dev/gosci/matrix"
	"github.com/gosci-dev/gosci/stats"
)

func ints(vs ...int64) []array.Value {
	out := make([]array.Value, len(vs))
	for i, v := range vs {
		out[i] = array.Int(v)
	}
	return out
}

func TestMovMeanIsOrientationIndependent(t *testing.T) {
	data := ints(1, 2, 3, 4)
	want := []float64{1.5, 2.0, 3.0, 3.5}

	inputs := map[string][]array.Value{
		"flat list":     data,
		"row vector":    matrix.RowVector(data).ToArray(),
		"column vector": matrix.ColumnVector(data).ToArray(),
	}
	for name, input := range inputs {
		got, err := stats.MovMean(input, 3)
		require.NoError(t, err, name)
		require.Len(t, got, len(want), name)
		for i, v := range got {
			require.Equal(t, want[i], v.Float(), "%s index %d", name, i)
		}
	}
}

func TestReductionsAcceptVectors(t *testing.T) {
	column := matrix.ColumnVector(ints(1, 9, 3)).ToArray()

	idx, err := stats.ArgMax(column)
	require.NoError(t, err)
	require.Equal(t, 1, idx)

	sum, err := stats.Sum(column)
	require.NoError(t, err)
	require.Equal(t, int64(13), sum.Int())

	mean, err := stats.Mean(column)
	require.NoError(t, err)
	require.InDelta(t, 13.0/3.0, mean.Float(), 1e-12)
}

func TestStatsRejectMatrices(t *testing.T) {
	m := matrix.FromArray([]array.Value{
		array.List(ints(1, 2)),
		array.List(ints(3, 4)),
	})
	_, err := stats.Sum(m.ToArray())
	require.Error(t, err)

	var me *matrix.Error
	require.ErrorAs(t, err, &me)
	require.Contains(t, me.Msg, "list, row vector, or column vector")
}
