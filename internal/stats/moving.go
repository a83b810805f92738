package stats

import (
	"github.com/gosci-dev/gosci/internal/array"
	"github.com/gosci-dev/gosci/internal/matrix"
)

// MovMean computes the centered moving average with window size k,
// MATLAB's movmean. Windows shrink at the edges: element i averages the
// slice [i-k/2, i+(k-1)/2] clipped to the input bounds, so an even
// window is centered about the current and previous elements. The input
// may be a flat list, row vector, or column vector; the result is
// always a flat list of floats.
//
// Example: MovMean([1,2,3,4], 3) = [1.5, 2.0, 3.0, 3.5].
func MovMean(raw []array.Value, k int) ([]array.Value, error) {
	return moving("movmean", raw, k, func(sum float64, n int) float64 {
		return sum / float64(n)
	})
}

// MovSum computes the centered moving sum with window size k, with the
// same window and orientation semantics as MovMean.
func MovSum(raw []array.Value, k int) ([]array.Value, error) {
	return moving("movsum", raw, k, func(sum float64, _ int) float64 {
		return sum
	})
}

func moving(op string, raw []array.Value, k int, fold func(sum float64, n int) float64) ([]array.Value, error) {
	flat, err := normalize(op, raw)
	if err != nil {
		return nil, err
	}
	if k <= 0 {
		return nil, &matrix.Error{Op: op, Msg: "window size must be positive"}
	}
	n := len(flat)
	before := k / 2
	after := (k - 1) / 2
	out := make([]array.Value, n)
	for i := 0; i < n; i++ {
		lo, hi := i-before, i+after
		if lo < 0 {
			lo = 0
		}
		if hi > n-1 {
			hi = n - 1
		}
		var sum float64
		for j := lo; j <= hi; j++ {
			sum += flat[j].Float()
		}
		out[i] = array.Float(fold(sum, hi-lo+1))
	}
	return out, nil
}
