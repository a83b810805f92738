package stats

import (
	"testing"

	"github.com/gosci-dev/gosci/internal/array"
)

func floats(t *testing.T, vs []array.Value) []float64 {
	t.Helper()
	out := make([]float64, len(vs))
	for i, v := range vs {
		if !v.IsFloat() {
			t.Fatalf("moving results must be floats, got %v", v)
		}
		out[i] = v.Float()
	}
	return out
}

func equalFloats(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestMovMeanWindowThree(t *testing.T) {
	want := []float64{1.5, 2.0, 3.0, 3.5}
	for _, input := range orientations(ints(1, 2, 3, 4)) {
		got, err := MovMean(input, 3)
		if err != nil {
			t.Fatalf("MovMean failed: %v", err)
		}
		if !equalFloats(floats(t, got), want) {
			t.Errorf("MovMean() = %v, want %v", floats(t, got), want)
		}
		if !array.IsFloatList(got) {
			t.Error("MovMean must return a flat float list")
		}
	}
}

func TestMovMeanEvenWindowCentersBackward(t *testing.T) {
	// An even window covers the current and previous elements:
	// element i spans [i-k/2, i+(k-1)/2].
	got, err := MovMean(ints(1, 2, 3, 4), 4)
	if err != nil {
		t.Fatalf("MovMean failed: %v", err)
	}
	want := []float64{1.5, 2, 2.5, 3}
	if !equalFloats(floats(t, got), want) {
		t.Errorf("MovMean(k=4) = %v, want %v", floats(t, got), want)
	}

	sums, err := MovSum(ints(1, 2, 3, 4), 2)
	if err != nil {
		t.Fatalf("MovSum failed: %v", err)
	}
	wantSums := []float64{1, 3, 5, 7}
	if !equalFloats(floats(t, sums), wantSums) {
		t.Errorf("MovSum(k=2) = %v, want %v", floats(t, sums), wantSums)
	}
}

func TestMovMeanWindowLargerThanInput(t *testing.T) {
	got, err := MovMean(ints(1, 2), 5)
	if err != nil {
		t.Fatalf("MovMean failed: %v", err)
	}
	want := []float64{1.5, 1.5}
	if !equalFloats(floats(t, got), want) {
		t.Errorf("MovMean() = %v, want %v", floats(t, got), want)
	}
}

func TestMovSum(t *testing.T) {
	got, err := MovSum(ints(1, 2, 3, 4), 3)
	if err != nil {
		t.Fatalf("MovSum failed: %v", err)
	}
	want := []float64{3, 6, 9, 7}
	if !equalFloats(floats(t, got), want) {
		t.Errorf("MovSum() = %v, want %v", floats(t, got), want)
	}
}

func TestMovingRejectsBadWindow(t *testing.T) {
	if _, err := MovMean(ints(1, 2, 3), 0); err == nil {
		t.Error("zero window must fail")
	}
	if _, err := MovSum(ints(1, 2, 3), -2); err == nil {
		t.Error("negative window must fail")
	}
}
