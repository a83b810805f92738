package array

import "testing"

func ints(vs ...int64) []Value {
	out := make([]Value, len(vs))
	for i, v := range vs {
		out[i] = Int(v)
	}
	return out
}

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape    Shape
		expected int
	}{
		{Shape{}, 1},      // Scalar context
		{Shape{5}, 5},     // 1D
		{Shape{3, 4}, 12}, // 2D
		{Shape{1, 1}, 1},
	}

	for _, tt := range tests {
		if got := tt.shape.NumElements(); got != tt.expected {
			t.Errorf("Shape%v.NumElements() = %d, want %d", tt.shape, got, tt.expected)
		}
	}
}

func TestShapeEqualAndClone(t *testing.T) {
	s := Shape{2, 3}
	if !s.Equal(Shape{2, 3}) {
		t.Error("expected shapes to be equal")
	}
	if s.Equal(Shape{3, 2}) || s.Equal(Shape{2}) {
		t.Error("expected shapes to differ")
	}
	c := s.Clone()
	c[0] = 9
	if s[0] != 2 {
		t.Error("Clone must not share storage")
	}
}

func TestSize(t *testing.T) {
	tests := []struct {
		name string
		arr  []Value
		want Shape
	}{
		{"flat list", ints(1, 2, 3), Shape{3}},
		{"row vector", []Value{List(ints(1, 2, 3))}, Shape{1, 3}},
		{"column vector", []Value{Arr(Int(1)), Arr(Int(2))}, Shape{2, 1}},
		{"matrix", []Value{List(ints(1, 2)), List(ints(3, 4))}, Shape{2, 2}},
		{"3d", []Value{Arr(Arr(Int(1), Int(2)))}, Shape{1, 1, 2}},
		{"empty", []Value{}, Shape{0}},
	}

	for _, tt := range tests {
		if got := Size(tt.arr); !got.Equal(tt.want) {
			t.Errorf("%s: Size() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestSizeDoesNotMutate(t *testing.T) {
	arr := []Value{List(ints(1, 2)), List(ints(3, 4))}
	before := List(arr).String()
	_ = Size(arr)
	_ = NumElements(arr)
	_ = Flatten(arr)
	if got := List(arr).String(); got != before {
		t.Errorf("classification mutated input: %s -> %s", before, got)
	}
}

func TestNumElements(t *testing.T) {
	tests := []struct {
		name string
		arr  []Value
		want int
	}{
		{"flat", ints(1, 2, 3), 3},
		{"matrix", []Value{List(ints(1, 2)), List(ints(3, 4))}, 4},
		{"ragged", []Value{List(ints(1, 2)), List(ints(3))}, 3},
		{"mixed depth", []Value{Int(1), Arr(Int(2), Int(3))}, 3},
		{"non-numeric counted", []Value{Int(1), Wrap("a")}, 2},
	}

	for _, tt := range tests {
		if got := NumElements(tt.arr); got != tt.want {
			t.Errorf("%s: NumElements() = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestFlattenRowMajor(t *testing.T) {
	arr := []Value{List(ints(1, 2)), List(ints(3, 4))}
	flat := Flatten(arr)
	want := ints(1, 2, 3, 4)
	if len(flat) != len(want) {
		t.Fatalf("Flatten() len = %d, want %d", len(flat), len(want))
	}
	for i := range want {
		if !flat[i].Equal(want[i]) {
			t.Errorf("Flatten()[%d] = %v, want %v", i, flat[i], want[i])
		}
	}
}

func TestToList(t *testing.T) {
	tests := []struct {
		name string
		arr  []Value
		want []int64
		ok   bool
	}{
		{"flat list", ints(1, 2, 3), []int64{1, 2, 3}, true},
		{"row vector", []Value{List(ints(1, 2, 3))}, []int64{1, 2, 3}, true},
		{"column vector", []Value{Arr(Int(1)), Arr(Int(2))}, []int64{1, 2}, true},
		{"1x1", []Value{Arr(Int(7))}, []int64{7}, true},
		{"matrix", []Value{List(ints(1, 2)), List(ints(3, 4))}, nil, false},
		{"ragged pseudo-column", []Value{Arr(Int(1)), List(ints(2, 3))}, nil, false},
	}

	for _, tt := range tests {
		flat, ok := ToList(tt.arr)
		if ok != tt.ok {
			t.Errorf("%s: ToList() ok = %v, want %v", tt.name, ok, tt.ok)
			continue
		}
		if !ok {
			continue
		}
		if len(flat) != len(tt.want) {
			t.Errorf("%s: ToList() len = %d, want %d", tt.name, len(flat), len(tt.want))
			continue
		}
		for i, v := range tt.want {
			if flat[i].Int() != v {
				t.Errorf("%s: ToList()[%d] = %v, want %d", tt.name, i, flat[i], v)
			}
		}
	}
}

func TestToListCopies(t *testing.T) {
	arr := ints(1, 2, 3)
	flat, ok := ToList(arr)
	if !ok {
		t.Fatal("ToList failed on flat list")
	}
	flat[0] = Int(99)
	if arr[0].Int() != 1 {
		t.Error("ToList must return a fresh slice")
	}
}

func TestTotals(t *testing.T) {
	arr := []Value{Int(1), Float(2.0), Wrap("a"), Arr(Int(3), Float(4.0))}
	ints, floats, total := Totals(arr)
	if ints != 2 || floats != 2 || total != 5 {
		t.Errorf("Totals() = (%d, %d, %d), want (2, 2, 5)", ints, floats, total)
	}
}
