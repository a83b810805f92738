package array

// Shape represents the dimension extents of a nested numeric array.
type Shape []int

// NumElements returns the product of all extents.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar context
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// Size classifies a nested array and returns its dimension extents.
//
// The descent follows the first element at each level: a flat list of
// scalars yields [n], a sequence of row arrays yields [rows, len(row0)],
// deeper nesting keeps descending. Size never fails and never mutates its
// input; ragged input yields the spine's extents and is caught by callers
// that cross-check prod(Size) against NumElements (see IsMatrix).
func Size(arr []Value) Shape {
	sizes := Shape{len(arr)}
	cur := arr
	for len(cur) > 0 && cur[0].IsArray() {
		next := cur[0].Array()
		sizes = append(sizes, len(next))
		cur = next
	}
	return sizes
}

// NumElements counts the scalar elements of a nested array, descending
// into every sub-array. Non-numeric scalars count like numeric ones.
func NumElements(arr []Value) int {
	n := 0
	for _, v := range arr {
		if v.IsArray() {
			n += NumElements(v.Array())
		} else {
			n++
		}
	}
	return n
}

// Flatten returns the scalars of a nested array in row-major order.
// The result is always a fresh slice; the input is not modified.
func Flatten(arr []Value) []Value {
	out := make([]Value, 0, NumElements(arr))
	return appendFlat(out, arr)
}

func appendFlat(dst []Value, arr []Value) []Value {
	for _, v := range arr {
		if v.IsArray() {
			dst = appendFlat(dst, v.Array())
		} else {
			dst = append(dst, v)
		}
	}
	return dst
}

// ToList normalizes list-like input to a flat list.
//
// A flat list is copied as-is, a row vector (1×n) or column vector (n×1)
// is flattened in row-major order. Any other shape reports false. This is
// the single bridging point that lets vector-consuming functions accept
// all three orientations interchangeably.
func ToList(arr []Value) ([]Value, bool) {
	s := Size(arr)
	switch {
	case len(s) == 1:
		out := make([]Value, len(arr))
		copy(out, arr)
		return out, true
	case len(s) == 2 && (s[0] == 1 || s[1] == 1):
		if s.NumElements() != NumElements(arr) {
			return nil, false // ragged input masquerading as a vector
		}
		return Flatten(arr), true
	default:
		return nil, false
	}
}

// Totals counts the integer scalars, float scalars, and total elements of
// a nested array in one pass. The validation predicates compare these
// counts to classify numeric content without ever failing.
func Totals(arr []Value) (ints, floats, total int) {
	for _, v := range arr {
		switch {
		case v.IsArray():
			i, f, t := Totals(v.Array())
			ints += i
			floats += f
			total += t
		case v.IsInt():
			ints++
			total++
		case v.IsFloat():
			floats++
			total++
		default:
			total++
		}
	}
	return ints, floats, total
}
