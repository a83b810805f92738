package array

// Validation predicates classify nested arrays without ever failing:
// any malformed or unrecognized shape yields false, not an error.

// IsList reports whether the array is a flat one-dimensional list.
func IsList(arr []Value) bool {
	return len(Size(arr)) == 1
}

// IsNumericArray reports whether every element of the array, at any
// nesting depth, is an integer or float scalar.
func IsNumericArray(arr []Value) bool {
	ints, floats, total := Totals(arr)
	return ints+floats == total
}

// IsNumericList reports whether the array is a flat list whose elements
// are all integers or all floats. A list mixing the two kinds does not
// qualify.
func IsNumericList(arr []Value) bool {
	ints, floats, total := Totals(arr)
	return (ints == total || floats == total) && IsList(arr)
}

// IsIntList reports whether the array is a flat list of integers.
// Every element is verified, not just the first.
func IsIntList(arr []Value) bool {
	ints, _, total := Totals(arr)
	return ints == total && IsList(arr)
}

// IsFloatList reports whether the array is a flat list of floats.
// Every element is verified, not just the first.
func IsFloatList(arr []Value) bool {
	_, floats, total := Totals(arr)
	return floats == total && IsList(arr)
}

// IsRowVector reports whether the array is a 1×n matrix.
func IsRowVector(arr []Value) bool {
	s := Size(arr)
	return len(s) == 2 && s[0] == 1
}

// IsColumnVector reports whether the array is an n×1 matrix.
func IsColumnVector(arr []Value) bool {
	s := Size(arr)
	return len(s) == 2 && s[1] == 1
}

// IsMatrix reports whether the array is a rectangular two-dimensional
// matrix. The element count cross-check rejects ragged input whose spine
// merely looks two-dimensional.
func IsMatrix(arr []Value) bool {
	s := Size(arr)
	if len(s) != 2 {
		return false
	}
	return s.NumElements() == NumElements(arr)
}
