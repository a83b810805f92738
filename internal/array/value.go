// Package array provides the dynamically typed value and shape primitives
// for the gosci numeric engine.
package array

import "fmt"

// Kind is the runtime tag of a Value.
type Kind int

// Supported value kinds. The numeric engine operates on KindInt and
// KindFloat scalars nested inside KindArray sequences; KindOther marks
// values carried through from a host scripting engine that no numeric
// operation accepts.
const (
	KindInt Kind = iota
	KindFloat
	KindArray
	KindOther
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "INT"
	case KindFloat:
		return "FLOAT"
	case KindArray:
		return "ARRAY"
	case KindOther:
		return "OTHER"
	default:
		return "unknown"
	}
}

// Value is a tagged dynamic value: an integer or floating-point scalar, a
// nested array of further values, or an opaque non-numeric payload.
type Value struct {
	kind  Kind
	i     int64
	f     float64
	arr   []Value
	other any
}

// Int constructs an integer Value.
func Int(v int64) Value {
	return Value{kind: KindInt, i: v}
}

// Float constructs a floating-point Value.
func Float(v float64) Value {
	return Value{kind: KindFloat, f: v}
}

// Arr constructs an array Value from its elements.
func Arr(elems ...Value) Value {
	return List(elems)
}

// List constructs an array Value wrapping the given slice.
// The slice is not copied; callers that need isolation copy first.
func List(elems []Value) Value {
	if elems == nil {
		elems = []Value{}
	}
	return Value{kind: KindArray, arr: elems}
}

// Wrap constructs a non-numeric Value carrying an arbitrary payload.
// Numeric operations reject such values with a typed error.
func Wrap(v any) Value {
	return Value{kind: KindOther, other: v}
}

// FromAny converts a raw dynamically typed value into a Value. Integers of
// any Go width become KindInt, float32/float64 become KindFloat, and
// []any recurses into KindArray. Everything else is wrapped as KindOther.
func FromAny(v any) Value {
	switch x := v.(type) {
	case Value:
		return x
	case int:
		return Int(int64(x))
	case int32:
		return Int(int64(x))
	case int64:
		return Int(x)
	case float32:
		return Float(float64(x))
	case float64:
		return Float(x)
	case []any:
		elems := make([]Value, len(x))
		for i, e := range x {
			elems[i] = FromAny(e)
		}
		return List(elems)
	default:
		return Wrap(v)
	}
}

// Kind returns the runtime tag of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// IsInt reports whether the value is an integer scalar.
func (v Value) IsInt() bool {
	return v.kind == KindInt
}

// IsFloat reports whether the value is a floating-point scalar.
func (v Value) IsFloat() bool {
	return v.kind == KindFloat
}

// IsNumeric reports whether the value is an integer or float scalar.
func (v Value) IsNumeric() bool {
	return v.kind == KindInt || v.kind == KindFloat
}

// IsArray reports whether the value is a nested array.
func (v Value) IsArray() bool {
	return v.kind == KindArray
}

// Int returns the integer payload.
// Panics if the value's kind is not KindInt.
func (v Value) Int() int64 {
	if v.kind != KindInt {
		panic(fmt.Sprintf("value kind is %s, not INT", v.kind))
	}
	return v.i
}

// Float returns the scalar as float64, widening an integer if necessary.
// Panics if the value is not numeric.
func (v Value) Float() float64 {
	switch v.kind {
	case KindFloat:
		return v.f
	case KindInt:
		return float64(v.i)
	default:
		panic(fmt.Sprintf("value kind is %s, not INT or FLOAT", v.kind))
	}
}

// Array returns the nested elements.
// Panics if the value's kind is not KindArray.
func (v Value) Array() []Value {
	if v.kind != KindArray {
		panic(fmt.Sprintf("value kind is %s, not ARRAY", v.kind))
	}
	return v.arr
}

// Interface converts the value back into a raw dynamically typed form:
// int64, float64, []any, or the wrapped payload.
func (v Value) Interface() any {
	switch v.kind {
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindArray:
		out := make([]any, len(v.arr))
		for i, e := range v.arr {
			out[i] = e.Interface()
		}
		return out
	default:
		return v.other
	}
}

// Equal reports deep equality of two values. Int and float scalars are
// distinct kinds even when numerically equal; use Float comparisons for
// kind-insensitive checks.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindInt:
		return v.i == other.i
	case KindFloat:
		return v.f == other.f
	case KindArray:
		if len(v.arr) != len(other.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(other.arr[i]) {
				return false
			}
		}
		return true
	default:
		return v.other == other.other
	}
}

// String renders the value for debugging.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return fmt.Sprintf("%d", v.i)
	case KindFloat:
		return fmt.Sprintf("%g", v.f)
	case KindArray:
		s := "["
		for i, e := range v.arr {
			if i > 0 {
				s += ", "
			}
			s += e.String()
		}
		return s + "]"
	default:
		return fmt.Sprintf("%v", v.other)
	}
}
