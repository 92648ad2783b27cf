// Package series - Value: a tagged optional numeric observation.
//
// This file declares the Value type, its constructors (Num, NA), and the
// NA-propagating arithmetic and ordering helpers every reducer builds on.
//
// Design principles:
//   - NA is represented by an explicit tag, never by math.NaN; a present
//     Value may legitimately hold NaN or ±Inf supplied by the caller.
//   - Arithmetic never panics and never errors: an NA operand yields NA.
//   - Deterministic, side-effect free; Value is a small copyable struct.
package series

import "strconv"

// Value is a single observation: a float64 that may be missing (NA).
// The zero Value is NA.
type Value struct {
	val     float64
	present bool
}

// Num returns a present Value holding f.
func Num(f float64) Value {
	return Value{val: f, present: true}
}

// NA returns the missing value.
func NA() Value {
	return Value{}
}

// IsNA reports whether v is missing. This is the only way missingness is
// observable; no float64 accessor ever stands in for it.
func (v Value) IsNA() bool {
	return !v.present
}

// Get returns the underlying float64 and whether it is present.
// For NA the float64 is 0 and must not be used.
func (v Value) Get() (float64, bool) {
	return v.val, v.present
}

// Add returns v + o, or NA if either operand is missing.
func (v Value) Add(o Value) Value {
	if !v.present || !o.present {
		return NA()
	}

	return Num(v.val + o.val)
}

// Sub returns v - o, or NA if either operand is missing.
func (v Value) Sub(o Value) Value {
	if !v.present || !o.present {
		return NA()
	}

	return Num(v.val - o.val)
}

// Mul returns v * o, or NA if either operand is missing.
func (v Value) Mul(o Value) Value {
	if !v.present || !o.present {
		return NA()
	}

	return Num(v.val * o.val)
}

// Min returns the smaller of v and o, or NA if either operand is missing.
func (v Value) Min(o Value) Value {
	if !v.present || !o.present {
		return NA()
	}
	if o.val < v.val {
		return o
	}

	return v
}

// Max returns the larger of v and o, or NA if either operand is missing.
func (v Value) Max(o Value) Value {
	if !v.present || !o.present {
		return NA()
	}
	if o.val > v.val {
		return o
	}

	return v
}

// Less reports whether v < o. A comparison involving NA is always false,
// on either side; use IsNA to test for missingness.
func (v Value) Less(o Value) bool {
	if !v.present || !o.present {
		return false
	}

	return v.val < o.val
}

// Equal reports value identity: two NAs are equal, and two present values
// are equal when their float64s are exactly equal. This is identity for
// containers and tests, not a numeric comparison — for ordering use Less.
func (v Value) Equal(o Value) bool {
	if !v.present || !o.present {
		return v.present == o.present
	}

	return v.val == o.val
}

// String renders a present value via strconv and NA as "NA".
func (v Value) String() string {
	if !v.present {
		return "NA"
	}

	return strconv.FormatFloat(v.val, 'g', -1, 64)
}
