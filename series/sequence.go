package series

import (
	"math"
	"strings"
)

// Sequence is an ordered, finite collection of observations. Sequences are
// immutable by convention: reducers allocate their outputs and never write
// to their inputs.
type Sequence []Value

// FromFloat64s lifts a plain float64 slice into a Sequence of present
// values. The input slice is copied, never aliased.
func FromFloat64s(xs []float64) Sequence {
	s := make(Sequence, len(xs))
	for i, x := range xs {
		s[i] = Num(x)
	}

	return s
}

// Float64s lowers s back to a plain float64 slice. NA entries become
// math.NaN in the result; the boolean reports whether the lowering was
// exact (true when s contained no NA).
func (s Sequence) Float64s() ([]float64, bool) {
	out := make([]float64, len(s))
	exact := true
	for i, v := range s {
		if f, ok := v.Get(); ok {
			out[i] = f
		} else {
			out[i] = math.NaN()
			exact = false
		}
	}

	return out, exact
}

// Clone returns a copy of s sharing no storage with it.
func (s Sequence) Clone() Sequence {
	if s == nil {
		return nil
	}
	out := make(Sequence, len(s))
	copy(out, s)

	return out
}

// HasNA reports whether any entry of s is missing.
func (s Sequence) HasNA() bool {
	for _, v := range s {
		if v.IsNA() {
			return true
		}
	}

	return false
}

// Equal reports element-wise identity (Value.Equal) between s and o.
func (s Sequence) Equal(o Sequence) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if !s[i].Equal(o[i]) {
			return false
		}
	}

	return true
}

// String renders the sequence as "[v0 v1 ... vn]" with NA spelled out.
func (s Sequence) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range s {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(v.String())
	}
	b.WriteByte(']')

	return b.String()
}
