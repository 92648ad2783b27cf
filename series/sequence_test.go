package series_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlseq/series"
)

// TestSequence_FromFloat64sCopies verifies the constructor copies its
// input: mutating the source slice must not leak into the Sequence.
func TestSequence_FromFloat64sCopies(t *testing.T) {
	src := []float64{1, 2, 3}
	s := series.FromFloat64s(src)
	src[0] = 99

	assert.True(t, s[0].Equal(series.Num(1)), "sequence must not alias the source slice")
}

// TestSequence_Float64sLowering verifies the exactness flag and NaN
// placeholder for NA slots.
func TestSequence_Float64sLowering(t *testing.T) {
	s := series.Sequence{series.Num(1), series.NA(), series.Num(3)}

	out, exact := s.Float64s()
	require.Len(t, out, 3)
	assert.False(t, exact, "lowering a sequence with NA is not exact")
	assert.Equal(t, 1.0, out[0])
	assert.True(t, math.IsNaN(out[1]), "NA slot lowers to NaN")
	assert.Equal(t, 3.0, out[2])

	out2, exact2 := series.FromFloat64s([]float64{4, 5}).Float64s()
	assert.True(t, exact2)
	assert.Equal(t, []float64{4, 5}, out2)
}

// TestSequence_CloneSharesNoStorage verifies Clone independence and
// nil passthrough.
func TestSequence_CloneSharesNoStorage(t *testing.T) {
	s := series.FromFloat64s([]float64{1, 2})
	c := s.Clone()
	c[0] = series.NA()

	assert.True(t, s[0].Equal(series.Num(1)), "clone must not share storage")
	assert.Nil(t, series.Sequence(nil).Clone())
}

// TestSequence_HasNA covers both branches.
func TestSequence_HasNA(t *testing.T) {
	assert.False(t, series.FromFloat64s([]float64{1, 2}).HasNA())
	assert.True(t, series.Sequence{series.Num(1), series.NA()}.HasNA())
	assert.False(t, series.Sequence{}.HasNA())
}

// TestSequence_Equal exercises identity semantics, including NA == NA,
// and cross-checks with go-cmp, which picks up Value.Equal.
func TestSequence_Equal(t *testing.T) {
	a := series.Sequence{series.Num(1), series.NA()}
	b := series.Sequence{series.Num(1), series.NA()}
	c := series.Sequence{series.Num(1), series.Num(0)}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c), "NA must not equal 0")
	assert.False(t, a.Equal(a[:1]), "length mismatch")

	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("sequences differ (-want +got):\n%s", diff)
	}
}

// TestSequence_String verifies the rendered form used in examples.
func TestSequence_String(t *testing.T) {
	s := series.Sequence{series.Num(1), series.NA(), series.Num(3.5)}
	assert.Equal(t, "[1 NA 3.5]", s.String())
	assert.Equal(t, "[]", series.Sequence{}.String())
}
