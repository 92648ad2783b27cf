// SPDX-License-Identifier: MIT

package stats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlseq/series"
	"github.com/katalvlaran/lvlseq/stats"
)

// TestVariance_Constant verifies a constant series has zero variance.
func TestVariance_Constant(t *testing.T) {
	x := series.FromFloat64s([]float64{2, 2, 2, 2})

	v := stats.Variance(x)
	require.False(t, v.IsNA())
	f, _ := v.Get()
	assert.Equal(t, 0.0, f)
}

// TestVariance_Known verifies the sample (n-1) denominator on a series
// with an exactly representable variance: [1,2,3,4] → 5/3.
func TestVariance_Known(t *testing.T) {
	x := series.FromFloat64s([]float64{1, 2, 3, 4})

	v := stats.Variance(x)
	require.False(t, v.IsNA())
	f, _ := v.Get()
	assert.InDelta(t, 5.0/3.0, f, 1e-12)
}

// TestVariance_TooShortIsNA verifies totality: fewer than two
// observations yield NA, never an error.
func TestVariance_TooShortIsNA(t *testing.T) {
	assert.True(t, stats.Variance(series.FromFloat64s([]float64{42})).IsNA(), "n=1 must be NA")
	assert.True(t, stats.Variance(nil).IsNA(), "n=0 must be NA")
}

// TestVariance_NAPropagates verifies that a missing observation makes
// the variance unknown.
func TestVariance_NAPropagates(t *testing.T) {
	x := series.Sequence{series.Num(1), series.NA(), series.Num(3)}
	assert.True(t, stats.Variance(x).IsNA())
}

// TestMean covers the total-function contract of the first pass.
func TestMean(t *testing.T) {
	m := stats.Mean(series.FromFloat64s([]float64{1, 2, 3, 4}))
	require.False(t, m.IsNA())
	f, _ := m.Get()
	assert.Equal(t, 2.5, f)

	assert.True(t, stats.Mean(nil).IsNA(), "empty mean is NA")
	assert.True(t, stats.Mean(series.Sequence{series.NA()}).IsNA(), "NA poisons the mean")
}

// TestStdDev verifies √Variance and NA passthrough.
func TestStdDev(t *testing.T) {
	sd := stats.StdDev(series.FromFloat64s([]float64{1, 1, 1, 5}))
	require.False(t, sd.IsNA())
	f, _ := sd.Get()
	assert.InDelta(t, 2.0, f, 1e-12) // variance (n-1): 12/3 = 4

	assert.True(t, stats.StdDev(series.FromFloat64s([]float64{7})).IsNA())
}

// TestVariance_PureFunction verifies idempotence across repeated calls.
func TestVariance_PureFunction(t *testing.T) {
	x := series.FromFloat64s([]float64{3, 1, 4, 1, 5})
	snapshot := x.Clone()

	v1 := stats.Variance(x)
	v2 := stats.Variance(x)
	assert.True(t, v1.Equal(v2), "re-running must be identical")
	assert.True(t, x.Equal(snapshot), "input must not be mutated")
}
