// SPDX-License-Identifier: MIT

package stats

import (
	"math"

	"github.com/katalvlaran/lvlseq/series"
)

// Mean returns the arithmetic mean of x as a running sum divided by n.
// Total function: an empty input or any missing entry yields NA.
//
// Complexity: O(n) time, O(1) space.
func Mean(x series.Sequence) series.Value {
	n := len(x)
	if n == 0 {
		return series.NA()
	}

	var sum float64
	for _, v := range x {
		f, ok := v.Get()
		if !ok {
			return series.NA()
		}
		sum += f
	}

	return series.Num(sum / float64(n))
}

// Variance returns the sample variance of x via the two-pass algorithm:
// first the mean, then Σ(x[i]-mean)² / (n-1).
//
// Total function: fewer than two observations leave the sample variance
// undefined, so the result is NA, never an error. Any missing entry
// likewise yields NA.
//
// Complexity: O(n) time over two passes, O(1) space.
func Variance(x series.Sequence) series.Value {
	n := len(x)
	if n < 2 {
		return series.NA()
	}

	mean := Mean(x)
	m, ok := mean.Get()
	if !ok {
		return series.NA()
	}

	// Second pass: all entries are present, or Mean would have been NA.
	var ss float64
	for _, v := range x {
		f, _ := v.Get()
		d := f - m
		ss += d * d
	}

	return series.Num(ss / float64(n-1))
}

// StdDev returns the sample standard deviation: √Variance(x).
// NA whenever Variance is NA.
func StdDev(x series.Sequence) series.Value {
	v, ok := Variance(x).Get()
	if !ok {
		return series.NA()
	}

	return series.Num(math.Sqrt(v))
}
