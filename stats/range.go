// SPDX-License-Identifier: MIT

package stats

import "github.com/katalvlaran/lvlseq/series"

// Options configures Range.
//
// Fields:
//   - SkipNA — when true, missing entries are skipped (one Advisory
//     each) and the extrema reduce over the surviving observations;
//     when false, any missing entry makes both bounds NA.
type Options struct {
	SkipNA bool
}

// DefaultOptions returns the zero configuration: SkipNA disabled.
func DefaultOptions() Options {
	return Options{}
}

// Range returns the minimum and maximum of x in one linear scan.
//
// Plain mode (SkipNA=false): running extrema seeded with x[0]; a
// missing entry anywhere makes both bounds NA, since ordering against
// NA is undefined.
//
// Skip mode (SkipNA=true): missing entries are skipped and reported via
// one Advisory each; the extrema reduce over the present observations.
// An input consisting entirely of NA yields an NA/NA pair. Note this is
// the stated intent of a skip mode, implemented as such — not the
// short-circuit-to-missing behavior some implementations exhibit.
//
// Returns ErrEmptyInput when x is empty; otherwise (min, max,
// advisories, nil). The input is never mutated.
//
// Complexity: O(n) time, O(1) extra space beyond advisories.
func Range(x series.Sequence, opts Options) (min, max series.Value, advs []series.Advisory, err error) {
	n := len(x)
	if n == 0 {
		return series.NA(), series.NA(), nil, ErrEmptyInput
	}

	if !opts.SkipNA {
		min, max = x[0], x[0]
		for i := 1; i < n; i++ {
			min = min.Min(x[i])
			max = max.Max(x[i])
		}

		return min, max, nil, nil
	}

	min, max = series.NA(), series.NA()
	for i, v := range x {
		if v.IsNA() {
			advs = append(advs, series.Advisory{Op: opRange, Index: i})

			continue
		}
		if min.IsNA() {
			// First present observation seeds both extrema.
			min, max = v, v

			continue
		}
		min = min.Min(v)
		max = max.Max(v)
	}

	return min, max, advs, nil
}
