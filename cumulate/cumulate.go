package cumulate

import "github.com/katalvlaran/lvlseq/series"

// Sum computes the cumulative sum of x.
//
// Algorithm outline:
//  1. Validate: len(x) ≥ 1, otherwise ErrEmptyInput.
//  2. out[0] = x[0] unconditionally (no advisory even if x[0] is NA).
//  3. For i = 1..n-1:
//     - SkipNA and x[i] missing → out[i] = NA, record one advisory;
//     - otherwise out[i] = out[i-1] + x[i] (NA-propagating Add).
//
// Once an NA enters the accumulator it cascades: every later output is
// NA regardless of SkipNA, because addition with a missing operand is
// missing. Advisories are recorded only for positions where SkipNA
// actually met a missing input entry.
//
// Returns (output, advisories, error). The advisory slice is nil when
// nothing was skipped. The input is never mutated.
//
// Complexity: O(n) time, O(n) space.
func Sum(x series.Sequence, opts Options) (series.Sequence, []series.Advisory, error) {
	n := len(x)
	if n == 0 {
		return nil, nil, ErrEmptyInput
	}

	out := make(series.Sequence, n)
	out[0] = x[0]

	var advs []series.Advisory
	for i := 1; i < n; i++ {
		if opts.SkipNA && x[i].IsNA() {
			out[i] = series.NA()
			advs = append(advs, series.Advisory{Op: opSum, Index: i})

			continue
		}
		out[i] = out[i-1].Add(x[i])
	}

	return out, advs, nil
}

// Prod computes the cumulative product of x: out[0] = x[0],
// out[i] = out[i-1] * x[i]. There is no skip mode; a missing entry
// propagates NA through every later position.
//
// Returns ErrEmptyInput when x is empty.
//
// Complexity: O(n) time, O(n) space.
func Prod(x series.Sequence) (series.Sequence, error) {
	n := len(x)
	if n == 0 {
		return nil, ErrEmptyInput
	}

	out := make(series.Sequence, n)
	out[0] = x[0]
	for i := 1; i < n; i++ {
		out[i] = out[i-1].Mul(x[i])
	}

	return out, nil
}
