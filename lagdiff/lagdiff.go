package lagdiff

import "github.com/katalvlaran/lvlseq/series"

// Diff computes the lagged difference of x under opts.
//
// Algorithm outline:
//  1. Validate: 1 ≤ opts.Lag < len(x), otherwise ErrBadLag (fatal,
//     before any allocation).
//  2. Allocate out of length len(x) - Lag.
//  3. For i = 0..len(out)-1:
//     - SkipNA and x[i+Lag] missing → out[i] = NA, record one advisory
//     at input index i+Lag;
//     - otherwise out[i] = x[i+Lag] - x[i] (NA-propagating Sub).
//
// Only the right-hand operand is NA-checked under SkipNA: a missing
// x[i] propagates NA through the subtraction without an advisory. The
// asymmetry is preserved as the documented behavior of this routine
// rather than silently "fixed".
//
// Returns (output, advisories, error); the advisory slice is nil when
// nothing was skipped. The input is never mutated.
//
// Complexity: O(n) time, O(n-lag) space.
func Diff(x series.Sequence, opts Options) (series.Sequence, []series.Advisory, error) {
	n := len(x)
	if opts.Lag < 1 || opts.Lag >= n {
		return nil, nil, ErrBadLag
	}

	out := make(series.Sequence, n-opts.Lag)

	var advs []series.Advisory
	for i := range out {
		right := x[i+opts.Lag]
		if opts.SkipNA && right.IsNA() {
			out[i] = series.NA()
			advs = append(advs, series.Advisory{Op: opDiff, Index: i + opts.Lag})

			continue
		}
		out[i] = right.Sub(x[i])
	}

	return out, advs, nil
}
