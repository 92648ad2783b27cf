package cumulate

import "github.com/katalvlaran/lvlseq/series"

// Min computes the cumulative minimum of x: out[0] = x[0],
// out[i] = min(out[i-1], x[i]). A missing entry propagates NA forward,
// since ordering against NA is undefined.
//
// Returns ErrEmptyInput when x is empty.
func Min(x series.Sequence) (series.Sequence, error) {
	return runningExtremum(x, series.Value.Min)
}

// Max computes the cumulative maximum of x: out[0] = x[0],
// out[i] = max(out[i-1], x[i]). NA propagates as in Min.
//
// Returns ErrEmptyInput when x is empty.
func Max(x series.Sequence) (series.Sequence, error) {
	return runningExtremum(x, series.Value.Max)
}

// runningExtremum is the single fold behind Min and Max; pick selects
// the direction (Value.Min or Value.Max as a method expression).
//
// Complexity: O(n) time, O(n) space.
func runningExtremum(x series.Sequence, pick func(series.Value, series.Value) series.Value) (series.Sequence, error) {
	n := len(x)
	if n == 0 {
		return nil, ErrEmptyInput
	}

	out := make(series.Sequence, n)
	out[0] = x[0]
	for i := 1; i < n; i++ {
		out[i] = pick(out[i-1], x[i])
	}

	return out, nil
}
