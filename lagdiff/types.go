// Package lagdiff - options and sentinel errors.
package lagdiff

import "errors"

// ErrBadLag is returned when the requested lag is not in [1, len(x)-1].
// A lag of at least len(x) leaves no pair of positions to difference;
// a lag below 1 is meaningless.
var ErrBadLag = errors.New("lagdiff: lag must be at least 1 and less than len(x)")

// Operation name carried by advisories.
const opDiff = "lagdiff.Diff"

// DefaultLag is the offset used by DefaultOptions: adjacent differences.
const DefaultLag = 1

// Options configures Diff.
//
// Fields:
//   - Lag    — offset between the compared positions; must satisfy
//     1 ≤ Lag < len(x).
//   - SkipNA — when true, a missing right-hand operand x[i+Lag] marks
//     out[i] missing and records one Advisory instead of subtracting;
//     the left-hand operand is deliberately not checked (see package doc).
type Options struct {
	Lag    int
	SkipNA bool
}

// DefaultOptions returns the canonical configuration: Lag 1, SkipNA off.
func DefaultOptions() Options {
	return Options{Lag: DefaultLag}
}
