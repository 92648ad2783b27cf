// Package cumulate - options and sentinel errors.
package cumulate

import "errors"

// ErrEmptyInput is returned when a reducer receives an empty sequence.
// Every cumulative reducer needs at least one element to seed out[0].
var ErrEmptyInput = errors.New("cumulate: input sequence must be non-empty")

// Operation names carried by advisories.
const opSum = "cumulate.Sum"

// Options configures the NA-aware cumulative reducers.
//
// Fields:
//   - SkipNA — when true, a missing input entry marks the corresponding
//     output entry missing and records one Advisory instead of feeding
//     the accumulator; computation continues for later positions. When
//     false, a missing entry simply propagates through the accumulator
//     (NA + anything = NA) with no advisory.
//
// Either way the cascade holds: once out[i-1] is NA, every later output
// is NA too.
type Options struct {
	SkipNA bool
}

// DefaultOptions returns the zero configuration: SkipNA disabled.
func DefaultOptions() Options {
	return Options{}
}
