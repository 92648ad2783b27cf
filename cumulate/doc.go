// Package cumulate computes prefix reductions over numeric sequences:
// cumulative sum, product, minimum, and maximum.
//
// 🚀 What is a prefix reduction?
//
//	out[0] = x[0], and every later entry folds the previous output into
//	the next input: out[i] = f(out[i-1], x[i]). The input's prefix
//	dependency makes each scan inherently sequential, but independent
//	sequences can always be reduced concurrently — no function in this
//	package reads or writes shared state.
//
// ✨ Key features:
//   - Sum understands missing values: with Options.SkipNA a missing
//     input entry yields a missing output entry plus one Advisory, and
//     computation continues
//   - Cascading NA: once an NA reaches the accumulator it propagates to
//     every later position (NA + anything = NA), with or without SkipNA
//   - Min and Max share one running-extremum fold, parameterized by
//     comparison direction
//   - Pure functions: inputs are never mutated
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlseq/cumulate"
//
//	opts := cumulate.DefaultOptions()
//	opts.SkipNA = true
//
//	out, advs, err := cumulate.Sum(x, opts)
//	if err != nil {
//	  // only ErrEmptyInput is possible
//	}
//
// Errors:
//   - ErrEmptyInput — the input sequence is empty (precondition, fatal).
//     Missing values are never errors; they are data (plus advisories).
//
// Complexity: every reducer is O(n) time, O(n) output space.
package cumulate
