// SPDX-License-Identifier: MIT

// Package stats computes whole-sequence summaries: Range, Mean,
// Variance, and StdDev.
//
// Two failure philosophies live side by side here, both deliberate:
//
//   - Range requires a non-empty input and returns ErrEmptyInput
//     otherwise — there is no meaningful pair of extrema over nothing.
//   - Mean, Variance, and StdDev are total functions: an input too short
//     to define them (empty for Mean, fewer than two observations for
//     Variance/StdDev) yields NA, never an error.
//
// Missing values propagate as "result unknown": any NA in the input
// makes Mean/Variance/StdDev NA, and makes both Range bounds NA unless
// Options.SkipNA is set. Under SkipNA, Range genuinely skips missing
// entries, records one Advisory per skip, and reduces over the
// survivors; an all-NA input yields an NA/NA pair.
//
// ⚙️ Usage:
//
//	lo, hi, _, err := stats.Range(x, stats.DefaultOptions())
//	v := stats.Variance(x) // series.Value; v.IsNA() when undefined
//
// Determinism: single fixed-direction scans, no randomness; every
// function is pure and never mutates its input.
package stats
