// Package lvlseq is your in-memory toolbox for reducing, differencing,
// and summarizing numeric sequences — with explicit, first-class handling
// of missing observations.
//
// 🚀 What is lvlseq?
//
//	A small, zero-runtime-dependency library that brings together:
//		• Core primitives: a tagged optional numeric (present | NA) and a
//		  Sequence type that never conflates NA with any real value
//		• Prefix reducers: cumulative sum, product, minimum, maximum
//		• Windowed transforms: lagged difference with configurable lag
//		• Whole-sequence summaries: range, mean, sample variance, std. dev.
//		• Advisories: non-fatal missing-value warnings returned as values,
//		  never logged, never aborting a computation
//
// ✨ Why choose lvlseq?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Predictable NA semantics – arithmetic with a missing operand yields
//     missing; once a prefix reducer absorbs an NA, it cascades forward
//   - Pure Go – no cgo, no hidden deps
//   - Pure functions – inputs are never mutated; re-running any reducer
//     on the same input yields identical output
//
// Everything is organized under four subpackages:
//
//	series/   — Value, Sequence and Advisory: the shared data model
//	cumulate/ — prefix reducers (Sum, Prod, Min, Max)
//	lagdiff/  — lagged difference (Diff)
//	stats/    — Range, Mean, Variance, StdDev
//
// Quick taste:
//
//	x := series.FromFloat64s([]float64{1, 2, 3})
//	out, _, err := cumulate.Sum(x, cumulate.DefaultOptions())
//	// out == [1 3 6]
//
// Errors are package-level sentinels ("cumulate: ...", "lagdiff: ...")
// matched with errors.Is; missing values are data, not errors.
//
// Dive into examples/ for runnable walkthroughs of every package.
//
//	go get github.com/katalvlaran/lvlseq
package lvlseq
