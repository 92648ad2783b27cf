// Package series defines the shared data model for lvlseq reducers:
// Value, Sequence, and Advisory.
//
// 🚀 What is a series.Value?
//
//	A tagged optional numeric: either a present float64 or NA (missing).
//	NA is a first-class sentinel distinct from every real number — it is
//	observable only through IsNA, and never compares true against any
//	value, including another NA, under Less.
//
// ✨ Key rules:
//   - Arithmetic (Add, Sub, Mul) with an NA operand yields NA —
//     "result unknown" propagates, it never panics and never errors.
//   - Ordering helpers (Min, Max) yield NA when either operand is NA.
//   - Equal is value identity, not numeric comparison: NA.Equal(NA) is
//     true so that sequences containing NA can be compared in tests.
//
// A Sequence is just []Value with constructors and accessors. Sequences
// are immutable by convention: every lvlseq reducer allocates its output
// and never writes to its input.
//
// An Advisory is a non-fatal missing-value warning returned as a value
// alongside a successful result. Advisories never abort a computation
// and are never logged.
//
// Example:
//
//	x := series.Sequence{series.Num(1), series.NA(), series.Num(3)}
//	x.HasNA() // true
//	x[1].Add(series.Num(2)).IsNA() // true — NA propagates
package series
