// Package lagdiff computes lagged differences over numeric sequences:
// out[i] = x[i+lag] - x[i].
//
// 🚀 What is a lagged difference?
//
//	The discrete change of a series over a fixed offset. Lag 1 gives
//	step-to-step deltas; lag 7 over daily data gives week-over-week
//	change. The output is shorter than the input by exactly lag.
//
// ✨ Key features:
//   - Configurable lag (Options.Lag, default 1)
//   - NA-aware mode (Options.SkipNA): a missing right-hand operand marks
//     that output position missing, records one Advisory, and computation
//     continues for later positions
//   - Pure function: the input is never mutated
//
// ⚠️ Asymmetric NA check, preserved deliberately:
//
//	Under SkipNA only x[i+lag] — the right-hand operand — is tested for
//	missingness. A missing x[i] on the left still yields a missing
//	output through subtraction, but silently, with no advisory. This
//	mirrors the behavior the routine is documented to have; see Diff.
//
// ⚙️ Usage:
//
//	opts := lagdiff.DefaultOptions() // Lag: 1
//	opts.Lag = 7
//
//	out, advs, err := lagdiff.Diff(x, opts)
//	if err != nil {
//	  // ErrBadLag: lag < 1 or lag ≥ len(x)
//	}
//
// Complexity: O(n) time, O(n-lag) space.
package lagdiff
