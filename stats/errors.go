// SPDX-License-Identifier: MIT

// Package stats: sentinel error set and advisory operation names.
package stats

import "errors"

// ErrEmptyInput is returned by Range when the input sequence is empty.
// Mean, Variance and StdDev never return it; they are total and answer
// NA instead.
var ErrEmptyInput = errors.New("stats: input sequence must be non-empty")

// Operation name carried by advisories.
const opRange = "stats.Range"
