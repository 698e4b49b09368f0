// SPDX-License-Identifier: MIT
// Package verify: functional configuration.
//
// Options are resolved once in New; WithX constructors panic only on
// nonsensical values (programmer error), never on data.

package verify

import (
	"math"

	"github.com/katalvlaran/pauli/mat2"
)

// DefaultTolerance is the entry-wise absolute tolerance for all checks.
const DefaultTolerance = mat2.DefaultTolerance

const panicToleranceInvalid = "verify: WithTolerance: tol must be finite, non-negative"

// Option mutates internal options.
type Option func(*Options)

// Options holds the effective configuration of a Verifier.
type Options struct {
	tol float64 // >= 0; DefaultTolerance
}

// WithTolerance sets the absolute tolerance used when comparing matrices and
// scalars. Panics when tol is NaN, ±Inf or negative.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// gatherOptions applies setters on top of defaults; last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{tol: DefaultTolerance}
	for _, set := range user {
		set(&o)
	}

	return o
}
