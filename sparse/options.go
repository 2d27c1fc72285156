// SPDX-License-Identifier: MIT

// Package sparse: functional configuration for matrices.
// This file defines:
//   - Option / Options (functional options with unexported state),
//   - documented defaults (constants),
//   - WithX constructors with strict validation (panic on nonsensical values),
//   - gatherOptions, the single place where setters are resolved.
//
// The effective options travel with a matrix: Clone, Transpose, SubMatrix and
// every arithmetic result inherit the tolerance of their receiver.
package sparse

import "math"

// DefaultEpsilon is the tolerance below which a magnitude is treated as zero
// for division guards and for tolerant equality in the linalg subpackage.
const DefaultEpsilon = 1e-5

const panicEpsilonInvalid = "sparse: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	eps float64 // >= 0; DefaultEpsilon
}

// Epsilon reports the resolved tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// WithEpsilon sets the numeric tolerance eps.
// Panics when eps is negative, NaN or infinite (programmer error).
//
// Notes:
//   - eps == 0 is legal; only exact zeros are then treated as zero divisors.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// NewOptions resolves option setters against the documented defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies setters on top of defaults (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{eps: DefaultEpsilon}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
