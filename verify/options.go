// SPDX-License-Identifier: MIT
// Package: wildfire-VIP/verify
//
// options.go — functional options for Run.
//
// Options panic on nonsensical values, the same way grid.WithSpacing does:
// they are programmer errors, not runtime conditions.

package verify

import (
	"fmt"
	"math"
)

// DefaultTolerance is the absolute and relative tolerance for positions.
const DefaultTolerance = 1e-9

// Option configures an audit.
type Option func(*Options)

// Options holds the audit configuration.
type Options struct {
	tol           float64
	maxViolations int
	only          []string
}

// WithTolerance sets the tolerance used for position comparisons.
// Panics if tol is negative or not finite.
func WithTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(fmt.Sprintf("verify: WithTolerance(%v): tolerance must be finite and >= 0", tol))
	}
	return func(o *Options) { o.tol = tol }
}

// WithMaxViolations stops the audit after n violations. Zero means unlimited.
// Panics if n is negative.
func WithMaxViolations(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("verify: WithMaxViolations(%d): limit must be >= 0", n))
	}
	return func(o *Options) { o.maxViolations = n }
}

// Only restricts the audit to the named checks (see Checks).
func Only(names ...string) Option {
	return func(o *Options) { o.only = append(o.only[:0:0], names...) }
}

func gatherOptions(opts []Option) Options {
	o := Options{tol: DefaultTolerance}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
