// SPDX-License-Identifier: MIT
// Package: wildfire-VIP/grid
//
// options.go — functional configuration of a Grid.
//
// Defaults (single source of truth):
//   • dx        = DefaultSpacing (1)
//   • domainMin = origin
//
// WithX constructors validate eagerly and panic on nonsensical values; those
// are programmer errors, not runtime conditions.

package grid

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// DefaultSpacing is the cell size used when WithSpacing is not given.
const DefaultSpacing = 1.0

const (
	panicSpacingInvalid   = "grid: WithSpacing: dx must be finite and > 0"
	panicDomainMinInvalid = "grid: WithDomainMin: components must be finite"
)

// Option mutates Options. Later options override earlier ones.
type Option func(*Options)

// Options holds the effective configuration after applying Option setters.
type Options struct {
	dx        float64
	domainMin r3.Vec
}

// WithSpacing sets the cell size dx.
func WithSpacing(dx float64) Option {
	if math.IsNaN(dx) || math.IsInf(dx, 0) || dx <= 0 {
		panic(panicSpacingInvalid)
	}

	return func(o *Options) { o.dx = dx }
}

// WithDomainMin sets the physical position of node (0,0[,0]).
// In 2D the Z component is ignored.
func WithDomainMin(origin r3.Vec) Option {
	for _, v := range [...]float64{origin.X, origin.Y, origin.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			panic(panicDomainMinInvalid)
		}
	}

	return func(o *Options) { o.domainMin = origin }
}

// gatherOptions applies opts in order over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{dx: DefaultSpacing}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
