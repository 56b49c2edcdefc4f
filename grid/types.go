// SPDX-License-Identifier: MIT
// Package: wildfire-VIP/grid
//
// types.go — Dim and Coord value types.
//
// Coord is a fixed [MaxDim]int array so that it is comparable, hashable and
// copied by value. Components at index ≥ dim are kept at zero; every Grid
// predicate rejects a coordinate that violates this.

package grid

import (
	"fmt"
	"strings"
)

// MaxDim is the largest supported dimension.
const MaxDim = 3

// Dim is the spatial dimension of a lattice. Only D2 and D3 are valid.
type Dim int

const (
	// D2 is a planar lattice.
	D2 Dim = 2
	// D3 is a volumetric lattice.
	D3 Dim = 3
)

// Valid reports whether d is 2 or 3.
func (d Dim) Valid() bool { return d == D2 || d == D3 }

// ValidAxis reports whether axis lies in [0,d).
func (d Dim) ValidAxis(axis int) bool { return axis >= 0 && axis < int(d) }

// Coord is an integer lattice coordinate.
type Coord [MaxDim]int

// Unit returns the unit coordinate along axis.
func Unit(axis int) Coord {
	var u Coord
	u[axis] = 1

	return u
}

// Vec builds a Coord from up to MaxDim components.
func Vec(components ...int) Coord {
	var c Coord
	copy(c[:], components)

	return c
}

// Add returns c + o.
func (c Coord) Add(o Coord) Coord {
	for k := range c {
		c[k] += o[k]
	}

	return c
}

// Sub returns c − o.
func (c Coord) Sub(o Coord) Coord {
	for k := range c {
		c[k] -= o[k]
	}

	return c
}

// Scale returns s·c.
func (c Coord) Scale(s int) Coord {
	for k := range c {
		c[k] *= s
	}

	return c
}

// Prod returns the product of the first d components.
func (c Coord) Prod(d Dim) int {
	p := 1
	for k := 0; k < int(d); k++ {
		p *= c[k]
	}

	return p
}

// Ints returns the first d components as a fresh slice.
func (c Coord) Ints(d Dim) []int {
	out := make([]int, d)
	copy(out, c[:d])

	return out
}

// Format renders the first d components, e.g. "(1,0)".
func (c Coord) Format(d Dim) string {
	parts := make([]string, d)
	for k := 0; k < int(d); k++ {
		parts[k] = fmt.Sprint(c[k])
	}

	return "(" + strings.Join(parts, ",") + ")"
}
