// SPDX-License-Identifier: MIT
// Package: wildfire-VIP/grid
//
// grid.go — Grid construction, counts, index math and physical positions.
//
// Contract:
//   • New requires 2 or 3 strictly positive cell counts.
//   • FromNodeCounts requires 2 or 3 node counts ≥ 1 (cell counts may be 0).
//   • Linear indices are row-major: last axis fastest.
//   • Index/coordinate conversions assume a valid argument; use ValidCell /
//     ValidNode first when the input is untrusted.

package grid

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

const (
	methodNew            = "New"
	methodFromNodeCounts = "FromNodeCounts"
)

// Grid is an immutable uniform lattice descriptor.
// It holds only values; assigning a Grid copies it completely.
type Grid struct {
	dim        Dim
	cellCounts Coord
	nodeCounts Coord
	dx         float64
	domainMin  r3.Vec
}

// New builds a Grid from strictly positive per-axis cell counts.
// Returns ErrBadDimension unless len(cellCounts) is 2 or 3 and ErrBadCounts
// if any count is ≤ 0.
func New(cellCounts []int, opts ...Option) (Grid, error) {
	d := Dim(len(cellCounts))
	if !d.Valid() {
		return Grid{}, fmt.Errorf("%s: %d counts: %w", methodNew, len(cellCounts), ErrBadDimension)
	}
	for k, n := range cellCounts {
		if n <= 0 {
			return Grid{}, fmt.Errorf("%s: cell count[%d]=%d: %w", methodNew, k, n, ErrBadCounts)
		}
	}

	return build(d, Vec(cellCounts...), gatherOptions(opts...)), nil
}

// FromNodeCounts builds a Grid whose node lattice has the given counts.
// A node count of 1 yields a lattice one node thick along that axis.
func FromNodeCounts(nodeCounts []int, opts ...Option) (Grid, error) {
	d := Dim(len(nodeCounts))
	if !d.Valid() {
		return Grid{}, fmt.Errorf("%s: %d counts: %w", methodFromNodeCounts, len(nodeCounts), ErrBadDimension)
	}
	for k, n := range nodeCounts {
		if n <= 0 {
			return Grid{}, fmt.Errorf("%s: node count[%d]=%d: %w", methodFromNodeCounts, k, n, ErrBadCounts)
		}
	}
	cells := Vec(nodeCounts...)
	for k := 0; k < int(d); k++ {
		cells[k]--
	}

	return build(d, cells, gatherOptions(opts...)), nil
}

func build(d Dim, cells Coord, o Options) Grid {
	g := Grid{dim: d, cellCounts: cells, dx: o.dx, domainMin: o.domainMin}
	for k := 0; k < int(d); k++ {
		g.nodeCounts[k] = cells[k] + 1
	}
	if d == D2 {
		g.domainMin.Z = 0
	}

	return g
}

// IsZero reports whether g is the zero Grid (never initialized).
func (g Grid) IsZero() bool { return g.dim == 0 }

// Dim returns the spatial dimension.
func (g Grid) Dim() Dim { return g.dim }

// CellCounts returns the number of cells per axis.
func (g Grid) CellCounts() Coord { return g.cellCounts }

// NodeCounts returns the number of nodes per axis (cell counts + 1).
func (g Grid) NodeCounts() Coord { return g.nodeCounts }

// Dx returns the cell size.
func (g Grid) Dx() float64 { return g.dx }

// DomainMin returns the position of node 0.
func (g Grid) DomainMin() r3.Vec { return g.domainMin }

// DomainMax returns the position of the last node.
func (g Grid) DomainMax() r3.Vec { return g.Node(g.nodeCounts.Sub(g.unitsUpTo())) }

// NumberOfCells returns the total number of cells (0 if some axis has no cells).
func (g Grid) NumberOfCells() int { return g.cellCounts.Prod(g.dim) }

// NumberOfNodes returns the total number of nodes.
func (g Grid) NumberOfNodes() int { return g.nodeCounts.Prod(g.dim) }

// CellIndex maps a valid cell coordinate to its linear index.
func (g Grid) CellIndex(c Coord) int { return linearIndex(g.dim, g.cellCounts, c) }

// CellCoord maps a linear cell index in [0,NumberOfCells) back to a coordinate.
func (g Grid) CellCoord(i int) Coord { return coordOf(g.dim, g.cellCounts, i) }

// NodeIndex maps a valid node coordinate to its linear index.
func (g Grid) NodeIndex(c Coord) int { return linearIndex(g.dim, g.nodeCounts, c) }

// NodeCoord maps a linear node index in [0,NumberOfNodes) back to a coordinate.
func (g Grid) NodeCoord(i int) Coord { return coordOf(g.dim, g.nodeCounts, i) }

// ValidCell reports whether c lies in the cell index range.
func (g Grid) ValidCell(c Coord) bool { return inRange(g.dim, g.cellCounts, c) }

// ValidNode reports whether c lies in the node index range.
func (g Grid) ValidNode(c Coord) bool { return inRange(g.dim, g.nodeCounts, c) }

// IsBoundaryCell reports whether c is a valid cell on the outer cell shell.
func (g Grid) IsBoundaryCell(c Coord) bool {
	return g.ValidCell(c) && onShell(g.dim, g.cellCounts, c, 0)
}

// IsBoundaryNode reports whether c is a valid node on the outer node shell.
func (g Grid) IsBoundaryNode(c Coord) bool { return g.IsBoundaryNodeRing(c, 0) }

// IsBoundaryNodeRing reports whether c is a valid node within ring layers of
// the boundary: c[k] ≤ ring or c[k] ≥ n[k]−1−ring for some axis k.
// ring 0 is the boundary layer itself.
func (g Grid) IsBoundaryNodeRing(c Coord, ring int) bool {
	return g.ValidNode(c) && onShell(g.dim, g.nodeCounts, c, ring)
}

// Node returns the physical position of node c: domainMin + c·dx.
func (g Grid) Node(c Coord) r3.Vec {
	p := g.domainMin
	for k := 0; k < int(g.dim); k++ {
		p = WithComponent(p, k, Component(g.domainMin, k)+float64(c[k])*g.dx)
	}

	return p
}

// Center returns the physical center of cell c: domainMin + (c+½)·dx.
func (g Grid) Center(c Coord) r3.Vec {
	return Offset(g.Node(c), g.dim, 0.5*g.dx, func(int) bool { return true })
}

// CellOf returns the cell containing pos and whether that cell is valid.
// Points on an interior cell boundary belong to the cell on their positive side.
func (g Grid) CellOf(pos r3.Vec) (Coord, bool) {
	var c Coord
	for k := 0; k < int(g.dim); k++ {
		c[k] = int(math.Floor((Component(pos, k) - Component(g.domainMin, k)) / g.dx))
	}

	return c, g.ValidCell(c)
}

// String implements fmt.Stringer.
func (g Grid) String() string {
	return fmt.Sprintf("Grid{dim=%d cells=%s nodes=%s dx=%g min=%s}",
		g.dim, g.cellCounts.Format(g.dim), g.nodeCounts.Format(g.dim), g.dx, formatVec(g.dim, g.domainMin))
}

// unitsUpTo returns the all-ones coordinate in the first dim components.
func (g Grid) unitsUpTo() Coord {
	var ones Coord
	for k := 0; k < int(g.dim); k++ {
		ones[k] = 1
	}

	return ones
}

// linearIndex computes ((c0*n1)+c1)*n2 + c2.
func linearIndex(d Dim, counts, c Coord) int {
	idx := 0
	for k := 0; k < int(d); k++ {
		idx = idx*counts[k] + c[k]
	}

	return idx
}

// coordOf inverts linearIndex.
func coordOf(d Dim, counts Coord, i int) Coord {
	var c Coord
	for k := int(d) - 1; k >= 0; k-- {
		c[k] = i % counts[k]
		i /= counts[k]
	}

	return c
}

func inRange(d Dim, counts, c Coord) bool {
	for k := 0; k < MaxDim; k++ {
		if k >= int(d) {
			if c[k] != 0 {
				return false
			}
			continue
		}
		if c[k] < 0 || c[k] >= counts[k] {
			return false
		}
	}

	return true
}

func onShell(d Dim, counts, c Coord, ring int) bool {
	for k := 0; k < int(d); k++ {
		if c[k] <= ring || c[k] >= counts[k]-1-ring {
			return true
		}
	}

	return false
}

func formatVec(d Dim, v r3.Vec) string {
	if d == D2 {
		return fmt.Sprintf("(%g,%g)", v.X, v.Y)
	}

	return fmt.Sprintf("(%g,%g,%g)", v.X, v.Y, v.Z)
}
