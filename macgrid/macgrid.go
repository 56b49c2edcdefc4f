// SPDX-License-Identifier: MIT
// Package: wildfire-VIP/macgrid
//
// macgrid.go — MacGrid composite, initialization and shape derivation.
//
// Contract:
//   • Initialization is total for every positive 2D/3D cell-count vector.
//   • Every (re-)initialization derives all face and edge grids from scratch;
//     on error the receiver is left untouched.
//   • MacGrid holds only values. b := *a is a deep copy and no sub-grid state
//     is ever shared between two instances.
//
// Layout:
//   • The struct starts with cpu.CacheLinePad; all sub-grids are inline
//     arrays of value-type Grids, so the whole composite is one contiguous
//     pointer-free block.

package macgrid

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sys/cpu"

	"github.com/chrysly/wildfire-VIP/grid"
)

const (
	methodNew        = "New"
	methodFromGrid   = "FromGrid"
	methodInitialize = "Initialize"
)

// MacGrid is a staggered grid: one cell grid plus per-axis face and edge grids.
type MacGrid struct {
	_ cpu.CacheLinePad

	grid grid.Grid

	faceCounts [grid.MaxDim]grid.Coord
	faceGrids  [grid.MaxDim]grid.Grid // face grid nodes are collocated with face centers

	edgeCounts [grid.MaxDim]grid.Coord
	edgeGrids  [grid.MaxDim]grid.Grid // edge grid nodes are collocated with edge midpoints
}

// New builds a MacGrid from per-axis cell counts. Spacing defaults to 1 and
// the domain minimum to the origin; see grid.WithSpacing and grid.WithDomainMin.
func New(cellCounts []int, opts ...grid.Option) (*MacGrid, error) {
	mg := new(MacGrid)
	if err := mg.Initialize(cellCounts, opts...); err != nil {
		return nil, fmt.Errorf("%s: %w", methodNew, err)
	}

	return mg, nil
}

// FromGrid builds a MacGrid around an existing cell grid.
func FromGrid(g grid.Grid) (*MacGrid, error) {
	mg := new(MacGrid)
	if err := mg.InitializeFromGrid(g); err != nil {
		return nil, fmt.Errorf("%s: %w", methodFromGrid, err)
	}

	return mg, nil
}

// Initialize (re)builds mg from per-axis cell counts.
func (mg *MacGrid) Initialize(cellCounts []int, opts ...grid.Option) error {
	g, err := grid.New(cellCounts, opts...)
	if err != nil {
		return fmt.Errorf("%s: %w", methodInitialize, err)
	}

	return mg.InitializeFromGrid(g)
}

// InitializeFromGrid (re)builds mg around the cell grid g, discarding all
// previously derived state.
func (mg *MacGrid) InitializeFromGrid(g grid.Grid) error {
	if g.IsZero() || g.NumberOfCells() == 0 {
		return fmt.Errorf("%s: %v: %w", methodInitialize, g, ErrEmptyGrid)
	}

	next := MacGrid{grid: g}
	if err := next.initializeFaces(); err != nil {
		return fmt.Errorf("%s: faces: %w", methodInitialize, err)
	}
	if err := next.initializeEdges(); err != nil {
		return fmt.Errorf("%s: edges: %w", methodInitialize, err)
	}
	*mg = next

	logger.WithFields(logrus.Fields{
		"dim":   int(g.Dim()),
		"cells": g.CellCounts().Format(g.Dim()),
		"dx":    g.Dx(),
		"faces": mg.TotalFaces(),
		"edges": mg.TotalEdges(),
	}).Debug("macgrid: initialized")

	return nil
}

// initializeFaces derives face counts and grids. The face grid of axis a is
// shifted by dx/2 along every other axis so node c lands on the face center.
func (mg *MacGrid) initializeFaces() error {
	d := mg.grid.Dim()
	cells := mg.grid.CellCounts()
	for axis := 0; axis < int(d); axis++ {
		counts := cells.Add(grid.Unit(axis))
		origin := grid.Offset(mg.grid.DomainMin(), d, 0.5*mg.grid.Dx(), func(k int) bool { return k != axis })
		g, err := grid.FromNodeCounts(counts.Ints(d), grid.WithSpacing(mg.grid.Dx()), grid.WithDomainMin(origin))
		if err != nil {
			return fmt.Errorf("axis %d: %w", axis, err)
		}
		mg.faceCounts[axis] = counts
		mg.faceGrids[axis] = g
	}

	return nil
}

// initializeEdges derives edge counts and grids. The edge grid of axis a is
// shifted by dx/2 along a only.
func (mg *MacGrid) initializeEdges() error {
	d := mg.grid.Dim()
	cells := mg.grid.CellCounts()
	for axis := 0; axis < int(d); axis++ {
		var counts grid.Coord
		for k := 0; k < int(d); k++ {
			counts[k] = cells[k] + 1
		}
		counts[axis] = cells[axis]
		origin := grid.Offset(mg.grid.DomainMin(), d, 0.5*mg.grid.Dx(), func(k int) bool { return k == axis })
		g, err := grid.FromNodeCounts(counts.Ints(d), grid.WithSpacing(mg.grid.Dx()), grid.WithDomainMin(origin))
		if err != nil {
			return fmt.Errorf("axis %d: %w", axis, err)
		}
		mg.edgeCounts[axis] = counts
		mg.edgeGrids[axis] = g
	}

	return nil
}

// Clone returns an independent copy of mg.
func (mg *MacGrid) Clone() *MacGrid {
	c := *mg
	return &c
}

// Dim returns the spatial dimension.
func (mg *MacGrid) Dim() grid.Dim { return mg.grid.Dim() }

// Grid returns the cell grid.
func (mg *MacGrid) Grid() grid.Grid { return mg.grid }

// FaceCounts returns the node counts of the face grid of axis.
func (mg *MacGrid) FaceCounts(axis int) grid.Coord {
	mg.mustAxis(axis)
	return mg.faceCounts[axis]
}

// FaceGrid returns the face grid of axis.
func (mg *MacGrid) FaceGrid(axis int) grid.Grid {
	mg.mustAxis(axis)
	return mg.faceGrids[axis]
}

// EdgeCounts returns the node counts of the edge grid of axis.
func (mg *MacGrid) EdgeCounts(axis int) grid.Coord {
	mg.mustAxis(axis)
	return mg.edgeCounts[axis]
}

// EdgeGrid returns the edge grid of axis.
func (mg *MacGrid) EdgeGrid(axis int) grid.Grid {
	mg.mustAxis(axis)
	return mg.edgeGrids[axis]
}

// String implements fmt.Stringer.
func (mg *MacGrid) String() string {
	return fmt.Sprintf("MacGrid{%v faces=%d edges=%d}", mg.grid, mg.TotalFaces(), mg.TotalEdges())
}

// mustAxis panics on an axis outside [0,d); unchecked queries fail fast
// rather than read a zero sub-grid.
func (mg *MacGrid) mustAxis(axis int) {
	if !mg.grid.Dim().ValidAxis(axis) {
		panic(fmt.Sprintf("macgrid: axis %d out of range [0,%d)", axis, mg.grid.Dim()))
	}
}

// checkAxis is the error-returning twin of mustAxis.
func (mg *MacGrid) checkAxis(axis int) error {
	if !mg.grid.Dim().ValidAxis(axis) {
		return fmt.Errorf("axis %d not in [0,%d): %w", axis, mg.grid.Dim(), ErrAxisOutOfRange)
	}

	return nil
}
