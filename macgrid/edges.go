// SPDX-License-Identifier: MIT

package macgrid

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/chrysly/wildfire-VIP/grid"
)

// ValidEdge reports whether edge lies in the edge grid of axis.
// An out-of-range axis yields false.
func (mg *MacGrid) ValidEdge(axis int, edge grid.Coord) bool {
	return mg.grid.Dim().ValidAxis(axis) && mg.edgeGrids[axis].ValidNode(edge)
}

// IsBoundaryEdge reports whether edge is on the outer shell of its edge grid.
func (mg *MacGrid) IsBoundaryEdge(axis int, edge grid.Coord) bool {
	return mg.IsBoundaryEdgeRing(axis, edge, 0)
}

// IsBoundaryEdgeRing reports whether edge lies within ring layers of the
// outer shell of its edge grid.
func (mg *MacGrid) IsBoundaryEdgeRing(axis int, edge grid.Coord, ring int) bool {
	mg.mustAxis(axis)
	return mg.edgeGrids[axis].IsBoundaryNodeRing(edge, ring)
}

// IsAxialBoundaryEdge reports whether edge is the first or last edge along
// its own axis.
func (mg *MacGrid) IsAxialBoundaryEdge(axis int, edge grid.Coord) bool {
	mg.mustAxis(axis)
	if !mg.edgeGrids[axis].ValidNode(edge) {
		return false
	}

	return edge[axis] == 0 || edge[axis] == mg.edgeCounts[axis][axis]-1
}

// EdgeCenter returns the physical midpoint of the edge.
func (mg *MacGrid) EdgeCenter(axis int, edge grid.Coord) r3.Vec {
	mg.mustAxis(axis)
	return mg.edgeGrids[axis].Node(edge)
}

// EdgeIndex returns the linear index of a valid edge within its axis.
func (mg *MacGrid) EdgeIndex(axis int, edge grid.Coord) int {
	mg.mustAxis(axis)
	return mg.edgeGrids[axis].NodeIndex(edge)
}

// EdgeCoord returns the coordinate of edge i in [0,NumberOfEdges(axis)).
func (mg *MacGrid) EdgeCoord(axis int, i int) grid.Coord {
	mg.mustAxis(axis)
	return mg.edgeGrids[axis].NodeCoord(i)
}

// NumberOfEdges returns the number of edges aligned with axis.
func (mg *MacGrid) NumberOfEdges(axis int) int {
	mg.mustAxis(axis)
	return mg.edgeGrids[axis].NumberOfNodes()
}

// TotalEdges returns the number of edges over all axes.
func (mg *MacGrid) TotalEdges() int {
	n := 0
	for axis := 0; axis < int(mg.grid.Dim()); axis++ {
		n += mg.edgeGrids[axis].NumberOfNodes()
	}

	return n
}

// LookupEdge is the checked form of EdgeIndex.
func (mg *MacGrid) LookupEdge(axis int, edge grid.Coord) (int, error) {
	if err := mg.checkAxis(axis); err != nil {
		return 0, fmt.Errorf("LookupEdge: %w", err)
	}
	if !mg.edgeGrids[axis].ValidNode(edge) {
		return 0, fmt.Errorf("LookupEdge(%d,%s): %w", axis, edge.Format(mg.grid.Dim()), ErrInvalidEdge)
	}

	return mg.edgeGrids[axis].NodeIndex(edge), nil
}

// EdgeAt is the checked form of EdgeCoord.
func (mg *MacGrid) EdgeAt(axis int, i int) (grid.Coord, error) {
	if err := mg.checkAxis(axis); err != nil {
		return grid.Coord{}, fmt.Errorf("EdgeAt: %w", err)
	}
	if i < 0 || i >= mg.edgeGrids[axis].NumberOfNodes() {
		return grid.Coord{}, fmt.Errorf("EdgeAt(%d,%d): %w", axis, i, ErrIndexOutOfRange)
	}

	return mg.edgeGrids[axis].NodeCoord(i), nil
}
