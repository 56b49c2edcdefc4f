// SPDX-License-Identifier: MIT
// Package: wildfire-VIP/macgrid
//
// edge_topology.go — edge↔cell and edge↔node incidence.
//
// Edge e of axis a runs from node e to node e+Unit(a). It is shared by the
// cells e − Σ bit_j(i)·Unit(o_j) over the axes o_j orthogonal to a, and cell
// c owns the edges of axis a at c + Σ bit_j(i)·Unit(o_j).
// In 2D an edge of axis a coincides with a face of the other axis.

package macgrid

import (
	"fmt"

	"github.com/chrysly/wildfire-VIP/grid"
)

// NumberOfEdgeIncidentNodes is 2 in every dimension.
func NumberOfEdgeIncidentNodes() int { return 2 }

// EdgeIncidentNode returns the start node for i=0 and the end node for i=1.
// Any other i panics.
func EdgeIncidentNode(axis int, edge grid.Coord, i int) grid.Coord {
	switch i {
	case 0:
		return edge
	case 1:
		return edge.Add(grid.Unit(axis))
	}
	panic(fmt.Sprintf("macgrid: EdgeIncidentNode: i=%d not in [0,2)", i))
}

// NumberOfEdgeIncidentCells returns 2^(d−1): 2 in 2D, 4 in 3D.
func (mg *MacGrid) NumberOfEdgeIncidentCells() int { return cornerCount(mg.grid.Dim()) }

// EdgeIncidentCell returns the i-th cell sharing edge.
func (mg *MacGrid) EdgeIncidentCell(axis int, edge grid.Coord, i int) grid.Coord {
	mg.mustAxis(axis)
	return edge.Sub(orthoCorner(mg.grid.Dim(), axis, i))
}

// NumberOfCellIncidentEdges returns 2^(d−1) edges per axis: 2 in 2D, 4 in 3D.
func (mg *MacGrid) NumberOfCellIncidentEdges() int { return cornerCount(mg.grid.Dim()) }

// CellIncidentEdge returns the i-th edge of axis bounding cell.
func (mg *MacGrid) CellIncidentEdge(axis int, cell grid.Coord, i int) grid.Coord {
	mg.mustAxis(axis)
	return cell.Add(orthoCorner(mg.grid.Dim(), axis, i))
}
