// SPDX-License-Identifier: MIT
// Package: wildfire-VIP/macgrid
//
// face_topology.go — face↔cell and face↔node incidence.
//
// Face f of axis a separates cell f−Unit(a) (left) from cell f (right).
// Cell c therefore owns left face c and right face c+Unit(a) per axis.
//
// A face of axis a spans the nodes f + Σ bit_j(i)·Unit(o_j), where o_0 < o_1
// are the axes orthogonal to a. A node n touches the faces of axis a at
// n − Σ bit_j(i)·Unit(o_j).
//
// Results may lie outside the grid (e.g. the left cell of a boundary face);
// callers check them with ValidCell / ValidFace / ValidNode.

package macgrid

import (
	"fmt"

	"github.com/chrysly/wildfire-VIP/grid"
)

// FaceLeftCell returns the cell on the negative side of face.
func FaceLeftCell(axis int, face grid.Coord) grid.Coord { return face.Sub(grid.Unit(axis)) }

// FaceRightCell returns the cell on the positive side of face.
func FaceRightCell(axis int, face grid.Coord) grid.Coord { return face }

// CellLeftFace returns the face of axis on the negative side of cell.
func CellLeftFace(axis int, cell grid.Coord) grid.Coord { return cell }

// CellRightFace returns the face of axis on the positive side of cell.
func CellRightFace(axis int, cell grid.Coord) grid.Coord { return cell.Add(grid.Unit(axis)) }

// IsFaceIncidentToCell reports whether cell is the left or right cell of face.
func IsFaceIncidentToCell(axis int, face, cell grid.Coord) bool {
	return cell == FaceLeftCell(axis, face) || cell == FaceRightCell(axis, face)
}

// FaceIncidentCell returns the left cell for i=0 and the right cell for i=1.
// Any other i panics.
func FaceIncidentCell(axis int, face grid.Coord, i int) grid.Coord {
	switch i {
	case 0:
		return FaceLeftCell(axis, face)
	case 1:
		return FaceRightCell(axis, face)
	}
	panic(fmt.Sprintf("macgrid: FaceIncidentCell: i=%d not in [0,2)", i))
}

// CellIncidentFace returns the left face of cell for i=0 and the right face
// for i=1. Any other i panics.
func CellIncidentFace(axis int, cell grid.Coord, i int) grid.Coord {
	switch i {
	case 0:
		return CellLeftFace(axis, cell)
	case 1:
		return CellRightFace(axis, cell)
	}
	panic(fmt.Sprintf("macgrid: CellIncidentFace: i=%d not in [0,2)", i))
}

// NumberOfFaceIncidentCells is 2 in every dimension.
func NumberOfFaceIncidentCells() int { return 2 }

// NumberOfCellIncidentFaces returns 2d: 4 in 2D, 6 in 3D.
func (mg *MacGrid) NumberOfCellIncidentFaces() int { return 2 * int(mg.grid.Dim()) }

// CellIncidentFaceAt returns the i-th face of cell, i ∈ [0,2d). Face i lies
// between cell and mg.Grid().NbC(cell, i): i < d gives the left face of axis
// i, i ≥ d the right face of axis 2d−1−i.
func (mg *MacGrid) CellIncidentFaceAt(cell grid.Coord, i int) Face {
	axis, side := grid.NbCAxis(mg.grid.Dim(), i)
	return Face{Axis: axis, Coord: CellIncidentFace(axis, cell, side)}
}

// NumberOfNodeIncidentFacesPerAxis returns 2^(d−1): 2 in 2D, 4 in 3D.
func (mg *MacGrid) NumberOfNodeIncidentFacesPerAxis() int { return cornerCount(mg.grid.Dim()) }

// NumberOfNodeIncidentFaces returns d·2^(d−1): 4 in 2D, 12 in 3D.
func (mg *MacGrid) NumberOfNodeIncidentFaces() int {
	return int(mg.grid.Dim()) * cornerCount(mg.grid.Dim())
}

// NodeIncidentFacePerAxis returns the i-th face of axis touching node.
func (mg *MacGrid) NodeIncidentFacePerAxis(node grid.Coord, i, axis int) grid.Coord {
	mg.mustAxis(axis)
	return node.Sub(orthoCorner(mg.grid.Dim(), axis, i))
}

// NodeIncidentFace returns the i-th face touching node, i ∈
// [0,NumberOfNodeIncidentFaces), grouped by axis.
func (mg *MacGrid) NodeIncidentFace(node grid.Coord, i int) Face {
	per := mg.NumberOfNodeIncidentFacesPerAxis()
	axis := i / per
	return Face{Axis: axis, Coord: mg.NodeIncidentFacePerAxis(node, i%per, axis)}
}

// NumberOfFaceIncidentNodes returns 2^(d−1): 2 in 2D, 4 in 3D.
func (mg *MacGrid) NumberOfFaceIncidentNodes() int { return cornerCount(mg.grid.Dim()) }

// FaceIncidentNode returns the i-th corner node of face.
func (mg *MacGrid) FaceIncidentNode(axis int, face grid.Coord, i int) grid.Coord {
	mg.mustAxis(axis)
	return face.Add(orthoCorner(mg.grid.Dim(), axis, i))
}

// FaceIncidentNodes appends all corner nodes of face to dst, in
// FaceIncidentNode order, and returns the extended slice.
func (mg *MacGrid) FaceIncidentNodes(axis int, face grid.Coord, dst []grid.Coord) []grid.Coord {
	for i := 0; i < mg.NumberOfFaceIncidentNodes(); i++ {
		dst = append(dst, mg.FaceIncidentNode(axis, face, i))
	}

	return dst
}

// cornerCount is 2^(d−1), the number of vertices of a (d−1)-dimensional box.
func cornerCount(d grid.Dim) int { return 1 << (int(d) - 1) }

// orthoCorner maps bit j of i to a unit step along the j-th axis orthogonal
// to axis (ascending).
func orthoCorner(d grid.Dim, axis, i int) grid.Coord {
	var off grid.Coord
	j := 0
	for k := 0; k < int(d); k++ {
		if k == axis {
			continue
		}
		off[k] = (i >> j) & 1
		j++
	}

	return off
}
