// SPDX-License-Identifier: MIT
// Package: wildfire-VIP/macgrid
//
// faces.go — face validity, boundary, geometry and index queries.
//
// All queries delegate to the face grid of the requested axis; a face grid
// node coordinate is the face coordinate.

package macgrid

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/chrysly/wildfire-VIP/grid"
)

// ValidFace reports whether face lies in the face grid of axis.
// An out-of-range axis yields false.
func (mg *MacGrid) ValidFace(axis int, face grid.Coord) bool {
	return mg.grid.Dim().ValidAxis(axis) && mg.faceGrids[axis].ValidNode(face)
}

// IsBoundaryFace reports whether face is on the outer shell of its face grid.
func (mg *MacGrid) IsBoundaryFace(axis int, face grid.Coord) bool {
	return mg.IsBoundaryFaceRing(axis, face, 0)
}

// IsBoundaryFaceRing reports whether face lies within ring layers of the
// outer shell of its face grid; ring 0 is the shell itself.
func (mg *MacGrid) IsBoundaryFaceRing(axis int, face grid.Coord, ring int) bool {
	mg.mustAxis(axis)
	return mg.faceGrids[axis].IsBoundaryNodeRing(face, ring)
}

// IsAxialBoundaryFace reports whether face is extremal along its own axis,
// i.e. it lies on the domain boundary rather than merely next to it.
func (mg *MacGrid) IsAxialBoundaryFace(axis int, face grid.Coord) bool {
	mg.mustAxis(axis)
	if !mg.faceGrids[axis].ValidNode(face) {
		return false
	}

	return face[axis] == 0 || face[axis] == mg.faceCounts[axis][axis]-1
}

// FaceCenter returns the physical center of the face.
func (mg *MacGrid) FaceCenter(axis int, face grid.Coord) r3.Vec {
	mg.mustAxis(axis)
	return mg.faceGrids[axis].Node(face)
}

// FaceIndex returns the linear index of a valid face within its axis.
func (mg *MacGrid) FaceIndex(axis int, face grid.Coord) int {
	mg.mustAxis(axis)
	return mg.faceGrids[axis].NodeIndex(face)
}

// FaceCoord returns the coordinate of face i in [0,NumberOfFaces(axis)).
func (mg *MacGrid) FaceCoord(axis int, i int) grid.Coord {
	mg.mustAxis(axis)
	return mg.faceGrids[axis].NodeCoord(i)
}

// NumberOfFaces returns the number of faces normal to axis.
func (mg *MacGrid) NumberOfFaces(axis int) int {
	mg.mustAxis(axis)
	return mg.faceGrids[axis].NumberOfNodes()
}

// TotalFaces returns the number of faces over all axes.
func (mg *MacGrid) TotalFaces() int {
	n := 0
	for axis := 0; axis < int(mg.grid.Dim()); axis++ {
		n += mg.faceGrids[axis].NumberOfNodes()
	}

	return n
}

// LookupFace is the checked form of FaceIndex.
func (mg *MacGrid) LookupFace(axis int, face grid.Coord) (int, error) {
	if err := mg.checkAxis(axis); err != nil {
		return 0, fmt.Errorf("LookupFace: %w", err)
	}
	if !mg.faceGrids[axis].ValidNode(face) {
		return 0, fmt.Errorf("LookupFace(%d,%s): %w", axis, face.Format(mg.grid.Dim()), ErrInvalidFace)
	}

	return mg.faceGrids[axis].NodeIndex(face), nil
}

// FaceAt is the checked form of FaceCoord.
func (mg *MacGrid) FaceAt(axis int, i int) (grid.Coord, error) {
	if err := mg.checkAxis(axis); err != nil {
		return grid.Coord{}, fmt.Errorf("FaceAt: %w", err)
	}
	if i < 0 || i >= mg.faceGrids[axis].NumberOfNodes() {
		return grid.Coord{}, fmt.Errorf("FaceAt(%d,%d): %w", axis, i, ErrIndexOutOfRange)
	}

	return mg.faceGrids[axis].NodeCoord(i), nil
}
