package macgrid

import (
	"iter"

	"github.com/chrysly/wildfire-VIP/grid"
)

// Faces yields (axis, face) for every face: all faces of axis 0 in linear
// order, then axis 1, and so on. The sequence is restartable.
func (mg *MacGrid) Faces() iter.Seq2[int, grid.Coord] {
	grids := mg.faceGrids
	return axisMajor(mg.grid.Dim(), grids)
}

// FacesAlong yields (linear index, face) for the faces of one axis.
func (mg *MacGrid) FacesAlong(axis int) iter.Seq2[int, grid.Coord] {
	mg.mustAxis(axis)
	return mg.faceGrids[axis].Nodes()
}

// Edges yields (axis, edge) for every edge, axis-major.
func (mg *MacGrid) Edges() iter.Seq2[int, grid.Coord] {
	grids := mg.edgeGrids
	return axisMajor(mg.grid.Dim(), grids)
}

// EdgesAlong yields (linear index, edge) for the edges of one axis.
func (mg *MacGrid) EdgesAlong(axis int) iter.Seq2[int, grid.Coord] {
	mg.mustAxis(axis)
	return mg.edgeGrids[axis].Nodes()
}

// axisMajor walks a snapshot of the per-axis grids.
func axisMajor(d grid.Dim, grids [grid.MaxDim]grid.Grid) iter.Seq2[int, grid.Coord] {
	return func(yield func(int, grid.Coord) bool) {
		for axis := 0; axis < int(d); axis++ {
			for _, c := range grids[axis].Nodes() {
				if !yield(axis, c) {
					return
				}
			}
		}
	}
}
