package macgrid_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chrysly/wildfire-VIP/grid"
	"github.com/chrysly/wildfire-VIP/macgrid"
)

//----------------------------------------------------------------------------//
// Face ↔ cell
//----------------------------------------------------------------------------//

// TestFaceCellDuality checks that left/right conversions are mutual inverses.
func TestFaceCellDuality(t *testing.T) {
	t.Parallel()

	for _, counts := range shapes {
		mg := mustNew(t, counts)
		for a, f := range mg.Faces() {
			left := macgrid.FaceLeftCell(a, f)
			require.Equal(t, left, macgrid.FaceLeftCell(a, macgrid.CellRightFace(a, left)))
			right := macgrid.FaceRightCell(a, f)
			require.Equal(t, f, macgrid.CellLeftFace(a, right))
			require.Equal(t, right.Sub(left), grid.Unit(a))

			require.Equal(t, left, macgrid.FaceIncidentCell(a, f, 0))
			require.Equal(t, right, macgrid.FaceIncidentCell(a, f, 1))
			require.True(t, macgrid.IsFaceIncidentToCell(a, f, left))
			require.True(t, macgrid.IsFaceIncidentToCell(a, f, right))
			require.False(t, macgrid.IsFaceIncidentToCell(a, f, right.Add(grid.Unit(a))))
		}
	}
	require.Equal(t, 2, macgrid.NumberOfFaceIncidentCells())
}

// TestCellIncidentFaces checks 2 faces per axis and 2d faces per cell, all valid.
func TestCellIncidentFaces(t *testing.T) {
	t.Parallel()

	for _, counts := range shapes {
		mg := mustNew(t, counts)
		d := int(mg.Dim())
		require.Equal(t, 2*d, mg.NumberOfCellIncidentFaces())
		for _, c := range mg.Grid().Cells() {
			seen := map[macgrid.Face]bool{}
			for a := 0; a < d; a++ {
				for i := 0; i < 2; i++ {
					f := macgrid.CellIncidentFace(a, c, i)
					require.True(t, mg.ValidFace(a, f))
					require.True(t, macgrid.IsFaceIncidentToCell(a, f, c))
					seen[macgrid.Face{Axis: a, Coord: f}] = true
				}
			}
			require.Len(t, seen, 2*d)
			for i := 0; i < mg.NumberOfCellIncidentFaces(); i++ {
				require.True(t, seen[mg.CellIncidentFaceAt(c, i)], "cell %v i=%d", c, i)
			}
		}
	}
}

// TestCellIncidentFaceAt_MatchesNbC is the cross-test between face enumeration
// and the cell grid's neighbor order: face i must separate cell and NbC(cell,i).
func TestCellIncidentFaceAt_MatchesNbC(t *testing.T) {
	t.Parallel()

	for _, counts := range [][]int{{3, 3}, {3, 3, 3}} {
		mg := mustNew(t, counts)
		g := mg.Grid()
		require.Equal(t, g.NumberOfNbC(), mg.NumberOfCellIncidentFaces())
		for _, c := range g.Cells() {
			for i := 0; i < g.NumberOfNbC(); i++ {
				f := mg.CellIncidentFaceAt(c, i)
				nb := g.NbC(c, i)
				require.True(t, macgrid.IsFaceIncidentToCell(f.Axis, f.Coord, c), "cell %v i=%d", c, i)
				require.True(t, macgrid.IsFaceIncidentToCell(f.Axis, f.Coord, nb), "cell %v i=%d", c, i)
				require.Equal(t, g.ValidCell(nb), !mg.IsAxialBoundaryFace(f.Axis, f.Coord), "cell %v i=%d", c, i)
			}
		}
	}
}

// TestCellIncidentFaceAt_Order pins the 2D order for an interior cell.
func TestCellIncidentFaceAt_Order(t *testing.T) {
	t.Parallel()

	mg := mustNew(t, []int{3, 3})
	c := grid.Vec(1, 1)
	want := []macgrid.Face{
		{Axis: 0, Coord: grid.Vec(1, 1)},
		{Axis: 1, Coord: grid.Vec(1, 1)},
		{Axis: 1, Coord: grid.Vec(1, 2)},
		{Axis: 0, Coord: grid.Vec(2, 1)},
	}
	for i, w := range want {
		require.Equal(t, w, mg.CellIncidentFaceAt(c, i))
	}
}

// TestIncidentIndexPanics verifies that out-of-range i fails fast.
func TestIncidentIndexPanics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { macgrid.FaceIncidentCell(0, grid.Coord{}, 2) })
	require.Panics(t, func() { macgrid.CellIncidentFace(0, grid.Coord{}, -1) })
	require.Panics(t, func() { macgrid.EdgeIncidentNode(0, grid.Coord{}, 2) })
}

//----------------------------------------------------------------------------//
// Face ↔ node
//----------------------------------------------------------------------------//

// TestIncidenceCounts pins the per-dimension incidence constants.
func TestIncidenceCounts(t *testing.T) {
	t.Parallel()

	mg2 := mustNew(t, []int{2, 2})
	require.Equal(t, 4, mg2.NumberOfNodeIncidentFaces())
	require.Equal(t, 2, mg2.NumberOfNodeIncidentFacesPerAxis())
	require.Equal(t, 2, mg2.NumberOfFaceIncidentNodes())
	require.Equal(t, 2, mg2.NumberOfEdgeIncidentCells())
	require.Equal(t, 2, mg2.NumberOfCellIncidentEdges())

	mg3 := mustNew(t, []int{2, 2, 2})
	require.Equal(t, 12, mg3.NumberOfNodeIncidentFaces())
	require.Equal(t, 4, mg3.NumberOfNodeIncidentFacesPerAxis())
	require.Equal(t, 4, mg3.NumberOfFaceIncidentNodes())
	require.Equal(t, 4, mg3.NumberOfEdgeIncidentCells())
	require.Equal(t, 4, mg3.NumberOfCellIncidentEdges())
	require.Equal(t, 2, macgrid.NumberOfEdgeIncidentNodes())
}

// TestFaceIncidentNode_Order pins the bit-order convention in 3D.
func TestFaceIncidentNode_Order(t *testing.T) {
	t.Parallel()

	mg := mustNew(t, []int{2, 2, 2})
	f := grid.Vec(1, 0, 1)
	want := []grid.Coord{grid.Vec(1, 0, 1), grid.Vec(1, 1, 1), grid.Vec(1, 0, 2), grid.Vec(1, 1, 2)}
	require.Equal(t, want, mg.FaceIncidentNodes(0, f, nil))

	want = []grid.Coord{grid.Vec(1, 0, 1), grid.Vec(2, 0, 1), grid.Vec(1, 0, 2), grid.Vec(2, 0, 2)}
	require.Equal(t, want, mg.FaceIncidentNodes(1, f, nil))

	mg2 := mustNew(t, []int{2, 2})
	require.Equal(t, []grid.Coord{grid.Vec(0, 1), grid.Vec(1, 1)}, mg2.FaceIncidentNodes(1, grid.Vec(0, 1), nil))
}

// TestNodeFaceConsistency checks that every corner node of a face lists that
// face among its incident faces, and that node-incident faces are distinct.
func TestNodeFaceConsistency(t *testing.T) {
	t.Parallel()

	for _, counts := range shapes {
		mg := mustNew(t, counts)
		for a, f := range mg.Faces() {
			for i := 0; i < mg.NumberOfFaceIncidentNodes(); i++ {
				n := mg.FaceIncidentNode(a, f, i)
				require.True(t, mg.Grid().ValidNode(n), "axis %d face %v node %v", a, f, n)

				found := 0
				for j := 0; j < mg.NumberOfNodeIncidentFaces(); j++ {
					if mg.NodeIncidentFace(n, j) == (macgrid.Face{Axis: a, Coord: f}) {
						found++
					}
				}
				require.Equal(t, 1, found, "axis %d face %v node %v", a, f, n)
				require.Equal(t, f, mg.NodeIncidentFacePerAxis(n, i, a))
			}
		}
		for _, n := range mg.Grid().Nodes() {
			seen := map[macgrid.Face]bool{}
			for j := 0; j < mg.NumberOfNodeIncidentFaces(); j++ {
				seen[mg.NodeIncidentFace(n, j)] = true
			}
			require.Len(t, seen, mg.NumberOfNodeIncidentFaces())
		}
	}
}
