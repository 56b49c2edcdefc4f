package macgrid_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/chrysly/wildfire-VIP/grid"
	"github.com/chrysly/wildfire-VIP/macgrid"
)

// TestFaceIndexRoundTrip checks FaceIndex/FaceCoord are mutual inverses.
func TestFaceIndexRoundTrip(t *testing.T) {
	t.Parallel()

	for _, counts := range shapes {
		mg := mustNew(t, counts)
		for a := 0; a < int(mg.Dim()); a++ {
			for i := 0; i < mg.NumberOfFaces(a); i++ {
				f := mg.FaceCoord(a, i)
				require.True(t, mg.ValidFace(a, f))
				require.Equal(t, i, mg.FaceIndex(a, f))
			}
		}
		for a, f := range mg.Faces() {
			require.Equal(t, f, mg.FaceCoord(a, mg.FaceIndex(a, f)))
		}
	}
}

// TestValidFace checks the face range per axis.
func TestValidFace(t *testing.T) {
	t.Parallel()

	mg := mustNew(t, []int{2, 2})
	require.True(t, mg.ValidFace(0, grid.Vec(2, 1)))
	require.False(t, mg.ValidFace(0, grid.Vec(2, 2)))
	require.True(t, mg.ValidFace(1, grid.Vec(1, 2)))
	require.False(t, mg.ValidFace(1, grid.Vec(2, 1)))
	require.False(t, mg.ValidFace(0, grid.Vec(0, 0, 1)))
}

// TestFaceCenter verifies every face center is the midpoint of its two cell
// centers and the centroid of its corner nodes.
func TestFaceCenter(t *testing.T) {
	t.Parallel()

	for _, counts := range shapes {
		mg := mustNew(t, counts, grid.WithSpacing(0.5), grid.WithDomainMin(r3.Vec{X: -2, Y: 1, Z: 0.25}))
		g := mg.Grid()
		var corners []grid.Coord
		for a, f := range mg.Faces() {
			want := midpoint(g.Center(macgrid.FaceLeftCell(a, f)), g.Center(macgrid.FaceRightCell(a, f)))
			requireNear(t, want, mg.FaceCenter(a, f))

			corners = mg.FaceIncidentNodes(a, f, corners[:0])
			var sum r3.Vec
			for _, n := range corners {
				sum = r3.Add(sum, g.Node(n))
			}
			requireNear(t, r3.Scale(1/float64(len(corners)), sum), mg.FaceCenter(a, f))
		}
	}
}

// TestBoundaryFace compares IsBoundaryFace with a direct shell test.
func TestBoundaryFace(t *testing.T) {
	t.Parallel()

	for _, counts := range shapes {
		mg := mustNew(t, counts)
		d := int(mg.Dim())
		for a, f := range mg.Faces() {
			n := mg.FaceCounts(a)
			shell, ring1, axial := false, false, f[a] == 0 || f[a] == n[a]-1
			for k := 0; k < d; k++ {
				if f[k] == 0 || f[k] == n[k]-1 {
					shell = true
				}
				if f[k] <= 1 || f[k] >= n[k]-2 {
					ring1 = true
				}
			}
			require.Equal(t, shell, mg.IsBoundaryFace(a, f), "axis %d face %v", a, f)
			require.Equal(t, ring1, mg.IsBoundaryFaceRing(a, f, 1), "axis %d face %v", a, f)
			require.Equal(t, axial, mg.IsAxialBoundaryFace(a, f), "axis %d face %v", a, f)
		}
	}
}

// TestAxialBoundaryFace spot-checks a 3×3 grid.
func TestAxialBoundaryFace(t *testing.T) {
	t.Parallel()

	mg := mustNew(t, []int{3, 3})
	require.True(t, mg.IsAxialBoundaryFace(0, grid.Vec(0, 1)))
	require.True(t, mg.IsAxialBoundaryFace(0, grid.Vec(3, 1)))
	require.False(t, mg.IsAxialBoundaryFace(0, grid.Vec(1, 0)))
	require.True(t, mg.IsBoundaryFace(0, grid.Vec(1, 0)))
	require.False(t, mg.IsAxialBoundaryFace(0, grid.Vec(4, 0)))
}

// TestLookupFace covers the checked lookups.
func TestLookupFace(t *testing.T) {
	t.Parallel()

	mg := mustNew(t, []int{2, 3, 4})

	i, err := mg.LookupFace(1, grid.Vec(1, 3, 2))
	require.NoError(t, err)
	require.Equal(t, mg.FaceIndex(1, grid.Vec(1, 3, 2)), i)

	f, err := mg.FaceAt(1, i)
	require.NoError(t, err)
	require.Equal(t, grid.Vec(1, 3, 2), f)

	_, err = mg.LookupFace(3, grid.Coord{})
	require.ErrorIs(t, err, macgrid.ErrAxisOutOfRange)
	_, err = mg.LookupFace(0, grid.Vec(3, 3, 4))
	require.ErrorIs(t, err, macgrid.ErrInvalidFace)
	_, err = mg.FaceAt(2, mg.NumberOfFaces(2))
	require.ErrorIs(t, err, macgrid.ErrIndexOutOfRange)
	_, err = mg.FaceAt(-1, 0)
	require.ErrorIs(t, err, macgrid.ErrAxisOutOfRange)
}
