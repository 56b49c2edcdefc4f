package macgrid_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/chrysly/wildfire-VIP/grid"
	"github.com/chrysly/wildfire-VIP/macgrid"
)

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that bad shapes are rejected before any grid is usable.
func TestNew_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		counts []int
		err    error
	}{
		{"OneD", []int{3}, grid.ErrBadDimension},
		{"FourD", []int{1, 1, 1, 1}, grid.ErrBadDimension},
		{"Zero", []int{0, 2}, grid.ErrBadCounts},
		{"Negative", []int{2, 2, -3}, grid.ErrBadCounts},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			mg, err := macgrid.New(tc.counts)
			require.ErrorIs(t, err, tc.err)
			require.Nil(t, mg)
		})
	}
}

// TestFromGrid_Errors rejects the zero grid and grids without cells.
func TestFromGrid_Errors(t *testing.T) {
	t.Parallel()

	_, err := macgrid.FromGrid(grid.Grid{})
	require.ErrorIs(t, err, macgrid.ErrEmptyGrid)

	thin, err := grid.FromNodeCounts([]int{3, 1})
	require.NoError(t, err)
	_, err = macgrid.FromGrid(thin)
	require.ErrorIs(t, err, macgrid.ErrEmptyGrid)
}

// TestFromGrid matches New for the same parameters.
func TestFromGrid(t *testing.T) {
	t.Parallel()

	opts := []grid.Option{grid.WithSpacing(0.25), grid.WithDomainMin(r3.Vec{X: -1, Y: 2, Z: 3})}
	g, err := grid.New([]int{3, 2, 4}, opts...)
	require.NoError(t, err)
	a, err := macgrid.FromGrid(g)
	require.NoError(t, err)
	b := mustNew(t, []int{3, 2, 4}, opts...)
	require.Equal(t, *a, *b)
	require.Equal(t, g, a.Grid())
}

//----------------------------------------------------------------------------//
// Shape derivation
//----------------------------------------------------------------------------//

// TestCounts checks the face/edge count invariants for every shape.
func TestCounts(t *testing.T) {
	t.Parallel()

	for _, counts := range shapes {
		mg := mustNew(t, counts)
		d := int(mg.Dim())
		require.Equal(t, len(counts), d)
		for a := 0; a < d; a++ {
			fc, ec := mg.FaceCounts(a), mg.EdgeCounts(a)
			for k := 0; k < d; k++ {
				if k == a {
					require.Equal(t, counts[k]+1, fc[k], "face %v axis %d", counts, a)
					require.Equal(t, counts[k], ec[k], "edge %v axis %d", counts, a)
				} else {
					require.Equal(t, counts[k], fc[k], "face %v axis %d", counts, a)
					require.Equal(t, counts[k]+1, ec[k], "edge %v axis %d", counts, a)
				}
			}
			require.Equal(t, fc, mg.FaceGrid(a).NodeCounts())
			require.Equal(t, ec, mg.EdgeGrid(a).NodeCounts())
			require.Equal(t, fc.Prod(mg.Dim()), mg.NumberOfFaces(a))
			require.Equal(t, ec.Prod(mg.Dim()), mg.NumberOfEdges(a))
		}
	}
}

// TestScenario2D pins the 2×2 example: 6+6 faces and a face centered on a shared edge.
func TestScenario2D(t *testing.T) {
	t.Parallel()

	mg := mustNew(t, []int{2, 2})
	require.Equal(t, grid.Vec(3, 2), mg.FaceCounts(0))
	require.Equal(t, grid.Vec(2, 3), mg.FaceCounts(1))
	require.Equal(t, 6, mg.NumberOfFaces(0))
	require.Equal(t, 6, mg.NumberOfFaces(1))
	require.Equal(t, 12, mg.TotalFaces())

	face := grid.Vec(1, 0)
	require.Equal(t, grid.Vec(0, 0), macgrid.FaceLeftCell(0, face))
	require.Equal(t, grid.Vec(1, 0), macgrid.FaceRightCell(0, face))
	requireNear(t, r3.Vec{X: 1, Y: 0.5}, mg.FaceCenter(0, face))
}

// TestScenario3D pins the single-cube example: 6 faces, 12 edges.
func TestScenario3D(t *testing.T) {
	t.Parallel()

	mg := mustNew(t, []int{1, 1, 1})
	for a := 0; a < 3; a++ {
		require.Equal(t, grid.Vec(1, 1, 1).Add(grid.Unit(a)), mg.FaceCounts(a))
		require.Equal(t, 2, mg.NumberOfFaces(a))
		require.Equal(t, 4, mg.NumberOfEdges(a))
	}
	require.Equal(t, 6, mg.TotalFaces())
	require.Equal(t, 12, mg.TotalEdges())
}

//----------------------------------------------------------------------------//
// Lifecycle
//----------------------------------------------------------------------------//

// TestCopyIsDeep verifies that copies never share sub-grid state.
func TestCopyIsDeep(t *testing.T) {
	t.Parallel()

	a := mustNew(t, []int{2, 3})
	b := *a
	c := a.Clone()

	require.NoError(t, a.Initialize([]int{4, 4, 4}, grid.WithSpacing(2)))
	require.Equal(t, grid.D3, a.Dim())
	require.Equal(t, grid.D2, b.Dim())
	require.Equal(t, grid.D2, c.Dim())
	require.Equal(t, grid.Vec(3, 3), b.FaceCounts(0))
	require.Equal(t, grid.Vec(3, 3), c.FaceCounts(0))
	require.Equal(t, 1.0, c.FaceGrid(1).Dx())
}

// TestReinitialize checks that re-initialization is idempotent and that a
// failed re-initialization leaves the receiver untouched.
func TestReinitialize(t *testing.T) {
	t.Parallel()

	mg := mustNew(t, []int{3, 2, 1})
	before := *mg
	require.NoError(t, mg.Initialize([]int{3, 2, 1}))
	require.Equal(t, before, *mg)

	require.Error(t, mg.Initialize([]int{0, 1}))
	require.Equal(t, before, *mg)

	require.NoError(t, mg.Initialize([]int{5, 5}))
	require.Equal(t, grid.D2, mg.Dim())
	require.Equal(t, grid.Vec(5, 6), mg.FaceCounts(1))
}

// TestAxisPanics verifies fail-fast behavior for out-of-range axes.
func TestAxisPanics(t *testing.T) {
	t.Parallel()

	mg := mustNew(t, []int{2, 2})
	require.Panics(t, func() { mg.FaceCounts(2) })
	require.Panics(t, func() { mg.FaceIndex(-1, grid.Coord{}) })
	require.Panics(t, func() { mg.EdgeCenter(2, grid.Coord{}) })
	require.Panics(t, func() { mg.NumberOfFaces(3) })
	require.False(t, mg.ValidFace(2, grid.Coord{}))
	require.False(t, mg.ValidEdge(-1, grid.Coord{}))
}
