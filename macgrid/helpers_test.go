package macgrid_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/chrysly/wildfire-VIP/grid"
	"github.com/chrysly/wildfire-VIP/macgrid"
)

// tol is the absolute tolerance for position comparisons.
const tol = 1e-12

// shapes covers thin, square and anisotropic 2D/3D cell counts.
var shapes = [][]int{
	{1, 1}, {2, 2}, {3, 5}, {7, 1},
	{1, 1, 1}, {2, 3, 4}, {4, 1, 2}, {3, 3, 3},
}

// mustNew builds a MacGrid or fails the test.
func mustNew(t testing.TB, counts []int, opts ...grid.Option) *macgrid.MacGrid {
	t.Helper()
	mg, err := macgrid.New(counts, opts...)
	require.NoError(t, err)

	return mg
}

// requireNear asserts that two positions agree within tol.
func requireNear(t testing.TB, want, got r3.Vec) {
	t.Helper()
	require.Truef(t, floats.EqualApprox(
		[]float64{want.X, want.Y, want.Z},
		[]float64{got.X, got.Y, got.Z}, tol),
		"want %v got %v", want, got)
}

// midpoint returns (a+b)/2.
func midpoint(a, b r3.Vec) r3.Vec { return r3.Scale(0.5, r3.Add(a, b)) }
