// SPDX-License-Identifier: MIT
// Package: wildfire-VIP/verify
//
// checks.go — the individual invariant checks.
//
// Every check recomputes its reference value from first principles (cell
// counts, cell centers, node positions) rather than asking the MacGrid the
// same question twice.

package verify

import (
	"context"
	"fmt"
	"sync/atomic"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/chrysly/wildfire-VIP/grid"
	"github.com/chrysly/wildfire-VIP/macgrid"
)

// cellPollMask sets how often the sequential cell walk polls ctx.
const cellPollMask = 1<<10 - 1

// sheet accumulates the violations found on one item.
type sheet struct {
	check string
	axis  int
	coord grid.Coord
	vs    []Violation
}

func (s *sheet) fail(property, format string, args ...any) {
	s.vs = append(s.vs, Violation{
		Check:    s.check,
		Property: property,
		Axis:     s.axis,
		Coord:    s.coord,
		Detail:   fmt.Sprintf(format, args...),
	})
}

// checkShape verifies the face/edge count derivation for every axis.
func checkShape(ctx context.Context, a *auditor, name string) (int, error) {
	mg := a.mg
	g := mg.Grid()
	d := mg.Dim()
	cells := g.CellCounts()

	for axis := 0; axis < int(d); axis++ {
		s := sheet{check: name, axis: axis}
		fc, ec := mg.FaceCounts(axis), mg.EdgeCounts(axis)
		for k := 0; k < int(d); k++ {
			wantF, wantE := cells[k], cells[k]+1
			if k == axis {
				wantF, wantE = cells[k]+1, cells[k]
			}
			if fc[k] != wantF {
				s.fail("face counts", "component %d is %d, want %d", k, fc[k], wantF)
			}
			if ec[k] != wantE {
				s.fail("edge counts", "component %d is %d, want %d", k, ec[k], wantE)
			}
		}
		for _, sub := range []struct {
			label string
			g     grid.Grid
		}{{"face grid", mg.FaceGrid(axis)}, {"edge grid", mg.EdgeGrid(axis)}} {
			if sub.g.Dim() != d {
				s.fail(sub.label, "dimension %d, want %d", sub.g.Dim(), d)
			}
			if sub.g.Dx() != g.Dx() {
				s.fail(sub.label, "spacing %g, want %g", sub.g.Dx(), g.Dx())
			}
		}
		if mg.FaceGrid(axis).NodeCounts() != fc {
			s.fail("face grid", "node counts %s, want %s", mg.FaceGrid(axis).NodeCounts().Format(d), fc.Format(d))
		}
		if mg.EdgeGrid(axis).NodeCounts() != ec {
			s.fail("edge grid", "node counts %s, want %s", mg.EdgeGrid(axis).NodeCounts().Format(d), ec.Format(d))
		}
		if err := a.report(s.vs...); err != nil {
			return axis + 1, err
		}
	}

	return int(d), ctx.Err()
}

// checkFaces audits every face through the parallel traversal.
func checkFaces(ctx context.Context, a *auditor, name string) (int, error) {
	var items atomic.Int64
	g := a.mg.Grid()
	err := a.mg.ExecFacesContext(ctx, func(axis int, face grid.Coord) error {
		items.Add(1)
		return a.report(a.face(name, g, axis, face)...)
	})

	return int(items.Load()), err
}

func (a *auditor) face(name string, g grid.Grid, axis int, f grid.Coord) []Violation {
	mg := a.mg
	s := sheet{check: name, axis: axis, coord: f}

	if !mg.ValidFace(axis, f) {
		s.fail("valid", "traversed face is not valid")
	}
	if i := mg.FaceIndex(axis, f); mg.FaceCoord(axis, i) != f {
		s.fail("index round trip", "index %d maps back to %v", i, mg.FaceCoord(axis, i))
	}

	left, right := macgrid.FaceLeftCell(axis, f), macgrid.FaceRightCell(axis, f)
	if macgrid.FaceLeftCell(axis, macgrid.CellRightFace(axis, left)) != left {
		s.fail("face/cell duality", "left cell %v does not round trip", left)
	}
	if macgrid.CellLeftFace(axis, right) != f {
		s.fail("face/cell duality", "right cell %v does not map back", right)
	}
	if macgrid.FaceIncidentCell(axis, f, 0) != left || macgrid.FaceIncidentCell(axis, f, 1) != right {
		s.fail("face/cell incidence", "incident cells disagree with left/right")
	}
	n := mg.FaceCounts(axis)
	axial := f[axis] == 0 || f[axis] == n[axis]-1
	if mg.IsAxialBoundaryFace(axis, f) != axial {
		s.fail("axial boundary", "IsAxialBoundaryFace=%t, want %t", !axial, axial)
	}
	if both := g.ValidCell(left) && g.ValidCell(right); both == axial {
		s.fail("axial boundary", "both cells valid=%t on axial=%t face", both, axial)
	}
	if shell := onShell(mg.Dim(), n, f); mg.IsBoundaryFace(axis, f) != shell {
		s.fail("boundary", "IsBoundaryFace=%t, want %t", !shell, shell)
	}

	want := midpoint(g.Center(left), g.Center(right))
	if got := mg.FaceCenter(axis, f); !a.near(got, want) {
		s.fail("center", "got %v, want %v", got, want)
	}

	for i := 0; i < mg.NumberOfFaceIncidentNodes(); i++ {
		node := mg.FaceIncidentNode(axis, f, i)
		if !g.ValidNode(node) {
			s.fail("face/node incidence", "corner %d %v is not a node", i, node)
			continue
		}
		if back := mg.NodeIncidentFacePerAxis(node, i, axis); back != f {
			s.fail("node/face incidence", "corner %d %v lists %v", i, node, back)
		}
	}

	return s.vs
}

// checkCells walks every cell and cross-checks its incident faces against
// the cell grid's neighbor order.
func checkCells(ctx context.Context, a *auditor, name string) (int, error) {
	mg := a.mg
	g := mg.Grid()
	items := 0
	for idx, c := range g.Cells() {
		if idx&cellPollMask == 0 {
			if err := ctx.Err(); err != nil {
				return items, err
			}
		}
		items++

		s := sheet{check: name, axis: -1, coord: c}
		for i := 0; i < mg.NumberOfCellIncidentFaces(); i++ {
			f := mg.CellIncidentFaceAt(c, i)
			nb := g.NbC(c, i)
			if !mg.ValidFace(f.Axis, f.Coord) {
				s.fail("valid", "face %d %v is not valid", i, f)
			}
			if !macgrid.IsFaceIncidentToCell(f.Axis, f.Coord, c) || !macgrid.IsFaceIncidentToCell(f.Axis, f.Coord, nb) {
				s.fail("neighbor order", "face %d %v does not separate the cell from %v", i, f, nb)
			}
		}
		for axis := 0; axis < int(mg.Dim()); axis++ {
			for i := 0; i < macgrid.NumberOfFaceIncidentCells(); i++ {
				if f := macgrid.CellIncidentFace(axis, c, i); !macgrid.IsFaceIncidentToCell(axis, f, c) {
					s.fail("cell/face incidence", "axis %d face %d %v", axis, i, f)
				}
			}
			for i := 0; i < mg.NumberOfCellIncidentEdges(); i++ {
				e := mg.CellIncidentEdge(axis, c, i)
				if !mg.ValidEdge(axis, e) {
					s.fail("cell/edge incidence", "axis %d edge %d %v is not valid", axis, i, e)
				}
			}
		}
		if err := a.report(s.vs...); err != nil {
			return items, err
		}
	}

	return items, ctx.Err()
}

// checkEdges audits every edge through the parallel traversal.
func checkEdges(ctx context.Context, a *auditor, name string) (int, error) {
	var items atomic.Int64
	g := a.mg.Grid()
	err := a.mg.ExecEdgesContext(ctx, func(axis int, edge grid.Coord) error {
		items.Add(1)
		return a.report(a.edge(name, g, axis, edge)...)
	})

	return int(items.Load()), err
}

func (a *auditor) edge(name string, g grid.Grid, axis int, e grid.Coord) []Violation {
	mg := a.mg
	s := sheet{check: name, axis: axis, coord: e}

	if !mg.ValidEdge(axis, e) {
		s.fail("valid", "traversed edge is not valid")
	}
	if i := mg.EdgeIndex(axis, e); mg.EdgeCoord(axis, i) != e {
		s.fail("index round trip", "index %d maps back to %v", i, mg.EdgeCoord(axis, i))
	}

	n0, n1 := macgrid.EdgeIncidentNode(axis, e, 0), macgrid.EdgeIncidentNode(axis, e, 1)
	if !g.ValidNode(n0) || !g.ValidNode(n1) || n1.Sub(n0) != grid.Unit(axis) {
		s.fail("edge/node incidence", "end nodes %v %v", n0, n1)
	}
	want := midpoint(g.Node(n0), g.Node(n1))
	if got := mg.EdgeCenter(axis, e); !a.near(got, want) {
		s.fail("center", "got %v, want %v", got, want)
	}

	n := mg.EdgeCounts(axis)
	shell := onShell(mg.Dim(), n, e)
	if mg.IsBoundaryEdge(axis, e) != shell {
		s.fail("boundary", "IsBoundaryEdge=%t, want %t", !shell, shell)
	}
	if axial := e[axis] == 0 || e[axis] == n[axis]-1; mg.IsAxialBoundaryEdge(axis, e) != axial {
		s.fail("axial boundary", "IsAxialBoundaryEdge=%t, want %t", !axial, axial)
	}

	for i := 0; i < mg.NumberOfEdgeIncidentCells(); i++ {
		c := mg.EdgeIncidentCell(axis, e, i)
		if !g.ValidCell(c) {
			if !shell {
				s.fail("edge/cell incidence", "interior edge lists invalid cell %d %v", i, c)
			}
			continue
		}
		if back := mg.CellIncidentEdge(axis, c, i); back != e {
			s.fail("cell/edge incidence", "cell %d %v lists %v", i, c, back)
		}
	}

	return s.vs
}

// checkTraversal compares commutative reductions computed through the
// parallel traversal with the sequential iterators.
func checkTraversal(ctx context.Context, a *auditor, name string) (int, error) {
	mg := a.mg
	weight := func(axis, i int) int64 { return int64(i+1) * int64(axis+1) }

	var wantF, wantE int64
	for axis, f := range mg.Faces() {
		wantF += weight(axis, mg.FaceIndex(axis, f))
	}
	for axis, e := range mg.Edges() {
		wantE += weight(axis, mg.EdgeIndex(axis, e))
	}

	var gotF, gotE atomic.Int64
	if err := mg.ExecFacesContext(ctx, func(axis int, f grid.Coord) error {
		gotF.Add(weight(axis, mg.FaceIndex(axis, f)))
		return nil
	}); err != nil {
		return 0, err
	}
	if err := mg.ExecEdgesContext(ctx, func(axis int, e grid.Coord) error {
		gotE.Add(weight(axis, mg.EdgeIndex(axis, e)))
		return nil
	}); err != nil {
		return mg.TotalFaces(), err
	}

	s := sheet{check: name, axis: -1}
	if gotF.Load() != wantF {
		s.fail("face reduction", "parallel %d, sequential %d", gotF.Load(), wantF)
	}
	if gotE.Load() != wantE {
		s.fail("edge reduction", "parallel %d, sequential %d", gotE.Load(), wantE)
	}

	return mg.TotalFaces() + mg.TotalEdges(), a.report(s.vs...)
}

// onShell reports whether c touches the outer shell of the node range n.
func onShell(d grid.Dim, n, c grid.Coord) bool {
	for k := 0; k < int(d); k++ {
		if c[k] == 0 || c[k] == n[k]-1 {
			return true
		}
	}

	return false
}

func midpoint(p, q r3.Vec) r3.Vec { return r3.Scale(0.5, r3.Add(p, q)) }
