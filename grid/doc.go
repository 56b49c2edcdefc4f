// Package grid implements the uniform lattice primitive that every staggered
// sub-grid of a MAC grid is built from.
//
// What:
//
//   - Grid describes a fixed-resolution, axis-aligned lattice in 2 or 3
//     dimensions: cell counts per axis, a scalar spacing dx and the physical
//     position of the domain's minimum corner.
//   - Node counts are always cell counts + 1 along every axis.
//   - Coordinates (Coord) convert to and from linear indices in row-major
//     order: the last axis varies fastest, offset = ((c0*n1)+c1)*n2 + c2.
//   - Physical positions are gonum spatial/r3 vectors; Z is unused in 2D.
//
// Why:
//
//   - The MAC grid in package macgrid derives one Grid per face axis and one
//     per edge axis. Those derived grids may be a single node thick along an
//     axis, hence FromNodeCounts accepts node counts of 1.
//
// Neighbor order:
//
//	NbC(c, i) for i ∈ [0,d)  = c − Unit(i)
//	NbC(c, i) for i ∈ [d,2d) = c + Unit(2d−1−i)
//
//	2D: (−1,0) (0,−1) (0,+1) (+1,0)
//	3D: (−1,0,0) (0,−1,0) (0,0,−1) (0,0,+1) (0,+1,0) (+1,0,0)
//
// The order is lexicographic in the offsets and is load-bearing: the face
// enumeration of macgrid.MacGrid.CellIncidentFaceAt follows it exactly.
//
// Complexity:
//
//   - All queries are O(d) time, O(1) memory; Grid is a small value type and
//     plain assignment copies it completely.
//
// Errors:
//
//   - ErrBadDimension: number of counts is not 2 or 3.
//   - ErrBadCounts: a cell count is ≤ 0 (New) or a node count is ≤ 0 (FromNodeCounts).
package grid
