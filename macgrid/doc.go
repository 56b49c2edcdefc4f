// Package macgrid is the topological and indexing core of a staggered
// (MAC) grid in 2 or 3 dimensions.
//
// What:
//
//   - MacGrid owns the cell grid plus, for every axis a, a face grid and an
//     edge grid derived from it:
//
//     faceCounts[a][a] = cells[a]+1   faceCounts[a][k] = cells[k]    (k≠a)
//     edgeCounts[a][a] = cells[a]     edgeCounts[a][k] = cells[k]+1  (k≠a)
//
//   - Face grid nodes coincide with physical face centers; edge grid nodes
//     coincide with edge midpoints. All face/edge index math goes through
//     those derived grids.
//   - Incidence between cells, faces, edges and nodes is expressed as pure
//     functions of coordinates. Relations that do not depend on the
//     dimension are package-level functions; the others are methods whose
//     result depends only on the MacGrid's dimension.
//
// Enumeration conventions:
//
//   - CellIncidentFaceAt(cell, i) yields the face between cell and
//     grid.Grid.NbC(cell, i), in the same order.
//   - Face/edge corner enumerations walk the axes orthogonal to the
//     face/edge axis in ascending order; bit j of i selects a step along the
//     j-th of them (+1 for FaceIncidentNode and CellIncidentEdge, −1 for
//     NodeIncidentFacePerAxis and EdgeIncidentCell).
//   - NodeIncidentFace(node, i) is axis-major: axis = i / perAxis.
//
// Preconditions:
//
//   - ValidFace / ValidEdge are the sanctioned checks. Index, center and
//     incidence queries assume valid input; an out-of-range axis panics and
//     an out-of-range coordinate gives an unspecified result. LookupFace,
//     FaceAt, LookupEdge and EdgeAt are the checked variants.
//
// Concurrency:
//
//   - An initialized MacGrid is read-only and may be shared by any number of
//     goroutines. Re-initialization must not overlap with readers.
//   - ExecFaces / ExecEdges fan the callback out over each axis' linear range
//     with no ordering guarantee inside an axis; axes run one after another.
//
// Errors:
//
//   - ErrEmptyGrid: cell grid is the zero Grid or has an empty axis.
//   - ErrAxisOutOfRange, ErrInvalidFace, ErrInvalidEdge, ErrIndexOutOfRange:
//     returned by the checked lookups.
//   - grid.ErrBadDimension / grid.ErrBadCounts wrapped from construction.
package macgrid
