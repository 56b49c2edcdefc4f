// Package wildfire is the topological and indexing core of a staggered
// (MAC) grid for grid-based field simulation in 2 or 3 dimensions.
//
// A MAC grid splits a regular lattice into cells, faces (per axis), edges
// (per axis) and nodes. Velocity-like quantities live on faces, circulation-
// like quantities on edges and scalars at cell centers; this module defines
// the exact index mappings and incidence relations between those entities and
// nothing about the physics stored on them.
//
// Subpackages:
//
//	grid/        — uniform lattice primitive: Coord, Dim, Grid, neighbor order, iterators
//	macgrid/     — MacGrid: face and edge sub-grids, incidence, parallel traversal
//	verify/      — whole-grid audit of every topology invariant
//	config/      — TOML grid description → validated MacGrid
//	cmd/macgrid/ — CLI: describe and verify a grid
//
// Quick ASCII example (2×2 cells, x-faces marked |, y-faces marked ─):
//
//	    ─── ───
//	   |   |   |
//	    ─── ───
//	   |   |   |
//	    ─── ───
//
//	6 x-faces (3×2) and 6 y-faces (2×3).
//
//	go get github.com/chrysly/wildfire-VIP/macgrid
package wildfire
