// Package verify audits a macgrid.MacGrid against the invariants its
// topology promises.
//
// What:
//
//   - Shape: face/edge counts derive from cell counts as documented in
//     package macgrid.
//   - Faces: index round trip, face/cell duality, face centers, boundary
//     predicates, face/node incidence in both directions.
//   - Cells: every cell's incident faces separate it from its NbC neighbors.
//   - Edges: index round trip, end nodes, edge centers, edge/cell incidence.
//   - Traversal: a commutative reduction through ExecFaces matches the
//     sequential one.
//
// How:
//
//   - Per-face and per-edge checks run through MacGrid.ExecFacesContext and
//     ExecEdgesContext, so a full audit of a large grid uses every core.
//   - Violations are collected with hashicorp/go-multierror; each one wraps
//     ErrViolation. WithMaxViolations bounds the collection and stops the
//     traversal early.
//   - Position comparisons use gonum floats with an absolute-or-relative
//     tolerance (WithTolerance).
//
// Errors:
//
//   - ErrViolation: at least one invariant failed; the returned error lists them.
//   - ErrUnknownCheck: Only named a check that does not exist.
//   - context errors are returned wrapped when the audit is canceled.
package verify
