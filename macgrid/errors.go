// SPDX-License-Identifier: MIT

package macgrid

import "errors"

// Sentinel errors for MacGrid construction and checked lookups.
var (
	// ErrEmptyGrid indicates a zero-value cell grid or one with no cells.
	ErrEmptyGrid = errors.New("macgrid: cell grid has no cells")

	// ErrAxisOutOfRange indicates an axis outside [0,d).
	ErrAxisOutOfRange = errors.New("macgrid: axis out of range")

	// ErrInvalidFace indicates a face coordinate outside its face grid.
	ErrInvalidFace = errors.New("macgrid: face coordinate out of range")

	// ErrInvalidEdge indicates an edge coordinate outside its edge grid.
	ErrInvalidEdge = errors.New("macgrid: edge coordinate out of range")

	// ErrIndexOutOfRange indicates a linear face/edge index outside its range.
	ErrIndexOutOfRange = errors.New("macgrid: linear index out of range")
)
