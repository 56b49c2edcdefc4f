// SPDX-License-Identifier: MIT

package macgrid

import (
	"fmt"

	"github.com/chrysly/wildfire-VIP/grid"
)

// Face identifies one staggered face: the face normal to Axis whose face-grid
// coordinate is Coord. Faces are comparable; two faces are equal iff axis and
// coordinate match.
type Face struct {
	Axis  int
	Coord grid.Coord
}

// LeftCell returns the cell on the negative side of f.
func (f Face) LeftCell() grid.Coord { return FaceLeftCell(f.Axis, f.Coord) }

// RightCell returns the cell on the positive side of f.
func (f Face) RightCell() grid.Coord { return FaceRightCell(f.Axis, f.Coord) }

// String implements fmt.Stringer.
func (f Face) String() string { return fmt.Sprintf("Face{axis=%d %v}", f.Axis, f.Coord) }

// Edge identifies one staggered edge aligned with Axis.
type Edge struct {
	Axis  int
	Coord grid.Coord
}

// String implements fmt.Stringer.
func (e Edge) String() string { return fmt.Sprintf("Edge{axis=%d %v}", e.Axis, e.Coord) }
