// SPDX-License-Identifier: MIT

package grid

// NumberOfNbC returns the number of face-adjacent neighbor cells, 2d.
func (g Grid) NumberOfNbC() int { return 2 * int(g.dim) }

// NbC returns the i-th face-adjacent neighbor of cell c, i ∈ [0,2d).
// i < d steps backwards along axis i; i ≥ d steps forwards along axis 2d−1−i.
// The result may lie outside the grid; check it with ValidCell.
func (g Grid) NbC(c Coord, i int) Coord { return c.Add(NbCOffset(g.dim, i)) }

// NbCOffset returns the offset NbC applies for index i in dimension d.
func NbCOffset(d Dim, i int) Coord {
	if i < int(d) {
		return Unit(i).Scale(-1)
	}

	return Unit(2*int(d) - 1 - i)
}

// NbCAxis returns the axis and side (0 backwards, 1 forwards) of neighbor i.
func NbCAxis(d Dim, i int) (axis, side int) {
	if i < int(d) {
		return i, 0
	}

	return 2*int(d) - 1 - i, 1
}
