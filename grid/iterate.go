// SPDX-License-Identifier: MIT
// Package: wildfire-VIP/grid
//
// iterate.go — lazy traversal of cell and node ranges.
//
// Determinism:
//   • Sequences yield (linear index, coordinate) in ascending linear order.
//   • Each call returns a fresh, restartable sequence.

package grid

import "iter"

// Cells yields every cell in linear order.
func (g Grid) Cells() iter.Seq2[int, Coord] {
	return rangeSeq(g.dim, g.cellCounts)
}

// Nodes yields every node in linear order.
func (g Grid) Nodes() iter.Seq2[int, Coord] {
	return rangeSeq(g.dim, g.nodeCounts)
}

// rangeSeq walks counts in row-major order, incrementing the last axis first
// instead of dividing per element.
func rangeSeq(d Dim, counts Coord) iter.Seq2[int, Coord] {
	return func(yield func(int, Coord) bool) {
		total := counts.Prod(d)
		var c Coord
		for i := 0; i < total; i++ {
			if !yield(i, c) {
				return
			}
			for k := int(d) - 1; k >= 0; k-- {
				c[k]++
				if c[k] < counts[k] {
					break
				}
				c[k] = 0
			}
		}
	}
}
