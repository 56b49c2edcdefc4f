// SPDX-License-Identifier: MIT

package grid

import "errors"

var (
	// ErrBadDimension indicates that the number of per-axis counts is neither 2 nor 3.
	ErrBadDimension = errors.New("grid: dimension must be 2 or 3")

	// ErrBadCounts indicates a non-positive cell or node count.
	ErrBadCounts = errors.New("grid: counts must be positive")
)
