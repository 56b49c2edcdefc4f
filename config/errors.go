// SPDX-License-Identifier: MIT

package config

import "errors"

var (
	// ErrUnknownKey indicates a TOML key that Config does not define.
	ErrUnknownKey = errors.New("config: unknown key")

	// ErrBadDimension indicates dim is not 2 or 3, or disagrees with cell_counts.
	ErrBadDimension = errors.New("config: dimension must be 2 or 3 and match cell_counts")

	// ErrBadCounts indicates a non-positive cell count.
	ErrBadCounts = errors.New("config: cell counts must be positive")

	// ErrBadSpacing indicates a non-finite or non-positive dx.
	ErrBadSpacing = errors.New("config: dx must be finite and positive")

	// ErrBadOrigin indicates a domain_min of the wrong length or with non-finite values.
	ErrBadOrigin = errors.New("config: domain_min must have dim finite components")
)
