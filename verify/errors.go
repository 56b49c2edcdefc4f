// SPDX-License-Identifier: MIT

package verify

import "errors"

var (
	// ErrViolation is wrapped by every reported Violation.
	ErrViolation = errors.New("verify: invariant violated")

	// ErrUnknownCheck indicates a check name that Only does not recognize.
	ErrUnknownCheck = errors.New("verify: unknown check")

	// errLimit stops a traversal once WithMaxViolations is reached.
	errLimit = errors.New("verify: violation limit reached")
)
