// Package config reads the TOML description of a MAC grid and turns it into
// a validated macgrid.MacGrid.
//
//	dim = 3                       # optional, inferred from cell_counts
//	cell_counts = [64, 64, 32]
//	dx = 0.25                     # optional, default 1
//	domain_min = [0.0, 0.0, -4.0] # optional, default origin
//
// Unknown keys are rejected with ErrUnknownKey so that a misspelled setting
// never silently falls back to a default.
package config
