// SPDX-License-Identifier: MIT
// Package: wildfire-VIP/config
//
// config.go — TOML decoding, defaults, validation and MacGrid construction.
//
// Contract:
//   • Load and Parse return a Config with defaults applied and Validate passed.
//   • A Config built by hand must be validated by Build (it calls Validate).
//   • Encode writes a Config back in the same format; Parse(Encode(c)) == c.

package config

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/BurntSushi/toml"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/chrysly/wildfire-VIP/grid"
	"github.com/chrysly/wildfire-VIP/macgrid"
)

const (
	methodLoad  = "Load"
	methodParse = "Parse"
	methodBuild = "Build"
)

// Config describes a MAC grid.
type Config struct {
	Dim        int       `toml:"dim"`
	CellCounts []int     `toml:"cell_counts"`
	Dx         float64   `toml:"dx"`
	DomainMin  []float64 `toml:"domain_min"`
}

// Load decodes the TOML file at path.
func Load(path string) (Config, error) {
	var c Config
	md, err := toml.DecodeFile(path, &c)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %s: %w", methodLoad, path, err)
	}
	if err := c.finish(md); err != nil {
		return Config{}, fmt.Errorf("%s: %s: %w", methodLoad, path, err)
	}

	return c, nil
}

// Parse decodes a TOML document.
func Parse(data string) (Config, error) {
	var c Config
	md, err := toml.Decode(data, &c)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", methodParse, err)
	}
	if err := c.finish(md); err != nil {
		return Config{}, fmt.Errorf("%s: %w", methodParse, err)
	}

	return c, nil
}

// finish rejects unknown keys, fills defaults and validates.
func (c *Config) finish(md toml.MetaData) error {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("%s: %w", strings.Join(keys, ", "), ErrUnknownKey)
	}
	if !md.IsDefined("dim") {
		c.Dim = len(c.CellCounts)
	}
	if !md.IsDefined("dx") {
		c.Dx = grid.DefaultSpacing
	}
	if !md.IsDefined("domain_min") && (c.Dim == int(grid.D2) || c.Dim == int(grid.D3)) {
		c.DomainMin = make([]float64, c.Dim)
	}

	return c.Validate()
}

// Validate checks c without building anything.
func (c Config) Validate() error {
	if c.Dim != int(grid.D2) && c.Dim != int(grid.D3) {
		return fmt.Errorf("dim %d: %w", c.Dim, ErrBadDimension)
	}
	if len(c.CellCounts) != c.Dim {
		return fmt.Errorf("dim %d with %d cell counts: %w", c.Dim, len(c.CellCounts), ErrBadDimension)
	}
	for k, n := range c.CellCounts {
		if n <= 0 {
			return fmt.Errorf("cell_counts[%d] = %d: %w", k, n, ErrBadCounts)
		}
	}
	if c.Dx <= 0 || math.IsNaN(c.Dx) || math.IsInf(c.Dx, 0) {
		return fmt.Errorf("dx = %v: %w", c.Dx, ErrBadSpacing)
	}
	if len(c.DomainMin) != 0 && len(c.DomainMin) != c.Dim {
		return fmt.Errorf("%d components for dim %d: %w", len(c.DomainMin), c.Dim, ErrBadOrigin)
	}
	for k, x := range c.DomainMin {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("domain_min[%d] = %v: %w", k, x, ErrBadOrigin)
		}
	}

	return nil
}

// Origin returns the domain minimum as a position.
func (c Config) Origin() r3.Vec {
	var v r3.Vec
	for k, x := range c.DomainMin {
		v = grid.WithComponent(v, k, x)
	}

	return v
}

// Options translates c into grid options.
func (c Config) Options() []grid.Option {
	return []grid.Option{grid.WithSpacing(c.Dx), grid.WithDomainMin(c.Origin())}
}

// Build validates c and constructs the MacGrid it describes.
func (c Config) Build() (*macgrid.MacGrid, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}
	mg, err := macgrid.New(c.CellCounts, c.Options()...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}

	return mg, nil
}

// Encode writes c as TOML.
func (c Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// FromMacGrid describes an existing MacGrid.
func FromMacGrid(mg *macgrid.MacGrid) Config {
	g := mg.Grid()
	d := g.Dim()
	c := Config{
		Dim:        int(d),
		CellCounts: g.CellCounts().Ints(d),
		Dx:         g.Dx(),
		DomainMin:  make([]float64, d),
	}
	for k := range c.DomainMin {
		c.DomainMin[k] = grid.Component(g.DomainMin(), k)
	}

	return c
}
