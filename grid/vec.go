package grid

import "gonum.org/v1/gonum/spatial/r3"

// Component returns the axis-th component of v (0 → X, 1 → Y, 2 → Z).
func Component(v r3.Vec, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic("grid: Component: axis out of range")
}

// WithComponent returns a copy of v with its axis-th component replaced by x.
func WithComponent(v r3.Vec, axis int, x float64) r3.Vec {
	switch axis {
	case 0:
		v.X = x
	case 1:
		v.Y = x
	case 2:
		v.Z = x
	default:
		panic("grid: WithComponent: axis out of range")
	}

	return v
}

// Offset returns v shifted by s along every axis k < d for which mask(k) holds.
func Offset(v r3.Vec, d Dim, s float64, mask func(k int) bool) r3.Vec {
	var delta r3.Vec
	for k := 0; k < int(d); k++ {
		if mask(k) {
			delta = WithComponent(delta, k, s)
		}
	}

	return r3.Add(v, delta)
}
