package scene

import "github.com/achilleasa/spheretrace/types"

// A parametric ray. Time lies in [0, 1] and selects the position of moving
// primitives when the ray is traced.
type Ray struct {
	Origin types.Vec3
	Dir    types.Vec3
	Time   float64
}

// Get the point along the ray at distance t.
func (r Ray) At(t float64) types.Vec3 {
	return r.Origin.Add(r.Dir.Mul(t))
}
