package types

import (
	"math"

	"golang.org/x/image/math/f64"
)

type Vec3 f64.Vec3

// Components below this threshold are treated as zero by NearZero.
const nearZeroEpsilon = 1e-8

// Define a 3 component vector.
func XYZ(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// Add a vector.
func (v Vec3) Add(v2 Vec3) Vec3 {
	return Vec3{v[0] + v2[0], v[1] + v2[1], v[2] + v2[2]}
}

// Subtract a vector.
func (v Vec3) Sub(v2 Vec3) Vec3 {
	return Vec3{v[0] - v2[0], v[1] - v2[1], v[2] - v2[2]}
}

// Multiply a 3 component vector with a scalar.
func (v Vec3) Mul(s float64) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// Multiply two vectors component-wise.
func (v Vec3) MulVec(v2 Vec3) Vec3 {
	return Vec3{v[0] * v2[0], v[1] * v2[1], v[2] * v2[2]}
}

// Divide a 3 component vector by a scalar.
func (v Vec3) Div(s float64) Vec3 {
	return Vec3{v[0] / s, v[1] / s, v[2] / s}
}

// Negate all vector components.
func (v Vec3) Neg() Vec3 {
	return Vec3{-v[0], -v[1], -v[2]}
}

// Get 3 component vector length.
func (v Vec3) Len() float64 {
	return math.Sqrt(v.LenSq())
}

// Get squared vector length.
func (v Vec3) LenSq() float64 {
	return v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
}

// Normalize 3 component vector. Zero-length vectors are returned unchanged.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vec3{v[0] / l, v[1] / l, v[2] / l}
}

// Calculate dot product of 2 vectors
func (v Vec3) Dot(v2 Vec3) float64 {
	return v[0]*v2[0] + v[1]*v2[1] + v[2]*v2[2]
}

// Calculate cross product of 2 vectors.
func (v Vec3) Cross(v2 Vec3) Vec3 {
	return Vec3{v[1]*v2[2] - v[2]*v2[1], v[2]*v2[0] - v[0]*v2[2], v[0]*v2[1] - v[1]*v2[0]}
}

// Returns true if all components are close to zero.
func (v Vec3) NearZero() bool {
	return math.Abs(v[0]) < nearZeroEpsilon &&
		math.Abs(v[1]) < nearZeroEpsilon &&
		math.Abs(v[2]) < nearZeroEpsilon
}

// Linearly interpolate between v (t=0) and v2 (t=1).
func (v Vec3) Lerp(v2 Vec3, t float64) Vec3 {
	return v.Mul(1.0 - t).Add(v2.Mul(t))
}

// Calc min component from two vectors
func MinVec3(v1, v2 Vec3) Vec3 {
	return Vec3{math.Min(v1[0], v2[0]), math.Min(v1[1], v2[1]), math.Min(v1[2], v2[2])}
}

// Calc maxcomponent from two vectors
func MaxVec3(v1, v2 Vec3) Vec3 {
	return Vec3{math.Max(v1[0], v2[0]), math.Max(v1[1], v2[1]), math.Max(v1[2], v2[2])}
}
