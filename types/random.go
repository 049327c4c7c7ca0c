package types

import (
	"math/rand/v2"
)

// RandomSource yields uniformly distributed floats in [0, 1). Every component
// that needs randomness receives one explicitly so that callers can plug in a
// seeded generator for reproducible output. *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// Create a PCG backed random source from a pair of seed values.
func NewRandomSource(seed1, seed2 uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed1, seed2))
}

// Return a random float in [min, max).
func RandomRange(rnd RandomSource, min, max float64) float64 {
	return min + (max-min)*rnd.Float64()
}

// Return a vector whose components are uniformly distributed in [min, max).
func RandomVec3(rnd RandomSource, min, max float64) Vec3 {
	return Vec3{
		RandomRange(rnd, min, max),
		RandomRange(rnd, min, max),
		RandomRange(rnd, min, max),
	}
}

// Return a unit vector obtained by normalizing three independent
// uniform [-1, 1) samples.
func RandomUnitVector(rnd RandomSource) Vec3 {
	for {
		v := RandomVec3(rnd, -1, 1)
		if !v.NearZero() {
			return v.Normalize()
		}
	}
}

// Return a random point inside the unit disk on the z=0 plane.
func RandomInUnitDisk(rnd RandomSource) Vec3 {
	for {
		p := Vec3{RandomRange(rnd, -1, 1), RandomRange(rnd, -1, 1), 0}
		if p.LenSq() < 1 {
			return p
		}
	}
}
