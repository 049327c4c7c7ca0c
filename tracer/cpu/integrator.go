package cpu

import (
	"math"

	"github.com/achilleasa/spheretrace/scene"
	"github.com/achilleasa/spheretrace/types"
)

// Hits closer than this are ignored to avoid self-intersections caused by
// floating point error at the ray origin.
const minHitDistance = 0.001

var (
	skyWhite = types.XYZ(1.0, 1.0, 1.0)
	skyBlue  = types.XYZ(0.5, 0.7, 1.0)
)

// Estimate the radiance arriving along ray. Paths are terminated after depth
// bounces or when a material absorbs the ray.
func RayColor(ray scene.Ray, world scene.Hittable, depth uint32, rnd types.RandomSource) types.Vec3 {
	if depth == 0 {
		return types.Vec3{}
	}

	rec, hit := world.Hit(ray, minHitDistance, math.Inf(1))
	if !hit {
		return Background(ray)
	}

	scattered, ok := rec.Material.Scatter(rnd, ray, &rec)
	if !ok {
		return types.Vec3{}
	}
	return scattered.Attenuation.MulVec(RayColor(scattered.Ray, world, depth-1, rnd))
}

// Get the sky color for a ray that escaped the scene. It is a vertical
// gradient from white (looking down) to light blue (looking up).
func Background(ray scene.Ray) types.Vec3 {
	unitDir := ray.Dir.Normalize()
	a := 0.5 * (unitDir[1] + 1.0)
	return skyWhite.Lerp(skyBlue, a)
}

// Apply gamma 2 correction to a linear color. Negative components map to 0.
func LinearToGamma(c types.Vec3) types.Vec3 {
	return types.Vec3{
		math.Sqrt(math.Max(c[0], 0)),
		math.Sqrt(math.Max(c[1], 0)),
		math.Sqrt(math.Max(c[2], 0)),
	}
}
