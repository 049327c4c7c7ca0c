package cpu

import (
	"math"
	"testing"

	"github.com/achilleasa/spheretrace/scene"
	"github.com/achilleasa/spheretrace/types"
)

func TestRayColorZeroDepthIsBlack(t *testing.T) {
	world := scene.SphereList{}
	rnd := types.NewRandomSource(1, 2)
	ray := scene.Ray{Origin: types.XYZ(0, 0, 0), Dir: types.XYZ(0, 1, 0)}

	if c := RayColor(ray, world, 0, rnd); c != (types.Vec3{}) {
		t.Fatalf("expected black; got %v", c)
	}
}

func TestRayColorMissReturnsBackground(t *testing.T) {
	world := scene.SphereList{}
	rnd := types.NewRandomSource(1, 2)

	type spec struct {
		dir types.Vec3
		exp types.Vec3
	}
	specs := []spec{
		{types.XYZ(0, 1, 0), types.XYZ(0.5, 0.7, 1.0)},
		{types.XYZ(0, -3, 0), types.XYZ(1, 1, 1)},
		{types.XYZ(1, 0, 0), types.XYZ(0.75, 0.85, 1.0)},
	}

	for index, s := range specs {
		ray := scene.Ray{Origin: types.XYZ(0, 0, 0), Dir: s.dir}
		c := RayColor(ray, world, 10, rnd)
		if !vecApproxEq(c, s.exp, 1e-9) {
			t.Fatalf("[spec %d] expected color %v; got %v", index, s.exp, c)
		}
	}
}

func TestRayColorLambertianIsBoundedByAlbedo(t *testing.T) {
	albedo := types.XYZ(0.5, 0.25, 0.1)
	world := scene.SphereList{
		scene.NewSphere(types.XYZ(0, 0, -1), 0.5, scene.NewLambertian(albedo)),
	}
	rnd := types.NewRandomSource(3, 4)
	ray := scene.Ray{Origin: types.XYZ(0, 0, 0), Dir: types.XYZ(0, 0, -1)}

	// A single convex sphere can only be hit once; the bounce escapes to the
	// sky whose components never exceed 1.
	for i := 0; i < 200; i++ {
		c := RayColor(ray, world, 50, rnd)
		for axis := 0; axis < 3; axis++ {
			if c[axis] < 0 || c[axis] > albedo[axis]+1e-12 {
				t.Fatalf("expected component %d to be in [0, %f]; got %f", axis, albedo[axis], c[axis])
			}
		}
	}
}

func TestRayColorAbsorbedPathIsBlack(t *testing.T) {
	// A ray leaving the inside of a metal sphere reflects back inside until
	// the depth limit is reached.
	world := scene.SphereList{
		scene.NewSphere(types.XYZ(0, 0, 0), 1, scene.NewMetal(types.XYZ(1, 1, 1), 0)),
	}
	rnd := types.NewRandomSource(5, 6)
	ray := scene.Ray{Origin: types.XYZ(0, 0, 0), Dir: types.XYZ(0, 0, -1)}

	if c := RayColor(ray, world, 5, rnd); c != (types.Vec3{}) {
		t.Fatalf("expected black; got %v", c)
	}
}

func TestLinearToGamma(t *testing.T) {
	c := LinearToGamma(types.XYZ(0.25, 1, -1))
	if !vecApproxEq(c, types.XYZ(0.5, 1, 0), 1e-12) {
		t.Fatalf("expected (0.5, 1, 0); got %v", c)
	}
}

func vecApproxEq(a, b types.Vec3, eps float64) bool {
	for i := 0; i < 3; i++ {
		if math.Abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}
