package scene

import (
	"math"
	"testing"

	"github.com/achilleasa/spheretrace/types"
)

func TestSphereHitNearestRoot(t *testing.T) {
	s := NewSphere(types.XYZ(0, 0, -5), 1, NewLambertian(types.XYZ(1, 1, 1)))
	ray := Ray{Origin: types.XYZ(0, 0, 0), Dir: types.XYZ(0, 0, -1)}

	var rec HitRecord
	if !s.Hit(ray, 0.001, math.Inf(1), &rec) {
		t.Fatal("expected a hit")
	}
	if math.Abs(rec.T-4) > 1e-9 {
		t.Fatalf("expected t = 4; got %f", rec.T)
	}
	if !rec.FrontFace {
		t.Fatal("expected a front face hit")
	}
	if rec.Normal != types.XYZ(0, 0, 1) {
		t.Fatalf("expected normal (0, 0, 1); got %v", rec.Normal)
	}
	if rec.Material != &s.Material {
		t.Fatal("expected record to reference the sphere material")
	}
}

func TestSphereHitFallsBackToFarRoot(t *testing.T) {
	s := NewSphere(types.XYZ(0, 0, -5), 1, NewLambertian(types.XYZ(1, 1, 1)))
	ray := Ray{Origin: types.XYZ(0, 0, 0), Dir: types.XYZ(0, 0, -1)}

	type spec struct {
		tMin, tMax float64
		expHit     bool
		expT       float64
	}
	specs := []spec{
		{0.001, math.Inf(1), true, 4},
		{4.5, math.Inf(1), true, 6},
		{0.001, 3.9, false, 0},
		{6.5, math.Inf(1), false, 0},
	}

	for index, spec := range specs {
		var rec HitRecord
		hit := s.Hit(ray, spec.tMin, spec.tMax, &rec)
		if hit != spec.expHit {
			t.Fatalf("[spec %d] expected hit to be %t", index, spec.expHit)
		}
		if hit && math.Abs(rec.T-spec.expT) > 1e-9 {
			t.Fatalf("[spec %d] expected t = %f; got %f", index, spec.expT, rec.T)
		}
	}
}

func TestSphereHitFromInsideFlipsNormal(t *testing.T) {
	s := NewSphere(types.XYZ(0, 0, 0), 2, NewDielectric(1.5))
	ray := Ray{Origin: types.XYZ(0, 0, 0), Dir: types.XYZ(1, 0, 0)}

	var rec HitRecord
	if !s.Hit(ray, 0.001, math.Inf(1), &rec) {
		t.Fatal("expected a hit")
	}
	if rec.FrontFace {
		t.Fatal("expected a back face hit")
	}
	if rec.Normal != types.XYZ(-1, 0, 0) {
		t.Fatalf("expected normal facing the ray origin; got %v", rec.Normal)
	}
}

func TestSphereMiss(t *testing.T) {
	s := NewSphere(types.XYZ(0, 0, -5), 1, NewLambertian(types.XYZ(1, 1, 1)))
	ray := Ray{Origin: types.XYZ(0, 3, 0), Dir: types.XYZ(0, 0, -1)}

	var rec HitRecord
	if s.Hit(ray, 0.001, math.Inf(1), &rec) {
		t.Fatal("expected a miss")
	}
}

func TestSphereBBox(t *testing.T) {
	s := NewSphere(types.XYZ(1, 2, 3), 0.5, NewLambertian(types.XYZ(1, 1, 1)))
	exp := AABBFromPoints(types.XYZ(0.5, 1.5, 2.5), types.XYZ(1.5, 2.5, 3.5))
	if s.BBox() != exp {
		t.Fatalf("expected box %v; got %v", exp, s.BBox())
	}
}

func TestMovingSphere(t *testing.T) {
	c1 := types.XYZ(0, 0, -5)
	c2 := types.XYZ(2, 0, -5)
	s := NewMovingSphere(c1, c2, 1, NewLambertian(types.XYZ(1, 1, 1)))

	if s.CenterAt(0) != c1 || s.CenterAt(1) != c2 {
		t.Fatalf("unexpected end positions %v, %v", s.CenterAt(0), s.CenterAt(1))
	}
	if s.CenterAt(0.5) != types.XYZ(1, 0, -5) {
		t.Fatalf("unexpected mid position %v", s.CenterAt(0.5))
	}

	box := s.BBox()
	if !box.Contains(AABBFromPoints(types.XYZ(-1, -1, -6), types.XYZ(3, 1, -4))) {
		t.Fatalf("expected box %v to enclose the sphere over its whole motion", box)
	}

	// At t=0 the sphere does not cover x=2.5; at t=1 it does.
	ray := Ray{Origin: types.XYZ(2.5, 0, 0), Dir: types.XYZ(0, 0, -1)}
	var rec HitRecord
	if s.Hit(ray, 0.001, math.Inf(1), &rec) {
		t.Fatal("expected a miss at time 0")
	}
	ray.Time = 1
	if !s.Hit(ray, 0.001, math.Inf(1), &rec) {
		t.Fatal("expected a hit at time 1")
	}
}

func TestSphereListReturnsClosestHit(t *testing.T) {
	list := SphereList{
		NewSphere(types.XYZ(0, 0, -10), 1, NewLambertian(types.XYZ(1, 0, 0))),
		NewSphere(types.XYZ(0, 0, -5), 1, NewLambertian(types.XYZ(0, 1, 0))),
		NewSphere(types.XYZ(0, 0, -20), 1, NewLambertian(types.XYZ(0, 0, 1))),
	}
	ray := Ray{Origin: types.XYZ(0, 0, 0), Dir: types.XYZ(0, 0, -1)}

	rec, hit := list.Hit(ray, 0.001, math.Inf(1))
	if !hit {
		t.Fatal("expected a hit")
	}
	if rec.Object != 1 {
		t.Fatalf("expected object 1 to be hit; got %d", rec.Object)
	}
	if rec.Material != &list[1].Material {
		t.Fatal("expected the material of object 1")
	}
}
