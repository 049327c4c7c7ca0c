package scene

import (
	"math"

	"github.com/achilleasa/spheretrace/types"
)

// Defines a sphere primitive. A moving sphere travels linearly from Center
// (t=0) to Center+Motion (t=1).
type Sphere struct {
	Center   types.Vec3
	Radius   float64
	Material Material

	Moving bool
	Motion types.Vec3

	bbox AABB
}

// Create new stationary sphere primitive.
func NewSphere(center types.Vec3, radius float64, material Material) Sphere {
	s := Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
	s.bbox = s.boxAt(center)
	return s
}

// Create new sphere primitive moving from center1 at t=0 to center2 at t=1.
func NewMovingSphere(center1, center2 types.Vec3, radius float64, material Material) Sphere {
	s := Sphere{
		Center:   center1,
		Radius:   radius,
		Material: material,
		Moving:   true,
		Motion:   center2.Sub(center1),
	}
	s.bbox = MergeAABB(s.boxAt(center1), s.boxAt(center2))
	return s
}

// Get the sphere center at the given time.
func (s *Sphere) CenterAt(time float64) types.Vec3 {
	if !s.Moving {
		return s.Center
	}
	return s.Center.Add(s.Motion.Mul(time))
}

// Get the bounding box of the sphere over its whole motion.
func (s *Sphere) BBox() AABB {
	return s.bbox
}

func (s *Sphere) boxAt(center types.Vec3) AABB {
	r := math.Abs(s.Radius)
	rvec := types.XYZ(r, r, r)
	return AABBFromPoints(center.Sub(rvec), center.Add(rvec))
}

// Intersect a ray with the sphere. On a hit, rec is populated; its Object
// field is left untouched for the caller to fill in.
func (s *Sphere) Hit(ray Ray, tMin, tMax float64, rec *HitRecord) bool {
	center := s.CenterAt(ray.Time)
	oc := ray.Origin.Sub(center)

	a := ray.Dir.LenSq()
	halfB := oc.Dot(ray.Dir)
	c := oc.LenSq() - s.Radius*s.Radius
	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return false
	}

	// Find the nearest root that lies in the acceptable range.
	sqrtD := math.Sqrt(discriminant)
	root := (-halfB - sqrtD) / a
	if root < tMin || tMax < root {
		root = (-halfB + sqrtD) / a
		if root < tMin || tMax < root {
			return false
		}
	}

	rec.T = root
	rec.Point = ray.At(root)
	rec.Material = &s.Material
	rec.SetFaceNormal(ray, rec.Point.Sub(center).Div(s.Radius))
	return true
}
