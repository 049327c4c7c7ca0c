package scene

import "github.com/achilleasa/spheretrace/types"

// HitRecord describes a ray-primitive intersection.
type HitRecord struct {
	Point types.Vec3

	// Unit surface normal, always pointing against the incoming ray.
	Normal types.Vec3

	T float64

	// True if the ray hit the outside of the surface.
	FrontFace bool

	// The material of the hit primitive.
	Material *Material

	// Index of the hit primitive in the scene object list.
	Object int
}

// Orient the normal against the incoming ray and record which side was hit.
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal types.Vec3) {
	h.FrontFace = ray.Dir.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Neg()
	}
}

// The Hittable interface is implemented by anything a ray can be
// intersected against: a linear object list or a BVH.
type Hittable interface {
	// Find the nearest intersection with t in [tMin, tMax].
	Hit(ray Ray, tMin, tMax float64) (HitRecord, bool)

	// Get the bounding box enclosing all geometry.
	BBox() AABB
}
