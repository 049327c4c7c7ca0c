package scene

import (
	"fmt"
	"math"

	"github.com/achilleasa/spheretrace/types"
)

// A closed [Min, Max] interval.
type Interval struct {
	Min float64
	Max float64
}

// Merge two intervals into the smallest interval containing both.
func (i Interval) Merge(other Interval) Interval {
	return Interval{math.Min(i.Min, other.Min), math.Max(i.Max, other.Max)}
}

// Returns true if the interval contains other.
func (i Interval) Contains(other Interval) bool {
	return i.Min <= other.Min && other.Max <= i.Max
}

// An axis-aligned bounding box stored as one interval per axis.
type AABB struct {
	X, Y, Z Interval
}

// Create a bounding box treating p and q as two opposite corners. The
// corners do not need to be ordered.
func AABBFromPoints(p, q types.Vec3) AABB {
	return AABB{
		X: Interval{math.Min(p[0], q[0]), math.Max(p[0], q[0])},
		Y: Interval{math.Min(p[1], q[1]), math.Max(p[1], q[1])},
		Z: Interval{math.Min(p[2], q[2]), math.Max(p[2], q[2])},
	}
}

// Merge two bounding boxes into the tightest box that contains both.
func MergeAABB(a, b AABB) AABB {
	return AABB{
		X: a.X.Merge(b.X),
		Y: a.Y.Merge(b.Y),
		Z: a.Z.Merge(b.Z),
	}
}

// Get the interval for axis n (0=X, 1=Y, 2=Z).
func (b AABB) Axis(n int) Interval {
	switch n {
	case 0:
		return b.X
	case 1:
		return b.Y
	case 2:
		return b.Z
	}
	panic(fmt.Sprintf("aabb: axis %d is not supported", n))
}

// Get the min corner of the box.
func (b AABB) Min() types.Vec3 {
	return types.XYZ(b.X.Min, b.Y.Min, b.Z.Min)
}

// Get the max corner of the box.
func (b AABB) Max() types.Vec3 {
	return types.XYZ(b.X.Max, b.Y.Max, b.Z.Max)
}

// Returns true if b fully contains other.
func (b AABB) Contains(other AABB) bool {
	return b.X.Contains(other.X) && b.Y.Contains(other.Y) && b.Z.Contains(other.Z)
}

// Test whether the ray intersects the box for some t in [tMin, tMax] using
// the slab method. Zero direction components produce infinities which the
// comparisons below handle without special casing.
func (b AABB) Hit(ray Ray, tMin, tMax float64) bool {
	for axis := 0; axis < 3; axis++ {
		invD := 1.0 / ray.Dir[axis]
		orig := ray.Origin[axis]
		slab := b.Axis(axis)

		t0 := (slab.Min - orig) * invD
		t1 := (slab.Max - orig) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}

		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}

		if tMax <= tMin {
			return false
		}
	}

	return true
}

func (b AABB) String() string {
	return fmt.Sprintf("[%3.3f, %3.3f, %3.3f] - [%3.3f, %3.3f, %3.3f]", b.X.Min, b.Y.Min, b.Z.Min, b.X.Max, b.Y.Max, b.Z.Max)
}
