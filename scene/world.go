package scene

// SphereList is a Hittable that tests every sphere in order. It is the
// brute-force alternative to the BVH.
type SphereList []Sphere

// Find the nearest intersection by testing each sphere.
func (l SphereList) Hit(ray Ray, tMin, tMax float64) (HitRecord, bool) {
	var (
		rec, tmp     HitRecord
		hitAnything  bool
		closestSoFar = tMax
	)

	for index := range l {
		if l[index].Hit(ray, tMin, closestSoFar, &tmp) {
			hitAnything = true
			closestSoFar = tmp.T
			tmp.Object = index
			rec = tmp
		}
	}

	return rec, hitAnything
}

// Get the box enclosing all spheres. An empty list yields the zero box.
func (l SphereList) BBox() AABB {
	if len(l) == 0 {
		return AABB{}
	}

	box := l[0].BBox()
	for index := 1; index < len(l); index++ {
		box = MergeAABB(box, l[index].BBox())
	}
	return box
}
