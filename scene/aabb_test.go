package scene

import (
	"math"
	"testing"

	"github.com/achilleasa/spheretrace/types"
)

func TestAABBFromPointsIgnoresCornerOrder(t *testing.T) {
	p := types.XYZ(1, -2, 3)
	q := types.XYZ(-1, 2, -3)

	a := AABBFromPoints(p, q)
	b := AABBFromPoints(q, p)
	if a != b {
		t.Fatalf("expected boxes to match; got %v and %v", a, b)
	}

	exp := AABB{X: Interval{-1, 1}, Y: Interval{-2, 2}, Z: Interval{-3, 3}}
	if a != exp {
		t.Fatalf("expected box %v; got %v", exp, a)
	}
}

func TestMergeAABBIsTightest(t *testing.T) {
	rnd := types.NewRandomSource(11, 12)
	for i := 0; i < 500; i++ {
		a := AABBFromPoints(types.RandomVec3(rnd, -10, 10), types.RandomVec3(rnd, -10, 10))
		b := AABBFromPoints(types.RandomVec3(rnd, -10, 10), types.RandomVec3(rnd, -10, 10))

		m := MergeAABB(a, b)
		if !m.Contains(a) || !m.Contains(b) {
			t.Fatalf("expected %v to contain %v and %v", m, a, b)
		}
		if m != MergeAABB(b, a) {
			t.Fatal("expected merge to be commutative")
		}

		// Every bound of the merged box must come from one of the inputs.
		for axis := 0; axis < 3; axis++ {
			mi, ai, bi := m.Axis(axis), a.Axis(axis), b.Axis(axis)
			if mi.Min != ai.Min && mi.Min != bi.Min {
				t.Fatalf("axis %d: min %f is not tight", axis, mi.Min)
			}
			if mi.Max != ai.Max && mi.Max != bi.Max {
				t.Fatalf("axis %d: max %f is not tight", axis, mi.Max)
			}
		}
	}
}

func TestMergeAABBIsAssociative(t *testing.T) {
	a := AABBFromPoints(types.XYZ(0, 0, 0), types.XYZ(1, 1, 1))
	b := AABBFromPoints(types.XYZ(-1, 2, 0), types.XYZ(0, 3, 1))
	c := AABBFromPoints(types.XYZ(5, -5, 5), types.XYZ(6, -4, 6))

	if MergeAABB(MergeAABB(a, b), c) != MergeAABB(a, MergeAABB(b, c)) {
		t.Fatal("expected merge to be associative")
	}
}

func TestAABBAxisPanicsOnInvalidAxis(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected Axis(3) to panic")
		}
	}()
	AABB{}.Axis(3)
}

func TestAABBHit(t *testing.T) {
	box := AABBFromPoints(types.XYZ(-1, -1, -1), types.XYZ(1, 1, 1))

	type spec struct {
		ray    Ray
		tMin   float64
		tMax   float64
		expHit bool
	}
	specs := []spec{
		// Straight through the center
		{Ray{Origin: types.XYZ(0, 0, -5), Dir: types.XYZ(0, 0, 1)}, 0, math.Inf(1), true},
		// Pointing away
		{Ray{Origin: types.XYZ(0, 0, -5), Dir: types.XYZ(0, 0, -1)}, 0, math.Inf(1), false},
		// Parallel to an axis, outside the slab (zero direction components)
		{Ray{Origin: types.XYZ(2, 0, -5), Dir: types.XYZ(0, 0, 1)}, 0, math.Inf(1), false},
		// Parallel to an axis, inside the slab
		{Ray{Origin: types.XYZ(0.5, 0.5, -5), Dir: types.XYZ(0, 0, 1)}, 0, math.Inf(1), true},
		// Negative direction components
		{Ray{Origin: types.XYZ(5, 5, 5), Dir: types.XYZ(-1, -1, -1)}, 0, math.Inf(1), true},
		// Interval ends before the box
		{Ray{Origin: types.XYZ(0, 0, -5), Dir: types.XYZ(0, 0, 1)}, 0, 3, false},
		// Interval starts after the box
		{Ray{Origin: types.XYZ(0, 0, -5), Dir: types.XYZ(0, 0, 1)}, 7, 10, false},
		// Origin inside the box
		{Ray{Origin: types.XYZ(0, 0, 0), Dir: types.XYZ(1, 2, 3)}, 0, math.Inf(1), true},
		// Diagonal miss
		{Ray{Origin: types.XYZ(-5, 0, 3), Dir: types.XYZ(1, 0, 0.1)}, 0, math.Inf(1), false},
	}

	for index, s := range specs {
		if got := box.Hit(s.ray, s.tMin, s.tMax); got != s.expHit {
			t.Fatalf("[spec %d] expected hit to be %t; got %t", index, s.expHit, got)
		}
	}
}
