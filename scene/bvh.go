package scene

import (
	"sort"
	"time"

	"github.com/achilleasa/spheretrace/log"
	"github.com/achilleasa/spheretrace/types"
)

// Bvh node definition. Nodes are stored in a flat list and reference their
// children by index. The meaning of LData and RData depends on the node type:
//
//   - For internal nodes both are > 0 and point to the L/R child nodes.
//   - For leafs LData is <= 0 and contains the negated object index.
//
// The root always lives at index 0 and is never referenced as a child so
// child indices are always positive.
type BvhNode struct {
	Box AABB

	LData int32
	RData int32
}

// Set left and right child node indices.
func (n *BvhNode) SetChildNodes(left, right uint32) {
	n.LData = int32(left)
	n.RData = int32(right)
}

// Set the object index for a leaf node.
func (n *BvhNode) SetObject(index uint32) {
	n.LData = -int32(index)
	n.RData = 0
}

// Returns true if this is a leaf node.
func (n *BvhNode) IsLeaf() bool {
	return n.LData <= 0
}

// Get the object index of a leaf node.
func (n *BvhNode) GetObject() uint32 {
	return uint32(-n.LData)
}

// Get the left and right child indices of an internal node.
func (n *BvhNode) GetChildNodes() (left, right uint32) {
	return uint32(n.LData), uint32(n.RData)
}

type bvhStats struct {
	nodes    int
	leafs    int
	maxDepth int
}

// A bounding volume hierarchy over a list of spheres. It is immutable once
// built and safe for concurrent traversal.
type Bvh struct {
	Nodes   []BvhNode
	Objects []Sphere

	stats bvhStats
}

// Construct a BVH over the supplied spheres. Each recursion step sorts its
// work list along an axis chosen at random using rnd and splits it at the
// midpoint. The objects slice is retained (not copied) and must not be
// modified afterwards. Building a BVH without objects is a programming error
// and panics.
func BuildBvh(objects []Sphere, rnd types.RandomSource) *Bvh {
	if len(objects) == 0 {
		panic("bvh: cannot build a BVH without objects")
	}

	b := &Bvh{
		Nodes:   make([]BvhNode, 0, 2*len(objects)-1),
		Objects: objects,
	}

	workList := make([]uint32, len(objects))
	for index := range workList {
		workList[index] = uint32(index)
	}

	start := time.Now()
	b.partition(workList, rnd, 0)
	log.New("bvh").Debugf(
		"BVH tree build time: %d ms, maxDepth: %d, nodes: %d, leafs: %d",
		time.Since(start).Nanoseconds()/1e6,
		b.stats.maxDepth, b.stats.nodes, b.stats.leafs,
	)
	return b
}

// Partition work list and return node index.
func (b *Bvh) partition(workList []uint32, rnd types.RandomSource, depth int) uint32 {
	if depth > b.stats.maxDepth {
		b.stats.maxDepth = depth
	}

	nodeIndex := uint32(len(b.Nodes))
	b.Nodes = append(b.Nodes, BvhNode{})

	if len(workList) == 1 {
		b.Nodes[nodeIndex].Box = b.Objects[workList[0]].BBox()
		b.Nodes[nodeIndex].SetObject(workList[0])
		b.stats.leafs++
		return nodeIndex
	}

	axis := int(rnd.Float64() * 3)
	if axis > 2 {
		axis = 2
	}
	sort.SliceStable(workList, func(i, j int) bool {
		return b.Objects[workList[i]].BBox().Axis(axis).Min < b.Objects[workList[j]].BBox().Axis(axis).Min
	})

	mid := len(workList) / 2
	left := b.partition(workList[:mid], rnd, depth+1)
	right := b.partition(workList[mid:], rnd, depth+1)

	b.Nodes[nodeIndex].Box = MergeAABB(b.Nodes[left].Box, b.Nodes[right].Box)
	b.Nodes[nodeIndex].SetChildNodes(left, right)
	b.stats.nodes++
	return nodeIndex
}

// Find the nearest intersection in the hierarchy.
func (b *Bvh) Hit(ray Ray, tMin, tMax float64) (HitRecord, bool) {
	return b.hitNode(0, ray, tMin, tMax)
}

func (b *Bvh) hitNode(nodeIndex uint32, ray Ray, tMin, tMax float64) (HitRecord, bool) {
	node := &b.Nodes[nodeIndex]
	if !node.Box.Hit(ray, tMin, tMax) {
		return HitRecord{}, false
	}

	if node.IsLeaf() {
		var rec HitRecord
		object := node.GetObject()
		if !b.Objects[object].Hit(ray, tMin, tMax, &rec) {
			return rec, false
		}
		rec.Object = int(object)
		return rec, true
	}

	left, right := node.GetChildNodes()
	leftRec, leftHit := b.hitNode(left, ray, tMin, tMax)
	if leftHit {
		tMax = leftRec.T
	}
	rightRec, rightHit := b.hitNode(right, ray, tMin, tMax)

	// The right search is bounded by the left hit so a right hit can only
	// tie or be nearer. Ties resolve to the left side.
	if rightHit && (!leftHit || rightRec.T < leftRec.T) {
		return rightRec, true
	}
	return leftRec, leftHit
}

// Get the bounding box of the whole hierarchy.
func (b *Bvh) BBox() AABB {
	return b.Nodes[0].Box
}

// Get the number of internal nodes, leafs and the max tree depth.
func (b *Bvh) Stats() (nodes, leafs, maxDepth int) {
	return b.stats.nodes, b.stats.leafs, b.stats.maxDepth
}
