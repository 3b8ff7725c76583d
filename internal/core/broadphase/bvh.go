package broadphase

import (
	"sort"

	"github.com/elenamoglan/collision-quest/internal/core/geometry"
)

// BVH is the alternative broad phase: a bounding volume hierarchy built by
// recursive median split along the parent box's longer axis, one shape per
// leaf. The tree is rebuilt in full on every query; with the shape counts
// this engine targets that is cheaper than maintaining an incremental tree.
type BVH struct {
	root *bvhNode
}

type bvhNode struct {
	box         geometry.AABB
	shape       *geometry.Polygon // set only on leaves
	left, right *bvhNode
}

type bvhEntry struct {
	shape *geometry.Polygon
	box   geometry.AABB
}

// BuildBVH constructs the hierarchy from the shapes' current poses.
func BuildBVH(shapes []*geometry.Polygon) *BVH {
	if len(shapes) == 0 {
		return &BVH{}
	}
	entries := make([]bvhEntry, len(shapes))
	for i, shape := range shapes {
		entries[i] = bvhEntry{shape: shape, box: shape.Bounds()}
	}
	return &BVH{root: buildNode(entries)}
}

func buildNode(entries []bvhEntry) *bvhNode {
	box := entries[0].box
	for _, e := range entries[1:] {
		box = box.Union(e.box)
	}
	node := &bvhNode{box: box}

	if len(entries) == 1 {
		node.shape = entries[0].shape
		return node
	}

	axis := box.LongerAxis()
	sort.SliceStable(entries, func(i, j int) bool {
		ci, cj := entries[i].box.Center(), entries[j].box.Center()
		if axis == 0 {
			return ci.X < cj.X
		}
		return ci.Y < cj.Y
	})

	mid := len(entries) / 2
	node.left = buildNode(entries[:mid])
	node.right = buildNode(entries[mid:])
	return node
}

// Query collects the shapes whose AABB overlaps the given box. Both children
// are descended whenever the parent box overlaps the query.
func (t *BVH) Query(box geometry.AABB) []*geometry.Polygon {
	var out []*geometry.Polygon
	t.root.query(box, &out)
	return out
}

func (n *bvhNode) query(box geometry.AABB, out *[]*geometry.Polygon) {
	if n == nil || !n.box.Overlaps(box) {
		return
	}
	if n.shape != nil {
		*out = append(*out, n.shape)
		return
	}
	n.left.query(box, out)
	n.right.query(box, out)
}

// Pairs queries the tree with every shape's own box and deduplicates the
// results into candidate pairs.
func (t *BVH) Pairs(shapes []*geometry.Polygon) []Pair {
	var pairs []Pair
	seen := make(map[uint64]struct{})
	for _, shape := range shapes {
		for _, other := range t.Query(shape.Bounds()) {
			if other == shape {
				continue
			}
			p := Pair{A: shape, B: other}
			if _, dup := seen[p.Key()]; dup {
				continue
			}
			seen[p.Key()] = struct{}{}
			pairs = append(pairs, p)
		}
	}
	return pairs
}
