package broadphase

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/elenamoglan/collision-quest/internal/core/geometry"
)

func TestBVH_Query(t *testing.T) {
	a := square(1, 0, 1)
	b := square(2, 0, 1)
	c := square(6, 0, 1)
	tree := BuildBVH([]*geometry.Polygon{a, b, c})

	hits := tree.Query(a.Bounds())
	ids := make(map[string]bool, len(hits))
	for _, h := range hits {
		ids[h.ID] = true
	}
	require.True(t, ids[a.ID], "query box always finds its own shape")
	require.True(t, ids[b.ID])
	require.False(t, ids[c.ID])
}

func TestBVH_PairsMatchesSweepAndPrune(t *testing.T) {
	shapes := []*geometry.Polygon{
		square(1, 0, 1),
		square(2, 0, 1),
		square(6, 0, 1),
		square(6.5, 0.5, 1),
		square(-4, 3, 1),
	}

	sap := NewSweepAndPrune()
	for _, s := range shapes {
		sap.Insert(s)
	}

	keys := func(pairs []Pair) map[uint64]bool {
		out := make(map[uint64]bool, len(pairs))
		for _, p := range pairs {
			out[p.Key()] = true
		}
		return out
	}

	tree := BuildBVH(shapes)
	require.Equal(t, keys(sap.Pairs()), keys(tree.Pairs(shapes)))
}

func TestBVH_Empty(t *testing.T) {
	tree := BuildBVH(nil)
	require.Empty(t, tree.Query(geometry.AABB{Min: geometry.NewVector2(-10, -10), Max: geometry.NewVector2(10, 10)}))
	require.Empty(t, tree.Pairs(nil))
}

func TestBVH_SingleLeafPerShape(t *testing.T) {
	shapes := []*geometry.Polygon{
		square(0, 0, 1),
		square(3, 0, 1),
		square(0, 3, 1),
		square(3, 3, 1),
	}
	tree := BuildBVH(shapes)
	for _, s := range shapes {
		hits := tree.Query(s.Bounds())
		require.Contains(t, hits, s)
	}
}
