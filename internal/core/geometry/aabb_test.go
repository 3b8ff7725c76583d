package geometry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAABBFromVertices(t *testing.T) {
	box := AABBFromVertices([]Vector2{{X: 1, Y: -2}, {X: -3, Y: 4}, {X: 0, Y: 0}})
	require.Equal(t, NewVector2(-3, -2), box.Min)
	require.Equal(t, NewVector2(1, 4), box.Max)
}

func TestAABB_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b AABB
		want bool
	}{
		{
			name: "overlapping",
			a:    AABB{Min: NewVector2(0, 0), Max: NewVector2(2, 2)},
			b:    AABB{Min: NewVector2(1, 1), Max: NewVector2(3, 3)},
			want: true,
		},
		{
			name: "touching counts as overlap",
			a:    AABB{Min: NewVector2(0, 0), Max: NewVector2(1, 1)},
			b:    AABB{Min: NewVector2(1, 0), Max: NewVector2(2, 1)},
			want: true,
		},
		{
			name: "disjoint on x",
			a:    AABB{Min: NewVector2(0, 0), Max: NewVector2(1, 1)},
			b:    AABB{Min: NewVector2(2, 0), Max: NewVector2(3, 1)},
			want: false,
		},
		{
			name: "x overlaps but y disjoint",
			a:    AABB{Min: NewVector2(0, 0), Max: NewVector2(2, 1)},
			b:    AABB{Min: NewVector2(1, 5), Max: NewVector2(3, 6)},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			require.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestAABB_BoundsFollowPose(t *testing.T) {
	p := NewPolygon(unitSquare(), NewVector2(10, 0), 0)
	box := p.Bounds()
	require.Equal(t, NewVector2(9.5, -0.5), box.Min)
	require.Equal(t, NewVector2(10.5, 0.5), box.Max)

	// Pose changes are picked up because the box is recomputed per call.
	p.Position = NewVector2(0, 0)
	box = p.Bounds()
	require.Equal(t, NewVector2(-0.5, -0.5), box.Min)
}

func TestAABB_UnionAndLongerAxis(t *testing.T) {
	a := AABB{Min: NewVector2(0, 0), Max: NewVector2(1, 1)}
	b := AABB{Min: NewVector2(3, -1), Max: NewVector2(4, 0.5)}
	u := a.Union(b)
	require.Equal(t, NewVector2(0, -1), u.Min)
	require.Equal(t, NewVector2(4, 1), u.Max)
	require.Equal(t, 0, u.LongerAxis())
	require.Equal(t, NewVector2(2, 0), u.Center())
}
