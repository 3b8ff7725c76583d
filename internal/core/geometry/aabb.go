package geometry

// AABB is an axis-aligned bounding box described by its min and max corners.
type AABB struct {
	Min Vector2 `json:"min" yaml:"min"`
	Max Vector2 `json:"max" yaml:"max"`
}

// AABBFromVertices computes the tight bounding box of a vertex list.
// An empty list yields the zero box.
func AABBFromVertices(vertices []Vector2) AABB {
	if len(vertices) == 0 {
		return AABB{}
	}
	box := AABB{Min: vertices[0], Max: vertices[0]}
	for _, v := range vertices[1:] {
		if v.X < box.Min.X {
			box.Min.X = v.X
		}
		if v.Y < box.Min.Y {
			box.Min.Y = v.Y
		}
		if v.X > box.Max.X {
			box.Max.X = v.X
		}
		if v.Y > box.Max.Y {
			box.Max.Y = v.Y
		}
	}
	return box
}

// Overlaps reports whether the two boxes intersect on both axes. Touching
// boxes count as overlapping.
func (a AABB) Overlaps(b AABB) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y
}

func (a AABB) Center() Vector2 {
	return Vector2{X: (a.Min.X + a.Max.X) / 2, Y: (a.Min.Y + a.Max.Y) / 2}
}

// Union returns the smallest box containing both a and b.
func (a AABB) Union(b AABB) AABB {
	out := a
	if b.Min.X < out.Min.X {
		out.Min.X = b.Min.X
	}
	if b.Min.Y < out.Min.Y {
		out.Min.Y = b.Min.Y
	}
	if b.Max.X > out.Max.X {
		out.Max.X = b.Max.X
	}
	if b.Max.Y > out.Max.Y {
		out.Max.Y = b.Max.Y
	}
	return out
}

// LongerAxis returns 0 when the box is wider than tall, 1 otherwise.
func (a AABB) LongerAxis() int {
	if a.Max.X-a.Min.X >= a.Max.Y-a.Min.Y {
		return 0
	}
	return 1
}
