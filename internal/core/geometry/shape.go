package geometry

import (
	"math"

	"github.com/google/uuid"
)

// Polygon is a convex shape defined by local-space vertices plus a world
// pose (position and rotation in radians). Vertices are an implicitly closed
// loop: vertex i connects to vertex (i+1) mod N. Convexity and consistent
// winding are caller invariants; the engine never mutates a polygon it is
// handed, it only derives world-space vertex lists from it.
type Polygon struct {
	ID       string    `json:"id" yaml:"id"`
	Vertices []Vector2 `json:"vertices" yaml:"vertices"`
	Position Vector2   `json:"position" yaml:"position"`
	Rotation float64   `json:"rotation" yaml:"rotation"`
}

// NewPolygon copies the vertex list and assigns a fresh ID so broad-phase
// pair keys and debug traces can name the shape stably.
func NewPolygon(vertices []Vector2, position Vector2, rotation float64) *Polygon {
	return &Polygon{
		ID:       uuid.NewString(),
		Vertices: append([]Vector2(nil), vertices...),
		Position: position,
		Rotation: rotation,
	}
}

// WorldVertices applies the rotation matrix then the translation to every
// local vertex. Pure and deterministic; the identity pose (rotation 0,
// position origin) reproduces the local vertices exactly.
func (p *Polygon) WorldVertices() []Vector2 {
	sin, cos := math.Sincos(p.Rotation)
	out := make([]Vector2, len(p.Vertices))
	for i, v := range p.Vertices {
		out[i] = Vector2{
			X: v.X*cos - v.Y*sin + p.Position.X,
			Y: v.X*sin + v.Y*cos + p.Position.Y,
		}
	}
	return out
}

// Bounds recomputes the world-space AABB from the current pose. It is never
// cached: any pose change invalidates it, so callers derive it per query.
func (p *Polygon) Bounds() AABB {
	return AABBFromVertices(p.WorldVertices())
}

// Centroid returns the mean of the world-space vertices.
func (p *Polygon) Centroid() Vector2 {
	world := p.WorldVertices()
	var sum Vector2
	for _, v := range world {
		sum = sum.Add(v)
	}
	if len(world) == 0 {
		return sum
	}
	return sum.Scale(1 / float64(len(world)))
}
