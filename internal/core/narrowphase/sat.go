package narrowphase

import (
	"math"

	"github.com/elenamoglan/collision-quest/internal/core/geometry"
)

// SAT tests every edge normal of both polygons as a candidate separating
// axis. One axis with disjoint projections proves the shapes apart; if all
// projections overlap the shapes collide, and the axis of minimum overlap
// doubles as a rudimentary minimum-translation direction.
type SAT struct{}

var _ Detector = (*SAT)(nil)

func (s *SAT) Name() Algorithm {
	return AlgorithmSAT
}

func (s *SAT) Detect(a, b *geometry.Polygon, cfg Config) Result {
	var res Result
	va, vb := a.WorldVertices(), b.WorldVertices()

	minOverlap := math.MaxFloat64
	var minAxis geometry.Vector2

	test := func(vertices []geometry.Vector2, owner string) bool {
		for i := range vertices {
			edge := vertices[(i+1)%len(vertices)].Sub(vertices[i])
			if edge.LengthSquared() < cfg.Epsilon*cfg.Epsilon {
				// A zero-length edge has no defined normal; skip it so no
				// NaN leaks into the projections.
				res.tracef("SAT: skipping degenerate edge %d of %s", i, owner)
				continue
			}
			axis := edge.Perp().Normalize()

			minA, maxA := projectOnto(va, axis)
			minB, maxB := projectOnto(vb, axis)
			overlap := math.Min(maxA, maxB) - math.Max(minA, minB)
			if overlap < 0 {
				res.tracef("SAT: separating axis (%.4f, %.4f) from edge %d of %s, gap %.4f", axis.X, axis.Y, i, owner, -overlap)
				return false
			}
			if overlap < minOverlap {
				minOverlap = overlap
				minAxis = axis
			}
		}
		return true
	}

	if !test(va, "A") || !test(vb, "B") {
		return res
	}

	res.Colliding = true
	res.tracef("SAT: all axes overlap, minimum depth %.4f along (%.4f, %.4f)", minOverlap, minAxis.X, minAxis.Y)

	if hit := closestVertexEdge(va, vb, cfg.Epsilon); hit.found {
		res.setContact(hit.point)
		res.tracef("SAT: contact estimate (%.4f, %.4f) from closest feature", hit.point.X, hit.point.Y)
	}
	return res
}

// projectOnto returns the [min, max] interval of the vertices projected on
// the axis.
func projectOnto(vertices []geometry.Vector2, axis geometry.Vector2) (min, max float64) {
	min = vertices[0].Dot(axis)
	max = min
	for _, v := range vertices[1:] {
		d := v.Dot(axis)
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	return min, max
}
