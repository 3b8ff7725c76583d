package narrowphase

import (
	"math"

	"github.com/elenamoglan/collision-quest/internal/core/geometry"
)

// supportPoint returns the vertex with the maximum projection onto dir.
// Plain linear scan; the polygons this engine sees are small enough that
// hill climbing would not pay for itself.
func supportPoint(vertices []geometry.Vector2, dir geometry.Vector2) geometry.Vector2 {
	best := vertices[0]
	bestDot := best.Dot(dir)
	for _, v := range vertices[1:] {
		if d := v.Dot(dir); d > bestDot {
			best, bestDot = v, d
		}
	}
	return best
}

// minkowskiSupport returns the support point of the Minkowski difference
// A - B along dir.
func minkowskiSupport(va, vb []geometry.Vector2, dir geometry.Vector2) geometry.Vector2 {
	return supportPoint(va, dir).Sub(supportPoint(vb, dir.Neg()))
}

// featureHit is the outcome of a closest-feature scan.
type featureHit struct {
	found     bool
	contained bool
	distance  float64
	point     geometry.Vector2
}

// closestVertexEdge finds the global minimum distance between any vertex of
// one polygon and any edge of the other, checked in both directions. The
// midpoint of the closest vertex/edge-point pair is the contact estimate.
//
// Full containment of either polygon in the other short-circuits as zero
// distance (maximal penetration) and takes precedence over edge distances.
// Edges shorter than eps are skipped so the projection never divides by a
// vanishing length.
func closestVertexEdge(va, vb []geometry.Vector2, eps float64) featureHit {
	if contained, p := containedIn(va, vb); contained {
		return featureHit{found: true, contained: true, point: p}
	}
	if contained, p := containedIn(vb, va); contained {
		return featureHit{found: true, contained: true, point: p}
	}

	hit := featureHit{distance: math.MaxFloat64}
	scan := func(verts, edges []geometry.Vector2) {
		for _, v := range verts {
			for i := range edges {
				e1 := edges[i]
				e2 := edges[(i+1)%len(edges)]
				d := e2.Sub(e1)
				if d.LengthSquared() < eps*eps {
					continue
				}
				t := v.Sub(e1).Dot(d) / d.LengthSquared()
				t = math.Max(0, math.Min(1, t))
				closest := e1.Add(d.Scale(t))
				if dist := v.Distance(closest); dist < hit.distance {
					hit.found = true
					hit.distance = dist
					hit.point = v.Add(closest).Scale(0.5)
				}
			}
		}
	}
	scan(va, vb)
	scan(vb, va)
	return hit
}

// closestVertexVertex finds the minimum vertex-to-vertex distance between the
// two polygons. V-Clip needs it because the closest features of two convex
// polygons can be a vertex pair.
func closestVertexVertex(va, vb []geometry.Vector2) featureHit {
	hit := featureHit{distance: math.MaxFloat64}
	for _, a := range va {
		for _, b := range vb {
			if dist := a.Distance(b); dist < hit.distance {
				hit.found = true
				hit.distance = dist
				hit.point = a.Add(b).Scale(0.5)
			}
		}
	}
	return hit
}

// containedIn reports whether every vertex of inner lies inside outer, with
// the inner centroid as contact point.
func containedIn(inner, outer []geometry.Vector2) (bool, geometry.Vector2) {
	if len(inner) == 0 || len(outer) < 3 {
		return false, geometry.Vector2{}
	}
	var sum geometry.Vector2
	for _, v := range inner {
		if !pointInPolygon(v, outer) {
			return false, geometry.Vector2{}
		}
		sum = sum.Add(v)
	}
	return true, sum.Scale(1 / float64(len(inner)))
}

// pointInPolygon is the even-odd ray-crossing test.
func pointInPolygon(p geometry.Vector2, vertices []geometry.Vector2) bool {
	inside := false
	j := len(vertices) - 1
	for i := 0; i < len(vertices); i++ {
		vi, vj := vertices[i], vertices[j]
		if (vi.Y > p.Y) != (vj.Y > p.Y) &&
			p.X < (vj.X-vi.X)*(p.Y-vi.Y)/(vj.Y-vi.Y)+vi.X {
			inside = !inside
		}
		j = i
	}
	return inside
}
