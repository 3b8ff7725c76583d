package narrowphase

import (
	"github.com/elenamoglan/collision-quest/internal/core/geometry"
	"github.com/elenamoglan/collision-quest/pkg/generic"
)

// GJK decides overlap by testing whether the Minkowski difference of the
// two polygons contains the origin, growing a simplex one support point at
// a time. It proves the boolean verdict only; the contact point it reports
// is a heuristic estimate, not exact contact geometry.
type GJK struct {
	simplexes *generic.Pool[*simplex]
}

var _ Detector = (*GJK)(nil)

func NewGJK() *GJK {
	return &GJK{
		simplexes: generic.NewPool(func() *simplex { return &simplex{} }),
	}
}

func (g *GJK) Name() Algorithm {
	return AlgorithmGJK
}

func (g *GJK) Detect(a, b *geometry.Polygon, cfg Config) Result {
	var res Result
	va, vb := a.WorldVertices(), b.WorldVertices()

	sx := g.simplexes.Get()
	defer g.simplexes.Put(sx)
	sx.reset()

	// Starting toward the other shape typically converges in a handful of
	// iterations; identical positions fall back to a fixed axis.
	dir := b.Position.Sub(a.Position)
	if dir.LengthSquared() < cfg.Epsilon*cfg.Epsilon {
		dir = geometry.NewVector2(1, 0)
	}

	first := minkowskiSupport(va, vb, dir)
	sx.push(first)
	res.tracef("GJK: initial support point (%.4f, %.4f)", first.X, first.Y)

	dir.Set(first.Neg())
	if dir.LengthSquared() < cfg.Epsilon*cfg.Epsilon {
		// The very first support point is the origin: touching contact.
		res.Colliding = true
		res.tracef("GJK: initial support point is the origin, shapes touch")
		g.estimateContact(&res, va, vb, geometry.NewVector2(1, 0), cfg)
		return res
	}

	for i := 0; i < cfg.MaxIterations; i++ {
		p := minkowskiSupport(va, vb, dir)
		if p.Dot(dir) <= 0 {
			// The new point cannot pass the origin along the search
			// direction, so the origin is unreachable.
			res.tracef("GJK: iteration %d, support point (%.4f, %.4f) fails the origin test, no collision", i, p.X, p.Y)
			return res
		}

		sx.push(p)
		res.tracef("GJK: iteration %d, simplex grown to %d points with (%.4f, %.4f)", i, sx.count, p.X, p.Y)

		resolved, colliding := sx.evolve(&dir, cfg.Epsilon)
		if !resolved {
			continue
		}
		res.Colliding = colliding
		if colliding {
			res.tracef("GJK: origin enclosed after %d iterations, collision", i+1)
			g.estimateContact(&res, va, vb, dir, cfg)
		} else {
			res.tracef("GJK: origin outside degenerate simplex, no collision")
		}
		return res
	}

	// Conservative verdict when the simplex never settles: by contract this
	// is a defined no-collision result, not an error.
	res.tracef("GJK: iteration cap %d reached, reporting no collision", cfg.MaxIterations)
	return res
}

// estimateContact combines the support points along the final search
// direction with the closest-feature scan into an approximate midpoint.
func (g *GJK) estimateContact(res *Result, va, vb []geometry.Vector2, dir geometry.Vector2, cfg Config) {
	if hit := closestVertexEdge(va, vb, cfg.Epsilon); hit.found {
		res.setContact(hit.point)
		res.tracef("GJK: contact estimate (%.4f, %.4f) from closest feature", hit.point.X, hit.point.Y)
		return
	}
	pa := supportPoint(va, dir)
	pb := supportPoint(vb, dir.Neg())
	mid := pa.Add(pb).Scale(0.5)
	res.setContact(mid)
	res.tracef("GJK: contact estimate (%.4f, %.4f) from support midpoint", mid.X, mid.Y)
}
