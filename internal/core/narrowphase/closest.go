package narrowphase

import "github.com/elenamoglan/collision-quest/internal/core/geometry"

// ClosestFeature is a Lin-Canny style detector reduced to a global
// vertex-to-edge scan: the minimum clamped-projection distance across both
// polygon directions is the separation estimate, and contact is declared
// when it drops below the configured threshold rather than at exact zero.
// Full containment is caught by a point-in-polygon test and reported as
// zero separation.
type ClosestFeature struct{}

var _ Detector = (*ClosestFeature)(nil)

func (c *ClosestFeature) Name() Algorithm {
	return AlgorithmClosestFeature
}

func (c *ClosestFeature) Detect(a, b *geometry.Polygon, cfg Config) Result {
	var res Result
	va, vb := a.WorldVertices(), b.WorldVertices()

	hit := closestVertexEdge(va, vb, cfg.Epsilon)
	resolveFeatureHit(&res, "Closest feature", hit, cfg)
	return res
}

// resolveFeatureHit applies the containment-precedence and threshold rules
// shared by the closest-feature and V-Clip detectors.
func resolveFeatureHit(res *Result, name string, hit featureHit, cfg Config) {
	if hit.contained {
		res.Colliding = true
		res.setContact(hit.point)
		res.tracef("%s: full containment, separation 0", name)
		return
	}
	if !hit.found {
		res.tracef("%s: no usable feature pair", name)
		return
	}
	res.tracef("%s: minimum separation %.4f at (%.4f, %.4f)", name, hit.distance, hit.point.X, hit.point.Y)
	if hit.distance < cfg.CollisionThreshold {
		res.Colliding = true
		res.setContact(hit.point)
		res.tracef("%s: separation below threshold %.4f, collision", name, cfg.CollisionThreshold)
		return
	}
	res.tracef("%s: separation above threshold %.4f, no collision", name, cfg.CollisionThreshold)
}
