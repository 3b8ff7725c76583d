package narrowphase

import "github.com/elenamoglan/collision-quest/internal/core/geometry"

// VClip extends the closest-feature scan with direct vertex-vertex
// distances, since the closest features of two convex polygons can be a
// vertex pair that no vertex-to-edge projection reaches first.
type VClip struct{}

var _ Detector = (*VClip)(nil)

func (v *VClip) Name() Algorithm {
	return AlgorithmVClip
}

func (v *VClip) Detect(a, b *geometry.Polygon, cfg Config) Result {
	var res Result
	va, vb := a.WorldVertices(), b.WorldVertices()

	hit := closestVertexEdge(va, vb, cfg.Epsilon)
	if !hit.contained {
		if vv := closestVertexVertex(va, vb); vv.found && (!hit.found || vv.distance < hit.distance) {
			res.tracef("V-Clip: vertex-vertex pair beats vertex-edge, distance %.4f", vv.distance)
			hit = vv
		}
	}
	resolveFeatureHit(&res, "V-Clip", hit, cfg)
	return res
}
