// Package narrowphase holds the per-pair collision detectors. All four
// algorithms share one contract: two posed convex polygons plus the numeric
// tolerances in, a verdict with an ordered debug trace and an optional
// contact-point estimate out.
package narrowphase

import (
	"fmt"

	"github.com/elenamoglan/collision-quest/internal/core/geometry"
)

// Algorithm selects one of the narrow-phase detectors.
type Algorithm string

const (
	AlgorithmGJK            Algorithm = "gjk"
	AlgorithmSAT            Algorithm = "sat"
	AlgorithmClosestFeature Algorithm = "closest-feature"
	AlgorithmVClip          Algorithm = "v-clip"
)

// Config carries the numeric tolerances every detector shares.
type Config struct {
	// CollisionThreshold is the separation distance below which the
	// feature-based detectors report contact. Deliberately a soft tolerance,
	// not machine epsilon.
	CollisionThreshold float64
	// Epsilon gates the degenerate-geometry branches (near-zero-length edges
	// and directions).
	Epsilon float64
	// MaxIterations caps GJK simplex growth.
	MaxIterations int
}

// Result is the outcome of a single pair test. Debug is append-only, ordered
// by algorithm progress, and strictly observational: nothing reads it back.
type Result struct {
	Colliding      bool
	Debug          []string
	CollisionPoint *geometry.Vector2
}

func (r *Result) tracef(format string, args ...any) {
	r.Debug = append(r.Debug, fmt.Sprintf(format, args...))
}

func (r *Result) setContact(p geometry.Vector2) {
	r.CollisionPoint = &p
}

// Detector is the shared narrow-phase contract.
type Detector interface {
	Name() Algorithm
	Detect(a, b *geometry.Polygon, cfg Config) Result
}

// New returns the detector for the given selector.
func New(alg Algorithm) (Detector, error) {
	switch alg {
	case AlgorithmGJK:
		return NewGJK(), nil
	case AlgorithmSAT:
		return &SAT{}, nil
	case AlgorithmClosestFeature:
		return &ClosestFeature{}, nil
	case AlgorithmVClip:
		return &VClip{}, nil
	default:
		return nil, fmt.Errorf("narrowphase: unknown algorithm %q", alg)
	}
}

// Algorithms lists every available selector.
func Algorithms() []Algorithm {
	return []Algorithm{AlgorithmGJK, AlgorithmSAT, AlgorithmClosestFeature, AlgorithmVClip}
}
