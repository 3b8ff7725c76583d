// Package broadphase prunes an N-shape set down to the pairs whose AABBs
// overlap. It is purely a filter: a surviving pair still has to pass a
// narrow-phase test before anything is reported as colliding.
package broadphase

import (
	"github.com/cespare/xxhash/v2"

	"github.com/elenamoglan/collision-quest/internal/core/geometry"
)

// Pair is an unordered candidate pair of shapes whose AABBs overlap.
// Produced fresh per query, never persisted.
type Pair struct {
	A, B *geometry.Polygon
}

// Key returns an order-independent hash of the two shape IDs, used to emit
// each pair at most once.
func (p Pair) Key() uint64 {
	lo, hi := p.A.ID, p.B.ID
	if hi < lo {
		lo, hi = hi, lo
	}
	d := xxhash.New()
	_, _ = d.WriteString(lo)
	_, _ = d.WriteString(hi)
	return d.Sum64()
}
