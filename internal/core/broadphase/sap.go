package broadphase

import (
	"sort"

	"github.com/elenamoglan/collision-quest/internal/core/geometry"
)

// SweepAndPrune is a rebuild-per-query sweep-and-prune broad phase. Shapes
// are sorted by AABB min-x and swept left to right with an active window;
// only shapes still spanning the sweep position are tested on both axes.
//
// Sorting costs O(N log N) and the sweep O(N*k) with k the average window
// size. When every interval overlaps on x this degrades to O(N^2), which is
// fine for the small shape counts this engine targets.
type SweepAndPrune struct {
	shapes []*geometry.Polygon
}

func NewSweepAndPrune() *SweepAndPrune {
	return &SweepAndPrune{}
}

// Insert registers a shape for the next Pairs call.
func (s *SweepAndPrune) Insert(shape *geometry.Polygon) {
	s.shapes = append(s.shapes, shape)
}

// Reset drops all registered shapes.
func (s *SweepAndPrune) Reset() {
	s.shapes = s.shapes[:0]
}

type sapEntry struct {
	shape *geometry.Polygon
	box   geometry.AABB
}

// Pairs computes every AABB from the shapes' current poses and returns the
// candidate pairs. Zero or one shape yields no pairs.
func (s *SweepAndPrune) Pairs() []Pair {
	if len(s.shapes) < 2 {
		return nil
	}

	entries := make([]sapEntry, len(s.shapes))
	for i, shape := range s.shapes {
		entries[i] = sapEntry{shape: shape, box: shape.Bounds()}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].box.Min.X < entries[j].box.Min.X
	})

	var pairs []Pair
	seen := make(map[uint64]struct{})
	var active []sapEntry

	for _, cur := range entries {
		// Evict entries the sweep has passed.
		kept := active[:0]
		for _, a := range active {
			if a.box.Max.X >= cur.box.Min.X {
				kept = append(kept, a)
			}
		}
		active = kept

		// The x intervals of everything still active overlap cur's, so a
		// full both-axis test decides candidacy.
		for _, a := range active {
			if a.box.Overlaps(cur.box) {
				p := Pair{A: a.shape, B: cur.shape}
				if _, dup := seen[p.Key()]; dup {
					continue
				}
				seen[p.Key()] = struct{}{}
				pairs = append(pairs, p)
			}
		}
		active = append(active, cur)
	}

	return pairs
}
