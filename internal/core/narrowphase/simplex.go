package narrowphase

import "github.com/elenamoglan/collision-quest/internal/core/geometry"

// simplex is the bounded point stack GJK grows in Minkowski-difference
// space. In 2D it never needs more than three points, so it is a fixed
// inline array rather than a slice. The newest point is always last.
type simplex struct {
	points [3]geometry.Vector2
	count  int
}

func (s *simplex) reset() {
	s.count = 0
}

func (s *simplex) push(p geometry.Vector2) {
	s.points[s.count] = p
	s.count++
}

// removeAt drops the point at index i, preserving the order of the rest.
func (s *simplex) removeAt(i int) {
	copy(s.points[i:], s.points[i+1:s.count])
	s.count--
}

// evolve reduces the simplex toward the origin. It returns resolved=true
// once the verdict is known; until then it rewrites dir to the next search
// direction and keeps only the points worth growing from.
func (s *simplex) evolve(dir *geometry.Vector2, eps float64) (resolved, colliding bool) {
	switch s.count {
	case 2:
		return s.lineCase(dir, eps)
	case 3:
		return s.triangleCase(dir)
	}
	return false, false
}

// lineCase handles the two-point simplex. The search continues along the
// component of the line-to-origin vector perpendicular to the segment; a
// vanishing perpendicular means the origin sits on the supporting line, where
// the verdict is decided by whether both endpoints stay within one segment
// length of the origin.
func (s *simplex) lineCase(dir *geometry.Vector2, eps float64) (resolved, colliding bool) {
	newest := s.points[1]
	oldest := s.points[0]

	ab := oldest.Sub(newest)
	ao := newest.Neg()

	perp := geometry.TripleProduct(ab, ao, ab)
	if perp.LengthSquared() < eps*eps {
		segLen := ab.Length()
		onSegment := newest.Length() <= segLen && oldest.Length() <= segLen
		return true, onSegment
	}

	dir.Set(perp)
	return false, false
}

// triangleCase handles the three-point simplex using the two edges adjacent
// to the newest point. If the origin lies outside either edge the opposite
// vertex is dropped and the search continues along that edge's outward
// perpendicular; otherwise the origin is enclosed.
func (s *simplex) triangleCase(dir *geometry.Vector2) (resolved, colliding bool) {
	a := s.points[2] // newest
	b := s.points[1]
	c := s.points[0]

	ab := b.Sub(a)
	ac := c.Sub(a)
	ao := a.Neg()

	abPerp := geometry.TripleProduct(ac, ab, ab)
	acPerp := geometry.TripleProduct(ab, ac, ac)

	if abPerp.Dot(ao) > 0 {
		s.removeAt(0) // drop c, keep [b a]
		dir.Set(abPerp)
		return false, false
	}
	if acPerp.Dot(ao) > 0 {
		s.removeAt(1) // drop b, keep [c a]
		dir.Set(acPerp)
		return false, false
	}
	return true, true
}
