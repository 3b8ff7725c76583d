package geometry

import "math"

// Vector2 is a 2D vector with float64 components. It is immutable by
// convention: every operation returns a new value. Set is the one mutator,
// kept for reusing a search-direction accumulator inside iteration loops.
type Vector2 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

func NewVector2(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vector2) Scale(factor float64) Vector2 {
	return Vector2{X: v.X * factor, Y: v.Y * factor}
}

func (v Vector2) Neg() Vector2 {
	return Vector2{X: -v.X, Y: -v.Y}
}

func (v Vector2) Dot(o Vector2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the z component of the 3D cross product of the two vectors.
func (v Vector2) Cross(o Vector2) float64 {
	return v.X*o.Y - v.Y*o.X
}

// Perp returns the counter-clockwise perpendicular of v.
func (v Vector2) Perp() Vector2 {
	return Vector2{X: -v.Y, Y: v.X}
}

func (v Vector2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

func (v Vector2) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns the unit vector in the direction of v. The zero vector
// normalizes to the zero vector rather than producing NaN components.
func (v Vector2) Normalize() Vector2 {
	length := v.Length()
	if length == 0 {
		return Vector2{}
	}
	return Vector2{X: v.X / length, Y: v.Y / length}
}

func (v Vector2) Distance(o Vector2) float64 {
	return v.Sub(o).Length()
}

func (v Vector2) DistanceSquared(o Vector2) float64 {
	return v.Sub(o).LengthSquared()
}

// Set overwrites v in place.
func (v *Vector2) Set(o Vector2) {
	v.X, v.Y = o.X, o.Y
}

// TripleProduct computes (a x b) x c, which in 2D yields a vector
// perpendicular to c lying in the plane, oriented by a and b. GJK uses it to
// find edge perpendiculars pointing toward the origin.
func TripleProduct(a, b, c Vector2) Vector2 {
	ac := a.Dot(c)
	bc := b.Dot(c)
	return Vector2{X: b.X*ac - a.X*bc, Y: b.Y*ac - a.Y*bc}
}
