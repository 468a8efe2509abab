package gdmath

import (
	"math"

	"github.com/gogpu/gdmath/internal/lanes"
)

// Vector2 is a 2D vector with Real components, the floating-point sibling
// of Vector2i.
//
// ABI: the layout is the engine's Vector2, two Real in the order X, Y.
// Real is float32 (8 bytes) unless built with gdmath_double (16 bytes).
type Vector2 struct {
	X Real `json:"x"`
	Y Real `json:"y"`
}

var (
	// Vector2Zero is the vector with all components set to 0.
	Vector2Zero = Vector2{}

	// Vector2One is the vector with all components set to 1.
	Vector2One = Vector2Splat(1)
)

// NewVector2 returns a Vector2 with the given components.
func NewVector2(x, y Real) Vector2 {
	return Vector2{X: x, Y: y}
}

// Vector2Splat returns a Vector2 with all components set to v.
func Vector2Splat(v Real) Vector2 {
	return Vector2{X: v, Y: v}
}

// Components returns the components in axis order.
func (v Vector2) Components() [2]Real {
	return [2]Real{v.X, v.Y}
}

func vector2Of(c [2]Real) Vector2 {
	return Vector2{X: c[0], Y: c[1]}
}

// binary2 applies a lanes kernel to v and o.
func binary2(v, o Vector2, kernel func(dst, a, b []Real)) Vector2 {
	a, b := v.Components(), o.Components()
	kernel(a[:], a[:], b[:])
	return vector2Of(a)
}

// Add returns the component-wise sum.
func (v Vector2) Add(o Vector2) Vector2 { return binary2(v, o, lanes.Add[Real]) }

// Sub returns the component-wise difference.
func (v Vector2) Sub(o Vector2) Vector2 { return binary2(v, o, lanes.Sub[Real]) }

// Mul returns the component-wise product.
func (v Vector2) Mul(o Vector2) Vector2 { return binary2(v, o, lanes.Mul[Real]) }

// Div returns the component-wise quotient with IEEE 754 semantics: a zero
// divisor gives an infinity or NaN, not an error.
func (v Vector2) Div(o Vector2) Vector2 { return binary2(v, o, lanes.DivFloat[Real]) }

// Neg returns the negated vector.
func (v Vector2) Neg() Vector2 {
	return Vector2{X: -v.X, Y: -v.Y}
}

// MulScalar multiplies every component by s.
func (v Vector2) MulScalar(s Real) Vector2 { return v.Mul(Vector2Splat(s)) }

// DivScalar divides every component by s.
func (v Vector2) DivScalar(s Real) Vector2 { return v.Div(Vector2Splat(s)) }

// CoordMin returns the component-wise minimum of v and o.
func (v Vector2) CoordMin(o Vector2) Vector2 { return binary2(v, o, lanes.Min[Real]) }

// CoordMax returns the component-wise maximum of v and o.
func (v Vector2) CoordMax(o Vector2) Vector2 { return binary2(v, o, lanes.Max[Real]) }

// Abs returns the component-wise absolute value.
func (v Vector2) Abs() Vector2 {
	c := v.Components()
	lanes.Abs(c[:], c[:])
	return vector2Of(c)
}

// Compare orders vectors lexicographically by X, then Y.
// NaN sorts before every other value.
func (v Vector2) Compare(o Vector2) int {
	a, b := v.Components(), o.Components()
	return lanes.Compare(a[:], b[:])
}

// Less reports whether v sorts before o.
func (v Vector2) Less(o Vector2) bool { return v.Compare(o) < 0 }

// Get returns the component on axis a.
// It panics if a is not a declared Vector2Axis.
func (v Vector2) Get(a Vector2Axis) Real {
	switch a {
	case Vector2AxisX:
		return v.X
	case Vector2AxisY:
		return v.Y
	}
	panic(invalidAxis(a))
}

// Set replaces the component on axis a.
// It panics if a is not a declared Vector2Axis.
func (v *Vector2) Set(a Vector2Axis, value Real) {
	switch a {
	case Vector2AxisX:
		v.X = value
	case Vector2AxisY:
		v.Y = value
	default:
		panic(invalidAxis(a))
	}
}

// Dot returns the dot product of v and o.
func (v Vector2) Dot(o Vector2) float64 {
	a, b := v.Components(), o.Components()
	return lanes.Dot(a[:], b[:])
}

// LengthSquared returns the squared length.
func (v Vector2) LengthSquared() float64 { return v.Dot(v) }

// Length returns the Euclidean length.
func (v Vector2) Length() float64 { return math.Sqrt(v.LengthSquared()) }

// Lerp performs linear interpolation between v and o.
// t=0 returns v, t=1 returns o.
func (v Vector2) Lerp(o Vector2, t Real) Vector2 {
	return v.Add(o.Sub(v).MulScalar(t))
}

// Approx reports whether every component of v is within epsilon of o,
// bound included. NaN components are never approximately equal.
func (v Vector2) Approx(o Vector2, epsilon Real) bool {
	d := v.Sub(o).Abs().Components()
	for _, c := range d {
		if !(c <= epsilon) {
			return false
		}
	}
	return true
}

// IsFinite reports whether no component is an infinity or NaN.
func (v Vector2) IsFinite() bool {
	for _, c := range v.Components() {
		if math.IsInf(float64(c), 0) || math.IsNaN(float64(c)) {
			return false
		}
	}
	return true
}
