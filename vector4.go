package gdmath

import (
	"math"

	"github.com/gogpu/gdmath/internal/lanes"
)

// Vector4 is a 4D vector with Real components, the floating-point sibling
// of Vector4i.
//
// ABI: the layout is the engine's Vector4, four Real in the order X, Y, Z, W.
// Real is float32 (16 bytes) unless built with gdmath_double (32 bytes).
type Vector4 struct {
	X Real `json:"x"`
	Y Real `json:"y"`
	Z Real `json:"z"`
	W Real `json:"w"`
}

var (
	// Vector4Zero is the vector with all components set to 0.
	Vector4Zero = Vector4{}

	// Vector4One is the vector with all components set to 1.
	Vector4One = Vector4Splat(1)
)

// NewVector4 returns a Vector4 with the given components.
func NewVector4(x, y, z, w Real) Vector4 {
	return Vector4{X: x, Y: y, Z: z, W: w}
}

// Vector4Splat returns a Vector4 with all components set to v.
func Vector4Splat(v Real) Vector4 {
	return Vector4{X: v, Y: v, Z: v, W: v}
}

// Components returns the components in axis order.
func (v Vector4) Components() [4]Real {
	return [4]Real{v.X, v.Y, v.Z, v.W}
}

func vector4Of(c [4]Real) Vector4 {
	return Vector4{X: c[0], Y: c[1], Z: c[2], W: c[3]}
}

// binary4 applies a lanes kernel to v and o.
func binary4(v, o Vector4, kernel func(dst, a, b []Real)) Vector4 {
	a, b := v.Components(), o.Components()
	kernel(a[:], a[:], b[:])
	return vector4Of(a)
}

// Add returns the component-wise sum.
func (v Vector4) Add(o Vector4) Vector4 { return binary4(v, o, lanes.Add[Real]) }

// Sub returns the component-wise difference.
func (v Vector4) Sub(o Vector4) Vector4 { return binary4(v, o, lanes.Sub[Real]) }

// Mul returns the component-wise product.
func (v Vector4) Mul(o Vector4) Vector4 { return binary4(v, o, lanes.Mul[Real]) }

// Div returns the component-wise quotient with IEEE 754 semantics: a zero
// divisor gives an infinity or NaN, not an error.
func (v Vector4) Div(o Vector4) Vector4 { return binary4(v, o, lanes.DivFloat[Real]) }

// Neg returns the negated vector.
func (v Vector4) Neg() Vector4 {
	return Vector4{X: -v.X, Y: -v.Y, Z: -v.Z, W: -v.W}
}

// MulScalar multiplies every component by s.
func (v Vector4) MulScalar(s Real) Vector4 { return v.Mul(Vector4Splat(s)) }

// DivScalar divides every component by s.
func (v Vector4) DivScalar(s Real) Vector4 { return v.Div(Vector4Splat(s)) }

// CoordMin returns the component-wise minimum of v and o.
func (v Vector4) CoordMin(o Vector4) Vector4 { return binary4(v, o, lanes.Min[Real]) }

// CoordMax returns the component-wise maximum of v and o.
func (v Vector4) CoordMax(o Vector4) Vector4 { return binary4(v, o, lanes.Max[Real]) }

// Abs returns the component-wise absolute value.
func (v Vector4) Abs() Vector4 {
	c := v.Components()
	lanes.Abs(c[:], c[:])
	return vector4Of(c)
}

// Compare orders vectors lexicographically by X, then Y, Z and W.
// NaN sorts before every other value.
func (v Vector4) Compare(o Vector4) int {
	a, b := v.Components(), o.Components()
	return lanes.Compare(a[:], b[:])
}

// Less reports whether v sorts before o.
func (v Vector4) Less(o Vector4) bool { return v.Compare(o) < 0 }

// Get returns the component on axis a.
// It panics if a is not a declared Vector4Axis.
func (v Vector4) Get(a Vector4Axis) Real {
	switch a {
	case Vector4AxisX:
		return v.X
	case Vector4AxisY:
		return v.Y
	case Vector4AxisZ:
		return v.Z
	case Vector4AxisW:
		return v.W
	}
	panic(invalidAxis(a))
}

// Set replaces the component on axis a.
// It panics if a is not a declared Vector4Axis.
func (v *Vector4) Set(a Vector4Axis, value Real) {
	switch a {
	case Vector4AxisX:
		v.X = value
	case Vector4AxisY:
		v.Y = value
	case Vector4AxisZ:
		v.Z = value
	case Vector4AxisW:
		v.W = value
	default:
		panic(invalidAxis(a))
	}
}

// Dot returns the dot product of v and o.
func (v Vector4) Dot(o Vector4) float64 {
	a, b := v.Components(), o.Components()
	return lanes.Dot(a[:], b[:])
}

// LengthSquared returns the squared length.
func (v Vector4) LengthSquared() float64 { return v.Dot(v) }

// Length returns the Euclidean length.
func (v Vector4) Length() float64 { return math.Sqrt(v.LengthSquared()) }

// Lerp performs linear interpolation between v and o.
// t=0 returns v, t=1 returns o.
func (v Vector4) Lerp(o Vector4, t Real) Vector4 {
	return v.Add(o.Sub(v).MulScalar(t))
}

// Approx reports whether every component of v is within epsilon of o,
// bound included. NaN components are never approximately equal.
func (v Vector4) Approx(o Vector4, epsilon Real) bool {
	d := v.Sub(o).Abs().Components()
	for _, c := range d {
		if !(c <= epsilon) {
			return false
		}
	}
	return true
}

// IsFinite reports whether no component is an infinity or NaN.
func (v Vector4) IsFinite() bool {
	for _, c := range v.Components() {
		if math.IsInf(float64(c), 0) || math.IsNaN(float64(c)) {
			return false
		}
	}
	return true
}
