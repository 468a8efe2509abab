package gdmath

import (
	"math"

	"github.com/gogpu/gdmath/internal/lanes"
)

// Vector3 is a 3D vector with Real components, the floating-point sibling
// of Vector3i.
//
// ABI: the layout is the engine's Vector3, three Real in the order X, Y, Z.
// Real is float32 (12 bytes) unless built with gdmath_double (24 bytes).
type Vector3 struct {
	X Real `json:"x"`
	Y Real `json:"y"`
	Z Real `json:"z"`
}

var (
	// Vector3Zero is the vector with all components set to 0.
	Vector3Zero = Vector3{}

	// Vector3One is the vector with all components set to 1.
	Vector3One = Vector3Splat(1)
)

// NewVector3 returns a Vector3 with the given components.
func NewVector3(x, y, z Real) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Vector3Splat returns a Vector3 with all components set to v.
func Vector3Splat(v Real) Vector3 {
	return Vector3{X: v, Y: v, Z: v}
}

// Components returns the components in axis order.
func (v Vector3) Components() [3]Real {
	return [3]Real{v.X, v.Y, v.Z}
}

func vector3Of(c [3]Real) Vector3 {
	return Vector3{X: c[0], Y: c[1], Z: c[2]}
}

// binary3 applies a lanes kernel to v and o.
func binary3(v, o Vector3, kernel func(dst, a, b []Real)) Vector3 {
	a, b := v.Components(), o.Components()
	kernel(a[:], a[:], b[:])
	return vector3Of(a)
}

// Add returns the component-wise sum.
func (v Vector3) Add(o Vector3) Vector3 { return binary3(v, o, lanes.Add[Real]) }

// Sub returns the component-wise difference.
func (v Vector3) Sub(o Vector3) Vector3 { return binary3(v, o, lanes.Sub[Real]) }

// Mul returns the component-wise product.
func (v Vector3) Mul(o Vector3) Vector3 { return binary3(v, o, lanes.Mul[Real]) }

// Div returns the component-wise quotient with IEEE 754 semantics: a zero
// divisor gives an infinity or NaN, not an error.
func (v Vector3) Div(o Vector3) Vector3 { return binary3(v, o, lanes.DivFloat[Real]) }

// Neg returns the negated vector.
func (v Vector3) Neg() Vector3 {
	return Vector3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// MulScalar multiplies every component by s.
func (v Vector3) MulScalar(s Real) Vector3 { return v.Mul(Vector3Splat(s)) }

// DivScalar divides every component by s.
func (v Vector3) DivScalar(s Real) Vector3 { return v.Div(Vector3Splat(s)) }

// CoordMin returns the component-wise minimum of v and o.
func (v Vector3) CoordMin(o Vector3) Vector3 { return binary3(v, o, lanes.Min[Real]) }

// CoordMax returns the component-wise maximum of v and o.
func (v Vector3) CoordMax(o Vector3) Vector3 { return binary3(v, o, lanes.Max[Real]) }

// Abs returns the component-wise absolute value.
func (v Vector3) Abs() Vector3 {
	c := v.Components()
	lanes.Abs(c[:], c[:])
	return vector3Of(c)
}

// Compare orders vectors lexicographically by X, then Y and Z.
// NaN sorts before every other value.
func (v Vector3) Compare(o Vector3) int {
	a, b := v.Components(), o.Components()
	return lanes.Compare(a[:], b[:])
}

// Less reports whether v sorts before o.
func (v Vector3) Less(o Vector3) bool { return v.Compare(o) < 0 }

// Get returns the component on axis a.
// It panics if a is not a declared Vector3Axis.
func (v Vector3) Get(a Vector3Axis) Real {
	switch a {
	case Vector3AxisX:
		return v.X
	case Vector3AxisY:
		return v.Y
	case Vector3AxisZ:
		return v.Z
	}
	panic(invalidAxis(a))
}

// Set replaces the component on axis a.
// It panics if a is not a declared Vector3Axis.
func (v *Vector3) Set(a Vector3Axis, value Real) {
	switch a {
	case Vector3AxisX:
		v.X = value
	case Vector3AxisY:
		v.Y = value
	case Vector3AxisZ:
		v.Z = value
	default:
		panic(invalidAxis(a))
	}
}

// Dot returns the dot product of v and o.
func (v Vector3) Dot(o Vector3) float64 {
	a, b := v.Components(), o.Components()
	return lanes.Dot(a[:], b[:])
}

// LengthSquared returns the squared length.
func (v Vector3) LengthSquared() float64 { return v.Dot(v) }

// Length returns the Euclidean length.
func (v Vector3) Length() float64 { return math.Sqrt(v.LengthSquared()) }

// Lerp performs linear interpolation between v and o.
// t=0 returns v, t=1 returns o.
func (v Vector3) Lerp(o Vector3, t Real) Vector3 {
	return v.Add(o.Sub(v).MulScalar(t))
}

// Approx reports whether every component of v is within epsilon of o,
// bound included. NaN components are never approximately equal.
func (v Vector3) Approx(o Vector3, epsilon Real) bool {
	d := v.Sub(o).Abs().Components()
	for _, c := range d {
		if !(c <= epsilon) {
			return false
		}
	}
	return true
}

// IsFinite reports whether no component is an infinity or NaN.
func (v Vector3) IsFinite() bool {
	for _, c := range v.Components() {
		if math.IsInf(float64(c), 0) || math.IsNaN(float64(c)) {
			return false
		}
	}
	return true
}
