package gdmath

import (
	"math"

	"github.com/gogpu/gdmath/internal/lanes"
	"github.com/gogpu/gdmath/internal/wide"
)

// Vector4i is a 4D vector with int32 components, used for 4D grid
// coordinates or sets of four integers.
//
// It is preferable to Vector4 when exact precision is required. Components
// are limited to 32 bits and, unlike Vector4, this cannot be changed with a
// build option; use int64 values if 64-bit coordinates are needed.
//
// ABI: the layout is exactly the engine's Vector4i, four int32 in the order
// X, Y, Z, W with no padding (16 bytes, 4-byte aligned). Values cross the
// engine boundary by raw pointer, so adding, removing or reordering fields is
// a breaking ABI change. layout.go asserts size and alignment at build time.
//
// Every bit pattern is a valid vector. The zero value is (0, 0, 0, 0).
type Vector4i struct {
	X int32 `json:"x"`
	Y int32 `json:"y"`
	Z int32 `json:"z"`
	W int32 `json:"w"`
}

var (
	// Vector4iZero is the vector with all components set to 0.
	Vector4iZero = Vector4i{}

	// Vector4iOne is the vector with all components set to 1.
	Vector4iOne = Vector4iSplat(1)
)

// NewVector4i returns a Vector4i with the given components.
func NewVector4i(x, y, z, w int32) Vector4i {
	return Vector4i{X: x, Y: y, Z: z, W: w}
}

// Vector4iSplat returns a Vector4i with all components set to v.
func Vector4iSplat(v int32) Vector4i {
	return Vector4i{X: v, Y: v, Z: v, W: v}
}

// Components returns the components in axis order.
func (v Vector4i) Components() [4]int32 {
	return [4]int32{v.X, v.Y, v.Z, v.W}
}

func vector4iOf(c [4]int32) Vector4i {
	return fromFast(wide.I32x4(c))
}

// Add returns the component-wise sum. Overflow wraps around.
func (v Vector4i) Add(o Vector4i) Vector4i {
	return fromFast(toFast(v).Add(toFast(o)))
}

// Sub returns the component-wise difference. Overflow wraps around.
func (v Vector4i) Sub(o Vector4i) Vector4i {
	return fromFast(toFast(v).Sub(toFast(o)))
}

// Mul returns the component-wise product. Overflow wraps around.
func (v Vector4i) Mul(o Vector4i) Vector4i {
	return fromFast(toFast(v).Mul(toFast(o)))
}

// Neg returns the negated vector.
func (v Vector4i) Neg() Vector4i {
	return fromFast(toFast(v).Neg())
}

// AddScalar adds s to every component.
func (v Vector4i) AddScalar(s int32) Vector4i {
	return fromFast(toFast(v).Add(wide.SplatI32(s)))
}

// SubScalar subtracts s from every component.
func (v Vector4i) SubScalar(s int32) Vector4i {
	return fromFast(toFast(v).Sub(wide.SplatI32(s)))
}

// MulScalar multiplies every component by s.
func (v Vector4i) MulScalar(s int32) Vector4i {
	return fromFast(toFast(v).Mul(wide.SplatI32(s)))
}

// Div returns the component-wise quotient truncated toward zero.
//
// If a component of o is zero the result is an *ArithmeticError wrapping
// ErrDivisionByZero; math.MinInt32 / -1 yields ErrDivisionOverflow.
func (v Vector4i) Div(o Vector4i) (Vector4i, error) {
	q, lane, f := toFast(v).Div(toFast(o))
	if f != lanes.FaultNone {
		return Vector4i{}, faultError("Vector4i.Div", lane, f)
	}
	return fromFast(q), nil
}

// Rem returns the component-wise remainder, with the sign of v.
// A zero component in o is an *ArithmeticError wrapping ErrDivisionByZero.
func (v Vector4i) Rem(o Vector4i) (Vector4i, error) {
	r, lane, f := toFast(v).Rem(toFast(o))
	if f != lanes.FaultNone {
		return Vector4i{}, faultError("Vector4i.Rem", lane, f)
	}
	return fromFast(r), nil
}

// DivScalar divides every component by s. See Div for the error cases.
func (v Vector4i) DivScalar(s int32) (Vector4i, error) {
	if s == 0 {
		return Vector4i{}, scalarZeroError("Vector4i.DivScalar")
	}
	q, lane, f := toFast(v).Div(wide.SplatI32(s))
	if f != lanes.FaultNone {
		return Vector4i{}, faultError("Vector4i.DivScalar", lane, f)
	}
	return fromFast(q), nil
}

// RemScalar returns the remainder of every component divided by s.
func (v Vector4i) RemScalar(s int32) (Vector4i, error) {
	if s == 0 {
		return Vector4i{}, scalarZeroError("Vector4i.RemScalar")
	}
	r, _, _ := toFast(v).Rem(wide.SplatI32(s))
	return fromFast(r), nil
}

// CoordMin returns the component-wise minimum of v and o.
func (v Vector4i) CoordMin(o Vector4i) Vector4i {
	return fromFast(toFast(v).Min(toFast(o)))
}

// CoordMax returns the component-wise maximum of v and o.
func (v Vector4i) CoordMax(o Vector4i) Vector4i {
	return fromFast(toFast(v).Max(toFast(o)))
}

// Clamp limits every component to the range [lo, hi] of the matching
// components. If lo exceeds hi on an axis the result on that axis is hi.
func (v Vector4i) Clamp(lo, hi Vector4i) Vector4i {
	return fromFast(toFast(v).Max(toFast(lo)).Min(toFast(hi)))
}

// Abs returns the component-wise absolute value.
// math.MinInt32 has no positive counterpart and is returned unchanged.
func (v Vector4i) Abs() Vector4i {
	c := v.Components()
	lanes.Abs(c[:], c[:])
	return vector4iOf(c)
}

// Sign returns -1, 0 or 1 per component.
func (v Vector4i) Sign() Vector4i {
	c := v.Components()
	lanes.Sign(c[:], c[:])
	return vector4iOf(c)
}

// Compare orders vectors lexicographically by X, then Y, Z and W.
// It returns -1, 0 or +1.
func (v Vector4i) Compare(o Vector4i) int {
	a, b := v.Components(), o.Components()
	return lanes.Compare(a[:], b[:])
}

// Less reports whether v sorts before o. See Compare.
func (v Vector4i) Less(o Vector4i) bool {
	return v.Compare(o) < 0
}

// CompareVector4i is Compare in a form suitable for slices.SortFunc.
func CompareVector4i(a, b Vector4i) int {
	return a.Compare(b)
}

// Get returns the component on axis a.
// It panics if a is not a declared Vector4Axis.
func (v Vector4i) Get(a Vector4Axis) int32 {
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
func (v *Vector4i) Set(a Vector4Axis, value int32) {
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

// MaxAxis returns the axis of the largest component. Ties resolve to the
// first axis.
func (v Vector4i) MaxAxis() Vector4Axis {
	c := v.Components()
	return Vector4Axis(lanes.ArgMax(c[:]))
}

// MinAxis returns the axis of the smallest component. Ties resolve to the
// first axis.
func (v Vector4i) MinAxis() Vector4Axis {
	c := v.Components()
	return Vector4Axis(lanes.ArgMin(c[:]))
}

// LengthSquared returns the squared length in int64. It wraps around when
// the sum exceeds math.MaxInt64; use Length for such vectors.
func (v Vector4i) LengthSquared() int64 {
	c := v.Components()
	return lanes.SquaredNorm(c[:])
}

// Length returns the Euclidean length.
func (v Vector4i) Length() float64 {
	c := v.Components()
	return math.Sqrt(lanes.SquaredNormFloat(c[:]))
}

// IsZero reports whether all components are zero.
func (v Vector4i) IsZero() bool {
	return v == Vector4i{}
}
