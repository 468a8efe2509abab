package gdmath

import (
	"math"

	"github.com/gogpu/gdmath/internal/lanes"
)

// Vector2i is a 2D vector with int32 components, used for 2D grid
// coordinates such as pixel or tile positions.
//
// ABI: the layout is the engine's Vector2i, two int32 in the order X, Y
// (8 bytes, 4-byte aligned). Field changes break the ABI.
type Vector2i struct {
	X int32 `json:"x"`
	Y int32 `json:"y"`
}

var (
	// Vector2iZero is the vector with all components set to 0.
	Vector2iZero = Vector2i{}

	// Vector2iOne is the vector with all components set to 1.
	Vector2iOne = Vector2iSplat(1)
)

// NewVector2i returns a Vector2i with the given components.
func NewVector2i(x, y int32) Vector2i {
	return Vector2i{X: x, Y: y}
}

// Vector2iSplat returns a Vector2i with all components set to v.
func Vector2iSplat(v int32) Vector2i {
	return Vector2i{X: v, Y: v}
}

// Components returns the components in axis order.
func (v Vector2i) Components() [2]int32 {
	return [2]int32{v.X, v.Y}
}

func vector2iOf(c [2]int32) Vector2i {
	return Vector2i{X: c[0], Y: c[1]}
}

// binary2i applies a lanes kernel to v and o.
func binary2i(v, o Vector2i, kernel func(dst, a, b []int32)) Vector2i {
	a, b := v.Components(), o.Components()
	kernel(a[:], a[:], b[:])
	return vector2iOf(a)
}

// Add returns the component-wise sum. Overflow wraps around.
func (v Vector2i) Add(o Vector2i) Vector2i { return binary2i(v, o, lanes.Add[int32]) }

// Sub returns the component-wise difference. Overflow wraps around.
func (v Vector2i) Sub(o Vector2i) Vector2i { return binary2i(v, o, lanes.Sub[int32]) }

// Mul returns the component-wise product. Overflow wraps around.
func (v Vector2i) Mul(o Vector2i) Vector2i { return binary2i(v, o, lanes.Mul[int32]) }

// Neg returns the negated vector.
func (v Vector2i) Neg() Vector2i {
	return Vector2i{X: -v.X, Y: -v.Y}
}

// AddScalar adds s to every component.
func (v Vector2i) AddScalar(s int32) Vector2i { return v.Add(Vector2iSplat(s)) }

// SubScalar subtracts s from every component.
func (v Vector2i) SubScalar(s int32) Vector2i { return v.Sub(Vector2iSplat(s)) }

// MulScalar multiplies every component by s.
func (v Vector2i) MulScalar(s int32) Vector2i { return v.Mul(Vector2iSplat(s)) }

// div2i runs a checked division kernel, reporting faults against op.
func div2i(op string, v, o Vector2i, kernel func(dst, a, b []int32) (int, lanes.Fault)) (Vector2i, error) {
	a, b := v.Components(), o.Components()
	var r [2]int32
	if lane, f := kernel(r[:], a[:], b[:]); f != lanes.FaultNone {
		return Vector2i{}, faultError(op, lane, f)
	}
	return vector2iOf(r), nil
}

// Div returns the component-wise quotient truncated toward zero.
// It fails like Vector4i.Div.
func (v Vector2i) Div(o Vector2i) (Vector2i, error) {
	return div2i("Vector2i.Div", v, o, lanes.DivInt[int32])
}

// Rem returns the component-wise remainder, with the sign of v.
func (v Vector2i) Rem(o Vector2i) (Vector2i, error) {
	return div2i("Vector2i.Rem", v, o, lanes.RemInt[int32])
}

// DivScalar divides every component by s.
func (v Vector2i) DivScalar(s int32) (Vector2i, error) {
	if s == 0 {
		return Vector2i{}, scalarZeroError("Vector2i.DivScalar")
	}
	return div2i("Vector2i.DivScalar", v, Vector2iSplat(s), lanes.DivInt[int32])
}

// RemScalar returns the remainder of every component divided by s.
func (v Vector2i) RemScalar(s int32) (Vector2i, error) {
	if s == 0 {
		return Vector2i{}, scalarZeroError("Vector2i.RemScalar")
	}
	return div2i("Vector2i.RemScalar", v, Vector2iSplat(s), lanes.RemInt[int32])
}

// CoordMin returns the component-wise minimum of v and o.
func (v Vector2i) CoordMin(o Vector2i) Vector2i { return binary2i(v, o, lanes.Min[int32]) }

// CoordMax returns the component-wise maximum of v and o.
func (v Vector2i) CoordMax(o Vector2i) Vector2i { return binary2i(v, o, lanes.Max[int32]) }

// Clamp limits every component to [lo, hi] of the matching components.
func (v Vector2i) Clamp(lo, hi Vector2i) Vector2i {
	c, l, h := v.Components(), lo.Components(), hi.Components()
	lanes.Clamp(c[:], c[:], l[:], h[:])
	return vector2iOf(c)
}

// Abs returns the component-wise absolute value.
func (v Vector2i) Abs() Vector2i {
	c := v.Components()
	lanes.Abs(c[:], c[:])
	return vector2iOf(c)
}

// Sign returns -1, 0 or 1 per component.
func (v Vector2i) Sign() Vector2i {
	c := v.Components()
	lanes.Sign(c[:], c[:])
	return vector2iOf(c)
}

// Compare orders vectors lexicographically by X, then Y.
func (v Vector2i) Compare(o Vector2i) int {
	a, b := v.Components(), o.Components()
	return lanes.Compare(a[:], b[:])
}

// Less reports whether v sorts before o.
func (v Vector2i) Less(o Vector2i) bool { return v.Compare(o) < 0 }

// CompareVector2i is Compare in a form suitable for slices.SortFunc.
func CompareVector2i(a, b Vector2i) int { return a.Compare(b) }

// Get returns the component on axis a.
// It panics if a is not a declared Vector2Axis.
func (v Vector2i) Get(a Vector2Axis) int32 {
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
func (v *Vector2i) Set(a Vector2Axis, value int32) {
	switch a {
	case Vector2AxisX:
		v.X = value
	case Vector2AxisY:
		v.Y = value
	default:
		panic(invalidAxis(a))
	}
}

// MaxAxis returns the axis of the largest component.
func (v Vector2i) MaxAxis() Vector2Axis {
	c := v.Components()
	return Vector2Axis(lanes.ArgMax(c[:]))
}

// MinAxis returns the axis of the smallest component.
func (v Vector2i) MinAxis() Vector2Axis {
	c := v.Components()
	return Vector2Axis(lanes.ArgMin(c[:]))
}

// LengthSquared returns the squared length in int64. See Vector4i.LengthSquared.
func (v Vector2i) LengthSquared() int64 {
	c := v.Components()
	return lanes.SquaredNorm(c[:])
}

// Length returns the Euclidean length.
func (v Vector2i) Length() float64 {
	c := v.Components()
	return math.Sqrt(lanes.SquaredNormFloat(c[:]))
}

// IsZero reports whether all components are zero.
func (v Vector2i) IsZero() bool { return v == Vector2i{} }
