package gdmath

import (
	"math"

	"github.com/gogpu/gdmath/internal/lanes"
)

// Vector3i is a 3D vector with int32 components, used for 3D grid
// coordinates such as voxel or tile-map cells.
//
// ABI: the layout is the engine's Vector3i, three int32 in the order X, Y, Z
// (12 bytes, 4-byte aligned). Field changes break the ABI.
type Vector3i struct {
	X int32 `json:"x"`
	Y int32 `json:"y"`
	Z int32 `json:"z"`
}

var (
	// Vector3iZero is the vector with all components set to 0.
	Vector3iZero = Vector3i{}

	// Vector3iOne is the vector with all components set to 1.
	Vector3iOne = Vector3iSplat(1)
)

// NewVector3i returns a Vector3i with the given components.
func NewVector3i(x, y, z int32) Vector3i {
	return Vector3i{X: x, Y: y, Z: z}
}

// Vector3iSplat returns a Vector3i with all components set to v.
func Vector3iSplat(v int32) Vector3i {
	return Vector3i{X: v, Y: v, Z: v}
}

// Components returns the components in axis order.
func (v Vector3i) Components() [3]int32 {
	return [3]int32{v.X, v.Y, v.Z}
}

func vector3iOf(c [3]int32) Vector3i {
	return Vector3i{X: c[0], Y: c[1], Z: c[2]}
}

// binary3i applies a lanes kernel to v and o.
func binary3i(v, o Vector3i, kernel func(dst, a, b []int32)) Vector3i {
	a, b := v.Components(), o.Components()
	kernel(a[:], a[:], b[:])
	return vector3iOf(a)
}

// Add returns the component-wise sum. Overflow wraps around.
func (v Vector3i) Add(o Vector3i) Vector3i { return binary3i(v, o, lanes.Add[int32]) }

// Sub returns the component-wise difference. Overflow wraps around.
func (v Vector3i) Sub(o Vector3i) Vector3i { return binary3i(v, o, lanes.Sub[int32]) }

// Mul returns the component-wise product. Overflow wraps around.
func (v Vector3i) Mul(o Vector3i) Vector3i { return binary3i(v, o, lanes.Mul[int32]) }

// Neg returns the negated vector.
func (v Vector3i) Neg() Vector3i {
	return Vector3i{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// AddScalar adds s to every component.
func (v Vector3i) AddScalar(s int32) Vector3i { return v.Add(Vector3iSplat(s)) }

// SubScalar subtracts s from every component.
func (v Vector3i) SubScalar(s int32) Vector3i { return v.Sub(Vector3iSplat(s)) }

// MulScalar multiplies every component by s.
func (v Vector3i) MulScalar(s int32) Vector3i { return v.Mul(Vector3iSplat(s)) }

// div3i runs a checked division kernel, reporting faults against op.
func div3i(op string, v, o Vector3i, kernel func(dst, a, b []int32) (int, lanes.Fault)) (Vector3i, error) {
	a, b := v.Components(), o.Components()
	var r [3]int32
	if lane, f := kernel(r[:], a[:], b[:]); f != lanes.FaultNone {
		return Vector3i{}, faultError(op, lane, f)
	}
	return vector3iOf(r), nil
}

// Div returns the component-wise quotient truncated toward zero.
// It fails like Vector4i.Div.
func (v Vector3i) Div(o Vector3i) (Vector3i, error) {
	return div3i("Vector3i.Div", v, o, lanes.DivInt[int32])
}

// Rem returns the component-wise remainder, with the sign of v.
func (v Vector3i) Rem(o Vector3i) (Vector3i, error) {
	return div3i("Vector3i.Rem", v, o, lanes.RemInt[int32])
}

// DivScalar divides every component by s.
func (v Vector3i) DivScalar(s int32) (Vector3i, error) {
	if s == 0 {
		return Vector3i{}, scalarZeroError("Vector3i.DivScalar")
	}
	return div3i("Vector3i.DivScalar", v, Vector3iSplat(s), lanes.DivInt[int32])
}

// RemScalar returns the remainder of every component divided by s.
func (v Vector3i) RemScalar(s int32) (Vector3i, error) {
	if s == 0 {
		return Vector3i{}, scalarZeroError("Vector3i.RemScalar")
	}
	return div3i("Vector3i.RemScalar", v, Vector3iSplat(s), lanes.RemInt[int32])
}

// CoordMin returns the component-wise minimum of v and o.
func (v Vector3i) CoordMin(o Vector3i) Vector3i { return binary3i(v, o, lanes.Min[int32]) }

// CoordMax returns the component-wise maximum of v and o.
func (v Vector3i) CoordMax(o Vector3i) Vector3i { return binary3i(v, o, lanes.Max[int32]) }

// Clamp limits every component to [lo, hi] of the matching components.
func (v Vector3i) Clamp(lo, hi Vector3i) Vector3i {
	c, l, h := v.Components(), lo.Components(), hi.Components()
	lanes.Clamp(c[:], c[:], l[:], h[:])
	return vector3iOf(c)
}

// Abs returns the component-wise absolute value.
func (v Vector3i) Abs() Vector3i {
	c := v.Components()
	lanes.Abs(c[:], c[:])
	return vector3iOf(c)
}

// Sign returns -1, 0 or 1 per component.
func (v Vector3i) Sign() Vector3i {
	c := v.Components()
	lanes.Sign(c[:], c[:])
	return vector3iOf(c)
}

// Compare orders vectors lexicographically by X, then Y and Z.
func (v Vector3i) Compare(o Vector3i) int {
	a, b := v.Components(), o.Components()
	return lanes.Compare(a[:], b[:])
}

// Less reports whether v sorts before o.
func (v Vector3i) Less(o Vector3i) bool { return v.Compare(o) < 0 }

// CompareVector3i is Compare in a form suitable for slices.SortFunc.
func CompareVector3i(a, b Vector3i) int { return a.Compare(b) }

// Get returns the component on axis a.
// It panics if a is not a declared Vector3Axis.
func (v Vector3i) Get(a Vector3Axis) int32 {
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
func (v *Vector3i) Set(a Vector3Axis, value int32) {
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

// MaxAxis returns the axis of the largest component.
func (v Vector3i) MaxAxis() Vector3Axis {
	c := v.Components()
	return Vector3Axis(lanes.ArgMax(c[:]))
}

// MinAxis returns the axis of the smallest component.
func (v Vector3i) MinAxis() Vector3Axis {
	c := v.Components()
	return Vector3Axis(lanes.ArgMin(c[:]))
}

// LengthSquared returns the squared length in int64. See Vector4i.LengthSquared.
func (v Vector3i) LengthSquared() int64 {
	c := v.Components()
	return lanes.SquaredNorm(c[:])
}

// Length returns the Euclidean length.
func (v Vector3i) Length() float64 {
	c := v.Components()
	return math.Sqrt(lanes.SquaredNormFloat(c[:]))
}

// IsZero reports whether all components are zero.
func (v Vector3i) IsZero() bool { return v == Vector3i{} }
