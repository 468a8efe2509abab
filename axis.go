package gdmath

import "strconv"

// Axis enumerations mirror the engine's Vector2.Axis, Vector3.Axis and
// Vector4.Axis. Each is an int32 so that a pointer to one is a valid engine
// enum pointer; changing the underlying type breaks the ABI.

// Vector2Axis enumerates the axes of Vector2 and Vector2i.
type Vector2Axis int32

// Vector2 axes.
const (
	Vector2AxisX Vector2Axis = iota
	Vector2AxisY
)

// Vector3Axis enumerates the axes of Vector3 and Vector3i.
type Vector3Axis int32

// Vector3 axes.
const (
	Vector3AxisX Vector3Axis = iota
	Vector3AxisY
	Vector3AxisZ
)

// Vector4Axis enumerates the axes of Vector4 and Vector4i.
type Vector4Axis int32

// Vector4 axes.
const (
	Vector4AxisX Vector4Axis = iota
	Vector4AxisY
	Vector4AxisZ
	Vector4AxisW
)

var axisNames = [...]string{"X", "Y", "Z", "W"}

func axisString(kind string, a, n int32) string {
	if a >= 0 && a < n {
		return axisNames[a]
	}
	return kind + "(" + strconv.Itoa(int(a)) + ")"
}

// axisOf validates i as an index below n.
func axisOf(i, n int) (int32, error) {
	if i < 0 || i >= n {
		return 0, ErrInvalidAxis
	}
	return int32(i), nil
}

func invalidAxis(a interface{ String() string }) string {
	return "gdmath: invalid " + a.String()
}

// Valid reports whether a is a declared Vector2Axis.
func (a Vector2Axis) Valid() bool { return a >= Vector2AxisX && a <= Vector2AxisY }

// Valid reports whether a is a declared Vector3Axis.
func (a Vector3Axis) Valid() bool { return a >= Vector3AxisX && a <= Vector3AxisZ }

// Valid reports whether a is a declared Vector4Axis.
func (a Vector4Axis) Valid() bool { return a >= Vector4AxisX && a <= Vector4AxisW }

// String returns "X" or "Y", or "Vector2Axis(n)" for undeclared values.
func (a Vector2Axis) String() string { return axisString("Vector2Axis", int32(a), 2) }

// String returns "X", "Y" or "Z", or "Vector3Axis(n)" for undeclared values.
func (a Vector3Axis) String() string { return axisString("Vector3Axis", int32(a), 3) }

// String returns "X", "Y", "Z" or "W", or "Vector4Axis(n)" for undeclared values.
func (a Vector4Axis) String() string { return axisString("Vector4Axis", int32(a), 4) }

// Vector2AxisOf returns the axis with index i, or ErrInvalidAxis.
func Vector2AxisOf(i int) (Vector2Axis, error) {
	a, err := axisOf(i, 2)
	return Vector2Axis(a), err
}

// Vector3AxisOf returns the axis with index i, or ErrInvalidAxis.
func Vector3AxisOf(i int) (Vector3Axis, error) {
	a, err := axisOf(i, 3)
	return Vector3Axis(a), err
}

// Vector4AxisOf returns the axis with index i, or ErrInvalidAxis.
func Vector4AxisOf(i int) (Vector4Axis, error) {
	a, err := axisOf(i, 4)
	return Vector4Axis(a), err
}

// Vector2Axes returns every Vector2Axis in declaration order.
func Vector2Axes() [2]Vector2Axis { return [2]Vector2Axis{Vector2AxisX, Vector2AxisY} }

// Vector3Axes returns every Vector3Axis in declaration order.
func Vector3Axes() [3]Vector3Axis {
	return [3]Vector3Axis{Vector3AxisX, Vector3AxisY, Vector3AxisZ}
}

// Vector4Axes returns every Vector4Axis in declaration order.
func Vector4Axes() [4]Vector4Axis {
	return [4]Vector4Axis{Vector4AxisX, Vector4AxisY, Vector4AxisZ, Vector4AxisW}
}
