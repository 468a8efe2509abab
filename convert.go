package gdmath

import "github.com/gogpu/gdmath/internal/lanes"

// Float to integer conversions truncate toward zero: the fractional part is
// discarded, so 1.9 becomes 1 and -1.9 becomes -1. The conversion is lossy
// and never fails.
//
// Values whose magnitude exceeds the int32 range saturate to math.MinInt32 or
// math.MaxInt32, and NaN becomes 0. This is a gdmath guarantee; a plain Go
// int32() conversion of such values is implementation-defined.

// Vector4iFromVector4 converts v to a Vector4i, truncating each component.
func Vector4iFromVector4(v Vector4) Vector4i {
	c := v.Components()
	var r [4]int32
	lanes.Trunc(r[:], c[:])
	return vector4iOf(r)
}

// Vector3iFromVector3 converts v to a Vector3i, truncating each component.
func Vector3iFromVector3(v Vector3) Vector3i {
	c := v.Components()
	var r [3]int32
	lanes.Trunc(r[:], c[:])
	return vector3iOf(r)
}

// Vector2iFromVector2 converts v to a Vector2i, truncating each component.
func Vector2iFromVector2(v Vector2) Vector2i {
	c := v.Components()
	var r [2]int32
	lanes.Trunc(r[:], c[:])
	return vector2iOf(r)
}
