package gdmath

import (
	"encoding/binary"
	"math"
)

// Binary form: the native memory layout, components in axis order in host
// byte order. The bytes equal what the engine reads through a pointer to the
// value, so they can be copied straight into engine-owned buffers.

func appendLanes32(b []byte, c []int32) []byte {
	for _, x := range c {
		b = binary.NativeEndian.AppendUint32(b, uint32(x))
	}
	return b
}

func readLanes32(b []byte, dst []int32) error {
	if len(b) != 4*len(dst) {
		return ErrLayoutSize
	}
	for i := range dst {
		dst[i] = int32(binary.NativeEndian.Uint32(b[4*i:]))
	}
	return nil
}

func appendRealBits(b []byte, c []Real) []byte {
	for _, x := range c {
		if realBits == 32 {
			b = binary.NativeEndian.AppendUint32(b, math.Float32bits(float32(x)))
		} else {
			b = binary.NativeEndian.AppendUint64(b, math.Float64bits(float64(x)))
		}
	}
	return b
}

func readRealBits(b []byte, dst []Real) error {
	size := realBits / 8
	if len(b) != size*len(dst) {
		return ErrLayoutSize
	}
	for i := range dst {
		if realBits == 32 {
			dst[i] = Real(math.Float32frombits(binary.NativeEndian.Uint32(b[size*i:])))
		} else {
			dst[i] = Real(math.Float64frombits(binary.NativeEndian.Uint64(b[size*i:])))
		}
	}
	return nil
}

// AppendBinary implements encoding.BinaryAppender.
func (v Vector4i) AppendBinary(b []byte) ([]byte, error) {
	c := v.Components()
	return appendLanes32(b, c[:]), nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (v Vector4i) MarshalBinary() ([]byte, error) {
	return v.AppendBinary(make([]byte, 0, 16))
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. b must be exactly
// 16 bytes, otherwise ErrLayoutSize is returned and v is unchanged.
func (v *Vector4i) UnmarshalBinary(b []byte) error {
	var c [4]int32
	if err := readLanes32(b, c[:]); err != nil {
		return err
	}
	*v = vector4iOf(c)
	return nil
}

// AppendBinary implements encoding.BinaryAppender.
func (v Vector3i) AppendBinary(b []byte) ([]byte, error) {
	c := v.Components()
	return appendLanes32(b, c[:]), nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (v Vector3i) MarshalBinary() ([]byte, error) {
	return v.AppendBinary(make([]byte, 0, 12))
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. b must be 12 bytes.
func (v *Vector3i) UnmarshalBinary(b []byte) error {
	var c [3]int32
	if err := readLanes32(b, c[:]); err != nil {
		return err
	}
	*v = vector3iOf(c)
	return nil
}

// AppendBinary implements encoding.BinaryAppender.
func (v Vector2i) AppendBinary(b []byte) ([]byte, error) {
	c := v.Components()
	return appendLanes32(b, c[:]), nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (v Vector2i) MarshalBinary() ([]byte, error) {
	return v.AppendBinary(make([]byte, 0, 8))
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. b must be 8 bytes.
func (v *Vector2i) UnmarshalBinary(b []byte) error {
	var c [2]int32
	if err := readLanes32(b, c[:]); err != nil {
		return err
	}
	*v = vector2iOf(c)
	return nil
}

// AppendBinary implements encoding.BinaryAppender.
func (v Vector4) AppendBinary(b []byte) ([]byte, error) {
	c := v.Components()
	return appendRealBits(b, c[:]), nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (v Vector4) MarshalBinary() ([]byte, error) {
	return v.AppendBinary(make([]byte, 0, 4*realBits/8))
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (v *Vector4) UnmarshalBinary(b []byte) error {
	var c [4]Real
	if err := readRealBits(b, c[:]); err != nil {
		return err
	}
	*v = vector4Of(c)
	return nil
}

// AppendBinary implements encoding.BinaryAppender.
func (v Vector3) AppendBinary(b []byte) ([]byte, error) {
	c := v.Components()
	return appendRealBits(b, c[:]), nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (v Vector3) MarshalBinary() ([]byte, error) {
	return v.AppendBinary(make([]byte, 0, 3*realBits/8))
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (v *Vector3) UnmarshalBinary(b []byte) error {
	var c [3]Real
	if err := readRealBits(b, c[:]); err != nil {
		return err
	}
	*v = vector3Of(c)
	return nil
}

// AppendBinary implements encoding.BinaryAppender.
func (v Vector2) AppendBinary(b []byte) ([]byte, error) {
	c := v.Components()
	return appendRealBits(b, c[:]), nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (v Vector2) MarshalBinary() ([]byte, error) {
	return v.AppendBinary(make([]byte, 0, 2*realBits/8))
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (v *Vector2) UnmarshalBinary(b []byte) error {
	var c [2]Real
	if err := readRealBits(b, c[:]); err != nil {
		return err
	}
	*v = vector2Of(c)
	return nil
}

// AppendBinary implements encoding.BinaryAppender for the int32 tag.
func (a Vector4Axis) AppendBinary(b []byte) ([]byte, error) {
	return binary.NativeEndian.AppendUint32(b, uint32(a)), nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (a Vector4Axis) MarshalBinary() ([]byte, error) {
	return a.AppendBinary(make([]byte, 0, 4))
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. A tag outside the
// declared variants is ErrInvalidAxis.
func (a *Vector4Axis) UnmarshalBinary(b []byte) error {
	if len(b) != 4 {
		return ErrLayoutSize
	}
	v := Vector4Axis(int32(binary.NativeEndian.Uint32(b)))
	if !v.Valid() {
		return ErrInvalidAxis
	}
	*a = v
	return nil
}
