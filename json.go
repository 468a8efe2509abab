package gdmath

import (
	"github.com/goccy/go-json"

	"github.com/gogpu/gdmath/internal/codec"
)

// JSON form: an object with the lowercase component names as keys, written in
// axis order, e.g. {"x":1,"y":2,"z":3,"w":4}. Decoding is order-insensitive
// but strict: every component must be present, values must be numbers (and
// integers in int32 range for the integer vectors), and unknown keys are
// rejected. Failures are *DecodeError values and leave the receiver unchanged.

// The plain types share field layout and tags but have no methods, so
// marshaling them does not recurse into MarshalJSON.
type (
	plainVector2i Vector2i
	plainVector3i Vector3i
	plainVector4i Vector4i
	plainVector2  Vector2
	plainVector3  Vector3
	plainVector4  Vector4
)

// MarshalJSON implements json.Marshaler.
func (v Vector4i) MarshalJSON() ([]byte, error) { return json.Marshal(plainVector4i(v)) }

// MarshalJSON implements json.Marshaler.
func (v Vector3i) MarshalJSON() ([]byte, error) { return json.Marshal(plainVector3i(v)) }

// MarshalJSON implements json.Marshaler.
func (v Vector2i) MarshalJSON() ([]byte, error) { return json.Marshal(plainVector2i(v)) }

// MarshalJSON implements json.Marshaler. JSON has no NaN or infinity, so a
// vector with such a component fails with ErrNonFinite.
func (v Vector4) MarshalJSON() ([]byte, error) {
	if !v.IsFinite() {
		return nil, ErrNonFinite
	}
	return json.Marshal(plainVector4(v))
}

// MarshalJSON implements json.Marshaler. See Vector4.MarshalJSON.
func (v Vector3) MarshalJSON() ([]byte, error) {
	if !v.IsFinite() {
		return nil, ErrNonFinite
	}
	return json.Marshal(plainVector3(v))
}

// MarshalJSON implements json.Marshaler. See Vector4.MarshalJSON.
func (v Vector2) MarshalJSON() ([]byte, error) {
	if !v.IsFinite() {
		return nil, ErrNonFinite
	}
	return json.Marshal(plainVector2(v))
}

func (v *Vector4i) decodeJSON(data []byte, o codec.Options) error {
	var c [4]int32
	if err := codec.DecodeInt32(data, componentNames[:4], c[:], o); err != nil {
		return err
	}
	*v = vector4iOf(c)
	return nil
}

func (v *Vector3i) decodeJSON(data []byte, o codec.Options) error {
	var c [3]int32
	if err := codec.DecodeInt32(data, componentNames[:3], c[:], o); err != nil {
		return err
	}
	*v = vector3iOf(c)
	return nil
}

func (v *Vector2i) decodeJSON(data []byte, o codec.Options) error {
	var c [2]int32
	if err := codec.DecodeInt32(data, componentNames[:2], c[:], o); err != nil {
		return err
	}
	*v = vector2iOf(c)
	return nil
}

func (v *Vector4) decodeJSON(data []byte, o codec.Options) error {
	var c [4]Real
	if err := codec.DecodeFloat(data, componentNames[:4], c[:], o); err != nil {
		return err
	}
	*v = vector4Of(c)
	return nil
}

func (v *Vector3) decodeJSON(data []byte, o codec.Options) error {
	var c [3]Real
	if err := codec.DecodeFloat(data, componentNames[:3], c[:], o); err != nil {
		return err
	}
	*v = vector3Of(c)
	return nil
}

func (v *Vector2) decodeJSON(data []byte, o codec.Options) error {
	var c [2]Real
	if err := codec.DecodeFloat(data, componentNames[:2], c[:], o); err != nil {
		return err
	}
	*v = vector2Of(c)
	return nil
}

// UnmarshalJSON implements json.Unmarshaler with strict decoding.
func (v *Vector4i) UnmarshalJSON(data []byte) error {
	return v.decodeJSON(data, defaultDecodeOptions().codec())
}

// UnmarshalJSON implements json.Unmarshaler with strict decoding.
func (v *Vector3i) UnmarshalJSON(data []byte) error {
	return v.decodeJSON(data, defaultDecodeOptions().codec())
}

// UnmarshalJSON implements json.Unmarshaler with strict decoding.
func (v *Vector2i) UnmarshalJSON(data []byte) error {
	return v.decodeJSON(data, defaultDecodeOptions().codec())
}

// UnmarshalJSON implements json.Unmarshaler with strict decoding.
func (v *Vector4) UnmarshalJSON(data []byte) error {
	return v.decodeJSON(data, defaultDecodeOptions().codec())
}

// UnmarshalJSON implements json.Unmarshaler with strict decoding.
func (v *Vector3) UnmarshalJSON(data []byte) error {
	return v.decodeJSON(data, defaultDecodeOptions().codec())
}

// UnmarshalJSON implements json.Unmarshaler with strict decoding.
func (v *Vector2) UnmarshalJSON(data []byte) error {
	return v.decodeJSON(data, defaultDecodeOptions().codec())
}

// jsonDecoder is implemented by pointers to every vector type.
type jsonDecoder[T any] interface {
	*T
	decodeJSON(data []byte, o codec.Options) error
}

// DecodeJSON decodes one vector from its JSON mapping form.
// Without options it behaves exactly like json.Unmarshal.
func DecodeJSON[T Vector, PT jsonDecoder[T]](data []byte, opts ...DecodeOption) (T, error) {
	o := defaultDecodeOptions()
	for _, opt := range opts {
		opt(&o)
	}
	var v T
	if err := PT(&v).decodeJSON(data, o.codec()); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}
