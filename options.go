package gdmath

import "github.com/gogpu/gdmath/internal/codec"

// DecodeOption configures DecodeJSON.
// Use functional options to relax the strict default decoding.
//
// Example:
//
//	// Strict decoding, same as json.Unmarshal into a Vector4i
//	v, err := gdmath.DecodeJSON[gdmath.Vector4i](data)
//
//	// Accept documents that carry extra keys
//	v, err := gdmath.DecodeJSON[gdmath.Vector4i](data, gdmath.WithUnknownKeys(true))
type DecodeOption func(*decodeOptions)

// decodeOptions holds optional configuration for DecodeJSON.
type decodeOptions struct {
	allowUnknownKeys bool
}

// defaultDecodeOptions returns the options used by UnmarshalJSON.
func defaultDecodeOptions() decodeOptions {
	return decodeOptions{
		allowUnknownKeys: false,
	}
}

func (o decodeOptions) codec() codec.Options {
	return codec.Options{AllowUnknownKeys: o.allowUnknownKeys}
}

// WithUnknownKeys controls whether keys other than the component names are
// tolerated. Missing components and non-numeric values are always rejected.
func WithUnknownKeys(allow bool) DecodeOption {
	return func(o *decodeOptions) {
		o.allowUnknownKeys = allow
	}
}
