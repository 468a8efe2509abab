//go:build !gdmath_double

package gdmath

import "github.com/gogpu/gputypes"

// Real is the component type of the floating-point vectors.
//
// It is float32 unless the module is built with the gdmath_double tag, which
// matches an engine compiled with precision=double.
type Real = float32

const realBits = 32

// realVertexFormats maps a component count to the GPU attribute format that
// reads a float vector's bytes.
var realVertexFormats = [...]gputypes.VertexFormat{
	2: gputypes.VertexFormatFloat32x2,
	3: gputypes.VertexFormatFloat32x3,
	4: gputypes.VertexFormatFloat32x4,
}
