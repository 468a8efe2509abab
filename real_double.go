//go:build gdmath_double

package gdmath

import "github.com/gogpu/gputypes"

// Real is the component type of the floating-point vectors.
//
// The gdmath_double build tag selects float64, matching an engine compiled
// with precision=double.
type Real = float64

const realBits = 64

// WebGPU has no 64-bit vertex formats, so double builds report the zero
// VertexFormat for float vectors.
var realVertexFormats [5]gputypes.VertexFormat
