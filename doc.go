// Package gdmath provides the engine's small fixed-size vector value types for Go.
//
// # Overview
//
// gdmath mirrors the engine's built-in vector types with identical memory
// layout, so values can be passed to and from the engine by raw pointer
// without conversion. The central type is Vector4i, a 4D vector of int32
// components used for 4D grid coordinates and sets of four integers.
//
// # Quick Start
//
//	import "github.com/gogpu/gdmath"
//
//	a := gdmath.NewVector4i(1, 5, 3, 0)
//	b := gdmath.NewVector4i(4, 2, 3, -1)
//
//	a.CoordMin(b)                // (1, 2, 3, -1)
//	a.Get(gdmath.Vector4AxisY)   // 5
//	q, err := a.DivScalar(0)     // err wraps gdmath.ErrDivisionByZero
//
// # Types
//
//   - Vector2i, Vector3i, Vector4i: int32 components, always 32 bits
//   - Vector2, Vector3, Vector4: Real components (float32, or float64 with
//     the gdmath_double build tag)
//   - Vector2Axis, Vector3Axis, Vector4Axis: int32 axis identifiers
//
// All vectors are plain values. They are safe to copy and to read from any
// number of goroutines; mutation through Set needs external synchronization
// like any other Go value.
//
// # Integer Arithmetic
//
// Addition, subtraction and multiplication wrap around on overflow. Division
// and remainder never panic: a zero divisor returns an *ArithmeticError
// wrapping ErrDivisionByZero, and math.MinInt32 / -1 returns
// ErrDivisionOverflow.
//
// Converting a float vector to an integer vector truncates toward zero and
// saturates out-of-range components to math.MinInt32 or math.MaxInt32; NaN
// becomes 0.
//
// # Serialization
//
// Vectors encode to JSON as {"x":1,"y":2,"z":3,"w":4}. Decoding is strict and
// reports *DecodeError values; DecodeJSON accepts options to relax it. The
// binary form is the native layout in host byte order.
//
// # Engine Interop
//
// Package ffi converts between engine type pointers and gdmath values.
// NativeLayout reports the layout size and the matching GPU vertex format.
package gdmath

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0-alpha.1"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0

	// VersionPrerelease is the prerelease identifier
	VersionPrerelease = "alpha.1"
)
