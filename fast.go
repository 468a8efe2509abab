package gdmath

import "github.com/gogpu/gdmath/internal/wide"

// The SIMD mapping pair. Vector4i keeps the engine's named-field layout;
// batch arithmetic runs on wide.I32x4. Both have the same bit pattern, so the
// conversion is a component copy that the compiler reduces to a 16-byte move.

// toFast copies X, Y, Z, W into lanes 0..3.
func toFast(v Vector4i) wide.I32x4 {
	return wide.I32x4{v.X, v.Y, v.Z, v.W}
}

// fromFast reads lanes 0..3 back into X, Y, Z, W.
func fromFast(l wide.I32x4) Vector4i {
	return Vector4i{X: l[0], Y: l[1], Z: l[2], W: l[3]}
}
