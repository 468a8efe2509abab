package wide

import "github.com/gogpu/gdmath/internal/lanes"

// I32x4 represents 4 int32 lanes for SIMD-style operations.
// Designed for Go compiler auto-vectorization with fixed-size arrays.
// It has the bit pattern of a 128-bit integer vector register and of the
// engine's Vector4i, but it is a distinct type used only for computation.
type I32x4 [4]int32

// SplatI32 creates I32x4 with all lanes set to n.
func SplatI32(n int32) I32x4 {
	return I32x4{n, n, n, n}
}

// Add performs lane-wise addition with two's complement wraparound.
func (v I32x4) Add(other I32x4) I32x4 {
	var result I32x4
	for i := range v {
		result[i] = v[i] + other[i]
	}
	return result
}

// Sub performs lane-wise subtraction with two's complement wraparound.
func (v I32x4) Sub(other I32x4) I32x4 {
	var result I32x4
	for i := range v {
		result[i] = v[i] - other[i]
	}
	return result
}

// Mul performs lane-wise multiplication, keeping the low 32 bits.
func (v I32x4) Mul(other I32x4) I32x4 {
	var result I32x4
	for i := range v {
		result[i] = v[i] * other[i]
	}
	return result
}

// Neg negates every lane. MinInt32 maps to itself.
func (v I32x4) Neg() I32x4 {
	var result I32x4
	for i := range v {
		result[i] = -v[i]
	}
	return result
}

// Min performs lane-wise minimum.
func (v I32x4) Min(other I32x4) I32x4 {
	var result I32x4
	for i := range v {
		result[i] = min(v[i], other[i])
	}
	return result
}

// Max performs lane-wise maximum.
func (v I32x4) Max(other I32x4) I32x4 {
	var result I32x4
	for i := range v {
		result[i] = max(v[i], other[i])
	}
	return result
}

// Div performs lane-wise truncated division.
//
// There is no vector instruction for integer division, so the lanes are
// checked and divided one at a time. On a fault the returned vector is zero
// and lane is the first offending lane; see lanes.DivInt.
func (v I32x4) Div(other I32x4) (result I32x4, lane int, fault lanes.Fault) {
	lane, fault = lanes.DivInt(result[:], v[:], other[:])
	return result, lane, fault
}

// Rem performs lane-wise remainder with the sign of the dividend.
func (v I32x4) Rem(other I32x4) (result I32x4, lane int, fault lanes.Fault) {
	lane, fault = lanes.RemInt(result[:], v[:], other[:])
	return result, lane, fault
}

// Sum returns the horizontal sum of all lanes without overflow.
func (v I32x4) Sum() int64 {
	return int64(v[0]) + int64(v[1]) + int64(v[2]) + int64(v[3])
}

// Eq reports whether all lanes are equal.
func (v I32x4) Eq(other I32x4) bool {
	return v == other
}
