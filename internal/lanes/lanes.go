// Package lanes implements the elementwise kernels shared by every vector
// type in gdmath.
//
// Kernels operate on slices so that a single implementation serves two, three
// and four component vectors of any supported scalar type. Callers slice a
// fixed-size array (v[:]) which keeps the operands on the stack.
//
// All kernels except Compare, Equal, ArgMax and ArgMin write into dst.
// dst may alias any operand. The operands must be at least len(dst) long.
package lanes

import (
	"cmp"
	"math"
)

// Int is the constraint for integer lanes.
type Int interface {
	~int32
}

// Float is the constraint for floating-point lanes.
type Float interface {
	~float32 | ~float64
}

// Scalar is the constraint for all lane types.
type Scalar interface {
	Int | Float
}

// Fault identifies why a checked integer kernel refused to run.
type Fault uint8

const (
	// FaultNone means the kernel ran.
	FaultNone Fault = iota

	// FaultDivideByZero means a divisor lane was zero.
	FaultDivideByZero

	// FaultOverflow means a quotient is not representable (MinInt32 / -1).
	FaultOverflow
)

// Splat sets every lane of dst to v.
func Splat[T Scalar](dst []T, v T) {
	for i := range dst {
		dst[i] = v
	}
}

// Add computes dst[i] = a[i] + b[i].
func Add[T Scalar](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

// Sub computes dst[i] = a[i] - b[i].
func Sub[T Scalar](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

// Mul computes dst[i] = a[i] * b[i].
func Mul[T Scalar](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

// Neg computes dst[i] = -a[i].
func Neg[T Scalar](dst, a []T) {
	for i := range dst {
		dst[i] = -a[i]
	}
}

// Min computes dst[i] = min(a[i], b[i]).
func Min[T Scalar](dst, a, b []T) {
	for i := range dst {
		dst[i] = min(a[i], b[i])
	}
}

// Max computes dst[i] = max(a[i], b[i]).
func Max[T Scalar](dst, a, b []T) {
	for i := range dst {
		dst[i] = max(a[i], b[i])
	}
}

// Clamp computes dst[i] = min(max(a[i], lo[i]), hi[i]).
// If lo[i] > hi[i] the result is hi[i].
func Clamp[T Scalar](dst, a, lo, hi []T) {
	for i := range dst {
		dst[i] = min(max(a[i], lo[i]), hi[i])
	}
}

// Abs computes the absolute value of each lane.
// For integers the most negative value maps to itself.
func Abs[T Scalar](dst, a []T) {
	for i := range dst {
		if a[i] < 0 {
			dst[i] = -a[i]
		} else {
			dst[i] = a[i]
		}
	}
}

// Sign sets each lane to -1, 0 or 1 according to the sign of a[i].
// NaN lanes become 0.
func Sign[T Scalar](dst, a []T) {
	for i := range dst {
		switch {
		case a[i] > 0:
			dst[i] = 1
		case a[i] < 0:
			dst[i] = -1
		default:
			dst[i] = 0
		}
	}
}

// Compare orders a and b lexicographically: the first lane decides, ties
// fall through to the next lane. NaN sorts before every other value, which
// keeps the order total for float lanes.
func Compare[T Scalar](a, b []T) int {
	for i := range a {
		if c := cmp.Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return 0
}

// Equal reports whether every lane of a equals the same lane of b.
func Equal[T Scalar](a, b []T) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// ArgMax returns the index of the first largest lane.
func ArgMax[T Scalar](a []T) int {
	best := 0
	for i := 1; i < len(a); i++ {
		if a[i] > a[best] {
			best = i
		}
	}
	return best
}

// ArgMin returns the index of the first smallest lane.
func ArgMin[T Scalar](a []T) int {
	best := 0
	for i := 1; i < len(a); i++ {
		if a[i] < a[best] {
			best = i
		}
	}
	return best
}

// Dot returns the sum of a[i] * b[i] accumulated in float64.
func Dot[T Float](a, b []T) float64 {
	var sum float64
	for i := range a {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}

// SquaredNorm returns the sum of squares of integer lanes in int64. Each
// square is exact; the sum wraps once it exceeds math.MaxInt64, which takes
// at least two lanes near ±2^31.
func SquaredNorm[T Int](a []T) int64 {
	var sum int64
	for i := range a {
		sum += int64(a[i]) * int64(a[i])
	}
	return sum
}

// SquaredNormFloat is SquaredNorm accumulated in float64. It never wraps.
func SquaredNormFloat[T Int](a []T) float64 {
	var sum float64
	for i := range a {
		f := float64(a[i])
		sum += f * f
	}
	return sum
}

// checkDiv returns the first lane for which a[i] / b[i] is undefined.
func checkDiv[T Int](a, b []T, overflow bool) (int, Fault) {
	for i := range b {
		if b[i] == 0 {
			return i, FaultDivideByZero
		}
	}
	if overflow {
		for i := range b {
			if b[i] == -1 && a[i] == T(math.MinInt32) {
				return i, FaultOverflow
			}
		}
	}
	return -1, FaultNone
}

// DivInt computes dst[i] = a[i] / b[i] truncated toward zero.
//
// If any divisor lane is zero, or a quotient overflows, dst is left unchanged
// and the first offending lane is returned with the fault. Otherwise DivInt
// returns (-1, FaultNone). Zero divisors are reported before overflow.
func DivInt[T Int](dst, a, b []T) (int, Fault) {
	if lane, f := checkDiv(a[:len(dst)], b[:len(dst)], true); f != FaultNone {
		return lane, f
	}
	for i := range dst {
		dst[i] = a[i] / b[i]
	}
	return -1, FaultNone
}

// RemInt computes dst[i] = a[i] % b[i]. The result has the sign of a[i].
//
// Only zero divisors fault: MinInt32 % -1 is exactly 0.
func RemInt[T Int](dst, a, b []T) (int, Fault) {
	if lane, f := checkDiv(a[:len(dst)], b[:len(dst)], false); f != FaultNone {
		return lane, f
	}
	for i := range dst {
		dst[i] = a[i] % b[i]
	}
	return -1, FaultNone
}

// DivFloat computes dst[i] = a[i] / b[i] with IEEE 754 semantics.
func DivFloat[T Float](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] / b[i]
	}
}

// TruncInt32 converts f to int32, discarding the fractional part.
//
// Values beyond the int32 range saturate to math.MinInt32 or math.MaxInt32
// and NaN converts to 0. Go leaves out-of-range float conversions
// implementation-defined, so they are never passed to int32().
func TruncInt32[T Float](f T) int32 {
	switch {
	case math.IsNaN(float64(f)):
		return 0
	case f >= 2147483648:
		return math.MaxInt32
	case f <= -2147483648:
		return math.MinInt32
	}
	return int32(f)
}

// Trunc applies TruncInt32 to every lane.
func Trunc[T Float](dst []int32, a []T) {
	for i := range dst {
		dst[i] = TruncInt32(a[i])
	}
}
