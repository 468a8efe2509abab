package gdmath

import (
	"slices"

	"github.com/gogpu/gdmath/internal/wide"
)

// Slice helpers for bulk Vector4i work. Each element is moved into a
// wide.I32x4 and back, so the loops stay on the lane path.

// AddVector4iSlices stores a[i]+b[i] into dst[i]. All three slices must have
// the same length, otherwise ErrLengthMismatch is returned and dst is not
// written. dst may alias a or b.
func AddVector4iSlices(dst, a, b []Vector4i) error {
	if len(a) != len(dst) || len(b) != len(dst) {
		return ErrLengthMismatch
	}
	for i := range dst {
		dst[i] = fromFast(toFast(a[i]).Add(toFast(b[i])))
	}
	return nil
}

// ScaleVector4iSlice multiplies every element of vs by s in place.
func ScaleVector4iSlice(vs []Vector4i, s int32) {
	k := wide.SplatI32(s)
	for i := range vs {
		vs[i] = fromFast(toFast(vs[i]).Mul(k))
	}
}

// SumVector4i returns the component-wise sum of vs. Overflow wraps around.
// The sum of an empty slice is Vector4iZero.
func SumVector4i(vs []Vector4i) Vector4i {
	var acc wide.I32x4
	for _, v := range vs {
		acc = acc.Add(toFast(v))
	}
	return fromFast(acc)
}

// BoundsVector4i returns the component-wise minimum and maximum of vs. ok is
// false, and lo and hi are zero, when vs is empty.
func BoundsVector4i(vs []Vector4i) (lo, hi Vector4i, ok bool) {
	if len(vs) == 0 {
		return Vector4i{}, Vector4i{}, false
	}
	l, h := toFast(vs[0]), toFast(vs[0])
	for _, v := range vs[1:] {
		f := toFast(v)
		l = l.Min(f)
		h = h.Max(f)
	}
	return fromFast(l), fromFast(h), true
}

// SortVector4i sorts vs in place in the order defined by Vector4i.Compare.
func SortVector4i(vs []Vector4i) {
	slices.SortFunc(vs, CompareVector4i)
}
