package gdmath

import (
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/gdmath/internal/lanes"
)

// Fixed returns v as a 26.6 fixed-point point, as used by font rasterizers.
// Components outside ±2^25 do not fit in 26.6 and wrap around.
func (v Vector2i) Fixed() fixed.Point26_6 {
	return fixed.P(int(v.X), int(v.Y))
}

// Vector2iFromFixed converts a 26.6 fixed-point point to integer coordinates,
// truncating fractional pixels toward zero like the float conversions.
func Vector2iFromFixed(p fixed.Point26_6) Vector2i {
	return Vector2i{X: int32(p.X / 64), Y: int32(p.Y / 64)}
}

// Fixed returns v as a 26.6 fixed-point point, truncating sub-1/64 fractions
// toward zero.
func (v Vector2) Fixed() fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(lanes.TruncInt32(v.X * 64)),
		Y: fixed.Int26_6(lanes.TruncInt32(v.Y * 64)),
	}
}

// Vector2FromFixed converts a 26.6 fixed-point point to a Vector2.
func Vector2FromFixed(p fixed.Point26_6) Vector2 {
	return Vector2{X: Real(p.X) / 64, Y: Real(p.Y) / 64}
}
