package gdmath

import (
	"errors"
	"testing"
)

func TestVector2iArithmetic(t *testing.T) {
	a := NewVector2i(3, -4)
	b := NewVector2i(-1, 2)

	tests := []struct {
		name string
		got  Vector2i
		want Vector2i
	}{
		{"Add", a.Add(b), NewVector2i(2, -2)},
		{"Sub", a.Sub(b), NewVector2i(4, -6)},
		{"Mul", a.Mul(b), NewVector2i(-3, -8)},
		{"AddScalar", a.AddScalar(1), NewVector2i(4, -3)},
		{"SubScalar", a.SubScalar(1), NewVector2i(2, -5)},
		{"CoordMin", a.CoordMin(b), NewVector2i(-1, -4)},
		{"CoordMax", a.CoordMax(b), NewVector2i(3, 2)},
		{"Abs", a.Abs(), NewVector2i(3, 4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestVector2iBasics(t *testing.T) {
	v := NewVector2i(3, -4)
	if v.LengthSquared() != 25 || v.Length() != 5 {
		t.Errorf("length = %d, %v", v.LengthSquared(), v.Length())
	}
	if v.MaxAxis() != Vector2AxisX || v.MinAxis() != Vector2AxisY {
		t.Errorf("MaxAxis, MinAxis = %v, %v", v.MaxAxis(), v.MinAxis())
	}
	v.Set(Vector2AxisY, 10)
	if v.Get(Vector2AxisY) != 10 {
		t.Errorf("Get(Y) = %d", v.Get(Vector2AxisY))
	}
	if _, err := v.Div(NewVector2i(0, 1)); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("Div by zero error = %v", err)
	}
	if q, err := v.DivScalar(3); err != nil || q != NewVector2i(1, 3) {
		t.Errorf("DivScalar(3) = %v, %v", q, err)
	}
	if !NewVector2i(0, 5).Less(NewVector2i(1, 0)) {
		t.Error("(0, 5) should sort before (1, 0)")
	}
}
