package gdmath

import (
	"math"
	"testing"
)

func TestVector4iFromVector4(t *testing.T) {
	nan := Real(math.NaN())
	inf := Real(math.Inf(1))

	tests := []struct {
		name string
		in   Vector4
		want Vector4i
	}{
		{"truncates toward zero", NewVector4(1.9, -1.9, 0.5, -0.5), NewVector4i(1, -1, 0, 0)},
		{"integral", NewVector4(3, -4, 0, 100), NewVector4i(3, -4, 0, 100)},
		{"saturates high", NewVector4(inf, 1e20, 0, 0), NewVector4i(math.MaxInt32, math.MaxInt32, 0, 0)},
		{"saturates low", NewVector4(-inf, -1e20, 0, 0), NewVector4i(math.MinInt32, math.MinInt32, 0, 0)},
		{"NaN is zero", NewVector4(nan, 1, nan, -1), NewVector4i(0, 1, 0, -1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Vector4iFromVector4(tt.in); got != tt.want {
				t.Errorf("Vector4iFromVector4(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestVector3iFromVector3(t *testing.T) {
	if got, want := Vector3iFromVector3(NewVector3(2.7, -2.7, 1e30)), NewVector3i(2, -2, math.MaxInt32); got != want {
		t.Errorf("Vector3iFromVector3 = %v, want %v", got, want)
	}
}

func TestVector2iFromVector2(t *testing.T) {
	if got, want := Vector2iFromVector2(NewVector2(-0.99, 7.01)), NewVector2i(0, 7); got != want {
		t.Errorf("Vector2iFromVector2 = %v, want %v", got, want)
	}
}
