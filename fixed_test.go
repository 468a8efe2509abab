package gdmath

import (
	"testing"

	"golang.org/x/image/math/fixed"
)

func TestVector2iFixed(t *testing.T) {
	v := NewVector2i(3, -4)
	p := v.Fixed()
	if p != fixed.P(3, -4) {
		t.Errorf("Fixed = %v, want %v", p, fixed.P(3, -4))
	}
	if got := Vector2iFromFixed(p); got != v {
		t.Errorf("Vector2iFromFixed(Fixed()) = %v, want %v", got, v)
	}
}

func TestVector2iFromFixedTruncates(t *testing.T) {
	tests := []struct {
		name string
		p    fixed.Point26_6
		want Vector2i
	}{
		{"positive fraction", fixed.Point26_6{X: 64 + 63, Y: 32}, NewVector2i(1, 0)},
		{"negative fraction", fixed.Point26_6{X: -(64 + 63), Y: -32}, NewVector2i(-1, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Vector2iFromFixed(tt.p); got != tt.want {
				t.Errorf("Vector2iFromFixed(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestVector2Fixed(t *testing.T) {
	v := NewVector2(1.5, -0.25)
	p := v.Fixed()
	if p.X != 96 || p.Y != -16 {
		t.Errorf("Fixed = %v, want (96, -16) in 26.6 units", p)
	}
	if got := Vector2FromFixed(p); got != v {
		t.Errorf("Vector2FromFixed(Fixed()) = %v, want %v", got, v)
	}
}
