package gdmath

import (
	"errors"
	"fmt"
	"math"
	"testing"
)

func TestVectorString(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"Vector4i", NewVector4i(1, -2, 3, 0).String(), "(1, -2, 3, 0)"},
		{"Vector4i extremes", NewVector4i(math.MinInt32, math.MaxInt32, 0, 0).String(), "(-2147483648, 2147483647, 0, 0)"},
		{"Vector3i", NewVector3i(4, 5, -6).String(), "(4, 5, -6)"},
		{"Vector2i", NewVector2i(0, 0).String(), "(0, 0)"},
		{"Vector4", NewVector4(1.5, -0.25, 0, 2).String(), "(1.5, -0.25, 0, 2)"},
		{"Vector3", NewVector3(0.5, 1, -8).String(), "(0.5, 1, -8)"},
		{"Vector2", NewVector2(3, 0.125).String(), "(3, 0.125)"},
		{"fmt verb", fmt.Sprintf("%v", NewVector4i(7, 8, 9, 10)), "(7, 8, 9, 10)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("String() = %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestParseVector4i(t *testing.T) {
	tests := []struct {
		in      string
		want    Vector4i
		wantErr bool
	}{
		{"(1, -2, 3, 0)", NewVector4i(1, -2, 3, 0), false},
		{"  (1,2,3,4)  ", NewVector4i(1, 2, 3, 4), false},
		{"( -2147483648 , 2147483647 , 0 , 0 )", NewVector4i(math.MinInt32, math.MaxInt32, 0, 0), false},
		{"(1, 2, 3)", Vector4i{}, true},
		{"(1, 2, 3, 4, 5)", Vector4i{}, true},
		{"1, 2, 3, 4", Vector4i{}, true},
		{"(1, 2, 3, 4", Vector4i{}, true},
		{"(1, 2.5, 3, 4)", Vector4i{}, true},
		{"(1, 2, 3, 2147483648)", Vector4i{}, true},
		{"(a, b, c, d)", Vector4i{}, true},
		{"(+1, 2, 3, 4)", Vector4i{}, true},
		{"(1, 2, 3, +0)", Vector4i{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseVector4i(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrDecode) {
					t.Errorf("ParseVector4i(%q) error = %v, want ErrDecode", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseVector4i(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseVector4i(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseRoundTrip(t *testing.T) {
	v4i := NewVector4i(-9, 8, -7, 6)
	if got, err := ParseVector4i(v4i.String()); err != nil || got != v4i {
		t.Errorf("ParseVector4i(String()) = %v, %v", got, err)
	}
	v3i := NewVector3i(1, 0, -1)
	if got, err := ParseVector3i(v3i.String()); err != nil || got != v3i {
		t.Errorf("ParseVector3i(String()) = %v, %v", got, err)
	}
	v2i := NewVector2i(100, -100)
	if got, err := ParseVector2i(v2i.String()); err != nil || got != v2i {
		t.Errorf("ParseVector2i(String()) = %v, %v", got, err)
	}
	v4 := NewVector4(0.1, -3.75, 1e-7, 12345.5)
	if got, err := ParseVector4(v4.String()); err != nil || got != v4 {
		t.Errorf("ParseVector4(String()) = %v, %v", got, err)
	}
	v3 := NewVector3(1, 2, 3)
	if got, err := ParseVector3(v3.String()); err != nil || got != v3 {
		t.Errorf("ParseVector3(String()) = %v, %v", got, err)
	}
	v2 := NewVector2(-0.5, 0.5)
	if got, err := ParseVector2(v2.String()); err != nil || got != v2 {
		t.Errorf("ParseVector2(String()) = %v, %v", got, err)
	}
}

func TestParseErrorKey(t *testing.T) {
	_, err := ParseVector3i("(1, x, 3)")
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("error %v is not *DecodeError", err)
	}
	if de.Key != "y" {
		t.Errorf("Key = %q, want y", de.Key)
	}
}

func TestParseVector4Signs(t *testing.T) {
	inf := Real(math.Inf(1))
	v := NewVector4(inf, -inf, -1, 0)
	got, err := ParseVector4(v.String())
	if err != nil {
		t.Fatalf("ParseVector4(%q): %v", v.String(), err)
	}
	if got != v {
		t.Errorf("ParseVector4(%q) = %v, want %v", v.String(), got, v)
	}
	if _, err := ParseVector4("(+1.5, 0, 0, 0)"); !errors.Is(err, ErrDecode) {
		t.Errorf("ParseVector4 accepted a leading '+': %v", err)
	}
	if _, err := ParseVector2("(0, +2)"); !errors.Is(err, ErrDecode) {
		t.Errorf("ParseVector2 accepted a leading '+': %v", err)
	}
}
