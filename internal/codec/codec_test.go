package codec

import (
	"errors"
	"strings"
	"testing"
)

var xyzw = []string{"x", "y", "z", "w"}

func TestDecodeInt32(t *testing.T) {
	var got [4]int32
	err := DecodeInt32([]byte(`{"w": 4, "z": 3, "y": -2, "x": 1}`), xyzw, got[:], Options{})
	if err != nil {
		t.Fatalf("DecodeInt32() error = %v", err)
	}
	if want := [4]int32{1, -2, 3, 4}; got != want {
		t.Errorf("DecodeInt32() = %v, want %v", got, want)
	}
}

func TestDecodeInt32Limits(t *testing.T) {
	var got [2]int32
	err := DecodeInt32([]byte(`{"x":-2147483648,"y":2147483647}`), xyzw[:2], got[:], Options{})
	if err != nil {
		t.Fatalf("DecodeInt32() error = %v", err)
	}
	if got != [2]int32{-2147483648, 2147483647} {
		t.Errorf("DecodeInt32() = %v", got)
	}
}

func TestDecodeInt32Rejects(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantKey string
		wantMsg string
	}{
		{"missing key", `{"x":1,"y":2,"z":3}`, "w", "missing component"},
		{"unknown key", `{"x":1,"y":2,"z":3,"w":4,"v":5}`, "v", "unknown key"},
		{"float value", `{"x":1.5,"y":2,"z":3,"w":4}`, "x", "not an integer"},
		{"exponent", `{"x":1,"y":1e2,"z":3,"w":4}`, "y", "not an integer"},
		{"string value", `{"x":1,"y":2,"z":"3","w":4}`, "z", "not an integer"},
		{"null value", `{"x":1,"y":2,"z":3,"w":null}`, "w", "not an integer"},
		{"bool value", `{"x":true,"y":2,"z":3,"w":4}`, "x", "not an integer"},
		{"overflow", `{"x":2147483648,"y":2,"z":3,"w":4}`, "x", "out of int32 range"},
		{"underflow", `{"x":1,"y":-2147483649,"z":3,"w":4}`, "y", "out of int32 range"},
		{"duplicate key", `{"x":1,"y":2,"z":3,"w":4,"x":9}`, "x", "duplicate key"},
		{"duplicate before missing", `{"y":2,"y":3,"z":3,"w":4}`, "y", "duplicate key"},
		{"array", `[1,2,3,4]`, "", "expected a JSON object"},
		{"null", `null`, "", "expected a JSON object"},
		{"malformed", `{"x":1,`, "", "expected a JSON object"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := [4]int32{9, 9, 9, 9}
			err := DecodeInt32([]byte(tt.input), xyzw, dst[:], Options{})
			if err == nil {
				t.Fatal("DecodeInt32() error = nil, want error")
			}
			if !errors.Is(err, ErrDecode) {
				t.Errorf("error %v does not wrap ErrDecode", err)
			}
			var de *Error
			if !errors.As(err, &de) {
				t.Fatalf("error %T is not *Error", err)
			}
			if de.Key != tt.wantKey {
				t.Errorf("Key = %q, want %q", de.Key, tt.wantKey)
			}
			if !strings.Contains(de.Reason, tt.wantMsg) {
				t.Errorf("Reason = %q, want it to contain %q", de.Reason, tt.wantMsg)
			}
			if dst != [4]int32{9, 9, 9, 9} {
				t.Errorf("dst modified on error: %v", dst)
			}
		})
	}
}

func TestDecodeInt32AllowUnknownKeys(t *testing.T) {
	var got [2]int32
	err := DecodeInt32([]byte(`{"x":1,"y":2,"label":"spawn"}`), xyzw[:2], got[:], Options{AllowUnknownKeys: true})
	if err != nil {
		t.Fatalf("DecodeInt32() error = %v", err)
	}
	if got != [2]int32{1, 2} {
		t.Errorf("DecodeInt32() = %v, want [1 2]", got)
	}
}

func TestDecodeInt32NestedKeysNotDuplicates(t *testing.T) {
	var got [2]int32
	input := `{"x":1,"meta":{"x":5,"y":[{"x":0}]},"y":2,"note":"x"}`
	if err := DecodeInt32([]byte(input), xyzw[:2], got[:], Options{AllowUnknownKeys: true}); err != nil {
		t.Fatalf("DecodeInt32() error = %v", err)
	}
	if got != [2]int32{1, 2} {
		t.Errorf("DecodeInt32() = %v", got)
	}

	err := DecodeInt32([]byte(`{"x":1,"meta":{},"y":2,"meta":0}`), xyzw[:2], got[:], Options{AllowUnknownKeys: true})
	var e *Error
	if !errors.As(err, &e) || e.Key != "meta" {
		t.Errorf("repeated unknown key error = %v, want duplicate key \"meta\"", err)
	}
}

func TestDecodeFloat(t *testing.T) {
	var got [3]float32
	err := DecodeFloat([]byte(`{"x":1.5,"y":-2,"z":1e-3}`), xyzw[:3], got[:], Options{})
	if err != nil {
		t.Fatalf("DecodeFloat() error = %v", err)
	}
	if want := [3]float32{1.5, -2, 1e-3}; got != want {
		t.Errorf("DecodeFloat() = %v, want %v", got, want)
	}
}

func TestDecodeFloatRejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"string", `{"x":"1","y":2}`},
		{"missing", `{"x":1}`},
		{"overflow float32", `{"x":1e39,"y":0}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got [2]float32
			if err := DecodeFloat([]byte(tt.input), xyzw[:2], got[:], Options{}); !errors.Is(err, ErrDecode) {
				t.Errorf("DecodeFloat(%s) error = %v, want ErrDecode", tt.input, err)
			}
		})
	}
}

func TestDecodeFloat64Range(t *testing.T) {
	var got [2]float64
	if err := DecodeFloat([]byte(`{"x":1e39,"y":0}`), xyzw[:2], got[:], Options{}); err != nil {
		t.Fatalf("DecodeFloat() error = %v", err)
	}
	if got[0] != 1e39 {
		t.Errorf("x = %v, want 1e39", got[0])
	}
}

func TestErrorMessage(t *testing.T) {
	err := &Error{Key: "x", Reason: "missing component"}
	if got, want := err.Error(), `gdmath: decode "x": missing component`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
