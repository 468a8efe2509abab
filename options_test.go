package gdmath

import "testing"

func TestDefaultDecodeOptions(t *testing.T) {
	o := defaultDecodeOptions()
	if o.allowUnknownKeys {
		t.Error("default options allow unknown keys")
	}
	if o.codec().AllowUnknownKeys {
		t.Error("codec options allow unknown keys")
	}
}

func TestWithUnknownKeys(t *testing.T) {
	tests := []struct {
		name string
		opts []DecodeOption
		want bool
	}{
		{"none", nil, false},
		{"enabled", []DecodeOption{WithUnknownKeys(true)}, true},
		{"last wins", []DecodeOption{WithUnknownKeys(true), WithUnknownKeys(false)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := defaultDecodeOptions()
			for _, opt := range tt.opts {
				opt(&o)
			}
			if o.codec().AllowUnknownKeys != tt.want {
				t.Errorf("AllowUnknownKeys = %v, want %v", o.codec().AllowUnknownKeys, tt.want)
			}
		})
	}
}
