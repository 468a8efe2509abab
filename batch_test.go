package gdmath

import (
	"errors"
	"math"
	"slices"
	"testing"
)

func TestAddVector4iSlices(t *testing.T) {
	a := []Vector4i{NewVector4i(1, 2, 3, 4), NewVector4i(math.MaxInt32, 0, 0, 0)}
	b := []Vector4i{NewVector4i(10, 20, 30, 40), NewVector4i(1, 0, 0, 0)}
	dst := make([]Vector4i, 2)

	if err := AddVector4iSlices(dst, a, b); err != nil {
		t.Fatalf("AddVector4iSlices: %v", err)
	}
	want := []Vector4i{NewVector4i(11, 22, 33, 44), NewVector4i(math.MinInt32, 0, 0, 0)}
	if !slices.Equal(dst, want) {
		t.Errorf("dst = %v, want %v", dst, want)
	}

	// In place.
	if err := AddVector4iSlices(a, a, b); err != nil || !slices.Equal(a, want) {
		t.Errorf("aliased add = %v, %v", a, err)
	}
}

func TestAddVector4iSlicesLengthMismatch(t *testing.T) {
	dst := []Vector4i{Vector4iOne}
	err := AddVector4iSlices(dst, []Vector4i{{}, {}}, []Vector4i{{}})
	if !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("error = %v, want ErrLengthMismatch", err)
	}
	if dst[0] != Vector4iOne {
		t.Error("dst written on error")
	}
}

func TestScaleVector4iSlice(t *testing.T) {
	vs := []Vector4i{NewVector4i(1, -2, 3, 0), Vector4iOne}
	ScaleVector4iSlice(vs, 3)
	want := []Vector4i{NewVector4i(3, -6, 9, 0), Vector4iSplat(3)}
	if !slices.Equal(vs, want) {
		t.Errorf("ScaleVector4iSlice = %v, want %v", vs, want)
	}
}

func TestSumVector4i(t *testing.T) {
	if got := SumVector4i(nil); got != Vector4iZero {
		t.Errorf("SumVector4i(nil) = %v", got)
	}
	vs := []Vector4i{NewVector4i(1, 2, 3, 4), NewVector4i(-1, 0, 1, 2), Vector4iOne}
	if got, want := SumVector4i(vs), NewVector4i(1, 3, 5, 7); got != want {
		t.Errorf("SumVector4i = %v, want %v", got, want)
	}
}

func TestBoundsVector4i(t *testing.T) {
	if _, _, ok := BoundsVector4i(nil); ok {
		t.Error("BoundsVector4i(nil) ok = true")
	}
	vs := []Vector4i{NewVector4i(1, 5, 3, 0), NewVector4i(4, 2, 3, -1), NewVector4i(0, 9, -3, 2)}
	lo, hi, ok := BoundsVector4i(vs)
	if !ok {
		t.Fatal("ok = false")
	}
	if want := NewVector4i(0, 2, -3, -1); lo != want {
		t.Errorf("lo = %v, want %v", lo, want)
	}
	if want := NewVector4i(4, 9, 3, 2); hi != want {
		t.Errorf("hi = %v, want %v", hi, want)
	}
}

func TestSortVector4i(t *testing.T) {
	vs := []Vector4i{NewVector4i(2, 0, 0, 0), NewVector4i(1, 1, 0, 0), NewVector4i(1, 0, 0, 0)}
	SortVector4i(vs)
	want := []Vector4i{NewVector4i(1, 0, 0, 0), NewVector4i(1, 1, 0, 0), NewVector4i(2, 0, 0, 0)}
	if !slices.Equal(vs, want) {
		t.Errorf("SortVector4i = %v, want %v", vs, want)
	}
}

func BenchmarkSumVector4i(b *testing.B) {
	vs := make([]Vector4i, 1024)
	for i := range vs {
		vs[i] = Vector4iSplat(int32(i))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = SumVector4i(vs)
	}
}

func BenchmarkVector4iAdd(b *testing.B) {
	x, y := NewVector4i(1, 2, 3, 4), NewVector4i(5, 6, 7, 8)
	for i := 0; i < b.N; i++ {
		x = x.Add(y)
	}
	_ = x
}
