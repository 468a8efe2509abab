// Package ffi moves gdmath values across the engine boundary.
//
// The engine hands out opaque type pointers to its own vector and axis
// values. Every gdmath vector and axis type has the engine's exact memory
// layout, so a TypePtr can be read and written as the matching gdmath type
// without any conversion. Axis tags are validated on the way in and out:
// the engine's ABI allows any int32 there, gdmath does not.
//
// All functions are safe for concurrent use as long as the caller does not
// race on the pointed-to memory.
package ffi

import (
	"errors"
	"unsafe"

	"github.com/gogpu/gdmath"
)

// TypePtr is an opaque pointer to an engine-owned value.
type TypePtr unsafe.Pointer

// Native is the set of types that share the engine's memory layout.
type Native interface {
	gdmath.Vector2i | gdmath.Vector3i | gdmath.Vector4i |
		gdmath.Vector2 | gdmath.Vector3 | gdmath.Vector4 |
		gdmath.Vector2Axis | gdmath.Vector3Axis | gdmath.Vector4Axis
}

var (
	// ErrNilPointer is returned when a nil TypePtr is dereferenced.
	ErrNilPointer = errors.New("ffi: nil type pointer")

	// ErrNegativeLength is returned by View for a negative element count.
	ErrNegativeLength = errors.New("ffi: negative length")
)

// validator is implemented by the axis types.
type validator interface {
	Valid() bool
}

// check rejects axis values outside the declared variants.
func check[T Native](op string, v T) error {
	if a, ok := any(v).(validator); ok && !a.Valid() {
		gdmath.Logger().Warn("ffi: rejected axis tag", "op", op, "value", a)
		return gdmath.ErrInvalidAxis
	}
	return nil
}

// PtrOf returns v as an engine type pointer.
func PtrOf[T Native](v *T) TypePtr {
	return TypePtr(unsafe.Pointer(v))
}

// SizeOf returns the size in bytes of the native representation of T.
func SizeOf[T Native]() uintptr {
	var v T
	return unsafe.Sizeof(v)
}

// Load copies the value at p.
//
// It returns ErrNilPointer for a nil p and gdmath.ErrInvalidAxis when T is an
// axis type and the stored tag is not a declared variant.
func Load[T Native](p TypePtr) (T, error) {
	var zero T
	if p == nil {
		gdmath.Logger().Warn("ffi: load from nil type pointer")
		return zero, ErrNilPointer
	}
	v := *(*T)(unsafe.Pointer(p))
	if err := check("Load", v); err != nil {
		return zero, err
	}
	return v, nil
}

// Store writes v to p. Nothing is written when an error is returned.
func Store[T Native](p TypePtr, v T) error {
	if p == nil {
		gdmath.Logger().Warn("ffi: store to nil type pointer")
		return ErrNilPointer
	}
	if err := check("Store", v); err != nil {
		return err
	}
	*(*T)(unsafe.Pointer(p)) = v
	return nil
}

// View returns the n consecutive values starting at p as a slice sharing the
// engine's memory. The elements are not validated; use Load on each element
// when T is an axis type and the source is untrusted.
//
// A nil p with n == 0 yields a nil slice.
func View[T Native](p TypePtr, n int) ([]T, error) {
	switch {
	case n < 0:
		return nil, ErrNegativeLength
	case n == 0:
		return nil, nil
	case p == nil:
		gdmath.Logger().Warn("ffi: view of nil type pointer", "len", n)
		return nil, ErrNilPointer
	}
	gdmath.Logger().Debug("ffi: view", "len", n, "bytes", uintptr(n)*SizeOf[T]())
	return unsafe.Slice((*T)(unsafe.Pointer(p)), n), nil
}
