package gdmath

import (
	"unsafe"

	"github.com/gogpu/gputypes"
)

// The memory layout of every type below is a stable external contract: the
// engine reads and writes these values through raw pointers. The array
// lengths are constant uintptr expressions that underflow, and fail the
// build, as soon as a size or alignment drifts from the engine's.
var (
	_ [unsafe.Sizeof(Vector4i{}) - 16]struct{}
	_ [16 - unsafe.Sizeof(Vector4i{})]struct{}
	_ [unsafe.Alignof(Vector4i{}) - 4]struct{}
	_ [4 - unsafe.Alignof(Vector4i{})]struct{}
	_ [unsafe.Offsetof(Vector4i{}.W) - 12]struct{}
	_ [12 - unsafe.Offsetof(Vector4i{}.W)]struct{}

	_ [unsafe.Sizeof(Vector3i{}) - 12]struct{}
	_ [12 - unsafe.Sizeof(Vector3i{})]struct{}
	_ [unsafe.Sizeof(Vector2i{}) - 8]struct{}
	_ [8 - unsafe.Sizeof(Vector2i{})]struct{}

	_ [unsafe.Sizeof(Vector4{}) - 4*unsafe.Sizeof(Real(0))]struct{}
	_ [4*unsafe.Sizeof(Real(0)) - unsafe.Sizeof(Vector4{})]struct{}
	_ [unsafe.Sizeof(Vector3{}) - 3*unsafe.Sizeof(Real(0))]struct{}
	_ [3*unsafe.Sizeof(Real(0)) - unsafe.Sizeof(Vector3{})]struct{}
	_ [unsafe.Sizeof(Vector2{}) - 2*unsafe.Sizeof(Real(0))]struct{}
	_ [2*unsafe.Sizeof(Real(0)) - unsafe.Sizeof(Vector2{})]struct{}

	_ [unsafe.Sizeof(Vector4Axis(0)) - 4]struct{}
	_ [4 - unsafe.Sizeof(Vector4Axis(0))]struct{}
	_ [unsafe.Sizeof(Vector3Axis(0)) - 4]struct{}
	_ [4 - unsafe.Sizeof(Vector3Axis(0))]struct{}
	_ [unsafe.Sizeof(Vector2Axis(0)) - 4]struct{}
	_ [4 - unsafe.Sizeof(Vector2Axis(0))]struct{}
)

// NativeLayout is implemented by types whose memory layout is identical to
// the engine's native representation. A pointer to such a value may be
// handed to the engine as its own type pointer, and vice versa.
type NativeLayout interface {
	// LayoutSize returns the size of the native representation in bytes.
	LayoutSize() uintptr

	// VertexFormat returns the GPU vertex attribute format that reads the
	// same bytes. Float vectors in gdmath_double builds have no such format
	// and return the zero VertexFormat.
	VertexFormat() gputypes.VertexFormat
}

var (
	_ NativeLayout = Vector2i{}
	_ NativeLayout = Vector3i{}
	_ NativeLayout = Vector4i{}
	_ NativeLayout = Vector2{}
	_ NativeLayout = Vector3{}
	_ NativeLayout = Vector4{}
	_ NativeLayout = Vector2Axis(0)
	_ NativeLayout = Vector3Axis(0)
	_ NativeLayout = Vector4Axis(0)
)

func (Vector4i) LayoutSize() uintptr { return unsafe.Sizeof(Vector4i{}) }
func (Vector3i) LayoutSize() uintptr { return unsafe.Sizeof(Vector3i{}) }
func (Vector2i) LayoutSize() uintptr { return unsafe.Sizeof(Vector2i{}) }
func (Vector4) LayoutSize() uintptr  { return unsafe.Sizeof(Vector4{}) }
func (Vector3) LayoutSize() uintptr  { return unsafe.Sizeof(Vector3{}) }
func (Vector2) LayoutSize() uintptr  { return unsafe.Sizeof(Vector2{}) }

func (Vector4Axis) LayoutSize() uintptr { return 4 }
func (Vector3Axis) LayoutSize() uintptr { return 4 }
func (Vector2Axis) LayoutSize() uintptr { return 4 }

func (Vector4i) VertexFormat() gputypes.VertexFormat { return gputypes.VertexFormatSint32x4 }
func (Vector3i) VertexFormat() gputypes.VertexFormat { return gputypes.VertexFormatSint32x3 }
func (Vector2i) VertexFormat() gputypes.VertexFormat { return gputypes.VertexFormatSint32x2 }
func (Vector4) VertexFormat() gputypes.VertexFormat  { return realVertexFormats[4] }
func (Vector3) VertexFormat() gputypes.VertexFormat  { return realVertexFormats[3] }
func (Vector2) VertexFormat() gputypes.VertexFormat  { return realVertexFormats[2] }

func (Vector4Axis) VertexFormat() gputypes.VertexFormat { return gputypes.VertexFormatSint32 }
func (Vector3Axis) VertexFormat() gputypes.VertexFormat { return gputypes.VertexFormatSint32 }
func (Vector2Axis) VertexFormat() gputypes.VertexFormat { return gputypes.VertexFormatSint32 }
