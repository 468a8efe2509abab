// Package wide provides SIMD-friendly wide types for batch vector arithmetic.
//
// This package implements the I32x4 lane type, designed to enable Go compiler
// auto-vectorization. By using a fixed-size array and simple loops, the type
// lets the compiler generate SIMD instructions on supported architectures
// (SSE2, AVX, NEON).
//
// # Lane Layout
//
// I32x4 holds four int32 lanes, 0 through 3. gdmath maps Vector4i components
// X, Y, Z, W onto lanes 0..3 and back; the mapping is a plain copy and never
// changes the bit pattern.
//
// # Design Philosophy
//
//   - Use simple loops over fixed-size arrays for auto-vectorization
//   - Avoid unsafe and assembly - rely on compiler optimization
//   - Keep functions small and inlineable
//   - Provide benchmarks to verify SIMD performance gains
//
// # Usage Example
//
//	// Accumulate a batch of vectors
//	var acc wide.I32x4
//	for _, l := range batch {
//	    acc = acc.Add(l)
//	}
package wide
