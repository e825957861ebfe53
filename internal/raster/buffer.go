package raster

import "math"

// FrameBuffer is a square render target held as flat slices for cache
// locality.
type FrameBuffer struct {
	Size  int
	Color []uint8   // RGBA interleaved, len = Size*Size*4
	Depth []float64 // depth per pixel, len = Size*Size, initialized to -inf
}

// NewFrameBuffer allocates a zeroed color buffer and -inf depth buffer.
func NewFrameBuffer(size int) *FrameBuffer {
	n := size * size
	depth := make([]float64, n)
	for i := range depth {
		depth[i] = math.Inf(-1)
	}
	return &FrameBuffer{
		Size:  size,
		Color: make([]uint8, n*4),
		Depth: depth,
	}
}
