package raster

import "math"

// FillTriangle rasterizes one flat-shaded triangle with z-buffering.
// Vertices are screen-space x/y plus depth; shade is the precomputed
// lighting scalar for the face. Zero allocation in the pixel loop.
func FillTriangle(fb *FrameBuffer, x, y, z [3]float64, shade float64, r, g, b uint8, invGamma float64) {
	minX := int(math.Min(math.Min(x[0], x[1]), x[2]))
	maxX := int(math.Max(math.Max(x[0], x[1]), x[2])) + 1
	minY := int(math.Min(math.Min(y[0], y[1]), y[2]))
	maxY := int(math.Max(math.Max(y[0], y[1]), y[2])) + 1

	if minX < 0 {
		minX = 0
	}
	if maxX >= fb.Size {
		maxX = fb.Size - 1
	}
	if minY < 0 {
		minY = 0
	}
	if maxY >= fb.Size {
		maxY = fb.Size - 1
	}
	if minX >= maxX || minY >= maxY {
		return
	}

	// Barycentric setup
	det := (y[1]-y[2])*(x[0]-x[2]) + (x[2]-x[1])*(y[0]-y[2])
	if det > -1e-8 && det < 1e-8 {
		return
	}
	invDet := 1.0 / det

	dy12 := y[1] - y[2]
	dx21 := x[2] - x[1]
	dy20 := y[2] - y[0]
	dx02 := x[0] - x[2]

	// Shade in linear space, encode once per face.
	fr := clamp255(math.Pow(float64(r)/255*shade, invGamma) * 255)
	fg := clamp255(math.Pow(float64(g)/255*shade, invGamma) * 255)
	fbv := clamp255(math.Pow(float64(b)/255*shade, invGamma) * 255)

	for sy := minY; sy <= maxY; sy++ {
		dsy := float64(sy) - y[2]
		rowOff := sy * fb.Size
		for sx := minX; sx <= maxX; sx++ {
			dsx := float64(sx) - x[2]
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1

			if w0 < -0.001 || w1 < -0.001 || w2 < -0.001 {
				continue
			}

			depth := w0*z[0] + w1*z[1] + w2*z[2]
			zIdx := rowOff + sx
			if depth <= fb.Depth[zIdx] {
				continue
			}
			fb.Depth[zIdx] = depth

			pxIdx := zIdx * 4
			fb.Color[pxIdx] = fr
			fb.Color[pxIdx+1] = fg
			fb.Color[pxIdx+2] = fbv
			fb.Color[pxIdx+3] = 255
		}
	}
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
