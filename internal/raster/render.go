package raster

import (
	"image"

	"golang.org/x/image/draw"

	"rotkit/internal/mathutil"
	"rotkit/internal/rotation"
)

// Render draws the mesh under the given rotation into an NRGBA image with an
// orthographic camera looking down -z. The mesh is fit to the frame once
// from its unrotated extent, so a spinning mesh keeps a stable scale across
// frames.
func Render(m Mesh, rot rotation.Basis3[float64], size, supersample int) *image.NRGBA {
	if supersample < 1 {
		supersample = 1
	}
	renderSize := size * supersample

	// Fit: the largest vertex radius bounds every rotated extent.
	var radius float64
	for _, v := range m.Verts {
		if l := v.Len(); l > radius {
			radius = l
		}
	}
	if radius < 0.001 {
		radius = 0.001
	}

	margin := 16 * supersample
	scale := float64(renderSize/2-margin) / radius
	half := float64(renderSize) / 2

	// Rotate and project
	px := make([]float64, len(m.Verts))
	py := make([]float64, len(m.Verts))
	pz := make([]float64, len(m.Verts))
	for i, v := range m.Verts {
		tv := rot.RotateVector(v)
		px[i] = half + tv[0]*scale
		py[i] = half - tv[1]*scale // screen y grows downward
		pz[i] = tv[2] * scale
	}

	fb := NewFrameBuffer(renderSize)
	lc := DefaultLightConfig()

	for _, f := range m.Faces {
		a, b, c := m.Verts[f[0]], m.Verts[f[1]], m.Verts[f[2]]
		normal := rot.RotateVector(b.Sub(a).Cross(c.Sub(a))).Normalize()
		if normal == (mathutil.Vec3[float64]{}) {
			continue
		}
		shade := lc.ComputeShade(normal)

		FillTriangle(fb,
			[3]float64{px[f[0]], px[f[1]], px[f[2]]},
			[3]float64{py[f[0]], py[f[1]], py[f[2]]},
			[3]float64{pz[f[0]], pz[f[1]], pz[f[2]]},
			shade, m.R, m.G, m.B, lc.InvGamma)
	}

	img := image.NewNRGBA(image.Rect(0, 0, renderSize, renderSize))
	copy(img.Pix, fb.Color)

	if supersample > 1 {
		img = Downsample(img, size)
	}
	return img
}

// Downsample reduces the supersampled frame to its target size with
// CatmullRom filtering.
func Downsample(img *image.NRGBA, targetSize int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() <= targetSize && b.Dy() <= targetSize {
		return img
	}
	dst := image.NewNRGBA(image.Rect(0, 0, targetSize, targetSize))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
