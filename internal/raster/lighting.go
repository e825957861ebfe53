package raster

import (
	"math"

	"rotkit/internal/mathutil"
)

// LightConfig holds precomputed lighting parameters for flat shading.
type LightConfig struct {
	LightDir mathutil.Vec3[float64]
	HalfMain mathutil.Vec3[float64] // precomputed half-vector for Blinn-Phong
	Ambient  float64
	Hemi     float64
	Direct   float64
	SpecInt  float64
	SpecPow  float64
	InvGamma float64
}

// DefaultLightConfig returns a key light above and to the right of an
// orthographic camera looking down -z.
func DefaultLightConfig() LightConfig {
	lightDir := mathutil.Vec3[float64]{0.4, 0.7, 0.6}.Normalize()
	viewDir := mathutil.Vec3[float64]{0, 0, -1}

	return LightConfig{
		LightDir: lightDir,
		HalfMain: lightDir.Sub(viewDir).Normalize(),
		Ambient:  0.30,
		Hemi:     0.25,
		Direct:   0.85,
		SpecInt:  0.35,
		SpecPow:  14.0,
		InvGamma: 1.0 / 2.2,
	}
}

// ComputeShade returns the combined lighting scalar for a face normal.
func (lc *LightConfig) ComputeShade(normal mathutil.Vec3[float64]) float64 {
	// Lambertian (abs for double-sided faces)
	ndl := math.Abs(normal.Dot(lc.LightDir))

	// Hemisphere fill
	hemi := ((1.0-math.Abs(normal[1]))*0.5 + 0.5) * lc.Hemi

	// Blinn-Phong specular
	ndh := normal.Dot(lc.HalfMain)
	if ndh < 0 {
		ndh = 0
	}
	spec := math.Pow(ndh, lc.SpecPow) * lc.SpecInt

	return lc.Ambient + hemi + ndl*lc.Direct + spec
}
