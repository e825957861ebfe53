package mathutil

import (
	"math"
	"unsafe"

	"github.com/chewxy/math32"
)

// Float is the scalar kind every type in this package is generic over.
type Float interface {
	~float32 | ~float64
}

// The 4-byte branch goes through math32 so float32 callers never round-trip
// through float64.

func Sqrt[S Float](x S) S {
	if unsafe.Sizeof(x) == 4 {
		return S(math32.Sqrt(float32(x)))
	}
	return S(math.Sqrt(float64(x)))
}

func Sin[S Float](x S) S {
	if unsafe.Sizeof(x) == 4 {
		return S(math32.Sin(float32(x)))
	}
	return S(math.Sin(float64(x)))
}

func Cos[S Float](x S) S {
	if unsafe.Sizeof(x) == 4 {
		return S(math32.Cos(float32(x)))
	}
	return S(math.Cos(float64(x)))
}

// Sincos returns sin(x) and cos(x) in one call.
func Sincos[S Float](x S) (S, S) {
	if unsafe.Sizeof(x) == 4 {
		return S(math32.Sin(float32(x))), S(math32.Cos(float32(x)))
	}
	s, c := math.Sincos(float64(x))
	return S(s), S(c)
}

func Acos[S Float](x S) S {
	if unsafe.Sizeof(x) == 4 {
		return S(math32.Acos(float32(x)))
	}
	return S(math.Acos(float64(x)))
}

func Atan2[S Float](y, x S) S {
	if unsafe.Sizeof(y) == 4 {
		return S(math32.Atan2(float32(y), float32(x)))
	}
	return S(math.Atan2(float64(y), float64(x)))
}

func Abs[S Float](x S) S {
	if x < 0 {
		return -x
	}
	return x
}

// ApproxEq reports |a-b| <= eps.
func ApproxEq[S Float](a, b, eps S) bool {
	return Abs(a-b) <= eps
}

// Deg2Rad converts degrees to radians.
func Deg2Rad[S Float](d S) S {
	return d * S(math.Pi) / 180
}

// Rad2Deg converts radians to degrees.
func Rad2Deg[S Float](r S) S {
	return r * 180 / S(math.Pi)
}
