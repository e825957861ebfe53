package mathutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

const eps = 1e-12

func TestRotZQuarterTurn(t *testing.T) {
	v := RotZ(math.Pi / 2).MulVec3(Vec3UnitX[float64]())
	require.True(t, v.ApproxEq(Vec3UnitY[float64](), eps), "got %v", v)
}

func TestAxisAngleMatchesSingleAxisRotations(t *testing.T) {
	angles := []float64{0, 0.3, math.Pi / 2, -1.1, math.Pi, 2.8}
	for _, a := range angles {
		require.True(t, AxisAngle(Vec3UnitX[float64](), a).ApproxEq(RotX(a), eps), "x axis, angle %v", a)
		require.True(t, AxisAngle(Vec3UnitY[float64](), a).ApproxEq(RotY(a), eps), "y axis, angle %v", a)
		require.True(t, AxisAngle(Vec3UnitZ[float64](), a).ApproxEq(RotZ(a), eps), "z axis, angle %v", a)
	}
}

func TestEulerXYZOrder(t *testing.T) {
	x, y, z := 0.4, -0.7, 1.2
	v := Vec3[float64]{0.3, -1.5, 2.2}

	// x first, then y, then z
	want := RotZ(z).MulVec3(RotY(y).MulVec3(RotX(x).MulVec3(v)))
	got := EulerXYZ(x, y, z).MulVec3(v)
	require.True(t, got.ApproxEq(want, eps), "got %v want %v", got, want)

	// The order is load-bearing: swapping y and z must change the result.
	swapped := EulerXYZ(x, z, y).MulVec3(v)
	require.False(t, swapped.ApproxEq(want, 1e-6))
}

func TestLookAt3MapsDirToForward(t *testing.T) {
	dir := Vec3[float64]{1, 2, -0.5}
	m := LookAt3(dir, Vec3UnitY[float64]())

	require.True(t, m.MulVec3(dir.Normalize()).ApproxEq(Vec3UnitZ[float64](), eps))

	// Orthonormal: Mᵀ M ≈ I
	p := Mat3Mul(m.Transpose(), m)
	require.True(t, p.ApproxEq(Mat3Identity[float64](), eps), "MᵀM = %v", p)
	require.InDelta(t, 1.0, m.Det(), eps)
}

func TestInverse(t *testing.T) {
	m := EulerXYZ(0.3, -0.8, 1.7)
	inv, ok := m.Inverse()
	require.True(t, ok)
	require.True(t, Mat3Mul(m, inv).ApproxEq(Mat3Identity[float64](), eps))

	// For a rotation the inverse is the transpose.
	require.True(t, inv.ApproxEq(m.Transpose(), eps))

	_, ok = Mat3[float64]{}.Inverse()
	require.False(t, ok)

	_, ok = Mat3[float64]{1, 2, 3, 2, 4, 6, 0, 1, 0}.Inverse()
	require.False(t, ok, "rank-deficient matrix reported invertible")
}

func TestToQuatRoundTrip(t *testing.T) {
	// Half turns land on every branch of the conversion; the rest exercise
	// the trace branch.
	mats := []Mat3[float64]{
		Mat3Identity[float64](),
		RotX(math.Pi),
		RotY(math.Pi),
		RotZ(math.Pi),
		RotX(0.3),
		EulerXYZ(0.4, -1.2, 2.1),
		AxisAngle(Vec3[float64]{1, 1, 1}.Normalize(), 2.9),
		LookAt3(Vec3[float64]{-2, 0.5, 1}, Vec3UnitY[float64]()),
	}
	for i, m := range mats {
		q := m.ToQuat()
		require.InDelta(t, 1.0, float64(q.Len()), eps, "case %d: quat not unit", i)
		require.True(t, q.ToMat3().ApproxEq(m, 1e-9), "case %d: %v != %v", i, q.ToMat3(), m)
	}
}

func TestMat3Float32(t *testing.T) {
	m := RotZ[float32](math.Pi / 2)
	v := m.MulVec3(Vec3UnitX[float32]())
	require.True(t, v.ApproxEq(Vec3UnitY[float32](), 1e-6), "got %v", v)
	require.InDelta(t, 1.0, float64(m.Det()), 1e-6)
}
