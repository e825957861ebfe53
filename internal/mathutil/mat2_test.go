package mathutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRot2QuarterTurn(t *testing.T) {
	v := Rot2(math.Pi / 2).MulVec2(Vec2UnitX[float64]())
	require.True(t, v.ApproxEq(Vec2UnitY[float64](), eps), "got %v", v)
}

func TestMat2MulComposesAngles(t *testing.T) {
	a, b := 0.7, -1.9
	got := Mat2Mul(Rot2(a), Rot2(b))
	require.True(t, got.ApproxEq(Rot2(a+b), eps))
}

func TestLookAt2MapsDirToForward(t *testing.T) {
	dir := Vec2[float64]{3, -1}
	m := LookAt2(dir, dir.Perp())

	require.True(t, m.MulVec2(dir.Normalize()).ApproxEq(Vec2UnitY[float64](), eps))
	require.InDelta(t, 1.0, m.Det(), eps)
}

func TestMat2Inverse(t *testing.T) {
	m := Rot2(2.3)
	inv, ok := m.Inverse()
	require.True(t, ok)
	require.True(t, Mat2Mul(m, inv).ApproxEq(Mat2Identity[float64](), eps))
	require.True(t, inv.ApproxEq(m.Transpose(), eps))

	_, ok = Mat2[float64]{1, 2, 2, 4}.Inverse()
	require.False(t, ok)
}
