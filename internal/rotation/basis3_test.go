package rotation

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"rotkit/internal/mathutil"
)

func sampleBases3() []Basis3[float64] {
	return []Basis3[float64]{
		One3[float64](),
		FromAngleX(0.4),
		FromAngleY(math.Pi),
		FromAngleZ(-1.9),
		FromEuler(0.5, -1.2, 2.4),
		FromAxisAngle(mathutil.Vec3[float64]{1, 1, -1}.Normalize(), 2.1),
		LookAt3(mathutil.Vec3[float64]{1, 2, -0.5}, mathutil.Vec3UnitY[float64]()),
		BetweenVectors3(
			mathutil.Vec3[float64]{1, 0, 2}.Normalize(),
			mathutil.Vec3[float64]{-1, 1, 0}.Normalize(),
		),
		FromQuaternion(mathutil.QuatFromAxisAngle(mathutil.Vec3[float64]{0, 2, 1}.Normalize(), -0.8)),
	}
}

func TestFromAxisAngleQuarterTurn(t *testing.T) {
	r := FromAxisAngle(mathutil.Vec3UnitZ[float64](), math.Pi/2)
	v := r.RotateVector(mathutil.Vec3UnitX[float64]())
	require.True(t, v.ApproxEq(mathutil.Vec3UnitY[float64](), eps), "got %v", v)
}

func TestFromAngleMatchesAxisAngle(t *testing.T) {
	angles := []float64{0, 0.3, -1.4, math.Pi / 2, math.Pi, 2.9}
	for _, a := range angles {
		require.True(t, FromAngleX(a).ApproxEq(FromAxisAngle(mathutil.Vec3UnitX[float64](), a), eps), "x, angle %v", a)
		require.True(t, FromAngleY(a).ApproxEq(FromAxisAngle(mathutil.Vec3UnitY[float64](), a), eps), "y, angle %v", a)
		require.True(t, FromAngleZ(a).ApproxEq(FromAxisAngle(mathutil.Vec3UnitZ[float64](), a), eps), "z, angle %v", a)
	}
}

func TestFromEulerOrder(t *testing.T) {
	x, y, z := 0.4, -0.7, 1.2
	v := mathutil.Vec3[float64]{0.3, -1.5, 2.2}

	// x applied first, then y, then z.
	want := FromAngleZ(z).RotateVector(FromAngleY(y).RotateVector(FromAngleX(x).RotateVector(v)))
	got := FromEuler(x, y, z).RotateVector(v)
	require.True(t, got.ApproxEq(want, eps), "got %v want %v", got, want)

	swapped := FromEuler(x, z, y).RotateVector(v)
	require.False(t, swapped.ApproxEq(want, 1e-6), "euler order should matter")
}

func TestFromEulerMatchesQuaternionRoute(t *testing.T) {
	x, y, z := -0.9, 0.35, 1.7
	viaQuat := FromQuaternion(mathutil.QuatFromEuler(x, y, z))
	require.True(t, FromEuler(x, y, z).ApproxEq(viaQuat, 1e-9))
}

func TestBasis3Laws(t *testing.T) {
	checkLaws(t, One3[float64](), sampleBases3(), 1e-9)
}

func TestBetweenVectors3MapsAOntoB(t *testing.T) {
	a := mathutil.Vec3[float64]{2, -1, 0.5}.Normalize()
	b := mathutil.Vec3[float64]{0, 3, -1}.Normalize()
	r := BetweenVectors3(a, b)
	require.True(t, r.RotateVector(a).ApproxEq(b, 1e-9), "got %v want %v", r.RotateVector(a), b)
}

func TestBetweenVectors3Antiparallel(t *testing.T) {
	a := mathutil.Vec3[float64]{1, -2, 0.5}.Normalize()
	r := BetweenVectors3(a, a.Neg())
	require.True(t, r.RotateVector(a).ApproxEq(a.Neg(), 1e-9))
}

func TestLookAt3AlignsDir(t *testing.T) {
	dir := mathutil.Vec3[float64]{1, -3, 2}
	r := LookAt3(dir, mathutil.Vec3UnitY[float64]())
	require.True(t, r.RotateVector(dir.Normalize()).ApproxEq(mathutil.Vec3UnitZ[float64](), eps))
}

func TestQuatRoundTrip(t *testing.T) {
	for i, r := range sampleBases3() {
		back := FromQuaternion(r.Quat())
		require.True(t, back.ApproxEq(r, 1e-9), "case %d: %v != %v", i, back, r)
	}
}

func TestRotatePointMatchesVector3(t *testing.T) {
	r := FromEuler(0.2, 1.4, -0.6)
	v := mathutil.Vec3[float64]{2.5, -0.75, 1.25}
	p := r.RotatePoint(mathutil.Point3FromVec(v))
	require.True(t, p.ApproxEq(mathutil.Point3FromVec(r.RotateVector(v)), eps))
}

func TestBasis3LengthPreserved(t *testing.T) {
	v := mathutil.Vec3[float64]{3.2, -1.7, 0.4}
	for i, r := range sampleBases3() {
		require.InDelta(t, v.Len(), r.RotateVector(v).Len(), 1e-9, "case %d", i)
	}
}

func TestBasis3Orthogonal(t *testing.T) {
	id := mathutil.Mat3Identity[float64]()
	for i, r := range sampleBases3() {
		m := r.Mat()
		require.True(t, mathutil.Mat3Mul(m.Transpose(), m).ApproxEq(id, 1e-9), "case %d", i)
		require.InDelta(t, 1.0, m.Det(), 1e-9, "case %d", i)
	}
}

func TestConcatSelfInvertSelf3(t *testing.T) {
	r := FromEuler(0.9, -0.2, 0.5)
	s := FromAngleY(-0.4)

	got := r
	got.ConcatSelf(s)
	require.True(t, got.ApproxEq(r.Concat(s), eps))

	got = r
	got.InvertSelf()
	require.True(t, got.ApproxEq(r.Invert(), eps))
}

func TestBasis3JSONRoundTrip(t *testing.T) {
	r := FromEuler(1.1, 0.3, -2.0)
	data, err := json.Marshal(r)
	require.NoError(t, err)

	var back Basis3[float64]
	require.NoError(t, json.Unmarshal(data, &back))
	require.True(t, back.ApproxEq(r, 0))
}

func TestBasis3InvertPanicsOnCorruptValue(t *testing.T) {
	var bad Basis3[float64]
	require.NoError(t, json.Unmarshal([]byte(`[1,2,3,2,4,6,0,1,0]`), &bad))
	require.Panics(t, func() { bad.Invert() })
}

func TestBasis3Float32(t *testing.T) {
	r := FromAxisAngle(mathutil.Vec3UnitZ[float32](), math.Pi/2)
	v := r.RotateVector(mathutil.Vec3UnitX[float32]())
	require.True(t, v.ApproxEq(mathutil.Vec3UnitY[float32](), 1e-6), "got %v", v)

	checkLaws(t, One3[float32](), []Basis3[float32]{r, FromEuler[float32](0.3, -0.8, 1.1)}, float32(1e-5))
}
