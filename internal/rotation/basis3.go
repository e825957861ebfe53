package rotation

import (
	"encoding/json"
	"fmt"

	"rotkit/internal/mathutil"
)

// Basis3 is a rotation of space backed by an orthogonal 3×3 matrix, under
// the same construction discipline as Basis2.
type Basis3[S mathutil.Float] struct {
	mat mathutil.Mat3[S]
}

// One3 returns the identity rotation.
func One3[S mathutil.Float]() Basis3[S] {
	return Basis3[S]{mat: mathutil.Mat3Identity[S]()}
}

// FromAxisAngle returns the rotation by angle radians around axis. axis
// must have unit length; it is not renormalized here.
func FromAxisAngle[S mathutil.Float](axis mathutil.Vec3[S], angle S) Basis3[S] {
	return Basis3[S]{mat: mathutil.AxisAngle(axis, angle)}
}

// FromEuler returns the composition of rotations around the x (pitch),
// y (yaw), then z (roll) axes, applied in that fixed order.
func FromEuler[S mathutil.Float](x, y, z S) Basis3[S] {
	return Basis3[S]{mat: mathutil.EulerXYZ(x, y, z)}
}

// FromAngleX returns the rotation by theta around the x axis (pitch).
// Equivalent to FromAxisAngle(Vec3UnitX(), theta), built directly.
func FromAngleX[S mathutil.Float](theta S) Basis3[S] {
	return Basis3[S]{mat: mathutil.RotX(theta)}
}

// FromAngleY returns the rotation by theta around the y axis (yaw).
func FromAngleY[S mathutil.Float](theta S) Basis3[S] {
	return Basis3[S]{mat: mathutil.RotY(theta)}
}

// FromAngleZ returns the rotation by theta around the z axis (roll).
func FromAngleZ[S mathutil.Float](theta S) Basis3[S] {
	return Basis3[S]{mat: mathutil.RotZ(theta)}
}

// FromQuaternion converts a quaternion to its matrix form. q is assumed to
// be unit-norm, which keeps the result orthogonal.
func FromQuaternion[S mathutil.Float](q mathutil.Quat[S]) Basis3[S] {
	return Basis3[S]{mat: q.ToMat3()}
}

// LookAt3 returns the rotation aligning dir with the +z axis, with up fixing
// the roll around it. dir and up must be non-zero and non-parallel; a
// degenerate pair yields a degenerate basis (unchecked).
func LookAt3[S mathutil.Float](dir, up mathutil.Vec3[S]) Basis3[S] {
	return Basis3[S]{mat: mathutil.LookAt3(dir, up)}
}

// BetweenVectors3 returns the shortest-arc rotation mapping unit vector a
// onto unit vector b, built through the quaternion form, which handles the
// full rotational freedom of space. Inputs must be unit length. An
// antiparallel pair turns by π around an arbitrary perpendicular axis.
func BetweenVectors3[S mathutil.Float](a, b mathutil.Vec3[S]) Basis3[S] {
	return FromQuaternion(mathutil.QuatBetween(a, b))
}

// RotateVector applies the rotation to a free vector.
func (b Basis3[S]) RotateVector(v mathutil.Vec3[S]) mathutil.Vec3[S] {
	return b.mat.MulVec3(v)
}

// RotatePoint applies the rotation to a point through its vector
// representation.
func (b Basis3[S]) RotatePoint(p mathutil.Point3[S]) mathutil.Point3[S] {
	return mathutil.Point3FromVec(b.RotateVector(p.ToVec()))
}

// Concat returns the combined rotation self × other; with column vectors,
// other acts first.
func (b Basis3[S]) Concat(other Basis3[S]) Basis3[S] {
	return Basis3[S]{mat: mathutil.Mat3Mul(b.mat, other.mat)}
}

// Invert returns the rotation that un-does this one. Panics if the wrapped
// matrix is singular, which only happens to corrupted values.
// TODO: use the transpose here, inverse == transpose for orthogonal
// matrices.
func (b Basis3[S]) Invert() Basis3[S] {
	inv, ok := b.mat.Inverse()
	if !ok {
		panic("rotation: Basis3 matrix is singular")
	}
	return Basis3[S]{mat: inv}
}

// ConcatSelf replaces b with b.Concat(other).
func (b *Basis3[S]) ConcatSelf(other Basis3[S]) {
	*b = b.Concat(other)
}

// InvertSelf replaces b with b.Invert().
func (b *Basis3[S]) InvertSelf() {
	*b = b.Invert()
}

// ApproxEq compares the wrapped matrices element-wise within eps.
func (b Basis3[S]) ApproxEq(other Basis3[S], eps S) bool {
	return b.mat.ApproxEq(other.mat, eps)
}

// Mat returns the dense matrix form.
func (b Basis3[S]) Mat() mathutil.Mat3[S] {
	return b.mat
}

// Quat returns the quaternion form.
func (b Basis3[S]) Quat() mathutil.Quat[S] {
	return b.mat.ToQuat()
}

func (b Basis3[S]) String() string {
	return fmt.Sprintf("Basis3 %v", b.mat.Rows())
}

// MarshalJSON encodes the raw row-major coefficients.
func (b Basis3[S]) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.mat)
}

// UnmarshalJSON decodes raw coefficients. The layout is structural only:
// nothing re-checks orthogonality, so decoding a non-rotation surfaces later
// as a failed Invert.
func (b *Basis3[S]) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &b.mat)
}
