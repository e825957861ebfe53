package rotation

import (
	"encoding/json"
	"fmt"

	"rotkit/internal/mathutil"
)

// Basis2 is a rotation of the plane backed by an orthogonal 2×2 matrix.
// The wrapped matrix is only ever written by the constructors in this
// package and by Concat/Invert, so it stays a pure rotation: no scale,
// shear, or reflection can enter through the API.
type Basis2[S mathutil.Float] struct {
	mat mathutil.Mat2[S]
}

// One2 returns the identity rotation.
func One2[S mathutil.Float]() Basis2[S] {
	return Basis2[S]{mat: mathutil.Mat2Identity[S]()}
}

// FromAngle returns the rotation by theta radians, counter-clockwise
// positive.
func FromAngle[S mathutil.Float](theta S) Basis2[S] {
	return Basis2[S]{mat: mathutil.Rot2(theta)}
}

// LookAt2 returns the rotation aligning dir with the +y axis. dir and up
// must be non-zero and non-parallel; a degenerate pair yields a degenerate
// basis (unchecked).
func LookAt2[S mathutil.Float](dir, up mathutil.Vec2[S]) Basis2[S] {
	return Basis2[S]{mat: mathutil.LookAt2(dir, up)}
}

// BetweenVectors2 returns the shortest rotation mapping unit vector a onto
// unit vector b, using the signed angle between them so clockwise targets
// rotate clockwise. Inputs must be unit length; they are not normalized
// here.
func BetweenVectors2[S mathutil.Float](a, b mathutil.Vec2[S]) Basis2[S] {
	return FromAngle(mathutil.Atan2(a.PerpDot(b), a.Dot(b)))
}

// RotateVector applies the rotation to a free vector.
func (b Basis2[S]) RotateVector(v mathutil.Vec2[S]) mathutil.Vec2[S] {
	return b.mat.MulVec2(v)
}

// RotatePoint applies the rotation to a point through its vector
// representation.
func (b Basis2[S]) RotatePoint(p mathutil.Point2[S]) mathutil.Point2[S] {
	return mathutil.Point2FromVec(b.RotateVector(p.ToVec()))
}

// Concat returns the combined rotation self × other; with column vectors,
// other acts first.
func (b Basis2[S]) Concat(other Basis2[S]) Basis2[S] {
	return Basis2[S]{mat: mathutil.Mat2Mul(b.mat, other.mat)}
}

// Invert returns the rotation that un-does this one. An orthogonal matrix is
// always invertible, so a failed inversion means the value was corrupted
// (e.g. decoded from garbage); that panics rather than returning a wrong
// answer.
// TODO: use the transpose here, inverse == transpose for orthogonal
// matrices.
func (b Basis2[S]) Invert() Basis2[S] {
	inv, ok := b.mat.Inverse()
	if !ok {
		panic("rotation: Basis2 matrix is singular")
	}
	return Basis2[S]{mat: inv}
}

// ConcatSelf replaces b with b.Concat(other).
func (b *Basis2[S]) ConcatSelf(other Basis2[S]) {
	*b = b.Concat(other)
}

// InvertSelf replaces b with b.Invert().
func (b *Basis2[S]) InvertSelf() {
	*b = b.Invert()
}

// ApproxEq compares the wrapped matrices element-wise within eps.
func (b Basis2[S]) ApproxEq(other Basis2[S], eps S) bool {
	return b.mat.ApproxEq(other.mat, eps)
}

// Mat returns the dense matrix form.
func (b Basis2[S]) Mat() mathutil.Mat2[S] {
	return b.mat
}

func (b Basis2[S]) String() string {
	return fmt.Sprintf("Basis2 %v", b.mat.Rows())
}

// MarshalJSON encodes the raw row-major coefficients.
func (b Basis2[S]) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.mat)
}

// UnmarshalJSON decodes raw coefficients. The layout is structural only:
// nothing re-checks orthogonality, so decoding a non-rotation surfaces later
// as a failed Invert.
func (b *Basis2[S]) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &b.mat)
}
