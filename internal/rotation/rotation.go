// Package rotation provides origin-fixing, length-preserving transformations
// of the plane and of space, backed by orthogonal matrices. Values are
// immutable and safe to copy across goroutines; every operation is a pure
// function.
package rotation

import "rotkit/internal/mathutil"

// Rotation is the contract shared by every rotation representation: an
// invertible transformation over vectors V and points P that fixes the
// origin and composes with other rotations of the same representation R.
//
// Constructors (identity, look-at, between-vectors, angle forms) are package
// functions on the concrete types, since Go interfaces cannot carry them.
type Rotation[R, V, P any, S mathutil.Float] interface {
	// RotateVector applies the rotation to a free vector.
	RotateVector(V) V
	// RotatePoint applies the rotation to a point through its vector
	// representation.
	RotatePoint(P) P
	// Concat combines this rotation with another of the same representation.
	// The result's matrix is self × other, so with column vectors `other`
	// acts on a vector first.
	Concat(R) R
	// Invert returns the rotation that un-does this one:
	// r.Concat(r.Invert()) is approximately the identity.
	Invert() R
	// ApproxEq compares element-wise within eps. Needed because
	// floating-point rotation results rarely match bit-for-bit.
	ApproxEq(R, S) bool
}

// Rotation2 is a rotation of the plane, convertible to its dense matrix.
// Basis2 is the canonical representation.
type Rotation2[R any, S mathutil.Float] interface {
	Rotation[R, mathutil.Vec2[S], mathutil.Point2[S], S]
	Mat() mathutil.Mat2[S]
}

// Rotation3 is a rotation of space, convertible to its dense matrix and to a
// quaternion. Basis3 and Quat are the canonical representations.
type Rotation3[R any, S mathutil.Float] interface {
	Rotation[R, mathutil.Vec3[S], mathutil.Point3[S], S]
	Mat() mathutil.Mat3[S]
	Quat() mathutil.Quat[S]
}

var (
	_ Rotation2[Basis2[float32], float32] = Basis2[float32]{}
	_ Rotation2[Basis2[float64], float64] = Basis2[float64]{}
	_ Rotation3[Basis3[float32], float32] = Basis3[float32]{}
	_ Rotation3[Basis3[float64], float64] = Basis3[float64]{}
)
