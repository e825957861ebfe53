package mathutil

import "math"

// Quat is a quaternion stored (x, y, z, w).
type Quat[S Float] [4]S

func QuatIdentity[S Float]() Quat[S] {
	return Quat[S]{0, 0, 0, 1}
}

// QuatFromAxisAngle returns the rotation by angle a around axis. axis must
// have unit length.
func QuatFromAxisAngle[S Float](axis Vec3[S], a S) Quat[S] {
	s, c := Sincos(a / 2)
	return Quat[S]{axis[0] * s, axis[1] * s, axis[2] * s, c}
}

// QuatFromEuler converts Euler XYZ (radians) to a quaternion. Same axis
// order as EulerXYZ: x applied first, then y, then z.
func QuatFromEuler[S Float](rx, ry, rz S) Quat[S] {
	sx, cx := Sincos(rx / 2)
	sy, cy := Sincos(ry / 2)
	sz, cz := Sincos(rz / 2)

	return Quat[S]{
		sx*cy*cz - cx*sy*sz, // x
		cx*sy*cz + sx*cy*sz, // y
		cx*cy*sz - sx*sy*cz, // z
		cx*cy*cz + sx*sy*sz, // w
	}
}

// QuatBetween returns the shortest-arc rotation mapping unit vector a onto
// unit vector b. Inputs must be unit length; they are not normalized here.
// An antiparallel pair has no unique shortest arc, so that case turns by π
// around an arbitrary axis perpendicular to a.
func QuatBetween[S Float](a, b Vec3[S]) Quat[S] {
	d := a.Dot(b)
	if d < -1+1e-6 {
		axis := Vec3UnitX[S]().Cross(a)
		if axis.Len() < 1e-6 {
			axis = Vec3UnitY[S]().Cross(a)
		}
		return QuatFromAxisAngle(axis.Normalize(), S(math.Pi))
	}
	s := Sqrt((1 + d) * 2)
	c := a.Cross(b)
	return Quat[S]{c[0] / s, c[1] / s, c[2] / s, s / 2}
}

// Mul returns the Hamilton product a ⊗ b.
func (a Quat[S]) Mul(b Quat[S]) Quat[S] {
	ax, ay, az, aw := a[0], a[1], a[2], a[3]
	bx, by, bz, bw := b[0], b[1], b[2], b[3]
	return Quat[S]{
		aw*bx + ax*bw + ay*bz - az*by,
		aw*by - ax*bz + ay*bw + az*bx,
		aw*bz + ax*by - ay*bx + az*bw,
		aw*bw - ax*bx - ay*by - az*bz,
	}
}

// Conjugate is the inverse for unit quaternions.
func (q Quat[S]) Conjugate() Quat[S] {
	return Quat[S]{-q[0], -q[1], -q[2], q[3]}
}

func (a Quat[S]) Dot(b Quat[S]) S {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] + a[3]*b[3]
}

func (q Quat[S]) Len() S {
	return Sqrt(q.Dot(q))
}

func (q Quat[S]) Normalize() Quat[S] {
	l := q.Len()
	if l < 1e-12 {
		return QuatIdentity[S]()
	}
	return Quat[S]{q[0] / l, q[1] / l, q[2] / l, q[3] / l}
}

// Rotate applies the rotation to a vector: q v q⁻¹ for unit q.
func (q Quat[S]) Rotate(v Vec3[S]) Vec3[S] {
	qv := Vec3[S]{q[0], q[1], q[2]}
	t := qv.Cross(v).Scale(2)
	return v.Add(t.Scale(q[3])).Add(qv.Cross(t))
}

// ToMat3 converts a unit quaternion to a 3×3 rotation matrix.
func (q Quat[S]) ToMat3() Mat3[S] {
	x, y, z, w := q[0], q[1], q[2], q[3]
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z

	return Mat3[S]{
		1 - 2*(yy+zz), 2 * (xy - wz), 2 * (xz + wy),
		2 * (xy + wz), 1 - 2*(xx+zz), 2 * (yz - wx),
		2 * (xz - wy), 2 * (yz + wx), 1 - 2*(xx+yy),
	}
}

// ApproxEq treats q and -q as distinct; callers comparing orientations
// rather than quaternion values should compare matrices instead.
func (a Quat[S]) ApproxEq(b Quat[S], eps S) bool {
	for i := range a {
		if !ApproxEq(a[i], b[i], eps) {
			return false
		}
	}
	return true
}
