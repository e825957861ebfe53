package mathutil

// Mat3 is a 3×3 matrix stored row-major: [r0c0, r0c1, r0c2, r1c0, ...].
// Vectors multiply as columns: Mat3 × v.
type Mat3[S Float] [9]S

func Mat3Identity[S Float]() Mat3[S] {
	return Mat3[S]{1, 0, 0, 0, 1, 0, 0, 0, 1}
}

// RotX returns a rotation around the X axis. Angle in radians.
func RotX[S Float](a S) Mat3[S] {
	s, c := Sincos(a)
	return Mat3[S]{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	}
}

// RotY returns a rotation around the Y axis.
func RotY[S Float](a S) Mat3[S] {
	s, c := Sincos(a)
	return Mat3[S]{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	}
}

// RotZ returns a rotation around the Z axis.
func RotZ[S Float](a S) Mat3[S] {
	s, c := Sincos(a)
	return Mat3[S]{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	}
}

// AxisAngle returns the rotation by angle a around axis, via the Rodrigues
// form. axis must have unit length; it is not renormalized here.
func AxisAngle[S Float](axis Vec3[S], a S) Mat3[S] {
	s, c := Sincos(a)
	t := 1 - c
	x, y, z := axis[0], axis[1], axis[2]
	return Mat3[S]{
		t*x*x + c, t*x*y - s*z, t*x*z + s*y,
		t*x*y + s*z, t*y*y + c, t*y*z - s*x,
		t*x*z - s*y, t*y*z + s*x, t*z*z + c,
	}
}

// EulerXYZ returns RotZ(z) × RotY(y) × RotX(x): the x rotation is applied to
// a vector first, then y, then z. The order is part of the contract.
func EulerXYZ[S Float](x, y, z S) Mat3[S] {
	return Mat3Mul(RotZ(z), Mat3Mul(RotY(y), RotX(x)))
}

// LookAt3 returns the rotation mapping dir onto the +z axis, with up fixing
// the roll around it. Rows are the orthonormalized side/up/forward frame.
// dir and up must be non-zero and non-parallel; violating that yields a
// degenerate basis (unchecked).
func LookAt3[S Float](dir, up Vec3[S]) Mat3[S] {
	d := dir.Normalize()
	side := up.Cross(d).Normalize()
	u := d.Cross(side)
	return Mat3[S]{
		side[0], side[1], side[2],
		u[0], u[1], u[2],
		d[0], d[1], d[2],
	}
}

// Mat3Mul returns a × b.
func Mat3Mul[S Float](a, b Mat3[S]) Mat3[S] {
	var m Mat3[S]
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			m[r*3+c] = a[r*3+0]*b[0*3+c] + a[r*3+1]*b[1*3+c] + a[r*3+2]*b[2*3+c]
		}
	}
	return m
}

// MulVec3 returns M × v.
func (m Mat3[S]) MulVec3(v Vec3[S]) Vec3[S] {
	return Vec3[S]{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2],
		m[3]*v[0] + m[4]*v[1] + m[5]*v[2],
		m[6]*v[0] + m[7]*v[1] + m[8]*v[2],
	}
}

func (m Mat3[S]) Det() S {
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}

// Inverse reports ok == false when the matrix is singular. It never invents a
// fallback value.
func (m Mat3[S]) Inverse() (Mat3[S], bool) {
	d := m.Det()
	if d == 0 {
		return Mat3[S]{}, false
	}
	invD := 1 / d
	return Mat3[S]{
		(m[4]*m[8] - m[5]*m[7]) * invD,
		(m[2]*m[7] - m[1]*m[8]) * invD,
		(m[1]*m[5] - m[2]*m[4]) * invD,
		(m[5]*m[6] - m[3]*m[8]) * invD,
		(m[0]*m[8] - m[2]*m[6]) * invD,
		(m[2]*m[3] - m[0]*m[5]) * invD,
		(m[3]*m[7] - m[4]*m[6]) * invD,
		(m[1]*m[6] - m[0]*m[7]) * invD,
		(m[0]*m[4] - m[1]*m[3]) * invD,
	}, true
}

func (m Mat3[S]) Transpose() Mat3[S] {
	return Mat3[S]{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// ToQuat converts a rotation matrix to the equivalent unit quaternion,
// branching on the largest diagonal term so the divisor stays well away from
// zero for every orientation.
func (m Mat3[S]) ToQuat() Quat[S] {
	var q Quat[S]
	if tr := m[0] + m[4] + m[8]; tr > 0 {
		s := Sqrt(tr+1) * 2
		q = Quat[S]{(m[7] - m[5]) / s, (m[2] - m[6]) / s, (m[3] - m[1]) / s, s / 4}
	} else if m[0] > m[4] && m[0] > m[8] {
		s := Sqrt(1+m[0]-m[4]-m[8]) * 2
		q = Quat[S]{s / 4, (m[1] + m[3]) / s, (m[2] + m[6]) / s, (m[7] - m[5]) / s}
	} else if m[4] > m[8] {
		s := Sqrt(1+m[4]-m[0]-m[8]) * 2
		q = Quat[S]{(m[1] + m[3]) / s, s / 4, (m[5] + m[7]) / s, (m[2] - m[6]) / s}
	} else {
		s := Sqrt(1+m[8]-m[0]-m[4]) * 2
		q = Quat[S]{(m[2] + m[6]) / s, (m[5] + m[7]) / s, s / 4, (m[3] - m[1]) / s}
	}
	return q.Normalize()
}

// Rows returns the coefficients as nested rows, mainly for printing.
func (m Mat3[S]) Rows() [3][3]S {
	return [3][3]S{
		{m[0], m[1], m[2]},
		{m[3], m[4], m[5]},
		{m[6], m[7], m[8]},
	}
}

func (m Mat3[S]) ApproxEq(o Mat3[S], eps S) bool {
	for i := range m {
		if !ApproxEq(m[i], o[i], eps) {
			return false
		}
	}
	return true
}
