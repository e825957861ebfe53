package mathutil

// Mat2 is a 2×2 matrix stored row-major: [r0c0, r0c1, r1c0, r1c1].
// Vectors multiply as columns: Mat2 × v.
type Mat2[S Float] [4]S

func Mat2Identity[S Float]() Mat2[S] {
	return Mat2[S]{1, 0, 0, 1}
}

// Rot2 returns the rotation by theta radians, counter-clockwise positive.
func Rot2[S Float](theta S) Mat2[S] {
	s, c := Sincos(theta)
	return Mat2[S]{
		c, -s,
		s, c,
	}
}

// LookAt2 returns the rotation mapping dir onto the +y axis. dir is
// normalized internally; a zero dir produces a degenerate basis. The plane
// has no roll freedom, so up only fixes the expected orientation: it must lie
// counter-clockwise of dir (unchecked).
func LookAt2[S Float](dir, up Vec2[S]) Mat2[S] {
	d := dir.Normalize()
	return Mat2[S]{
		d[1], -d[0],
		d[0], d[1],
	}
}

// Mat2Mul returns a × b.
func Mat2Mul[S Float](a, b Mat2[S]) Mat2[S] {
	return Mat2[S]{
		a[0]*b[0] + a[1]*b[2], a[0]*b[1] + a[1]*b[3],
		a[2]*b[0] + a[3]*b[2], a[2]*b[1] + a[3]*b[3],
	}
}

// MulVec2 returns M × v.
func (m Mat2[S]) MulVec2(v Vec2[S]) Vec2[S] {
	return Vec2[S]{
		m[0]*v[0] + m[1]*v[1],
		m[2]*v[0] + m[3]*v[1],
	}
}

func (m Mat2[S]) Det() S {
	return m[0]*m[3] - m[1]*m[2]
}

// Inverse reports ok == false when the matrix is singular. It never invents a
// fallback value.
func (m Mat2[S]) Inverse() (Mat2[S], bool) {
	d := m.Det()
	if d == 0 {
		return Mat2[S]{}, false
	}
	invD := 1 / d
	return Mat2[S]{
		m[3] * invD, -m[1] * invD,
		-m[2] * invD, m[0] * invD,
	}, true
}

func (m Mat2[S]) Transpose() Mat2[S] {
	return Mat2[S]{
		m[0], m[2],
		m[1], m[3],
	}
}

// Rows returns the coefficients as nested rows, mainly for printing.
func (m Mat2[S]) Rows() [2][2]S {
	return [2][2]S{
		{m[0], m[1]},
		{m[2], m[3]},
	}
}

func (m Mat2[S]) ApproxEq(o Mat2[S], eps S) bool {
	for i := range m {
		if !ApproxEq(m[i], o[i], eps) {
			return false
		}
	}
	return true
}
