package mathutil

// Vec3 is a 3-component vector (value type, stack-allocated).
type Vec3[S Float] [3]S

func Vec3UnitX[S Float]() Vec3[S] { return Vec3[S]{1, 0, 0} }
func Vec3UnitY[S Float]() Vec3[S] { return Vec3[S]{0, 1, 0} }
func Vec3UnitZ[S Float]() Vec3[S] { return Vec3[S]{0, 0, 1} }

func (a Vec3[S]) Add(b Vec3[S]) Vec3[S] {
	return Vec3[S]{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func (a Vec3[S]) Sub(b Vec3[S]) Vec3[S] {
	return Vec3[S]{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func (v Vec3[S]) Neg() Vec3[S] {
	return Vec3[S]{-v[0], -v[1], -v[2]}
}

func (v Vec3[S]) Scale(s S) Vec3[S] {
	return Vec3[S]{v[0] * s, v[1] * s, v[2] * s}
}

func (a Vec3[S]) Dot(b Vec3[S]) S {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func (a Vec3[S]) Cross(b Vec3[S]) Vec3[S] {
	return Vec3[S]{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func (v Vec3[S]) Len() S {
	return Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

func (v Vec3[S]) Normalize() Vec3[S] {
	l := v.Len()
	if l < 1e-12 {
		return Vec3[S]{}
	}
	return Vec3[S]{v[0] / l, v[1] / l, v[2] / l}
}

func (a Vec3[S]) ApproxEq(b Vec3[S], eps S) bool {
	return ApproxEq(a[0], b[0], eps) && ApproxEq(a[1], b[1], eps) && ApproxEq(a[2], b[2], eps)
}
