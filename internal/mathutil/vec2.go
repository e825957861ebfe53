package mathutil

// Vec2 is a 2-component vector (value type, stack-allocated).
type Vec2[S Float] [2]S

func Vec2UnitX[S Float]() Vec2[S] { return Vec2[S]{1, 0} }
func Vec2UnitY[S Float]() Vec2[S] { return Vec2[S]{0, 1} }

func (a Vec2[S]) Add(b Vec2[S]) Vec2[S] {
	return Vec2[S]{a[0] + b[0], a[1] + b[1]}
}

func (a Vec2[S]) Sub(b Vec2[S]) Vec2[S] {
	return Vec2[S]{a[0] - b[0], a[1] - b[1]}
}

func (v Vec2[S]) Neg() Vec2[S] {
	return Vec2[S]{-v[0], -v[1]}
}

func (v Vec2[S]) Scale(s S) Vec2[S] {
	return Vec2[S]{v[0] * s, v[1] * s}
}

func (a Vec2[S]) Dot(b Vec2[S]) S {
	return a[0]*b[0] + a[1]*b[1]
}

// PerpDot returns the 2D cross product a×b, the signed area of the
// parallelogram spanned by a and b.
func (a Vec2[S]) PerpDot(b Vec2[S]) S {
	return a[0]*b[1] - a[1]*b[0]
}

// Perp returns v rotated a quarter turn counter-clockwise.
func (v Vec2[S]) Perp() Vec2[S] {
	return Vec2[S]{-v[1], v[0]}
}

func (v Vec2[S]) Len() S {
	return Sqrt(v[0]*v[0] + v[1]*v[1])
}

func (v Vec2[S]) Normalize() Vec2[S] {
	l := v.Len()
	if l < 1e-12 {
		return Vec2[S]{}
	}
	return Vec2[S]{v[0] / l, v[1] / l}
}

func (a Vec2[S]) ApproxEq(b Vec2[S], eps S) bool {
	return ApproxEq(a[0], b[0], eps) && ApproxEq(a[1], b[1], eps)
}
