package mathutil

// Points are positions, vectors are displacements. They share a layout, so a
// rotation acts on a point through its vector representation.

// Point2 is a position in the plane.
type Point2[S Float] [2]S

// Point3 is a position in space.
type Point3[S Float] [3]S

func Point2FromVec[S Float](v Vec2[S]) Point2[S] { return Point2[S](v) }
func Point3FromVec[S Float](v Vec3[S]) Point3[S] { return Point3[S](v) }

func (p Point2[S]) ToVec() Vec2[S] { return Vec2[S](p) }
func (p Point3[S]) ToVec() Vec3[S] { return Vec3[S](p) }

func (a Point2[S]) ApproxEq(b Point2[S], eps S) bool {
	return a.ToVec().ApproxEq(b.ToVec(), eps)
}

func (a Point3[S]) ApproxEq(b Point3[S], eps S) bool {
	return a.ToVec().ApproxEq(b.ToVec(), eps)
}
