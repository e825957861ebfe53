package raster

import "rotkit/internal/mathutil"

// Mesh is a triangle mesh centered on the origin, which keeps rotations
// origin-fixing without a translation step.
type Mesh struct {
	Verts []mathutil.Vec3[float64]
	Faces [][3]int
	R     uint8
	G     uint8
	B     uint8
}

// Cube returns a unit-ish cube, 12 triangles.
func Cube() Mesh {
	v := []mathutil.Vec3[float64]{
		{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
		{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
	}
	f := [][3]int{
		{0, 1, 2}, {0, 2, 3}, // back
		{5, 4, 7}, {5, 7, 6}, // front
		{4, 0, 3}, {4, 3, 7}, // left
		{1, 5, 6}, {1, 6, 2}, // right
		{3, 2, 6}, {3, 6, 7}, // top
		{4, 5, 1}, {4, 1, 0}, // bottom
	}
	return Mesh{Verts: v, Faces: f, R: 176, G: 196, B: 222}
}

// Icosahedron returns a regular icosahedron, 20 triangles.
func Icosahedron() Mesh {
	const phi = 1.618033988749895
	v := []mathutil.Vec3[float64]{
		{-1, phi, 0}, {1, phi, 0}, {-1, -phi, 0}, {1, -phi, 0},
		{0, -1, phi}, {0, 1, phi}, {0, -1, -phi}, {0, 1, -phi},
		{phi, 0, -1}, {phi, 0, 1}, {-phi, 0, -1}, {-phi, 0, 1},
	}
	f := [][3]int{
		{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
		{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
		{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
		{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
	}
	return Mesh{Verts: v, Faces: f, R: 222, G: 184, B: 135}
}

// ByName maps a config model name to its mesh builder.
func ByName(name string) (Mesh, bool) {
	switch name {
	case "", "cube":
		return Cube(), true
	case "icosahedron":
		return Icosahedron(), true
	}
	return Mesh{}, false
}
