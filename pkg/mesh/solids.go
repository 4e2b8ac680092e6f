package mesh

import (
	"math"

	"github.com/unixpickle/model3d/model3d"
	"gonum.org/v1/gonum/spatial/r3"
)

// The classic die blanks, generated as triangle soups centered on the
// origin. The edge argument is the polyhedron edge length in millimeters.
// These drive the sample command and double as test fixtures.

// Tetrahedron returns a regular tetrahedron (d4 blank).
func Tetrahedron(edge float64) []*model3d.Triangle {
	s := edge / (2 * math.Sqrt2)
	verts := []r3.Vec{
		{X: s, Y: s, Z: s},
		{X: s, Y: -s, Z: -s},
		{X: -s, Y: s, Z: -s},
		{X: -s, Y: -s, Z: s},
	}
	faces := [][3]int{{0, 1, 2}, {0, 2, 3}, {0, 3, 1}, {1, 3, 2}}
	return solid(verts, faces)
}

// Cube returns an axis-aligned cube (d6 blank).
func Cube(edge float64) []*model3d.Triangle {
	s := edge / 2
	verts := []r3.Vec{
		{X: -s, Y: -s, Z: -s}, {X: s, Y: -s, Z: -s},
		{X: s, Y: s, Z: -s}, {X: -s, Y: s, Z: -s},
		{X: -s, Y: -s, Z: s}, {X: s, Y: -s, Z: s},
		{X: s, Y: s, Z: s}, {X: -s, Y: s, Z: s},
	}
	quads := [][4]int{
		{0, 1, 2, 3}, // bottom
		{4, 5, 6, 7}, // top
		{0, 1, 5, 4},
		{1, 2, 6, 5},
		{2, 3, 7, 6},
		{3, 0, 4, 7},
	}
	var faces [][3]int
	for _, q := range quads {
		faces = append(faces, [3]int{q[0], q[1], q[2]}, [3]int{q[0], q[2], q[3]})
	}
	return solid(verts, faces)
}

// Octahedron returns a regular octahedron (d8 blank).
func Octahedron(edge float64) []*model3d.Triangle {
	s := edge / math.Sqrt2
	verts := []r3.Vec{
		{X: s}, {X: -s},
		{Y: s}, {Y: -s},
		{Z: s}, {Z: -s},
	}
	faces := [][3]int{
		{0, 2, 4}, {2, 1, 4}, {1, 3, 4}, {3, 0, 4},
		{0, 2, 5}, {2, 1, 5}, {1, 3, 5}, {3, 0, 5},
	}
	return solid(verts, faces)
}

// Icosahedron returns a regular icosahedron (d20 blank).
func Icosahedron(edge float64) []*model3d.Triangle {
	phi := (1 + math.Sqrt(5)) / 2
	s := edge / 2
	p := s * phi
	verts := []r3.Vec{
		{X: -s, Y: p}, {X: s, Y: p}, {X: -s, Y: -p}, {X: s, Y: -p},
		{Y: -s, Z: p}, {Y: s, Z: p}, {Y: -s, Z: -p}, {Y: s, Z: -p},
		{X: p, Z: -s}, {X: p, Z: s}, {X: -p, Z: -s}, {X: -p, Z: s},
	}
	faces := [][3]int{
		{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
		{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
		{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
		{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
	}
	return solid(verts, faces)
}

// solid builds triangles from vertex and index tables, flipping any triangle
// whose winding normal points toward the origin. Valid for convex solids
// centered on the origin, which all the blanks are.
func solid(verts []r3.Vec, faces [][3]int) []*model3d.Triangle {
	tris := make([]*model3d.Triangle, 0, len(faces))
	for _, f := range faces {
		a, b, c := verts[f[0]], verts[f[1]], verts[f[2]]
		n := r3.Cross(r3.Sub(b, a), r3.Sub(c, a))
		centroid := r3.Scale(1.0/3, r3.Add(a, r3.Add(b, c)))
		if r3.Dot(n, centroid) < 0 {
			b, c = c, b
		}
		tris = append(tris, &model3d.Triangle{coord3D(a), coord3D(b), coord3D(c)})
	}
	return tris
}

func coord3D(v r3.Vec) model3d.Coord3D {
	return model3d.Coord3D{X: v.X, Y: v.Y, Z: v.Z}
}
