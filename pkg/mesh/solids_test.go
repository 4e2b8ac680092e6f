package mesh

import (
	"math"
	"testing"

	"github.com/unixpickle/model3d/model3d"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestSolids_OutwardWinding(t *testing.T) {
	tests := []struct {
		name string
		tris []*model3d.Triangle
	}{
		{name: "tetrahedron", tris: Tetrahedron(10)},
		{name: "cube", tris: Cube(10)},
		{name: "octahedron", tris: Octahedron(10)},
		{name: "icosahedron", tris: Icosahedron(10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i, tri := range tt.tris {
				a := r3.Vec{X: tri[0].X, Y: tri[0].Y, Z: tri[0].Z}
				b := r3.Vec{X: tri[1].X, Y: tri[1].Y, Z: tri[1].Z}
				c := r3.Vec{X: tri[2].X, Y: tri[2].Y, Z: tri[2].Z}
				n := r3.Cross(r3.Sub(b, a), r3.Sub(c, a))
				centroid := r3.Scale(1.0/3, r3.Add(a, r3.Add(b, c)))
				if r3.Dot(n, centroid) <= 0 {
					t.Errorf("triangle %d winds inward", i)
				}
			}
		})
	}
}

func TestSolids_EdgeLength(t *testing.T) {
	tests := []struct {
		name  string
		tris  []*model3d.Triangle
		faces int
	}{
		{name: "tetrahedron", tris: Tetrahedron(7), faces: 4},
		{name: "octahedron", tris: Octahedron(7), faces: 8},
		{name: "icosahedron", tris: Icosahedron(7), faces: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := FromTriangles(tt.tris)
			if err != nil {
				t.Fatalf("FromTriangles() error = %v", err)
			}
			if len(m.Faces) != tt.faces {
				t.Fatalf("len(Faces) = %d, want %d", len(m.Faces), tt.faces)
			}
			for _, f := range m.Faces {
				for i := range f.Pts {
					e := r3.Norm(r3.Sub(f.Pts[(i+1)%len(f.Pts)], f.Pts[i]))
					if math.Abs(e-7) > 1e-9 {
						t.Errorf("face %d edge %d length = %v, want 7", f.ID, i, e)
					}
				}
			}
		})
	}
}
