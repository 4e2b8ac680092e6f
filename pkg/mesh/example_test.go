package mesh_test

import (
	"fmt"

	"github.com/sayhiben/washi-cut/pkg/mesh"
)

func ExampleFromTriangles() {
	// Twelve triangles weld and merge into the six square faces of a d6.
	m, _ := mesh.FromTriangles(mesh.Cube(16))

	info := m.Info()
	fmt.Println("Triangles:", info.Triangles)
	fmt.Println("Faces:", info.Faces)
	fmt.Println("Vertices:", info.Vertices)
	fmt.Printf("Area: %.0f mm²\n", info.Area)
	// Output:
	// Triangles: 12
	// Faces: 6
	// Vertices: 8
	// Area: 1536 mm²
}
