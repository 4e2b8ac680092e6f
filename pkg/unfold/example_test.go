package unfold_test

import (
	"fmt"

	"github.com/sayhiben/washi-cut/pkg/facegraph"
	"github.com/sayhiben/washi-cut/pkg/mesh"
	"github.com/sayhiben/washi-cut/pkg/unfold"
)

func ExampleBFSPlanner() {
	// Unfold a d6 blank onto 20mm tape. Four faces flatten into one long
	// run; the two remaining faces each seed their own strip.
	m, _ := mesh.FromTriangles(mesh.Cube(16))
	g, _ := facegraph.Build(m)

	planner := unfold.BFSPlanner{Tape: 20}
	strips, _ := planner.Plan(g)

	fmt.Println("Strips:", len(strips))
	fmt.Println("Faces in first strip:", len(strips[0].Faces))
	fmt.Printf("First strip: %.0f x %.0f mm\n", strips[0].Width, strips[0].Height)
	// Output:
	// Strips: 3
	// Faces in first strip: 4
	// First strip: 64 x 16 mm
}

func ExampleMinTape() {
	// Every face of a 16mm cube is a 16mm square, so no narrower tape can
	// hold the blank in any pose.
	m, _ := mesh.FromTriangles(mesh.Cube(16))
	g, _ := facegraph.Build(m)

	need, face := unfold.MinTape(g)
	fmt.Printf("face f%d needs %gmm\n", face, need)
	// Output:
	// face f0 needs 16mm
}
