// Package mesh loads triangle meshes and condenses them into the polygonal
// faces of a die blank.
//
// # Overview
//
// STL files describe a solid as a triangle soup, but a die blank is better
// thought of as a handful of flat polygons: a cube is six squares, not twelve
// triangles. [Load] reads an STL file, welds duplicate vertices, verifies the
// soup is a closed manifold with consistent winding, and merges coplanar
// triangle runs into [Face] polygons with ordered boundary loops.
//
// # Coordinate frames
//
// All positions are millimeters. Each face additionally carries a flat
// projection of its boundary in its own plane ([Face.Local]), which is what
// downstream unfolding works with: hinging a face onto a neighbor is a rigid
// motion of these local coordinates, never a new projection.
//
// # Basic Usage
//
//	m, err := mesh.Load("d20.stl", mesh.Millimeter)
//	if err != nil { ... }
//	for _, f := range m.Faces {
//		fmt.Println(f.ID, len(f.Loop), f.Normal)
//	}
//
// The package also generates the classic blank shapes ([Tetrahedron], [Cube],
// [Octahedron], [Icosahedron]) as triangle soups, used by the sample command
// and as test fixtures.
package mesh
