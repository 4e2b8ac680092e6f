// Package facegraph derives the face-adjacency graph of a polyhedral mesh:
// one node per polygonal face, one undirected edge per shared boundary
// segment. This is the dual structure every unfolding strategy walks.
//
// The graph is a pure derivation of the mesh. Nodes are face IDs, edges are
// explicit [Edge] records carrying the shared 3D segment and the interior
// dihedral angle, so planners never have to re-derive geometry.
//
// [Build] validates while it derives: on a closed convex blank every face
// boundary segment must be shared by exactly two faces, and every face must
// have positive area. Violations surface as [*MalformedMeshError].
package facegraph
