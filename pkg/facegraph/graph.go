package facegraph

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/sayhiben/washi-cut/pkg/mesh"
)

// MalformedMeshError reports a mesh that cannot form a valid face-adjacency
// graph: a boundary segment with the wrong number of incident faces, or a
// face with no area. It is fatal; no unfolding is attempted.
type MalformedMeshError struct {
	Reason string
	Faces  []int
}

func (e *MalformedMeshError) Error() string {
	if len(e.Faces) == 0 {
		return "malformed mesh: " + e.Reason
	}
	return fmt.Sprintf("malformed mesh: %s (faces %v)", e.Reason, e.Faces)
}

// Edge is one undirected adjacency between two faces, carrying the shared
// boundary segment they hinge around.
type Edge struct {
	// ID indexes this edge in Graph.Edges.
	ID int

	// A and B are the incident face IDs, A < B.
	A, B int

	// VertP and VertQ are the mesh vertex indices of the segment endpoints,
	// VertP < VertQ.
	VertP, VertQ int

	// P and Q are the endpoint positions.
	P, Q r3.Vec

	// Length is the segment length in mm.
	Length float64

	// Dihedral is the interior angle between the two face planes in
	// radians. Convex blanks keep this strictly below pi.
	Dihedral float64
}

// Other returns the face on the opposite side of the edge from face id.
func (e Edge) Other(id int) int {
	if id == e.A {
		return e.B
	}
	return e.A
}

// Graph is the face-adjacency graph of a mesh. It is immutable after Build.
type Graph struct {
	Mesh  *mesh.Mesh
	Edges []Edge

	adj    [][]int       // face ID -> sorted neighbor face IDs
	edgeOf map[[2]int]int // face pair (lo,hi) -> index into Edges
}

// Build derives the adjacency graph from a merged mesh.
func Build(m *mesh.Mesh) (*Graph, error) {
	type incidence struct {
		faces []int
	}

	for _, f := range m.Faces {
		if f.Area() < 1e-12 {
			return nil, &MalformedMeshError{Reason: "zero-area face", Faces: []int{f.ID}}
		}
	}

	byKey := make(map[[2]int]*incidence)
	var keys [][2]int
	for _, f := range m.Faces {
		for i := range f.Loop {
			k := segKey(f.Loop[i], f.Loop[(i+1)%len(f.Loop)])
			inc, ok := byKey[k]
			if !ok {
				inc = &incidence{}
				byKey[k] = inc
				keys = append(keys, k)
			}
			inc.faces = append(inc.faces, f.ID)
		}
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i][0] != keys[j][0] {
			return keys[i][0] < keys[j][0]
		}
		return keys[i][1] < keys[j][1]
	})

	g := &Graph{
		Mesh:   m,
		adj:    make([][]int, len(m.Faces)),
		edgeOf: make(map[[2]int]int),
	}
	for _, k := range keys {
		inc := byKey[k]
		if len(inc.faces) != 2 {
			return nil, &MalformedMeshError{
				Reason: fmt.Sprintf("segment %d-%d shared by %d faces, want 2", k[0], k[1], len(inc.faces)),
				Faces:  inc.faces,
			}
		}
		a, b := inc.faces[0], inc.faces[1]
		if a > b {
			a, b = b, a
		}
		if a == b {
			return nil, &MalformedMeshError{
				Reason: fmt.Sprintf("segment %d-%d appears twice on one face", k[0], k[1]),
				Faces:  []int{a},
			}
		}
		if _, dup := g.edgeOf[[2]int{a, b}]; dup {
			// Two faces of a convex blank meet along at most one segment.
			return nil, &MalformedMeshError{
				Reason: "faces share more than one segment",
				Faces:  []int{a, b},
			}
		}

		p, q := m.Verts[k[0]], m.Verts[k[1]]
		e := Edge{
			ID:       len(g.Edges),
			A:        a,
			B:        b,
			VertP:    k[0],
			VertQ:    k[1],
			P:        p,
			Q:        q,
			Length:   r3.Norm(r3.Sub(q, p)),
			Dihedral: dihedral(m.Faces[a].Normal, m.Faces[b].Normal),
		}
		g.edgeOf[[2]int{a, b}] = e.ID
		g.Edges = append(g.Edges, e)
		g.adj[a] = append(g.adj[a], b)
		g.adj[b] = append(g.adj[b], a)
	}

	for i := range g.adj {
		sort.Ints(g.adj[i])
	}
	return g, nil
}

// Neighbors returns the faces adjacent to id, in ascending order. The
// returned slice is shared; callers must not mutate it.
func (g *Graph) Neighbors(id int) []int {
	return g.adj[id]
}

// Degree returns the number of faces adjacent to id.
func (g *Graph) Degree(id int) int {
	return len(g.adj[id])
}

// EdgeBetween returns the edge joining faces a and b, if any.
func (g *Graph) EdgeBetween(a, b int) (Edge, bool) {
	if a > b {
		a, b = b, a
	}
	i, ok := g.edgeOf[[2]int{a, b}]
	if !ok {
		return Edge{}, false
	}
	return g.Edges[i], true
}

// MaxDegreeFace returns the face with the most neighbors, lowest ID on
// ties. Planners use it as the unfolding seed.
func (g *Graph) MaxDegreeFace() int {
	best := 0
	for id := range g.adj {
		if len(g.adj[id]) > len(g.adj[best]) {
			best = id
		}
	}
	return best
}

// dihedral computes the interior angle between two face planes from their
// outward normals.
func dihedral(na, nb r3.Vec) float64 {
	d := r3.Dot(na, nb)
	if d > 1 {
		d = 1
	} else if d < -1 {
		d = -1
	}
	return math.Pi - math.Acos(d)
}

func segKey(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}
