package mesh

import (
	"errors"
	"fmt"
	"math"

	"github.com/jbeda/geom"
	"github.com/unixpickle/model3d/model3d"
	"gonum.org/v1/gonum/spatial/r3"
)

var (
	// ErrNoTriangles is returned by [FromTriangles] and [Load] when the
	// input contains no usable triangles.
	ErrNoTriangles = errors.New("mesh has no triangles")

	// ErrNotManifold is returned when a triangle edge is not shared by
	// exactly two triangles, or the two sides disagree on winding. Such a
	// soup is not a closed solid and cannot be unfolded.
	ErrNotManifold = errors.New("mesh is not a closed manifold")
)

const (
	// weldEps is the vertex-welding grid in millimeters. Vertices closer
	// than this collapse to a single index.
	weldEps = 1e-6

	// coplanarCos bounds the dot product of unit normals that still counts
	// as coplanar during facet merging.
	coplanarCos = 1.0 - 1e-8
)

// Face is one flat polygon of the blank: the result of merging a coplanar
// run of triangles. The boundary is stored three ways that stay in sync:
// vertex indices into the parent mesh (Loop), 3D positions (Pts), and flat
// in-plane coordinates (Local). Faces are immutable after construction.
type Face struct {
	// ID indexes this face in Mesh.Faces.
	ID int

	// Loop holds the ordered boundary vertex indices. The loop runs
	// counter-clockwise when viewed from outside the solid.
	Loop []int

	// Pts holds the 3D position of each Loop vertex, in order.
	Pts []r3.Vec

	// Normal is the outward unit normal of the face plane.
	Normal r3.Vec

	// Local projects the boundary into the face's own plane: origin at
	// Pts[0], x along the first boundary edge. Signed area is positive.
	Local []geom.Coord
}

// Area returns the face's polygon area in mm².
func (f Face) Area() float64 {
	return math.Abs(signedArea(f.Local))
}

// Centroid returns the 3D centroid of the boundary vertices.
func (f Face) Centroid() r3.Vec {
	var c r3.Vec
	for _, p := range f.Pts {
		c = r3.Add(c, p)
	}
	return r3.Scale(1/float64(len(f.Pts)), c)
}

// Mesh is a welded, validated polyhedron surface. Verts holds every distinct
// vertex once; Faces partition the surface into maximal coplanar polygons.
type Mesh struct {
	Verts []r3.Vec
	Faces []Face

	// TriangleCount is the number of input triangles before merging.
	TriangleCount int

	// DroppedTriangles counts degenerate (zero-area) input triangles that
	// were discarded during welding.
	DroppedTriangles int
}

// Info summarizes a mesh for display.
type Info struct {
	Triangles int
	Faces     int
	Vertices  int
	Edges     int
	Min, Max  r3.Vec
	Area      float64
}

// Info computes summary statistics over the mesh.
func (m *Mesh) Info() Info {
	info := Info{
		Triangles: m.TriangleCount,
		Faces:     len(m.Faces),
		Vertices:  len(m.Verts),
	}
	if len(m.Verts) > 0 {
		info.Min, info.Max = m.Verts[0], m.Verts[0]
	}
	for _, v := range m.Verts {
		info.Min.X = math.Min(info.Min.X, v.X)
		info.Min.Y = math.Min(info.Min.Y, v.Y)
		info.Min.Z = math.Min(info.Min.Z, v.Z)
		info.Max.X = math.Max(info.Max.X, v.X)
		info.Max.Y = math.Max(info.Max.Y, v.Y)
		info.Max.Z = math.Max(info.Max.Z, v.Z)
	}
	edges := make(map[[2]int]struct{})
	for _, f := range m.Faces {
		info.Area += f.Area()
		for i := range f.Loop {
			edges[edgeKey(f.Loop[i], f.Loop[(i+1)%len(f.Loop)])] = struct{}{}
		}
	}
	info.Edges = len(edges)
	return info
}

// FromTriangles welds a triangle soup into a Mesh, verifying that it forms a
// closed, consistently wound manifold, and merges coplanar triangles into
// polygonal faces. Zero-area triangles are dropped.
func FromTriangles(tris []*model3d.Triangle) (*Mesh, error) {
	m := &Mesh{TriangleCount: len(tris)}

	w := newWelder()
	var corners [][3]int
	for _, t := range tris {
		var c [3]int
		for i := 0; i < 3; i++ {
			c[i] = w.index(r3.Vec{X: t[i].X, Y: t[i].Y, Z: t[i].Z})
		}
		if c[0] == c[1] || c[1] == c[2] || c[2] == c[0] {
			m.DroppedTriangles++
			continue
		}
		if triNormal(w.verts, c) == (r3.Vec{}) {
			m.DroppedTriangles++
			continue
		}
		corners = append(corners, c)
	}
	if len(corners) == 0 {
		return nil, ErrNoTriangles
	}
	m.Verts = w.verts

	if err := checkManifold(corners); err != nil {
		return nil, err
	}

	faces, err := mergeCoplanar(m.Verts, corners)
	if err != nil {
		return nil, err
	}
	m.Faces = faces
	return m, nil
}

// checkManifold verifies that every directed edge appears exactly once and
// its reverse exactly once. That is equivalent to the soup being watertight
// with consistent outward winding.
func checkManifold(corners [][3]int) error {
	directed := make(map[[2]int]int)
	for _, c := range corners {
		for i := 0; i < 3; i++ {
			e := [2]int{c[i], c[(i+1)%3]}
			directed[e]++
			if directed[e] > 1 {
				return fmt.Errorf("%w: edge %d-%d traversed twice in the same direction", ErrNotManifold, e[0], e[1])
			}
		}
	}
	for e := range directed {
		if directed[[2]int{e[1], e[0]}] != 1 {
			return fmt.Errorf("%w: edge %d-%d has no mate", ErrNotManifold, e[0], e[1])
		}
	}
	return nil
}

// welder deduplicates vertices on a fixed grid.
type welder struct {
	verts []r3.Vec
	seen  map[[3]int64]int
}

func newWelder() *welder {
	return &welder{seen: make(map[[3]int64]int)}
}

func (w *welder) index(v r3.Vec) int {
	k := [3]int64{
		int64(math.Round(v.X / weldEps)),
		int64(math.Round(v.Y / weldEps)),
		int64(math.Round(v.Z / weldEps)),
	}
	if i, ok := w.seen[k]; ok {
		return i
	}
	i := len(w.verts)
	w.seen[k] = i
	w.verts = append(w.verts, v)
	return i
}

// triNormal returns the (unnormalized) winding normal of a corner triple, or
// the zero vector for degenerate triangles.
func triNormal(verts []r3.Vec, c [3]int) r3.Vec {
	n := r3.Cross(r3.Sub(verts[c[1]], verts[c[0]]), r3.Sub(verts[c[2]], verts[c[0]]))
	if r3.Norm(n) < weldEps*weldEps {
		return r3.Vec{}
	}
	return n
}

// edgeKey builds an order-independent map key for an undirected edge.
func edgeKey(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}

// signedArea is the shoelace area of a 2D polygon, positive for
// counter-clockwise loops.
func signedArea(pts []geom.Coord) float64 {
	var s float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		s += p.X*q.Y - q.X*p.Y
	}
	return s / 2
}
