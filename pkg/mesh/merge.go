package mesh

import (
	"fmt"
	"sort"

	"github.com/jbeda/geom"
	"gonum.org/v1/gonum/spatial/r3"
)

// mergeCoplanar groups triangles whose shared edges are flat folds and turns
// each group into a single polygonal Face with an ordered boundary loop.
func mergeCoplanar(verts []r3.Vec, corners [][3]int) ([]Face, error) {
	normals := make([]r3.Vec, len(corners))
	for i, c := range corners {
		normals[i] = r3.Unit(triNormal(verts, c))
	}

	// Union triangles across edges where the two normals agree.
	uf := newUnionFind(len(corners))
	owner := make(map[[2]int]int)
	for i, c := range corners {
		for j := 0; j < 3; j++ {
			k := edgeKey(c[j], c[(j+1)%3])
			if prev, ok := owner[k]; ok {
				if r3.Dot(normals[i], normals[prev]) >= coplanarCos {
					uf.union(i, prev)
				}
			} else {
				owner[k] = i
			}
		}
	}

	groups := make(map[int][]int)
	for i := range corners {
		root := uf.find(i)
		groups[root] = append(groups[root], i)
	}

	// Stable face numbering regardless of map iteration order.
	roots := make([]int, 0, len(groups))
	for root := range groups {
		roots = append(roots, root)
	}
	sort.Ints(roots)

	faces := make([]Face, 0, len(roots))
	for _, root := range roots {
		f, err := buildFace(len(faces), verts, corners, normals, groups[root])
		if err != nil {
			return nil, err
		}
		faces = append(faces, f)
	}
	return faces, nil
}

// buildFace walks the boundary of one coplanar triangle group. Interior
// edges appear in both directions and cancel; the surviving directed edges
// form exactly one cycle for a disk-shaped group, already oriented
// counter-clockwise as seen from outside.
func buildFace(id int, verts []r3.Vec, corners [][3]int, normals []r3.Vec, group []int) (Face, error) {
	directed := make(map[[2]int]bool)
	for _, t := range group {
		c := corners[t]
		for j := 0; j < 3; j++ {
			directed[[2]int{c[j], c[(j+1)%3]}] = true
		}
	}

	next := make(map[int]int)
	start := -1
	for e := range directed {
		if directed[[2]int{e[1], e[0]}] {
			continue // interior edge
		}
		if _, dup := next[e[0]]; dup {
			return Face{}, fmt.Errorf("face %d: boundary branches at vertex %d", id, e[0])
		}
		next[e[0]] = e[1]
		if start == -1 || e[0] < start {
			start = e[0]
		}
	}
	if start == -1 {
		return Face{}, fmt.Errorf("face %d: no boundary loop", id)
	}

	loop := []int{start}
	for v := next[start]; v != start; v = next[v] {
		if len(loop) > len(next) {
			return Face{}, fmt.Errorf("face %d: boundary does not close", id)
		}
		loop = append(loop, v)
	}
	if len(loop) != len(next) {
		return Face{}, fmt.Errorf("face %d: boundary is not a single loop", id)
	}

	// Area-weighted group normal.
	var n r3.Vec
	for _, t := range group {
		n = r3.Add(n, triNormal(verts, corners[t]))
	}
	if r3.Norm(n) == 0 {
		return Face{}, fmt.Errorf("face %d: zero-area facet group", id)
	}
	n = r3.Unit(n)

	pts := make([]r3.Vec, len(loop))
	for i, vi := range loop {
		pts[i] = verts[vi]
	}
	local, err := localFrame(pts, n)
	if err != nil {
		return Face{}, fmt.Errorf("face %d: %w", id, err)
	}

	return Face{ID: id, Loop: loop, Pts: pts, Normal: n, Local: local}, nil
}

// localFrame flattens a planar boundary into 2D: origin at pts[0], x axis
// along the first boundary edge, y axis completing a right-handed frame with
// the outward normal. Counter-clockwise loops keep positive signed area.
func localFrame(pts []r3.Vec, normal r3.Vec) ([]geom.Coord, error) {
	if len(pts) < 3 {
		return nil, fmt.Errorf("boundary has %d vertices", len(pts))
	}
	e := r3.Sub(pts[1], pts[0])
	if r3.Norm(e) < weldEps {
		return nil, fmt.Errorf("first boundary edge is degenerate")
	}
	u := r3.Unit(e)
	v := r3.Unit(r3.Cross(normal, u))

	local := make([]geom.Coord, len(pts))
	for i, p := range pts {
		d := r3.Sub(p, pts[0])
		local[i] = geom.Coord{X: r3.Dot(d, u), Y: r3.Dot(d, v)}
	}
	return local, nil
}

// unionFind is a plain disjoint-set with path halving.
type unionFind struct {
	parent []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{parent: make([]int, n)}
	for i := range uf.parent {
		uf.parent[i] = i
	}
	return uf
}

func (uf *unionFind) find(x int) int {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}
	return x
}

func (uf *unionFind) union(a, b int) {
	ra, rb := uf.find(a), uf.find(b)
	if ra != rb {
		uf.parent[rb] = ra
	}
}
