package unfold

import (
	"fmt"
	"math"

	"github.com/jbeda/geom"

	"github.com/sayhiben/washi-cut/pkg/facegraph"
)

// hingeEps is the minimum usable hinge length in mm.
const hingeEps = 1e-9

// PlacedFace is one face mapped into the strip plane.
type PlacedFace struct {
	// Face is the source face ID.
	Face int

	// Hinge is the graph edge the face entered through, -1 for a strip's
	// seed face.
	Hinge int

	// Pts are the boundary points in strip coordinates, in the same order
	// as the face's boundary loop.
	Pts []geom.Coord
}

// placeSeed maps a face into an empty strip plane using its own local
// coordinates rotated to the face's lowest-profile pose.
func placeSeed(g *facegraph.Graph, face int) PlacedFace {
	local := g.Mesh.Faces[face].Local
	theta, _ := minHeightFine(local)
	sin, cos := math.Sin(theta), math.Cos(theta)
	pts := make([]geom.Coord, len(local))
	for i, p := range local {
		pts[i] = rotate(p, sin, cos)
	}
	return PlacedFace{Face: face, Hinge: -1, Pts: pts}
}

// placeAcross maps the child face into the strip plane by hinging it over
// the shared edge: the child's copy of the segment lands exactly on the
// parent's placed copy, and the child body comes to rest on the far side of
// the hinge line from the parent body. The result is a rigid motion of the
// child's local coordinates, deterministic given the parent placement.
func placeAcross(g *facegraph.Graph, parent PlacedFace, child int, hinge facegraph.Edge) (PlacedFace, error) {
	pf := g.Mesh.Faces[parent.Face]
	cf := g.Mesh.Faces[child]

	ip, jp, err := loopIndices(pf.Loop, hinge)
	if err != nil {
		return PlacedFace{}, fmt.Errorf("parent face %d: %w", parent.Face, err)
	}
	ic, jc, err := loopIndices(cf.Loop, hinge)
	if err != nil {
		return PlacedFace{}, fmt.Errorf("child face %d: %w", child, err)
	}

	ag, bg := parent.Pts[ip], parent.Pts[jp]
	al, bl := cf.Local[ic], cf.Local[jc]

	ug := bg.Minus(ag)
	ul := bl.Minus(al)
	if ug.Magnitude() < hingeEps || ul.Magnitude() < hingeEps {
		return PlacedFace{}, &DegenerateEdgeError{Edge: hinge.ID, FaceA: parent.Face, FaceB: child, Length: hinge.Length}
	}

	// Rotate the child so its hinge direction matches the placed one.
	ang := math.Atan2(ug.Y, ug.X) - math.Atan2(ul.Y, ul.X)
	sin, cos := math.Sin(ang), math.Cos(ang)
	pts := make([]geom.Coord, len(cf.Local))
	for i, p := range cf.Local {
		pts[i] = rotate(p.Minus(al), sin, cos).Plus(ag)
	}

	// The rotation pins both hinge endpoints but leaves the body on an
	// arbitrary side. Mirror across the hinge line if the child landed on
	// the parent's side.
	parentSide := sideOf(ag, bg, centroid(parent.Pts))
	childSide := sideOf(ag, bg, centroid(pts))
	if parentSide*childSide > 0 {
		u := ug.Unit()
		for i, p := range pts {
			pts[i] = reflectAcross(ag, u, p)
		}
	}

	return PlacedFace{Face: child, Hinge: hinge.ID, Pts: pts}, nil
}

// reflectAcross mirrors p across the line through a with unit direction u.
func reflectAcross(a, u, p geom.Coord) geom.Coord {
	d := p.Minus(a)
	return geom.Coord{
		X: a.X + (2*u.X*u.X-1)*d.X + 2*u.X*u.Y*d.Y,
		Y: a.Y + 2*u.X*u.Y*d.X + (2*u.Y*u.Y-1)*d.Y,
	}
}

// loopIndices finds the positions of the hinge endpoints in a face's
// boundary loop.
func loopIndices(loop []int, hinge facegraph.Edge) (int, int, error) {
	i, j := -1, -1
	for k, v := range loop {
		switch v {
		case hinge.VertP:
			i = k
		case hinge.VertQ:
			j = k
		}
	}
	if i < 0 || j < 0 {
		return 0, 0, fmt.Errorf("hinge %d endpoints not on boundary loop", hinge.ID)
	}
	return i, j, nil
}
