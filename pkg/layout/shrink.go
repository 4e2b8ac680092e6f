package layout

import (
	"math"

	"github.com/jbeda/geom"
)

// shrinkFace insets a convex face outline by d, keeping the original when
// the inset would collapse the polygon. Decals cut slightly inside their
// printed outline hide registration error; a face smaller than the shrink
// distance is printed full size rather than vanishing.
func shrinkFace(pts []geom.Coord, d float64) []geom.Coord {
	if d <= 0 {
		return pts
	}
	inset, ok := insetConvex(pts, d)
	if !ok {
		return pts
	}
	return inset
}

// insetConvex moves every edge of a convex polygon inward by d and
// re-intersects consecutive edges (miter join). Works for either winding.
// Returns ok=false when the inset degenerates: flipped or near-zero area.
func insetConvex(pts []geom.Coord, d float64) ([]geom.Coord, bool) {
	n := len(pts)
	if n < 3 {
		return nil, false
	}
	area := signedArea(pts)
	if math.Abs(area) < 1e-12 {
		return nil, false
	}
	// Interior is left of travel for positive area, right for negative.
	sign := 1.0
	if area < 0 {
		sign = -1.0
	}

	type line struct {
		p   geom.Coord // a point on the offset line
		dir geom.Coord // unit direction
	}
	lines := make([]line, 0, n)
	for i := 0; i < n; i++ {
		a, b := pts[i], pts[(i+1)%n]
		dir := b.Minus(a)
		l := dir.Magnitude()
		if l < 1e-12 {
			continue
		}
		dir = dir.Times(1 / l)
		normal := geom.Coord{X: -dir.Y * sign, Y: dir.X * sign}
		lines = append(lines, line{p: a.Plus(normal.Times(d)), dir: dir})
	}
	if len(lines) < 3 {
		return nil, false
	}

	out := make([]geom.Coord, len(lines))
	for i := range lines {
		prev := lines[(i+len(lines)-1)%len(lines)]
		cur := lines[i]
		p, ok := intersectLines(prev.p, prev.dir, cur.p, cur.dir)
		if !ok {
			// Collinear neighbors (a mid-edge vertex): the offset point
			// itself is the correct inset vertex.
			p = cur.p
		}
		out[i] = p
	}

	newArea := signedArea(out)
	if newArea*area <= 0 || math.Abs(newArea) < 1e-9 {
		return nil, false
	}
	return out, true
}

// intersectLines solves p1 + t*d1 == p2 + s*d2.
func intersectLines(p1, d1, p2, d2 geom.Coord) (geom.Coord, bool) {
	denom := d1.X*d2.Y - d1.Y*d2.X
	if math.Abs(denom) < 1e-12 {
		return geom.Coord{}, false
	}
	diff := p2.Minus(p1)
	t := (diff.X*d2.Y - diff.Y*d2.X) / denom
	return p1.Plus(d1.Times(t)), true
}

func signedArea(pts []geom.Coord) float64 {
	var s float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		s += p.X*q.Y - q.X*p.Y
	}
	return s / 2
}
