package unfold

import (
	"math"

	"github.com/jbeda/geom"
)

// OverlapChecker answers whether a candidate polygon's interior intersects
// any already-placed face. Boundary contact (the shared hinge segment, a
// touching corner) does not count: neighboring faces of a flat unfolding
// always touch along their fold line.
//
// The zero value uses a metric tolerance suited to millimeter layouts.
type OverlapChecker struct {
	// Tol is the contact tolerance in mm. Interpenetration up to Tol still
	// counts as touching. Zero means the default of 1e-7.
	Tol float64
}

func (c OverlapChecker) tol() float64 {
	if c.Tol > 0 {
		return c.Tol
	}
	return 1e-7
}

// Overlaps reports whether cand's interior intersects any face in placed.
func (c OverlapChecker) Overlaps(placed []PlacedFace, cand []geom.Coord) bool {
	for i := range placed {
		if c.polysIntersect(placed[i].Pts, cand) {
			return true
		}
	}
	return false
}

// polysIntersect reports whether two convex polygons share interior area.
// Convex polygons with disjoint interiors always admit a separating line
// normal to one of their edges, so the polygons intersect exactly when no
// edge normal of either separates them. Projection intervals make the test
// independent of winding.
func (c OverlapChecker) polysIntersect(p, q []geom.Coord) bool {
	tol := c.tol()
	return !separatedByAxis(p, q, tol) && !separatedByAxis(q, p, tol)
}

// separatedByAxis reports whether some edge normal of p keeps the two
// polygons' projections from overlapping by more than tol.
func separatedByAxis(p, q []geom.Coord, tol float64) bool {
	for i := range p {
		a, b := p[i], p[(i+1)%len(p)]
		d := b.Minus(a)
		l := d.Magnitude()
		if l < tol {
			continue
		}
		nx, ny := -d.Y/l, d.X/l
		loP, hiP := project(p, nx, ny)
		loQ, hiQ := project(q, nx, ny)
		if math.Min(hiP, hiQ)-math.Max(loP, loQ) <= tol {
			return true
		}
	}
	return false
}

// project returns the extent of pts along the unit direction (nx, ny).
func project(pts []geom.Coord, nx, ny float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, p := range pts {
		v := p.X*nx + p.Y*ny
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}
