package unfold

import (
	"math"

	"github.com/jbeda/geom"
)

// Small 2D helpers shared by placement, overlap checking, and strip
// finishing. Everything works on geom.Coord in millimeters.

func cross2(a, b geom.Coord) float64 {
	return a.X*b.Y - a.Y*b.X
}

// sideOf returns the signed perpendicular offset of p from the directed
// line a->b, scaled by |b-a|. Positive on the left of the direction of
// travel.
func sideOf(a, b, p geom.Coord) float64 {
	return cross2(b.Minus(a), p.Minus(a))
}

func rotate(p geom.Coord, sin, cos float64) geom.Coord {
	return geom.Coord{X: p.X*cos - p.Y*sin, Y: p.X*sin + p.Y*cos}
}

func centroid(pts []geom.Coord) geom.Coord {
	var c geom.Coord
	for _, p := range pts {
		c = c.Plus(p)
	}
	return c.Times(1 / float64(len(pts)))
}

func bounds(pts []geom.Coord) geom.Rect {
	r := geom.Rect{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		r.ExpandToContainCoord(p)
	}
	return r
}

func expandRect(r geom.Rect, pts []geom.Coord) geom.Rect {
	for _, p := range pts {
		r.ExpandToContainCoord(p)
	}
	return r
}

// heightAt returns the bounding height of pts after rotation by theta
// radians.
func heightAt(pts []geom.Coord, theta float64) float64 {
	sin, cos := math.Sin(theta), math.Cos(theta)
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, p := range pts {
		y := p.X*sin + p.Y*cos
		lo = math.Min(lo, y)
		hi = math.Max(hi, y)
	}
	return hi - lo
}

// coarseAngles is the rotation sample used while searching: cheap to
// evaluate, dense enough to spot a strip that can still duck under the tape
// width. Finished strips are later refined at 1° resolution.
var coarseAngles = []float64{0, 30, 45, 60, 90, 120, 150}

// minHeightCoarse returns the smallest bounding height of pts over the
// coarse rotation sample.
func minHeightCoarse(pts []geom.Coord) float64 {
	best := math.Inf(1)
	for _, deg := range coarseAngles {
		best = math.Min(best, heightAt(pts, deg*math.Pi/180))
	}
	return best
}

// minHeightFine scans rotations at 1° steps and returns the angle (radians)
// and height of the lowest-profile pose. Ties keep the smallest angle.
func minHeightFine(pts []geom.Coord) (theta, height float64) {
	height = math.Inf(1)
	for deg := 0; deg < 180; deg++ {
		t := float64(deg) * math.Pi / 180
		if h := heightAt(pts, t); h < height {
			height = h
			theta = t
		}
	}
	return theta, height
}
