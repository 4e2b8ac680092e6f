package unfold

import (
	"testing"

	"github.com/jbeda/geom"
)

// sq returns a CCW square with lower-left corner (x, y).
func sq(x, y, size float64) []geom.Coord {
	return []geom.Coord{
		{X: x, Y: y},
		{X: x + size, Y: y},
		{X: x + size, Y: y + size},
		{X: x, Y: y + size},
	}
}

func reversed(pts []geom.Coord) []geom.Coord {
	out := make([]geom.Coord, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}

func TestOverlaps_Cases(t *testing.T) {
	var check OverlapChecker

	tests := []struct {
		name string
		a, b []geom.Coord
		want bool
	}{
		{"separated", sq(0, 0, 10), sq(20, 0, 10), false},
		{"shared edge", sq(0, 0, 10), sq(10, 0, 10), false},
		{"shared corner", sq(0, 0, 10), sq(10, 10, 10), false},
		{"proper overlap", sq(0, 0, 10), sq(5, 5, 10), true},
		{"contained", sq(0, 0, 10), sq(3, 3, 2), true},
		{"coincident", sq(0, 0, 10), sq(0, 0, 10), true},
		{"clockwise overlap", sq(0, 0, 10), reversed(sq(5, 5, 10)), true},
		{"clockwise separated", reversed(sq(0, 0, 10)), sq(20, 0, 10), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			placed := []PlacedFace{{Pts: tt.a}}
			if got := check.Overlaps(placed, tt.b); got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}
			// Interior intersection is symmetric.
			placed[0].Pts = tt.b
			if got := check.Overlaps(placed, tt.a); got != tt.want {
				t.Errorf("Overlaps() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOverlaps_SubToleranceContact(t *testing.T) {
	var check OverlapChecker

	// Neighbors separated by less than the contact tolerance count as
	// touching, not overlapping.
	placed := []PlacedFace{{Pts: sq(0, 0, 10)}}
	if check.Overlaps(placed, sq(10-1e-8, 0, 10)) {
		t.Error("Overlaps() = true for sub-tolerance contact, want false")
	}
}

func TestOverlaps_EmptyStrip(t *testing.T) {
	var check OverlapChecker
	if check.Overlaps(nil, sq(0, 0, 10)) {
		t.Error("Overlaps() = true against empty strip, want false")
	}
}

func TestOverlaps_TriangleSliver(t *testing.T) {
	var check OverlapChecker

	// A thin triangle poking through one edge of the square: no vertex of
	// either polygon is inside the other, only edges cross.
	placed := []PlacedFace{{Pts: sq(0, 0, 10)}}
	sliver := []geom.Coord{
		{X: -2, Y: 4.9},
		{X: 12, Y: 5},
		{X: -2, Y: 5.1},
	}
	if !check.Overlaps(placed, sliver) {
		t.Error("Overlaps() = false for piercing sliver, want true")
	}
}

func TestOverlaps_CustomTolerance(t *testing.T) {
	coarse := OverlapChecker{Tol: 0.5}

	// A 0.2mm incursion is below the configured tolerance.
	placed := []PlacedFace{{Pts: sq(0, 0, 10)}}
	if coarse.Overlaps(placed, sq(9.8, 0, 10)) {
		t.Error("Overlaps() = true within custom tolerance, want false")
	}
	if !coarse.Overlaps(placed, sq(5, 0, 10)) {
		t.Error("Overlaps() = false for deep overlap, want true")
	}
}
