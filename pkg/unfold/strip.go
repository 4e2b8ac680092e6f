package unfold

import (
	"math"

	"github.com/jbeda/geom"
)

// tapeEps absorbs float noise when comparing strip heights against the tape
// width.
const tapeEps = 1e-6

// Strip is one connected run of placed faces, ready for packing. A finished
// strip sits in canonical pose: rotated to its minimum bounding height,
// translated into the positive quadrant, Width and Height filled in.
type Strip struct {
	// Faces are the placements, in the order the planner attached them.
	// Consecutive entries of a serpentine ribbon are hinge-connected;
	// breadth-first strips carry their attachment order.
	Faces []PlacedFace

	// Width and Height are the bounding box of the finished strip in mm.
	// Height never exceeds the tape width the planner ran with.
	Width, Height float64
}

// points flattens every placed boundary point of the strip.
func (s *Strip) points() []geom.Coord {
	var pts []geom.Coord
	for _, f := range s.Faces {
		pts = append(pts, f.Pts...)
	}
	return pts
}

// Bounds returns the strip's bounding rectangle.
func (s *Strip) Bounds() geom.Rect {
	return bounds(s.points())
}

// FaceIDs returns the source face IDs in placement order.
func (s *Strip) FaceIDs() []int {
	ids := make([]int, len(s.Faces))
	for i, f := range s.Faces {
		ids[i] = f.Face
	}
	return ids
}

// finish rotates the strip to its lowest-profile pose (1° resolution),
// moves it into the positive quadrant, and records its dimensions.
func (s *Strip) finish() {
	theta, _ := minHeightFine(s.points())
	if theta != 0 {
		sin, cos := math.Sin(theta), math.Cos(theta)
		for _, f := range s.Faces {
			for i, p := range f.Pts {
				f.Pts[i] = rotate(p, sin, cos)
			}
		}
	}

	r := s.Bounds()
	for _, f := range s.Faces {
		for i, p := range f.Pts {
			f.Pts[i] = geom.Coord{X: p.X - r.Min.X, Y: p.Y - r.Min.Y}
		}
	}
	s.Width = r.Width()
	s.Height = r.Height()
}
