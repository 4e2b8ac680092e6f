package unfold

import (
	"errors"
	"sort"

	"github.com/sayhiben/washi-cut/pkg/facegraph"
)

// BFSPlanner partitions the blank's faces into tape-bounded strips by
// breadth-first growth. Every face lands in exactly one strip; a face that
// cannot join the current strip without overlapping or exceeding the tape
// width is simply left for a later one. The planner always succeeds on a
// valid blank whose faces individually fit the tape.
type BFSPlanner struct {
	// Tape is the usable tape width in mm.
	Tape float64

	// Check decides interior overlap. The zero value is ready to use.
	Check OverlapChecker
}

// Plan unfolds the whole graph into strips.
func (p *BFSPlanner) Plan(g *facegraph.Graph) ([]Strip, error) {
	if p.Tape <= 0 {
		return nil, errors.New("tape width must be positive")
	}
	if err := checkFacesFit(g, p.Tape); err != nil {
		return nil, err
	}

	n := len(g.Mesh.Faces)
	placed := make([]bool, n)
	remaining := n

	var strips []Strip
	for remaining > 0 {
		strip := p.growStrip(g, placed)
		remaining -= len(strip.Faces)
		strips = append(strips, strip)
	}
	return strips, nil
}

// growStrip seeds a strip at the highest-degree unplaced face and grows it
// breadth-first, preferring hinges that widen the strip least.
func (p *BFSPlanner) growStrip(g *facegraph.Graph, placed []bool) Strip {
	seed := -1
	for id := range g.Mesh.Faces {
		if placed[id] {
			continue
		}
		if seed == -1 || g.Degree(id) > g.Degree(seed) {
			seed = id
		}
	}

	strip := Strip{Faces: []PlacedFace{placeSeed(g, seed)}}
	placed[seed] = true
	rect := bounds(strip.Faces[0].Pts)

	type candidate struct {
		face   int
		pf     PlacedFace
		growth float64
	}

	queue := []int{0}
	for len(queue) > 0 {
		parent := strip.Faces[queue[0]]
		queue = queue[1:]

		var cands []candidate
		for _, nb := range g.Neighbors(parent.Face) {
			if placed[nb] {
				continue
			}
			hinge, ok := g.EdgeBetween(parent.Face, nb)
			if !ok {
				continue
			}
			pf, err := placeAcross(g, parent, nb, hinge)
			if err != nil {
				// Unusable hinge; the face may still enter through
				// another parent or seed its own strip.
				continue
			}
			r := expandRect(rect, pf.Pts)
			cands = append(cands, candidate{face: nb, pf: pf, growth: r.Width() - rect.Width()})
		}

		sort.SliceStable(cands, func(i, j int) bool {
			if cands[i].growth != cands[j].growth {
				return cands[i].growth < cands[j].growth
			}
			return cands[i].face < cands[j].face
		})

		for _, c := range cands {
			r := expandRect(rect, c.pf.Pts)
			if r.Height() > p.Tape+tapeEps {
				continue
			}
			if p.Check.Overlaps(strip.Faces, c.pf.Pts) {
				continue
			}
			strip.Faces = append(strip.Faces, c.pf)
			placed[c.face] = true
			queue = append(queue, len(strip.Faces)-1)
			rect = r
		}
	}

	strip.finish()
	return strip
}

// checkFacesFit fails fast when any single face's lowest-profile height
// exceeds the tape: no plan could ever place it.
func checkFacesFit(g *facegraph.Graph, tape float64) error {
	for _, f := range g.Mesh.Faces {
		if _, h := minHeightFine(f.Local); h > tape+tapeEps {
			return &FaceTooWideError{Face: f.ID, Need: h, Tape: tape}
		}
	}
	return nil
}

// MinTape returns the narrowest tape that can hold every face of g in its
// lowest pose, along with the face that needs it. Any run against a tape
// narrower than this fails regardless of mode.
func MinTape(g *facegraph.Graph) (need float64, face int) {
	for _, f := range g.Mesh.Faces {
		if _, h := minHeightFine(f.Local); h > need {
			need, face = h, f.ID
		}
	}
	return need, face
}
