package unfold

import (
	"context"
	"errors"
	"math/rand"
	"sort"
	"time"

	"github.com/jbeda/geom"

	"github.com/sayhiben/washi-cut/pkg/facegraph"
)

// Search defaults. An explicit zero timeout still gets a small budget so a
// misconfigured call cannot spin forever.
const (
	DefaultBeam       = 24
	DefaultTimeout    = 2 * time.Second
	minSearchDeadline = 100 * time.Millisecond
)

// RibbonSearch looks for a Hamiltonian path through the face-adjacency
// graph whose unfolding fits the tape width, producing one serpentine strip
// that wraps the whole blank in a single piece.
//
// The search keeps an explicit frontier of partial ribbons and advances it
// one face per level, scoring states by the coarse minimum bounding height
// of everything placed so far and keeping the best Beam of them. Height
// only ever grows as faces are added, so any partial ribbon already past
// the tape width is pruned outright.
//
// Failure is an expected outcome and is returned as data in [RibbonResult],
// not as an error: many blanks have no serpentine unfolding at a given tape
// width, and the caller owns the decision to fall back to strips.
type RibbonSearch struct {
	// Tape is the usable tape width in mm.
	Tape float64

	// Beam is the number of partial ribbons kept per level. Zero means
	// DefaultBeam. Wider beams search more thoroughly and more slowly.
	Beam int

	// Timeout is the wall-clock budget. Zero means DefaultTimeout. The
	// deadline is checked cooperatively before each state expansion, so
	// the search overshoots by at most one expansion.
	Timeout time.Duration

	// Seed orders tie-breaking among equally scored partial ribbons.
	Seed int64

	// Check decides interior overlap. The zero value is ready to use.
	Check OverlapChecker

	// Progress, when set, is called once per search level with the level
	// number, live frontier size, total expansions, and the best coarse
	// height so far.
	Progress func(depth, frontier, expanded int, best float64)

	// Debug, when set, is called once at the end of the search.
	Debug func(DebugInfo)
}

// DebugInfo summarizes a finished (or abandoned) search.
type DebugInfo struct {
	Faces    int
	MaxDepth int
	Expanded int
	Pruned   int
}

// RibbonResult is the outcome of [RibbonSearch.Run]. Exactly one of Strip
// and Failure is non-nil.
type RibbonResult struct {
	Strip    *Strip
	Failure  *SearchFailure
	Expanded int
	Elapsed  time.Duration
}

type ribbonState struct {
	faces   []PlacedFace
	visited []bool
	path    []int
	score   float64
}

// extend returns a copy of the state with one more face placed.
func (st *ribbonState) extend(pf PlacedFace, score float64) *ribbonState {
	nf := make([]PlacedFace, len(st.faces), len(st.faces)+1)
	copy(nf, st.faces)
	nv := make([]bool, len(st.visited))
	copy(nv, st.visited)
	np := make([]int, len(st.path), len(st.path)+1)
	copy(np, st.path)

	nv[pf.Face] = true
	return &ribbonState{
		faces:   append(nf, pf),
		visited: nv,
		path:    append(np, pf.Face),
		score:   score,
	}
}

// Run searches for a serpentine ribbon. A nil-Failure result carries the
// finished strip; a nil-Strip result explains why none was found. The error
// return is reserved for hard conditions: context cancellation, an invalid
// tape width, or a face that cannot fit the tape under any plan.
func (s *RibbonSearch) Run(ctx context.Context, g *facegraph.Graph) (RibbonResult, error) {
	if s.Tape <= 0 {
		return RibbonResult{}, errors.New("tape width must be positive")
	}
	if err := checkFacesFit(g, s.Tape); err != nil {
		return RibbonResult{}, err
	}

	beam := s.Beam
	if beam <= 0 {
		beam = DefaultBeam
	}
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if timeout < minSearchDeadline {
		timeout = minSearchDeadline
	}

	start := time.Now()
	deadline := start.Add(timeout)
	rng := rand.New(rand.NewSource(s.Seed))

	n := len(g.Mesh.Faces)
	seedFace := g.MaxDegreeFace()
	first := placeSeed(g, seedFace)
	root := &ribbonState{
		faces:   []PlacedFace{first},
		visited: make([]bool, n),
		path:    []int{seedFace},
		score:   minHeightCoarse(first.Pts),
	}
	root.visited[seedFace] = true

	expanded, pruned, maxDepth := 0, 0, 0
	fail := func(reason FailureReason) (RibbonResult, error) {
		f := &SearchFailure{Reason: reason, Expanded: expanded, Elapsed: time.Since(start)}
		s.debug(DebugInfo{Faces: n, MaxDepth: maxDepth, Expanded: expanded, Pruned: pruned})
		return RibbonResult{Failure: f, Expanded: expanded, Elapsed: f.Elapsed}, nil
	}

	if n == 1 {
		return s.accept(root, n, expanded, pruned, start)
	}

	frontier := []*ribbonState{root}
	for depth := 1; depth < n; depth++ {
		var next []*ribbonState
		for _, st := range frontier {
			if err := ctx.Err(); err != nil {
				return RibbonResult{}, err
			}
			if time.Now().After(deadline) {
				return fail(FailureDeadline)
			}

			expanded++
			tail := st.path[len(st.path)-1]
			for _, nb := range g.Neighbors(tail) {
				if st.visited[nb] {
					continue
				}
				hinge, ok := g.EdgeBetween(tail, nb)
				if !ok {
					continue
				}
				pf, err := placeAcross(g, st.faces[len(st.faces)-1], nb, hinge)
				if err != nil {
					pruned++
					continue
				}
				if s.Check.Overlaps(st.faces, pf.Pts) {
					pruned++
					continue
				}
				score := minHeightCoarse(appendPoints(st, pf))
				if score > s.Tape+tapeEps {
					pruned++
					continue
				}
				next = append(next, st.extend(pf, score))
			}
		}

		if len(next) == 0 {
			return fail(FailureExhausted)
		}
		maxDepth = depth

		// Seeded shuffle so equal scores break ties reproducibly, then a
		// stable sort by score with livelier tails first.
		rng.Shuffle(len(next), func(i, j int) { next[i], next[j] = next[j], next[i] })
		sort.SliceStable(next, func(i, j int) bool {
			if next[i].score != next[j].score {
				return next[i].score < next[j].score
			}
			return s.liveNeighbors(g, next[i]) > s.liveNeighbors(g, next[j])
		})

		if depth == n-1 {
			return s.accept(next[0], n, expanded, pruned, start)
		}

		if len(next) > beam {
			next = next[:beam]
		}
		frontier = next
		if s.Progress != nil {
			s.Progress(depth, len(frontier), expanded, frontier[0].score)
		}
	}

	return fail(FailureExhausted)
}

// accept finishes a complete ribbon into a strip.
func (s *RibbonSearch) accept(st *ribbonState, n, expanded, pruned int, start time.Time) (RibbonResult, error) {
	strip := &Strip{Faces: st.faces}
	strip.finish()
	s.debug(DebugInfo{Faces: n, MaxDepth: n - 1, Expanded: expanded, Pruned: pruned})
	return RibbonResult{Strip: strip, Expanded: expanded, Elapsed: time.Since(start)}, nil
}

func (s *RibbonSearch) debug(info DebugInfo) {
	if s.Debug != nil {
		s.Debug(info)
	}
}

// liveNeighbors counts unvisited neighbors of a state's tail face.
func (s *RibbonSearch) liveNeighbors(g *facegraph.Graph, st *ribbonState) int {
	tail := st.path[len(st.path)-1]
	live := 0
	for _, nb := range g.Neighbors(tail) {
		if !st.visited[nb] {
			live++
		}
	}
	return live
}

// appendPoints flattens a state's placed points plus a candidate's.
func appendPoints(st *ribbonState, pf PlacedFace) []geom.Coord {
	var pts []geom.Coord
	for _, f := range st.faces {
		pts = append(pts, f.Pts...)
	}
	return append(pts, pf.Pts...)
}
