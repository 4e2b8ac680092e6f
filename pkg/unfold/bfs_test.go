package unfold

import (
	"errors"
	"math"
	"sort"
	"testing"

	"github.com/sayhiben/washi-cut/pkg/mesh"
)

// collectFaceIDs gathers every placed face ID across strips, sorted.
func collectFaceIDs(strips []Strip) []int {
	var ids []int
	for _, s := range strips {
		ids = append(ids, s.FaceIDs()...)
	}
	sort.Ints(ids)
	return ids
}

func TestBFSPlanner_CubePartition(t *testing.T) {
	g := buildGraph(t, mesh.Cube(16))

	p := &BFSPlanner{Tape: 20}
	strips, err := p.Plan(g)
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}

	ids := collectFaceIDs(strips)
	if len(ids) != 6 {
		t.Fatalf("planned %d faces, want 6 (strips %v)", len(ids), strips)
	}
	for i, id := range ids {
		if id != i {
			t.Fatalf("face IDs = %v, want each of 0..5 exactly once", ids)
		}
	}

	for i, s := range strips {
		if s.Height > 20+tapeEps {
			t.Errorf("strip %d height = %v, exceeds tape", i, s.Height)
		}
		if len(s.Faces) == 0 {
			t.Errorf("strip %d is empty", i)
		}
	}

	// The cube's equatorial ring unrolls into one four-face run; the two
	// caps cannot join it without doubling the height, so they land in
	// strips of their own.
	if len(strips) != 3 {
		t.Fatalf("got %d strips, want 3", len(strips))
	}
	if len(strips[0].Faces) != 4 {
		t.Errorf("first strip has %d faces, want 4", len(strips[0].Faces))
	}
	if math.Abs(strips[0].Width-64) > 1e-6 || math.Abs(strips[0].Height-16) > 1e-6 {
		t.Errorf("first strip = %v x %v, want 64 x 16", strips[0].Width, strips[0].Height)
	}
}

func TestBFSPlanner_IcosahedronPartition(t *testing.T) {
	g := buildGraph(t, mesh.Icosahedron(10))

	p := &BFSPlanner{Tape: 30}
	strips, err := p.Plan(g)
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}

	ids := collectFaceIDs(strips)
	if len(ids) != 20 {
		t.Fatalf("planned %d faces, want 20", len(ids))
	}
	for i, id := range ids {
		if id != i {
			t.Fatalf("face IDs = %v, want each of 0..19 exactly once", ids)
		}
	}
	for i, s := range strips {
		if s.Height > 30+tapeEps {
			t.Errorf("strip %d height = %v, exceeds tape", i, s.Height)
		}
	}
}

func TestBFSPlanner_NoOverlapsWithinStrip(t *testing.T) {
	g := buildGraph(t, mesh.Icosahedron(10))

	p := &BFSPlanner{Tape: 30}
	strips, err := p.Plan(g)
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}

	var check OverlapChecker
	for si, s := range strips {
		for i := range s.Faces {
			if check.Overlaps(s.Faces[:i], s.Faces[i].Pts) {
				t.Errorf("strip %d: face %d overlaps an earlier face", si, s.Faces[i].Face)
			}
		}
	}
}

func TestBFSPlanner_FaceTooWide(t *testing.T) {
	g := buildGraph(t, mesh.Cube(16))

	p := &BFSPlanner{Tape: 10}
	_, err := p.Plan(g)

	var wide *FaceTooWideError
	if !errors.As(err, &wide) {
		t.Fatalf("Plan() error = %v, want FaceTooWideError", err)
	}
	if math.Abs(wide.Need-16) > 1e-6 {
		t.Errorf("Need = %v, want 16", wide.Need)
	}
	if wide.Tape != 10 {
		t.Errorf("Tape = %v, want 10", wide.Tape)
	}
}

func TestBFSPlanner_InvalidTape(t *testing.T) {
	g := buildGraph(t, mesh.Cube(16))

	p := &BFSPlanner{}
	if _, err := p.Plan(g); err == nil {
		t.Fatal("Plan() with zero tape succeeded, want error")
	}
}

func TestBFSPlanner_Deterministic(t *testing.T) {
	g := buildGraph(t, mesh.Icosahedron(10))

	p := &BFSPlanner{Tape: 25}
	first, err := p.Plan(g)
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}
	second, err := p.Plan(g)
	if err != nil {
		t.Fatalf("Plan() second run error = %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("strip counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		a, b := first[i].FaceIDs(), second[i].FaceIDs()
		if len(a) != len(b) {
			t.Fatalf("strip %d sizes differ: %v vs %v", i, a, b)
		}
		for j := range a {
			if a[j] != b[j] {
				t.Fatalf("strip %d face order differs: %v vs %v", i, a, b)
			}
		}
		if first[i].Width != second[i].Width || first[i].Height != second[i].Height {
			t.Errorf("strip %d dimensions differ", i)
		}
	}
}
