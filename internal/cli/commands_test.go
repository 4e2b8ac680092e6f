package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sayhiben/washi-cut/pkg/cache"
	"github.com/sayhiben/washi-cut/pkg/mesh"
)

func TestSampleCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "cube.stl")

	if err := execCommand(t, newSampleCmd(), "cube", "--edge", "10", "-o", out); err != nil {
		t.Fatalf("sample failed: %v", err)
	}

	// The written STL must survive the real extraction path.
	m, err := mesh.Load(out, mesh.Millimeter)
	if err != nil {
		t.Fatalf("load sample: %v", err)
	}
	if got := m.Info().Faces; got != 6 {
		t.Errorf("faces = %d, want 6", got)
	}
}

func TestSampleCommandRejectsUnknownSolid(t *testing.T) {
	if err := execCommand(t, newSampleCmd(), "dodecahedron"); err == nil {
		t.Fatal("sample accepted an unknown solid")
	}
}

func TestSampleCommandRejectsZeroEdge(t *testing.T) {
	if err := execCommand(t, newSampleCmd(), "cube", "--edge", "0"); err == nil {
		t.Fatal("sample accepted a zero edge")
	}
}

func TestInspectCommand(t *testing.T) {
	stl := writeCube(t)

	if err := execCommand(t, newInspectCmd(), stl); err != nil {
		t.Fatalf("inspect failed: %v", err)
	}
}

func TestInspectCommandBadUnit(t *testing.T) {
	stl := writeCube(t)

	if err := execCommand(t, newInspectCmd(), stl, "--unit", "furlong"); err == nil {
		t.Fatal("inspect accepted an unknown unit")
	}
}

func TestGraphCommandDOT(t *testing.T) {
	stl := writeCube(t)
	out := filepath.Join(t.TempDir(), "cube.dot")

	if err := execCommand(t, newGraphCmd(), stl, "-o", out); err != nil {
		t.Fatalf("graph failed: %v", err)
	}

	dot := readFile(t, out)
	if !strings.Contains(dot, "graph blank {") {
		t.Error("output is not a DOT graph")
	}
	// A cube has 12 hinges.
	if got := strings.Count(dot, " -- "); got != 12 {
		t.Errorf("hinge edges = %d, want 12", got)
	}
}

func TestGraphCommandDihedralLabels(t *testing.T) {
	stl := writeCube(t)
	out := filepath.Join(t.TempDir(), "cube.dot")

	if err := execCommand(t, newGraphCmd(), stl, "-o", out, "--dihedrals"); err != nil {
		t.Fatalf("graph failed: %v", err)
	}
	if !strings.Contains(readFile(t, out), "90.0°") {
		t.Error("cube hinges should be labeled with 90 degree dihedrals")
	}
}

func TestCacheCommands(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", tmp)

	// Empty cache: both subcommands no-op cleanly.
	if err := execCommand(t, newCacheCmd(), "info"); err != nil {
		t.Fatalf("cache info on empty cache: %v", err)
	}
	if err := execCommand(t, newCacheCmd(), "clear"); err != nil {
		t.Fatalf("cache clear on empty cache: %v", err)
	}

	// Seed one entry and clear it.
	dir, err := cacheDir()
	if err != nil {
		t.Fatal(err)
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := fc.Set(context.Background(), "plan:test", []byte(`{}`), 0); err != nil {
		t.Fatal(err)
	}

	if err := execCommand(t, newCacheCmd(), "clear"); err != nil {
		t.Fatalf("cache clear: %v", err)
	}
	entries, _, err := fc.Stats()
	if err != nil {
		t.Fatal(err)
	}
	if entries != 0 {
		t.Errorf("entries after clear = %d, want 0", entries)
	}

	if _, err := os.Stat(dir); err != nil {
		t.Errorf("cache dir should survive clearing: %v", err)
	}
}
