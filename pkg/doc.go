// Package pkg provides the core libraries for washi-cut paper-net generation.
//
// # Overview
//
// Washi-cut unfolds a convex polyhedral die blank into flat, non-overlapping
// strips that fit a roll of washi tape, then lays the strips out on a cutting
// sheet. The pkg directory is organized into four main areas:
//
//  1. [mesh] - Geometry ingestion (STL loading, welding, face merging)
//  2. [facegraph] - Face adjacency graph with hinge metadata
//  3. [unfold] / [layout] - Net planning and sheet packing
//  4. [svg] / [pipeline] - Output rendering and orchestration
//
// # Architecture
//
// The typical data flow through washi-cut:
//
//	STL file
//	     ↓
//	[mesh] package (weld vertices, merge coplanar triangles)
//	     ↓
//	[facegraph] package (hinges + dihedral angles)
//	     ↓
//	[unfold] package (strips or serpentine ribbon)
//	     ↓
//	[layout] package (pack strips into a tape band)
//	     ↓
//	SVG cut sheet
//
// # Quick Start
//
// Unfold a blank and render a cut sheet:
//
//	import (
//	    "github.com/sayhiben/washi-cut/pkg/facegraph"
//	    "github.com/sayhiben/washi-cut/pkg/layout"
//	    "github.com/sayhiben/washi-cut/pkg/mesh"
//	    "github.com/sayhiben/washi-cut/pkg/svg"
//	    "github.com/sayhiben/washi-cut/pkg/unfold"
//	)
//
//	// 1. Load the blank
//	m, _ := mesh.Load("d6.stl", mesh.Millimeter)
//	g, _ := facegraph.Build(m)
//
//	// 2. Plan tape-bounded strips
//	planner := unfold.BFSPlanner{Tape: 15}
//	strips, _ := planner.Plan(g)
//
//	// 3. Pack onto a sheet
//	sheet, _ := layout.Pack(strips, layout.Options{Tape: 15, Gap: 2, Margin: 1, Duplicates: 1})
//
//	// 4. Render to SVG
//	out := svg.Render(sheet)
//
// # Main Packages
//
// ## Geometry
//
// [mesh] - STL loading with vertex welding and coplanar triangle merging,
// so a cube arrives as 6 square faces rather than 12 triangles. Also
// generates the platonic sample solids and writes STL.
//
// [facegraph] - Face adjacency graph over a welded mesh. Each edge is a hinge
// carrying its shared mesh edge and dihedral angle. Includes Graphviz DOT
// export and SVG rendering of the graph itself.
//
// ## Planning
//
// [unfold] - Two net planners over the face graph. [unfold.BFSPlanner] grows
// greedy breadth-first strips and always succeeds when each face fits the
// tape. [unfold.RibbonSearch] beam-searches for a single serpentine ribbon
// visiting every face once; failure is data, and callers decide whether to
// fall back to strips.
//
// [layout] - Packs strips into a single horizontal tape band with gaps,
// margins, duplicate sets, and optional pre-shrink insetting of each face.
//
// ## Output
//
// [svg] - Millimeter-unit SVG rendering of a packed sheet in cut or print
// style, with optional face labels.
//
// ## Infrastructure
//
// [pipeline] - Complete wrap pipeline (load → graph → plan → pack → render)
// used by the CLI. Plans are cached by mesh hash and planner options so
// repeated runs with different layout tweaks skip the search.
//
// [cache] - Content-addressed file cache with TTL expiry backing the
// pipeline's plan cache.
//
// [buildinfo] - Build metadata injected via ldflags.
//
// # Common Workflows
//
// Find the narrowest workable tape for a blank:
//
//	need, face := unfold.MinTape(g)
//	fmt.Printf("face f%d needs %.1f mm\n", face, need)
//
// Search for a serpentine ribbon with progress reporting:
//
//	search := unfold.RibbonSearch{
//	    Tape: 20,
//	    Beam: 24,
//	    Progress: func(depth, frontier, expanded int, best float64) {
//	        fmt.Printf("depth %d, %d live\n", depth, frontier)
//	    },
//	}
//	res, _ := search.Run(ctx, g)
//
// Render a printable sheet with labels:
//
//	out := svg.Render(sheet, svg.WithStyle(svg.Print{}), svg.WithLabels())
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...              # All tests
//	go test ./pkg/unfold/...       # Specific package
//	go test -run Example           # Examples only
//
// [mesh]: https://pkg.go.dev/github.com/sayhiben/washi-cut/pkg/mesh
// [facegraph]: https://pkg.go.dev/github.com/sayhiben/washi-cut/pkg/facegraph
// [unfold]: https://pkg.go.dev/github.com/sayhiben/washi-cut/pkg/unfold
// [layout]: https://pkg.go.dev/github.com/sayhiben/washi-cut/pkg/layout
// [svg]: https://pkg.go.dev/github.com/sayhiben/washi-cut/pkg/svg
// [pipeline]: https://pkg.go.dev/github.com/sayhiben/washi-cut/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/sayhiben/washi-cut/pkg/cache
// [buildinfo]: https://pkg.go.dev/github.com/sayhiben/washi-cut/pkg/buildinfo
// [unfold.BFSPlanner]: https://pkg.go.dev/github.com/sayhiben/washi-cut/pkg/unfold#BFSPlanner
// [unfold.RibbonSearch]: https://pkg.go.dev/github.com/sayhiben/washi-cut/pkg/unfold#RibbonSearch
package pkg
