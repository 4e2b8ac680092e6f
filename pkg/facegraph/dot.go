package facegraph

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"
)

// DOTOptions configures dual-graph rendering.
type DOTOptions struct {
	// Dihedrals labels each edge with its interior dihedral angle in
	// degrees. Handy when deciding which hinges a plan should prefer.
	Dihedrals bool
}

// ToDOT converts the face-adjacency graph to Graphviz DOT format. Each node
// is a face labeled with its ID and boundary size; edges are the fold lines.
// Render the result with [RenderSVG] or any dot(1)-compatible tool.
func ToDOT(g *Graph, opts DOTOptions) string {
	var buf bytes.Buffer
	buf.WriteString("graph blank {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=14];\n")
	buf.WriteString("\n")

	for _, f := range g.Mesh.Faces {
		label := fmt.Sprintf("f%d\\n%d-gon", f.ID, len(f.Loop))
		fmt.Fprintf(&buf, "  f%d [label=\"%s\"];\n", f.ID, label)
	}

	buf.WriteString("\n")
	for _, e := range g.Edges {
		if opts.Dihedrals {
			fmt.Fprintf(&buf, "  f%d -- f%d [label=\"%.1f°\", fontsize=10];\n", e.A, e.B, e.Dihedral*180/math.Pi)
		} else {
			fmt.Fprintf(&buf, "  f%d -- f%d;\n", e.A, e.B)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites Graphviz's svg tag so the document starts at the
// origin and has explicit pixel dimensions.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
