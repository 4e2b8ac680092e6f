package svg

import (
	"bytes"
	"fmt"

	"github.com/jbeda/geom"

	"github.com/sayhiben/washi-cut/pkg/layout"
)

// Style controls how face polygons and labels are drawn.
type Style interface {
	// RenderDefs writes shared <defs> content, if the style needs any.
	RenderDefs(buf *bytes.Buffer)
	// RenderFace writes one face polygon. d holds the prepared path data.
	RenderFace(buf *bytes.Buffer, p layout.Polygon, d string)
	// RenderLabel writes one face's ID label at the given point.
	RenderLabel(buf *bytes.Buffer, p layout.Polygon, at geom.Coord)
}

// ParseStyle maps a style name onto its renderer.
func ParseStyle(name string) (Style, error) {
	switch name {
	case "cut":
		return Cut{}, nil
	case "print":
		return Print{}, nil
	}
	return nil, fmt.Errorf("unknown style %q (allowed: cut, print)", name)
}

// Cut draws hairline outlines and nothing else. A 0.1mm black stroke on a
// transparent background is what cutting plotters expect.
type Cut struct{}

func (Cut) RenderDefs(*bytes.Buffer) {}

func (Cut) RenderFace(buf *bytes.Buffer, _ layout.Polygon, d string) {
	fmt.Fprintf(buf, `<path d="%s" fill="none" stroke="#000" stroke-width="0.1"/>`+"\n", d)
}

func (Cut) RenderLabel(buf *bytes.Buffer, p layout.Polygon, at geom.Coord) {
	fmt.Fprintf(buf, `<text x="%.3f" y="%.3f" font-size="3" text-anchor="middle" dominant-baseline="middle" fill="#999">f%d</text>`+"\n",
		at.X, at.Y, p.Face)
}

// Print fills each strip's faces with a shared pastel so copies and strip
// boundaries read at a glance on paper.
type Print struct{}

var printPalette = []string{
	"#f2d0a9", "#c8d6b9", "#a9c5d3", "#e5c1cd", "#d9d2e9", "#f7e3af",
}

func (Print) RenderDefs(*bytes.Buffer) {}

func (Print) RenderFace(buf *bytes.Buffer, p layout.Polygon, d string) {
	fill := printPalette[p.Strip%len(printPalette)]
	fmt.Fprintf(buf, `<path d="%s" fill="%s" fill-opacity="0.85" stroke="#444" stroke-width="0.15"/>`+"\n", d, fill)
}

func (Print) RenderLabel(buf *bytes.Buffer, p layout.Polygon, at geom.Coord) {
	fmt.Fprintf(buf, `<text x="%.3f" y="%.3f" font-size="3" text-anchor="middle" dominant-baseline="middle" fill="#1a1a1a">f%d</text>`+"\n",
		at.X, at.Y, p.Face)
}

var (
	_ Style = Cut{}
	_ Style = Print{}
)
