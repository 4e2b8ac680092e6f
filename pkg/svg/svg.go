package svg

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jbeda/geom"

	"github.com/sayhiben/washi-cut/pkg/layout"
)

// Option configures rendering via [Render].
type Option func(*renderer)

type renderer struct {
	style   Style
	labels  bool
	comment string
}

// WithStyle selects the visual style. The default is [Cut].
func WithStyle(s Style) Option { return func(r *renderer) { r.style = s } }

// WithLabels draws each face's ID at its center. Labels are proofing aids;
// leave them off for output that goes straight to a plotter.
func WithLabels() Option { return func(r *renderer) { r.labels = true } }

// WithComment replaces the document comment, typically with run metadata.
func WithComment(c string) Option { return func(r *renderer) { r.comment = c } }

// Render draws a packed sheet as a complete SVG document.
func Render(sheet *layout.Sheet, opts ...Option) []byte {
	r := renderer{style: Cut{}, comment: "washicut export; units in millimeters"}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	buf.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\" standalone=\"no\"?>\n")
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%.3fmm" height="%.3fmm" viewBox="0 0 %.3f %.3f">`+"\n",
		sheet.Width, sheet.Height, sheet.Width, sheet.Height)
	if r.comment != "" {
		fmt.Fprintf(&buf, "<!-- %s -->\n", sanitizeComment(r.comment))
	}

	r.style.RenderDefs(&buf)
	for _, p := range sheet.Polys {
		r.style.RenderFace(&buf, p, pathData(p.Pts))
	}
	if r.labels {
		for _, p := range sheet.Polys {
			r.style.RenderLabel(&buf, p, centerOf(p.Pts))
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// pathData builds the path commands for one closed ring, in 3-decimal
// millimeters.
func pathData(pts []geom.Coord) string {
	var b strings.Builder
	for i, p := range pts {
		if i == 0 {
			fmt.Fprintf(&b, "M %.3f,%.3f", p.X, p.Y)
		} else {
			fmt.Fprintf(&b, " L %.3f,%.3f", p.X, p.Y)
		}
	}
	b.WriteString(" Z")
	return b.String()
}

func centerOf(pts []geom.Coord) geom.Coord {
	var c geom.Coord
	for _, p := range pts {
		c = c.Plus(p)
	}
	return c.Times(1 / float64(len(pts)))
}

// sanitizeComment keeps user text from terminating the XML comment early.
func sanitizeComment(c string) string {
	return strings.ReplaceAll(c, "--", "- -")
}
