// Package svg renders packed sheets as standalone SVG documents.
//
// # Overview
//
// The renderer turns a [layout.Sheet] into a millimeter-calibrated SVG: the
// document's width and height carry mm units and the viewBox matches them
// one-to-one, so a cutting plotter or printer reproduces the layout at true
// scale. Every face polygon becomes one closed path with 3-decimal
// coordinates.
//
// Basic usage:
//
//	out := svg.Render(sheet,
//	    svg.WithStyle(svg.Print{}),
//	    svg.WithLabels(),
//	)
//
// # Styles
//
//   - [Cut]: hairline black outlines on a transparent background, the form a
//     cutting plotter consumes.
//   - [Print]: faces filled with a pastel per strip plus face outlines, for
//     proofing a layout on paper before committing tape.
//
// [ParseStyle] maps the CLI's style names onto these.
//
// [layout.Sheet]: github.com/sayhiben/washi-cut/pkg/layout.Sheet
package svg
