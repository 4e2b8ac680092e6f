package layout

import (
	"fmt"

	"github.com/jbeda/geom"

	"github.com/sayhiben/washi-cut/pkg/unfold"
)

// Options configure packing. All lengths are millimeters.
type Options struct {
	// Tape is the tape width; the sheet's band height.
	Tape float64

	// Gap separates neighboring strips and duplicate sets.
	Gap float64

	// Margin surrounds the whole sheet.
	Margin float64

	// Shrink insets each face polygon by this perpendicular distance.
	// Faces too small to shrink keep their original outline.
	Shrink float64

	// Duplicates is how many copies of the full strip set to emit, at
	// least 1.
	Duplicates int

	// MaxLength caps the sheet width; zero means unbounded. Exceeding it
	// fails with *OverflowError.
	MaxLength float64
}

func (o Options) validate() error {
	if o.Tape <= 0 {
		return fmt.Errorf("tape width must be positive, got %g", o.Tape)
	}
	if o.Gap < 0 || o.Margin < 0 || o.Shrink < 0 {
		return fmt.Errorf("gap, margin, and shrink must be non-negative")
	}
	if o.Duplicates < 1 {
		return fmt.Errorf("duplicates must be at least 1, got %d", o.Duplicates)
	}
	if o.MaxLength < 0 {
		return fmt.Errorf("max length must be non-negative, got %g", o.MaxLength)
	}
	return nil
}

// OverflowError reports a packed sheet longer than the configured cap.
type OverflowError struct {
	Needed float64
	Limit  float64
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("layout needs %.1fmm of tape, limit is %.1fmm", e.Needed, e.Limit)
}

// Polygon is one face outline in final sheet coordinates.
type Polygon struct {
	// Face is the source face ID.
	Face int

	// Strip is the index of the strip this face was planned into.
	Strip int

	// Copy is the duplicate set index, 0-based.
	Copy int

	// Pts is the outline in sheet mm, y growing downward on print.
	Pts []geom.Coord
}

// Sheet is the packed artifact handed to the SVG sink.
type Sheet struct {
	// Width and Height are the canvas dimensions in mm.
	Width, Height float64

	// Tape and Margin echo the options that shaped the canvas.
	Tape, Margin float64

	// SetWidth is the width of one duplicate set without margins.
	SetWidth float64

	// Polys are the face outlines, set by set, strip by strip.
	Polys []Polygon
}

// Pack lays strips into a sheet. Strips must be finished: positive
// quadrant, Height within the tape width.
func Pack(strips []unfold.Strip, opts Options) (*Sheet, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	for i, s := range strips {
		if s.Height > opts.Tape+1e-6 {
			// Planners never emit these; reaching here is an upstream bug.
			return nil, fmt.Errorf("strip %d is %.2fmm tall, exceeds %.2fmm tape", i, s.Height, opts.Tape)
		}
	}

	setWidth := 0.0
	for i, s := range strips {
		if i > 0 {
			setWidth += opts.Gap
		}
		setWidth += s.Width
	}

	sheet := &Sheet{
		Tape:     opts.Tape,
		Margin:   opts.Margin,
		SetWidth: setWidth,
		Height:   opts.Tape + 2*opts.Margin,
	}
	sheet.Width = 2*opts.Margin + setWidth
	if opts.Duplicates > 1 {
		sheet.Width += float64(opts.Duplicates-1) * (setWidth + opts.Gap)
	}

	if opts.MaxLength > 0 && sheet.Width > opts.MaxLength {
		return nil, &OverflowError{Needed: sheet.Width, Limit: opts.MaxLength}
	}

	for copyIdx := 0; copyIdx < opts.Duplicates; copyIdx++ {
		setOff := float64(copyIdx) * (setWidth + opts.Gap)
		x := opts.Margin + setOff
		for stripIdx, s := range strips {
			// Center the strip vertically in the tape band.
			y := opts.Margin + (opts.Tape-s.Height)/2
			for _, pf := range s.Faces {
				pts := translate(shrinkFace(pf.Pts, opts.Shrink), x, y)
				sheet.Polys = append(sheet.Polys, Polygon{
					Face:  pf.Face,
					Strip: stripIdx,
					Copy:  copyIdx,
					Pts:   pts,
				})
			}
			x += s.Width + opts.Gap
		}
	}
	return sheet, nil
}

func translate(pts []geom.Coord, dx, dy float64) []geom.Coord {
	out := make([]geom.Coord, len(pts))
	for i, p := range pts {
		out[i] = geom.Coord{X: p.X + dx, Y: p.Y + dy}
	}
	return out
}
