package layout

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jbeda/geom"

	"github.com/sayhiben/washi-cut/pkg/unfold"
)

func square(x, y, size float64) []geom.Coord {
	return []geom.Coord{
		{X: x, Y: y},
		{X: x + size, Y: y},
		{X: x + size, Y: y + size},
		{X: x, Y: y + size},
	}
}

func stripOfSquares(faces ...float64) unfold.Strip {
	s := unfold.Strip{}
	x := 0.0
	h := 0.0
	for i, size := range faces {
		s.Faces = append(s.Faces, unfold.PlacedFace{Face: i, Hinge: -1, Pts: square(x, 0, size)})
		x += size
		h = math.Max(h, size)
	}
	s.Width = x
	s.Height = h
	return s
}

func TestPack_CentersStripInBand(t *testing.T) {
	strips := []unfold.Strip{stripOfSquares(10)}

	sheet, err := Pack(strips, Options{Tape: 15, Gap: 2, Margin: 1, Duplicates: 1})
	if err != nil {
		t.Fatalf("Pack() error = %v", err)
	}

	if math.Abs(sheet.Width-12) > 1e-9 {
		t.Errorf("Width = %v, want 12", sheet.Width)
	}
	if math.Abs(sheet.Height-17) > 1e-9 {
		t.Errorf("Height = %v, want 17", sheet.Height)
	}
	if len(sheet.Polys) != 1 {
		t.Fatalf("len(Polys) = %d, want 1", len(sheet.Polys))
	}
	// margin 1 + (15-10)/2 band padding
	for _, p := range sheet.Polys[0].Pts {
		if p.Y < 3.5-1e-9 || p.Y > 13.5+1e-9 {
			t.Errorf("point %v outside centered band [3.5, 13.5]", p)
		}
	}
}

func TestPack_StripsSeparatedByGap(t *testing.T) {
	strips := []unfold.Strip{stripOfSquares(10), stripOfSquares(8)}

	sheet, err := Pack(strips, Options{Tape: 15, Gap: 2, Margin: 1, Duplicates: 1})
	if err != nil {
		t.Fatalf("Pack() error = %v", err)
	}

	if math.Abs(sheet.SetWidth-20) > 1e-9 {
		t.Errorf("SetWidth = %v, want 20", sheet.SetWidth)
	}
	second := sheet.Polys[1]
	if second.Strip != 1 {
		t.Fatalf("Polys[1].Strip = %d, want 1", second.Strip)
	}
	minX := math.Inf(1)
	for _, p := range second.Pts {
		minX = math.Min(minX, p.X)
	}
	// margin 1 + first strip 10 + gap 2
	if math.Abs(minX-13) > 1e-9 {
		t.Errorf("second strip starts at x=%v, want 13", minX)
	}
}

func TestPack_DuplicatesOffsetBySetWidth(t *testing.T) {
	strips := []unfold.Strip{stripOfSquares(10), stripOfSquares(8)}

	sheet, err := Pack(strips, Options{Tape: 15, Gap: 2, Margin: 1, Duplicates: 3})
	if err != nil {
		t.Fatalf("Pack() error = %v", err)
	}

	if len(sheet.Polys) != 6 {
		t.Fatalf("len(Polys) = %d, want 6", len(sheet.Polys))
	}
	// 2*margin + setWidth + 2*(setWidth+gap)
	if want := 2 + 20 + 2*22.0; math.Abs(sheet.Width-want) > 1e-9 {
		t.Errorf("Width = %v, want %v", sheet.Width, want)
	}
	for i := 0; i < 2; i++ {
		base := sheet.Polys[i]
		for copyIdx := 1; copyIdx < 3; copyIdx++ {
			dup := sheet.Polys[copyIdx*2+i]
			if dup.Copy != copyIdx || dup.Face != base.Face {
				t.Fatalf("Polys[%d] = copy %d face %d, want copy %d face %d", copyIdx*2+i, dup.Copy, dup.Face, copyIdx, base.Face)
			}
			off := float64(copyIdx) * 22
			for j, p := range dup.Pts {
				if math.Abs(p.X-base.Pts[j].X-off) > 1e-9 || math.Abs(p.Y-base.Pts[j].Y) > 1e-9 {
					t.Errorf("copy %d point %d = %v, want %v shifted by %v", copyIdx, j, p, base.Pts[j], off)
				}
			}
		}
	}
}

func TestPack_Idempotent(t *testing.T) {
	strips := []unfold.Strip{stripOfSquares(10, 6), stripOfSquares(8)}
	opts := Options{Tape: 15, Gap: 2, Margin: 1, Shrink: 0.5, Duplicates: 2}

	first, err := Pack(strips, opts)
	if err != nil {
		t.Fatalf("Pack() error = %v", err)
	}
	second, err := Pack(strips, opts)
	if err != nil {
		t.Fatalf("Pack() error = %v", err)
	}

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Pack() is not deterministic (-first +second):\n%s", diff)
	}
}

func TestPack_Overflow(t *testing.T) {
	strips := []unfold.Strip{stripOfSquares(10), stripOfSquares(8)}

	_, err := Pack(strips, Options{Tape: 15, Gap: 2, Margin: 1, Duplicates: 5, MaxLength: 50})

	var oe *OverflowError
	if !errors.As(err, &oe) {
		t.Fatalf("Pack() error = %v, want *OverflowError", err)
	}
	if oe.Limit != 50 || oe.Needed <= 50 {
		t.Errorf("OverflowError = needed %v limit %v", oe.Needed, oe.Limit)
	}
}

func TestPack_RejectsTooTallStrip(t *testing.T) {
	strips := []unfold.Strip{stripOfSquares(20)}

	_, err := Pack(strips, Options{Tape: 15, Gap: 2, Margin: 1, Duplicates: 1})

	if err == nil {
		t.Fatal("Pack() accepted a strip taller than the tape")
	}
}

func TestPack_ValidatesOptions(t *testing.T) {
	strips := []unfold.Strip{stripOfSquares(10)}
	tests := []struct {
		name string
		opts Options
	}{
		{name: "zero tape", opts: Options{Tape: 0, Duplicates: 1}},
		{name: "zero duplicates", opts: Options{Tape: 15, Duplicates: 0}},
		{name: "negative gap", opts: Options{Tape: 15, Gap: -1, Duplicates: 1}},
		{name: "negative max length", opts: Options{Tape: 15, Duplicates: 1, MaxLength: -2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Pack(strips, tt.opts); err == nil {
				t.Error("Pack() accepted invalid options")
			}
		})
	}
}

func TestPack_ShrinkInsetsFaces(t *testing.T) {
	strips := []unfold.Strip{stripOfSquares(10)}

	sheet, err := Pack(strips, Options{Tape: 15, Gap: 2, Margin: 0, Shrink: 1, Duplicates: 1})
	if err != nil {
		t.Fatalf("Pack() error = %v", err)
	}

	r := boundsOf(sheet.Polys[0].Pts)
	if math.Abs(r.Width()-8) > 1e-9 || math.Abs(r.Height()-8) > 1e-9 {
		t.Errorf("shrunk face is %vx%v, want 8x8", r.Width(), r.Height())
	}
}

func boundsOf(pts []geom.Coord) geom.Rect {
	r := geom.Rect{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		r.ExpandToContainCoord(p)
	}
	return r
}
