package mesh

import (
	"fmt"
	"os"

	"github.com/unixpickle/model3d/model3d"
)

// Unit names the linear unit of an STL file. STL itself is unitless; washi
// tape is sold in millimeters, so everything is converted to mm on load.
type Unit string

const (
	Millimeter Unit = "mm"
	Inch       Unit = "inch"
)

// ParseUnit maps a CLI flag value to a Unit.
func ParseUnit(s string) (Unit, error) {
	switch s {
	case "mm", "millimeter":
		return Millimeter, nil
	case "in", "inch":
		return Inch, nil
	default:
		return "", fmt.Errorf("unknown unit %q (allowed: mm, inch)", s)
	}
}

func (u Unit) factor() float64 {
	if u == Inch {
		return 25.4
	}
	return 1
}

// Load reads an STL file, converts it to millimeters, and builds the welded,
// merged Mesh.
func Load(path string, unit Unit) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open mesh: %w", err)
	}
	defer f.Close()

	tris, err := model3d.ReadSTL(f)
	if err != nil {
		return nil, fmt.Errorf("read stl %s: %w", path, err)
	}
	if s := unit.factor(); s != 1 {
		for _, t := range tris {
			for i := range t {
				t[i] = t[i].Scale(s)
			}
		}
	}
	m, err := FromTriangles(tris)
	if err != nil {
		return nil, fmt.Errorf("build mesh from %s: %w", path, err)
	}
	return m, nil
}

// WriteSTL saves a triangle soup as a binary STL file.
func WriteSTL(path string, tris []*model3d.Triangle) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create stl: %w", err)
	}
	if err := model3d.WriteSTL(f, tris); err != nil {
		f.Close()
		return fmt.Errorf("write stl %s: %w", path, err)
	}
	return f.Close()
}
