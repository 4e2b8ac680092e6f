package cli

import (
	"context"
	"fmt"
	"math"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/sayhiben/washi-cut/pkg/facegraph"
	"github.com/sayhiben/washi-cut/pkg/mesh"
	"github.com/sayhiben/washi-cut/pkg/unfold"
)

// newInspectCmd creates the inspect command, a dry look at a blank before
// committing to a tape width.
func newInspectCmd() *cobra.Command {
	var unit string

	cmd := &cobra.Command{
		Use:   "inspect [mesh.stl]",
		Short: "Summarize a mesh and its fold graph",
		Long: `Load a die blank, merge its coplanar triangles into faces, and print the
numbers that matter for wrapping: face and hinge counts, bounding size,
surface area, dihedral range, and the narrowest tape the blank fits on.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := mesh.ParseUnit(unit)
			if err != nil {
				return err
			}
			return runInspect(cmd.Context(), args[0], u)
		},
	}

	cmd.Flags().StringVar(&unit, "unit", string(mesh.Millimeter), "unit of the input mesh: mm or inch")
	return cmd
}

func runInspect(ctx context.Context, input string, unit mesh.Unit) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	m, err := mesh.Load(input, unit)
	if err != nil {
		return err
	}
	g, err := facegraph.Build(m)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Analyzed %d faces", len(m.Faces)))

	info := m.Info()
	size := r3.Sub(info.Max, info.Min)
	minDih, maxDih := dihedralRange(g)
	need, widest := unfold.MinTape(g)

	fmt.Println(StyleTitle.Render(filepath.Base(input)))
	printKeyValue("triangles", strconv.Itoa(info.Triangles))
	printKeyValue("faces", strconv.Itoa(info.Faces))
	printKeyValue("vertices", strconv.Itoa(info.Vertices))
	printKeyValue("hinges", strconv.Itoa(len(g.Edges)))
	printKeyValue("size", fmt.Sprintf("%.1f × %.1f × %.1f mm", size.X, size.Y, size.Z))
	printKeyValue("area", fmt.Sprintf("%.1f mm²", info.Area))
	printKeyValue("dihedrals", fmt.Sprintf("%.1f° to %.1f°", minDih, maxDih))
	printKeyValue("min tape", fmt.Sprintf("%.1f mm (face f%d)", need, widest))
	printNextStep("Wrap it", fmt.Sprintf("washicut wrap %s --tape-width %.0f", input, math.Ceil(need)))
	return nil
}

// dihedralRange returns the smallest and largest interior dihedral angle in
// degrees.
func dihedralRange(g *facegraph.Graph) (minDeg, maxDeg float64) {
	if len(g.Edges) == 0 {
		return 0, 0
	}
	minDeg, maxDeg = math.Inf(1), math.Inf(-1)
	for _, e := range g.Edges {
		d := e.Dihedral * 180 / math.Pi
		minDeg = math.Min(minDeg, d)
		maxDeg = math.Max(maxDeg, d)
	}
	return minDeg, maxDeg
}
