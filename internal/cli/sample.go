package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/unixpickle/model3d/model3d"

	"github.com/sayhiben/washi-cut/pkg/mesh"
)

// newSampleCmd creates the sample command for writing built-in die blanks.
// Handy for trying the tool without modeling anything first.
func newSampleCmd() *cobra.Command {
	var (
		edge   float64
		output string
	)

	cmd := &cobra.Command{
		Use:       "sample [tetrahedron|cube|octahedron|icosahedron]",
		Short:     "Write a sample die blank STL",
		ValidArgs: []string{"tetrahedron", "cube", "octahedron", "icosahedron"},
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			if edge <= 0 {
				return fmt.Errorf("--edge must be positive, got %g", edge)
			}

			var tris []*model3d.Triangle
			switch args[0] {
			case "tetrahedron":
				tris = mesh.Tetrahedron(edge)
			case "cube":
				tris = mesh.Cube(edge)
			case "octahedron":
				tris = mesh.Octahedron(edge)
			case "icosahedron":
				tris = mesh.Icosahedron(edge)
			}

			out := output
			if out == "" {
				out = args[0] + ".stl"
			}
			if err := mesh.WriteSTL(out, tris); err != nil {
				return err
			}

			printSuccess("Wrote %s (%d triangles, %gmm edges)", out, len(tris), edge)
			printNextStep("Wrap it", fmt.Sprintf("washicut wrap %s --tape-width 15", out))
			return nil
		},
	}

	cmd.Flags().Float64Var(&edge, "edge", 16, "edge length in mm")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output path (default: <solid>.stl)")

	return cmd
}
