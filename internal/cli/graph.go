package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sayhiben/washi-cut/pkg/facegraph"
	"github.com/sayhiben/washi-cut/pkg/mesh"
)

// graphOpts holds the command-line flags for the graph command.
type graphOpts struct {
	output    string // output path; ".dot" writes DOT text, anything else SVG
	unit      string // unit of the input mesh
	dihedrals bool   // label hinges with their dihedral angles
}

// newGraphCmd creates the graph command for rendering the face-adjacency
// graph. Useful when a plan picks hinges you did not expect.
func newGraphCmd() *cobra.Command {
	var opts graphOpts

	cmd := &cobra.Command{
		Use:   "graph [mesh.stl]",
		Short: "Render the face-adjacency graph",
		Long: `Render the blank's face-adjacency graph: one node per face, one edge per
hinge. Write Graphviz DOT when the output path ends in .dot, otherwise
render SVG via Graphviz.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := mesh.ParseUnit(opts.unit); err != nil {
				return err
			}
			return runGraph(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output path (default: input base + _graph.svg)")
	cmd.Flags().StringVar(&opts.unit, "unit", string(mesh.Millimeter), "unit of the input mesh: mm or inch")
	cmd.Flags().BoolVar(&opts.dihedrals, "dihedrals", false, "label hinges with their dihedral angles")

	return cmd
}

func runGraph(ctx context.Context, input string, opts *graphOpts) error {
	logger := loggerFromContext(ctx)

	unit, err := mesh.ParseUnit(opts.unit)
	if err != nil {
		return err
	}
	m, err := mesh.Load(input, unit)
	if err != nil {
		return err
	}
	g, err := facegraph.Build(m)
	if err != nil {
		return err
	}

	out := opts.output
	if out == "" {
		out = strings.TrimSuffix(input, filepath.Ext(input)) + "_graph.svg"
	}

	dot := facegraph.ToDOT(g, facegraph.DOTOptions{Dihedrals: opts.dihedrals})

	var data []byte
	if strings.HasSuffix(out, ".dot") {
		data = []byte(dot)
	} else {
		sp := newSpinner(ctx, "Rendering dual graph...")
		sp.Start()
		data, err = facegraph.RenderSVG(dot)
		sp.Stop()
		if err != nil {
			return fmt.Errorf("render graph: %w", err)
		}
	}

	w, err := openOutput(out)
	if err != nil {
		return err
	}
	defer w.Close()
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}

	logger.Debugf("Generated %s: %d bytes", out, len(data))
	printSuccess("Drew %d faces and %d hinges", len(m.Faces), len(g.Edges))
	printFile(out)
	return nil
}
