package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sayhiben/washi-cut/pkg/pipeline"
	"github.com/sayhiben/washi-cut/pkg/unfold"
)

// wrapOpts holds the command-line flags for the wrap command.
type wrapOpts struct {
	output      string  // SVG output path
	unit        string  // unit of the input mesh: "mm" or "inch"
	tapeWidth   float64 // washi tape width in mm
	shrink      float64 // inward offset per face in mm
	gap         float64 // gap between strips in mm
	margin      float64 // canvas margin on all sides in mm
	duplicates  int     // horizontal copies of the strip set
	maxLength   float64 // sheet length cap in mm (0 = unbounded)
	mode        string  // planner: "bfs" or "hamiltonian"
	seed        int64   // tie-break seed for the ribbon search
	beam        int     // beam width for the ribbon search
	timeout     float64 // ribbon search deadline in seconds
	noFallback  bool    // fail instead of falling back to strip planning
	style       string  // SVG style: "cut" or "print"
	labels      bool    // annotate faces with their IDs
	profileName string  // named preset from washicut.toml
	noCache     bool    // disable the plan cache
	refresh     bool    // replan even when a cached plan exists
}

// newWrapCmd creates the wrap command, the end-to-end path from a die blank
// STL to a cut-ready SVG.
//
// Default settings:
//   - mode: bfs (multiple strips; hamiltonian searches for one ribbon)
//   - gap: 2mm, margin: 1mm, duplicates: 1
//   - style: cut (outlines only; print fills faces per strip)
func newWrapCmd() *cobra.Command {
	opts := wrapOpts{
		output:     "washi_wrap.svg",
		unit:       pipeline.DefaultUnit,
		gap:        pipeline.DefaultGap,
		margin:     pipeline.DefaultMargin,
		duplicates: pipeline.DefaultDuplicates,
		mode:       pipeline.DefaultMode,
		beam:       unfold.DefaultBeam,
		timeout:    pipeline.DefaultTimeoutSec,
		style:      pipeline.DefaultStyle,
	}

	cmd := &cobra.Command{
		Use:   "wrap [mesh.stl]",
		Short: "Unfold a die blank into tape strips and write the SVG",
		Long: `Unfold a convex die blank into flat strips that fit the tape width and
write them as a cut-ready SVG in millimeter units.

The default bfs mode grows as few strips as possible; hamiltonian mode
searches for a single serpentine ribbon covering every face and falls back
to bfs when none fits (disable with --no-ham-fallback).

Planned strips are cached locally, so re-running with different layout
options (gap, margin, duplicates, style) skips the search.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.profileName != "" {
				p, err := loadProfile(profileFile, opts.profileName)
				if err != nil {
					return err
				}
				p.apply(&opts, cmd.Flags().Changed)
			}
			if opts.tapeWidth <= 0 {
				return fmt.Errorf("--tape-width is required (or set tape_width in a %s profile)", profileFile)
			}
			return runWrap(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().Float64Var(&opts.tapeWidth, "tape-width", 0, "washi tape width in mm, e.g. 15")
	cmd.Flags().StringVarP(&opts.output, "out", "o", opts.output, "output SVG path")
	cmd.Flags().StringVar(&opts.unit, "unit", opts.unit, "unit of the input mesh: mm or inch")
	cmd.Flags().Float64Var(&opts.shrink, "shrink", 0, "inward offset per face in mm, avoids edge overhang")
	cmd.Flags().Float64Var(&opts.gap, "gap", opts.gap, "gap between strips in mm")
	cmd.Flags().Float64Var(&opts.margin, "margin", opts.margin, "canvas margin on all sides in mm")
	cmd.Flags().IntVar(&opts.duplicates, "duplicates", opts.duplicates, "duplicate the strip set this many times")
	cmd.Flags().Float64Var(&opts.maxLength, "max-length", 0, "fail if the sheet exceeds this length in mm (0 = unbounded)")
	cmd.Flags().StringVar(&opts.mode, "mode", opts.mode, "unfolding mode: bfs or hamiltonian")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "random seed for tie-breaking")
	cmd.Flags().IntVar(&opts.beam, "ham-beam", opts.beam, "beam width for the ribbon search")
	cmd.Flags().Float64Var(&opts.timeout, "ham-timeout", opts.timeout, "soft time limit in seconds for the ribbon search")
	cmd.Flags().BoolVar(&opts.noFallback, "no-ham-fallback", false, "fail instead of falling back to strip planning")
	cmd.Flags().StringVar(&opts.style, "style", opts.style, "SVG style: cut or print")
	cmd.Flags().BoolVar(&opts.labels, "labels", false, "label faces with their IDs")
	cmd.Flags().StringVar(&opts.profileName, "profile", "", "apply a named preset from washicut.toml")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the plan cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "replan even if a cached plan exists")

	return cmd
}

// runWrap executes the pipeline and writes the SVG.
func runWrap(ctx context.Context, input string, opts *wrapOpts) error {
	runner, err := newRunner(ctx, opts.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	popts := pipeline.Options{
		TapeWidth:  opts.tapeWidth,
		Mode:       opts.mode,
		Unit:       opts.unit,
		Seed:       opts.seed,
		Beam:       opts.beam,
		TimeoutSec: opts.timeout,
		NoFallback: opts.noFallback,
		Refresh:    opts.refresh,
		Shrink:     opts.shrink,
		Gap:        opts.gap,
		Margin:     opts.margin,
		Duplicates: opts.duplicates,
		MaxLength:  opts.maxLength,
		Style:      opts.style,
		Labels:     opts.labels,
	}

	var sp *Spinner
	if opts.mode == pipeline.ModeHamiltonian {
		sp = newSpinner(ctx, "Searching for a serpentine ribbon...")
		popts.Progress = func(depth, frontier, expanded int, best float64) {
			sp.SetMessage(fmt.Sprintf("Searching ribbon: depth %d, frontier %d, expanded %d", depth, frontier, expanded))
		}
		sp.Start()
	}

	res, err := runner.Execute(ctx, input, popts)
	if sp != nil {
		if err != nil {
			sp.StopWithError("Wrap failed")
		} else {
			sp.Stop()
		}
	}
	if err != nil {
		return err
	}

	out, err := openOutput(opts.output)
	if err != nil {
		return err
	}
	defer out.Close()
	if _, err := out.Write(res.SVG); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}

	printSuccess("Wrapped %s into %d strips", filepath.Base(input), len(res.Strips))
	printStats(res.Mesh.Faces, len(res.Strips), res.PlanCacheHit)
	if res.Fallback {
		printWarning("No serpentine ribbon fit the tape; planned strips instead")
	}
	printKeyValue("sheet", fmt.Sprintf("%.1f × %.1f mm", res.Sheet.Width, res.Sheet.Height))
	printKeyValue("mode", res.PlanMode)
	printFile(opts.output)
	return nil
}
