// Package pipeline runs the complete load → graph → plan → pack → render
// flow behind one entry point.
//
// This package exists so the CLI and any embedding program share identical
// behavior: the same option validation, the same defaults, the same plan
// caching, and the same fallback policy when a serpentine search fails.
//
// # Architecture
//
// The pipeline consists of five stages:
//
//  1. Load: read the STL, weld vertices, merge coplanar facets
//  2. Graph: build the face-adjacency graph
//  3. Plan: unfold into strips (breadth-first or Hamiltonian ribbon)
//  4. Pack: arrange strips on the tape-width sheet
//  5. Render: emit the final SVG
//
// Planning is by far the most expensive stage, so its result is cached keyed
// by the mesh content hash and every option that can change the strips.
// Re-rendering the same blank with different layout options (gap, margin,
// duplicates, style) reuses the cached plan.
//
// # Usage
//
//	runner := pipeline.NewRunner(fileCache, logger)
//	defer runner.Close()
//
//	result, err := runner.Execute(ctx, "die.stl", pipeline.Options{
//	    TapeWidth: 15,
//	    Mode:      pipeline.ModeHamiltonian,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("wrap.svg", result.SVG, 0o644)
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/sayhiben/washi-cut/pkg/cache"
	"github.com/sayhiben/washi-cut/pkg/layout"
	"github.com/sayhiben/washi-cut/pkg/mesh"
	"github.com/sayhiben/washi-cut/pkg/svg"
	"github.com/sayhiben/washi-cut/pkg/unfold"
)

// Planner modes.
const (
	ModeBFS         = "bfs"
	ModeHamiltonian = "hamiltonian"
)

// Defaults shared by the CLI and embedding programs.
const (
	// DefaultMode is the planner used when none is named.
	DefaultMode = ModeBFS

	// DefaultUnit is the STL length unit.
	DefaultUnit = string(mesh.Millimeter)

	// DefaultGap is the wrap command's strip spacing in mm.
	DefaultGap = 2.0

	// DefaultMargin is the wrap command's sheet margin in mm.
	DefaultMargin = 1.0

	// DefaultDuplicates is the number of decal sets per sheet.
	DefaultDuplicates = 1

	// DefaultStyle is the SVG rendering style.
	DefaultStyle = "cut"

	// DefaultTimeoutSec is the Hamiltonian search budget in seconds.
	DefaultTimeoutSec = 2.0
)

// ValidModes is the set of supported planner modes.
var ValidModes = map[string]bool{
	ModeBFS:         true,
	ModeHamiltonian: true,
}

// ValidateMode checks that a planner mode is valid.
func ValidateMode(mode string) error {
	if !ValidModes[mode] {
		return fmt.Errorf("invalid mode: %q (must be one of: bfs, hamiltonian)", mode)
	}
	return nil
}

// Options contains all configuration for a pipeline run. The struct
// serializes to JSON so embedding programs can pass it around verbatim.
type Options struct {
	// Plan options
	TapeWidth  float64 `json:"tape_width"`
	Mode       string  `json:"mode,omitempty"`
	Unit       string  `json:"unit,omitempty"`
	Seed       int64   `json:"seed,omitempty"`
	Beam       int     `json:"beam,omitempty"`
	TimeoutSec float64 `json:"timeout_sec,omitempty"`
	NoFallback bool    `json:"no_fallback,omitempty"`
	Refresh    bool    `json:"refresh,omitempty"`

	// Layout options
	Shrink     float64 `json:"shrink,omitempty"`
	Gap        float64 `json:"gap,omitempty"`
	Margin     float64 `json:"margin,omitempty"`
	Duplicates int     `json:"duplicates,omitempty"`
	MaxLength  float64 `json:"max_length,omitempty"`

	// Render options
	Style  string `json:"style,omitempty"`
	Labels bool   `json:"labels,omitempty"`

	// Runtime options (not serialized)
	Logger   *log.Logger                                       `json:"-"`
	Progress func(depth, frontier, expanded int, best float64) `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID uniquely identifies this execution.
	RunID string

	// Mesh summarizes the extracted blank.
	Mesh mesh.Info

	// Strips are the planned, tape-bounded strips.
	Strips []unfold.Strip

	// PlanMode names the planner that actually produced the strips. It
	// differs from the requested mode after a Hamiltonian fallback.
	PlanMode string

	// Fallback reports that the serpentine search failed and breadth-first
	// planning stepped in.
	Fallback bool

	// PlanCacheHit reports that the strips came from the plan cache.
	PlanCacheHit bool

	// Sheet is the packed layout.
	Sheet *layout.Sheet

	// SVG is the rendered document.
	SVG []byte

	// Stats contains per-stage timing.
	Stats Stats
}

// Stats contains pipeline execution timing.
type Stats struct {
	LoadTime   time.Duration
	GraphTime  time.Duration
	PlanTime   time.Duration
	PackTime   time.Duration
	RenderTime time.Duration
}

// PlanOutcome is the planner product persisted in the cache between runs.
type PlanOutcome struct {
	Mode     string         `json:"mode"`
	Fallback bool           `json:"fallback,omitempty"`
	Strips   []unfold.Strip `json:"strips"`
}

// ValidateAndSetDefaults checks required fields and fills unset planner
// knobs (mode, unit, style, duplicates, beam, timeout). Layout lengths are
// taken as given: a zero gap or margin means exactly that. The method is
// idempotent: calling it again is a no-op.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	if o.TapeWidth <= 0 {
		return fmt.Errorf("tape width must be positive, got %g", o.TapeWidth)
	}

	if o.Mode == "" {
		o.Mode = DefaultMode
	}
	if err := ValidateMode(o.Mode); err != nil {
		return err
	}

	if o.Unit == "" {
		o.Unit = DefaultUnit
	}
	if _, err := mesh.ParseUnit(o.Unit); err != nil {
		return err
	}

	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if _, err := svg.ParseStyle(o.Style); err != nil {
		return err
	}

	switch {
	case o.Shrink < 0:
		return fmt.Errorf("shrink must be non-negative, got %g", o.Shrink)
	case o.Gap < 0:
		return fmt.Errorf("gap must be non-negative, got %g", o.Gap)
	case o.Margin < 0:
		return fmt.Errorf("margin must be non-negative, got %g", o.Margin)
	case o.MaxLength < 0:
		return fmt.Errorf("max length must be non-negative, got %g", o.MaxLength)
	case o.Duplicates < 0:
		return fmt.Errorf("duplicates must be positive, got %d", o.Duplicates)
	case o.Beam < 0:
		return fmt.Errorf("beam must be positive, got %d", o.Beam)
	case o.TimeoutSec < 0:
		return fmt.Errorf("timeout must be non-negative, got %g", o.TimeoutSec)
	}

	if o.Duplicates == 0 {
		o.Duplicates = DefaultDuplicates
	}
	if o.Beam == 0 {
		o.Beam = unfold.DefaultBeam
	}
	if o.TimeoutSec == 0 {
		o.TimeoutSec = DefaultTimeoutSec
	}

	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	o.validated = true
	return nil
}

// ShouldFallback reports whether a failed serpentine search may fall back to
// breadth-first strips.
func (o *Options) ShouldFallback() bool {
	return !o.NoFallback
}

// IsHamiltonian reports whether the serpentine planner was requested.
func (o *Options) IsHamiltonian() bool {
	return o.Mode == ModeHamiltonian
}

// Timeout returns the search budget as a duration.
func (o *Options) Timeout() time.Duration {
	return time.Duration(o.TimeoutSec * float64(time.Second))
}

// PlanKeyOpts returns cache key options for the planning stage. Search knobs
// are keyed only in Hamiltonian mode; breadth-first plans ignore them.
func (o *Options) PlanKeyOpts() cache.PlanKeyOpts {
	k := cache.PlanKeyOpts{
		Mode: o.Mode,
		Tape: o.TapeWidth,
		Unit: o.Unit,
	}
	if o.IsHamiltonian() {
		k.Beam = o.Beam
		k.Timeout = o.TimeoutSec
		k.Seed = o.Seed
	}
	return k
}

// layoutOptions maps the pipeline options onto the packer's.
func (o *Options) layoutOptions() layout.Options {
	return layout.Options{
		Tape:       o.TapeWidth,
		Gap:        o.Gap,
		Margin:     o.Margin,
		Shrink:     o.Shrink,
		Duplicates: o.Duplicates,
		MaxLength:  o.MaxLength,
	}
}
