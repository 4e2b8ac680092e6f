package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/sayhiben/washi-cut/pkg/cache"
	"github.com/sayhiben/washi-cut/pkg/facegraph"
	"github.com/sayhiben/washi-cut/pkg/layout"
	"github.com/sayhiben/washi-cut/pkg/mesh"
	"github.com/sayhiben/washi-cut/pkg/svg"
	"github.com/sayhiben/washi-cut/pkg/unfold"
)

// Runner executes the pipeline with plan caching.
//
// The Runner is stateless apart from the cache and logger; it stores no
// per-run results, so one Runner can serve many Execute calls.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner. A nil cache disables plan caching; a nil
// logger falls back to the package default.
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Logger: logger}
}

// Execute runs the complete pipeline on one STL file.
func (r *Runner) Execute(ctx context.Context, meshPath string, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{RunID: uuid.NewString()}

	// Stage 1: Load
	loadStart := time.Now()
	m, err := mesh.Load(meshPath, mesh.Unit(opts.Unit))
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Mesh = m.Info()
	result.Stats.LoadTime = time.Since(loadStart)

	opts.Logger.Info("loaded mesh",
		"triangles", result.Mesh.Triangles,
		"faces", result.Mesh.Faces,
		"duration", result.Stats.LoadTime)

	// Stage 2: Graph
	graphStart := time.Now()
	g, err := facegraph.Build(m)
	if err != nil {
		return nil, fmt.Errorf("graph: %w", err)
	}
	result.Stats.GraphTime = time.Since(graphStart)

	opts.Logger.Info("built face graph",
		"faces", len(m.Faces),
		"edges", len(g.Edges),
		"duration", result.Stats.GraphTime)

	// Stage 3: Plan
	planStart := time.Now()
	outcome, hit, err := r.planWithCache(ctx, meshPath, g, opts)
	if err != nil {
		return nil, fmt.Errorf("plan: %w", err)
	}
	result.Strips = outcome.Strips
	result.PlanMode = outcome.Mode
	result.Fallback = outcome.Fallback
	result.PlanCacheHit = hit
	result.Stats.PlanTime = time.Since(planStart)

	opts.Logger.Info("planned strips",
		"mode", outcome.Mode,
		"strips", len(outcome.Strips),
		"cached", hit,
		"duration", result.Stats.PlanTime)

	// Stage 4: Pack
	packStart := time.Now()
	sheet, err := layout.Pack(outcome.Strips, opts.layoutOptions())
	if err != nil {
		return nil, fmt.Errorf("pack: %w", err)
	}
	result.Sheet = sheet
	result.Stats.PackTime = time.Since(packStart)

	opts.Logger.Info("packed sheet",
		"width_mm", sheet.Width,
		"height_mm", sheet.Height,
		"polygons", len(sheet.Polys),
		"duration", result.Stats.PackTime)

	// Stage 5: Render
	renderStart := time.Now()
	style, err := svg.ParseStyle(opts.Style)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	renderOpts := []svg.Option{
		svg.WithStyle(style),
		svg.WithComment(fmt.Sprintf("washicut run %s; tape %gmm; mode %s; units in millimeters",
			result.RunID, opts.TapeWidth, outcome.Mode)),
	}
	if opts.Labels {
		renderOpts = append(renderOpts, svg.WithLabels())
	}
	result.SVG = svg.Render(sheet, renderOpts...)
	result.Stats.RenderTime = time.Since(renderStart)

	opts.Logger.Info("rendered svg",
		"bytes", len(result.SVG),
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Plan unfolds one graph without touching the cache. CLI commands that only
// inspect strips use this directly.
func (r *Runner) Plan(ctx context.Context, g *facegraph.Graph, opts Options) (PlanOutcome, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return PlanOutcome{}, fmt.Errorf("invalid options: %w", err)
	}
	return r.plan(ctx, g, opts)
}

// planWithCache looks the plan up in the cache before computing it. Plans
// are cached only on success, keyed by mesh bytes plus plan options.
func (r *Runner) planWithCache(ctx context.Context, meshPath string, g *facegraph.Graph, opts Options) (PlanOutcome, bool, error) {
	key := ""
	if meshHash, err := cache.HashFile(meshPath); err == nil {
		key = cache.PlanKey(meshHash, opts.PlanKeyOpts())
	}

	if key != "" && !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			var cached PlanOutcome
			if err := json.Unmarshal(data, &cached); err == nil && r.usable(cached, opts) {
				return cached, true, nil
			}
			// Undecodable or unusable entries fall through to a fresh plan.
		}
	}

	outcome, err := r.plan(ctx, g, opts)
	if err != nil {
		return PlanOutcome{}, false, err
	}

	if key != "" {
		if data, err := json.Marshal(outcome); err == nil {
			_ = r.Cache.Set(ctx, key, data, cache.TTLPlan)
		}
	}
	return outcome, false, nil
}

// usable rejects cached outcomes the current options could not have
// produced: a fallback plan is no good to a run that forbids fallback.
func (r *Runner) usable(cached PlanOutcome, opts Options) bool {
	if cached.Fallback && !opts.ShouldFallback() {
		return false
	}
	return len(cached.Strips) > 0
}

// plan dispatches to the requested planner and applies the fallback policy.
func (r *Runner) plan(ctx context.Context, g *facegraph.Graph, opts Options) (PlanOutcome, error) {
	bfs := &unfold.BFSPlanner{Tape: opts.TapeWidth}

	if !opts.IsHamiltonian() {
		strips, err := bfs.Plan(g)
		if err != nil {
			return PlanOutcome{}, err
		}
		return PlanOutcome{Mode: ModeBFS, Strips: strips}, nil
	}

	search := &unfold.RibbonSearch{
		Tape:     opts.TapeWidth,
		Beam:     opts.Beam,
		Timeout:  opts.Timeout(),
		Seed:     opts.Seed,
		Progress: opts.Progress,
	}
	res, err := search.Run(ctx, g)
	if err != nil {
		return PlanOutcome{}, err
	}
	if res.Failure == nil {
		return PlanOutcome{Mode: ModeHamiltonian, Strips: []unfold.Strip{*res.Strip}}, nil
	}

	opts.Logger.Warn("no serpentine ribbon",
		"reason", res.Failure.Reason,
		"expanded", res.Failure.Expanded,
		"elapsed", res.Failure.Elapsed)

	if !opts.ShouldFallback() {
		return PlanOutcome{}, res.Failure
	}

	opts.Logger.Info("falling back to strip planning")
	strips, err := bfs.Plan(g)
	if err != nil {
		return PlanOutcome{}, err
	}
	return PlanOutcome{Mode: ModeBFS, Fallback: true, Strips: strips}, nil
}

// Close releases resources held by the runner.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
