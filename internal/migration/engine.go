package migration

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/sdd-agents/sdd/internal/prompt"
	"github.com/sdd-agents/sdd/internal/version"
)

// Store is the version marker the engine reads and, after a successful run,
// writes. An empty Current means no version is recorded.
type Store interface {
	Current() string
	Save(v string) error
}

// State is the engine's position in a run.
type State int

const (
	Idle State = iota
	Selecting
	Executing
	Done
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Selecting:
		return "selecting"
	case Executing:
		return "executing"
	case Done:
		return "done"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Plan is the outcome of selection for one target.
type Plan struct {
	// Marker is the raw recorded version, "" when absent.
	Marker  string
	Current *version.Version
	Target  version.Version
	Pending []Migration
}

// UpToDate reports whether nothing needs to run.
func (p *Plan) UpToDate() bool {
	return len(p.Pending) == 0
}

// Result describes one run.
type Result struct {
	RunID   string
	Plan    *Plan
	Applied []Migration
	State   State
	// Saved is true when the run wrote the version marker.
	Saved bool
}

// Config wires an Engine.
type Config struct {
	Root    string
	Store   Store
	Catalog Catalog
	Prompt  prompt.Confirmer
	Out     io.Writer
}

// Engine selects and executes migrations for one project directory.
// Runs are sequential; one engine must not be used concurrently, and only one
// process may upgrade a given project at a time.
type Engine struct {
	root    string
	store   Store
	catalog Catalog
	prompt  prompt.Confirmer
	out     io.Writer
}

// NewEngine creates an Engine.
func NewEngine(cfg Config) *Engine {
	out := cfg.Out
	if out == nil {
		out = io.Discard
	}
	return &Engine{
		root:    cfg.Root,
		store:   cfg.Store,
		catalog: cfg.Catalog,
		prompt:  cfg.Prompt,
		out:     out,
	}
}

// Catalog returns the engine's catalog.
func (e *Engine) Catalog() Catalog {
	return e.catalog
}

// Plan reads the recorded version and selects the migrations needed to reach
// target. It writes nothing.
func (e *Engine) Plan(ctx context.Context, target string) (*Plan, error) {
	marker := e.store.Current()

	current, err := version.ParseOptional(marker)
	if err != nil {
		return nil, fmt.Errorf("recorded version: %w", err)
	}

	t, err := version.Parse(target)
	if err != nil {
		return nil, fmt.Errorf("target version: %w", err)
	}

	plan := &Plan{
		Marker:  marker,
		Current: current,
		Target:  t,
		Pending: e.catalog.Select(current, &t),
	}

	log.FromContext(ctx).Debug("migration plan",
		"current", marker, "target", t.String(), "pending", len(plan.Pending))
	return plan, nil
}

// Migrate executes every pending migration for target in order. It stops at
// the first failure and returns an *Error naming the migration. It never
// touches the version marker.
func (e *Engine) Migrate(ctx context.Context, target string) (*Result, error) {
	res := &Result{RunID: uuid.New().String(), State: Selecting}
	logger := log.FromContext(ctx).With("run", res.RunID)

	plan, err := e.Plan(ctx, target)
	if err != nil {
		res.State = Failed
		return res, err
	}
	res.Plan = plan

	if plan.UpToDate() {
		res.State = Done
		return res, nil
	}

	env := &Env{Root: e.root, Prompt: e.prompt, Out: e.out}

	fmt.Fprintln(e.out, "🔄 Running migrations...")
	res.State = Executing
	for _, m := range plan.Pending {
		if err := ctx.Err(); err != nil {
			res.State = Failed
			return res, err
		}

		fmt.Fprintf(e.out, "  📦 %s (%s): %s\n", m.Name, m.Version, m.Description)
		logger.Debug("executing migration", "name", m.Name, "version", m.Version.String())

		if err := m.Execute(ctx, env); err != nil {
			fmt.Fprintf(e.out, "  ❌ Migration %s failed: %v\n", m.Name, err)
			res.State = Failed
			return res, &Error{Name: m.Name, Version: m.Version, Err: err}
		}
		res.Applied = append(res.Applied, m)
	}
	fmt.Fprintln(e.out, "✅ Migrations completed")

	res.State = Done
	return res, nil
}

// Run migrates to target and then records target as the project's version.
// The marker is written only when every migration succeeded, and not at all
// when it already holds target.
func (e *Engine) Run(ctx context.Context, target string) (*Result, error) {
	res, err := e.Migrate(ctx, target)
	if err != nil {
		return res, err
	}

	target = strings.TrimSpace(target)
	if res.Plan.Marker == target {
		return res, nil
	}

	if err := e.store.Save(target); err != nil {
		res.State = Failed
		return res, fmt.Errorf("failed to save version %s: %w", target, err)
	}
	res.Saved = true
	log.FromContext(ctx).Debug("version recorded", "run", res.RunID, "version", target)
	return res, nil
}
