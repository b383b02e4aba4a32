// Package installer scaffolds sdd's agent, command and documentation
// templates into a project and upgrades existing installations.
package installer

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/sdd-agents/sdd/internal/fsutil"
	"github.com/sdd-agents/sdd/internal/migration"
	"github.com/sdd-agents/sdd/internal/prompt"
	"github.com/sdd-agents/sdd/internal/versionstore"
)

// rootFiles are copied from the template root into the project root.
var rootFiles = []string{"AGENTS.md", "CLAUDE.md"} // nolint:gochecknoglobals

// Config wires an Installer.
type Config struct {
	// Root is the project directory.
	Root string
	// Version is the sdd release being installed.
	Version   string
	Templates fs.FS
	Catalog   migration.Catalog
	Prompt    prompt.Confirmer
	Out       io.Writer
	// SymlinkSpecs links docs/specs/CLAUDE.md to AGENTS.md instead of copying it.
	SymlinkSpecs bool
}

// Options controls Init.
type Options struct {
	// Force overwrites files that already exist.
	Force bool
	// Keep lists project-relative paths (slash separated) that are never
	// overwritten, even with Force.
	Keep map[string]bool
}

// Installer installs and upgrades one project.
type Installer struct {
	root         string
	version      string
	templates    fs.FS
	out          io.Writer
	symlinkSpecs bool

	store  *versionstore.Store
	engine *migration.Engine
}

// New creates an Installer.
func New(cfg Config) *Installer {
	out := cfg.Out
	if out == nil {
		out = io.Discard
	}
	store := versionstore.New(cfg.Root)
	return &Installer{
		root:         cfg.Root,
		version:      cfg.Version,
		templates:    cfg.Templates,
		out:          out,
		symlinkSpecs: cfg.SymlinkSpecs,
		store:        store,
		engine: migration.NewEngine(migration.Config{
			Root:    cfg.Root,
			Store:   store,
			Catalog: cfg.Catalog,
			Prompt:  cfg.Prompt,
			Out:     out,
		}),
	}
}

// Store returns the project's version store.
func (in *Installer) Store() *versionstore.Store {
	return in.store
}

// Init creates the directory layout and copies the templates. On a project
// without a version marker it records the current version directly: a new
// installation has nothing to migrate.
func (in *Installer) Init(ctx context.Context, opts Options) error {
	if err := in.ensureDirs(".claude", ".claude/agents", ".claude/commands"); err != nil {
		return err
	}
	fmt.Fprintln(in.out, "📁 .claude directory structure created")

	if err := in.copyDir(".claude/agents", opts.Force, "🤖 Agent"); err != nil {
		return err
	}
	if err := in.copyDir(".claude/commands", opts.Force, "⚙️  Command"); err != nil {
		return err
	}

	if err := in.ensureDirs("docs", "docs/templates", "docs/specs"); err != nil {
		return err
	}
	fmt.Fprintln(in.out, "📁 docs directory structure created")

	if err := in.copyDir("docs/templates", opts.Force, "📄 Template"); err != nil {
		return err
	}
	if err := in.copySpecs(opts); err != nil {
		return err
	}
	if err := in.copyRootFiles(opts.Force); err != nil {
		return err
	}

	if in.store.Current() == "" {
		if err := in.store.Save(in.version); err != nil {
			return fmt.Errorf("failed to save version: %w", err)
		}
		log.FromContext(ctx).Debug("first install, version recorded", "version", in.version, "marker", in.store.Path())
	}
	return nil
}

// Upgrade runs pending migrations, refreshes every template and then records
// the new version. The marker is left alone if any step fails.
//
// Spec files that a migration created during this upgrade, such as a relocated
// AGENTS.md, are kept instead of being replaced by the template.
func (in *Installer) Upgrade(ctx context.Context) (*migration.Result, error) {
	before := in.existingSpecs()

	res, err := in.engine.Migrate(ctx, in.version)
	if err != nil {
		return res, err
	}

	keep := make(map[string]bool)
	for rel := range in.existingSpecs() {
		if !before[rel] {
			keep[rel] = true
		}
	}

	if err := in.Init(ctx, Options{Force: true, Keep: keep}); err != nil {
		return res, err
	}

	if err := in.store.Save(in.version); err != nil {
		return res, fmt.Errorf("failed to save version: %w", err)
	}
	res.Saved = true
	return res, nil
}

// Status reports the recorded version and the migrations an upgrade would run.
func (in *Installer) Status(ctx context.Context) (*migration.Plan, error) {
	return in.engine.Plan(ctx, in.version)
}

func (in *Installer) path(rel string) string {
	return filepath.Join(in.root, filepath.FromSlash(rel))
}

func (in *Installer) ensureDirs(dirs ...string) error {
	for _, dir := range dirs {
		if err := os.MkdirAll(in.path(dir), 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// copyDir copies every file of the template directory dir into the same
// relative directory of the project.
func (in *Installer) copyDir(dir string, force bool, label string) error {
	entries, err := fs.ReadDir(in.templates, dir)
	if err != nil {
		return fmt.Errorf("failed to read templates %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		rel := path.Join(dir, entry.Name())
		if fsutil.Exists(in.path(rel)) && !force {
			fmt.Fprintf(in.out, "⚠️  %s already exists (use --force to overwrite)\n", rel)
			continue
		}
		if err := fsutil.CopyFromFS(in.templates, rel, in.path(rel)); err != nil {
			return err
		}
		fmt.Fprintf(in.out, "%s %s copied\n", label, entry.Name())
	}
	return nil
}

// existingSpecs returns the template spec files already present in the project.
func (in *Installer) existingSpecs() map[string]bool {
	found := make(map[string]bool)
	entries, err := fs.ReadDir(in.templates, "docs/specs")
	if err != nil {
		return found
	}
	for _, entry := range entries {
		rel := path.Join("docs/specs", entry.Name())
		if !entry.IsDir() && fsutil.Exists(in.path(rel)) {
			found[rel] = true
		}
	}
	return found
}

func (in *Installer) copySpecs(opts Options) error {
	force := opts.Force
	entries, err := fs.ReadDir(in.templates, "docs/specs")
	if err != nil {
		return fmt.Errorf("failed to read templates docs/specs: %w", err)
	}

	for _, entry := range entries {
		// CLAUDE.md is a link to AGENTS.md, handled below.
		if entry.IsDir() || entry.Name() == "CLAUDE.md" {
			continue
		}
		rel := path.Join("docs/specs", entry.Name())
		dest := in.path(rel)

		if fsutil.Exists(dest) {
			if opts.Keep[rel] {
				fmt.Fprintf(in.out, "📄 Spec %s kept (moved by migration)\n", entry.Name())
				continue
			}
			if !force {
				fmt.Fprintf(in.out, "⚠️  %s already exists (use --force to overwrite)\n", rel)
				continue
			}
			if _, err := fsutil.RemoveIfExists(dest); err != nil {
				return err
			}
		}

		if err := fsutil.CopyFromFS(in.templates, rel, dest); err != nil {
			return err
		}
		fmt.Fprintf(in.out, "📄 Spec %s copied\n", entry.Name())
	}

	return in.ensureSpecLink(force)
}

func (in *Installer) copyRootFiles(force bool) error {
	for _, name := range rootFiles {
		if _, err := fs.Stat(in.templates, name); err != nil {
			fmt.Fprintf(in.out, "⚠️  templates/%s not found, skipping\n", name)
			continue
		}
		dest := in.path(name)
		if fsutil.Exists(dest) && !force {
			fmt.Fprintf(in.out, "⚠️  %s already exists (use --force to overwrite)\n", name)
			continue
		}
		if err := fsutil.CopyFromFS(in.templates, name, dest); err != nil {
			return err
		}
		fmt.Fprintf(in.out, "📄 Template %s copied\n", name)
	}
	return nil
}
