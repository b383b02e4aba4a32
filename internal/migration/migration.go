// Package migration applies ordered, version-gated changes to a project
// directory.
//
// A Catalog is a hand-maintained list of migrations in ascending version
// order. Upgrading from the recorded version to a target runs, in order,
// every migration whose version is newer than the recorded one and not newer
// than the target. Only the final version is recorded, so every migration
// body must be safe to run again.
package migration

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/sdd-agents/sdd/internal/prompt"
	"github.com/sdd-agents/sdd/internal/version"
)

// Env is what a migration body gets to work with.
type Env struct {
	// Root is the absolute project root.
	Root string
	// Prompt asks the operator yes/no questions.
	Prompt prompt.Confirmer
	// Out receives progress lines.
	Out io.Writer
}

// Path joins elem onto the project root.
func (e *Env) Path(elem ...string) string {
	return filepath.Join(append([]string{e.Root}, elem...)...)
}

// Printf writes a progress line.
func (e *Env) Printf(format string, args ...interface{}) {
	if e.Out == nil {
		return
	}
	fmt.Fprintf(e.Out, format, args...)
}

// ExecuteFunc performs one migration against the project.
type ExecuteFunc func(ctx context.Context, env *Env) error

// Migration is one catalog entry.
type Migration struct {
	Version     version.Version
	Name        string
	Description string
	Execute     ExecuteFunc
}

// Catalog is an ordered list of migrations. It must be authored in strictly
// ascending version order; Select relies on it and Validate checks it.
type Catalog []Migration

// Select returns, in catalog order, every migration m with
// current < m.Version <= target. A nil current selects everything up to target.
func (c Catalog) Select(current, target *version.Version) []Migration {
	var selected []Migration
	for _, m := range c {
		v := m.Version
		if version.Compare(&v, current) > 0 && version.Compare(&v, target) <= 0 {
			selected = append(selected, m)
		}
	}
	return selected
}

// Validate checks the authoring rules: strictly ascending versions, unique
// non-empty names and an Execute body on every entry.
func (c Catalog) Validate() error {
	names := make(map[string]bool, len(c))
	for i, m := range c {
		if m.Name == "" {
			return fmt.Errorf("migration %d (%s) has no name", i, m.Version)
		}
		if names[m.Name] {
			return fmt.Errorf("duplicate migration name %q", m.Name)
		}
		names[m.Name] = true

		if m.Execute == nil {
			return fmt.Errorf("migration %s has no execute function", m.Name)
		}

		if i > 0 && !c[i-1].Version.Less(m.Version) {
			return fmt.Errorf("migration %s (%s) is not newer than %s (%s)",
				m.Name, m.Version, c[i-1].Name, c[i-1].Version)
		}
	}
	return nil
}

// Latest returns the highest version in the catalog, or nil when empty.
func (c Catalog) Latest() *version.Version {
	if len(c) == 0 {
		return nil
	}
	v := c[len(c)-1].Version
	return &v
}

// Error reports a failed migration.
type Error struct {
	Name    string
	Version version.Version
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("migration %s (%s) failed: %v", e.Name, e.Version, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
