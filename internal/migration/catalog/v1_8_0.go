package catalog

import (
	"context"
	"path/filepath"

	"github.com/sdd-agents/sdd/internal/fsutil"
	"github.com/sdd-agents/sdd/internal/migration"
)

// deprecatedDocTemplates were replaced by the docs/specs layout in 1.8.0.
var deprecatedDocTemplates = []string{ // nolint:gochecknoglobals
	"CLAUDE.md",
	"spec-template.md",
}

// relocateAgentsSpec moves docs/templates/AGENTS.md into docs/specs and prunes
// the old doc templates. An existing docs/specs/AGENTS.md is never
// overwritten; the operator has to resolve that conflict by hand.
func relocateAgentsSpec(ctx context.Context, env *migration.Env) error {
	src := env.Path("docs", "templates", "AGENTS.md")
	dst := env.Path("docs", "specs", "AGENTS.md")

	if fsutil.Exists(src) {
		if err := fsutil.Move(src, dst); err != nil {
			return err
		}
		env.Printf("  ✅ AGENTS.md moved to docs/specs\n")
	} else {
		env.Printf("  ℹ️  docs/templates/AGENTS.md not found - skipping move\n")
	}

	for _, name := range deprecatedDocTemplates {
		removed, err := fsutil.RemoveIfExists(env.Path("docs", "templates", name))
		if err != nil {
			return err
		}
		if removed {
			env.Printf("  🗑  %s removed\n", filepath.ToSlash(filepath.Join("docs", "templates", name)))
		}
	}
	return nil
}
