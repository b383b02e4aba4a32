// Package catalog is the changelog of project migrations shipped with sdd.
//
// To add a migration, append an entry to Default with a version newer than
// the last one. Bodies must check before acting: a failed upgrade re-runs
// the whole batch.
package catalog

import (
	"github.com/sdd-agents/sdd/internal/migration"
	"github.com/sdd-agents/sdd/internal/version"
)

// Default returns the built-in catalog in ascending version order.
func Default() migration.Catalog {
	return migration.Catalog{
		{
			Version:     version.MustParse("1.7.0"),
			Name:        "remove-act-command",
			Description: "Remove deprecated act.md command",
			Execute:     removeActCommand,
		},
		{
			Version:     version.MustParse("1.8.0"),
			Name:        "relocate-agents-spec",
			Description: "Move AGENTS.md from docs/templates to docs/specs",
			Execute:     relocateAgentsSpec,
		},
	}
}
