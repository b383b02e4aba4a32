package catalog

import (
	"context"
	"fmt"

	"github.com/sdd-agents/sdd/internal/fsutil"
	"github.com/sdd-agents/sdd/internal/migration"
)

// removeActCommand deletes .claude/commands/act.md after asking. Keeping the
// file is not an error.
func removeActCommand(ctx context.Context, env *migration.Env) error {
	actPath := env.Path(".claude", "commands", "act.md")

	if !fsutil.Exists(actPath) {
		env.Printf("  ℹ️  act.md not found - skipping\n")
		return nil
	}

	ok, err := env.Prompt.Confirm("  ⚠️  act.md command is deprecated. Delete it?")
	if err != nil {
		return fmt.Errorf("failed to confirm removal of act.md: %w", err)
	}

	if !ok {
		env.Printf("  ⚠️  act.md was kept. Note: This command is no longer maintained.\n")
		return nil
	}

	if _, err := fsutil.RemoveIfExists(actPath); err != nil {
		return err
	}
	env.Printf("  ✅ act.md has been removed\n")
	return nil
}
