package templates

import (
	"io/fs"
	"testing"
)

func TestFSLayout(t *testing.T) {
	fsys := FS()

	required := []string{
		".claude/agents",
		".claude/commands",
		"docs/templates",
		"docs/specs/AGENTS.md",
		"AGENTS.md",
		"CLAUDE.md",
	}
	for _, name := range required {
		if _, err := fs.Stat(fsys, name); err != nil {
			t.Errorf("template %s missing: %v", name, err)
		}
	}

	// act.md was retired in 1.7.0 and must not be reinstalled.
	if _, err := fs.Stat(fsys, ".claude/commands/act.md"); err == nil {
		t.Error("act.md must not be shipped")
	}
}
