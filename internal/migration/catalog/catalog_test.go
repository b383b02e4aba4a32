package catalog

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdd-agents/sdd/internal/fsutil"
	"github.com/sdd-agents/sdd/internal/migration"
	"github.com/sdd-agents/sdd/internal/prompt"
	"github.com/sdd-agents/sdd/internal/versionstore"
)

func writeFile(t *testing.T, root string, rel string, content string) {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0644))
}

func exists(root, rel string) bool {
	return fsutil.Exists(filepath.Join(root, filepath.FromSlash(rel)))
}

func newEnv(root string, answers ...string) (*migration.Env, *prompt.Scripted, *bytes.Buffer) {
	p := &prompt.Scripted{Answers: answers}
	var out bytes.Buffer
	return &migration.Env{Root: root, Prompt: p, Out: &out}, p, &out
}

func TestDefaultIsOrdered(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	for i := 1; i < len(c); i++ {
		assert.True(t, c[i-1].Version.Less(c[i].Version),
			"%s must be older than %s", c[i-1].Name, c[i].Name)
	}
}

func TestRemoveActCommandSkipsWithoutPrompt(t *testing.T) {
	root := t.TempDir()
	env, p, out := newEnv(root)

	require.NoError(t, removeActCommand(context.Background(), env))

	assert.Empty(t, p.Asked, "must not prompt when act.md is absent")
	assert.Contains(t, out.String(), "act.md not found - skipping")
}

func TestRemoveActCommand(t *testing.T) {
	tests := []struct {
		name    string
		answer  string
		removed bool
	}{
		{"empty answer deletes", "", true},
		{"y deletes", "y", true},
		{"YES deletes", "YES", true},
		{"n keeps", "n", false},
		{"anything else keeps", "later", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeFile(t, root, ".claude/commands/act.md", "# act")
			env, p, _ := newEnv(root, tt.answer)

			require.NoError(t, removeActCommand(context.Background(), env))

			assert.Len(t, p.Asked, 1)
			assert.Equal(t, !tt.removed, exists(root, ".claude/commands/act.md"))
		})
	}
}

func TestRemoveActCommandPromptError(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, ".claude/commands/act.md", "# act")
	env, _, _ := newEnv(root) // no answers left

	err := removeActCommand(context.Background(), env)
	assert.True(t, errors.Is(err, prompt.ErrNoAnswer))
	assert.True(t, exists(root, ".claude/commands/act.md"))
}

func TestRelocateAgentsSpec(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "docs/templates/AGENTS.md", "agents")
	writeFile(t, root, "docs/templates/CLAUDE.md", "old")
	writeFile(t, root, "docs/templates/spec-template.md", "old")
	writeFile(t, root, "docs/templates/plan-template.md", "keep")
	env, p, _ := newEnv(root)

	require.NoError(t, relocateAgentsSpec(context.Background(), env))

	data, err := os.ReadFile(filepath.Join(root, "docs", "specs", "AGENTS.md"))
	require.NoError(t, err)
	assert.Equal(t, "agents", string(data))
	assert.False(t, exists(root, "docs/templates/AGENTS.md"))
	assert.False(t, exists(root, "docs/templates/CLAUDE.md"))
	assert.False(t, exists(root, "docs/templates/spec-template.md"))
	assert.True(t, exists(root, "docs/templates/plan-template.md"))
	assert.Empty(t, p.Asked, "pruning never prompts")

	// Running again is a no-op.
	require.NoError(t, relocateAgentsSpec(context.Background(), env))
	assert.True(t, exists(root, "docs/specs/AGENTS.md"))
}

func TestRelocateAgentsSpecConflict(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "docs/templates/AGENTS.md", "old")
	writeFile(t, root, "docs/specs/AGENTS.md", "new")
	writeFile(t, root, "docs/templates/CLAUDE.md", "old")
	env, _, _ := newEnv(root)

	err := relocateAgentsSpec(context.Background(), env)
	assert.True(t, errors.Is(err, fsutil.ErrDestinationExists))

	data, _ := os.ReadFile(filepath.Join(root, "docs", "specs", "AGENTS.md"))
	assert.Equal(t, "new", string(data))
	assert.True(t, exists(root, "docs/templates/AGENTS.md"))
}

func TestDefaultCatalogEndToEnd(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, ".claude/commands/act.md", "# act")
	writeFile(t, root, "docs/templates/AGENTS.md", "agents")

	store := versionstore.New(root)
	require.NoError(t, store.Save("1.6.0"))

	p := &prompt.Scripted{Answers: []string{"y"}}
	engine := migration.NewEngine(migration.Config{
		Root:    root,
		Store:   store,
		Catalog: Default(),
		Prompt:  p,
	})

	res, err := engine.Run(context.Background(), "1.8.0")
	require.NoError(t, err)
	assert.Len(t, res.Applied, 2)
	assert.False(t, exists(root, ".claude/commands/act.md"))
	assert.True(t, exists(root, "docs/specs/AGENTS.md"))
	assert.Equal(t, "1.8.0", store.Current())

	// A second upgrade to the same version does nothing.
	res, err = engine.Run(context.Background(), "1.8.0")
	require.NoError(t, err)
	assert.Empty(t, res.Applied)
	assert.Len(t, p.Asked, 1)
}
