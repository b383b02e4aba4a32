package versionstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentMissing(t *testing.T) {
	s := New(t.TempDir())

	assert.Equal(t, "", s.Current())
	assert.False(t, s.Exists())
}

func TestCurrentTrims(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".claude"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, MarkerPath), []byte("  1.7.0\n"), 0644))

	assert.Equal(t, "1.7.0", New(root).Current())
}

func TestCurrentUnreadableIsAbsent(t *testing.T) {
	root := t.TempDir()
	// A directory where the marker file should be cannot be read as a file.
	require.NoError(t, os.MkdirAll(filepath.Join(root, MarkerPath), 0755))

	assert.Equal(t, "", New(root).Current())
}

func TestCurrentMalformedReturnedAsIs(t *testing.T) {
	root := t.TempDir()
	s := New(root)
	require.NoError(t, s.Save("not-a-version"))

	assert.Equal(t, "not-a-version", s.Current())
}

func TestSave(t *testing.T) {
	root := t.TempDir()
	s := New(root)

	// Parent .claude directory does not exist yet.
	require.NoError(t, s.Save("1.7.0"))
	require.NoError(t, s.Save("1.8.0"))

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t, "1.8.0", string(data), "marker holds exactly the version string")
	assert.True(t, s.Exists())
	assert.Equal(t, "1.8.0", s.Current())
}
