// Package versionstore persists the migration state a project directory has
// reached as a single version marker file.
package versionstore

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/sdd-agents/sdd/internal/fsutil"
)

// MarkerPath is the marker location relative to the project root.
var MarkerPath = filepath.Join(".claude", ".sdd-version")

// Store reads and writes the version marker of one project directory.
type Store struct {
	root string
	path string
}

// New returns a Store for the project rooted at root.
func New(root string) *Store {
	return &Store{
		root: root,
		path: filepath.Join(root, MarkerPath),
	}
}

// Root returns the project root.
func (s *Store) Root() string {
	return s.root
}

// Path returns the absolute marker path.
func (s *Store) Path() string {
	return s.path
}

// Exists reports whether a marker file is present.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Current returns the trimmed marker content, or "" when no version is
// recorded. A marker that cannot be read is treated as absent. The content is
// not validated.
func (s *Store) Current() string {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// Save writes v as the marker content, replacing any previous marker.
func (s *Store) Save(v string) error {
	return fsutil.WriteFileAtomic(s.path, []byte(v), 0644)
}
