// Package templates embeds the files sdd installs into a project.
package templates

import (
	"embed"
	"io/fs"
)

//go:embed all:files
var files embed.FS

// FS returns the template tree rooted at the project root layout
// (.claude/, docs/, AGENTS.md, CLAUDE.md).
func FS() fs.FS {
	sub, err := fs.Sub(files, "files")
	if err != nil {
		// "files" is embedded above; Sub only fails on an invalid name.
		panic(err)
	}
	return sub
}
