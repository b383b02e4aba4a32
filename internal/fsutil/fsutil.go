// Package fsutil holds the small filesystem helpers shared by migrations and
// the installer.
package fsutil

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrDestinationExists is returned by Move when the destination is already present.
var ErrDestinationExists = errors.New("destination already exists")

// Exists reports whether path exists. Symlinks are not followed, so a dangling
// link still counts as present.
func Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// RemoveIfExists removes path (recursively) and reports whether anything was removed.
func RemoveIfExists(path string) (bool, error) {
	if !Exists(path) {
		return false, nil
	}
	if err := os.RemoveAll(path); err != nil {
		return false, fmt.Errorf("failed to remove %s: %w", path, err)
	}
	return true, nil
}

// Move renames src to dst, creating dst's parent directories. It never
// overwrites: if dst exists the move fails with ErrDestinationExists.
func Move(src, dst string) error {
	if Exists(dst) {
		return fmt.Errorf("cannot move %s: %s: %w", src, dst, ErrDestinationExists)
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", filepath.Dir(dst), err)
	}
	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("failed to move %s to %s: %w", src, dst, err)
	}
	return nil
}

// WriteFileAtomic writes data to path using a temp file in the same directory
// followed by a rename. Parent directories are created. On failure the
// previous content of path, if any, is left unchanged.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", tmpPath, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync %s: %w", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}

	success = true
	return nil
}

// CopyFromFS copies the file name from fsys to dst on disk, creating parent
// directories and truncating any existing file.
func CopyFromFS(fsys fs.FS, name, dst string) error {
	src, err := fsys.Open(name)
	if err != nil {
		return fmt.Errorf("failed to open template %s: %w", name, err)
	}
	defer src.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", filepath.Dir(dst), err)
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		return fmt.Errorf("failed to copy %s: %w", name, err)
	}
	return out.Close()
}

// CopyFile copies a regular file on disk from src to dst.
func CopyFile(src, dst string) error {
	dir, name := filepath.Split(src)
	if dir == "" {
		dir = "."
	}
	return CopyFromFS(os.DirFS(dir), name, dst)
}
