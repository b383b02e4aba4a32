package installer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/sdd-agents/sdd/internal/fsutil"
)

const specLinkTarget = "AGENTS.md"

// ensureSpecLink makes docs/specs/CLAUDE.md a relative symlink to AGENTS.md,
// copying the file instead where symlinks are not supported.
func (in *Installer) ensureSpecLink(force bool) error {
	specsDir := in.path("docs/specs")
	source := filepath.Join(specsDir, specLinkTarget)
	target := filepath.Join(specsDir, "CLAUDE.md")

	if !fsutil.Exists(source) {
		fmt.Fprintln(in.out, "⚠️  docs/specs/AGENTS.md is missing, skipping CLAUDE.md link creation")
		return nil
	}

	if fsutil.Exists(target) {
		if in.symlinkSpecs && isLinkTo(target, specLinkTarget) {
			return nil
		}
		if !force {
			fmt.Fprintln(in.out, "⚠️  docs/specs/CLAUDE.md already exists (use --force to overwrite)")
			return nil
		}
		if _, err := fsutil.RemoveIfExists(target); err != nil {
			return err
		}
	}

	if !in.symlinkSpecs {
		return in.copySpecLink(source, target, "📄 Spec CLAUDE.md copied")
	}

	if err := os.Symlink(specLinkTarget, target); err != nil {
		if symlinkUnsupported(err) {
			return in.copySpecLink(source, target, "📄 Spec CLAUDE.md copied (symlink fallback)")
		}
		return fmt.Errorf("failed to link docs/specs/CLAUDE.md: %w", err)
	}
	fmt.Fprintln(in.out, "🔗 Spec CLAUDE.md linked")
	return nil
}

func (in *Installer) copySpecLink(source, target, msg string) error {
	if err := fsutil.CopyFile(source, target); err != nil {
		return err
	}
	fmt.Fprintln(in.out, msg)
	return nil
}

func isLinkTo(p, dest string) bool {
	got, err := os.Readlink(p)
	return err == nil && got == dest
}

func symlinkUnsupported(err error) bool {
	return errors.Is(err, syscall.EPERM) ||
		errors.Is(err, syscall.EEXIST) ||
		errors.Is(err, syscall.EOPNOTSUPP) ||
		errors.Is(err, syscall.ENOTSUP)
}
