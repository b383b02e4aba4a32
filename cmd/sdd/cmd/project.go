package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sdd-agents/sdd/internal/config"
	"github.com/sdd-agents/sdd/internal/installer"
	"github.com/sdd-agents/sdd/internal/migration/catalog"
	"github.com/sdd-agents/sdd/internal/prompt"
	"github.com/sdd-agents/sdd/internal/templates"
)

// loadConfig reads --config, or the default config file.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return config.Load()
	}
	return config.LoadFile(path)
}

// projectDir resolves --dir to an absolute path.
func projectDir(cmd *cobra.Command) (string, error) {
	dir, _ := cmd.Flags().GetString("dir")
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve project directory: %w", err)
	}
	return abs, nil
}

// newInstaller wires the installer for the project selected by --dir.
func newInstaller(cmd *cobra.Command, cfg *config.Config, opts prompt.Options) (*installer.Installer, error) {
	root, err := projectDir(cmd)
	if err != nil {
		return nil, err
	}

	confirm, err := prompt.New(opts, cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil {
		return nil, err
	}

	return installer.New(installer.Config{
		Root:         root,
		Version:      Version,
		Templates:    templates.FS(),
		Catalog:      catalog.Default(),
		Prompt:       confirm,
		Out:          cmd.OutOrStdout(),
		SymlinkSpecs: cfg.Install.IsSymlinkSpecs(),
	}), nil
}
