package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sdd-agents/sdd/internal/installer"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Install SDD agents, commands and templates into the project",
	Long: `Install the .claude agent and command definitions, the docs templates
and the root AGENTS.md / CLAUDE.md into the project directory.

Existing files are kept unless --force is given. A project without a
version marker is recorded at the current release; no migrations run.

Examples:
  sdd init             # Install into the current directory
  sdd init -C ./app    # Install into ./app
  sdd init --force     # Overwrite existing files`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite existing files")
}

func runInit(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	in, err := newInstaller(cmd, cfg, cfg.PromptOptions())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "🚀 Initializing SDD Agents...")

	if err := in.Init(cmd.Context(), installer.Options{Force: initForce || cfg.Install.Force}); err != nil {
		return fmt.Errorf("failed to initialize SDD Agents: %w", err)
	}

	fmt.Fprintln(out, "✅ SDD Agents initialized successfully!")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "1. Use /init-sdd command in Claude to create CLAUDE.md with project context")
	fmt.Fprintln(out, "2. Configure .claude/settings.local.json for your local environment")
	fmt.Fprintln(out, "3. Start with: describe what you want to build")
	return nil
}
