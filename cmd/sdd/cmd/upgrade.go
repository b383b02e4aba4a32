package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	upgradeYes    bool
	upgradeNo     bool
	upgradePrompt string
)

var upgradeCmd = &cobra.Command{
	Use:   "upgrade",
	Short: "Run pending migrations and refresh all templates",
	Long: `Upgrade an existing installation to this release.

The upgrade:
  - Reads the installed version from .claude/.sdd-version
  - Runs, in order, every migration newer than it
  - Overwrites all templates with this release's copies
  - Records the new version

Migrations may ask before deleting files. Use --yes or --no to answer every
question without prompting. If a migration fails the recorded version is not
changed; fix the reported problem and run 'sdd upgrade' again.

Examples:
  sdd upgrade          # Interactive
  sdd upgrade --yes    # Accept every deletion (CI)
  sdd upgrade --no     # Keep everything a migration asks about`,
	RunE: runUpgrade,
}

func init() {
	rootCmd.AddCommand(upgradeCmd)
	upgradeCmd.Flags().BoolVarP(&upgradeYes, "yes", "y", false, "Answer yes to every question")
	upgradeCmd.Flags().BoolVar(&upgradeNo, "no", false, "Answer no to every question")
	upgradeCmd.Flags().StringVar(&upgradePrompt, "prompt", "", "Prompt style: auto, line or survey (overrides config)")
	upgradeCmd.MarkFlagsMutuallyExclusive("yes", "no")
}

func runUpgrade(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	opts := cfg.PromptOptions()
	if upgradePrompt != "" {
		opts.Mode = upgradePrompt
	}
	switch {
	case upgradeYes:
		opts.DefaultAnswer = "yes"
	case upgradeNo:
		opts.DefaultAnswer = "no"
	}

	in, err := newInstaller(cmd, cfg, opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "🔄 Upgrading SDD Agents...")

	if _, err := in.Upgrade(cmd.Context()); err != nil {
		return fmt.Errorf("failed to upgrade SDD Agents: %w", err)
	}

	fmt.Fprintln(out, "✅ SDD Agents upgraded successfully!")
	return nil
}
