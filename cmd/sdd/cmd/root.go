package cmd

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sdd",
	Short: "Install and upgrade SDD agents, commands and doc templates in a project",
	Long: `sdd scaffolds spec-driven development files into a project:

  • .claude/agents and .claude/commands definitions
  • docs/templates and docs/specs documentation templates
  • AGENTS.md and CLAUDE.md at the project root

'sdd upgrade' runs the migrations between the installed version and this
release, then refreshes every template.`,
	Version:      Version,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		cmd.SetContext(log.WithContext(cmd.Context(), newLogger(verbose)))
		return nil
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	rootCmd.SetVersionTemplate("sdd version {{.Version}}\n")

	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringP("dir", "C", ".", "project directory")
	rootCmd.PersistentFlags().String("config", "", "config file (default ~/.sdd/config.yaml)")
}

func newLogger(verbose bool) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "sdd",
		Level:  log.WarnLevel,
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
