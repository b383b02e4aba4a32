package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sdd-agents/sdd/internal/migration/catalog"
)

var migrationsCmd = &cobra.Command{
	Use:   "migrations",
	Short: "List every migration shipped with this release",
	RunE:  runMigrations,
}

func init() {
	rootCmd.AddCommand(migrationsCmd)
}

func runMigrations(cmd *cobra.Command, args []string) error {
	c := catalog.Default()
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid migration catalog: %w", err)
	}

	out := cmd.OutOrStdout()
	for _, m := range c {
		fmt.Fprintf(out, "%-8s %-24s %s\n", m.Version, m.Name, m.Description)
	}
	return nil
}
