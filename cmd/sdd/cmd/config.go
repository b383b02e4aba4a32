package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sdd-agents/sdd/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage sdd configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the config file, keeping existing settings",
	Long: `Write ~/.sdd/config.yaml. An existing file is merged with the defaults
and migrated to the current schema version; your settings are preserved.`,
	RunE: runConfigInit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot serialize config: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		var err error
		if path, err = config.ConfigPath(); err != nil {
			return err
		}
	}

	existing, err := config.LoadFile(path)
	if err != nil {
		return fmt.Errorf("failed to load existing config: %w", err)
	}

	oldVersion := existing.SchemaVersion
	merged := config.MergeConfig(existing, config.Default())

	changed, changes := config.MigrateConfig(merged)
	if changed {
		fmt.Fprintf(out, "✓ Config migrated: v%d → v%d\n", oldVersion, merged.SchemaVersion)
		for _, c := range changes {
			fmt.Fprintf(out, "  + Added: %s (%s)\n", c.Field, c.Description)
		}
	}

	if err := merged.SaveFile(path); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	fmt.Fprintf(out, "✓ Config written to %s\n", path)
	return nil
}
