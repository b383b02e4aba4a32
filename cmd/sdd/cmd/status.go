package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sdd-agents/sdd/internal/prompt"
)

var statusJSON bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the installed version and pending migrations",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "Output as JSON")
}

// StatusOutput is the JSON form of 'sdd status'.
type StatusOutput struct {
	Installed string            `json:"installed,omitempty"`
	Target    string            `json:"target"`
	Marker    string            `json:"marker"`
	UpToDate  bool              `json:"up_to_date"`
	Pending   []MigrationOutput `json:"pending"`
}

// MigrationOutput describes one catalog entry.
type MigrationOutput struct {
	Version     string `json:"version"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// Status never prompts.
	in, err := newInstaller(cmd, cfg, prompt.Options{DefaultAnswer: "no"})
	if err != nil {
		return err
	}

	plan, err := in.Status(cmd.Context())
	if err != nil {
		return err
	}

	status := StatusOutput{
		Installed: plan.Marker,
		Target:    plan.Target.String(),
		Marker:    in.Store().Path(),
		UpToDate:  plan.UpToDate(),
		Pending:   []MigrationOutput{},
	}
	for _, m := range plan.Pending {
		status.Pending = append(status.Pending, MigrationOutput{
			Version:     m.Version.String(),
			Name:        m.Name,
			Description: m.Description,
		})
	}

	out := cmd.OutOrStdout()
	if statusJSON {
		data, err := json.MarshalIndent(status, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to serialize output: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	if status.Installed == "" {
		fmt.Fprintln(out, "📦 Installed: (none) - run 'sdd init'")
	} else {
		fmt.Fprintf(out, "📦 Installed: %s\n", status.Installed)
	}
	fmt.Fprintf(out, "🎯 Target:    %s\n", status.Target)

	if status.UpToDate {
		fmt.Fprintln(out, "✅ No pending migrations")
		return nil
	}

	fmt.Fprintf(out, "\n⚠️  %d pending migration(s):\n", len(status.Pending))
	for _, m := range status.Pending {
		fmt.Fprintf(out, "   - %s (%s): %s\n", m.Name, m.Version, m.Description)
	}
	fmt.Fprintln(out, "\nRun 'sdd upgrade' to apply them")
	return nil
}
