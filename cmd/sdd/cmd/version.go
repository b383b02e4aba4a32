package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/sdd-agents/sdd/internal/migration/catalog"
)

// Version is the release this binary installs and the target of 'sdd upgrade'.
// Commit and BuildDate are stamped by the release build via -ldflags.
var (
	Version   = "1.8.0"
	Commit    = "dev"
	BuildDate = "unknown"
)

var versionShort bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the sdd release and the migrations it ships",
	Long: `Print the sdd release, build details and the bundled migration catalog.

The release printed here is what 'sdd upgrade' records in .claude/.sdd-version.`,
	Args: cobra.NoArgs,
	RunE: runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolVarP(&versionShort, "short", "s", false, "Print the release number only")
}

func runVersion(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if versionShort {
		fmt.Fprintln(out, Version)
		return nil
	}

	c := catalog.Default()
	latest := "none"
	if v := c.Latest(); v != nil {
		latest = v.String()
	}

	fmt.Fprintf(out, "sdd %s (%s, built %s)\n", Version, Commit, BuildDate)
	fmt.Fprintf(out, "  migrations: %d (latest %s)\n", len(c), latest)
	fmt.Fprintf(out, "  runtime:    %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	return nil
}
