// internal/cli/plan.go
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/openrouteops/bridgelink"
)

var (
	planIncludes bool
	planOut      string
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Resolve dependencies and emit the link-directive stream",
	Long: `Resolve every native dependency for the configured target and emit the
ordered link-search-path and link-library directives without driving the
engine build.

Examples:
  bridgelink plan --target x86_64-unknown-linux-gnu
  bridgelink plan --target armv7-linux-androideabi --includes`,
	RunE: runPlan,
}

func init() {
	planCmd.Flags().BoolVar(&planIncludes, "includes", false, "also emit bridge include paths (requires a completed engine build)")
	planCmd.Flags().StringVar(&planOut, "out", "", "write directives to a file instead of stdout")
}

func runPlan(cmd *cobra.Command, args []string) error {
	b, err := bridgelink.NewBuilder(config, nil)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if planOut != "" {
		f, err := os.Create(planOut)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	return b.EmitPlan(out, planIncludes)
}
