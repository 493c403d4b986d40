// internal/cli/build.go
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/openrouteops/bridgelink"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the engine and emit the full link plan",
	Long: `Run the full sequence: configure and build the embedded engine, recover
the bridge include paths from its compile-command database, emit the link
directives, compile the schemas, and compile the FFI bridge.

A failed engine build or a missing compile-command record aborts immediately.`,
	RunE: runBuild,
}

func runBuild(cmd *cobra.Command, args []string) error {
	b, err := bridgelink.NewBuilder(config, nil)
	if err != nil {
		return err
	}
	return b.Build(context.Background(), cmd.OutOrStdout())
}
