// internal/cli/inspect.go
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/openrouteops/bridgelink"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Show the resolved target profile and dependency decisions",
	Long: `Show how the target triple classifies and what each environment variable
resolved to, without emitting directives or building anything.

Examples:
  bridgelink inspect --target armv7-linux-androideabi`,
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	b, err := bridgelink.NewBuilder(config, nil)
	if err != nil {
		return err
	}

	prof := b.Profile()
	res := b.Resolution()
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Target:           %s\n", prof.Triple)
	fmt.Fprintf(out, "Family:           %s\n", prof.Family)
	fmt.Fprintf(out, "C++ runtime:      %s\n", res.CXXRuntime)
	fmt.Fprintf(out, "Protobuf flavor:  %s\n", res.ProtobufComponent)
	fmt.Fprintf(out, "Prefer dynamic:   %v\n", res.PreferDynamic)
	fmt.Fprintf(out, "Needs atomics:    %v\n", prof.NeedsAtomics)

	fmt.Fprintln(out)
	show := func(name, value string) {
		if value == "" {
			value = "(not set)"
		}
		fmt.Fprintf(out, "%-22s %s\n", name+":", value)
	}
	show("Boost root", res.BoostRoot)
	show("Boost include dir", res.BoostInclude)
	show("Boost library dir", res.BoostLib)
	show("Protobuf dir", res.ProtobufDir)
	show("Protobuf include dir", res.ProtobufInclude)
	show("Protobuf library", res.ProtobufLibrary)
	show("Schema compiler", res.Protoc)
	show("LZ4 dir", res.LZ4Dir)
	show("LZ4 include dir", res.LZ4Include)
	show("LZ4 library", res.LZ4Library)

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Dependencies (link order):")
	for _, dep := range res.Dependencies() {
		policy := "static-first"
		if dep.PreferDynamic {
			policy = "dynamic-first"
		}
		fmt.Fprintf(out, "  %-18s %s (env: %s)\n", dep.Name, policy, strings.Join(dep.EnvBases, ", "))
	}

	return nil
}
