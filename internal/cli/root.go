// internal/cli/root.go
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/openrouteops/bridgelink/pkg/core"
)

var (
	cfgFile    string
	targetFlag string
	buildDir   string
	debug      bool
	config     *core.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "bridgelink",
	Short: "Native dependency resolution and link-directive synthesis",
	Long: `bridgelink - Native dependency resolution and link-directive synthesis

Resolves the embedded routing engine's native dependencies (Boost, Protobuf,
LZ4) across desktop and Android cross-compilation targets and emits the link
directives the toolchain driver needs to build the FFI bridge.`,
	Version: "0.1.0",
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/bridgelink/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&targetFlag, "target", "", "target triple (e.g. armv7-linux-androideabi)")
	rootCmd.PersistentFlags().StringVar(&buildDir, "build-dir", "", "build output root")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Add commands
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(bundleCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	var err error
	config, err = core.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		config = core.DefaultConfig()
	}

	// Override config with flags
	if targetFlag != "" {
		config.Target = targetFlag
	}
	if buildDir != "" {
		config.BuildDir = buildDir
	}
	if debug {
		config.Debug = true
	}
}
