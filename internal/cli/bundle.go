// internal/cli/bundle.go
package cli

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/openrouteops/bridgelink/pkg/bundle"
)

var bundleSHA256 string

var bundleCmd = &cobra.Command{
	Use:   "bundle [archive] [dest]",
	Short: "Extract a prebuilt dependency bundle into the cache",
	Long: `Extract a prebuilt dependency bundle (a .tar.xz or .tar.gz holding the
lib/ and include/ trees of one cross-compiled dependency) into the cache
directory, so dependency environment variables can point at it.

Examples:
  bridgelink bundle boost-armv7.tar.xz
  bridgelink bundle lz4.tar.gz /opt/native/lz4 --sha256 9f1e...`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runBundle,
}

func init() {
	bundleCmd.Flags().StringVar(&bundleSHA256, "sha256", "", "expected sha256 of the archive")
}

func runBundle(cmd *cobra.Command, args []string) error {
	archive := args[0]

	dest := ""
	if len(args) == 2 {
		dest = args[1]
	} else {
		name := filepath.Base(archive)
		for _, suffix := range []string{".tar.xz", ".tar.gz", ".tgz", ".tar"} {
			name = strings.TrimSuffix(name, suffix)
		}
		dest = filepath.Join(config.CacheDir, name)
	}

	logger := log.New(io.Discard, "", 0)
	if config.Debug {
		logger = log.New(os.Stderr, "[BUNDLE] ", log.LstdFlags)
	}
	ex := bundle.NewExtractor(logger)

	if bundleSHA256 != "" {
		if err := ex.Verify(archive, bundleSHA256); err != nil {
			return err
		}
	}

	root, err := ex.Extract(archive, dest)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Extracted %s to %s\n", archive, root)
	return nil
}
