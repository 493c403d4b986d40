// pkg/engine/bridge.go
package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// CompileBridge compiles the FFI bridge sources against the include paths
// recovered from the engine's compile-command database.
func (b *Builder) CompileBridge(ctx context.Context, includes, sources []string, outDir string) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("creating bridge output dir: %w", err)
	}

	for _, src := range sources {
		args := bridgeArgs(includes, src, objectPath(outDir, src))
		if err := b.run(ctx, b.config.CXX, args...); err != nil {
			return err
		}
	}
	return nil
}

// bridgeArgs builds one bridge compile invocation. Include order follows the
// introspected compile command; it is significant for header shadowing.
func bridgeArgs(includes []string, src, obj string) []string {
	args := []string{"-std=" + CXXStandard, "-DENABLE_THREAD_SAFE_TILE_REF_COUNT"}
	for _, dir := range includes {
		args = append(args, "-I"+dir)
	}
	return append(args, "-c", src, "-o", obj)
}

func objectPath(outDir, src string) string {
	base := filepath.Base(src)
	return filepath.Join(outDir, strings.TrimSuffix(base, filepath.Ext(base))+".o")
}
