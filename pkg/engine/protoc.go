// pkg/engine/protoc.go
package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// CompileSchemas invokes the schema compiler once over every .proto file in
// schemaDir, generating into outDir. An unreadable schema directory or a
// failed compiler run is fatal.
func (b *Builder) CompileSchemas(ctx context.Context, schemaDir, outDir string) error {
	protoc := b.config.Protoc
	if protoc == "" {
		protoc = "protoc"
	}

	files, err := schemaFiles(schemaDir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no .proto files in %s", schemaDir)
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("creating schema output dir: %w", err)
	}

	args := append([]string{"-I", schemaDir, "--cpp_out=" + outDir}, files...)
	return b.run(ctx, protoc, args...)
}

// schemaFiles lists the .proto files of a schema directory, in directory
// order.
func schemaFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading schema dir %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if filepath.Ext(entry.Name()) == ".proto" {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	return files, nil
}
