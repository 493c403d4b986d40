// pkg/bundle/bundle.go
package bundle

import (
	"archive/tar"
	"compress/gzip"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"
)

// ErrHashMismatch indicates a bundle failed sha256 verification
var ErrHashMismatch = errors.New("hash mismatch")

// Extractor unpacks prebuilt dependency bundles (lib/ + include/ trees for
// one cross-compiled dependency) into a cache directory, so the resolver's
// environment variables can point at the extracted roots.
type Extractor struct {
	logger *log.Logger
}

// NewExtractor creates a bundle extractor. A nil logger discards output.
func NewExtractor(logger *log.Logger) *Extractor {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Extractor{logger: logger}
}

// Verify checks the bundle against an expected hex sha256 digest.
func (e *Extractor) Verify(path, wantHex string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening bundle: %w", err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return fmt.Errorf("hashing bundle: %w", err)
	}

	got := hex.EncodeToString(h.Sum(nil))
	if !strings.EqualFold(got, wantHex) {
		return fmt.Errorf("%w for %s: expected %s, got %s", ErrHashMismatch, path, wantHex, got)
	}
	return nil
}

// Extract unpacks a .tar.xz, .tar.gz, or plain .tar bundle into destDir and
// returns the extracted root (destDir itself).
func (e *Extractor) Extract(path, destDir string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening bundle: %w", err)
	}
	defer f.Close()

	var tarReader *tar.Reader
	switch {
	case strings.HasSuffix(path, ".gz") || strings.HasSuffix(path, ".tgz"):
		gzReader, err := gzip.NewReader(f)
		if err != nil {
			return "", fmt.Errorf("creating gzip reader: %w", err)
		}
		defer gzReader.Close()
		tarReader = tar.NewReader(gzReader)
	case strings.HasSuffix(path, ".xz"):
		xzReader, err := xz.NewReader(f)
		if err != nil {
			return "", fmt.Errorf("creating xz reader: %w", err)
		}
		tarReader = tar.NewReader(xzReader)
	default:
		tarReader = tar.NewReader(f)
	}

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", fmt.Errorf("creating bundle dir: %w", err)
	}

	for {
		header, err := tarReader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("reading tar entry: %w", err)
		}

		cleanPath := strings.TrimPrefix(header.Name, "./")
		if cleanPath == "" || cleanPath == "." {
			continue
		}
		targetPath, ok := containedJoin(destDir, cleanPath)
		if !ok {
			return "", fmt.Errorf("unsafe path in bundle: %s", header.Name)
		}

		switch header.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(targetPath, 0755); err != nil {
				return "", fmt.Errorf("creating directory %s: %w", targetPath, err)
			}
			e.logger.Printf("  dir  %s/", cleanPath)

		case tar.TypeSymlink:
			if filepath.IsAbs(header.Linkname) {
				return "", fmt.Errorf("unsafe symlink in bundle: %s -> %s", header.Name, header.Linkname)
			}
			if _, ok := containedJoin(destDir, filepath.Join(filepath.Dir(cleanPath), header.Linkname)); !ok {
				return "", fmt.Errorf("unsafe symlink in bundle: %s -> %s", header.Name, header.Linkname)
			}
			if err := os.MkdirAll(filepath.Dir(targetPath), 0755); err != nil {
				return "", fmt.Errorf("creating parent directory for symlink: %w", err)
			}
			os.Remove(targetPath)
			if err := os.Symlink(header.Linkname, targetPath); err != nil {
				return "", fmt.Errorf("creating symlink %s -> %s: %w", targetPath, header.Linkname, err)
			}
			e.logger.Printf("  link %s -> %s", cleanPath, header.Linkname)

		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(targetPath), 0755); err != nil {
				return "", fmt.Errorf("creating parent directory: %w", err)
			}

			outFile, err := os.OpenFile(targetPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, os.FileMode(header.Mode))
			if err != nil {
				return "", fmt.Errorf("creating file %s: %w", targetPath, err)
			}
			written, err := io.Copy(outFile, tarReader)
			outFile.Close()
			if err != nil {
				return "", fmt.Errorf("writing file %s: %w", targetPath, err)
			}
			if written != header.Size {
				return "", fmt.Errorf("file size mismatch for %s: expected %d, got %d", targetPath, header.Size, written)
			}
			e.logger.Printf("  file %s", cleanPath)
		}
	}

	return destDir, nil
}

// containedJoin joins name onto destDir and verifies the cleaned result
// stays inside destDir. Catches traversal anywhere in the entry name, not
// just a leading "..".
func containedJoin(destDir, name string) (string, bool) {
	target := filepath.Join(destDir, name)
	rel, err := filepath.Rel(destDir, target)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return target, true
}
