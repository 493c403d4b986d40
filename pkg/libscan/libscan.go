// pkg/libscan/libscan.go
package libscan

import (
	"os"
	"path/filepath"
	"strings"
)

// Kind classifies a library artifact by how it is linked
type Kind int

const (
	Static  Kind = iota // lib<name>.a
	Dynamic             // lib<name>.so
)

// String returns a string representation of the kind
func (k Kind) String() string {
	if k == Static {
		return "static"
	}
	return "dynamic"
}

// Artifact is a discovered library file together with its decoded link name.
// Ephemeral: produced by Locate, consumed immediately by the plan emitter.
type Artifact struct {
	Path string
	Kind Kind
	Stem string // canonical link name, e.g. boost_filesystem
}

// Stem extracts the canonical link name from a platform-formatted library
// filename: lib<stem>.a or lib<stem>.so. Returns false when the name does
// not match that shape; callers substitute a policy default, never fail.
func Stem(filename string) (string, bool) {
	name := filepath.Base(filename)
	s, ok := strings.CutPrefix(name, "lib")
	if !ok {
		return "", false
	}
	if t, ok := strings.CutSuffix(s, ".a"); ok {
		return t, true
	}
	if t, ok := strings.CutSuffix(s, ".so"); ok {
		return t, true
	}
	return "", false
}

// KindOf classifies a library filename by extension. Returns false for
// anything that is neither a static nor a dynamic library.
func KindOf(filename string) (Kind, bool) {
	switch filepath.Ext(filename) {
	case ".a":
		return Static, true
	case ".so":
		return Dynamic, true
	default:
		return Static, false
	}
}

// Locate scans dir for files named lib<prefix>* and picks one artifact.
// Default policy returns the static artifact when both kinds exist;
// preferDynamic inverts that. A missing or unreadable directory and a
// directory without matches both yield nil; absence is not an error, the
// caller falls back to an unqualified link name.
func Locate(dir, prefix string, preferDynamic bool) *Artifact {
	var static, dynamic string

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "lib"+prefix) {
			continue
		}
		switch filepath.Ext(name) {
		case ".a":
			static = filepath.Join(dir, name)
		case ".so":
			dynamic = filepath.Join(dir, name)
		}
	}

	path := static
	if preferDynamic {
		path = dynamic
	}
	if path == "" {
		if preferDynamic {
			path = static
		} else {
			path = dynamic
		}
	}
	if path == "" {
		return nil
	}

	kind, _ := KindOf(path)
	stem, _ := Stem(path)
	return &Artifact{Path: path, Kind: kind, Stem: stem}
}

// LocateFile classifies a single known library path into an artifact.
// Returns nil when the file does not exist or its name does not decompose.
func LocateFile(path string) *Artifact {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	kind, ok := KindOf(path)
	if !ok {
		return nil
	}
	stem, ok := Stem(path)
	if !ok {
		return nil
	}
	return &Artifact{Path: path, Kind: kind, Stem: stem}
}
