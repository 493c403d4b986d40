// pkg/linkplan/stream.go
package linkplan

import (
	"fmt"
	"io"

	"github.com/openrouteops/bridgelink/pkg/libscan"
)

// Stream writes link-plan directives as ordered key=value lines on a control
// channel consumed by the external toolchain driver. Directive order is part
// of the contract: search paths precede the link directives they serve, and
// the dependency sequence follows link-order symbol resolution.
type Stream struct {
	w io.Writer
}

// NewStream creates a directive stream over w.
func NewStream(w io.Writer) *Stream {
	return &Stream{w: w}
}

// SearchPath emits a library search directory.
func (s *Stream) SearchPath(dir string) {
	fmt.Fprintf(s.w, "link-search=%s\n", dir)
}

// LinkArtifact emits a link directive for a located artifact, qualified with
// its static/dynamic kind.
func (s *Stream) LinkArtifact(a *libscan.Artifact) {
	if a.Kind == libscan.Static {
		fmt.Fprintf(s.w, "link-lib=static:%s\n", a.Stem)
		return
	}
	fmt.Fprintf(s.w, "link-lib=%s\n", a.Stem)
}

// Link emits an unqualified link directive, resolved by the default linker
// search path.
func (s *Stream) Link(name string) {
	fmt.Fprintf(s.w, "link-lib=%s\n", name)
}

// Include emits a compiler include directory for the bridge compile step.
func (s *Stream) Include(dir string) {
	fmt.Fprintf(s.w, "include=%s\n", dir)
}

// RerunEnv declares that the build is stale if an environment variable changes.
func (s *Stream) RerunEnv(key string) {
	fmt.Fprintf(s.w, "rerun-if-env-changed=%s\n", key)
}

// RerunPath declares that the build is stale if a path changes.
func (s *Stream) RerunPath(path string) {
	fmt.Fprintf(s.w, "rerun-if-changed=%s\n", path)
}

// Warn emits a non-fatal advisory surfaced to the operator.
func (s *Stream) Warn(format string, args ...any) {
	fmt.Fprintf(s.w, "warning=%s\n", fmt.Sprintf(format, args...))
}
