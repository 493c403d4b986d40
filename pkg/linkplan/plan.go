// pkg/linkplan/plan.go
package linkplan

import (
	"path/filepath"

	"github.com/openrouteops/bridgelink/pkg/buildenv"
	"github.com/openrouteops/bridgelink/pkg/libscan"
	"github.com/openrouteops/bridgelink/pkg/target"
)

// Plan is one build invocation's resolved link plan. Emitting it twice with
// unchanged environment and filesystem state yields byte-identical output.
type Plan struct {
	Resolution *Resolution
	Target     *target.Profile
	EngineLib  string   // engine build output lib dir, searched first
	Includes   []string // bridge-compile include paths, from introspection
	WatchPaths []string // sources whose change invalidates the build
}

// New assembles a plan from the classified target and resolved environment.
func New(prof *target.Profile, res *Resolution) *Plan {
	return &Plan{Resolution: res, Target: prof}
}

// Emit writes the full directive sequence: the engine search path, then each
// dependency in fixed order (Boost components, LZ4, Protobuf, C++ runtime,
// zlib, conditionally atomics), then include flags and rebuild triggers.
// Libraries listed later resolve symbols for earlier ones, so the runtime
// follows the Boost components and zlib follows the runtime.
func (p *Plan) Emit(s *Stream, env *buildenv.Environment) {
	res := p.Resolution

	if p.EngineLib != "" {
		s.SearchPath(p.EngineLib)
	}

	p.emitBoost(s)
	p.emitLZ4(s)
	p.emitProtobuf(s)

	s.Link(res.CXXRuntime)
	s.Link("z")

	if p.Target.NeedsAtomics {
		s.Link("atomic")
	}

	for _, dir := range p.Includes {
		s.Include(dir)
	}

	for _, path := range p.WatchPaths {
		s.RerunPath(path)
	}
	if env != nil {
		for _, key := range env.Consulted() {
			s.RerunEnv(key)
		}
	}
}

func (p *Plan) emitBoost(s *Stream) {
	res := p.Resolution
	if res.BoostLib == "" {
		s.Warn("boost library dir not set; relying on default linker search path")
		for _, comp := range BoostComponents {
			s.Link("boost_" + comp)
		}
		return
	}

	s.SearchPath(res.BoostLib)
	for _, comp := range BoostComponents {
		name := "boost_" + comp
		if a := libscan.Locate(res.BoostLib, name, res.PreferDynamic); a != nil {
			s.LinkArtifact(a)
		} else {
			s.Warn("%s not explicitly located; relying on default linker search path", name)
			s.Link(name)
		}
	}
}

func (p *Plan) emitLZ4(s *Stream) {
	res := p.Resolution

	if res.LZ4Library != "" {
		if a := libscan.LocateFile(res.LZ4Library); a != nil {
			s.SearchPath(filepath.Dir(res.LZ4Library))
			s.LinkArtifact(a)
			return
		}
		s.Warn("LZ4_LIBRARY set but file not found: %s", res.LZ4Library)
		s.Link("lz4")
		return
	}

	if res.LZ4Dir != "" {
		libDir := filepath.Join(res.LZ4Dir, "lib")
		s.SearchPath(libDir)
		if a := libscan.Locate(libDir, "lz4", res.PreferDynamic); a != nil {
			s.LinkArtifact(a)
		} else {
			s.Warn("lz4 not explicitly located; relying on default linker search path")
			s.Link("lz4")
		}
		return
	}

	s.Warn("lz4 not explicitly located; relying on default linker search path")
	s.Link("lz4")
}

func (p *Plan) emitProtobuf(s *Stream) {
	res := p.Resolution

	if res.ProtobufLibrary != "" {
		s.SearchPath(filepath.Dir(res.ProtobufLibrary))
		if a := libscan.LocateFile(res.ProtobufLibrary); a != nil {
			s.LinkArtifact(a)
		} else {
			s.Link(res.ProtobufComponent)
		}
		return
	}

	if res.ProtobufDir != "" {
		libDir := filepath.Join(res.ProtobufDir, "lib")
		s.SearchPath(libDir)
		if a := libscan.Locate(libDir, res.ProtobufComponent, res.PreferDynamic); a != nil {
			s.LinkArtifact(a)
		} else {
			s.Warn("%s not explicitly located; relying on default linker search path", res.ProtobufComponent)
			s.Link(res.ProtobufComponent)
		}
		return
	}

	s.Warn("%s not explicitly located; relying on default linker search path", res.ProtobufComponent)
	s.Link(res.ProtobufComponent)
}
