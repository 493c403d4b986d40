// pkg/linkplan/resolve.go
package linkplan

import (
	"path/filepath"
	"strings"

	"github.com/openrouteops/bridgelink/pkg/buildenv"
	"github.com/openrouteops/bridgelink/pkg/target"
)

// BoostComponents are the engine's Boost dependencies, in link order.
var BoostComponents = []string{
	"filesystem", "system", "regex", "date_time", "chrono", "thread",
}

// DependencySpec describes how one native dependency is resolved: its
// logical name, the environment base names consulted for it, and the
// artifact-kind preference applied during discovery. Constructed once per
// build invocation, immutable.
type DependencySpec struct {
	Name          string
	EnvBases      []string
	PreferDynamic bool
}

// Resolution holds every environment decision for one build invocation,
// assembled once so downstream logic never reads ambient state directly.
type Resolution struct {
	BoostRoot    string
	BoostInclude string
	BoostLib     string

	ProtobufDir       string
	ProtobufInclude   string
	ProtobufLibrary   string
	Protoc            string
	ProtobufComponent string

	LZ4Dir     string
	LZ4Include string
	LZ4Library string

	CXXRuntime    string
	PreferDynamic bool

	// CMakePrefixPath is the composed prefix list handed to the engine
	// configure step: the ambient value plus any resolved dependency roots.
	CMakePrefixPath []string
}

// Resolve performs the full layered environment lookup for a target. Every
// variable is consulted exactly once here; absences fall through to platform
// defaults from the profile and are never errors.
func Resolve(env *buildenv.Environment, prof *target.Profile) *Resolution {
	r := &Resolution{}

	r.BoostRoot, _ = env.Lookup("Boost_ROOT")
	r.BoostInclude, _ = env.Lookup("Boost_INCLUDE_DIR")
	r.BoostLib, _ = env.Lookup("Boost_LIBRARY_DIR")

	r.ProtobufDir, _ = env.Lookup("Protobuf_DIR")
	r.ProtobufInclude, _ = env.Lookup("Protobuf_INCLUDE_DIR")
	r.ProtobufLibrary, _ = env.LookupAny("Protobuf_LIBRARY", "Protobuf_LIBRARIES")
	r.Protoc, _ = env.LookupAny("Protobuf_PROTOC_EXECUTABLE", "PROTOC")

	if v, ok := env.Lookup("PROTOBUF_COMPONENT"); ok {
		r.ProtobufComponent = v
	} else {
		r.ProtobufComponent = prof.ProtobufComponent
	}

	r.LZ4Dir, _ = env.Lookup("LZ4_DIR")
	if v, ok := env.Lookup("LZ4_INCLUDE_DIR"); ok {
		r.LZ4Include = v
	} else if r.LZ4Dir != "" {
		r.LZ4Include = filepath.Join(r.LZ4Dir, "include")
	}
	r.LZ4Library, _ = env.Lookup("LZ4_LIBRARY")

	if v, ok := env.Lookup("CXX_STDLIB"); ok {
		r.CXXRuntime = v
	} else {
		r.CXXRuntime = prof.CXXRuntime
	}

	r.PreferDynamic = prof.PreferDynamic || env.IsTrue("PREFER_DYNAMIC_LIBS")

	if v, ok := env.Lookup("CMAKE_PREFIX_PATH"); ok {
		for _, p := range strings.Split(v, ":") {
			if p != "" {
				r.CMakePrefixPath = append(r.CMakePrefixPath, p)
			}
		}
	}
	if r.BoostRoot != "" {
		r.CMakePrefixPath = append(r.CMakePrefixPath, r.BoostRoot)
	}
	if r.ProtobufDir != "" {
		r.CMakePrefixPath = append(r.CMakePrefixPath, r.ProtobufDir)
	}

	return r
}

// Dependencies returns the dependency table for this resolution, in the
// fixed emission order.
func (r *Resolution) Dependencies() []DependencySpec {
	deps := make([]DependencySpec, 0, len(BoostComponents)+2)
	for _, comp := range BoostComponents {
		deps = append(deps, DependencySpec{
			Name:          "boost_" + comp,
			EnvBases:      []string{"Boost_ROOT", "Boost_INCLUDE_DIR", "Boost_LIBRARY_DIR"},
			PreferDynamic: r.PreferDynamic,
		})
	}
	deps = append(deps,
		DependencySpec{
			Name:          "lz4",
			EnvBases:      []string{"LZ4_DIR", "LZ4_INCLUDE_DIR", "LZ4_LIBRARY"},
			PreferDynamic: r.PreferDynamic,
		},
		DependencySpec{
			Name:          r.ProtobufComponent,
			EnvBases:      []string{"Protobuf_DIR", "Protobuf_INCLUDE_DIR", "Protobuf_LIBRARY", "Protobuf_LIBRARIES"},
			PreferDynamic: r.PreferDynamic,
		},
	)
	return deps
}
