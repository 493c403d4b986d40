// bridgelink.go
package bridgelink

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/openrouteops/bridgelink/pkg/buildenv"
	"github.com/openrouteops/bridgelink/pkg/compdb"
	"github.com/openrouteops/bridgelink/pkg/core"
	"github.com/openrouteops/bridgelink/pkg/engine"
	"github.com/openrouteops/bridgelink/pkg/linkplan"
	"github.com/openrouteops/bridgelink/pkg/target"
)

// Re-export config types for convenience
type Config = core.Config

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return core.DefaultConfig()
}

// Builder is the resolution-and-emission driver for one build invocation.
// Everything is assembled once up front: the target profile, the resolved
// environment, and the engine driver. The whole sequence is synchronous and
// idempotent given unchanged environment and filesystem state.
type Builder struct {
	config     *core.Config
	profile    *target.Profile
	env        *buildenv.Environment
	resolution *linkplan.Resolution
	engine     *engine.Builder
	logger     *log.Logger
}

// NewBuilder creates a builder for the configured target. The target triple
// comes from the config, falling back to the TARGET variable the invoking
// toolchain driver sets. A lookup of nil reads the process environment.
func NewBuilder(cfg *core.Config, lookup buildenv.LookupFunc) (*Builder, error) {
	if cfg == nil {
		cfg = core.DefaultConfig()
	}

	triple := cfg.Target
	if triple == "" {
		if lookup == nil {
			triple = os.Getenv("TARGET")
		} else if v, ok := lookup("TARGET"); ok {
			triple = v
		}
	}
	if triple == "" {
		return nil, ErrNoTarget
	}

	prof := target.Classify(triple)
	env := buildenv.New(prof.TripleUnderscore, lookup)
	res := linkplan.Resolve(env, prof)

	logger := log.New(io.Discard, "", 0)
	if cfg.Debug {
		logger = log.New(os.Stderr, "[BRIDGELINK] ", log.LstdFlags)
	}

	eng := engine.NewBuilder(&engine.Config{
		SourceDir: cfg.EngineDir,
		BuildDir:  cfg.BuildDir,
		BuildType: cfg.BuildType,
		Protoc:    res.Protoc,
		Debug:     cfg.Debug,
	})

	return &Builder{
		config:     cfg,
		profile:    prof,
		env:        env,
		resolution: res,
		engine:     eng,
		logger:     logger,
	}, nil
}

// Profile returns the classified target profile.
func (b *Builder) Profile() *target.Profile {
	return b.profile
}

// Resolution returns the resolved environment decisions.
func (b *Builder) Resolution() *linkplan.Resolution {
	return b.resolution
}

// Plan assembles the link plan. Include paths are empty until the engine has
// been built and introspected; pass them in when available.
func (b *Builder) Plan(includes []string) *linkplan.Plan {
	plan := linkplan.New(b.profile, b.resolution)
	plan.EngineLib = b.engine.LibDir()
	plan.Includes = includes
	plan.WatchPaths = b.watchPaths()
	return plan
}

// EmitPlan resolves every dependency and writes the directive stream to w,
// without driving the engine build. Used when the underlying build is
// already up to date.
func (b *Builder) EmitPlan(w io.Writer, withIncludes bool) error {
	var includes []string
	if withIncludes {
		var err error
		includes, err = b.Introspect()
		if err != nil {
			return err
		}
	}

	b.Plan(includes).Emit(linkplan.NewStream(w), b.env)
	return nil
}

// Introspect recovers the bridge-compile include paths from the engine's
// compile-command database. Fatal when the database or the reference record
// is missing: bridge compilation cannot be configured without it.
func (b *Builder) Introspect() ([]string, error) {
	return compdb.Includes(b.engine.CompileCommandsPath(), engine.ReferenceSource)
}

// Build runs the full sequence: engine build, include introspection,
// directive emission, schema compilation, and the bridge compile. Directives
// go to w as each stage completes.
func (b *Builder) Build(ctx context.Context, w io.Writer) error {
	b.logger.Printf("building engine for %s", b.profile.Triple)
	if err := b.engine.Configure(ctx, b.resolution); err != nil {
		return &Error{Op: "configure", Err: fmt.Errorf("%w: %v", ErrEngineBuild, err)}
	}
	if err := b.engine.Build(ctx); err != nil {
		return &Error{Op: "build", Err: fmt.Errorf("%w: %v", ErrEngineBuild, err)}
	}

	includes, err := b.Introspect()
	if err != nil {
		return &Error{Op: "introspect", Err: err}
	}

	b.Plan(includes).Emit(linkplan.NewStream(w), b.env)

	schemaOut := filepath.Join(b.config.BuildDir, "schema")
	if err := b.engine.CompileSchemas(ctx, b.config.SchemaDir, schemaOut); err != nil {
		return &Error{Op: "schemas", Err: fmt.Errorf("%w: %v", ErrSchemaCompile, err)}
	}

	bridgeOut := filepath.Join(b.config.BuildDir, "bridge")
	if err := b.engine.CompileBridge(ctx, includes, b.config.BridgeSources, bridgeOut); err != nil {
		return &Error{Op: "bridge", Err: fmt.Errorf("%w: %v", ErrBridgeCompile, err)}
	}

	return nil
}

// watchPaths lists the inputs whose change must invalidate the build.
func (b *Builder) watchPaths() []string {
	paths := []string{b.config.EngineDir, b.config.SchemaDir}
	return append(paths, b.config.BridgeSources...)
}
