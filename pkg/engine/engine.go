// pkg/engine/engine.go
package engine

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/openrouteops/bridgelink/pkg/linkplan"
)

// Config configures the engine build driver
type Config struct {
	SourceDir string // engine source tree
	BuildDir  string // build output root
	BuildType string // Debug, Release, RelWithDebInfo
	Target    string // CMake target, DefaultTarget if empty

	CMake  string // cmake executable, "cmake" if empty
	CXX    string // bridge compiler, "c++" if empty
	Protoc string // schema compiler, resolved from env if empty

	Debug  bool
	Logger *log.Logger
}

// Builder drives the external collaborators: the engine's CMake build, the
// schema compiler, and the bridge compile. All failures from these tools are
// fatal and propagated as-is.
type Builder struct {
	config *Config
	logger *log.Logger
}

// NewBuilder creates an engine build driver
func NewBuilder(cfg *Config) *Builder {
	if cfg == nil {
		cfg = &Config{}
	}

	if cfg.BuildType == "" {
		cfg.BuildType = "Release"
	}
	if cfg.Target == "" {
		cfg.Target = DefaultTarget
	}
	if cfg.CMake == "" {
		cfg.CMake = "cmake"
	}
	if cfg.CXX == "" {
		cfg.CXX = "c++"
	}

	logger := cfg.Logger
	if logger == nil {
		if cfg.Debug {
			logger = log.New(os.Stderr, "[ENGINE] ", log.LstdFlags)
		} else {
			logger = log.New(io.Discard, "", 0)
		}
	}

	return &Builder{config: cfg, logger: logger}
}

// CompileCommandsPath returns where the engine build writes its
// compile-command database.
func (b *Builder) CompileCommandsPath() string {
	return filepath.Join(b.config.BuildDir, "build", "compile_commands.json")
}

// LibDir returns the engine's link output directory within the build tree.
func (b *Builder) LibDir() string {
	return filepath.Join(b.config.BuildDir, "build", "src")
}

// Configure runs the engine's CMake configure step with the fixed option
// set plus the resolved dependency locations.
func (b *Builder) Configure(ctx context.Context, res *linkplan.Resolution) error {
	args := configureArgs(b.config, res)
	return b.run(ctx, b.config.CMake, args...)
}

// Build compiles the engine target. The engine's own build failure is fatal
// and never retried or masked.
func (b *Builder) Build(ctx context.Context) error {
	buildDir := filepath.Join(b.config.BuildDir, "build")
	return b.run(ctx, b.config.CMake, "--build", buildDir, "--target", b.config.Target)
}

// run executes one collaborator command, logging it when debug is enabled.
func (b *Builder) run(ctx context.Context, name string, args ...string) error {
	b.logger.Printf("exec: %s %s", name, strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = os.Stderr
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// configureArgs builds the full cmake configure invocation.
func configureArgs(cfg *Config, res *linkplan.Resolution) []string {
	buildDir := filepath.Join(cfg.BuildDir, "build")
	args := []string{"-S", cfg.SourceDir, "-B", buildDir,
		"-DCMAKE_BUILD_TYPE=" + cfg.BuildType}

	for _, d := range configureDefines {
		args = append(args, "-D"+d[0]+"="+d[1])
	}

	if len(res.CMakePrefixPath) > 0 {
		args = append(args, "-DCMAKE_PREFIX_PATH="+strings.Join(res.CMakePrefixPath, ":"))
	}
	if res.BoostRoot != "" {
		args = append(args, "-DBoost_ROOT="+res.BoostRoot)
	}
	if res.BoostInclude != "" {
		args = append(args, "-DBoost_INCLUDE_DIR="+res.BoostInclude)
	}
	if res.BoostLib != "" {
		args = append(args, "-DBoost_LIBRARY_DIR="+res.BoostLib)
	}
	if res.ProtobufInclude != "" {
		args = append(args, "-DProtobuf_INCLUDE_DIR="+res.ProtobufInclude)
	}
	if res.ProtobufLibrary != "" {
		args = append(args, "-DProtobuf_LIBRARY="+res.ProtobufLibrary)
	}
	if res.Protoc != "" {
		args = append(args, "-DProtobuf_PROTOC_EXECUTABLE="+res.Protoc)
		args = append(args, "-DPROTOBUF_PROTOC_EXECUTABLE="+res.Protoc)
	}
	if res.LZ4Include != "" {
		args = append(args, "-DCMAKE_REQUIRED_INCLUDES="+res.LZ4Include)
		args = append(args, "-DCMAKE_C_FLAGS=-I"+res.LZ4Include)
		args = append(args, "-DCMAKE_CXX_FLAGS=-I"+res.LZ4Include)
	}

	return args
}
