package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openrouteops/bridgelink/pkg/linkplan"
)

func TestNewBuilderDefaults(t *testing.T) {
	b := NewBuilder(nil)
	assert.Equal(t, "Release", b.config.BuildType)
	assert.Equal(t, DefaultTarget, b.config.Target)
	assert.Equal(t, "cmake", b.config.CMake)
	assert.Equal(t, "c++", b.config.CXX)
}

func TestCompileCommandsPath(t *testing.T) {
	b := NewBuilder(&Config{BuildDir: "/out"})
	assert.Equal(t, filepath.Join("/out", "build", "compile_commands.json"), b.CompileCommandsPath())
	assert.Equal(t, filepath.Join("/out", "build", "src"), b.LibDir())
}

func TestConfigureArgs(t *testing.T) {
	cfg := &Config{SourceDir: "/src/engine", BuildDir: "/out", BuildType: "RelWithDebInfo"}
	res := &linkplan.Resolution{
		BoostRoot:       "/boost",
		BoostLib:        "/boost/lib",
		ProtobufLibrary: "/pb/lib/libprotobuf-lite.a",
		Protoc:          "/usr/bin/protoc",
		LZ4Include:      "/lz4/include",
		CMakePrefixPath: []string{"/boost", "/pb"},
	}

	args := configureArgs(cfg, res)

	assert.Equal(t, []string{"-S", "/src/engine", "-B", filepath.Join("/out", "build")}, args[:4])
	assert.Contains(t, args, "-DCMAKE_BUILD_TYPE=RelWithDebInfo")
	assert.Contains(t, args, "-DCMAKE_EXPORT_COMPILE_COMMANDS=ON")
	assert.Contains(t, args, "-DENABLE_TOOLS=OFF")
	assert.Contains(t, args, "-DENABLE_THREAD_SAFE_TILE_REF_COUNT=ON")
	assert.Contains(t, args, "-DBoost_NO_SYSTEM_PATHS=ON")
	assert.Contains(t, args, "-DCMAKE_PREFIX_PATH=/boost:/pb")
	assert.Contains(t, args, "-DBoost_ROOT=/boost")
	assert.Contains(t, args, "-DProtobuf_LIBRARY=/pb/lib/libprotobuf-lite.a")
	assert.Contains(t, args, "-DProtobuf_PROTOC_EXECUTABLE=/usr/bin/protoc")
	assert.Contains(t, args, "-DCMAKE_CXX_FLAGS=-I/lz4/include")
	assert.NotContains(t, args, "-DBoost_INCLUDE_DIR=")
}

func TestConfigureArgsDeterministic(t *testing.T) {
	cfg := &Config{SourceDir: "/s", BuildDir: "/o", BuildType: "Release"}
	res := &linkplan.Resolution{BoostRoot: "/b"}

	assert.Equal(t, configureArgs(cfg, res), configureArgs(cfg, res))
}

func TestBridgeArgs(t *testing.T) {
	args := bridgeArgs([]string{"/inc/a", "/inc/b"}, "src/glue.cpp", "/out/glue.o")

	assert.Equal(t, []string{
		"-std=c++17", "-DENABLE_THREAD_SAFE_TILE_REF_COUNT",
		"-I/inc/a", "-I/inc/b",
		"-c", "src/glue.cpp", "-o", "/out/glue.o",
	}, args)
}

func TestObjectPath(t *testing.T) {
	assert.Equal(t, filepath.Join("/out", "glue.o"), objectPath("/out", "src/glue.cpp"))
}

func TestSchemaFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "trip.proto"), []byte{}, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte{}, 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0755))

	files, err := schemaFiles(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "trip.proto")}, files)

	_, err = schemaFiles(filepath.Join(dir, "absent"))
	assert.Error(t, err)
}
