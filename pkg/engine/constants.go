// pkg/engine/constants.go
package engine

// ReferenceSource is a source file compiled with the engine's full
// include-path set; its compile-command record configures the bridge build.
const ReferenceSource = "config.cc"

// CXXStandard is the language standard for the bridge compile.
const CXXStandard = "c++17"

// DefaultTarget is the engine's CMake build target.
const DefaultTarget = "valhalla"

// configureDefines are the fixed engine options: optional subsystems off,
// compile-command export on. Order is fixed so configure invocations are
// reproducible.
var configureDefines = [][2]string{
	{"CMAKE_EXPORT_COMPILE_COMMANDS", "ON"},
	{"ENABLE_TOOLS", "OFF"},
	{"ENABLE_DATA_TOOLS", "OFF"},
	{"ENABLE_SERVICES", "OFF"},
	{"ENABLE_HTTP", "OFF"},
	{"ENABLE_PYTHON_BINDINGS", "OFF"},
	{"ENABLE_TESTS", "OFF"},
	{"ENABLE_GDAL", "OFF"},
	{"ENABLE_SINGLE_FILES_WERROR", "OFF"},
	{"ENABLE_THREAD_SAFE_TILE_REF_COUNT", "ON"},
	{"LOGGING_LEVEL", "WARN"},
	{"Boost_NO_SYSTEM_PATHS", "ON"},
}
