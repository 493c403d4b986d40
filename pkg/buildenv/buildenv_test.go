package buildenv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func mapLookup(m map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestLookupTripleSpecificWins(t *testing.T) {
	env := New("armv7_linux_androideabi", mapLookup(map[string]string{
		"Boost_ROOT":                         "/generic/boost",
		"Boost_ROOT_armv7_linux_androideabi": "/android/boost",
	}))

	v, ok := env.Lookup("Boost_ROOT")
	assert.True(t, ok)
	assert.Equal(t, "/android/boost", v)
}

func TestLookupFallsBackToGeneric(t *testing.T) {
	env := New("x86_64_unknown_linux_gnu", mapLookup(map[string]string{
		"LZ4_DIR": "/opt/lz4",
	}))

	v, ok := env.Lookup("LZ4_DIR")
	assert.True(t, ok)
	assert.Equal(t, "/opt/lz4", v)
}

func TestLookupEmptyValueSkipped(t *testing.T) {
	env := New("x86_64_unknown_linux_gnu", mapLookup(map[string]string{
		"Protobuf_DIR_x86_64_unknown_linux_gnu": "",
		"Protobuf_DIR":                          "/usr/local",
	}))

	v, ok := env.Lookup("Protobuf_DIR")
	assert.True(t, ok)
	assert.Equal(t, "/usr/local", v)
}

func TestLookupAbsent(t *testing.T) {
	env := New("x86_64_unknown_linux_gnu", mapLookup(nil))

	v, ok := env.Lookup("Boost_LIBRARY_DIR")
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestLookupAnyAliasOrder(t *testing.T) {
	env := New("t", mapLookup(map[string]string{
		"Protobuf_LIBRARIES": "/lib/libprotobuf.a",
	}))

	v, ok := env.LookupAny("Protobuf_LIBRARY", "Protobuf_LIBRARIES")
	assert.True(t, ok)
	assert.Equal(t, "/lib/libprotobuf.a", v)

	env = New("t", mapLookup(map[string]string{
		"Protobuf_LIBRARY":   "/lib/a",
		"Protobuf_LIBRARIES": "/lib/b",
	}))
	v, _ = env.LookupAny("Protobuf_LIBRARY", "Protobuf_LIBRARIES")
	assert.Equal(t, "/lib/a", v)
}

func TestIsTrue(t *testing.T) {
	env := New("t", mapLookup(map[string]string{
		"PREFER_DYNAMIC_LIBS": "1",
		"OTHER_FLAG":          "no",
	}))

	assert.True(t, env.IsTrue("PREFER_DYNAMIC_LIBS"))
	assert.False(t, env.IsTrue("OTHER_FLAG"))
	assert.False(t, env.IsTrue("UNSET_FLAG"))
}

func TestConsultedRecordsHitsAndMisses(t *testing.T) {
	env := New("abi", mapLookup(map[string]string{
		"Boost_ROOT_abi": "/b",
	}))

	env.Lookup("Boost_ROOT")
	env.Lookup("LZ4_DIR")
	env.Lookup("Boost_ROOT") // repeat, must not duplicate

	assert.Equal(t, []string{
		"Boost_ROOT_abi", "Boost_ROOT",
		"LZ4_DIR_abi", "LZ4_DIR",
	}, env.Consulted())
}

func TestCandidatesWithoutTriple(t *testing.T) {
	env := New("", mapLookup(nil))
	assert.Equal(t, []string{"PROTOC"}, env.Candidates("PROTOC"))
}
