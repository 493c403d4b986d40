package compdb

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDB(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "compile_commands.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestIncludesExtractionOrder(t *testing.T) {
	path := writeDB(t, `[
		{"file": "/build/src/config.cc",
		 "command": "cc -Ifoo -isystem bar -c config.cc"}
	]`)

	includes, err := Includes(path, "config.cc")
	require.NoError(t, err)
	assert.Equal(t, []string{"foo", "bar"}, includes)
}

func TestIncludesFirstMatchingRecordWins(t *testing.T) {
	path := writeDB(t, `[
		{"file": "/a/other.cc", "command": "cc -Iwrong -c other.cc"},
		{"file": "/a/config.cc", "command": "c++ -I/engine/include -isystem /sysroot/include -I/gen -O2 -c config.cc"},
		{"file": "/b/config.cc", "command": "cc -Ilater -c config.cc"}
	]`)

	includes, err := Includes(path, "config.cc")
	require.NoError(t, err)
	assert.Equal(t, []string{"/engine/include", "/sysroot/include", "/gen"}, includes)
}

func TestIncludesIgnoresNonIncludeFlags(t *testing.T) {
	path := writeDB(t, `[
		{"file": "config.cc",
		 "command": "cc -DNDEBUG -I a.out -std=c++17 -Iinc -isystem"}
	]`)

	// "-I" alone with a following token is not an include flag here, and a
	// trailing -isystem without an argument must not panic.
	includes, err := Includes(path, "config.cc")
	require.NoError(t, err)
	assert.Equal(t, []string{"inc"}, includes)
}

func TestIncludesNoReferenceRecord(t *testing.T) {
	path := writeDB(t, `[{"file": "/a/main.cc", "command": "cc -Ix -c main.cc"}]`)

	includes, err := Includes(path, "config.cc")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoReference)
	assert.Nil(t, includes)
}

func TestIncludesMissingDatabase(t *testing.T) {
	_, err := Includes(filepath.Join(t.TempDir(), "absent.json"), "config.cc")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestIncludesMalformedDatabase(t *testing.T) {
	path := writeDB(t, `{"not": "an array"}`)

	_, err := Includes(path, "config.cc")
	assert.ErrorIs(t, err, ErrBadDatabase)
}
