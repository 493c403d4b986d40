package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspectCommand(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"inspect", "--target", "armv7-linux-androideabi"})

	require.NoError(t, rootCmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "Family:           android")
	assert.Contains(t, out, "Needs atomics:    true")
	assert.Contains(t, out, "boost_filesystem")
	// Each dependency lists its consulted env bases and discovery policy
	assert.Contains(t, out, "Boost_LIBRARY_DIR")
	assert.Contains(t, out, "LZ4_LIBRARY")
	assert.Contains(t, out, "static-first")
}
