package target

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		triple       string
		family       Family
		cxxRuntime   string
		protobuf     string
		needsAtomics bool
	}{
		{"armv7-linux-androideabi", FamilyAndroid, "c++_shared", "protobuf-lite", true},
		{"aarch64-linux-android", FamilyAndroid, "c++_shared", "protobuf-lite", false},
		{"x86_64-unknown-linux-gnu", FamilyUnix, "stdc++", "protobuf", false},
		{"aarch64-apple-darwin", FamilyApple, "c++", "protobuf", false},
		{"armv7-unknown-linux-gnueabihf", FamilyUnix, "stdc++", "protobuf", true},
		{"", FamilyUnix, "stdc++", "protobuf", false},
	}

	for _, tt := range tests {
		t.Run(tt.triple, func(t *testing.T) {
			p := Classify(tt.triple)
			assert.Equal(t, tt.family, p.Family)
			assert.Equal(t, tt.cxxRuntime, p.CXXRuntime)
			assert.Equal(t, tt.protobuf, p.ProtobufComponent)
			assert.Equal(t, tt.needsAtomics, p.NeedsAtomics)
			assert.False(t, p.PreferDynamic)
		})
	}
}

func TestClassifyNormalizesTriple(t *testing.T) {
	p := Classify("armv7-linux-androideabi")
	assert.Equal(t, "armv7_linux_androideabi", p.TripleUnderscore)
	assert.Equal(t, "armv7-linux-androideabi", p.Triple)
}

func TestFamilyString(t *testing.T) {
	assert.Equal(t, "android", FamilyAndroid.String())
	assert.Equal(t, "apple", FamilyApple.String())
	assert.Equal(t, "unix", FamilyUnix.String())
}
