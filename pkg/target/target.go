// pkg/target/target.go
package target

import "strings"

// Family identifies the platform family a target triple belongs to
type Family int

const (
	FamilyUnix Family = iota // generic Unix-like, the default
	FamilyAndroid
	FamilyApple
)

// String returns a string representation of the family
func (f Family) String() string {
	switch f {
	case FamilyAndroid:
		return "android"
	case FamilyApple:
		return "apple"
	default:
		return "unix"
	}
}

// Profile holds the platform policy derived from a target triple.
// Created once per build invocation, read-only thereafter. All downstream
// logic depends on these fields, never on the raw triple string.
type Profile struct {
	Triple           string // e.g. armv7-linux-androideabi
	TripleUnderscore string // e.g. armv7_linux_androideabi, for env var suffixes
	Family           Family

	// PreferDynamic selects .so over .a during artifact discovery.
	// False on every platform by default; flipped by an explicit override.
	PreferDynamic bool

	// NeedsAtomics is set for 32-bit ARM Android ABIs, whose base runtime
	// lacks atomic intrinsics and requires linking libatomic explicitly.
	NeedsAtomics bool

	// CXXRuntime is the default C++ runtime link name for the platform.
	CXXRuntime string

	// ProtobufComponent is the default protobuf flavor for the platform.
	ProtobufComponent string
}

// Classify derives the platform profile from a raw target triple.
// Unrecognized triples degrade to generic Unix defaults, never an error.
func Classify(triple string) *Profile {
	p := &Profile{
		Triple:           triple,
		TripleUnderscore: strings.ReplaceAll(triple, "-", "_"),
	}

	switch {
	case strings.Contains(triple, "android"):
		p.Family = FamilyAndroid
	case strings.Contains(triple, "apple"):
		p.Family = FamilyApple
	default:
		p.Family = FamilyUnix
	}

	switch p.Family {
	case FamilyAndroid:
		p.CXXRuntime = "c++_shared"
		p.ProtobufComponent = "protobuf-lite"
	case FamilyApple:
		p.CXXRuntime = "c++"
		p.ProtobufComponent = "protobuf"
	default:
		p.CXXRuntime = "stdc++"
		p.ProtobufComponent = "protobuf"
	}

	if strings.Contains(triple, "armv7") || strings.Contains(triple, "androideabi") {
		p.NeedsAtomics = true
	}

	return p
}
