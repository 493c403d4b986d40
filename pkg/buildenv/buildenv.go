// pkg/buildenv/buildenv.go
package buildenv

import "os"

// LookupFunc resolves a single environment variable. The second return
// reports whether the variable is set at all (mirrors os.LookupEnv).
type LookupFunc func(key string) (string, bool)

// Environment performs layered environment-variable resolution for one
// target. For a base name X and target triple a_b_c, the candidate order is
// X_a_b_c then X: triple-specific overrides always win. The first candidate
// that is set and non-empty is returned.
//
// Every key the environment could have read is recorded so the caller can
// declare rebuild triggers for all of them, hits and misses alike.
type Environment struct {
	tripleUnderscore string
	lookup           LookupFunc
	consulted        []string
	seen             map[string]bool
}

// New creates an environment resolver for the given normalized triple.
// A nil lookup reads the process environment.
func New(tripleUnderscore string, lookup LookupFunc) *Environment {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	return &Environment{
		tripleUnderscore: tripleUnderscore,
		lookup:           lookup,
		seen:             make(map[string]bool),
	}
}

// Candidates returns the resolution order for a base variable name.
func (e *Environment) Candidates(base string) []string {
	if e.tripleUnderscore == "" {
		return []string{base}
	}
	return []string{base + "_" + e.tripleUnderscore, base}
}

// Lookup returns the first set, non-empty value among the candidates for
// base. The boolean is false when no candidate resolves.
func (e *Environment) Lookup(base string) (string, bool) {
	var value string
	found := false
	for _, key := range e.Candidates(base) {
		e.record(key)
		if found {
			continue
		}
		if v, ok := e.lookup(key); ok && v != "" {
			value = v
			found = true
		}
	}
	return value, found
}

// LookupAny resolves several base names in order and returns the first hit.
// Used for aliased variables (e.g. a LIBRARY/LIBRARIES pair).
func (e *Environment) LookupAny(bases ...string) (string, bool) {
	var value string
	found := false
	for _, base := range bases {
		if v, ok := e.Lookup(base); ok && !found {
			value = v
			found = true
		}
	}
	return value, found
}

// IsTrue reports whether a base variable resolves to a truthy value.
func (e *Environment) IsTrue(base string) bool {
	v, ok := e.Lookup(base)
	return ok && (v == "1" || v == "true" || v == "on" || v == "ON")
}

// Consulted returns every concrete key this environment has read, in first
// consultation order, without duplicates. The build must be considered stale
// if any of them changes.
func (e *Environment) Consulted() []string {
	out := make([]string, len(e.consulted))
	copy(out, e.consulted)
	return out
}

func (e *Environment) record(key string) {
	if e.seen[key] {
		return
	}
	e.seen[key] = true
	e.consulted = append(e.consulted, key)
}
