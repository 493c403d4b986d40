// pkg/compdb/compdb.go
package compdb

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

var (
	// ErrNotFound indicates the compile-command database file is absent
	ErrNotFound = errors.New("compile-command database not found")

	// ErrBadDatabase indicates the database failed to parse
	ErrBadDatabase = errors.New("malformed compile-command database")

	// ErrNoReference indicates no record matched the reference source file
	ErrNoReference = errors.New("reference source not found in compile-command database")
)

// Entry is one record of a JSON compilation database.
type Entry struct {
	Command string `json:"command"`
	File    string `json:"file"`
}

// Load parses the compilation database at path.
func Load(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrBadDatabase, path, err)
	}
	return entries, nil
}

// Includes extracts the include-search directories from the invocation that
// compiled refSource, in command-line order. refSource matches by suffix
// against the file field; the first matching record wins.
//
// Include order is significant for header shadowing, so no deduplication or
// sorting happens here. Every failure is hard: without these paths the
// bridge compilation cannot be configured.
func Includes(path, refSource string) ([]string, error) {
	entries, err := Load(path)
	if err != nil {
		return nil, err
	}

	for _, e := range entries {
		if strings.HasSuffix(e.File, refSource) {
			return extractIncludes(e.Command), nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNoReference, refSource)
}

// extractIncludes pulls -I<dir> and "-isystem <dir>" arguments out of a
// whitespace-tokenized compiler command line.
func extractIncludes(command string) []string {
	args := strings.Fields(command)
	var includes []string
	for i := 0; i < len(args); i++ {
		if rest, ok := strings.CutPrefix(args[i], "-I"); ok && rest != "" {
			includes = append(includes, rest)
		} else if args[i] == "-isystem" && i+1 < len(args) {
			includes = append(includes, args[i+1])
			i++
		}
	}
	return includes
}
