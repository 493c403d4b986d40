// errors.go
package bridgelink

import (
	"errors"
	"fmt"
)

var (
	// ErrNoTarget indicates no target triple was supplied or configured
	ErrNoTarget = errors.New("no target triple")

	// ErrEngineBuild indicates the native engine build failed
	ErrEngineBuild = errors.New("engine build failed")

	// ErrSchemaCompile indicates the schema compiler failed
	ErrSchemaCompile = errors.New("schema compilation failed")

	// ErrBridgeCompile indicates the bridge glue compilation failed
	ErrBridgeCompile = errors.New("bridge compilation failed")
)

// Error wraps an error with the operation that failed
type Error struct {
	Op  string // Operation that failed
	Err error  // Underlying error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
