package executor

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when the binary cannot be located.
	ErrNotFound = errors.New("executable not found")
	// ErrTimeout is returned when the context deadline kills the command.
	ErrTimeout = errors.New("command timed out")
)

// Output holds the captured streams of one command invocation.
// It is populated even when the command fails.
type Output struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Executor defines the interface for executing external commands
type Executor interface {
	Execute(ctx context.Context, name string, args ...string) (Output, error)
}
