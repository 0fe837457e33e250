package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"strings"
)

type implExecutor struct{}

// New creates a new Executor instance
func New() Executor {
	return &implExecutor{}
}

// Execute runs an external command with the given arguments.
// Bound the call with a context deadline; an expired deadline yields ErrTimeout.
func (e *implExecutor) Execute(ctx context.Context, name string, args ...string) (Output, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	out := Output{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if err == nil {
		return out, nil
	}

	out.ExitCode = -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		out.ExitCode = exitErr.ExitCode()
	}

	switch {
	case errors.Is(err, exec.ErrNotFound), errors.Is(err, fs.ErrNotExist):
		return out, fmt.Errorf("command '%s': %w", name, ErrNotFound)
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return out, fmt.Errorf("command '%s': %w", name, ErrTimeout)
	}

	// Include stderr in error message for debugging
	stderrStr := strings.TrimSpace(out.Stderr)
	if stderrStr != "" {
		return out, fmt.Errorf("command '%s' failed: %w\nstderr: %s", name, err, stderrStr)
	}
	return out, fmt.Errorf("command '%s' failed: %w", name, err)
}
