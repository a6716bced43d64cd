// Package toolexec provides bounded execution of external tools: spawn, wait
// with a deadline, kill and report on deadline. Any external-tool integration
// that can hang or fail non-deterministically should go through this package.
package toolexec

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// Result holds the outcome of a bounded tool invocation.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
	TimedOut bool
	Duration time.Duration
}

// NotFoundError indicates the tool binary is not installed.
type NotFoundError struct {
	Tool  string
	Cause error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("tool %s not found in PATH: %v", e.Tool, e.Cause)
}

func (e *NotFoundError) Unwrap() error {
	return e.Cause
}

// Run executes a tool with a hard deadline. The process is killed when the
// deadline elapses; Result.TimedOut reports that case. A non-nil error means
// the invocation did not complete successfully (missing binary, non-zero
// exit, or timeout); Result is still populated with whatever output was
// captured.
func Run(ctx context.Context, timeout time.Duration, dir, tool string, args ...string) (*Result, error) {
	if _, err := exec.LookPath(tool); err != nil {
		return &Result{ExitCode: -1}, &NotFoundError{Tool: tool, Cause: err}
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, tool, args...)
	cmd.Dir = dir

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	runErr := cmd.Run()

	result := &Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		TimedOut: errors.Is(ctx.Err(), context.DeadlineExceeded),
		Duration: time.Since(start),
	}
	if cmd.ProcessState != nil {
		result.ExitCode = cmd.ProcessState.ExitCode()
	} else {
		result.ExitCode = -1
	}

	if result.TimedOut {
		return result, fmt.Errorf("tool %s killed after %s deadline", tool, timeout)
	}
	if runErr != nil {
		return result, fmt.Errorf("tool %s failed with exit code %d: %w", tool, result.ExitCode, runErr)
	}
	return result, nil
}
