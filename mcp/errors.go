package mcp

import (
	"errors"
	"fmt"
)

// ErrNotConnected is returned when an operation requires an active session.
var ErrNotConnected = errors.New("not connected to MCP server")

// ToolNotFoundError indicates the named tool is absent from the server's
// cached tool listing. Never retried.
type ToolNotFoundError struct {
	Tool string
}

func (e *ToolNotFoundError) Error() string {
	return fmt.Sprintf("tool %q not found on MCP server", e.Tool)
}

// ValidationError indicates candidate arguments do not satisfy a tool's
// input schema.
type ValidationError struct {
	Tool   string
	Param  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid arguments for tool %q: parameter %q %s", e.Tool, e.Param, e.Reason)
}

// ExecutionError wraps the last underlying cause after all retry attempts
// for a tool call are exhausted.
type ExecutionError struct {
	Tool     string
	Attempts int
	Err      error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("failed to execute tool %q after %d attempts: %v", e.Tool, e.Attempts, e.Err)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}
