package okie

import (
	"errors"
	"fmt"
)

// Sentinel errors for scaffolding operations.
// All use prefix "okie:" for identification. Callers should use errors.Is/errors.As.
var (
	ErrInvalidIdentifier = errors.New("okie: invalid file identifier")
	ErrInvalidBaseURL    = errors.New("okie: invalid base URL")
	ErrNoProjectName     = errors.New("okie: expected current directory to have a name")
	ErrCreateDir         = errors.New("okie: create parent directory failed")
	ErrWriteFile         = errors.New("okie: write file failed")
)

// TaskError wraps the failure of one identifier with the stage it failed in.
// Use errors.As(err, &taskErr) to inspect; errors.Is reaches the wrapped cause.
type TaskError struct {
	ID    string
	Stage Stage
	Err   error
}

// Error implements error.
func (e *TaskError) Error() string {
	return fmt.Sprintf("okie: %s: %s: %v", e.ID, e.Stage, e.Err)
}

// Unwrap returns the wrapped error for errors.Is/errors.As.
func (e *TaskError) Unwrap() error { return e.Err }

// Compile-time check that TaskError implements error.
var _ error = (*TaskError)(nil)
