package workflow

import (
	"errors"
	"fmt"
)

// ErrExecutionFailed is matched by every sub-component failure inside Run.
var ErrExecutionFailed = errors.New("workflow execution failed")

// ExecutionError reports which stage of the workflow failed.
type ExecutionError struct {
	Stage string
	Err   error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("workflow %s stage failed: %v", e.Stage, e.Err)
}

func (e *ExecutionError) Unwrap() error { return e.Err }

func (e *ExecutionError) Is(target error) bool { return target == ErrExecutionFailed }
