package outline

import (
	"errors"
	"fmt"
)

// ErrUpstreamGeneration is matched by every provider-side failure.
var ErrUpstreamGeneration = errors.New("upstream outline generation failed")

// UpstreamError wraps the llm error for one subject.
type UpstreamError struct {
	Subject string
	Err     error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("outline for %q: %v", e.Subject, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

func (e *UpstreamError) Is(target error) bool { return target == ErrUpstreamGeneration }
