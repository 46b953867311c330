package hio

import (
	"errors"
	"fmt"
)

var (
	ErrOpenFailed    = errors.New("host refused to open stream")
	ErrInvalidHandle = errors.New("invalid handle")
	ErrHostError     = errors.New("host reported invalid write count")
)

// StreamError records which stream failed to open.
type StreamError struct {
	Stream string
	Handle Handle
	Err    error
}

func (e *StreamError) Error() string {
	return fmt.Sprintf("%s: %v (handle %d)", e.Stream, e.Err, e.Handle)
}

func (e *StreamError) Unwrap() error { return e.Err }

// WriteError records the handle a write failed on.
type WriteError struct {
	Handle Handle
	Err    error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write to handle %d: %v", e.Handle, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
