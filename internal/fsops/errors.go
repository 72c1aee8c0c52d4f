package fsops

import "fmt"

// ReadError wraps a failure to list or read a path.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string { return fmt.Sprintf("read %s: %v", e.Path, e.Err) }
func (e *ReadError) Unwrap() error { return e.Err }

// WriteError wraps a failure to create or write a path. In-memory state
// must be left untouched by callers when one of these is returned.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string { return fmt.Sprintf("write %s: %v", e.Path, e.Err) }
func (e *WriteError) Unwrap() error { return e.Err }

// DeleteError wraps a failure to remove a path.
type DeleteError struct {
	Path string
	Err  error
}

func (e *DeleteError) Error() string { return fmt.Sprintf("delete %s: %v", e.Path, e.Err) }
func (e *DeleteError) Unwrap() error { return e.Err }
