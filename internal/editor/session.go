// Package editor tracks the lifecycle of one open file: its buffer,
// its dirtiness against disk, and the save and discard transitions.
// Rendering and key handling live in the app layer.
package editor

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"

	"github.com/codinganovel/mdns/internal/fsops"
)

// Session is one open file. It starts clean; edits make it dirty; a
// successful save or an explicit discard makes it clean again. A failed
// save changes nothing, so no buffered work is ever silently lost.
type Session struct {
	path   string
	buffer string
	saved  string
	perm   os.FileMode
}

// Load opens path and reads its current content into the buffer.
func Load(path string) (*Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &fsops.ReadError{Path: path, Err: err}
	}
	perm := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}
	return &Session{
		path:   path,
		buffer: string(data),
		saved:  string(data),
		perm:   perm,
	}, nil
}

// Path returns the file this session edits.
func (s *Session) Path() string { return s.path }

// Buffer returns the current in-memory content.
func (s *Session) Buffer() string { return s.buffer }

// SetBuffer replaces the in-memory content. Dirtiness is derived by
// comparison, so undoing an edit back to the saved text is clean again.
func (s *Session) SetBuffer(text string) { s.buffer = text }

// Dirty reports whether the buffer differs from the last saved content.
func (s *Session) Dirty() bool { return s.buffer != s.saved }

// Save writes the buffer to disk atomically. On failure the session
// stays dirty and the buffer is untouched.
func (s *Session) Save() error {
	if err := fsops.WriteFileAtomic(s.path, []byte(s.buffer), s.perm); err != nil {
		return err
	}
	s.saved = s.buffer
	return nil
}

// Discard throws away unsaved edits, restoring the last saved content.
// The file on disk is not touched.
func (s *Session) Discard() { s.buffer = s.saved }

// ClipboardError wraps a failure to reach the system clipboard.
type ClipboardError struct {
	Err error
}

func (e *ClipboardError) Error() string { return fmt.Sprintf("clipboard: %v", e.Err) }
func (e *ClipboardError) Unwrap() error { return e.Err }

// CopyToClipboard puts the whole buffer on the system clipboard.
func (s *Session) CopyToClipboard() error {
	if err := clipboard.WriteAll(s.buffer); err != nil {
		return &ClipboardError{Err: err}
	}
	return nil
}
