// Package fsops provides the filesystem primitives shared by the explorer
// and the editor: atomic writes, text-file detection, and generated note
// names.
package fsops

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"
)

// textExtensions are the file suffixes treated as text without sniffing.
var textExtensions = map[string]bool{
	".md": true, ".markdown": true, ".txt": true, ".text": true,
	".rst": true, ".org": true, ".todo": true,
	".json": true, ".yaml": true, ".yml": true, ".toml": true,
	".csv": true, ".log": true, ".ini": true, ".conf": true, ".cfg": true,
	".go": true, ".py": true, ".js": true, ".ts": true, ".sh": true,
	".c": true, ".h": true, ".rs": true, ".rb": true, ".html": true,
	".css": true, ".xml": true, ".sql": true,
}

// WriteFileAtomic writes data to path via a temp file in the same
// directory followed by a rename, so a failure mid-write never leaves a
// truncated file behind.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp*")
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &WriteError{Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &WriteError{Path: path, Err: err}
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		os.Remove(tmpName)
		return &WriteError{Path: path, Err: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

// IsTextFile reports whether the file at path looks like editable text.
// Known text extensions pass immediately; anything else is sniffed: the
// first 512 bytes must be valid UTF-8 with a high printable ratio.
func IsTextFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if textExtensions[ext] {
		return true
	}
	if ext != "" {
		return false
	}

	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	buf := make([]byte, 512)
	n, err := f.Read(buf)
	if err != nil && err != io.EOF {
		return false
	}
	if n == 0 {
		return true // empty extensionless file: treat as text
	}
	buf = buf[:n]
	if !utf8.Valid(buf) {
		return false
	}
	printable := 0
	for _, b := range buf {
		if b >= 32 && b <= 126 || b == '\t' || b == '\n' || b == '\r' {
			printable++
		}
	}
	return float64(printable)/float64(len(buf)) > 0.8
}

// UniquePath returns base if unused, otherwise base with a numeric
// suffix before the extension ("note.md" -> "note-1.md", "note-2.md", ...).
func UniquePath(base string) string {
	if _, err := os.Stat(base); os.IsNotExist(err) {
		return base
	}
	dir := filepath.Dir(base)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(filepath.Base(base), ext)
	for i := 1; ; i++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s-%d%s", stem, i, ext))
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
	}
}

// ReadCapped reads at most max bytes of path. truncated reports
// whether the file had more.
func ReadCapped(path string, max int) (content string, truncated bool, err error) {
	f, err := os.Open(path)
	if err != nil {
		return "", false, &ReadError{Path: path, Err: err}
	}
	defer f.Close()

	buf := make([]byte, max+1)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return "", false, &ReadError{Path: path, Err: err}
	}
	if n > max {
		return string(buf[:max]), true, nil
	}
	return string(buf[:n]), false, nil
}

// TimestampName returns the sortable filename for a timestamped note.
func TimestampName(t time.Time) string {
	return t.Format("2006-01-02-150405") + ".md"
}

// UntitledName returns the first unused "untitled-N.md" in dir, starting
// at 1.
func UntitledName(dir string) string {
	for i := 1; ; i++ {
		name := fmt.Sprintf("untitled-%d.md", i)
		if _, err := os.Stat(filepath.Join(dir, name)); os.IsNotExist(err) {
			return name
		}
	}
}
