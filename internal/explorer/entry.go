package explorer

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Entry is an immutable snapshot of one directory member. Snapshots are
// regenerated on every directory refresh.
type Entry struct {
	Path     string // absolute
	Name     string
	IsDir    bool
	IsHidden bool
	Size     int64
	ModTime  time.Time
}

// newEntry stats path and builds its snapshot.
func newEntry(path string, info os.FileInfo) Entry {
	name := filepath.Base(path)
	return Entry{
		Path:     path,
		Name:     name,
		IsDir:    info.IsDir(),
		IsHidden: strings.HasPrefix(name, "."),
		Size:     info.Size(),
		ModTime:  info.ModTime(),
	}
}
