// Package explorer implements the directory browsing core: cached
// listings, fuzzy filtering, selection, and file lifecycle operations.
// It holds no terminal state; the app layer renders it.
package explorer

import (
	"os"
	"path/filepath"
	"time"

	"github.com/codinganovel/mdns/internal/fsops"
)

// DefaultContentThreshold is the largest file whose preview content
// participates in fuzzy search when config leaves the limit unset.
const DefaultContentThreshold = 64 * 1024

// DeleteOutcome reports what a Delete call did.
type DeleteOutcome int

const (
	// DeleteArmed means the selection is now primed; a second Delete
	// on the same entry will remove it.
	DeleteArmed DeleteOutcome = iota
	// DeleteDone means the file was removed.
	DeleteDone
	// DeleteNeedsConfirm means the armed entry is a directory and the
	// caller must confirm recursive removal before DeleteRecursive.
	DeleteNeedsConfirm
)

// Explorer tracks one directory and a filtered, ordered view of its
// entries. All mutation happens through its methods; callers on the
// event loop own it exclusively.
type Explorer struct {
	cache            *Cache
	dir              string
	entries          []Entry
	visible          []Entry
	selected         int
	query            string
	showHidden       bool
	armedPath        string
	contentThreshold int64
}

// New opens an explorer rooted at dir, which must be an existing
// directory.
func New(cache *Cache, dir string, showHidden bool, contentThreshold int64) (*Explorer, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, &fsops.ReadError{Path: dir, Err: err}
	}
	if contentThreshold <= 0 {
		contentThreshold = DefaultContentThreshold
	}
	ex := &Explorer{
		cache:            cache,
		dir:              abs,
		showHidden:       showHidden,
		contentThreshold: contentThreshold,
	}
	if err := ex.reload(); err != nil {
		return nil, err
	}
	return ex, nil
}

// Dir returns the current directory, absolute.
func (ex *Explorer) Dir() string { return ex.dir }

// Visible returns the entries after hidden-filtering and fuzzy search,
// in display order.
func (ex *Explorer) Visible() []Entry { return ex.visible }

// Selected returns the highlighted entry, if any.
func (ex *Explorer) Selected() (Entry, bool) {
	if ex.selected < 0 || ex.selected >= len(ex.visible) {
		return Entry{}, false
	}
	return ex.visible[ex.selected], true
}

// SelectedIndex returns the highlight position, -1 when the view is
// empty.
func (ex *Explorer) SelectedIndex() int {
	if len(ex.visible) == 0 {
		return -1
	}
	return ex.selected
}

// Move shifts the highlight by delta, clamped to the view bounds.
func (ex *Explorer) Move(delta int) {
	ex.disarm()
	ex.selected += delta
	ex.clamp()
}

// Query returns the active search text.
func (ex *Explorer) Query() string { return ex.query }

// SetQuery replaces the search text and recomputes the view. The
// highlight resets to the top match.
func (ex *Explorer) SetQuery(q string) {
	ex.disarm()
	ex.query = q
	ex.applyFilter()
	ex.selected = 0
	ex.clamp()
}

// ShowHidden reports whether dotfiles are visible.
func (ex *Explorer) ShowHidden() bool { return ex.showHidden }

// ToggleHidden flips dotfile visibility, keeping the current selection
// when it survives the change.
func (ex *Explorer) ToggleHidden() {
	ex.disarm()
	keep, had := ex.Selected()
	ex.showHidden = !ex.showHidden
	ex.applyFilter()
	if had {
		ex.selectPath(keep.Path)
	}
	ex.clamp()
}

// Refresh drops the cached records for the current directory and
// rereads it, preserving the selection by path where possible.
func (ex *Explorer) Refresh() error {
	keep, had := ex.Selected()
	ex.cache.InvalidateDir(ex.dir)
	if err := ex.reload(); err != nil {
		return err
	}
	if had {
		ex.selectPath(keep.Path)
	}
	return nil
}

// Enter acts on the selection: a directory becomes the new current
// directory and nil is returned; a file is returned to the caller for
// opening. The search query is cleared on descent.
func (ex *Explorer) Enter() (*Entry, error) {
	ex.disarm()
	sel, ok := ex.Selected()
	if !ok {
		return nil, nil
	}
	if !sel.IsDir {
		e := sel
		return &e, nil
	}
	prev := ex.dir
	ex.dir = sel.Path
	ex.query = ""
	ex.selected = 0
	if err := ex.reload(); err != nil {
		ex.dir = prev
		ex.reload()
		return nil, err
	}
	return nil, nil
}

// Parent ascends one level and reselects the directory just left. At
// the filesystem root it is a no-op.
func (ex *Explorer) Parent() error {
	ex.disarm()
	parent := filepath.Dir(ex.dir)
	if parent == ex.dir {
		return nil
	}
	from := ex.dir
	ex.dir = parent
	ex.query = ""
	ex.selected = 0
	if err := ex.reload(); err != nil {
		ex.dir = from
		ex.reload()
		return err
	}
	ex.selectPath(from)
	return nil
}

// NewTimestampedNote creates an empty note named after the current
// time, selects it, and returns its path.
func (ex *Explorer) NewTimestampedNote() (string, error) {
	name := fsops.TimestampName(time.Now())
	return ex.createNote(fsops.UniquePath(filepath.Join(ex.dir, name)))
}

// NewUntitledNote creates the next free untitled-N.md, selects it, and
// returns its path.
func (ex *Explorer) NewUntitledNote() (string, error) {
	return ex.createNote(filepath.Join(ex.dir, fsops.UntitledName(ex.dir)))
}

func (ex *Explorer) createNote(path string) (string, error) {
	if err := fsops.WriteFileAtomic(path, nil, 0644); err != nil {
		return "", err
	}
	ex.disarm()
	ex.query = ""
	if err := ex.Refresh(); err != nil {
		return path, err
	}
	ex.selectPath(path)
	return path, nil
}

// Delete drives the two-step removal protocol. The first call arms the
// selection; a second call on the same entry removes a file outright
// and asks for confirmation on a directory. Any other explorer action
// disarms.
func (ex *Explorer) Delete() (DeleteOutcome, error) {
	sel, ok := ex.Selected()
	if !ok {
		return DeleteArmed, nil
	}
	if ex.armedPath != sel.Path {
		ex.armedPath = sel.Path
		return DeleteArmed, nil
	}
	if sel.IsDir {
		return DeleteNeedsConfirm, nil
	}
	ex.armedPath = ""
	if err := os.Remove(sel.Path); err != nil {
		return DeleteDone, &fsops.DeleteError{Path: sel.Path, Err: err}
	}
	ex.cache.Invalidate(sel.Path)
	return DeleteDone, ex.Refresh()
}

// DeleteRecursive removes the armed directory and everything under it.
// Call only after DeleteNeedsConfirm has been confirmed.
func (ex *Explorer) DeleteRecursive() error {
	path := ex.armedPath
	ex.armedPath = ""
	if path == "" {
		return nil
	}
	if err := os.RemoveAll(path); err != nil {
		return &fsops.DeleteError{Path: path, Err: err}
	}
	ex.cache.Invalidate(path)
	return ex.Refresh()
}

// Armed returns the path primed for deletion, if any.
func (ex *Explorer) Armed() (string, bool) {
	return ex.armedPath, ex.armedPath != ""
}

// Disarm cancels a pending delete.
func (ex *Explorer) Disarm() { ex.disarm() }

// Preview returns the display snippet for an entry, or "" when it
// cannot be produced.
func (ex *Explorer) Preview(e Entry) string {
	p, err := ex.cache.Preview(e.Path)
	if err != nil {
		return ""
	}
	return p
}

func (ex *Explorer) disarm() { ex.armedPath = "" }

func (ex *Explorer) reload() error {
	entries, err := ex.cache.Listing(ex.dir)
	if err != nil {
		return err
	}
	ex.entries = entries
	ex.applyFilter()
	ex.clamp()
	return nil
}

func (ex *Explorer) applyFilter() {
	shown := ex.entries
	if !ex.showHidden {
		shown = make([]Entry, 0, len(ex.entries))
		for _, e := range ex.entries {
			if !e.IsHidden {
				shown = append(shown, e)
			}
		}
	}
	ex.visible = Filter(shown, ex.query, ex.searchPreview)
}

// searchPreview feeds file content into search for small text files
// only; directories and large files match by name alone.
func (ex *Explorer) searchPreview(e Entry) string {
	if e.IsDir || e.Size > ex.contentThreshold {
		return ""
	}
	return ex.Preview(e)
}

func (ex *Explorer) selectPath(path string) {
	for i, e := range ex.visible {
		if e.Path == path {
			ex.selected = i
			return
		}
	}
}

func (ex *Explorer) clamp() {
	if len(ex.visible) == 0 {
		ex.selected = 0
		return
	}
	if ex.selected < 0 {
		ex.selected = 0
	}
	if ex.selected >= len(ex.visible) {
		ex.selected = len(ex.visible) - 1
	}
}
