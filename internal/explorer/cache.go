package explorer

import (
	"container/list"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/codinganovel/mdns/internal/fsops"
)

const (
	// previewReadBytes is how much of a file feeds its preview snippet.
	previewReadBytes = 200
	// snippetLen caps the collapsed preview text shown per entry.
	snippetLen = 60
	// DefaultCacheSize bounds the LRU when config leaves it unset.
	DefaultCacheSize = 128
)

type recordKind uint8

const (
	kindListing recordKind = iota
	kindPreview
)

type cacheKey struct {
	kind recordKind
	path string
}

// record is one memoized result, valid only while the filesystem still
// reports the stored modification time for the path.
type record struct {
	key     cacheKey
	modTime int64 // UnixNano of the path's mtime at compute time
	entries []Entry
	preview string
}

// Cache memoizes directory listings and preview snippets keyed by
// (path, modtime). Stale records are never served: every hit re-stats
// the path and recomputes on mismatch. Capacity is a hard LRU cap so a
// long browsing session stays bounded. The cache never writes to disk.
type Cache struct {
	max     int
	records map[cacheKey]*list.Element
	order   *list.List // front = most recently used
}

// NewCache returns a cache holding at most max records. Non-positive
// max falls back to DefaultCacheSize.
func NewCache(max int) *Cache {
	if max <= 0 {
		max = DefaultCacheSize
	}
	return &Cache{
		max:     max,
		records: make(map[cacheKey]*list.Element),
		order:   list.New(),
	}
}

// Listing returns the entries of dir: subdirectories and text files,
// directories first, both sorted case-insensitively by name. Hidden
// entries are included; view-level filtering is the explorer's job.
func (c *Cache) Listing(dir string) ([]Entry, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, &fsops.ReadError{Path: dir, Err: err}
	}
	key := cacheKey{kindListing, dir}
	if rec := c.get(key, info.ModTime().UnixNano()); rec != nil {
		return rec.entries, nil
	}

	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil, &fsops.ReadError{Path: dir, Err: err}
	}
	entries := make([]Entry, 0, len(dirents))
	for _, de := range dirents {
		path := filepath.Join(dir, de.Name())
		fi, err := de.Info()
		if err != nil {
			continue // entry vanished mid-listing
		}
		e := newEntry(path, fi)
		if !e.IsDir && !fsops.IsTextFile(path) {
			continue
		}
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].IsDir != entries[j].IsDir {
			return entries[i].IsDir
		}
		return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
	})

	c.put(&record{key: key, modTime: info.ModTime().UnixNano(), entries: entries})
	return entries, nil
}

// Preview returns the snippet shown next to an entry: an item count for
// directories, the collapsed head of the file otherwise.
func (c *Cache) Preview(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", &fsops.ReadError{Path: path, Err: err}
	}
	key := cacheKey{kindPreview, path}
	if rec := c.get(key, info.ModTime().UnixNano()); rec != nil {
		return rec.preview, nil
	}

	var preview string
	if info.IsDir() {
		dirents, err := os.ReadDir(path)
		if err != nil {
			return "", &fsops.ReadError{Path: path, Err: err}
		}
		preview = fmt.Sprintf("<%d items>", len(dirents))
	} else {
		f, err := os.Open(path)
		if err != nil {
			return "", &fsops.ReadError{Path: path, Err: err}
		}
		buf := make([]byte, previewReadBytes)
		n, _ := f.Read(buf)
		f.Close()
		head := buf[:n]
		// The fixed-size read can split a trailing multi-byte rune.
		for i := 0; i < utf8.UTFMax-1 && len(head) > 0; i++ {
			r, size := utf8.DecodeLastRune(head)
			if r != utf8.RuneError || size != 1 {
				break
			}
			head = head[:len(head)-1]
		}
		preview = collapseWhitespace(string(head))
		if preview == "" {
			preview = "<empty>"
		} else {
			preview = runewidth.Truncate(preview, snippetLen, "...")
		}
	}

	c.put(&record{key: key, modTime: info.ModTime().UnixNano(), preview: preview})
	return preview, nil
}

// Invalidate drops any records for path, both listing and preview.
func (c *Cache) Invalidate(path string) {
	for _, kind := range []recordKind{kindListing, kindPreview} {
		if el, ok := c.records[cacheKey{kind, path}]; ok {
			c.order.Remove(el)
			delete(c.records, cacheKey{kind, path})
		}
	}
}

// InvalidateDir drops the listing for dir and every preview cached for
// entries beneath it.
func (c *Cache) InvalidateDir(dir string) {
	c.Invalidate(dir)
	prefix := dir + string(filepath.Separator)
	for key, el := range c.records {
		if strings.HasPrefix(key.path, prefix) {
			c.order.Remove(el)
			delete(c.records, key)
		}
	}
}

// Len returns the number of live records.
func (c *Cache) Len() int { return c.order.Len() }

// get returns the record for key if its stored modtime still matches,
// promoting it to most recently used. A mismatch evicts the record.
func (c *Cache) get(key cacheKey, modTime int64) *record {
	el, ok := c.records[key]
	if !ok {
		return nil
	}
	rec := el.Value.(*record)
	if rec.modTime != modTime {
		c.order.Remove(el)
		delete(c.records, key)
		return nil
	}
	c.order.MoveToFront(el)
	return rec
}

func (c *Cache) put(rec *record) {
	if el, ok := c.records[rec.key]; ok {
		c.order.Remove(el)
	}
	c.records[rec.key] = c.order.PushFront(rec)
	for c.order.Len() > c.max {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.records, oldest.Value.(*record).key)
	}
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
