package explorer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
	"unicode/utf8"
)

func TestCacheListing(t *testing.T) {
	tmpDir := t.TempDir()
	os.Mkdir(filepath.Join(tmpDir, "zdir"), 0755)
	os.WriteFile(filepath.Join(tmpDir, "alpha.md"), []byte("a"), 0644)
	os.WriteFile(filepath.Join(tmpDir, "Beta.md"), []byte("b"), 0644)
	os.WriteFile(filepath.Join(tmpDir, "blob.bin"), []byte{0, 1, 2}, 0644)

	c := NewCache(0)
	entries, err := c.Listing(tmpDir)
	if err != nil {
		t.Fatal(err)
	}

	var names []string
	for _, e := range entries {
		names = append(names, e.Name)
	}
	// Directories first, then files case-insensitively; binaries excluded.
	want := []string{"zdir", "alpha.md", "Beta.md"}
	if len(names) != len(want) {
		t.Fatalf("got %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("entry %d: got %q, want %q", i, names[i], want[i])
		}
	}
}

func TestCacheServesRecordWhileUnchanged(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "note.md")
	os.WriteFile(path, []byte("first line"), 0644)

	c := NewCache(0)
	p1, err := c.Preview(path)
	if err != nil {
		t.Fatal(err)
	}
	if p1 != "first line" {
		t.Errorf("got %q", p1)
	}
	p2, _ := c.Preview(path)
	if p2 != p1 {
		t.Errorf("second read diverged: %q vs %q", p2, p1)
	}
	if c.Len() != 1 {
		t.Errorf("expected a single record, got %d", c.Len())
	}
}

func TestCacheInvalidatesOnModTimeChange(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "note.md")
	os.WriteFile(path, []byte("before"), 0644)

	c := NewCache(0)
	if p, _ := c.Preview(path); p != "before" {
		t.Fatalf("got %q", p)
	}

	// Rewrite with a mtime guaranteed to differ.
	os.WriteFile(path, []byte("after"), 0644)
	later := time.Now().Add(2 * time.Second)
	if err := os.Chtimes(path, later, later); err != nil {
		t.Fatal(err)
	}

	if p, _ := c.Preview(path); p != "after" {
		t.Errorf("stale preview served: got %q, want %q", p, "after")
	}
}

func TestCachePreviewCollapsesWhitespace(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "note.md")
	os.WriteFile(path, []byte("# Title\n\nsome\tbody   text\n"), 0644)

	c := NewCache(0)
	p, err := c.Preview(path)
	if err != nil {
		t.Fatal(err)
	}
	if p != "# Title some body text" {
		t.Errorf("got %q", p)
	}
}

func TestCachePreviewDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	sub := filepath.Join(tmpDir, "notes")
	os.Mkdir(sub, 0755)
	os.WriteFile(filepath.Join(sub, "a.md"), []byte("a"), 0644)
	os.WriteFile(filepath.Join(sub, "b.md"), []byte("b"), 0644)

	c := NewCache(0)
	p, err := c.Preview(sub)
	if err != nil {
		t.Fatal(err)
	}
	if p != "<2 items>" {
		t.Errorf("got %q, want %q", p, "<2 items>")
	}
}

func TestCachePreviewKeepsRunesIntact(t *testing.T) {
	tmpDir := t.TempDir()
	// Both heads overflow the read and snippet limits mid-rune.
	contents := []string{
		strings.Repeat("a", 199) + "日本語のテキスト",
		strings.Repeat("本", 100),
	}
	c := NewCache(0)
	for i, content := range contents {
		path := filepath.Join(tmpDir, fmt.Sprintf("note%d.md", i))
		os.WriteFile(path, []byte(content), 0644)
		p, err := c.Preview(path)
		if err != nil {
			t.Fatal(err)
		}
		if !utf8.ValidString(p) {
			t.Errorf("preview %d contains invalid UTF-8: %q", i, p)
		}
	}
}

func TestCacheEviction(t *testing.T) {
	tmpDir := t.TempDir()
	paths := make([]string, 3)
	for i := range paths {
		paths[i] = filepath.Join(tmpDir, string(rune('a'+i))+".md")
		os.WriteFile(paths[i], []byte("x"), 0644)
	}

	c := NewCache(2)
	for _, p := range paths {
		if _, err := c.Preview(p); err != nil {
			t.Fatal(err)
		}
	}
	if c.Len() != 2 {
		t.Errorf("cache over capacity: %d records, cap 2", c.Len())
	}
}

func TestCacheInvalidateDir(t *testing.T) {
	tmpDir := t.TempDir()
	os.WriteFile(filepath.Join(tmpDir, "a.md"), []byte("x"), 0644)
	os.WriteFile(filepath.Join(tmpDir, "b.md"), []byte("y"), 0644)

	c := NewCache(0)
	c.Listing(tmpDir)
	c.Preview(filepath.Join(tmpDir, "a.md"))
	c.Preview(filepath.Join(tmpDir, "b.md"))

	c.InvalidateDir(tmpDir)
	if c.Len() != 0 {
		t.Errorf("expected listing and child previews dropped, %d records remain", c.Len())
	}
}

func TestCacheInvalidate(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "note.md")
	os.WriteFile(path, []byte("x"), 0644)

	c := NewCache(0)
	c.Preview(path)
	c.Invalidate(path)
	if c.Len() != 0 {
		t.Errorf("expected empty cache, got %d records", c.Len())
	}
}
