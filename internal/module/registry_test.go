package module

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLaunchTableKeysAreUnique(t *testing.T) {
	r := NewRegistry()
	seen := map[string]string{}
	for _, d := range r.All() {
		if prev, ok := seen[d.Key]; ok {
			t.Errorf("key %q bound to both %s and %s", d.Key, prev, d.Name)
		}
		seen[d.Key] = d.Name
	}
}

func TestByKeyAndByName(t *testing.T) {
	r := NewRegistry()

	d, ok := r.ByKey("s")
	if !ok || d.Name != "stampt" {
		t.Errorf("ByKey(s) = %+v, %v", d, ok)
	}
	d, ok = r.ByName("ql")
	if !ok || d.Key != "l" {
		t.Errorf("ByName(ql) = %+v, %v", d, ok)
	}
	if _, ok := r.ByKey("z"); ok {
		t.Error("unbound key matched")
	}
	if _, ok := r.ByName("missing"); ok {
		t.Error("unknown name matched")
	}
}

func TestResolvePrefersExecutableDir(t *testing.T) {
	tmpDir := t.TempDir()
	bundled := filepath.Join(tmpDir, "stampt")
	if err := os.WriteFile(bundled, []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatal(err)
	}

	r := &Registry{
		descriptors: builtins,
		exeDir:      tmpDir,
		lookPath: func(string) (string, error) {
			t.Error("PATH consulted despite a bundled binary")
			return "", os.ErrNotExist
		},
	}
	got, err := r.Resolve("stampt")
	if err != nil {
		t.Fatal(err)
	}
	if got != bundled {
		t.Errorf("got %q, want %q", got, bundled)
	}
}

func TestResolveFallsBackToPath(t *testing.T) {
	r := &Registry{
		descriptors: builtins,
		exeDir:      t.TempDir(),
		lookPath: func(name string) (string, error) {
			return "/usr/local/bin/" + name, nil
		},
	}
	got, err := r.Resolve("blipt")
	if err != nil {
		t.Fatal(err)
	}
	if got != "/usr/local/bin/blipt" {
		t.Errorf("got %q", got)
	}
}

func TestResolveNotFound(t *testing.T) {
	r := &Registry{
		descriptors: builtins,
		exeDir:      t.TempDir(),
		lookPath: func(string) (string, error) {
			return "", os.ErrNotExist
		},
	}
	_, err := r.Resolve("ghost")
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected *NotFoundError, got %T", err)
	}
	if nf.Name != "ghost" {
		t.Errorf("Name = %q", nf.Name)
	}
}

func TestResolveIgnoresNonExecutableSibling(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, "stampt"), []byte("data"), 0644); err != nil {
		t.Fatal(err)
	}
	r := &Registry{
		descriptors: builtins,
		exeDir:      tmpDir,
		lookPath: func(string) (string, error) {
			return "", os.ErrNotExist
		},
	}
	if _, err := r.Resolve("stampt"); err == nil {
		t.Error("a non-executable sibling should not resolve")
	}
}
