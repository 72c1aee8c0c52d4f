// Package module knows the companion programs that can take over the
// terminal: which ones exist, which keys launch them, and where their
// binaries live.
package module

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// Descriptor describes one launchable companion program.
type Descriptor struct {
	Name        string
	Key         string // menu shortcut; ctrl+Key quick-launches from anywhere
	Description string
}

// builtins is the launch table. Key collisions here are a programming
// error caught by tests.
var builtins = []Descriptor{
	{Name: "stampt", Key: "s", Description: "timestamped journaling"},
	{Name: "blipt", Key: "b", Description: "quick capture"},
	{Name: "smallt", Key: "t", Description: "tiny task list"},
	{Name: "templet", Key: "o", Description: "note templates"},
	{Name: "gitnot", Key: "g", Description: "git status for notes"},
	{Name: "ql", Key: "l", Description: "quick launcher"},
}

// NotFoundError means no binary for the named module could be located.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("module %q not found next to the executable or on PATH", e.Name)
}

// Registry resolves module names to executables. The directory holding
// the running binary is probed before PATH, so a bundled install wins
// over a system-wide one.
type Registry struct {
	descriptors []Descriptor
	exeDir      string
	lookPath    func(string) (string, error)
}

// NewRegistry builds the registry around the built-in launch table.
func NewRegistry() *Registry {
	r := &Registry{
		descriptors: builtins,
		lookPath:    exec.LookPath,
	}
	if exe, err := os.Executable(); err == nil {
		r.exeDir = filepath.Dir(exe)
	}
	return r
}

// All returns the launch table in menu order.
func (r *Registry) All() []Descriptor { return r.descriptors }

// ByKey returns the descriptor bound to a menu key.
func (r *Registry) ByKey(key string) (Descriptor, bool) {
	for _, d := range r.descriptors {
		if d.Key == key {
			return d, true
		}
	}
	return Descriptor{}, false
}

// ByName returns the descriptor for a module name.
func (r *Registry) ByName(name string) (Descriptor, bool) {
	for _, d := range r.descriptors {
		if d.Name == name {
			return d, true
		}
	}
	return Descriptor{}, false
}

// Resolve returns the path of the binary for name: the executable's own
// directory first, then PATH.
func (r *Registry) Resolve(name string) (string, error) {
	if r.exeDir != "" {
		candidate := filepath.Join(r.exeDir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() && info.Mode()&0111 != 0 {
			return candidate, nil
		}
	}
	if path, err := r.lookPath(name); err == nil {
		return path, nil
	}
	return "", &NotFoundError{Name: name}
}
