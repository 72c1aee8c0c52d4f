package keymap

import "testing"

func TestLookupContextBeforeGlobal(t *testing.T) {
	r := NewRegistry()

	// ctrl+c quits everywhere except the editor, where it copies.
	cmd, ok := r.Lookup(ContextExplorer, "ctrl+c")
	if !ok || cmd != "quit" {
		t.Errorf("explorer ctrl+c = %q, %v", cmd, ok)
	}
	cmd, ok = r.Lookup(ContextEditor, "ctrl+c")
	if !ok || cmd != "copy" {
		t.Errorf("editor ctrl+c = %q, %v", cmd, ok)
	}
}

func TestLookupFallsThroughToGlobal(t *testing.T) {
	r := NewRegistry()
	cmd, ok := r.Lookup(ContextPreview, "j")
	if !ok || cmd != "cursor-down" {
		t.Errorf("got %q, %v", cmd, ok)
	}
}

func TestLookupUnboundKey(t *testing.T) {
	r := NewRegistry()
	if cmd, ok := r.Lookup(ContextExplorer, "ctrl+z"); ok {
		t.Errorf("unbound key resolved to %q", cmd)
	}
}

func TestApplyOverrides(t *testing.T) {
	r := NewRegistry()
	r.ApplyOverrides(map[string]string{
		"explorer.refresh": "f5",
	})

	cmd, ok := r.Lookup(ContextExplorer, "f5")
	if !ok || cmd != "refresh" {
		t.Errorf("override not applied: %q, %v", cmd, ok)
	}
	if _, ok := r.Lookup(ContextExplorer, "r"); ok {
		t.Error("old key should be unbound after override")
	}
	if key := r.KeyFor(ContextExplorer, "refresh"); key != "f5" {
		t.Errorf("KeyFor = %q", key)
	}
}

func TestApplyOverridesIgnoresUnknownCommand(t *testing.T) {
	r := NewRegistry()
	r.ApplyOverrides(map[string]string{
		"explorer.teleport": "x",
		"malformed":         "y",
	})
	if _, ok := r.Lookup(ContextExplorer, "x"); ok {
		t.Error("unknown command should not bind")
	}
	if _, ok := r.Lookup(ContextExplorer, "y"); ok {
		t.Error("malformed target should not bind")
	}
}

func TestKeyForFallsBackToGlobal(t *testing.T) {
	r := NewRegistry()
	if key := r.KeyFor(ContextModules, "help"); key != "?" {
		t.Errorf("got %q", key)
	}
}

func TestModuleLaunchKeysPresent(t *testing.T) {
	r := NewRegistry()
	for _, tc := range []struct{ key, cmd string }{
		{"ctrl+s", "launch-stampt"},
		{"ctrl+b", "launch-blipt"},
		{"ctrl+t", "launch-smallt"},
		{"ctrl+o", "launch-templet"},
		{"ctrl+g", "launch-gitnot"},
		{"ctrl+l", "launch-ql"},
	} {
		cmd, ok := r.Lookup(ContextExplorer, tc.key)
		if !ok || cmd != tc.cmd {
			t.Errorf("%s = %q, %v, want %q", tc.key, cmd, ok, tc.cmd)
		}
	}
}
