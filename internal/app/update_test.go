package app

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/codinganovel/mdns/internal/config"
	"github.com/codinganovel/mdns/internal/explorer"
	"github.com/codinganovel/mdns/internal/module"
)

func newTestModel(t *testing.T) (*Model, string) {
	t.Helper()
	root := t.TempDir()
	os.WriteFile(filepath.Join(root, "alpha.md"), []byte("alpha body"), 0644)
	os.WriteFile(filepath.Join(root, "beta.md"), []byte("beta body"), 0644)

	cfg := config.Default()
	ex, err := explorer.New(explorer.NewCache(cfg.Cache.MaxEntries), root, cfg.UI.ShowHidden, cfg.Search.ContentThresholdBytes)
	if err != nil {
		t.Fatal(err)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	reg := module.NewRegistry()
	m := New(cfg, ex, nil, reg, module.NewLauncher(reg, logger), logger)
	m.width, m.height = 80, 24
	return m, root
}

func press(m *Model, key string) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
	return cmd
}

func pressSpecial(m *Model, t tea.KeyType) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: t})
	return cmd
}

func TestEscClearsSearchBeforeAscending(t *testing.T) {
	m, root := newTestModel(t)
	sub := filepath.Join(root, "docs")
	os.Mkdir(sub, 0755)
	m.explorer.Refresh()

	m.explorer.SetQuery("alpha")

	pressSpecial(m, tea.KeyEsc)
	if m.explorer.Query() != "" {
		t.Fatalf("first esc should clear query, got %q", m.explorer.Query())
	}
	if m.explorer.Dir() != root {
		t.Fatalf("first esc must not ascend")
	}

	pressSpecial(m, tea.KeyEsc)
	if m.explorer.Dir() != filepath.Dir(root) {
		t.Errorf("second esc should ascend, dir = %q", m.explorer.Dir())
	}
}

func TestLaunchWhileDirtyPrompts(t *testing.T) {
	m, root := newTestModel(t)
	es, err := newEditorScreen(m, filepath.Join(root, "alpha.md"))
	if err != nil {
		t.Fatal(err)
	}
	m.push(es)
	es.session.SetBuffer("alpha body edited")

	cmd := m.requestLaunch("stampt")
	if cmd != nil {
		t.Error("launch must defer behind the prompt")
	}
	if m.dialog == nil {
		t.Fatal("dirty editor should raise the save prompt")
	}
	if m.pendingLaunch != "stampt" {
		t.Errorf("pendingLaunch = %q", m.pendingLaunch)
	}

	// Cancel aborts the launch and keeps the edits.
	pressSpecial(m, tea.KeyEsc)
	if m.dialog != nil {
		t.Error("dialog should close on cancel")
	}
	if m.pendingLaunch != "" {
		t.Errorf("cancel should clear pendingLaunch, got %q", m.pendingLaunch)
	}
	if !es.dirty() {
		t.Error("cancel must not touch the buffer")
	}
}

func TestLaunchWhileCleanSkipsPrompt(t *testing.T) {
	m, root := newTestModel(t)
	es, err := newEditorScreen(m, filepath.Join(root, "alpha.md"))
	if err != nil {
		t.Fatal(err)
	}
	m.push(es)

	m.requestLaunch("stampt")
	if m.dialog != nil {
		t.Error("clean editor should launch without prompting")
	}
}

func TestDirtyCloseDiscardRestoresDisk(t *testing.T) {
	m, root := newTestModel(t)
	path := filepath.Join(root, "alpha.md")
	es, err := newEditorScreen(m, path)
	if err != nil {
		t.Fatal(err)
	}
	m.push(es)
	es.ta.SetValue("scratch")

	pressSpecial(m, tea.KeyEsc) // close request
	if m.dialog == nil {
		t.Fatal("dirty close should prompt")
	}
	press(m, "d") // Don't Save

	if len(m.stack) != 1 {
		t.Errorf("editor should be popped, stack depth %d", len(m.stack))
	}
	data, _ := os.ReadFile(path)
	if string(data) != "alpha body" {
		t.Errorf("discard wrote to disk: %q", data)
	}
}

func TestDirtyCloseSaveWritesDisk(t *testing.T) {
	m, root := newTestModel(t)
	path := filepath.Join(root, "alpha.md")
	es, err := newEditorScreen(m, path)
	if err != nil {
		t.Fatal(err)
	}
	m.push(es)
	es.ta.SetValue("saved body")

	pressSpecial(m, tea.KeyEsc)
	if m.dialog == nil {
		t.Fatal("dirty close should prompt")
	}
	press(m, "s")

	if len(m.stack) != 1 {
		t.Errorf("editor should be popped, stack depth %d", len(m.stack))
	}
	data, _ := os.ReadFile(path)
	if string(data) != "saved body" {
		t.Errorf("disk = %q", data)
	}
}

func TestCleanCloseNeedsNoPrompt(t *testing.T) {
	m, root := newTestModel(t)
	es, err := newEditorScreen(m, filepath.Join(root, "alpha.md"))
	if err != nil {
		t.Fatal(err)
	}
	m.push(es)

	pressSpecial(m, tea.KeyEsc)
	if m.dialog != nil {
		t.Error("clean close should not prompt")
	}
	if len(m.stack) != 1 {
		t.Errorf("stack depth %d", len(m.stack))
	}
}

func TestHelpPushAndPop(t *testing.T) {
	m, _ := newTestModel(t)
	press(m, "?")
	if _, ok := m.top().(*helpScreen); !ok {
		t.Fatalf("? should open help, top is %T", m.top())
	}
	pressSpecial(m, tea.KeyEsc)
	if _, ok := m.top().(*explorerScreen); !ok {
		t.Errorf("esc should close help, top is %T", m.top())
	}
}

func TestModulesMenuOpens(t *testing.T) {
	m, _ := newTestModel(t)
	press(m, "m")
	if _, ok := m.top().(*modulesScreen); !ok {
		t.Fatalf("m should open modules menu, top is %T", m.top())
	}
	press(m, "q")
	if _, ok := m.top().(*explorerScreen); !ok {
		t.Errorf("q should close the menu, top is %T", m.top())
	}
}

func TestDialogCapturesKeys(t *testing.T) {
	m, root := newTestModel(t)
	sub := filepath.Join(root, "docs")
	os.Mkdir(sub, 0755)
	m.explorer.Refresh()
	m.explorer.SetQuery("docs")

	press(m, "d")
	press(m, "d")
	if m.dialog == nil {
		t.Fatal("directory delete should raise the confirm dialog")
	}

	// Explorer keys must not leak past the dialog.
	press(m, "x")
	if _, err := os.Stat(filepath.Join(root, "docs")); err != nil {
		t.Fatal("dialog key press had a side effect on the tree")
	}
	if m.dialog == nil {
		t.Fatal("unrelated key should not resolve the dialog")
	}

	press(m, "y")
	if m.dialog != nil {
		t.Error("confirm should resolve the dialog")
	}
	if _, err := os.Stat(sub); !os.IsNotExist(err) {
		t.Error("confirmed delete should remove the directory")
	}
}

func TestQuitFromExplorer(t *testing.T) {
	m, _ := newTestModel(t)
	cmd := press(m, "q")
	if cmd == nil {
		t.Fatal("q should quit from the explorer")
	}
	if msg := cmd(); msg != tea.Quit() {
		t.Errorf("got %#v, want tea.QuitMsg", msg)
	}
}

func TestToastLifecycle(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := m.Update(toastMsg{text: "write failed", isErr: true})
	if m.toastText != "write failed" || !m.toastErr {
		t.Errorf("toast not shown: %q err=%v", m.toastText, m.toastErr)
	}
	if cmd == nil {
		t.Error("a toast should schedule its own expiry")
	}

	m.Update(clearToastMsg{})
	if m.toastText != "" {
		t.Errorf("toast should clear, still showing %q", m.toastText)
	}
}

func TestOpenEditorBlankCommandUsesBuiltin(t *testing.T) {
	m, root := newTestModel(t)
	m.cfg.Editor.Command = "   "

	if cmd := m.openEditor(filepath.Join(root, "alpha.md")); cmd == nil {
		t.Fatal("expected the built-in editor to open")
	}
	if _, ok := m.top().(*editorScreen); !ok {
		t.Errorf("top screen = %T, want editor", m.top())
	}
}

func TestWatchArmsOneWaiter(t *testing.T) {
	m, _ := newTestModel(t)
	w, err := explorer.NewWatcher()
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()
	m.watcher = w

	if cmd := m.watchCmd(); cmd == nil {
		t.Fatal("first watch should arm a waiter")
	}
	if cmd := m.watchCmd(); cmd != nil {
		t.Error("re-targeting must not arm a second waiter")
	}

	// Handling a change releases the armed slot and re-arms.
	if _, cmd := m.Update(dirChangedMsg{}); cmd == nil {
		t.Error("change handling should re-arm the waiter")
	}
}

func TestInterruptAsksBeforeQuitting(t *testing.T) {
	m, _ := newTestModel(t)

	if cmd := pressSpecial(m, tea.KeyCtrlC); cmd != nil {
		t.Fatal("ctrl+c should open the quit prompt, not quit outright")
	}
	if m.dialog == nil {
		t.Fatal("expected a quit prompt")
	}

	// Declining keeps the program running.
	press(m, "n")
	if m.dialog != nil {
		t.Error("cancel should dismiss the prompt")
	}
	if m.quitting {
		t.Error("cancel must not quit")
	}

	pressSpecial(m, tea.KeyCtrlC)
	cmd := press(m, "y")
	if cmd == nil || cmd() != tea.Quit() {
		t.Error("confirming the prompt should quit")
	}
}
