// Package app wires the screens together: one bubbletea model owning a
// screen stack, a modal dialog slot, and the shared explorer, keymap,
// and module launcher state.
package app

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/codinganovel/mdns/internal/config"
	"github.com/codinganovel/mdns/internal/explorer"
	"github.com/codinganovel/mdns/internal/keymap"
	"github.com/codinganovel/mdns/internal/module"
)

// screen is one layer of the UI stack. The bottom layer is always the
// explorer; editor, preview, modules, and help push on top.
type screen interface {
	// context names the keymap context consulted for this screen.
	context() string
	// update handles a message. Returning remove=true pops the screen.
	update(m *Model, msg tea.Msg) (cmd tea.Cmd, remove bool)
	// view renders the screen body, between header and footer.
	view(m *Model) string
}

// Model is the root bubbletea model.
type Model struct {
	cfg      *config.Config
	keys     *keymap.Registry
	explorer *explorer.Explorer
	watcher  *explorer.Watcher
	registry *module.Registry
	launcher *module.Launcher
	logger   *slog.Logger

	width  int
	height int

	stack []screen

	// dialog, when set, captures all key input. dialogDone resolves it.
	dialog     dialogState
	dialogDone func(m *Model, result string) tea.Cmd

	toastText string
	toastErr  bool

	// pendingLaunch holds a module launch deferred behind the unsaved
	// changes prompt.
	pendingLaunch string

	// watching is true while a waiter is blocked on watcher.Events.
	watching bool

	quitting bool
}

type dialogState interface {
	Handle(key string) (string, bool)
	View() string
}

// New assembles the model. The explorer must already be open on its
// starting directory; watcher may be nil when inotify is unavailable.
func New(cfg *config.Config, ex *explorer.Explorer, w *explorer.Watcher, reg *module.Registry, launcher *module.Launcher, logger *slog.Logger) *Model {
	keys := keymap.NewRegistry()
	keys.ApplyOverrides(cfg.Keymap.Overrides)

	return &Model{
		cfg:      cfg,
		keys:     keys,
		explorer: ex,
		watcher:  w,
		registry: reg,
		launcher: launcher,
		logger:   logger,
		stack:    []screen{newExplorerScreen()},
	}
}

// Init starts the directory watch.
func (m *Model) Init() tea.Cmd {
	return m.watchCmd()
}

func (m *Model) top() screen { return m.stack[len(m.stack)-1] }

func (m *Model) push(s screen) { m.stack = append(m.stack, s) }

func (m *Model) pop() {
	if len(m.stack) > 1 {
		m.stack = m.stack[:len(m.stack)-1]
	}
}

// watchCmd points the watcher at the explorer's directory and arms the
// wait for one change notification. At most one waiter is ever blocked
// on the events channel: re-targeting calls return nil until the
// dirChangedMsg handler re-arms.
func (m *Model) watchCmd() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	if err := m.watcher.Watch(m.explorer.Dir()); err != nil {
		m.logger.Warn("watch failed", "dir", m.explorer.Dir(), "error", err)
	}
	if m.watching {
		return nil
	}
	m.watching = true
	return func() tea.Msg {
		if _, ok := <-m.watcher.Events; !ok {
			return nil
		}
		return dirChangedMsg{}
	}
}

// dirtySession returns the topmost editor screen with unsaved changes.
func (m *Model) dirtySession() *editorScreen {
	for i := len(m.stack) - 1; i >= 0; i-- {
		if es, ok := m.stack[i].(*editorScreen); ok && es.dirty() {
			return es
		}
	}
	return nil
}
