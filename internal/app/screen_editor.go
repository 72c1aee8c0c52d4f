package app

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/codinganovel/mdns/internal/editor"
	"github.com/codinganovel/mdns/internal/keymap"
	"github.com/codinganovel/mdns/internal/ui"
)

// editorScreen edits one file in a textarea bound to an editor session.
// Closing a dirty session always goes through the save prompt; there is
// no path that silently drops edits.
type editorScreen struct {
	session *editor.Session
	ta      textarea.Model
}

func newEditorScreen(m *Model, path string) (*editorScreen, error) {
	sess, err := editor.Load(path)
	if err != nil {
		return nil, err
	}

	ta := textarea.New()
	ta.SetValue(sess.Buffer())
	ta.CharLimit = 0
	ta.ShowLineNumbers = false
	ta.Focus()
	if m.width > 0 {
		ta.SetWidth(m.width - 2)
		ta.SetHeight(m.height - 3)
	}
	// SetValue leaves the cursor at the end; notes open at the top.
	for i := 0; i < strings.Count(sess.Buffer(), "\n")+1; i++ {
		ta.CursorUp()
	}
	ta.SetCursor(0)

	return &editorScreen{session: sess, ta: ta}, nil
}

func (s *editorScreen) context() string { return keymap.ContextEditor }

func (s *editorScreen) name() string { return filepath.Base(s.session.Path()) }

func (s *editorScreen) dirty() bool { return s.session.Dirty() }

func (s *editorScreen) save() error {
	s.session.SetBuffer(s.ta.Value())
	return s.session.Save()
}

func (s *editorScreen) discard() {
	s.session.Discard()
	s.ta.SetValue(s.session.Buffer())
}

func (s *editorScreen) update(m *Model, msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.ta.SetWidth(msg.Width - 2)
		s.ta.SetHeight(msg.Height - 3)
		return nil, false
	case tea.KeyMsg:
		return s.updateKey(m, msg)
	}
	var cmd tea.Cmd
	s.ta, cmd = s.ta.Update(msg)
	return cmd, false
}

func (s *editorScreen) updateKey(m *Model, msg tea.KeyMsg) (tea.Cmd, bool) {
	key := msg.String()

	if command, ok := m.keys.LookupExact(keymap.ContextEditor, key); ok {
		switch command {
		case "save":
			if err := s.save(); err != nil {
				return toastError(err.Error()), false
			}
			return toast("saved " + s.name()), false
		case "close":
			return s.close(m)
		case "copy":
			s.session.SetBuffer(s.ta.Value())
			if err := s.session.CopyToClipboard(); err != nil {
				return toastError(err.Error()), false
			}
			return toast("copied to clipboard"), false
		}
	}

	// Control chords may still quick-launch a module; every printable
	// key belongs to the text.
	if strings.HasPrefix(key, "ctrl+") {
		if command, ok := m.keys.Lookup(keymap.ContextGlobal, key); ok {
			s.session.SetBuffer(s.ta.Value())
			if cmd, handled := m.handleCommand(command); handled {
				return cmd, false
			}
		}
	}

	var cmd tea.Cmd
	s.ta, cmd = s.ta.Update(msg)
	s.session.SetBuffer(s.ta.Value())
	return cmd, false
}

// close pops the editor, prompting when edits would be lost.
func (s *editorScreen) close(m *Model) (tea.Cmd, bool) {
	s.session.SetBuffer(s.ta.Value())
	if !s.session.Dirty() {
		return nil, true
	}

	m.showDialog(ui.NewSavePrompt(s.name()), func(m *Model, result string) tea.Cmd {
		switch result {
		case "save":
			if err := s.save(); err != nil {
				return toastError(err.Error())
			}
			m.pop()
			m.explorer.Refresh()
			return toast("saved " + s.name())
		case "discard":
			s.discard()
			m.pop()
			m.explorer.Refresh()
		}
		return nil
	})
	return nil, false
}

func (s *editorScreen) view(m *Model) string {
	return s.ta.View()
}

func (s *editorScreen) title() string {
	if s.dirty() {
		return s.name() + " [+]"
	}
	return s.name()
}
