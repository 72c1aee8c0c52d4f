package app

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/codinganovel/mdns/internal/ui"
)

const toastDuration = 3 * time.Second

// Update is the single event loop entry point. Dialogs capture keys
// first; everything else routes to the top screen.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		// Every stacked screen resizes, not just the visible one, so
		// reappearing screens are already laid out.
		var cmds []tea.Cmd
		for _, s := range m.stack {
			if cmd, _ := s.update(m, msg); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)

	case toastMsg:
		m.toastText, m.toastErr = msg.text, msg.isErr
		return m, clearToastAfter(toastDuration)

	case clearToastMsg:
		m.toastText = ""
		return m, nil

	case dirChangedMsg:
		m.watching = false
		if err := m.explorer.Refresh(); err != nil {
			m.logger.Warn("refresh after external change failed", "error", err)
		}
		return m, m.watchCmd()

	case childExitMsg:
		return m, m.afterChildExit(msg)

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	cmd, remove := m.top().update(m, msg)
	if remove {
		m.pop()
	}
	return m, cmd
}

func (m *Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if m.dialog != nil {
		result, done := m.dialog.Handle(key)
		if !done {
			return m, nil
		}
		m.dialog = nil
		resolve := m.dialogDone
		m.dialogDone = nil
		if resolve == nil {
			return m, nil
		}
		return m, resolve(m, result)
	}

	// The interrupt chord asks before leaving; every other path to quit
	// stays immediate. The editor owns ctrl+c itself (copy).
	if key == "ctrl+c" {
		if _, editing := m.top().(*editorScreen); !editing {
			m.showDialog(ui.NewQuitPrompt(), func(m *Model, result string) tea.Cmd {
				if result == "confirm" {
					m.quitting = true
					return tea.Quit
				}
				return nil
			})
			return m, nil
		}
	}

	cmd, remove := m.top().update(m, msg)
	if remove {
		m.pop()
		if err := m.explorer.Refresh(); err != nil {
			m.logger.Warn("refresh failed", "error", err)
		}
	}
	return m, cmd
}

// handleCommand runs the commands shared by every screen: quit, help,
// and the quick module launches. Screens call it for keys they do not
// consume themselves.
func (m *Model) handleCommand(cmd string) (tea.Cmd, bool) {
	switch {
	case cmd == "quit":
		m.quitting = true
		return tea.Quit, true
	case cmd == "help":
		if _, ok := m.top().(*helpScreen); ok {
			return nil, false
		}
		m.push(newHelpScreen(m))
		return nil, true
	case strings.HasPrefix(cmd, "launch-"):
		return m.requestLaunch(strings.TrimPrefix(cmd, "launch-")), true
	}
	return nil, false
}

// requestLaunch starts a module, first routing a dirty editor through
// the unsaved changes prompt. Cancel aborts the launch entirely.
func (m *Model) requestLaunch(name string) tea.Cmd {
	es := m.dirtySession()
	if es == nil {
		return m.launchCmd(name)
	}

	m.pendingLaunch = name
	m.showDialog(ui.NewSavePrompt(es.name()), func(m *Model, result string) tea.Cmd {
		pending := m.pendingLaunch
		m.pendingLaunch = ""
		switch result {
		case "save":
			if err := es.save(); err != nil {
				m.logger.Error("save before launch failed", "path", es.session.Path(), "error", err)
				return toastError(err.Error())
			}
			return m.launchCmd(pending)
		case "discard":
			es.discard()
			return m.launchCmd(pending)
		}
		return nil
	})
	return nil
}

// launchCmd hands the terminal to the module and resumes on its exit.
func (m *Model) launchCmd(name string) tea.Cmd {
	cmd, err := m.launcher.Command(name, nil, m.explorer.Dir())
	if err != nil {
		m.logger.Warn("launch failed", "name", name, "error", err)
		return toastError(err.Error())
	}
	m.logger.Info("launching module", "name", name)
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return childExitMsg{name: name, err: err}
	})
}

// afterChildExit refreshes the view once a module returns the terminal.
func (m *Model) afterChildExit(msg childExitMsg) tea.Cmd {
	if err := m.explorer.Refresh(); err != nil {
		m.logger.Warn("refresh after module exit failed", "error", err)
	}
	cmds := []tea.Cmd{m.watchCmd()}
	if msg.err != nil {
		m.logger.Warn("module exited with error", "name", msg.name, "error", msg.err)
		cmds = append(cmds, toastError(msg.name+": "+msg.err.Error()))
	} else {
		m.logger.Debug("module exited", "name", msg.name)
	}
	return tea.Batch(cmds...)
}

func (m *Model) showDialog(d dialogState, done func(*Model, string) tea.Cmd) {
	m.dialog = d
	m.dialogDone = done
}
