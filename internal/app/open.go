package app

import (
	"os/exec"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

// openEditor opens path for editing: the built-in editor by default, or
// the configured external command with the terminal handed over.
func (m *Model) openEditor(path string) tea.Cmd {
	if parts := strings.Fields(m.cfg.Editor.Command); len(parts) > 0 {
		cmd := exec.Command(parts[0], append(parts[1:], path)...)
		cmd.Dir = m.explorer.Dir()
		m.logger.Info("opening external editor", "command", parts[0], "path", path)
		return tea.ExecProcess(cmd, func(err error) tea.Msg {
			return childExitMsg{name: parts[0], err: err}
		})
	}

	es, err := newEditorScreen(m, path)
	if err != nil {
		return toastError(err.Error())
	}
	m.push(es)
	return textarea.Blink
}

// openPreview pushes a read-only rendered view of path.
func (m *Model) openPreview(path string) tea.Cmd {
	ps, err := newPreviewScreen(m, path)
	if err != nil {
		return toastError(err.Error())
	}
	m.push(ps)
	return nil
}
