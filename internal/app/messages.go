package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// toastMsg sets the status-line notice.
type toastMsg struct {
	text  string
	isErr bool
}

// clearToastMsg clears an expired notice.
type clearToastMsg struct{}

// dirChangedMsg reports a filesystem change under the watched directory.
type dirChangedMsg struct{}

// childExitMsg is delivered when a handed-off process returns the
// terminal. err is nil on a zero exit status.
type childExitMsg struct {
	name string
	err  error
}

func toast(text string) tea.Cmd {
	return func() tea.Msg { return toastMsg{text: text} }
}

func toastError(text string) tea.Cmd {
	return func() tea.Msg { return toastMsg{text: text, isErr: true} }
}

func clearToastAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearToastMsg{} })
}
