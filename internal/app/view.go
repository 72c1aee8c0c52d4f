package app

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/charmbracelet/x/ansi"

	"github.com/codinganovel/mdns/internal/styles"
	"github.com/codinganovel/mdns/internal/ui"
)

// titled screens show their own name in the header; the explorer shows
// the current directory instead.
type titled interface {
	title() string
}

// View renders header, active screen, and footer, then composites any
// open dialog on top.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 {
		return "loading..."
	}

	frame := lipgloss.JoinVertical(lipgloss.Left,
		m.headerView(),
		lipgloss.NewStyle().Height(m.height-2).Render(m.top().view(m)),
		m.footerView(),
	)

	if m.dialog != nil {
		return ui.Overlay(frame, m.dialog.View(), m.width, m.height)
	}
	return frame
}

func (m *Model) headerView() string {
	label := m.explorer.Dir()
	if t, ok := m.top().(titled); ok {
		label = t.title()
	}
	text := "mdns · " + label
	return styles.Header.Width(m.width).Render(ansi.Truncate(text, m.width-2, "…"))
}

func (m *Model) footerView() string {
	if m.toastText != "" {
		if m.toastErr {
			return styles.ToastError.Render(m.toastText)
		}
		return styles.ToastInfo.Render(m.toastText)
	}
	switch s := m.top().(type) {
	case *explorerScreen:
		return s.footer(m)
	case *editorScreen:
		return styles.Footer.Render("ctrl+s save · ctrl+x/esc close · ctrl+c copy")
	case *previewScreen:
		return styles.Footer.Render("e edit · j/k scroll · esc back")
	default:
		return styles.Footer.Render("esc back · ? help")
	}
}
