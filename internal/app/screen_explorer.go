package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	runewidth "github.com/mattn/go-runewidth"

	"github.com/codinganovel/mdns/internal/config"
	"github.com/codinganovel/mdns/internal/explorer"
	"github.com/codinganovel/mdns/internal/keymap"
	"github.com/codinganovel/mdns/internal/styles"
	"github.com/codinganovel/mdns/internal/ui"
)

// explorerScreen is the root screen: the file list with fuzzy search.
type explorerScreen struct {
	search    textinput.Model
	searching bool
	offset    int // first visible row
}

func newExplorerScreen() *explorerScreen {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "search name or content"
	ti.CharLimit = 128
	return &explorerScreen{search: ti}
}

func (s *explorerScreen) context() string { return keymap.ContextExplorer }

func (s *explorerScreen) update(m *Model, msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.search.Width = msg.Width - 4
		return nil, false
	case tea.KeyMsg:
		if s.searching {
			return s.updateSearch(m, msg), false
		}
		return s.updateKey(m, msg)
	}
	return nil, false
}

// updateSearch runs while the search input has focus. The list stays
// live: arrows move the selection through the narrowing matches.
func (s *explorerScreen) updateSearch(m *Model, msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		s.searching = false
		s.search.Blur()
		s.search.SetValue("")
		m.explorer.SetQuery("")
		return nil
	case "enter":
		s.searching = false
		s.search.Blur()
		return nil
	case "up", "ctrl+p":
		m.explorer.Move(-1)
		return nil
	case "down", "ctrl+n":
		m.explorer.Move(1)
		return nil
	}
	var cmd tea.Cmd
	s.search, cmd = s.search.Update(msg)
	m.explorer.SetQuery(s.search.Value())
	return cmd
}

func (s *explorerScreen) updateKey(m *Model, msg tea.KeyMsg) (tea.Cmd, bool) {
	command, ok := m.keys.Lookup(keymap.ContextExplorer, msg.String())
	if !ok {
		return nil, false
	}

	switch command {
	case "cursor-up":
		m.explorer.Move(-1)
	case "cursor-down":
		m.explorer.Move(1)
	case "select":
		entry, err := m.explorer.Enter()
		if err != nil {
			return toastError(err.Error()), false
		}
		if entry != nil {
			return m.openEditor(entry.Path), false
		}
		return m.watchCmd(), false
	case "parent":
		if err := m.explorer.Parent(); err != nil {
			return toastError(err.Error()), false
		}
		return m.watchCmd(), false
	case "back":
		// esc clears an active search first; a second press ascends.
		if m.explorer.Query() != "" {
			s.search.SetValue("")
			m.explorer.SetQuery("")
			return nil, false
		}
		if err := m.explorer.Parent(); err != nil {
			return toastError(err.Error()), false
		}
		return m.watchCmd(), false
	case "search":
		s.searching = true
		return s.search.Focus(), false
	case "toggle-hidden":
		m.explorer.ToggleHidden()
		m.cfg.UI.ShowHidden = m.explorer.ShowHidden()
		if err := config.SaveShowHidden(m.cfg.UI.ShowHidden); err != nil {
			m.logger.Warn("could not persist hidden toggle", "error", err)
		}
	case "refresh":
		if err := m.explorer.Refresh(); err != nil {
			return toastError(err.Error()), false
		}
		return toast("refreshed"), false
	case "delete":
		return s.deleteSelected(m), false
	case "preview":
		if entry, ok := m.explorer.Selected(); ok && !entry.IsDir {
			return m.openPreview(entry.Path), false
		}
	case "new-note":
		return s.createNote(m, m.explorer.NewTimestampedNote), false
	case "new-untitled":
		return s.createNote(m, m.explorer.NewUntitledNote), false
	case "modules":
		m.push(newModulesScreen())
	default:
		cmd, _ := m.handleCommand(command)
		return cmd, false
	}
	return nil, false
}

func (s *explorerScreen) createNote(m *Model, create func() (string, error)) tea.Cmd {
	path, err := create()
	if err != nil {
		return toastError(err.Error())
	}
	s.search.SetValue("")
	return m.openEditor(path)
}

func (s *explorerScreen) deleteSelected(m *Model) tea.Cmd {
	entry, ok := m.explorer.Selected()
	if !ok {
		return nil
	}
	outcome, err := m.explorer.Delete()
	if err != nil {
		return toastError(err.Error())
	}
	switch outcome {
	case explorer.DeleteArmed:
		return toast("press d again to delete " + entry.Name)
	case explorer.DeleteDone:
		return toast("deleted " + entry.Name)
	case explorer.DeleteNeedsConfirm:
		m.showDialog(ui.NewDeleteDirPrompt(entry.Name), func(m *Model, result string) tea.Cmd {
			if result != "confirm" {
				m.explorer.Disarm()
				return nil
			}
			if err := m.explorer.DeleteRecursive(); err != nil {
				return toastError(err.Error())
			}
			return toast("deleted " + entry.Name)
		})
	}
	return nil
}

func (s *explorerScreen) view(m *Model) string {
	var b strings.Builder

	if s.searching || m.explorer.Query() != "" {
		b.WriteString(s.search.View())
		b.WriteString("\n")
	}

	entries := m.explorer.Visible()
	rows := m.height - 4 // header, footer, search line
	if rows < 1 {
		rows = 1
	}
	s.scrollTo(m.explorer.SelectedIndex(), rows)

	if len(entries) == 0 {
		b.WriteString(styles.Muted.Render("  (no files)"))
		return b.String()
	}

	armed, _ := m.explorer.Armed()
	end := s.offset + rows
	if end > len(entries) {
		end = len(entries)
	}
	for i := s.offset; i < end; i++ {
		b.WriteString(s.renderRow(m, entries[i], i == m.explorer.SelectedIndex(), entries[i].Path == armed))
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (s *explorerScreen) renderRow(m *Model, e explorer.Entry, selected, armed bool) string {
	name := e.Name
	if e.IsDir {
		name += "/"
	}
	nameWidth := 30
	if m.width > 0 && m.width < 60 {
		nameWidth = m.width / 2
	}
	name = runewidth.Truncate(name, nameWidth, "…")
	name = runewidth.FillRight(name, nameWidth)

	snippetWidth := m.width - nameWidth - 6
	snippet := ""
	if snippetWidth > 8 {
		snippet = runewidth.Truncate(m.explorer.Preview(e), snippetWidth, "…")
	}

	switch {
	case armed:
		return styles.DeleteArmed.Render("! " + name + " " + snippet)
	case selected:
		return styles.Selected.Render("> "+name) + " " + styles.Snippet.Render(snippet)
	case e.IsDir:
		return "  " + styles.Directory.Render(name) + " " + styles.Snippet.Render(snippet)
	default:
		return "  " + styles.Unselected.Render(name) + " " + styles.Snippet.Render(snippet)
	}
}

// scrollTo keeps the selection inside the visible window.
func (s *explorerScreen) scrollTo(selected, rows int) {
	if selected < 0 {
		s.offset = 0
		return
	}
	if selected < s.offset {
		s.offset = selected
	}
	if selected >= s.offset+rows {
		s.offset = selected - rows + 1
	}
}

func (s *explorerScreen) footer(m *Model) string {
	count := fmt.Sprintf("%d items", len(m.explorer.Visible()))
	hints := "enter open · / search · n new · p preview · m modules · ? help · q quit"
	return lipgloss.JoinHorizontal(lipgloss.Left, styles.Muted.Render(count), "  ", styles.Footer.Render(hints))
}
