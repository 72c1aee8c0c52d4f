package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/codinganovel/mdns/internal/keymap"
	"github.com/codinganovel/mdns/internal/styles"
)

// helpScreen lists the active bindings, grouped by screen. It reads
// keys from the registry so config overrides show up correctly.
type helpScreen struct {
	vp viewport.Model
}

func newHelpScreen(m *Model) *helpScreen {
	s := &helpScreen{vp: viewport.New(m.width, m.height-2)}
	s.vp.SetContent(helpText(m))
	return s
}

func (s *helpScreen) context() string { return keymap.ContextHelp }

func (s *helpScreen) update(m *Model, msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.vp.Width = msg.Width
		s.vp.Height = msg.Height - 2
		return nil, false
	case tea.KeyMsg:
		if command, ok := m.keys.Lookup(keymap.ContextHelp, msg.String()); ok {
			switch command {
			case "back":
				return nil, true
			case "cursor-up":
				s.vp.LineUp(1)
				return nil, false
			case "cursor-down":
				s.vp.LineDown(1)
				return nil, false
			}
		}
	}
	var cmd tea.Cmd
	s.vp, cmd = s.vp.Update(msg)
	return cmd, false
}

func (s *helpScreen) view(m *Model) string { return s.vp.View() }

func (s *helpScreen) title() string { return "help" }

func helpText(m *Model) string {
	k := m.keys
	var b strings.Builder

	section := func(name string, rows [][2]string) {
		b.WriteString(styles.Title.Render(name))
		b.WriteString("\n")
		for _, r := range rows {
			fmt.Fprintf(&b, "  %-14s %s\n", r[0], r[1])
		}
		b.WriteString("\n")
	}

	ek := func(cmd string) string { return k.KeyFor(keymap.ContextExplorer, cmd) }

	section("Navigation", [][2]string{
		{"up/down, k/j", "move selection"},
		{ek("select"), "open file or directory"},
		{ek("preview"), "preview without editing"},
		{ek("parent"), "go to parent directory"},
		{"esc", "clear search, then go to parent"},
		{ek("search"), "search names and content"},
	})
	section("Files", [][2]string{
		{ek("new-note"), "new timestamped note"},
		{ek("new-untitled"), "new untitled note"},
		{ek("delete"), "delete (press twice)"},
		{ek("refresh"), "refresh listing"},
		{ek("toggle-hidden"), "toggle hidden files"},
	})
	section("Editor", [][2]string{
		{k.KeyFor(keymap.ContextEditor, "save"), "save"},
		{k.KeyFor(keymap.ContextEditor, "close"), "close (asks when unsaved)"},
		{k.KeyFor(keymap.ContextEditor, "copy"), "copy buffer to clipboard"},
	})

	var launches [][2]string
	for _, d := range m.registry.All() {
		launches = append(launches, [2]string{
			k.KeyFor(keymap.ContextGlobal, "launch-"+d.Name),
			"launch " + d.Name + " (" + d.Description + ")",
		})
	}
	launches = append(launches, [2]string{ek("modules"), "module menu"})
	section("Modules", launches)

	section("General", [][2]string{
		{k.KeyFor(keymap.ContextGlobal, "help"), "this help"},
		{ek("quit"), "quit"},
		{k.KeyFor(keymap.ContextGlobal, "quit"), "quit (asks first)"},
	})
	return b.String()
}
