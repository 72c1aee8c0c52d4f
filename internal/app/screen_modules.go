package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/codinganovel/mdns/internal/keymap"
	"github.com/codinganovel/mdns/internal/styles"
)

// modulesScreen is the launch menu: one row per companion program,
// fired by its menu key. Launching leaves the menu open so the user
// lands back on it when the module exits.
type modulesScreen struct{}

func newModulesScreen() *modulesScreen { return &modulesScreen{} }

func (s *modulesScreen) context() string { return keymap.ContextModules }

func (s *modulesScreen) update(m *Model, msg tea.Msg) (tea.Cmd, bool) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil, false
	}
	command, bound := m.keys.Lookup(keymap.ContextModules, key.String())
	if !bound {
		return nil, false
	}
	if command == "back" {
		return nil, true
	}
	cmd, handled := m.handleCommand(command)
	if handled {
		return cmd, false
	}
	return nil, false
}

func (s *modulesScreen) view(m *Model) string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Modules"))
	b.WriteString("\n\n")
	for _, d := range m.registry.All() {
		status := ""
		if _, err := m.registry.Resolve(d.Name); err != nil {
			status = styles.Muted.Render("  (not installed)")
		}
		b.WriteString("  ")
		b.WriteString(styles.Selected.Render(" " + d.Key + " "))
		b.WriteString("  ")
		b.WriteString(d.Name)
		b.WriteString(strings.Repeat(" ", 10-len(d.Name)))
		b.WriteString(styles.Muted.Render(d.Description))
		b.WriteString(status)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.Muted.Render("  modules run in " + m.explorer.Dir()))
	b.WriteString("\n")
	b.WriteString(styles.Muted.Render("  install to ~/.local/bin or next to this binary"))
	return b.String()
}

func (s *modulesScreen) title() string { return "modules" }
