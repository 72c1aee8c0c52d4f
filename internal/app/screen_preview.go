package app

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromastyles "github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/codinganovel/mdns/internal/fsops"
	"github.com/codinganovel/mdns/internal/keymap"
	"github.com/codinganovel/mdns/internal/styles"
)

// previewMaxBytes caps how much of a file the preview renders.
const previewMaxBytes = 100 * 1024

// previewScreen is a scrollable, read-only render of a file: glamour
// for markdown, chroma highlighting for recognized source, plain text
// otherwise.
type previewScreen struct {
	path      string
	raw       string
	truncated bool
	vp        viewport.Model
}

func newPreviewScreen(m *Model, path string) (*previewScreen, error) {
	content, truncated, err := fsops.ReadCapped(path, previewMaxBytes)
	if err != nil {
		return nil, err
	}

	s := &previewScreen{
		path:      path,
		raw:       content,
		truncated: truncated,
		vp:        viewport.New(m.width, m.height-2),
	}
	s.render(m)
	return s, nil
}

func (s *previewScreen) context() string { return keymap.ContextPreview }

func (s *previewScreen) update(m *Model, msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.vp.Width = msg.Width
		s.vp.Height = msg.Height - 2
		s.render(m)
		return nil, false
	case tea.KeyMsg:
		if command, ok := m.keys.Lookup(keymap.ContextPreview, msg.String()); ok {
			switch command {
			case "edit":
				m.pop()
				return m.openEditor(s.path), false
			case "back":
				return nil, true
			case "cursor-up":
				s.vp.LineUp(1)
				return nil, false
			case "cursor-down":
				s.vp.LineDown(1)
				return nil, false
			default:
				if cmd, handled := m.handleCommand(command); handled {
					return cmd, false
				}
			}
		}
	}
	var cmd tea.Cmd
	s.vp, cmd = s.vp.Update(msg)
	return cmd, false
}

func (s *previewScreen) view(m *Model) string {
	return s.vp.View()
}

func (s *previewScreen) title() string {
	name := filepath.Base(s.path)
	if s.truncated {
		return name + " (truncated)"
	}
	return name
}

// render fills the viewport for the current width.
func (s *previewScreen) render(m *Model) {
	width := s.vp.Width
	if width <= 0 {
		width = 80
	}

	var out string
	switch strings.ToLower(filepath.Ext(s.path)) {
	case ".md", ".markdown":
		out = renderMarkdown(s.raw, width, m.cfg.UI.Theme)
	default:
		out = highlightSource(s.path, s.raw)
	}
	if s.truncated {
		out += "\n" + styles.Muted.Render("--- preview truncated ---")
	}
	s.vp.SetContent(out)
}

func renderMarkdown(src string, width int, theme string) string {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if theme == "" || theme == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(theme))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return src
	}
	out, err := r.Render(src)
	if err != nil {
		return src
	}
	return out
}

func highlightSource(path, src string) string {
	lexer := lexers.Match(filepath.Base(path))
	if lexer == nil {
		return src
	}
	lexer = chroma.Coalesce(lexer)

	style := chromastyles.Get("monokai")
	if style == nil {
		style = chromastyles.Fallback
	}
	formatter := formatters.Get("terminal256")
	if formatter == nil {
		return src
	}

	iterator, err := lexer.Tokenise(nil, src)
	if err != nil {
		return src
	}
	var b strings.Builder
	if err := formatter.Format(&b, style, iterator); err != nil {
		return src
	}
	return b.String()
}
