package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/codinganovel/mdns/internal/styles"
)

// Button is one dialog choice. Result is what Handle returns when the
// button fires; Key is an optional hotkey that fires it directly.
type Button struct {
	Label  string
	Result string
	Key    string
}

// Dialog is a modal question with a row of buttons. Navigation wraps:
// left/right and tab move the focus, enter fires the focused button,
// esc always resolves to "cancel".
type Dialog struct {
	Title    string
	Message  string
	Buttons  []Button
	Danger   bool
	selected int
}

// NewDialog builds a dialog with the first button focused.
func NewDialog(title, message string, buttons ...Button) *Dialog {
	return &Dialog{Title: title, Message: message, Buttons: buttons}
}

// NewSavePrompt is the three-way close prompt for a dirty file.
func NewSavePrompt(name string) *Dialog {
	return NewDialog(
		"Unsaved changes",
		name+" has unsaved changes.",
		Button{Label: "Save", Result: "save", Key: "s"},
		Button{Label: "Don't Save", Result: "discard", Key: "d"},
		Button{Label: "Cancel", Result: "cancel", Key: "c"},
	)
}

// NewQuitPrompt confirms leaving the program on the interrupt chord.
func NewQuitPrompt() *Dialog {
	return NewDialog(
		"Quit",
		"Quit mdns?",
		Button{Label: "Quit", Result: "confirm", Key: "y"},
		Button{Label: "Cancel", Result: "cancel", Key: "n"},
	)
}

// NewDeleteDirPrompt confirms recursive removal of a directory.
func NewDeleteDirPrompt(name string) *Dialog {
	d := NewDialog(
		"Delete directory",
		"Delete "+name+" and everything inside it?",
		Button{Label: "Delete", Result: "confirm", Key: "y"},
		Button{Label: "Cancel", Result: "cancel", Key: "n"},
	)
	d.Danger = true
	d.selected = 1 // destructive default is Cancel
	return d
}

// Handle processes one key press. done is true when the dialog has
// resolved; result is then the fired button's Result.
func (d *Dialog) Handle(key string) (result string, done bool) {
	switch key {
	case "left", "shift+tab":
		d.selected = (d.selected - 1 + len(d.Buttons)) % len(d.Buttons)
		return "", false
	case "right", "tab":
		d.selected = (d.selected + 1) % len(d.Buttons)
		return "", false
	case "enter":
		return d.Buttons[d.selected].Result, true
	case "esc":
		return "cancel", true
	}
	for _, b := range d.Buttons {
		if b.Key != "" && b.Key == key {
			return b.Result, true
		}
	}
	return "", false
}

// Selected returns the focused button index.
func (d *Dialog) Selected() int { return d.selected }

// View renders the dialog box.
func (d *Dialog) View() string {
	title := styles.DialogTitle.Render(d.Title)
	if d.Danger {
		title = styles.DialogTitle.Foreground(styles.Error).Render(d.Title)
	}

	row := make([]string, 0, len(d.Buttons))
	for i, b := range d.Buttons {
		style := styles.ButtonInactive
		if i == d.selected {
			style = styles.ButtonActive
		}
		row = append(row, style.Render(b.Label))
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Center, joinWithGap(row)...)

	body := lipgloss.JoinVertical(lipgloss.Left, title, d.Message, "", buttons)
	return styles.Dialog.Render(body)
}

func joinWithGap(parts []string) []string {
	out := make([]string, 0, len(parts)*2-1)
	for i, p := range parts {
		if i > 0 {
			out = append(out, "  ")
		}
		out = append(out, p)
	}
	return out
}
