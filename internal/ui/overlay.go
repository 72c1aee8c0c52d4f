// Package ui provides shared rendering helpers: dialog boxes and the
// modal overlay compositor.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// DimStyle is the gray applied to content behind a dialog. Existing
// ANSI codes are stripped first; SGR faint does not combine reliably
// with prior color codes in most terminals.
var DimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))

// Overlay centers dialog on top of background, dimming everything the
// dialog does not cover. Both inputs are full-frame strings; the result
// is exactly height lines.
func Overlay(background, dialog string, width, height int) string {
	bgLines := strings.Split(background, "\n")
	dlgLines := strings.Split(dialog, "\n")

	dlgWidth := 0
	for _, line := range dlgLines {
		if w := ansi.StringWidth(line); w > dlgWidth {
			dlgWidth = w
		}
	}
	startX := (width - dlgWidth) / 2
	startY := (height - len(dlgLines)) / 2
	if startX < 0 {
		startX = 0
	}
	if startY < 0 {
		startY = 0
	}

	out := make([]string, 0, height)
	for y := 0; y < height; y++ {
		bg := ""
		if y < len(bgLines) {
			bg = bgLines[y]
		}
		row := y - startY
		if row < 0 || row >= len(dlgLines) {
			out = append(out, DimStyle.Render(ansi.Strip(bg)))
			continue
		}
		out = append(out, compositeRow(bg, dlgLines[row], startX, dlgWidth, width))
	}
	return strings.Join(out, "\n")
}

// compositeRow builds one overlaid line: dimmed background left of the
// dialog, the dialog line itself, dimmed background to its right.
func compositeRow(bg, dlg string, startX, dlgWidth, totalWidth int) string {
	stripped := ansi.Strip(bg)
	bgWidth := ansi.StringWidth(stripped)

	var b strings.Builder
	if startX > 0 {
		left := ansi.Truncate(stripped, startX, "")
		b.WriteString(DimStyle.Render(left))
		if pad := startX - ansi.StringWidth(left); pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
	}
	b.WriteString(dlg)
	if right := startX + dlgWidth; right < totalWidth && bgWidth > right {
		b.WriteString(DimStyle.Render(ansi.Cut(stripped, right, bgWidth)))
	}
	return b.String()
}
