// Package styles centralizes the color palette and lipgloss styles
// shared across screens.
package styles

import "github.com/charmbracelet/lipgloss"

// Color palette - default dark theme
var (
	// Primary colors
	Primary = lipgloss.Color("#0066CC") // Blue
	Accent  = lipgloss.Color("#0099FF") // Bright blue

	// Status colors
	Success = lipgloss.Color("#10B981") // Green
	Warning = lipgloss.Color("#F59E0B") // Amber
	Error   = lipgloss.Color("#EF4444") // Red

	// Text colors
	TextPrimary   = lipgloss.Color("#F9FAFB")
	TextSecondary = lipgloss.Color("#9CA3AF")
	TextMuted     = lipgloss.Color("#6B7280")

	// Background colors
	BgPrimary   = lipgloss.Color("#111827")
	BgSecondary = lipgloss.Color("#1F2937")
	BgSelected  = lipgloss.Color("#0066CC")

	// Border colors
	BorderNormal = lipgloss.Color("#374151")
	BorderActive = lipgloss.Color("#0099FF")
)

// Chrome styles
var (
	// Header is the top bar with the current directory path.
	Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary).
		Background(Primary).
		Padding(0, 1)

	// Footer holds key hints and transient status text.
	Footer = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Padding(0, 1)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary)

	Muted = lipgloss.NewStyle().
		Foreground(TextMuted)
)

// List styles
var (
	// Selected is the highlighted explorer row.
	Selected = lipgloss.NewStyle().
			Foreground(TextPrimary).
			Background(BgSelected).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(TextPrimary)

	Directory = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	Snippet = lipgloss.NewStyle().
		Foreground(TextMuted)

	// DeleteArmed marks a row primed for deletion.
	DeleteArmed = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Dialog styles
var (
	Dialog = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderActive).
		Padding(1, 2)

	DialogTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextPrimary).
			MarginBottom(1)

	ButtonActive = lipgloss.NewStyle().
			Foreground(TextPrimary).
			Background(Primary).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Foreground(TextSecondary).
			Background(BgSecondary).
			Padding(0, 2)
)

// Toast styles
var (
	ToastInfo = lipgloss.NewStyle().
			Foreground(TextPrimary).
			Background(BgSecondary).
			Padding(0, 1)

	ToastError = lipgloss.NewStyle().
			Foreground(TextPrimary).
			Background(Error).
			Bold(true).
			Padding(0, 1)
)
