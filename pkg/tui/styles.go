package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/uikit/internal/dialog"
)

// Colors
var (
	Primary      = lipgloss.Color("212")
	Error        = lipgloss.Color("196")
	Muted        = lipgloss.Color("241")
	BorderNormal = lipgloss.Color("240")
)

// Button styles
var (
	Button = lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Background(lipgloss.Color("238")).
		Padding(0, 2)

	ButtonFocused = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(Primary).
			Bold(true).
			Padding(0, 2)

	ButtonPrimary = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("203")).
			Padding(0, 2)

	ButtonPrimaryFocused = lipgloss.NewStyle().
				Foreground(lipgloss.Color("255")).
				Background(Error).
				Bold(true).
				Padding(0, 2)
)

// Dialog frame and text
var (
	ModalBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderNormal).
			Padding(1, 2)

	ModalTitle = lipgloss.NewStyle().Bold(true)
	MutedText  = lipgloss.NewStyle().Foreground(Muted)
	Body       = lipgloss.NewStyle()

	InputNormal = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(BorderNormal)

	InputInvalid = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(Error)

	ErrorText = lipgloss.NewStyle().Foreground(Error)
)

// Pagination
var (
	PageLink     = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	PageFocused  = lipgloss.NewStyle().Foreground(Primary).Underline(true)
	PageActive   = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(Primary).Bold(true)
	PageEllipsis = lipgloss.NewStyle().Foreground(Muted)
	PageDisabled = lipgloss.NewStyle().Foreground(Muted)
)

// buttonStyle picks the style for a button by class and focus.
func buttonStyle(b dialog.Button, focused bool) lipgloss.Style {
	if b.Class == dialog.ClassPrimary {
		if focused {
			return ButtonPrimaryFocused
		}
		return ButtonPrimary
	}
	if focused {
		return ButtonFocused
	}
	return Button
}
