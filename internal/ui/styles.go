// Package ui provides Charm-based UI components for nohrs
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Active palette colors. ApplyPalette replaces them.
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Info       lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
	Muted      lipgloss.Color
	Background lipgloss.Color
	Foreground lipgloss.Color
	Border     lipgloss.Color
	Highlight  lipgloss.Color

	Bold lipgloss.Style

	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	Tagline      lipgloss.Style
	SuccessStyle lipgloss.Style
	WarningStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	MutedStyle   lipgloss.Style
	HeaderStyle  lipgloss.Style

	InfoBox  lipgloss.Style
	ErrorBox lipgloss.Style

	StatusSuccess lipgloss.Style
	StatusWarning lipgloss.Style
	StatusError   lipgloss.Style
	StatusPending lipgloss.Style

	activePalette Palette
)

func init() {
	ApplyPalette(DefaultPalette())
}

// ApplyPalette switches the active colors and rebuilds every style.
func ApplyPalette(p Palette) {
	if p.Disabled {
		p = Palette{Name: p.Name, Disabled: true}
	}
	activePalette = p

	Primary = p.Primary
	Secondary = p.Secondary
	Accent = p.Accent
	Info = p.Info
	Success = p.Success
	Warning = p.Warning
	Error = p.Error
	Muted = p.Muted
	Background = p.Background
	Foreground = p.Foreground
	Border = p.Border
	Highlight = p.Highlight

	Bold = lipgloss.NewStyle().Bold(true)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
		Foreground(Secondary).
		Italic(true)

	Tagline = lipgloss.NewStyle().
		Foreground(Muted).
		Italic(true)

	SuccessStyle = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	WarningStyle = lipgloss.NewStyle().
		Foreground(Warning)

	ErrorStyle = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	MutedStyle = lipgloss.NewStyle().
		Foreground(Muted)

	HeaderStyle = lipgloss.NewStyle().
		Foreground(Background).
		Background(Primary).
		Padding(0, 1).
		Bold(true)
	if p.Disabled {
		HeaderStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	}

	InfoBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)

	ErrorBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Error).
		Padding(0, 1)

	StatusSuccess = lipgloss.NewStyle().Foreground(Success).SetString("✓")
	StatusWarning = lipgloss.NewStyle().Foreground(Warning).SetString("!")
	StatusError = lipgloss.NewStyle().Foreground(Error).SetString("✗")
	StatusPending = lipgloss.NewStyle().Foreground(Muted).SetString("○")
}

// ActivePalette returns the palette last passed to ApplyPalette.
func ActivePalette() Palette {
	return activePalette
}

// PrimaryStyle returns a bold style in the primary color.
func PrimaryStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Primary).Bold(true)
}

// AccentStyle returns a bold style in the accent color.
func AccentStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Accent).Bold(true)
}

// HintStyle is used for key hints and secondary notes.
func HintStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Muted).Italic(true)
}

// Header renders a screen title bar.
func Header(title string) string {
	return HeaderStyle.Render(" " + title + " ")
}

// Banner returns the nohrs wordmark
func Banner() string {
	banner := `
 ┳┓┏┓┓┏┳┓┏┓
 ┃┃┃┃┣┫┣┫┗┓
 ┛┗┗┛┛┗┛┗┗┛`
	return PrimaryStyle().Render(banner)
}
