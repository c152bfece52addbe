package ui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// HuhTheme returns the settings form theme for the active palette. With
// colors disabled it is huh's plain base theme.
func HuhTheme() *huh.Theme {
	t := huh.ThemeBase()
	if activePalette.Disabled {
		return t
	}
	p := activePalette

	focused := &t.Focused
	focused.Base = focused.Base.BorderForeground(p.Primary)
	focused.Title = lipgloss.NewStyle().Foreground(p.Primary).Bold(true)
	focused.NoteTitle = focused.Title.MarginBottom(1)
	focused.Description = lipgloss.NewStyle().Foreground(p.Muted)
	focused.ErrorIndicator = focused.ErrorIndicator.Foreground(p.Error)
	focused.ErrorMessage = focused.ErrorMessage.Foreground(p.Error)

	accent := lipgloss.NewStyle().Foreground(p.Accent)
	focused.SelectSelector = accent.SetString("› ")
	focused.NextIndicator = accent
	focused.PrevIndicator = accent
	focused.SelectedOption = accent
	focused.SelectedPrefix = accent
	focused.Option = lipgloss.NewStyle().Foreground(p.Foreground)
	focused.UnselectedOption = focused.Option
	focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(p.Muted)

	// Switch and checkbox items render as Confirm buttons.
	focused.FocusedButton = lipgloss.NewStyle().
		Foreground(p.Background).
		Background(p.Accent).
		Padding(0, 2).
		MarginRight(1)
	focused.BlurredButton = lipgloss.NewStyle().
		Foreground(p.Muted).
		Padding(0, 2).
		MarginRight(1)

	focused.TextInput.Cursor = focused.TextInput.Cursor.Foreground(p.Highlight)
	focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(p.Muted)
	focused.TextInput.Prompt = accent

	t.Blurred = t.Focused
	t.Blurred.Base = t.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.Title = lipgloss.NewStyle().Foreground(p.Foreground)
	t.Blurred.NextIndicator = lipgloss.NewStyle()
	t.Blurred.PrevIndicator = lipgloss.NewStyle()
	return t
}
