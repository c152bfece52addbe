package ui

import "github.com/charmbracelet/lipgloss"

// Preferences controls runtime UI settings.
type Preferences struct {
	Theme   string
	Dense   bool
	NoColor bool
	// Dark selects the dark variant. AutoDark overrides it with the
	// terminal background.
	Dark     bool
	AutoDark bool
}

// CurrentPreferences holds the active UI preferences.
var CurrentPreferences = Preferences{
	Theme: defaultThemeName,
	Dark:  true,
}

var hasDarkBackground = lipgloss.HasDarkBackground

// ApplyPreferences updates UI preferences and active palette.
func ApplyPreferences(p Preferences) {
	if p.Theme == "" {
		p.Theme = defaultThemeName
	}
	CurrentPreferences = p
	ApplyTheme(p.Theme, p.NoColor, p.IsDark())
}

// IsDark reports whether the dark palette should be used.
func (p Preferences) IsDark() bool {
	if p.AutoDark {
		return hasDarkBackground()
	}
	return p.Dark
}

// ApplyTheme switches the color palette for the TUI.
func ApplyTheme(theme string, noColor bool, dark bool) {
	palette := PaletteByName(theme)
	if !dark {
		palette = LightPalette()
	}
	palette.Disabled = noColor
	ApplyPalette(palette)
}
