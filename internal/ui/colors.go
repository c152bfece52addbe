package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette is the set of colors every style is built from.
type Palette struct {
	Name       string
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
	// Disabled turns every style into plain text.
	Disabled bool
}

const (
	defaultThemeName = "aurora"
	lightThemeName   = "daylight"
)

// swatch lists colors in Palette field order, Primary through Highlight.
type swatch [12]string

func (s swatch) palette(name string) Palette {
	c := func(i int) lipgloss.Color { return lipgloss.Color(s[i]) }
	return Palette{
		Name:       name,
		Primary:    c(0),
		Secondary:  c(1),
		Accent:     c(2),
		Info:       c(3),
		Success:    c(4),
		Warning:    c(5),
		Error:      c(6),
		Muted:      c(7),
		Background: c(8),
		Foreground: c(9),
		Border:     c(10),
		Highlight:  c(11),
	}
}

// Dark palettes first; daylight is picked when Dark Mode is off.
var swatches = []struct {
	name   string
	colors swatch
}{
	{defaultThemeName, swatch{"#22D3EE", "#A78BFA", "#38BDF8", "#60A5FA", "#34D399", "#FBBF24", "#F87171", "#94A3B8", "#0B1120", "#E2E8F0", "#334155", "#7DD3FC"}},
	{"ember", swatch{"#FB923C", "#F472B6", "#FACC15", "#38BDF8", "#4ADE80", "#F59E0B", "#EF4444", "#A8A29E", "#1C1917", "#F5F5F4", "#57534E", "#FDBA74"}},
	{"mono", swatch{"#F4F4F5", "#D4D4D8", "#A1A1AA", "#E4E4E7", "#F4F4F5", "#A1A1AA", "#D4D4D8", "#71717A", "#09090B", "#F4F4F5", "#52525B", "#FFFFFF"}},
	{lightThemeName, swatch{"#0E7490", "#6D28D9", "#0369A1", "#1D4ED8", "#047857", "#B45309", "#B91C1C", "#64748B", "#F8FAFC", "#0F172A", "#CBD5E1", "#0891B2"}},
}

// ThemeNames returns the supported palette names.
func ThemeNames() []string {
	names := make([]string, len(swatches))
	for i, s := range swatches {
		names[i] = s.name
	}
	return names
}

// PaletteByName returns the named palette, or the default one for unknown names.
func PaletteByName(name string) Palette {
	want := strings.ToLower(strings.TrimSpace(name))
	for _, s := range swatches {
		if s.name == want {
			return s.colors.palette(s.name)
		}
	}
	return swatches[0].colors.palette(defaultThemeName)
}

// DefaultPalette returns the default dark palette.
func DefaultPalette() Palette {
	return PaletteByName(defaultThemeName)
}

// LightPalette returns the palette used when dark mode is off.
func LightPalette() Palette {
	return PaletteByName(lightThemeName)
}
