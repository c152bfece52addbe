package cmd

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/huh"
)

// pageFormKeyMap returns huh's bindings with esc leaving the page form.
// q stays a normal key so it can be typed into text and number fields.
func pageFormKeyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "back to page"),
	)
	return km
}
