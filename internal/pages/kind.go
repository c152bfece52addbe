package pages

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind is returned by ParseKind for names that match no page.
var ErrUnknownKind = errors.New("unknown page")

// ErrNotImplemented is returned when opening a page that has no view yet.
var ErrNotImplemented = errors.New("page not implemented yet")

// Kind identifies a top-level page of the file manager.
type Kind int

const (
	Explorer Kind = iota
	Search
	Git
	S3
	Extensions
	Settings
	KeyMap
	Themes
	IconThemes
)

// Kinds returns every page kind in navigation order.
func Kinds() []Kind {
	return []Kind{Explorer, Search, Git, S3, Extensions, Settings, KeyMap, Themes, IconThemes}
}

// Label returns the display name of the page.
func (k Kind) Label() string {
	switch k {
	case Explorer:
		return "Explorer"
	case Search:
		return "Search"
	case Git:
		return "Git"
	case S3:
		return "S3"
	case Extensions:
		return "Extensions"
	case Settings:
		return "Settings"
	case KeyMap:
		return "Keymap"
	case Themes:
		return "Themes"
	case IconThemes:
		return "Icon Themes"
	default:
		return "Unknown"
	}
}

// Description returns a short summary shown next to the page in menus.
func (k Kind) Description() string {
	switch k {
	case Explorer:
		return "Browse local files"
	case Search:
		return "Find files by name and content"
	case Git:
		return "Repository status and history"
	case S3:
		return "Browse object storage buckets"
	case Extensions:
		return "Manage extensions"
	case Settings:
		return "Application preferences"
	case KeyMap:
		return "Keyboard shortcuts"
	case Themes:
		return "Color themes"
	case IconThemes:
		return "File icon sets"
	default:
		return ""
	}
}

// ID returns the command-line name of the page.
func (k Kind) ID() string {
	return strings.ReplaceAll(strings.ToLower(k.Label()), " ", "-")
}

// String returns the page ID.
func (k Kind) String() string {
	return k.ID()
}

// Implemented reports whether the page has a view.
func (k Kind) Implemented() bool {
	return k == Settings
}

// ParseKind matches s against page IDs and labels, ignoring case.
func ParseKind(s string) (Kind, error) {
	want := strings.TrimSpace(s)
	for _, k := range Kinds() {
		if strings.EqualFold(want, k.ID()) || strings.EqualFold(want, k.Label()) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}
