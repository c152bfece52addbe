package settings

import (
	"strings"
	"unicode"
)

// Group is an ordered collection of items under an optional title.
type Group struct {
	Title string
	Items []*Item
}

// Page is an ordered collection of groups.
type Page struct {
	Title string
	// Resettable gates Registry.Reset for this page.
	Resettable bool
	// DefaultOpen hints that navigation should show this page first.
	DefaultOpen bool
	Groups      []Group
}

// ID returns the page identifier used for lookups: the title lower-cased
// with runs of non-alphanumerics collapsed to a single dash.
func (p *Page) ID() string {
	return slug(p.Title)
}

// Items returns the page items in declaration order.
func (p *Page) Items() []*Item {
	var items []*Item
	for _, g := range p.Groups {
		items = append(items, g.Items...)
	}
	return items
}

// Item returns the first item whose label matches label, ignoring case.
func (p *Page) Item(label string) (*Item, bool) {
	for _, item := range p.Items() {
		if item.label != "" && strings.EqualFold(item.label, strings.TrimSpace(label)) {
			return item, true
		}
	}
	return nil, false
}

func (p *Page) validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return &ConfigError{Err: ErrEmptyTitle}
	}
	for _, g := range p.Groups {
		for _, item := range g.Items {
			if item == nil {
				return &ConfigError{Page: p.Title, Group: g.Title, Err: ErrNilItem}
			}
			if err := item.validate(p.Resettable); err != nil {
				return &ConfigError{Page: p.Title, Group: g.Title, Item: item.label, Err: err}
			}
		}
	}
	return nil
}

func slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			dash = false
			b.WriteRune(r)
			continue
		}
		dash = true
	}
	return b.String()
}
