// Package render draws settings registries in the terminal.
//
// Value fields become huh form fields; custom fields are drawn from the
// elements their callbacks return. Text, Link and Stack are the element
// types this renderer understands. Any other value is printed with fmt.
package render

import (
	"fmt"
	"strings"

	"github.com/linruohan/nohrs/internal/settings"
)

// Text is a block of text with an optional heading.
type Text struct {
	Title string
	Body  string
	// Centered centers the block within the render width.
	Centered bool
}

// Link is an element that opens URL in the platform browser.
type Link struct {
	Label string
	URL   string
}

// RenderField lets a Link be used directly as a custom field.
func (l Link) RenderField(settings.RenderOptions) settings.Element {
	return l
}

// Stack draws its elements one after another.
type Stack []settings.Element

// OpenURL returns a custom field showing a button that opens url.
func OpenURL(label, url string) settings.Field {
	return settings.ElementField(Link{Label: label, URL: url})
}

// Links returns every link drawn by the custom fields of a page, in
// declaration order.
func Links(reg *settings.Registry, pageID string) ([]Link, error) {
	page, err := reg.Page(pageID)
	if err != nil {
		return nil, err
	}
	var links []Link
	for _, item := range page.Items() {
		if !item.Field().IsCustom() {
			continue
		}
		links = appendLinks(links, item.Field().Render(reg.RenderOptions(item)))
	}
	return links, nil
}

func appendLinks(links []Link, e settings.Element) []Link {
	switch v := e.(type) {
	case Link:
		return append(links, v)
	case *Link:
		if v != nil {
			return append(links, *v)
		}
	case Stack:
		for _, child := range v {
			links = appendLinks(links, child)
		}
	}
	return links
}

// plainElement returns e as unstyled text.
func plainElement(e settings.Element) string {
	switch v := e.(type) {
	case nil:
		return ""
	case string:
		return v
	case Text:
		return joinNonEmpty("\n", v.Title, v.Body)
	case Link:
		return fmt.Sprintf("[%s] %s", v.Label, v.URL)
	case *Link:
		if v == nil {
			return ""
		}
		return plainElement(*v)
	case Stack:
		parts := make([]string, 0, len(v))
		for _, child := range v {
			parts = append(parts, plainElement(child))
		}
		return joinNonEmpty("\n", parts...)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func joinNonEmpty(sep string, parts ...string) string {
	out := parts[:0:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}
