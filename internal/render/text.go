package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/linruohan/nohrs/internal/settings"
	"github.com/linruohan/nohrs/internal/ui"
)

// WidthFor returns the render width for a size hint.
func WidthFor(size settings.Size) int {
	switch size {
	case settings.SizeLarge:
		return 88
	case settings.SizeSmall:
		return 64
	case settings.SizeXSmall:
		return 52
	default:
		return 76
	}
}

// WriteText prints the given pages, or every page when ids is empty.
func WriteText(w io.Writer, reg *settings.Registry, ids ...string) error {
	pages := reg.Pages()
	if len(ids) > 0 {
		pages = pages[:0:0]
		for _, id := range ids {
			p, err := reg.Page(id)
			if err != nil {
				return err
			}
			pages = append(pages, p)
		}
	}

	for i, p := range pages {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, PageText(reg, p)); err != nil {
			return err
		}
	}
	return nil
}

// PageText renders one page as styled text.
func PageText(reg *settings.Registry, page *settings.Page) string {
	width := WidthFor(reg.Presentation.Size)

	heading := ui.Title.Render(page.Title)
	if page.Resettable {
		heading += " " + ui.MutedStyle.Render("(resettable)")
	}
	blocks := []string{heading}

	for gi := range page.Groups {
		group := &page.Groups[gi]
		lines := make([]string, 0, len(group.Items)+1)
		if group.Title != "" {
			lines = append(lines, ui.AccentStyle().Render(group.Title))
		}
		for _, item := range group.Items {
			lines = append(lines, itemText(reg, item, width-4))
		}
		blocks = append(blocks, groupStyle(reg.Presentation, width).Render(strings.Join(lines, "\n")))
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func groupStyle(p settings.Presentation, width int) lipgloss.Style {
	style := lipgloss.NewStyle().Width(width)
	switch p.GroupVariant {
	case settings.GroupOutline:
		style = style.Border(lipgloss.RoundedBorder()).BorderForeground(ui.Border)
	case settings.GroupFill:
		style = style.Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(ui.Primary).
			Background(ui.Background)
	}
	switch p.Size {
	case settings.SizeXSmall:
		return style
	case settings.SizeLarge:
		return style.Padding(1, 2).MarginTop(1)
	default:
		return style.Padding(0, 1)
	}
}

func itemText(reg *settings.Registry, item *settings.Item, width int) string {
	field := item.Field()
	if field.IsCustom() {
		body := styledElement(field.Render(reg.RenderOptions(item)), width)
		if item.Label() == "" {
			return body
		}
		return labelText(item) + "\n" + body
	}

	value := ui.MutedStyle.Render("(unset)")
	if v, err := field.Get(); err == nil {
		text := field.Format(v)
		if field.Kind() == settings.KindDropdown && field.SelectedIndex() < 0 {
			text = "(no selection)"
		}
		value = ui.PrimaryStyle().Render(ansi.Truncate(text, max(8, width/2), "..."))
	}

	var row string
	if item.Layout() == settings.Vertical {
		row = labelText(item) + "\n  " + value
	} else {
		row = labelText(item) + "  " + value
	}
	if item.Modified() {
		row += " " + ui.WarningStyle.Render("● modified")
	}
	if d := item.Description(); d != "" {
		row += "\n" + ui.HintStyle().Width(width).Render(d)
	}
	return row
}

func labelText(item *settings.Item) string {
	return ui.Bold.Render(item.Label())
}

func styledElement(e settings.Element, width int) string {
	switch v := e.(type) {
	case Text:
		lines := make([]string, 0, 2)
		if v.Title != "" {
			lines = append(lines, ui.Bold.Render(v.Title))
		}
		if v.Body != "" {
			lines = append(lines, ui.MutedStyle.Render(v.Body))
		}
		block := strings.Join(lines, "\n")
		if v.Centered {
			return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
		}
		return block
	case Link:
		return ui.AccentStyle().Render("["+v.Label+"]") + " " + ui.MutedStyle.Render(ansi.Truncate(v.URL, max(10, width-len(v.Label)-3), "..."))
	case Stack:
		parts := make([]string, 0, len(v))
		for _, child := range v {
			if s := styledElement(child, width); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, "  ")
	default:
		return plainElement(e)
	}
}
