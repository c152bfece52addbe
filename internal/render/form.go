package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"

	"github.com/linruohan/nohrs/internal/settings"
	"github.com/linruohan/nohrs/internal/ui"
)

// noSelection marks the placeholder option added when a dropdown getter
// returns a value outside the options.
const noSelection = "\x00none"

// Change records one value written back through a field setter.
type Change struct {
	Page  string
	Group string
	Item  string
	From  settings.Value
	To    settings.Value
}

// String returns a one-line description of the change.
func (c Change) String() string {
	return fmt.Sprintf("%s: %v -> %v", c.Item, c.From, c.To)
}

// FormOption configures a PageForm.
type FormOption func(*PageForm)

// WithKeyMap sets the huh key map used by the form.
func WithKeyMap(km *huh.KeyMap) FormOption {
	return func(f *PageForm) {
		f.keymap = km
	}
}

// WithLogger logs every applied change at debug level.
func WithLogger(logger *log.Logger) FormOption {
	return func(f *PageForm) {
		f.logger = logger
	}
}

// WithAccessible runs the form in huh's accessible (line prompt) mode.
func WithAccessible(accessible bool) FormOption {
	return func(f *PageForm) {
		f.accessible = accessible
	}
}

// binding holds the local copy a huh field edits until Apply.
type binding struct {
	group   string
	item    *settings.Item
	initial settings.Value
	flag    bool
	text    string
}

// PageForm edits one settings page through a huh form. Field values are
// seeded from the getters when the form is built; Apply writes back only
// the fields the user changed.
type PageForm struct {
	reg  *settings.Registry
	page *settings.Page

	bindings []*binding
	form     *huh.Form

	keymap     *huh.KeyMap
	logger     *log.Logger
	accessible bool
}

// NewPageForm builds the form for the page identified by id.
func NewPageForm(reg *settings.Registry, id string, opts ...FormOption) (*PageForm, error) {
	page, err := reg.Page(id)
	if err != nil {
		return nil, err
	}

	f := &PageForm{reg: reg, page: page}
	for _, opt := range opts {
		opt(f)
	}

	groups := make([]*huh.Group, 0, len(page.Groups))
	for gi := range page.Groups {
		group := &page.Groups[gi]
		fields := make([]huh.Field, 0, len(group.Items))
		for _, item := range group.Items {
			if field := f.fieldFor(group.Title, item); field != nil {
				fields = append(fields, field)
			}
		}
		if len(fields) == 0 {
			continue
		}
		hg := huh.NewGroup(fields...)
		if group.Title != "" {
			hg = hg.Title(group.Title)
		}
		groups = append(groups, hg)
	}
	if len(groups) == 0 {
		return nil, fmt.Errorf("page %q has no items to show", page.Title)
	}

	form := huh.NewForm(groups...).
		WithTheme(ui.HuhTheme()).
		WithWidth(WidthFor(reg.Presentation.Size)).
		WithAccessible(f.accessible)
	if f.keymap != nil {
		form = form.WithKeyMap(f.keymap)
	}
	f.form = form
	return f, nil
}

// Page returns the edited page.
func (f *PageForm) Page() *settings.Page { return f.page }

// Form returns the underlying huh form.
func (f *PageForm) Form() *huh.Form { return f.form }

// Run shows the form and blocks until it completes. It returns
// huh.ErrUserAborted when the user backs out.
func (f *PageForm) Run() error {
	return f.form.Run()
}

// Apply calls the setter of every field whose value differs from the value
// read when the form was built. Setters run once each, in declaration order.
func (f *PageForm) Apply() ([]Change, error) {
	var changes []Change
	for _, b := range f.bindings {
		field := b.item.Field()

		var next settings.Value
		switch field.Kind() {
		case settings.KindSwitch, settings.KindCheckbox:
			next = b.flag
		case settings.KindNumber:
			n, err := strconv.ParseFloat(strings.TrimSpace(b.text), 64)
			if err != nil {
				return changes, fmt.Errorf("%s: %w", b.item.Label(), settings.ErrInvalidNumber)
			}
			next = n
		case settings.KindDropdown:
			if b.text == noSelection {
				continue
			}
			next = b.text
		default:
			next = b.text
		}

		if next == b.initial {
			continue
		}
		if err := field.Set(next); err != nil {
			return changes, fmt.Errorf("%s: %w", b.item.Label(), err)
		}
		stored, _ := field.Get()
		change := Change{Page: f.page.Title, Group: b.group, Item: b.item.Label(), From: b.initial, To: stored}
		changes = append(changes, change)
		if f.logger != nil {
			f.logger.Debug("setting changed", "page", change.Page, "item", change.Item, "from", change.From, "to", change.To)
		}
	}
	return changes, nil
}

func (f *PageForm) fieldFor(group string, item *settings.Item) huh.Field {
	field := item.Field()
	if field.IsCustom() {
		return huh.NewNote().
			Title(item.Label()).
			Description(plainElement(field.Render(f.reg.RenderOptions(item))))
	}

	initial, err := field.Get()
	if err != nil {
		return nil
	}
	b := &binding{group: group, item: item, initial: initial}
	f.bindings = append(f.bindings, b)

	switch field.Kind() {
	case settings.KindSwitch, settings.KindCheckbox:
		b.flag, _ = initial.(bool)
		affirmative, negative := "On", "Off"
		if field.Kind() == settings.KindCheckbox {
			affirmative, negative = "Yes", "No"
		}
		return huh.NewConfirm().
			Title(item.Label()).
			Description(item.Description()).
			Affirmative(affirmative).
			Negative(negative).
			Value(&b.flag)

	case settings.KindNumber:
		bounds := field.Bounds()
		b.text = field.Format(initial)
		desc := fmt.Sprintf("%s to %s", field.Format(bounds.Min), field.Format(bounds.Max))
		if d := item.Description(); d != "" {
			desc = d + " (" + desc + ")"
		}
		return huh.NewInput().
			Title(item.Label()).
			Description(desc).
			Value(&b.text).
			Validate(func(s string) error {
				_, err := field.Parse(s)
				return err
			})

	case settings.KindDropdown:
		b.text, _ = initial.(string)
		options := make([]huh.Option[string], 0, len(field.Options())+1)
		if field.SelectedIndex() < 0 {
			b.text = noSelection
			options = append(options, huh.NewOption("(no selection)", noSelection))
		}
		for _, opt := range field.Options() {
			label := opt.Label
			if label == "" {
				label = opt.Value
			}
			options = append(options, huh.NewOption(label, opt.Value))
		}
		return huh.NewSelect[string]().
			Title(item.Label()).
			Description(item.Description()).
			Options(options...).
			Value(&b.text)

	default:
		b.text, _ = initial.(string)
		input := huh.NewInput().
			Title(item.Label()).
			Description(item.Description()).
			Value(&b.text)
		if item.Layout() == settings.Horizontal {
			input = input.Inline(true)
		}
		return input
	}
}
