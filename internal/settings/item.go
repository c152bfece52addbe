package settings

// Item is one labeled row of a settings group.
type Item struct {
	label       string
	description string
	layout      Layout
	field       Field

	def      Value
	defaults int
}

// NewItem returns an item showing field under label.
func NewItem(label string, field Field) *Item {
	return &Item{label: label, field: field}
}

// NewCustomItem returns an unlabeled item drawn entirely by fn.
func NewCustomItem(fn RenderFunc) *Item {
	return &Item{field: Custom(fn)}
}

// WithDescription sets the informational text shown with the item.
func (i *Item) WithDescription(description string) *Item {
	i.description = description
	return i
}

// WithLayout sets the item layout.
func (i *Item) WithLayout(layout Layout) *Item {
	i.layout = layout
	return i
}

// WithDefault captures the value reset restores. It must be called at most
// once; the captured value is never re-read from state.
func (i *Item) WithDefault(v Value) *Item {
	if i.field.kind == KindNumber {
		if n, ok := toFloat(v); ok {
			v = n
		}
	}
	i.def = v
	i.defaults++
	return i
}

// Label returns the item label.
func (i *Item) Label() string { return i.label }

// Description returns the item description.
func (i *Item) Description() string { return i.description }

// Layout returns the item layout.
func (i *Item) Layout() Layout { return i.layout }

// Field returns the bound field.
func (i *Item) Field() Field { return i.field }

// Default returns the captured default and whether one was declared.
func (i *Item) Default() (Value, bool) {
	return i.def, i.defaults > 0
}

// ID returns the item label as a slug, the same way Page.ID does. Custom
// items have an empty ID.
func (i *Item) ID() string { return slug(i.label) }

// Modified reports whether the current value differs from the default.
// Custom items and items without a default are never modified.
func (i *Item) Modified() bool {
	if i.field.IsCustom() || i.defaults == 0 {
		return false
	}
	v, err := i.field.Get()
	if err != nil {
		return false
	}
	return v != i.def
}

func (i *Item) validate(resettable bool) error {
	if err := i.field.validate(); err != nil {
		return err
	}
	if i.field.IsCustom() {
		if i.defaults > 0 {
			return ErrNoValue
		}
		return nil
	}
	switch {
	case i.defaults > 1:
		return ErrDuplicateDefault
	case i.defaults == 0:
		if resettable {
			return ErrMissingDefault
		}
		return nil
	}
	return i.field.checkDefault(i.def)
}

func (i *Item) reset() error {
	if i.field.IsCustom() || i.defaults == 0 {
		return nil
	}
	return i.field.Set(i.def)
}
