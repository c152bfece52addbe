package settings

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind identifies the variant of a Field.
type Kind int

const (
	KindSwitch Kind = iota
	KindCheckbox
	KindInput
	KindNumber
	KindDropdown
	KindCustom
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindSwitch:
		return "switch"
	case KindCheckbox:
		return "checkbox"
	case KindInput:
		return "input"
	case KindNumber:
		return "number"
	case KindDropdown:
		return "dropdown"
	case KindCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// Value is the dynamic value of a field: bool for switches and checkboxes,
// string for inputs and dropdowns, float64 for number inputs.
type Value = any

// Option is one dropdown entry.
type Option struct {
	Value string
	Label string
}

// NumberOptions bounds a number input.
type NumberOptions struct {
	Min float64
	Max float64
	// Step is the increment renderers use when nudging the value. Zero means 1.
	Step float64
}

// Clamp returns v limited to [Min, Max].
func (o NumberOptions) Clamp(v float64) float64 {
	return math.Min(math.Max(v, o.Min), o.Max)
}

// Field is a typed, bindable value slot. The zero Field is not usable; build
// one with Switch, Checkbox, Input, NumberInput, Dropdown, Element or Custom.
type Field struct {
	kind    Kind
	flag    Accessor[bool]
	text    Accessor[string]
	number  Accessor[float64]
	bounds  NumberOptions
	options []Option
	element ElementRenderer
}

// Switch returns a boolean toggle field.
func Switch(acc Accessor[bool]) Field {
	return Field{kind: KindSwitch, flag: acc}
}

// Checkbox returns a boolean checkbox field.
func Checkbox(acc Accessor[bool]) Field {
	return Field{kind: KindCheckbox, flag: acc}
}

// Input returns a free text field.
func Input(acc Accessor[string]) Field {
	return Field{kind: KindInput, text: acc}
}

// NumberInput returns a numeric field bounded by opts. Writes outside the
// bounds are clamped.
func NumberInput(opts NumberOptions, acc Accessor[float64]) Field {
	return Field{kind: KindNumber, number: acc, bounds: opts}
}

// Dropdown returns a single-select field over the given ordered options.
func Dropdown(options []Option, acc Accessor[string]) Field {
	return Field{kind: KindDropdown, text: acc, options: append([]Option(nil), options...)}
}

// ElementField returns a custom field drawn by r. It carries no value and no
// default.
func ElementField(r ElementRenderer) Field {
	return Field{kind: KindCustom, element: r}
}

// Custom returns a custom field drawn by fn.
func Custom(fn RenderFunc) Field {
	return ElementField(fn)
}

// Kind returns the field variant.
func (f Field) Kind() Kind { return f.kind }

// IsCustom reports whether the field is a custom element.
func (f Field) IsCustom() bool { return f.kind == KindCustom }

// Bounds returns the number options of a number field.
func (f Field) Bounds() NumberOptions { return f.bounds }

// Options returns a copy of the dropdown options.
func (f Field) Options() []Option {
	return append([]Option(nil), f.options...)
}

// Get returns the current value through the field getter.
func (f Field) Get() (Value, error) {
	switch f.kind {
	case KindSwitch, KindCheckbox:
		return f.flag.Get(), nil
	case KindInput, KindDropdown:
		return f.text.Get(), nil
	case KindNumber:
		return f.number.Get(), nil
	default:
		return nil, ErrNoValue
	}
}

// Set writes v through the field setter. Number fields clamp v to their
// bounds. Dropdown fields ignore values outside their options and return
// ErrUnknownOption, leaving the prior value in place.
func (f Field) Set(v Value) error {
	switch f.kind {
	case KindSwitch, KindCheckbox:
		b, ok := v.(bool)
		if !ok {
			return f.mismatch(v)
		}
		f.flag.Set(b)
	case KindInput:
		s, ok := v.(string)
		if !ok {
			return f.mismatch(v)
		}
		f.text.Set(s)
	case KindDropdown:
		s, ok := v.(string)
		if !ok {
			return f.mismatch(v)
		}
		if f.optionIndex(s) < 0 {
			return fmt.Errorf("%w: %q", ErrUnknownOption, s)
		}
		f.text.Set(s)
	case KindNumber:
		n, ok := toFloat(v)
		if !ok {
			return f.mismatch(v)
		}
		if math.IsNaN(n) {
			return ErrInvalidNumber
		}
		f.number.Set(f.bounds.Clamp(n))
	default:
		return ErrNoValue
	}
	return nil
}

// SelectedIndex returns the index of the current dropdown value, or -1 when
// the getter returns a value outside the options (rendered as no selection).
func (f Field) SelectedIndex() int {
	if f.kind != KindDropdown {
		return -1
	}
	return f.optionIndex(f.text.Get())
}

// Render draws a custom field. It returns nil for value fields.
func (f Field) Render(opts RenderOptions) Element {
	if f.kind != KindCustom || f.element == nil {
		return nil
	}
	return f.element.RenderField(opts)
}

// Parse converts user text into a value for this field.
func (f Field) Parse(s string) (Value, error) {
	s = strings.TrimSpace(s)
	switch f.kind {
	case KindSwitch, KindCheckbox:
		switch strings.ToLower(s) {
		case "on", "yes", "y":
			return true, nil
		case "off", "no", "n":
			return false, nil
		}
		b, err := strconv.ParseBool(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a boolean", ErrTypeMismatch, s)
		}
		return b, nil
	case KindNumber:
		n, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(n) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
		}
		return n, nil
	case KindDropdown:
		for _, opt := range f.options {
			if opt.Value == s || strings.EqualFold(opt.Label, s) {
				return opt.Value, nil
			}
		}
		return nil, fmt.Errorf("%w: %q", ErrUnknownOption, s)
	case KindInput:
		return s, nil
	default:
		return nil, ErrNoValue
	}
}

// Format renders v as display text for this field.
func (f Field) Format(v Value) string {
	switch val := v.(type) {
	case nil:
		return ""
	case bool:
		if val {
			return "on"
		}
		return "off"
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case string:
		if f.kind == KindDropdown {
			if i := f.optionIndex(val); i >= 0 {
				return f.options[i].Label
			}
		}
		return val
	default:
		return fmt.Sprint(val)
	}
}

func (f Field) validate() error {
	switch f.kind {
	case KindSwitch, KindCheckbox:
		if !f.flag.bound() {
			return ErrMissingAccessor
		}
	case KindInput:
		if !f.text.bound() {
			return ErrMissingAccessor
		}
	case KindNumber:
		if !f.number.bound() {
			return ErrMissingAccessor
		}
		b := f.bounds
		if math.IsNaN(b.Min) || math.IsNaN(b.Max) || b.Min > b.Max {
			return fmt.Errorf("%w: min %v > max %v", ErrInvalidBounds, b.Min, b.Max)
		}
		if b.Step < 0 {
			return fmt.Errorf("%w: negative step %v", ErrInvalidBounds, b.Step)
		}
	case KindDropdown:
		if !f.text.bound() {
			return ErrMissingAccessor
		}
		if len(f.options) == 0 {
			return ErrEmptyOptions
		}
		seen := make(map[string]bool, len(f.options))
		for _, opt := range f.options {
			if seen[opt.Value] {
				return fmt.Errorf("%w: %q", ErrDuplicateOption, opt.Value)
			}
			seen[opt.Value] = true
		}
	case KindCustom:
		if f.element == nil {
			return ErrMissingAccessor
		}
	default:
		return fmt.Errorf("unknown field kind %d", f.kind)
	}
	return nil
}

// checkDefault reports whether v can be stored as this field's default.
func (f Field) checkDefault(v Value) error {
	switch f.kind {
	case KindSwitch, KindCheckbox:
		if _, ok := v.(bool); ok {
			return nil
		}
	case KindInput:
		if _, ok := v.(string); ok {
			return nil
		}
	case KindDropdown:
		s, ok := v.(string)
		if !ok {
			break
		}
		if f.optionIndex(s) < 0 {
			return fmt.Errorf("%w: %q", ErrUnknownOption, s)
		}
		return nil
	case KindNumber:
		n, ok := v.(float64)
		if !ok {
			break
		}
		if math.IsNaN(n) {
			return ErrInvalidNumber
		}
		if n < f.bounds.Min || n > f.bounds.Max {
			return fmt.Errorf("%w: %v outside [%v, %v]", ErrDefaultType, n, f.bounds.Min, f.bounds.Max)
		}
		return nil
	case KindCustom:
		return ErrNoValue
	}
	return fmt.Errorf("%w: %s field got %T", ErrDefaultType, f.kind, v)
}

func (f Field) optionIndex(value string) int {
	for i, opt := range f.options {
		if opt.Value == value {
			return i
		}
	}
	return -1
}

func (f Field) mismatch(v Value) error {
	return fmt.Errorf("%w: %s field got %T", ErrTypeMismatch, f.kind, v)
}

func toFloat(v Value) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	default:
		return 0, false
	}
}
