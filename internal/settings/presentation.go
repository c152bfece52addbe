package settings

import "strings"

// Size is the registry-wide visual size hint.
type Size int

const (
	SizeMedium Size = iota
	SizeSmall
	SizeXSmall
	SizeLarge
)

// Sizes returns every size in menu order.
func Sizes() []Size {
	return []Size{SizeMedium, SizeSmall, SizeXSmall, SizeLarge}
}

// String returns the size name.
func (s Size) String() string {
	switch s {
	case SizeSmall:
		return "small"
	case SizeXSmall:
		return "xsmall"
	case SizeLarge:
		return "large"
	default:
		return "medium"
	}
}

// Label returns the display label for the size.
func (s Size) Label() string {
	switch s {
	case SizeSmall:
		return "Small"
	case SizeXSmall:
		return "XSmall"
	case SizeLarge:
		return "Large"
	default:
		return "Medium"
	}
}

// ParseSize returns the size named s, falling back to SizeMedium.
func ParseSize(s string) Size {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "small", "sm":
		return SizeSmall
	case "xsmall", "xs":
		return SizeXSmall
	case "large", "lg":
		return SizeLarge
	default:
		return SizeMedium
	}
}

// GroupVariant is the registry-wide visual style of setting groups.
type GroupVariant int

const (
	GroupNormal GroupVariant = iota
	GroupOutline
	GroupFill
)

// GroupVariants returns every variant in menu order.
func GroupVariants() []GroupVariant {
	return []GroupVariant{GroupNormal, GroupOutline, GroupFill}
}

// String returns the variant name.
func (v GroupVariant) String() string {
	switch v {
	case GroupOutline:
		return "outline"
	case GroupFill:
		return "fill"
	default:
		return "normal"
	}
}

// Label returns the display label for the variant.
func (v GroupVariant) Label() string {
	switch v {
	case GroupOutline:
		return "Outline"
	case GroupFill:
		return "Fill"
	default:
		return "Normal"
	}
}

// ParseGroupVariant returns the variant named s, falling back to GroupNormal.
func ParseGroupVariant(s string) GroupVariant {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "outline":
		return GroupOutline
	case "fill":
		return GroupFill
	default:
		return GroupNormal
	}
}

// Presentation holds registry-wide cosmetic options. It never affects
// field semantics.
type Presentation struct {
	Size         Size
	GroupVariant GroupVariant
}

// DefaultPresentation returns the presentation used when the host sets none.
func DefaultPresentation() Presentation {
	return Presentation{Size: SizeMedium, GroupVariant: GroupOutline}
}

// Layout controls how an item places its label relative to its field.
type Layout int

const (
	// Horizontal puts the label and the field side by side.
	Horizontal Layout = iota
	// Vertical stacks the field under the label.
	Vertical
)

// String returns the layout name.
func (l Layout) String() string {
	if l == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// RenderOptions is passed to custom element callbacks.
type RenderOptions struct {
	Size         Size
	GroupVariant GroupVariant
	Layout       Layout
}

// Element is an opaque renderable value produced by a custom field. Only the
// renderer knows how to draw it.
type Element any

// ElementRenderer renders a custom field.
type ElementRenderer interface {
	RenderField(opts RenderOptions) Element
}

// RenderFunc adapts a function to ElementRenderer.
type RenderFunc func(opts RenderOptions) Element

// RenderField calls f(opts).
func (f RenderFunc) RenderField(opts RenderOptions) Element {
	return f(opts)
}
