package settings

import (
	"errors"
	"fmt"
	"strings"
)

// Configuration errors are detected when a registry is built.
var (
	// ErrInvalidBounds indicates a number field whose minimum exceeds its maximum.
	ErrInvalidBounds = errors.New("invalid number bounds")

	// ErrEmptyOptions indicates a dropdown declared without options.
	ErrEmptyOptions = errors.New("dropdown has no options")

	// ErrDuplicateOption indicates a dropdown declaring the same value twice.
	ErrDuplicateOption = errors.New("duplicate dropdown option")

	// ErrMissingAccessor indicates a value field without a getter or setter.
	ErrMissingAccessor = errors.New("field has no accessor")

	// ErrMissingDefault indicates a value item on a resettable page without a default.
	ErrMissingDefault = errors.New("missing default value")

	// ErrDuplicateDefault indicates a default declared more than once for an item.
	ErrDuplicateDefault = errors.New("default value declared twice")

	// ErrDefaultType indicates a default whose type does not match its field.
	ErrDefaultType = errors.New("default value has wrong type")

	// ErrDuplicatePage indicates two pages resolving to the same page ID.
	ErrDuplicatePage = errors.New("duplicate page")

	// ErrNilItem indicates a group holding a nil item.
	ErrNilItem = errors.New("nil item")

	// ErrEmptyTitle indicates a page without a title.
	ErrEmptyTitle = errors.New("page title is required")
)

// Runtime errors are returned to callers of field and registry operations.
var (
	// ErrPageNotFound indicates no page matches the requested ID.
	ErrPageNotFound = errors.New("page not found")

	// ErrNotResettable indicates a reset requested on a page that forbids it.
	ErrNotResettable = errors.New("page is not resettable")

	// ErrTypeMismatch indicates a value of the wrong type for a field.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrUnknownOption indicates a dropdown value outside the declared options.
	ErrUnknownOption = errors.New("unknown dropdown option")

	// ErrInvalidNumber indicates a NaN or otherwise unusable number.
	ErrInvalidNumber = errors.New("invalid number")

	// ErrNoValue indicates a get or set on a custom element field.
	ErrNoValue = errors.New("field has no value")
)

// ConfigError locates a configuration error inside the settings tree.
type ConfigError struct {
	Page  string
	Group string
	Item  string
	Err   error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	parts := make([]string, 0, 3)
	if e.Page != "" {
		parts = append(parts, fmt.Sprintf("page %q", e.Page))
	}
	if e.Group != "" {
		parts = append(parts, fmt.Sprintf("group %q", e.Group))
	}
	if e.Item != "" {
		parts = append(parts, fmt.Sprintf("item %q", e.Item))
	}
	if len(parts) == 0 {
		return "settings: " + e.Err.Error()
	}
	return "settings: " + strings.Join(parts, " ") + ": " + e.Err.Error()
}

// Unwrap returns the underlying sentinel error.
func (e *ConfigError) Unwrap() error {
	return e.Err
}
