// Package settings provides the declarative settings model for nohrs.
//
// Application state is exposed as a tree of user-editable options:
//
//	Registry
//	└── Page      (title, resettable, default-open)
//	    └── Group (optional title)
//	        └── Item  (label, description, layout, default)
//	            └── Field (switch, checkbox, input, number, dropdown, custom)
//
// Every non-custom field is bound to live state through an Accessor, a
// getter/setter pair built by the host over an explicit state handle. The
// package never holds state itself: a Registry is rebuilt for every render
// pass and reaches state only through its accessors.
//
// # Defaults and reset
//
// Each item captures its default once, when the item is declared. Reset
// walks a resettable page in declaration order and writes every captured
// default back through the field setter. Defaults are never re-read from
// state, so reset restores what the declaration says, not what existed at
// startup. When two items alias the same state key the last declared item
// wins.
//
// # Errors
//
// Configuration mistakes (inverted numeric bounds, empty dropdowns, missing or
// duplicated defaults) are reported by New as a *ConfigError wrapping one of
// the sentinel errors in this package. Out-of-range numeric writes are
// clamped rather than rejected.
package settings
