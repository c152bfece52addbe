package settings

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
)

// Registry is the root of a settings tree built for one render pass.
type Registry struct {
	// Presentation is owned by the hosting view and purely cosmetic.
	Presentation Presentation

	pages  []*Page
	logger *log.Logger
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithPresentation sets the registry-wide presentation options.
func WithPresentation(p Presentation) RegistryOption {
	return func(r *Registry) {
		r.Presentation = p
	}
}

// WithLogger logs resets and page lookups to logger at debug level.
func WithLogger(logger *log.Logger) RegistryOption {
	return func(r *Registry) {
		r.logger = logger
	}
}

// BuildFunc declares the pages of a registry. It must only read state.
type BuildFunc func() []Page

// Build runs fn and validates the resulting tree.
func Build(fn BuildFunc, opts ...RegistryOption) (*Registry, error) {
	return New(fn(), opts...)
}

// New validates pages and returns a registry over them. Configuration
// errors are returned as *ConfigError.
func New(pages []Page, opts ...RegistryOption) (*Registry, error) {
	r := &Registry{Presentation: DefaultPresentation()}
	for _, opt := range opts {
		opt(r)
	}

	seen := make(map[string]string, len(pages))
	r.pages = make([]*Page, 0, len(pages))
	for i := range pages {
		page := pages[i]
		if err := page.validate(); err != nil {
			return nil, err
		}
		id := page.ID()
		if prev, ok := seen[id]; ok {
			return nil, &ConfigError{Page: page.Title, Err: fmt.Errorf("%w: id %q already used by %q", ErrDuplicatePage, id, prev)}
		}
		seen[id] = page.Title
		r.pages = append(r.pages, &page)
	}
	return r, nil
}

// MustNew is like New but panics on configuration errors.
func MustNew(pages []Page, opts ...RegistryOption) *Registry {
	r, err := New(pages, opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// Pages returns the pages in declaration order.
func (r *Registry) Pages() []*Page {
	return append([]*Page(nil), r.pages...)
}

// Page returns the page identified by id. Titles are accepted as well as IDs.
func (r *Registry) Page(id string) (*Page, error) {
	want := slug(id)
	for _, p := range r.pages {
		if p.ID() == want {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrPageNotFound, id)
}

// DefaultPage returns the first page marked DefaultOpen, or the first page.
// It returns nil for an empty registry.
func (r *Registry) DefaultPage() *Page {
	for _, p := range r.pages {
		if p.DefaultOpen {
			return p
		}
	}
	if len(r.pages) == 0 {
		return nil
	}
	return r.pages[0]
}

// Reset writes every captured default on the page back through its field
// setter, in declaration order. Custom items are skipped. A page that is not
// resettable is left untouched and ErrNotResettable is returned.
func (r *Registry) Reset(id string) error {
	page, err := r.Page(id)
	if err != nil {
		return err
	}
	if !page.Resettable {
		return fmt.Errorf("%w: %q", ErrNotResettable, page.Title)
	}

	var errs []error
	count := 0
	for _, g := range page.Groups {
		for _, item := range g.Items {
			if item.field.IsCustom() {
				continue
			}
			if err := item.reset(); err != nil {
				errs = append(errs, fmt.Errorf("resetting %q: %w", item.label, err))
				continue
			}
			count++
		}
	}
	if r.logger != nil {
		r.logger.Debug("page reset", "page", page.Title, "items", count)
	}
	return errors.Join(errs...)
}

// ResetAll resets every resettable page in order and skips the rest. It
// returns the IDs of the pages it reset.
func (r *Registry) ResetAll() ([]string, error) {
	var (
		ids  []string
		errs []error
	)
	for _, p := range r.pages {
		if !p.Resettable {
			continue
		}
		if err := r.Reset(p.ID()); err != nil {
			errs = append(errs, err)
			continue
		}
		ids = append(ids, p.ID())
	}
	return ids, errors.Join(errs...)
}

// Modified returns the items of a page whose current value differs from
// their captured default.
func (r *Registry) Modified(id string) ([]*Item, error) {
	page, err := r.Page(id)
	if err != nil {
		return nil, err
	}
	var items []*Item
	for _, item := range page.Items() {
		if item.Modified() {
			items = append(items, item)
		}
	}
	return items, nil
}

// WalkFunc is called for every item of a registry. Returning an error stops
// the walk.
type WalkFunc func(page *Page, group *Group, item *Item) error

// Walk visits pages, groups and items in declaration order.
func (r *Registry) Walk(fn WalkFunc) error {
	for _, p := range r.pages {
		for gi := range p.Groups {
			g := &p.Groups[gi]
			for _, item := range g.Items {
				if err := fn(p, g, item); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// RenderOptions returns the options a renderer passes to item's custom
// element callback.
func (r *Registry) RenderOptions(item *Item) RenderOptions {
	opts := RenderOptions{
		Size:         r.Presentation.Size,
		GroupVariant: r.Presentation.GroupVariant,
	}
	if item != nil {
		opts.Layout = item.layout
	}
	return opts
}
