package state

import (
	"github.com/linruohan/nohrs/internal/config"
	"github.com/linruohan/nohrs/internal/settings"
)

// Bind returns an accessor over the record field selected by field. The
// first get or set initializes the store. If that fails the getter returns
// the zero value, the setter drops the write, and both log a warning.
func Bind[T any](s *Store, field func(*config.AppSettings) *T) settings.Accessor[T] {
	return settings.NewAccessor(
		func() T {
			var v T
			if err := s.ensureThen(func() error {
				return s.Read(func(cur config.AppSettings) {
					v = *field(&cur)
				})
			}); err != nil {
				s.warn("settings read failed", "error", err)
			}
			return v
		},
		func(v T) {
			if err := s.ensureThen(func() error {
				return s.Update(func(cur *config.AppSettings) {
					*field(cur) = v
				})
			}); err != nil {
				s.warn("settings write dropped", "error", err)
			}
		},
	)
}

func (s *Store) ensureThen(fn func() error) error {
	if err := s.Ensure(); err != nil {
		return err
	}
	return fn()
}
