// Package state holds the process-wide settings record.
//
// A Store is created empty and installs config.DefaultAppSettings on the
// first call to Ensure. Every read and write goes through the store mutex,
// so accessors bound with Bind may be called from any goroutine.
package state

import (
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/linruohan/nohrs/internal/config"
)

// ErrNotInitialized is returned when the store is used before Ensure.
var ErrNotInitialized = errors.New("settings state not initialized")

// Observer is called after an update changed the settings record.
type Observer func(old, updated config.AppSettings)

// Store owns the live settings record.
type Store struct {
	mu          sync.Mutex
	settings    config.AppSettings
	initialized bool

	persister Persister
	logger    *log.Logger

	observers map[uint64]Observer
	nextID    uint64
}

// Option configures a Store.
type Option func(*Store)

// WithLogger logs lifecycle events and mutations at debug level.
func WithLogger(logger *log.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithPersister loads the record from p on Ensure and writes it back on Save.
func WithPersister(p Persister) Option {
	return func(s *Store) {
		s.persister = p
	}
}

// New creates an uninitialized store.
func New(opts ...Option) *Store {
	s := &Store{observers: make(map[uint64]Observer)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var (
	defaultOnce  sync.Once
	defaultStore *Store
)

// Default returns the process-wide store, creating it on first use. opts
// only apply to the call that creates it.
func Default(opts ...Option) *Store {
	defaultOnce.Do(func() {
		defaultStore = New(opts...)
	})
	return defaultStore
}

// Ensure installs the initial record if none exists yet. With a persister
// the saved snapshot is used when present; otherwise the hard-coded
// defaults. Calling Ensure again is a no-op.
func (s *Store) Ensure() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	settings := config.DefaultAppSettings()
	source := "defaults"
	if s.persister != nil {
		saved, ok, err := s.persister.Load()
		if err != nil {
			return fmt.Errorf("loading settings: %w", err)
		}
		if ok {
			settings = saved
			source = "persisted"
		}
	}

	s.settings = settings
	s.initialized = true
	s.debug("settings initialized", "source", source)
	return nil
}

// Initialized reports whether Ensure has run.
func (s *Store) Initialized() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.initialized
}

// Snapshot returns a copy of the current record.
func (s *Store) Snapshot() (config.AppSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return config.AppSettings{}, ErrNotInitialized
	}
	return s.settings, nil
}

// Read calls fn with the current record. fn must not call back into the store.
func (s *Store) Read(fn func(config.AppSettings)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return ErrNotInitialized
	}
	fn(s.settings)
	return nil
}

// Update lets fn modify the record in place. Observers run after the lock is
// released and only when the record changed.
func (s *Store) Update(fn func(*config.AppSettings)) error {
	s.mu.Lock()
	if !s.initialized {
		s.mu.Unlock()
		return ErrNotInitialized
	}
	old := s.settings
	fn(&s.settings)
	updated := s.settings
	observers := s.snapshotObservers()
	s.mu.Unlock()

	if old == updated {
		return nil
	}
	s.debug("settings updated")
	for _, obs := range observers {
		obs(old, updated)
	}
	return nil
}

// Subscribe registers obs for every change. The returned function removes it.
func (s *Store) Subscribe(obs Observer) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.observers[id] = obs

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.observers, id)
	}
}

// Save writes the record through the persister. Without one it does nothing.
func (s *Store) Save() error {
	s.mu.Lock()
	if !s.initialized {
		s.mu.Unlock()
		return ErrNotInitialized
	}
	settings := s.settings
	p := s.persister
	s.mu.Unlock()

	if p == nil {
		return nil
	}
	if err := p.Save(settings); err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}
	s.debug("settings saved")
	return nil
}

// Persistent reports whether the store has a persister.
func (s *Store) Persistent() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persister != nil
}

func (s *Store) snapshotObservers() []Observer {
	if len(s.observers) == 0 {
		return nil
	}
	// Deliver in subscription order.
	out := make([]Observer, 0, len(s.observers))
	for id := uint64(0); id < s.nextID; id++ {
		if obs, ok := s.observers[id]; ok {
			out = append(out, obs)
		}
	}
	return out
}

func (s *Store) debug(msg string, keyvals ...any) {
	if s.logger != nil {
		s.logger.Debug(msg, keyvals...)
	}
}

func (s *Store) warn(msg string, keyvals ...any) {
	if s.logger != nil {
		s.logger.Warn(msg, keyvals...)
	}
}
