package state

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/linruohan/nohrs/internal/config"
	"github.com/linruohan/nohrs/internal/settings"
)

func TestStore_EnsureInstallsDefaults(t *testing.T) {
	s := New()
	if s.Initialized() {
		t.Fatal("new store should not be initialized")
	}
	if _, err := s.Snapshot(); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("expected ErrNotInitialized, got %v", err)
	}

	if err := s.Ensure(); err != nil {
		t.Fatalf("Ensure failed: %v", err)
	}
	got, err := s.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}
	if got != config.DefaultAppSettings() {
		t.Errorf("Snapshot() = %+v, want defaults", got)
	}
}

func TestStore_EnsureIsIdempotent(t *testing.T) {
	s := New()
	_ = s.Ensure()
	_ = s.Update(func(a *config.AppSettings) { a.FontSize = 30 })
	if err := s.Ensure(); err != nil {
		t.Fatalf("Ensure failed: %v", err)
	}
	got, _ := s.Snapshot()
	if got.FontSize != 30 {
		t.Errorf("second Ensure replaced the record: FontSize = %v", got.FontSize)
	}
}

func TestStore_UpdateBeforeEnsure(t *testing.T) {
	s := New()
	err := s.Update(func(a *config.AppSettings) { a.DarkMode = true })
	if !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("expected ErrNotInitialized, got %v", err)
	}
}

func TestStore_SubscribeNotifiesOnChange(t *testing.T) {
	s := New()
	_ = s.Ensure()

	var calls []bool
	unsubscribe := s.Subscribe(func(old, updated config.AppSettings) {
		calls = append(calls, updated.DarkMode)
	})

	_ = s.Update(func(a *config.AppSettings) { a.DarkMode = true })
	_ = s.Update(func(a *config.AppSettings) { a.DarkMode = true })
	unsubscribe()
	_ = s.Update(func(a *config.AppSettings) { a.DarkMode = false })

	if len(calls) != 1 || !calls[0] {
		t.Errorf("observer calls = %v, want [true]", calls)
	}
}

func TestStore_ObserverMayReadStore(t *testing.T) {
	s := New()
	_ = s.Ensure()

	var seen float64
	s.Subscribe(func(_, _ config.AppSettings) {
		snap, _ := s.Snapshot()
		seen = snap.FontSize
	})
	_ = s.Update(func(a *config.AppSettings) { a.FontSize = 20 })
	if seen != 20 {
		t.Errorf("observer saw FontSize %v, want 20", seen)
	}
}

func TestStore_ConcurrentUpdates(t *testing.T) {
	s := New()
	_ = s.Ensure()
	size := Bind(s, func(a *config.AppSettings) *float64 { return &a.FontSize })

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Update(func(a *config.AppSettings) { a.LineHeight++ })
			_ = size.Get()
		}()
	}
	wg.Wait()

	got, _ := s.Snapshot()
	if got.LineHeight != 12+50 {
		t.Errorf("LineHeight = %v, want %v", got.LineHeight, 12+50)
	}
}

func TestBind_ReadsAndWritesRecord(t *testing.T) {
	s := New()
	_ = s.Ensure()

	path := Bind(s, func(a *config.AppSettings) *string { return &a.CLIPath })
	if got := path.Get(); got != "/usr/local/bin/bash" {
		t.Errorf("Get() = %q", got)
	}
	path.Set("/bin/zsh")
	got, _ := s.Snapshot()
	if got.CLIPath != "/bin/zsh" {
		t.Errorf("CLIPath = %q, want /bin/zsh", got.CLIPath)
	}
}

func TestBind_DrivesSettingsField(t *testing.T) {
	s := New()
	_ = s.Ensure()

	field := settings.NumberInput(
		settings.NumberOptions{Min: config.MinFontSize, Max: config.MaxFontSize},
		Bind(s, func(a *config.AppSettings) *float64 { return &a.FontSize }),
	)
	if err := field.Set(100.0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	got, _ := s.Snapshot()
	if got.FontSize != 72 {
		t.Errorf("FontSize = %v, want 72", got.FontSize)
	}
}

func TestBind_InitializesStore(t *testing.T) {
	s := New()

	dark := Bind(s, func(a *config.AppSettings) *bool { return &a.DarkMode })
	dark.Set(true)
	if !s.Initialized() {
		t.Fatal("Set should initialize the store")
	}
	got, err := s.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}
	if !got.DarkMode {
		t.Error("write before Ensure was dropped")
	}

	fresh := New()
	size := Bind(fresh, func(a *config.AppSettings) *float64 { return &a.FontSize })
	if got := size.Get(); got != 14 {
		t.Errorf("Get() on a fresh store = %v, want default 14", got)
	}
}

func TestBind_CorruptStateKeepsZeroValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.StateFileName)
	if err := os.WriteFile(path, []byte("font_size: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	s := New(WithPersister(NewFilePersister(path)))

	size := Bind(s, func(a *config.AppSettings) *float64 { return &a.FontSize })
	if got := size.Get(); got != 0 {
		t.Errorf("Get() = %v, want zero value", got)
	}
	size.Set(20)
	if s.Initialized() {
		t.Error("store should stay uninitialized")
	}
}

func TestDefault_IsSingleton(t *testing.T) {
	if Default() != Default() {
		t.Fatal("Default() returned different stores")
	}
}

func TestFilePersister_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", config.StateFileName)
	p := NewFilePersister(path)

	if _, ok, err := p.Load(); err != nil || ok {
		t.Fatalf("Load on missing file = ok %v, err %v", ok, err)
	}

	s := New(WithPersister(p))
	_ = s.Ensure()
	_ = s.Update(func(a *config.AppSettings) {
		a.FontFamily = "Courier New"
		a.AutoUpdate = false
	})
	if err := s.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	restored := New(WithPersister(NewFilePersister(path)))
	if err := restored.Ensure(); err != nil {
		t.Fatalf("Ensure failed: %v", err)
	}
	got, _ := restored.Snapshot()
	if got.FontFamily != "Courier New" || got.AutoUpdate {
		t.Errorf("restored %+v", got)
	}
}

func TestStore_EnsureReportsCorruptState(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.StateFileName)
	if err := os.WriteFile(path, []byte("font_size: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	s := New(WithPersister(NewFilePersister(path)))
	if err := s.Ensure(); err == nil {
		t.Fatal("expected error for corrupt state file")
	}
	if s.Initialized() {
		t.Error("store should stay uninitialized after a failed Ensure")
	}
}

func TestStore_SaveWithoutPersister(t *testing.T) {
	s := New()
	_ = s.Ensure()
	if err := s.Save(); err != nil {
		t.Fatalf("Save without persister failed: %v", err)
	}
	if s.Persistent() {
		t.Error("store without persister reports Persistent")
	}
}
