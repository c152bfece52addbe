package settings

import (
	"errors"
	"testing"
)

type testState struct {
	autoSwitchTheme bool
	fontSize        float64
	cliPath         string
	shared          string
}

func testPages(s *testState, resettable bool) []Page {
	return []Page{
		{
			Title:       "General",
			Resettable:  resettable,
			DefaultOpen: true,
			Groups: []Group{
				{
					Title: "Appearance",
					Items: []*Item{
						NewItem("Auto Switch Theme", Checkbox(boolVar(&s.autoSwitchTheme))).
							WithDescription("Automatically switch theme based on system settings.").
							WithDefault(false),
					},
				},
				{
					Title: "Font",
					Items: []*Item{
						NewItem("Font Size", NumberInput(NumberOptions{Min: 8, Max: 72}, floatVar(&s.fontSize))).
							WithDefault(14.0),
					},
				},
				{
					Title: "Other",
					Items: []*Item{
						NewCustomItem(func(RenderOptions) Element { return "custom" }),
						NewItem("CLI Path", Input(stringVar(&s.cliPath))).
							WithLayout(Vertical).
							WithDefault("/usr/local/bin/bash"),
					},
				},
			},
		},
		{
			Title:      "Software Update",
			Resettable: resettable,
			Groups: []Group{
				{Title: "Updates", Items: []*Item{
					NewItem("Shared", Input(stringVar(&s.shared))).WithDefault("update"),
				}},
			},
		},
	}
}

func TestRegistry_ResetRestoresDefaults(t *testing.T) {
	s := &testState{}
	r, err := New(testPages(s, true))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	page, err := r.Page("general")
	if err != nil {
		t.Fatalf("Page failed: %v", err)
	}
	for _, item := range page.Items() {
		if item.Field().IsCustom() {
			continue
		}
		switch item.Field().Kind() {
		case KindCheckbox:
			_ = item.Field().Set(true)
		case KindNumber:
			_ = item.Field().Set(100.0)
		case KindInput:
			_ = item.Field().Set("/bin/sh")
		}
	}
	s.shared = "untouched"

	if err := r.Reset("general"); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}

	for _, item := range page.Items() {
		if item.Field().IsCustom() {
			continue
		}
		def, _ := item.Default()
		got, _ := item.Field().Get()
		if got != def {
			t.Errorf("%s = %v after reset, want %v", item.Label(), got, def)
		}
	}
	if s.shared != "untouched" {
		t.Errorf("reset touched a field outside the page: shared = %q", s.shared)
	}
}

func TestRegistry_ResetScenarios(t *testing.T) {
	s := &testState{}
	r := MustNew(testPages(s, true))
	page, _ := r.Page("General")

	theme, ok := page.Item("auto switch theme")
	if !ok {
		t.Fatal("expected Auto Switch Theme item")
	}
	if err := theme.Field().Set(true); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if v, _ := theme.Field().Get(); v != true {
		t.Errorf("Auto Switch Theme = %v, want true", v)
	}

	size, _ := page.Item("Font Size")
	if err := size.Field().Set(100.0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if v, _ := size.Field().Get(); v != 72.0 {
		t.Errorf("Font Size = %v, want 72 (clamped)", v)
	}

	if err := r.Reset(page.ID()); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if s.autoSwitchTheme {
		t.Error("Auto Switch Theme not restored to false")
	}
	if s.fontSize != 14 {
		t.Errorf("Font Size = %v after reset, want 14", s.fontSize)
	}
}

func TestRegistry_ResetNotResettable(t *testing.T) {
	s := &testState{autoSwitchTheme: true, fontSize: 30, cliPath: "/bin/zsh"}
	r, err := New(testPages(s, false))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	before := *s
	err = r.Reset("general")
	if !errors.Is(err, ErrNotResettable) {
		t.Fatalf("expected ErrNotResettable, got %v", err)
	}
	if *s != before {
		t.Errorf("state changed on rejected reset: got %+v, want %+v", *s, before)
	}
}

func TestRegistry_ResetUnknownPage(t *testing.T) {
	r := MustNew(testPages(&testState{}, true))
	if err := r.Reset("explorer"); !errors.Is(err, ErrPageNotFound) {
		t.Fatalf("expected ErrPageNotFound, got %v", err)
	}
}

func TestRegistry_ResetLastDeclaredWins(t *testing.T) {
	var key string
	acc := stringVar(&key)
	r := MustNew([]Page{{
		Title:      "Aliases",
		Resettable: true,
		Groups: []Group{
			{Items: []*Item{NewItem("A", Input(acc)).WithDefault("from-a")}},
			{Items: []*Item{NewItem("B", Input(acc)).WithDefault("from-b")}},
		},
	}})

	key = "edited"
	if err := r.Reset("aliases"); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if key != "from-b" {
		t.Errorf("key = %q, want %q", key, "from-b")
	}
}

func TestRegistry_ResetAllSkipsNonResettable(t *testing.T) {
	s := &testState{}
	pages := testPages(s, true)
	pages[1].Resettable = false
	r := MustNew(pages)

	s.fontSize = 50
	s.shared = "kept"
	ids, err := r.ResetAll()
	if err != nil {
		t.Fatalf("ResetAll failed: %v", err)
	}
	if len(ids) != 1 || ids[0] != "general" {
		t.Errorf("ResetAll reset %v, want [general]", ids)
	}
	if s.fontSize != 14 {
		t.Errorf("fontSize = %v, want 14", s.fontSize)
	}
	if s.shared != "kept" {
		t.Errorf("shared = %q, want kept", s.shared)
	}
}

func TestRegistry_Modified(t *testing.T) {
	s := &testState{fontSize: 14, cliPath: "/usr/local/bin/bash"}
	r := MustNew(testPages(s, true))

	items, err := r.Modified("general")
	if err != nil {
		t.Fatalf("Modified failed: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected no modified items, got %d", len(items))
	}

	s.fontSize = 20
	items, _ = r.Modified("general")
	if len(items) != 1 || items[0].Label() != "Font Size" {
		t.Errorf("Modified() = %v, want [Font Size]", items)
	}
}

func TestRegistry_BuildIdempotent(t *testing.T) {
	s := &testState{autoSwitchTheme: true, fontSize: 18, cliPath: "/bin/fish"}
	build := func() []Page { return testPages(s, true) }

	first, err := Build(build)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	second, err := Build(build)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	var values []Value
	_ = first.Walk(func(_ *Page, _ *Group, item *Item) error {
		if v, err := item.Field().Get(); err == nil {
			values = append(values, v)
		}
		return nil
	})
	i := 0
	_ = second.Walk(func(_ *Page, _ *Group, item *Item) error {
		v, err := item.Field().Get()
		if err != nil {
			return nil
		}
		if v != values[i] {
			t.Errorf("item %q: %v != %v", item.Label(), v, values[i])
		}
		i++
		return nil
	})
	if i != len(values) {
		t.Errorf("walked %d value items, want %d", i, len(values))
	}
}

func TestNew_ConfigErrors(t *testing.T) {
	var (
		flag bool
		text string
		num  float64
	)
	tests := []struct {
		name string
		page Page
		want error
	}{
		{
			name: "missing default on resettable page",
			page: Page{Title: "P", Resettable: true, Groups: []Group{{Items: []*Item{NewItem("x", Switch(boolVar(&flag)))}}}},
			want: ErrMissingDefault,
		},
		{
			name: "duplicate default",
			page: Page{Title: "P", Groups: []Group{{Items: []*Item{NewItem("x", Switch(boolVar(&flag))).WithDefault(true).WithDefault(false)}}}},
			want: ErrDuplicateDefault,
		},
		{
			name: "wrong default type",
			page: Page{Title: "P", Groups: []Group{{Items: []*Item{NewItem("x", Input(stringVar(&text))).WithDefault(1.0)}}}},
			want: ErrDefaultType,
		},
		{
			name: "default outside options",
			page: Page{Title: "P", Groups: []Group{{Items: []*Item{NewItem("x", Dropdown([]Option{{Value: "a"}}, stringVar(&text))).WithDefault("b")}}}},
			want: ErrUnknownOption,
		},
		{
			name: "bad bounds",
			page: Page{Title: "P", Groups: []Group{{Items: []*Item{NewItem("x", NumberInput(NumberOptions{Min: 2, Max: 1}, floatVar(&num)))}}}},
			want: ErrInvalidBounds,
		},
		{
			name: "number default above max",
			page: Page{Title: "P", Resettable: true, Groups: []Group{{Items: []*Item{NewItem("Font Size", NumberInput(NumberOptions{Min: 8, Max: 72}, floatVar(&num))).WithDefault(100.0)}}}},
			want: ErrDefaultType,
		},
		{
			name: "number default below min",
			page: Page{Title: "P", Groups: []Group{{Items: []*Item{NewItem("x", NumberInput(NumberOptions{Min: 8, Max: 72}, floatVar(&num))).WithDefault(4.0)}}}},
			want: ErrDefaultType,
		},
		{
			name: "nil item",
			page: Page{Title: "P", Groups: []Group{{Items: []*Item{nil}}}},
			want: ErrNilItem,
		},
		{
			name: "empty title",
			page: Page{Title: "  "},
			want: ErrEmptyTitle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New([]Page{tt.page})
			if !errors.Is(err, tt.want) {
				t.Fatalf("New() error = %v, want %v", err, tt.want)
			}
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Errorf("expected *ConfigError, got %T", err)
			}
		})
	}
}

func TestNew_MissingDefaultAllowedOnFixedPage(t *testing.T) {
	var flag bool
	_, err := New([]Page{{Title: "Fixed", Groups: []Group{{Items: []*Item{NewItem("x", Switch(boolVar(&flag)))}}}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNew_DuplicatePage(t *testing.T) {
	_, err := New([]Page{{Title: "Software Update"}, {Title: "software-update"}})
	if !errors.Is(err, ErrDuplicatePage) {
		t.Fatalf("expected ErrDuplicatePage, got %v", err)
	}
}

func TestMustNew_Panics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for invalid pages")
		}
	}()
	MustNew([]Page{{Title: ""}})
}

func TestRegistry_DefaultPageAndPresentation(t *testing.T) {
	r := MustNew(testPages(&testState{}, true), WithPresentation(Presentation{Size: SizeSmall, GroupVariant: GroupFill}))
	if p := r.DefaultPage(); p == nil || p.Title != "General" {
		t.Fatalf("DefaultPage() = %v, want General", p)
	}
	item := NewItem("x", Custom(func(RenderOptions) Element { return nil })).WithLayout(Vertical)
	opts := r.RenderOptions(item)
	if opts.Size != SizeSmall || opts.GroupVariant != GroupFill || opts.Layout != Vertical {
		t.Errorf("RenderOptions() = %+v", opts)
	}
}

func TestPageID(t *testing.T) {
	tests := map[string]string{
		"General":          "general",
		"Software Update":  "software-update",
		"  About  ":        "about",
		"Icon Themes / v2": "icon-themes-v2",
	}
	for title, want := range tests {
		p := Page{Title: title}
		if got := p.ID(); got != want {
			t.Errorf("ID(%q) = %q, want %q", title, got, want)
		}
	}
}

func TestPresentationParsing(t *testing.T) {
	for _, s := range Sizes() {
		if got := ParseSize(s.String()); got != s {
			t.Errorf("ParseSize(%q) = %v, want %v", s.String(), got, s)
		}
	}
	for _, v := range GroupVariants() {
		if got := ParseGroupVariant(v.String()); got != v {
			t.Errorf("ParseGroupVariant(%q) = %v, want %v", v.String(), got, v)
		}
	}
	if got := ParseSize("huge"); got != SizeMedium {
		t.Errorf("ParseSize(huge) = %v, want medium", got)
	}
}
