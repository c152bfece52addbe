// Package pages declares the nohrs settings pages and the top-level page
// navigation.
package pages

import (
	"sync"

	"github.com/linruohan/nohrs/internal/config"
	"github.com/linruohan/nohrs/internal/render"
	"github.com/linruohan/nohrs/internal/settings"
	"github.com/linruohan/nohrs/internal/state"
)

const (
	RepositoryURL    = "https://github.com/longbridge/gpui-component"
	DocumentationURL = "https://docs.rs/gpui-component"
)

// View holds presentation state owned by the settings view rather than by
// the settings record.
type View struct {
	mu           sync.Mutex
	groupVariant settings.GroupVariant
	size         settings.Size
}

// NewView returns a view with the default presentation.
func NewView() *View {
	p := settings.DefaultPresentation()
	return &View{groupVariant: p.GroupVariant, size: p.Size}
}

// Presentation returns the current presentation options.
func (v *View) Presentation() settings.Presentation {
	v.mu.Lock()
	defer v.mu.Unlock()
	return settings.Presentation{Size: v.size, GroupVariant: v.groupVariant}
}

func (v *View) variantAccessor() settings.Accessor[string] {
	return settings.NewAccessor(
		func() string {
			v.mu.Lock()
			defer v.mu.Unlock()
			return v.groupVariant.String()
		},
		func(s string) {
			v.mu.Lock()
			defer v.mu.Unlock()
			v.groupVariant = settings.ParseGroupVariant(s)
		},
	)
}

func (v *View) sizeAccessor() settings.Accessor[string] {
	return settings.NewAccessor(
		func() string {
			v.mu.Lock()
			defer v.mu.Unlock()
			return v.size.String()
		},
		func(s string) {
			v.mu.Lock()
			defer v.mu.Unlock()
			v.size = settings.ParseSize(s)
		},
	)
}

// Build declares the settings pages over store and view. The store must be
// initialized. Build only reads state, so it may be called on every render
// pass.
func Build(store *state.Store, view *View, opts ...settings.RegistryOption) (*settings.Registry, error) {
	opts = append([]settings.RegistryOption{settings.WithPresentation(view.Presentation())}, opts...)
	return settings.Build(func() []settings.Page {
		return declare(store, view)
	}, opts...)
}

func declare(store *state.Store, view *View) []settings.Page {
	defaults := config.DefaultAppSettings()
	resettable := defaults.Resettable
	_ = store.Read(func(s config.AppSettings) {
		resettable = s.Resettable
	})

	flag := func(field func(*config.AppSettings) *bool) settings.Accessor[bool] {
		return state.Bind(store, field)
	}

	variants := make([]settings.Option, 0, len(settings.GroupVariants()))
	for _, gv := range settings.GroupVariants() {
		variants = append(variants, settings.Option{Value: gv.String(), Label: gv.Label()})
	}
	sizes := []settings.Option{
		{Value: settings.SizeMedium.String(), Label: settings.SizeMedium.Label()},
		{Value: settings.SizeSmall.String(), Label: settings.SizeSmall.Label()},
		{Value: settings.SizeXSmall.String(), Label: settings.SizeXSmall.Label()},
	}
	fonts := make([]settings.Option, 0, len(config.FontFamilies()))
	for _, name := range config.FontFamilies() {
		fonts = append(fonts, settings.Option{Value: name, Label: name})
	}
	initial := settings.DefaultPresentation()

	return []settings.Page{
		{
			Title:       "General",
			Resettable:  resettable,
			DefaultOpen: true,
			Groups: []settings.Group{
				{
					Title: "Appearance",
					Items: []*settings.Item{
						settings.NewItem("Dark Mode",
							settings.Switch(flag(func(s *config.AppSettings) *bool { return &s.DarkMode }))).
							WithDescription("Switch between light and dark themes.").
							WithDefault(defaults.DarkMode),
						settings.NewItem("Auto Switch Theme",
							settings.Checkbox(flag(func(s *config.AppSettings) *bool { return &s.AutoSwitchTheme }))).
							WithDescription("Automatically switch theme based on system settings.").
							WithDefault(defaults.AutoSwitchTheme),
						settings.NewItem("Resettable",
							settings.Switch(flag(func(s *config.AppSettings) *bool { return &s.Resettable }))).
							WithDescription("Enable/disable this to test the reset functionality.").
							WithDefault(defaults.Resettable),
						settings.NewItem("Group Variant",
							settings.Dropdown(variants, view.variantAccessor())).
							WithDescription("Select the variant for setting groups.").
							WithDefault(initial.GroupVariant.String()),
						settings.NewItem("Group Size",
							settings.Dropdown(sizes, view.sizeAccessor())).
							WithDescription("Select the size for the setting group.").
							WithDefault(initial.Size.String()),
					},
				},
				{
					Title: "Font",
					Items: []*settings.Item{
						settings.NewItem("Font Family",
							settings.Dropdown(fonts, state.Bind(store, func(s *config.AppSettings) *string { return &s.FontFamily }))).
							WithDescription("Select the font family for the story.").
							WithDefault(defaults.FontFamily),
						settings.NewItem("Font Size",
							settings.NumberInput(
								settings.NumberOptions{Min: config.MinFontSize, Max: config.MaxFontSize, Step: 1},
								state.Bind(store, func(s *config.AppSettings) *float64 { return &s.FontSize }))).
							WithDescription("Adjust the font size for better readability between 8 and 72.").
							WithDefault(defaults.FontSize),
						settings.NewItem("Line Height",
							settings.NumberInput(
								settings.NumberOptions{Min: config.MinLineHeight, Max: config.MaxLineHeight, Step: 1},
								state.Bind(store, func(s *config.AppSettings) *float64 { return &s.LineHeight }))).
							WithDescription("Adjust the line height for better readability between 8 and 32.").
							WithDefault(defaults.LineHeight),
					},
				},
				{
					Title: "Other",
					Items: []*settings.Item{
						settings.NewCustomItem(func(settings.RenderOptions) settings.Element {
							return render.Stack{
								render.Text{Body: "This is a custom element item."},
								render.Link{Label: "Repository...", URL: RepositoryURL},
							}
						}),
						settings.NewItem("CLI Path",
							settings.Input(state.Bind(store, func(s *config.AppSettings) *string { return &s.CLIPath }))).
							WithLayout(settings.Vertical).
							WithDescription("Path to the CLI executable.\nThis item uses vertical layout. The title, description, and field are all aligned vertically with width 100%.").
							WithDefault(defaults.CLIPath),
					},
				},
			},
		},
		{
			Title:      "Software Update",
			Resettable: resettable,
			Groups: []settings.Group{
				{
					Title: "Updates",
					Items: []*settings.Item{
						settings.NewItem("Enable Notifications",
							settings.Switch(flag(func(s *config.AppSettings) *bool { return &s.NotificationsEnabled }))).
							WithDescription("Receive notifications about updates and news.").
							WithDefault(defaults.NotificationsEnabled),
						settings.NewItem("Auto Update",
							settings.Switch(flag(func(s *config.AppSettings) *bool { return &s.AutoUpdate }))).
							WithDescription("Automatically download and install updates.").
							WithDefault(defaults.AutoUpdate),
					},
				},
			},
		},
		{
			Title:      "About",
			Resettable: resettable,
			Groups: []settings.Group{
				{
					Items: []*settings.Item{
						settings.NewCustomItem(func(settings.RenderOptions) settings.Element {
							return render.Text{
								Title:    "NOHRS - File Manager",
								Body:     "A modern file manager for the terminal.",
								Centered: true,
							}
						}),
					},
				},
				{
					Title: "Links",
					Items: []*settings.Item{
						settings.NewItem("GitHub Repository", render.OpenURL("Repository...", RepositoryURL)).
							WithDescription("Open the GitHub repository in your default browser."),
						settings.NewItem("Documentation", render.OpenURL("Rust Docs...", DocumentationURL)).
							WithDescription("Rust doc for the gpui-component crate."),
					},
				},
			},
		},
	}
}
