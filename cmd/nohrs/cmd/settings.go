package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/linruohan/nohrs/internal/platform"
	"github.com/linruohan/nohrs/internal/render"
	"github.com/linruohan/nohrs/internal/settings"
	"github.com/linruohan/nohrs/internal/ui"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Browse and edit nohrs settings",
	Long: `Open the settings view. Without a terminal the settings are
printed instead.

Examples:
  nohrs settings
  nohrs settings show general
  nohrs settings set general "Font Size=18" "Dark Mode=on"
  nohrs settings reset --all
  nohrs settings export --query general.items.font-size.value
  nohrs settings check`,
	RunE: runSettings,
}

const (
	settingsActionResetAll = "reset-all"
	settingsActionExit     = "exit"

	pageActionEdit    = "edit"
	pageActionPreview = "preview"
	pageActionReset   = "reset"
	pageActionLink    = "link:"
)

func runSettings(cmd *cobra.Command, args []string) error {
	if !ui.IsInteractiveTerminal() {
		reg, err := buildRegistry()
		if err != nil {
			return err
		}
		return render.WriteText(os.Stdout, reg)
	}

	ui.StartScreen("SETTINGS", "Select a settings page")

	selected := ""
	for {
		reg, err := buildRegistry()
		if err != nil {
			return err
		}
		if selected == "" {
			if page := reg.DefaultPage(); page != nil {
				selected = page.ID()
			}
		}

		choice, err := ui.RunMenuWithOptions("SETTINGS", "Select a settings page", settingsMenuItems(reg),
			ui.WithBackNavigation("Back"),
			ui.WithInitialSelectionID(selected),
			ui.WithStatus("Saved to", stateSource()),
			ui.WithStatus("Layout", presentationLabel(reg.Presentation)),
		)
		if err != nil {
			return err
		}

		switch choice {
		case ui.MenuActionBack, ui.MenuActionQuit, settingsActionExit, "":
			return nil
		case settingsActionResetAll:
			if err := confirmResetAll(reg); err != nil {
				if errors.Is(err, huh.ErrUserAborted) {
					continue
				}
				return err
			}
		default:
			selected = choice
			if err := runSettingsPage(choice); err != nil {
				if errors.Is(err, huh.ErrUserAborted) {
					continue
				}
				return err
			}
		}
	}
}

func settingsMenuItems(reg *settings.Registry) []ui.MenuItem {
	items := make([]ui.MenuItem, 0, len(reg.Pages())+2)
	for _, page := range reg.Pages() {
		items = append(items, ui.MenuItem{
			ID:        page.ID(),
			TitleText: page.Title,
			Details:   pageSummary(reg, page),
			Badge:     modifiedBadge(reg, page),
			Preview:   render.PageText(reg, page),
		})
	}
	return append(items,
		ui.MenuItem{ID: settingsActionResetAll, TitleText: "Reset All", Details: "Restore defaults on every resettable page"},
		ui.MenuItem{ID: settingsActionExit, TitleText: "Exit", Details: "Close the settings view"},
	)
}

func pageSummary(reg *settings.Registry, page *settings.Page) string {
	parts := []string{fmt.Sprintf("%d settings", len(page.Items()))}
	if badge := modifiedBadge(reg, page); badge != "" {
		parts = append(parts, badge)
	}
	if !page.Resettable {
		parts = append(parts, "fixed")
	}
	return strings.Join(parts, ", ")
}

func modifiedBadge(reg *settings.Registry, page *settings.Page) string {
	modified, err := reg.Modified(page.ID())
	if err != nil || len(modified) == 0 {
		return ""
	}
	return fmt.Sprintf("%d modified", len(modified))
}

func presentationLabel(p settings.Presentation) string {
	return p.GroupVariant.Label() + ", " + p.Size.Label()
}

func stateSource() string {
	if store.Persistent() {
		return statePath()
	}
	return "this session"
}

func runSettingsPage(id string) error {
	for {
		reg, err := buildRegistry()
		if err != nil {
			return err
		}
		page, err := reg.Page(id)
		if err != nil {
			return err
		}
		links, err := render.Links(reg, id)
		if err != nil {
			return err
		}

		items := []ui.MenuItem{
			{ID: pageActionEdit, TitleText: "Edit", Details: "Change the values on this page"},
			{ID: pageActionPreview, TitleText: "Preview", Details: "Show the page as it is laid out", Preview: render.PageText(reg, page)},
		}
		reset := ui.MenuItem{ID: pageActionReset, TitleText: "Reset", Details: "Restore the defaults of this page"}
		if !page.Resettable {
			reset.Details = "This page cannot be reset"
			reset.Disabled = true
		}
		items = append(items, reset)
		for i, link := range links {
			items = append(items, ui.MenuItem{
				ID:        pageActionLink + strconv.Itoa(i),
				TitleText: link.Label,
				Details:   link.URL,
			})
		}

		choice, err := ui.RunMenuWithOptions(strings.ToUpper(page.Title), pageSummary(reg, page), items,
			ui.WithBackNavigation("Back"),
			ui.WithStatus("Saved to", stateSource()),
		)
		if err != nil {
			return err
		}

		switch {
		case choice == ui.MenuActionBack || choice == "":
			return nil
		case choice == ui.MenuActionQuit:
			return huh.ErrUserAborted
		case choice == pageActionEdit:
			if err := editPage(reg, id); err != nil {
				if errors.Is(err, huh.ErrUserAborted) {
					continue
				}
				return err
			}
		case choice == pageActionPreview:
			ui.StartScreen(strings.ToUpper(page.Title), "Preview")
			fmt.Println(render.PageText(reg, page))
			if err := waitForEnter("Press enter to return"); err != nil {
				return err
			}
		case choice == pageActionReset:
			if err := resetPage(reg, id); err != nil {
				return err
			}
		case strings.HasPrefix(choice, pageActionLink):
			i, err := strconv.Atoi(strings.TrimPrefix(choice, pageActionLink))
			if err != nil || i < 0 || i >= len(links) {
				continue
			}
			if err := openLink(links[i]); err != nil {
				logger.Warn("could not open link", "url", links[i].URL, "error", err)
			}
		}
	}
}

func editPage(reg *settings.Registry, id string) error {
	form, err := render.NewPageForm(reg, id,
		render.WithKeyMap(pageFormKeyMap()),
		render.WithLogger(logger),
		render.WithAccessible(os.Getenv("ACCESSIBLE") != ""),
	)
	if err != nil {
		return err
	}
	if err := form.Run(); err != nil {
		return err
	}

	changes, err := form.Apply()
	if len(changes) > 0 {
		if saveErr := saveSettings(); saveErr != nil {
			return saveErr
		}
	}
	if err != nil {
		fmt.Println(ui.ErrorBox.Render(err.Error()))
		return waitForEnter("Press enter to return")
	}
	if len(changes) == 0 {
		return nil
	}

	lines := make([]string, 0, len(changes))
	for _, change := range changes {
		lines = append(lines, change.String())
	}
	fmt.Println(ui.InfoBox.Render(ui.SuccessStyle.Render(form.Page().Title+" updated") + "\n\n" + strings.Join(lines, "\n")))
	return waitForEnter("Press enter to return")
}

func resetPage(reg *settings.Registry, id string) error {
	if err := reg.Reset(id); err != nil {
		if errors.Is(err, settings.ErrNotResettable) {
			logger.Warn("page cannot be reset", "page", id)
			return nil
		}
		return err
	}
	logger.Info("settings reset", "page", id)
	return saveSettings()
}

func confirmResetAll(reg *settings.Registry) error {
	var ok bool
	err := huh.NewConfirm().
		Title("Reset all settings?").
		Description("Every resettable page goes back to its defaults.").
		Affirmative("Reset").
		Negative("Cancel").
		Value(&ok).
		WithTheme(ui.HuhTheme()).
		Run()
	if err != nil || !ok {
		return err
	}

	ids, err := reg.ResetAll()
	if err != nil {
		return err
	}
	logger.Info("settings reset", "pages", strings.Join(ids, ", "))
	return saveSettings()
}

// saveSettings writes the record when persistence is enabled.
func saveSettings() error {
	if !store.Persistent() {
		return nil
	}
	return ui.RunWithSpinner("Saving settings", store.Save)
}

func openLink(link render.Link) error {
	return ui.RunWithSpinner("Opening "+link.Label, func() error {
		return platform.OpenURL(context.Background(), link.URL, logger)
	})
}
