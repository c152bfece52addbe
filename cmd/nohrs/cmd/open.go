package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/linruohan/nohrs/internal/pages"
	"github.com/linruohan/nohrs/internal/ui"
)

var openCmd = &cobra.Command{
	Use:   "open <page>",
	Short: "Open a top-level page",
	Long: `Open one of the nohrs pages by name.

Pages: ` + pageNames() + `

Only the settings page is available in the terminal; the others
print a placeholder.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: pageIDs(),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := pages.ParseKind(args[0])
		if err != nil {
			return err
		}
		return openKind(kind)
	},
}

func openKind(kind pages.Kind) error {
	if kind == pages.Settings {
		return runSettings(settingsCmd, nil)
	}
	ui.StartScreen(strings.ToUpper(kind.Label()), kind.Description())
	fmt.Println(ui.InfoBox.Render(fmt.Sprintf("%s is not implemented yet.", kind.Label())))
	logger.Debug("placeholder page", "page", kind.ID())
	return nil
}

func pageIDs() []string {
	ids := make([]string, 0, len(pages.Kinds()))
	for _, kind := range pages.Kinds() {
		ids = append(ids, kind.ID())
	}
	return ids
}

func pageNames() string {
	return strings.Join(pageIDs(), ", ")
}
