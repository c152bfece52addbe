package cmd

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/linruohan/nohrs/internal/ci"
	"github.com/linruohan/nohrs/internal/config"
	"github.com/linruohan/nohrs/internal/render"
	"github.com/linruohan/nohrs/internal/settings"
	"github.com/linruohan/nohrs/internal/ui"
	"github.com/linruohan/nohrs/internal/validate"
)

// errUnknownSetting is returned by settings set for labels not on the page.
var errUnknownSetting = errors.New("unknown setting")

var (
	resetAll    bool
	exportQuery string
)

var settingsShowCmd = &cobra.Command{
	Use:   "show [page...]",
	Short: "Print settings pages",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := buildRegistry()
		if err != nil {
			return err
		}
		return render.WriteText(cmd.OutOrStdout(), reg, args...)
	},
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset [page]",
	Short: "Restore the defaults of a page",
	Args: func(cmd *cobra.Command, args []string) error {
		if resetAll {
			return cobra.NoArgs(cmd, args)
		}
		return cobra.ExactArgs(1)(cmd, args)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := buildRegistry()
		if err != nil {
			return err
		}
		if resetAll {
			ids, err := reg.ResetAll()
			if err != nil {
				return err
			}
			logger.Info("settings reset", "pages", strings.Join(ids, ", "))
		} else {
			if err := reg.Reset(args[0]); err != nil {
				return err
			}
			logger.Info("settings reset", "page", args[0])
		}
		return saveSettings()
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <page> <label> <value> | <page> <label=value>...",
	Short: "Change settings from the command line",
	Long: `Change one or more settings on a page. Values are parsed the way
the settings view parses them: on/off for switches, numbers are
clamped to their range, and dropdown values must be one of the
options.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		assignments, err := parseAssignments(args[1:])
		if err != nil {
			return err
		}
		logger.Debug("applying settings", "page", args[0], "values", formatAssignments(assignments))
		reg, err := buildRegistry()
		if err != nil {
			return err
		}
		changes, err := applyAssignments(reg, args[0], assignments)
		for _, change := range changes {
			fmt.Fprintln(cmd.OutOrStdout(), change)
		}
		if len(changes) > 0 {
			if saveErr := saveSettings(); saveErr != nil {
				return saveErr
			}
		}
		return err
	},
}

var settingsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the current settings as JSON",
	Long: `Print every page and its values as JSON. --query takes a gjson
path, for example general.items.font-size.value.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := buildRegistry()
		if err != nil {
			return err
		}
		doc, err := render.Export(reg)
		if err != nil {
			return err
		}
		if exportQuery != "" {
			match, ok := render.Query(doc, exportQuery)
			if !ok {
				return fmt.Errorf("%w: no value at %q", errUnknownSetting, exportQuery)
			}
			doc = match
		}
		fmt.Fprintln(cmd.OutOrStdout(), doc)
		return nil
	},
}

var settingsCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate configuration, saved settings and the settings tree",
	Long: `Check the nohrs configuration file, the persisted settings file,
the declared settings pages and the configured CLI path.

In GitHub Actions, output is formatted with log groups and
annotations.`,
	RunE: runSettingsCheck,
}

func init() {
	settingsResetCmd.Flags().BoolVar(&resetAll, "all", false, "Reset every resettable page")
	settingsExportCmd.Flags().StringVar(&exportQuery, "query", "", "Print only the value at this path")

	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsResetCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsExportCmd)
	settingsCmd.AddCommand(settingsCheckCmd)
}

// applyAssignments parses and writes each assignment through its field. It
// stops at the first failure and returns the changes made so far.
func applyAssignments(reg *settings.Registry, pageID string, assignments []assignment) ([]render.Change, error) {
	page, err := reg.Page(pageID)
	if err != nil {
		return nil, err
	}

	var changes []render.Change
	for _, a := range assignments {
		item, ok := page.Item(a.Label)
		if !ok {
			return changes, fmt.Errorf("%w: %q on page %q", errUnknownSetting, a.Label, page.Title)
		}
		field := item.Field()
		value, err := field.Parse(a.Value)
		if err != nil {
			return changes, fmt.Errorf("%s: %w", item.Label(), err)
		}
		before, err := field.Get()
		if err != nil {
			return changes, fmt.Errorf("%s: %w", item.Label(), err)
		}
		if err := field.Set(value); err != nil {
			return changes, fmt.Errorf("%s: %w", item.Label(), err)
		}
		after, _ := field.Get()
		if after == before {
			continue
		}
		changes = append(changes, render.Change{
			Page: page.Title,
			Item: item.Label(),
			From: field.Format(before),
			To:   field.Format(after),
		})
		logger.Debug("setting changed", "page", page.Title, "item", item.Label(), "value", after)
	}
	return changes, nil
}

func runSettingsCheck(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	ciEnv := ci.Detect()

	configPath := cfgFile
	if configPath == "" {
		var err error
		configPath, err = config.GetConfigPath()
		if err != nil {
			return err
		}
	}

	results := []validate.Result{
		validate.Config(configPath),
		validate.State(statePath()),
		validate.Registry(buildRegistry),
	}
	if snapshot, err := store.Snapshot(); err == nil {
		results = append(results, validate.CLIPath(snapshot.CLIPath))
	}

	ui.StartScreen("SETTINGS CHECK", "Configuration, saved settings and declared pages")

	var errs, warnings int
	for i, result := range results {
		ci.StartGroup(result.Section)
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out, ui.Title.Render(result.Section))
		for _, item := range result.Items {
			line := fmt.Sprintf("  %s %s", statusIcon(item.Status), item.Name)
			if item.Details != "" {
				line += " " + ui.MutedStyle.Render("("+item.Details+")")
			}
			fmt.Fprintln(out, line)
		}
		for _, msg := range result.Errors {
			file := ""
			if result.Section == "Configuration" {
				file = filepath.Base(configPath)
			}
			ci.LogError(msg, file)
		}
		for _, msg := range result.Warnings {
			ci.LogWarning(msg)
		}
		ci.EndGroup()

		errs += len(result.Errors)
		warnings += len(result.Warnings)
	}

	fmt.Fprintln(out)
	printCheckSummary(out, errs, warnings)

	if ciEnv.IsGitHubActions {
		if err := ci.AddSummary(checkSummaryMarkdown(results, ciEnv)); err != nil {
			logger.Warn("could not write job summary", "error", err)
		}
	}

	if errs > 0 {
		return fmt.Errorf("settings check failed with %d error(s)", errs)
	}
	return nil
}

func statusIcon(status validate.Status) string {
	switch status {
	case validate.StatusSuccess:
		return ui.StatusSuccess.String()
	case validate.StatusWarning:
		return ui.StatusWarning.String()
	case validate.StatusError:
		return ui.StatusError.String()
	default:
		return ui.StatusPending.String()
	}
}

func printCheckSummary(w io.Writer, errs, warnings int) {
	switch {
	case errs > 0:
		fmt.Fprintln(w, ui.ErrorStyle.Render(fmt.Sprintf("%d error(s), %d warning(s)", errs, warnings)))
	case warnings > 0:
		fmt.Fprintln(w, ui.WarningStyle.Render(fmt.Sprintf("No errors, %d warning(s)", warnings)))
	default:
		fmt.Fprintln(w, ui.SuccessStyle.Render("All checks passed"))
	}
}

func checkSummaryMarkdown(results []validate.Result, env *ci.Environment) string {
	var b strings.Builder
	b.WriteString("## nohrs settings check\n\n")
	if run := env.RunLabel(); run != "" {
		b.WriteString("_" + run + "_\n\n")
	}
	b.WriteString("| Section | Item | Status |\n|---|---|---|\n")
	for _, result := range results {
		for _, item := range result.Items {
			fmt.Fprintf(&b, "| %s | %s | %s |\n", result.Section, item.Name, item.Status)
		}
	}
	return b.String()
}
