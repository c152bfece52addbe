package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/linruohan/nohrs/internal/config"
	"github.com/linruohan/nohrs/internal/pages"
	"github.com/linruohan/nohrs/internal/settings"
	"github.com/linruohan/nohrs/internal/state"
	"github.com/linruohan/nohrs/internal/ui"
)

var (
	verbose   bool
	quiet     bool
	noColor   bool
	cfgFile   string
	stateFile string
	logger    *log.Logger
	cfg       *config.Config
	store     *state.Store
	view      = pages.NewView()
)

var rootCmd = &cobra.Command{
	Use:   "nohrs",
	Short: "Browse and edit nohrs settings",
	Long: ui.Banner() + `
nohrs is a file manager. This binary exposes its page navigation
and the declarative settings view in the terminal.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogger()

		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadDefault()
		}
		if err != nil {
			logger.Warn("could not load config, using defaults", "error", err)
			cfg = config.DefaultConfig()
		}

		if err := initStore(); err != nil {
			return err
		}

		applyUISettings()
		setupLogger()

		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return runRootTUI()
		}
		return cmd.Help()
	},
}

// initStore creates the process-wide settings store and keeps the UI palette
// in sync with the Dark Mode switches.
func initStore() error {
	opts := []state.Option{state.WithLogger(logger)}
	if path := statePath(); path != "" {
		opts = append(opts, state.WithPersister(state.NewFilePersister(path)))
	}
	store = state.Default(opts...)
	if err := store.Ensure(); err != nil {
		return err
	}

	store.Subscribe(func(old, updated config.AppSettings) {
		if old.DarkMode != updated.DarkMode || old.AutoSwitchTheme != updated.AutoSwitchTheme {
			logger.Debug("appearance changed", "dark", updated.DarkMode, "auto", updated.AutoSwitchTheme)
			applyUISettings()
		}
	})
	return nil
}

// statePath returns the settings file to persist to, or "" when settings only
// live for the session.
func statePath() string {
	if stateFile != "" {
		return stateFile
	}
	if cfg != nil && cfg.State.Persist {
		if path, err := cfg.StatePath(); err == nil {
			return path
		}
	}
	return ""
}

func buildRegistry() (*settings.Registry, error) {
	return pages.Build(store, view, settings.WithLogger(logger))
}

func runRootTUI() error {
	for {
		choice, err := ui.RunMenuWithOptions("NOHRS", "Choose a page to open.", rootMenuItems(), rootStatus()...)
		if err != nil {
			return runRootFallback()
		}

		if choice == ui.MenuActionQuit || choice == "exit" || choice == "" {
			return nil
		}

		if err := runRootChoice(choice); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				continue
			}
			return err
		}
	}
}

func rootMenuItems() []ui.MenuItem {
	items := make([]ui.MenuItem, 0, len(pages.Kinds())+1)
	for _, kind := range pages.Kinds() {
		item := ui.MenuItem{ID: kind.ID(), TitleText: kind.Label(), Details: kind.Description()}
		if !kind.Implemented() {
			item.Badge = "soon"
		}
		items = append(items, item)
	}
	return append(items, ui.MenuItem{ID: "exit", TitleText: "Exit", Details: "Close nohrs"})
}

func rootStatus() []ui.MenuOption {
	source := "session"
	if store != nil && store.Persistent() {
		source = statePath()
	}
	return []ui.MenuOption{ui.WithStatus("Settings", source)}
}

func runRootChoice(choice string) error {
	switch choice {
	case "exit", ui.MenuActionQuit, ui.MenuActionBack, "":
		return nil
	}
	kind, err := pages.ParseKind(choice)
	if err != nil {
		return err
	}
	if err := openKind(kind); err != nil {
		return err
	}
	if kind == pages.Settings {
		return nil
	}
	return waitForEnter("Press enter to return to the page list")
}

func runRootFallback() error {
	ui.StartScreen("NOHRS", "Choose a page to open.")
	options := make([]huh.Option[string], 0, len(pages.Kinds())+1)
	for _, kind := range pages.Kinds() {
		options = append(options, huh.NewOption(kind.Label(), kind.ID()))
	}
	options = append(options, huh.NewOption("Exit", "exit"))

	var fallbackChoice string
	fallbackErr := huh.NewSelect[string]().
		Title("Pages").
		Description("Which page would you like to open?").
		Options(options...).
		Value(&fallbackChoice).
		WithTheme(ui.HuhTheme()).
		Run()
	if fallbackErr != nil {
		if errors.Is(fallbackErr, huh.ErrUserAborted) {
			return nil
		}
		return fallbackErr
	}
	return runRootChoice(fallbackChoice)
}

func waitForEnter(prompt string) error {
	if !ui.IsInteractiveTerminal() {
		return nil
	}
	fmt.Println()
	fmt.Println(ui.HintStyle().Render(prompt))
	reader := bufio.NewReader(os.Stdin)
	_, err := reader.ReadString('\n')
	return err
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: user config dir/nohrs/nohrs.yaml)")
	rootCmd.PersistentFlags().StringVar(&stateFile, "state-file", "", "Persist settings to this file")

	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(versionCmd)
}

func applyUISettings() {
	prefs := ui.Preferences{
		Theme:   "aurora",
		NoColor: noColor,
		Dark:    true,
	}
	if cfg != nil {
		prefs.Theme = cfg.UI.Theme
		prefs.Dense = cfg.UI.Dense
		prefs.NoColor = cfg.UI.NoColor || noColor
	}
	if store != nil {
		_ = store.Read(func(s config.AppSettings) {
			prefs.Dark = s.DarkMode
			prefs.AutoDark = s.AutoSwitchTheme
		})
	}
	ui.ApplyPreferences(prefs)
}

func setupLogger() {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	if quiet {
		level = log.WarnLevel
	}

	styles := log.DefaultStyles()
	if !noColor && os.Getenv("NO_COLOR") == "" {
		styles.Levels[log.DebugLevel] = lipgloss.NewStyle().
			SetString("DEBUG").
			Foreground(ui.Muted).
			Bold(true)
		styles.Levels[log.InfoLevel] = lipgloss.NewStyle().
			SetString("INFO").
			Foreground(ui.Primary).
			Bold(true)
		styles.Levels[log.WarnLevel] = lipgloss.NewStyle().
			SetString("WARN").
			Foreground(ui.Warning).
			Bold(true)
		styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
			SetString("ERROR").
			Foreground(ui.Error).
			Bold(true)
	}

	if logger != nil {
		// The store holds on to the first logger; update it in place.
		logger.SetLevel(level)
		logger.SetReportTimestamp(verbose)
		logger.SetStyles(styles)
		return
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: verbose,
		TimeFormat:      time.Kitchen,
		Level:           level,
	})
	logger.SetStyles(styles)
}
