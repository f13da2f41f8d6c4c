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

	"github.com/iiroan/better-terminal/internal/config"
	"github.com/iiroan/better-terminal/internal/ui"
)

var (
	verbose bool
	quiet   bool
	noColor bool
	cfgFile string
	logger  *log.Logger
	manager *config.Manager
)

var rootCmd = &cobra.Command{
	Use:   "bterm",
	Short: "Manage better-terminal appearance settings",
	Long: ui.Banner() + `
bterm reads and writes the better-terminal config file: color
presets, custom colors, the title bar and the font.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogger()

		if cfgFile != "" {
			manager = config.OpenPath(cfgFile, logger)
		} else {
			manager = config.Open(logger)
		}

		applyUISettings()
		styleLogger()

		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 && ui.IsInteractiveTerminal() {
			return runRootTUI()
		}
		return cmd.Help()
	},
}

func runRootTUI() error {
	for {
		menuItems := []ui.MenuItem{
			{ID: "presets", TitleText: "Presets", Details: "Pick a built-in color scheme"},
			{ID: "titlebar", TitleText: "Title Bar", Details: "Show or hide the window title bar"},
			{ID: "font", TitleText: "Font", Details: "Change the font family and size"},
			{ID: "show", TitleText: "Show", Details: "Review the current settings and palette"},
			{ID: "exit", TitleText: "Exit", Details: "Close bterm"},
		}

		choice, err := ui.RunMenuWithOptions("BETTER TERMINAL", "Choose what to change.", menuItems,
			ui.WithFooterNote(manager.Path()))
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

		if err := waitForEnter("Press enter to return to the menu"); err != nil {
			return err
		}
	}
}

func runRootChoice(choice string) error {
	switch choice {
	case "presets":
		return runPresetPicker()
	case "titlebar":
		return setTitleBar("toggle")
	case "font":
		return runFontForm()
	case "show":
		return showCmd.RunE(showCmd, []string{})
	default:
		return nil
	}
}

func runRootFallback() error {
	ui.StartScreen("MAIN MENU", "Choose what to change.")
	var fallbackChoice string
	fallbackErr := huh.NewSelect[string]().
		Title("Better Terminal").
		Description("What would you like to do?").
		Options(
			huh.NewOption("Presets", "presets"),
			huh.NewOption("Title Bar", "titlebar"),
			huh.NewOption("Font", "font"),
			huh.NewOption("Show", "show"),
			huh.NewOption("Exit", "exit"),
		).
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
	fmt.Println(ui.HintStyle.Render(prompt))
	reader := bufio.NewReader(os.Stdin)
	_, err := reader.ReadString('\n')
	return err
}

// Execute runs the root command and logs any error it returns.
func Execute() error {
	err := rootCmd.Execute()
	if err == nil || errors.Is(err, huh.ErrUserAborted) {
		return nil
	}
	if logger == nil {
		setupLogger()
	}
	logger.Error(err)
	return err
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: ~/.config/better-terminal/better-terminal.conf)")

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(colorsCmd)
	rootCmd.AddCommand(titlebarCmd)
	rootCmd.AddCommand(fontCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// applyUISettings themes the UI with the terminal's own saved colors.
func applyUISettings() {
	colorsOff := noColor || os.Getenv("NO_COLOR") != ""
	s := manager.LoadAppSettings()
	ui.ApplyPreferences(ui.Preferences{NoColor: colorsOff}, s.Colors)
}

func setupLogger() {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	if quiet {
		level = log.WarnLevel
	}

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: verbose,
		TimeFormat:      time.Kitchen,
		Level:           level,
	})
	styleLogger()
}

// styleLogger colors the level labels from the active UI palette.
func styleLogger() {
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
	logger.SetStyles(styles)
}
