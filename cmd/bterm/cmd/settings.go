package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/iiroan/better-terminal/internal/preset"
	"github.com/iiroan/better-terminal/internal/settings"
	"github.com/iiroan/better-terminal/internal/ui"
)

const keepColors = "__keep__"

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Edit all settings interactively",
	RunE:  runSettings,
}

func runSettings(cmd *cobra.Command, args []string) error {
	loaded := manager.LoadAppSettings()

	titleBar := loaded.TitleBarVisible
	family := loaded.FontFamily
	size := formatPoints(loaded.FontSize)
	presetChoice := keepColors
	if _, ok := preset.ByName(loaded.Colors.ActivePreset); ok {
		presetChoice = loaded.Colors.ActivePreset
	}

	presetOptions := []huh.Option[string]{huh.NewOption("Keep current colors", keepColors)}
	for _, name := range preset.Names() {
		presetOptions = append(presetOptions, huh.NewOption(name, name))
	}

	changedWindow := false
	changedColors := false
	changedFont := false

	ui.StartScreen("SETTINGS", "Select a settings section to edit")

	for {
		choice, err := ui.RunMenuWithOptions("SETTINGS", "Select a settings section", []ui.MenuItem{
			{ID: "window", TitleText: "Window", Details: "Title bar visibility"},
			{ID: "colors", TitleText: "Colors", Details: "Built-in color preset", Preview: ui.Swatch(loaded.Colors)},
			{ID: "font", TitleText: "Font", Details: "Font family and size"},
			{ID: "save", TitleText: "Save & Exit", Details: "Write updates to " + manager.Path()},
			{ID: "exit", TitleText: "Exit", Details: "Leave without saving"},
		}, ui.WithBackNavigation("Back"), ui.WithFooterNote(manager.Path()))
		if err != nil {
			return err
		}

		var form *huh.Form
		switch choice {
		case "window":
			form = huh.NewForm(
				huh.NewGroup(
					huh.NewConfirm().
						Title("Title Bar").
						Description("Show the window title bar").
						Affirmative("Visible").
						Negative("Hidden").
						Value(&titleBar),
				),
			).WithKeyMap(newHuhBackOnQKeyMap())
		case "colors":
			form = huh.NewForm(
				huh.NewGroup(
					huh.NewSelect[string]().
						Title("Color Preset").
						Description("Custom colors are edited with 'bterm colors set'").
						Options(presetOptions...).
						Value(&presetChoice),
				),
			).WithKeyMap(newHuhBackOnQKeyMap())
		case "font":
			form = huh.NewForm(huh.NewGroup(fontFields(&family, &size)...))
		case "save":
			return saveSettingsForm(loaded, changedWindow, changedColors, changedFont, titleBar, presetChoice, family, size)
		default:
			return nil
		}

		if err := form.WithTheme(ui.HuhTheme()).Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				continue
			}
			return err
		}
		switch choice {
		case "window":
			changedWindow = true
		case "colors":
			changedColors = true
		case "font":
			changedFont = true
		}
	}
}

func saveSettingsForm(loaded settings.AppSettings, changedWindow, changedColors, changedFont bool,
	titleBar bool, presetChoice string, family string, size string) error {
	if !changedWindow && !changedColors && !changedFont {
		return nil
	}

	if changedWindow && titleBar != loaded.TitleBarVisible {
		if err := manager.SaveTitleBarSetting(titleBar); err != nil {
			return fmt.Errorf("saving titlebar: %w", err)
		}
	}
	if changedColors && presetChoice != keepColors && presetChoice != loaded.Colors.ActivePreset {
		if err := manager.SaveColorSettings(settings.ColorBundle{ActivePreset: presetChoice}); err != nil {
			return fmt.Errorf("saving colors: %w", err)
		}
	}
	if changedFont {
		if err := saveFont(loaded.FontFamily, loaded.FontSize, family, size); err != nil {
			return err
		}
	}

	applyUISettings()

	fmt.Println()
	fmt.Println(ui.SuccessBox.Render("Settings saved to " + manager.Path()))
	return nil
}
