package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/iiroan/better-terminal/internal/preset"
	"github.com/iiroan/better-terminal/internal/settings"
	"github.com/iiroan/better-terminal/internal/ui"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the built-in color presets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		active := manager.LoadAppSettings().Colors.ActivePreset

		for _, id := range preset.All() {
			name := id.Name()
			marker := "  "
			title := ui.Bold.Render(name)
			if name == active {
				marker = ui.SuccessStyle.Render("* ")
				title = ui.PrimaryStyle().Render(name)
			}
			fmt.Fprintln(cmd.OutOrStdout(), marker+title)
			for _, row := range strings.Split(ui.Swatch(preset.ColorsFor(id)), "\n") {
				fmt.Fprintln(cmd.OutOrStdout(), "  "+row)
			}
		}
		if active != "" {
			if _, ok := preset.ByName(active); !ok {
				fmt.Fprintln(cmd.OutOrStdout())
				fmt.Fprintln(cmd.OutOrStdout(), ui.WarningStyle.Render(
					fmt.Sprintf("active_preset %q is not a built-in preset; its colors are used as written", active)))
			}
		}
		return nil
	},
}

var presetsUseCmd = &cobra.Command{
	Use:   "use <name>",
	Short: "Switch to a built-in color preset",
	Args:  cobra.ExactArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return preset.Names(), cobra.ShellCompDirectiveNoFileComp
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return usePreset(args[0])
	},
}

func init() {
	presetsCmd.AddCommand(presetsUseCmd)
}

func usePreset(name string) error {
	id, ok := preset.ByName(name)
	if !ok {
		return fmt.Errorf("unknown preset %q (available: %s)", name, strings.Join(preset.Names(), ", "))
	}
	if err := manager.SaveColorSettings(settings.ColorBundle{ActivePreset: id.Name()}); err != nil {
		return fmt.Errorf("saving preset: %w", err)
	}
	fmt.Println(ui.SuccessStyle.Render("✔ Preset set to " + id.Name()))
	return nil
}

// runPresetPicker lets the user choose a preset from the list menu, falling
// back to a huh select when the menu cannot run.
func runPresetPicker() error {
	current := manager.LoadAppSettings().Colors.ActivePreset

	ids := preset.All()
	items := make([]ui.MenuItem, 0, len(ids))
	for _, id := range ids {
		colors := preset.ColorsFor(id)
		items = append(items, ui.MenuItem{
			ID:        id.Name(),
			TitleText: id.Name(),
			Details:   "Built-in color scheme",
			Preview:   ui.Swatch(colors) + "\n\n" + ui.Sample(colors, "bterm $ ls -la"),
		})
	}

	choice, err := ui.RunMenuWithOptions("PRESETS", "Pick a color scheme.", items,
		ui.WithBackNavigation("Back"),
		ui.WithInitialSelectionID(current))
	if err != nil {
		options := make([]huh.Option[string], 0, len(ids))
		for _, id := range ids {
			options = append(options, huh.NewOption(id.Name(), id.Name()))
		}
		choice, err = runSelect("Color Preset", "Choose a built-in color scheme", options, current)
		if err != nil {
			return err
		}
	}

	switch choice {
	case ui.MenuActionBack, ui.MenuActionQuit, "":
		return huh.ErrUserAborted
	}
	return usePreset(choice)
}
