package cmd

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/iiroan/better-terminal/internal/config"
	"github.com/iiroan/better-terminal/internal/settings"
	"github.com/iiroan/better-terminal/internal/ui"
)

var colorsCmd = &cobra.Command{
	Use:   "colors",
	Short: "Edit custom terminal colors",
}

var colorsSetCmd = &cobra.Command{
	Use:   "set KEY=VALUE...",
	Short: "Set custom colors, leaving any preset",
	Long: `Set one or more colors. Keys are foreground, background,
background_opacity and color0 through color15. The current colors are
kept as custom colors, so switching away from a preset keeps its look.`,
	Example: `  bterm colors set foreground=#ffffff color1="rgba(255, 0, 0, 1.0)"
  bterm colors set background_opacity=0.85`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		assignments, err := parseKeyValuePairs(args)
		if err != nil {
			return err
		}

		current := manager.LoadAppSettings().Colors
		updated, err := applyColorAssignments(current, assignments)
		if err != nil {
			return err
		}
		if err := manager.SaveColorSettings(updated); err != nil {
			return fmt.Errorf("saving colors: %w", err)
		}
		fmt.Println(ui.SuccessStyle.Render("✔ Colors updated: " + formatKeyValuePairs(assignments)))
		return nil
	},
}

var colorsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Remove every color setting",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := manager.SaveColorSettings(settings.ColorBundle{}); err != nil {
			return fmt.Errorf("resetting colors: %w", err)
		}
		fmt.Println(ui.SuccessStyle.Render("✔ Colors reset"))
		return nil
	},
}

func init() {
	colorsCmd.AddCommand(colorsSetCmd)
	colorsCmd.AddCommand(colorsResetCmd)
}

// applyColorAssignments turns the effective colors into a custom bundle and
// applies KEY=VALUE assignments to it.
func applyColorAssignments(current settings.ColorBundle, assignments map[string]string) (settings.ColorBundle, error) {
	out := current.Clone()
	out.ActivePreset = ""

	keys := make([]string, 0, len(assignments))
	for k := range assignments {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		v := assignments[k]
		switch k {
		case config.KeyForeground:
			out.Foreground = settings.Color(v)
		case config.KeyBackground:
			out.Background = settings.Color(v)
		case config.KeyBackgroundOpacity:
			if v == "" {
				out.BackgroundOpacity = nil
				continue
			}
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return current, fmt.Errorf("invalid %s %q: %w", k, v, err)
			}
			out = out.WithOpacity(f)
		default:
			idx := paletteSlot(k)
			if idx < 0 {
				return current, fmt.Errorf("unknown color key %q", k)
			}
			out.Palette[idx] = settings.Color(v)
		}
	}

	if err := config.ValidateColors(out); err != nil {
		return current, err
	}
	return out, nil
}

func paletteSlot(key string) int {
	for i := 0; i < settings.PaletteSize; i++ {
		if config.PaletteKey(i) == key {
			return i
		}
	}
	return -1
}
