package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/iiroan/better-terminal/internal/config"
	"github.com/iiroan/better-terminal/internal/ui"
)

var fontCmd = &cobra.Command{
	Use:   "font",
	Short: "Change the terminal font",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := manager.LoadAppSettings()
		fmt.Println(ui.KeyValue("family", s.FontFamily, 8))
		fmt.Println(ui.KeyValue("size", formatPoints(s.FontSize), 8))
		return nil
	},
}

var fontFamilyCmd = &cobra.Command{
	Use:   "family <name>",
	Short: "Set the font family",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		family := strings.TrimSpace(strings.Join(args, " "))
		if err := config.ValidateFontFamily(family); err != nil {
			return err
		}
		if err := manager.SaveFontFamilySetting(family); err != nil {
			return fmt.Errorf("saving font family: %w", err)
		}
		fmt.Println(ui.SuccessStyle.Render("✔ Font family set to " + family))
		return nil
	},
}

var fontSizeCmd = &cobra.Command{
	Use:   "size <points>",
	Short: "Set the font size in points",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		size, err := parseFontSize(args[0])
		if err != nil {
			return err
		}
		if err := manager.SaveFontSizeSetting(size); err != nil {
			return fmt.Errorf("saving font size: %w", err)
		}
		fmt.Println(ui.SuccessStyle.Render("✔ Font size set to " + formatPoints(size)))
		return nil
	},
}

func init() {
	fontCmd.AddCommand(fontFamilyCmd)
	fontCmd.AddCommand(fontSizeCmd)
}

func parseFontSize(value string) (float64, error) {
	size, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid font size %q", value)
	}
	if size <= 0 {
		return 0, fmt.Errorf("font size must be positive, got %s", value)
	}
	return size, nil
}

func formatPoints(size float64) string {
	return strconv.FormatFloat(size, 'g', -1, 64)
}

func fontFields(family *string, size *string) []huh.Field {
	return []huh.Field{
		huh.NewInput().
			Title("Font Family").
			Description("Any installed font, e.g. JetBrains Mono").
			Value(family).
			Validate(config.ValidateFontFamily),
		huh.NewInput().
			Title("Font Size").
			Description("Size in points").
			Placeholder("11").
			Value(size).
			Validate(func(value string) error {
				_, err := parseFontSize(value)
				return err
			}),
	}
}

// runFontForm edits the font and saves only what changed.
func runFontForm() error {
	s := manager.LoadAppSettings()
	family := s.FontFamily
	size := formatPoints(s.FontSize)

	ui.StartScreen("FONT", "Change the terminal font")
	form := huh.NewForm(huh.NewGroup(fontFields(&family, &size)...)).WithTheme(ui.HuhTheme())
	if err := form.Run(); err != nil {
		return err
	}
	return saveFont(s.FontFamily, s.FontSize, family, size)
}

func saveFont(oldFamily string, oldSize float64, family string, sizeInput string) error {
	family = strings.TrimSpace(family)
	if err := config.ValidateFontFamily(family); err != nil {
		return err
	}
	if family != oldFamily {
		if err := manager.SaveFontFamilySetting(family); err != nil {
			return fmt.Errorf("saving font family: %w", err)
		}
	}
	size, err := parseFontSize(sizeInput)
	if err != nil {
		return err
	}
	if size != oldSize {
		if err := manager.SaveFontSizeSetting(size); err != nil {
			return fmt.Errorf("saving font size: %w", err)
		}
	}
	fmt.Println(ui.SuccessStyle.Render(fmt.Sprintf("✔ Font: %s %s", family, formatPoints(size))))
	return nil
}
