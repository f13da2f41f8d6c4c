package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iiroan/better-terminal/internal/ui"
)

var titlebarCmd = &cobra.Command{
	Use:       "titlebar [on|off|toggle]",
	Short:     "Show, hide or toggle the title bar",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"on", "off", "toggle"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			fmt.Println(ui.KeyValue("titlebar", visibility(manager.LoadAppSettings().TitleBarVisible), 10))
			return nil
		}
		return setTitleBar(args[0])
	},
}

func setTitleBar(arg string) error {
	visible, err := parseToggle(arg, manager.LoadAppSettings().TitleBarVisible)
	if err != nil {
		return err
	}
	if err := manager.SaveTitleBarSetting(visible); err != nil {
		return fmt.Errorf("saving titlebar: %w", err)
	}
	fmt.Println(ui.SuccessStyle.Render("✔ Title bar " + visibility(visible)))
	return nil
}

// parseToggle resolves an on/off/toggle argument against the current state.
func parseToggle(arg string, current bool) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(arg)) {
	case "on", "show", "true", "yes":
		return true, nil
	case "off", "hide", "false", "no":
		return false, nil
	case "toggle":
		return !current, nil
	default:
		return current, fmt.Errorf("invalid value %q (expected on, off or toggle)", arg)
	}
}

func visibility(visible bool) string {
	if visible {
		return "visible"
	}
	return "hidden"
}
