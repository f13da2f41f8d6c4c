package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/iiroan/better-terminal/internal/settings"
	"github.com/iiroan/better-terminal/internal/ui"
)

var (
	showYAML   bool
	exportJSON bool
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := manager.LoadAppSettings()
		if showYAML {
			out, err := encodeSettings(s, false)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), string(out))
			return nil
		}

		path := manager.Path()
		if path == "" {
			path = ui.MutedStyle.Render("none (no home directory)")
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.Header("settings"))
		fmt.Fprintln(cmd.OutOrStdout())
		fmt.Fprintln(cmd.OutOrStdout(), ui.SettingsView(s, path))
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the loaded settings as YAML or JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := encodeSettings(manager.LoadAppSettings(), exportJSON)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	showCmd.Flags().BoolVar(&showYAML, "yaml", false, "Print YAML instead of a table")
	exportCmd.Flags().BoolVar(&exportJSON, "json", false, "Print JSON instead of YAML")
}

func encodeSettings(s settings.AppSettings, asJSON bool) ([]byte, error) {
	if asJSON {
		out, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding settings: %w", err)
		}
		return append(out, '\n'), nil
	}
	out, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encoding settings: %w", err)
	}
	return out, nil
}
