package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/iiroan/better-terminal/internal/settings"
	"github.com/iiroan/better-terminal/internal/ui"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print the settings every time the config file changes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		render := func(s settings.AppSettings) {
			ui.ApplyPreferences(ui.CurrentPreferences, s.Colors)
			fmt.Fprintln(cmd.OutOrStdout(), ui.SettingsView(s, manager.Path()))
			fmt.Fprintln(cmd.OutOrStdout())
		}

		first := true
		if err := manager.Watch(ctx, func(s settings.AppSettings) {
			if first {
				first = false
				logger.Info("watching for changes, press ctrl+c to stop", "path", manager.Path())
			} else {
				logger.Info("config changed")
			}
			render(s)
		}); err != nil {
			return fmt.Errorf("watching config: %w", err)
		}
		return nil
	},
}
