package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/iiroan/better-terminal/internal/config"
	"github.com/iiroan/better-terminal/internal/exec"
	"github.com/iiroan/better-terminal/internal/ui"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the config file in your editor and check it afterwards",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := manager.Path()
		if path == "" {
			return fmt.Errorf("editing config: %w", config.ErrNoConfigPath)
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}

		name, editorArgs, err := exec.Editor()
		if err != nil {
			return err
		}
		editorArgs = append(editorArgs, path)

		opts := exec.Options{Interactive: true, Logger: logger}
		logger.Debug("opening editor", "cmd", exec.FormatCommand(name, editorArgs))
		if result := exec.Run(context.Background(), name, editorArgs, opts); result.Err != nil {
			return fmt.Errorf("running %s: %w", name, result.Err)
		}

		fmt.Println()
		result := reportValidation(path)
		if !result.OK() {
			fmt.Println(ui.HintStyle.Render("Lines with errors are ignored; run 'bterm edit' again to fix them."))
		}
		return nil
	},
}
