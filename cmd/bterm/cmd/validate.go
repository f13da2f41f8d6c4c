package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iiroan/better-terminal/internal/ci"
	"github.com/iiroan/better-terminal/internal/config"
	"github.com/iiroan/better-terminal/internal/ui"
	"github.com/iiroan/better-terminal/internal/validate"
)

var validateStrict bool

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the config file for mistakes",
	Long: `Check the config file for lines bterm ignores or cannot use:
  - unknown keys and lines that are not key = value
  - colors that are neither rgba(r, g, b, a) nor #rrggbb
  - out of range background_opacity and font_size values
  - colors shadowed by an active built-in preset

In GitHub Actions, findings are also reported as annotations.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&validateStrict, "strict", false, "Treat warnings as errors")
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := manager.Path()
	if path == "" {
		return fmt.Errorf("validating config: %w", config.ErrNoConfigPath)
	}

	result := reportValidation(path)

	switch {
	case !result.OK():
		return fmt.Errorf("%d error(s) in %s", len(result.Errors), path)
	case validateStrict && len(result.Warnings) > 0:
		return fmt.Errorf("%d warning(s) in %s", len(result.Warnings), path)
	}
	return nil
}

// reportValidation lints path and prints the findings, mirroring them as
// GitHub Actions annotations when running there.
func reportValidation(path string) validate.Result {
	ci.StartGroup("Config")
	result := validate.Config(context.Background(), path)
	fmt.Println(ui.Title.Render("Config"))
	for _, item := range result.Items {
		fmt.Println("  " + formatItem(item))
		switch item.Status {
		case validate.StatusError:
			ci.LogError(item.Details, path, item.Line)
		case validate.StatusWarning:
			ci.LogWarning(item.Details, path, item.Line)
		}
	}
	ci.EndGroup()

	if err := ci.AddSummary(validationSummary(path, result)); err != nil {
		logger.Warn("could not write job summary", "err", err)
	}
	return result
}

func formatItem(item validate.Item) string {
	icon := ui.StatusSuccess.String()
	switch item.Status {
	case validate.StatusWarning:
		icon = ui.StatusWarning.String()
	case validate.StatusError:
		icon = ui.StatusError.String()
	case validate.StatusPending:
		icon = ui.StatusPending.String()
	}

	where := item.Name
	if item.Line > 0 {
		where = fmt.Sprintf("%s:%d", item.Name, item.Line)
	}
	if item.Details == "" {
		return icon + " " + where
	}
	return fmt.Sprintf("%s %s %s", icon, where, ui.MutedStyle.Render(item.Details))
}

func validationSummary(path string, result validate.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "### bterm validate\n\n`%s`: %d error(s), %d warning(s)\n", path, len(result.Errors), len(result.Warnings))
	for _, item := range result.Items {
		if item.Status != validate.StatusError && item.Status != validate.StatusWarning {
			continue
		}
		fmt.Fprintf(&b, "- line %d (%s): %s\n", item.Line, item.Status, item.Details)
	}
	return b.String()
}
