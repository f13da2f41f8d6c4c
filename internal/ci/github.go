// Package ci provides GitHub Actions integration for bterm
package ci

import (
	"fmt"
	"io"
	"os"
)

// Out receives workflow commands.
var Out io.Writer = os.Stdout

// Environment represents the CI environment
type Environment struct {
	IsCI            bool
	IsGitHubActions bool
	Workflow        string
}

// Detect detects the current CI environment
func Detect() *Environment {
	env := &Environment{
		IsCI:            os.Getenv("CI") == "true",
		IsGitHubActions: os.Getenv("GITHUB_ACTIONS") == "true",
	}
	if env.IsGitHubActions {
		env.Workflow = os.Getenv("GITHUB_WORKFLOW")
	}
	return env
}

func enabled() bool {
	return os.Getenv("GITHUB_ACTIONS") == "true"
}

// StartGroup starts a log group in GitHub Actions
func StartGroup(name string) {
	if enabled() {
		fmt.Fprintf(Out, "::group::%s\n", name)
	}
}

// EndGroup ends a log group in GitHub Actions
func EndGroup() {
	if enabled() {
		fmt.Fprintln(Out, "::endgroup::")
	}
}

// LogError logs an error annotation, attached to file:line when both are known.
func LogError(message string, file string, line int) {
	annotate("error", message, file, line)
}

// LogWarning logs a warning annotation.
func LogWarning(message string, file string, line int) {
	annotate("warning", message, file, line)
}

func annotate(level, message, file string, line int) {
	if !enabled() {
		return
	}
	if file != "" && line > 0 {
		fmt.Fprintf(Out, "::%s file=%s,line=%d::%s\n", level, file, line, message)
		return
	}
	fmt.Fprintf(Out, "::%s::%s\n", level, message)
}

// AddSummary adds content to the job summary
func AddSummary(markdown string) error {
	summaryFile := os.Getenv("GITHUB_STEP_SUMMARY")
	if summaryFile == "" {
		return nil
	}

	f, err := os.OpenFile(summaryFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening GITHUB_STEP_SUMMARY: %w", err)
	}
	defer f.Close()

	_, err = fmt.Fprintf(f, "%s\n", markdown)
	return err
}
