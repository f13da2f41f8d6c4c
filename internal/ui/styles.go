// Package ui provides Charm-based UI components for bterm
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Text styles
	Bold         lipgloss.Style
	Title        lipgloss.Style
	Tagline      lipgloss.Style
	SuccessStyle lipgloss.Style
	WarningStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	MutedStyle   lipgloss.Style
	HintStyle    lipgloss.Style
	KeyStyle     lipgloss.Style

	// Box styles
	InfoBox    lipgloss.Style
	SuccessBox lipgloss.Style
	ErrorBox   lipgloss.Style

	HeaderStyle lipgloss.Style

	// Status indicators
	StatusSuccess lipgloss.Style
	StatusWarning lipgloss.Style
	StatusError   lipgloss.Style
	StatusPending lipgloss.Style
)

func buildStyles() {
	Bold = lipgloss.NewStyle().Bold(true)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Tagline = lipgloss.NewStyle().
		Foreground(Secondary).
		Italic(true)

	SuccessStyle = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	WarningStyle = lipgloss.NewStyle().
		Foreground(Warning)

	ErrorStyle = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	MutedStyle = lipgloss.NewStyle().
		Foreground(Muted)

	HintStyle = lipgloss.NewStyle().
		Foreground(Muted).
		Italic(true)

	KeyStyle = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		MarginTop(1).
		MarginBottom(1)
	InfoBox = box.BorderForeground(Info)
	SuccessBox = box.BorderForeground(Success)
	ErrorBox = box.BorderForeground(Error)

	HeaderStyle = lipgloss.NewStyle().
		Foreground(Background).
		Background(Primary).
		Padding(0, 1).
		Bold(true).
		Width(60).
		Align(lipgloss.Center)
	if ActivePalette.Disabled {
		HeaderStyle = HeaderStyle.Reverse(true)
	}

	StatusSuccess = lipgloss.NewStyle().
		Foreground(Success).
		SetString("✓")
	StatusWarning = lipgloss.NewStyle().
		Foreground(Warning).
		SetString("!")
	StatusError = lipgloss.NewStyle().
		Foreground(Error).
		SetString("✗")
	StatusPending = lipgloss.NewStyle().
		Foreground(Muted).
		SetString("○")
}

// PrimaryStyle renders text in the primary color.
func PrimaryStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Primary).Bold(true)
}

// Header renders a screen title bar.
func Header(title string) string {
	return HeaderStyle.Render(strings.ToUpper(title))
}

// Banner returns the bterm banner
func Banner() string {
	banner := `
 ┏┓ ┏━╸╺┳╸╺┳╸┏━╸┏━┓   ╺┳╸┏━╸┏━┓┏┳┓
 ┣┻┓┣╸  ┃  ┃ ┣╸ ┣┳┛    ┃ ┣╸ ┣┳┛┃┃┃
 ┗━┛┗━╸ ╹  ╹ ┗━╸╹┗╸    ╹ ┗━╸╹┗╸╹ ╹`
	return lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true).
		Render(banner)
}

// KeyValue renders an aligned "key  value" line.
func KeyValue(key string, value string, width int) string {
	return KeyStyle.Render(fmt.Sprintf("%-*s", width, key)) + " " + value
}
