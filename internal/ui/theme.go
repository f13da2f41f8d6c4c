package ui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// HuhTheme returns the form theme for the active palette.
func HuhTheme() *huh.Theme {
	t := huh.ThemeBase()
	if ActivePalette.Disabled {
		return t
	}

	f := &t.Focused
	f.Base = f.Base.BorderForeground(Border)
	f.Title = f.Title.Foreground(Highlight).Bold(true)
	f.NoteTitle = f.NoteTitle.Foreground(Highlight).Bold(true)
	f.Description = f.Description.Foreground(Muted)
	f.ErrorIndicator = f.ErrorIndicator.Foreground(Error)
	f.ErrorMessage = f.ErrorMessage.Foreground(Error)

	for _, s := range []*lipgloss.Style{
		&f.SelectSelector, &f.NextIndicator, &f.PrevIndicator,
		&f.MultiSelectSelector, &f.SelectedOption, &f.SelectedPrefix,
		&f.TextInput.Prompt,
	} {
		*s = s.Foreground(Accent)
	}
	f.Option = f.Option.Foreground(Foreground)
	f.UnselectedOption = f.UnselectedOption.Foreground(Foreground)
	f.UnselectedPrefix = f.UnselectedPrefix.Foreground(Muted)
	f.FocusedButton = f.FocusedButton.Foreground(Background).Background(Primary).Bold(true)
	f.BlurredButton = f.BlurredButton.Foreground(Foreground).Background(lipgloss.Color(""))
	f.TextInput.Cursor = f.TextInput.Cursor.Foreground(Info)
	f.TextInput.Placeholder = f.TextInput.Placeholder.Foreground(Muted)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.NextIndicator = lipgloss.NewStyle()
	t.Blurred.PrevIndicator = lipgloss.NewStyle()

	return t
}
