package cmd

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/huh"

	"github.com/iiroan/better-terminal/internal/ui"
)

// newHuhBackOnQKeyMap keeps default Huh bindings and adds q as a quit/back key.
// Only use it on forms without text inputs.
func newHuhBackOnQKeyMap() *huh.KeyMap {
	keyMap := huh.NewDefaultKeyMap()
	keyMap.Quit = key.NewBinding(
		key.WithKeys("ctrl+c", "q"),
		key.WithHelp("q", "back"),
	)
	return keyMap
}

// runSelect asks for one of options and returns its value.
func runSelect(title string, description string, options []huh.Option[string], initial string) (string, error) {
	value := initial
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Description(description).
				Options(options...).
				Value(&value),
		),
	).WithTheme(ui.HuhTheme()).WithKeyMap(newHuhBackOnQKeyMap()).Run()
	return value, err
}
