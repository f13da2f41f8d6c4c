package ui

import (
	"fmt"
	"io"
	"strings"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/list"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/iiroan/better-terminal/internal/version"
)

// Choices returned when the menu is left without picking an item.
const (
	MenuActionBack = "__back__"
	MenuActionQuit = "__quit__"
)

type MenuOption func(*menuConfig)

type menuConfig struct {
	allowBack  bool
	backLabel  string
	currentID  string
	footerNote string
}

func defaultMenuConfig() menuConfig {
	return menuConfig{backLabel: "Back"}
}

// WithBackNavigation makes esc and q return MenuActionBack instead of quitting.
func WithBackNavigation(label string) MenuOption {
	return func(cfg *menuConfig) {
		cfg.allowBack = true
		if label != "" {
			cfg.backLabel = label
		}
	}
}

// WithInitialSelectionID pre-selects the item with this ID and marks it as
// the current value, e.g. the active preset.
func WithInitialSelectionID(id string) MenuOption {
	return func(cfg *menuConfig) {
		cfg.currentID = strings.TrimSpace(id)
	}
}

// WithFooterNote shows a short note under the detail panel, such as the
// config file path.
func WithFooterNote(note string) MenuOption {
	return func(cfg *menuConfig) {
		cfg.footerNote = note
	}
}

// menuKeys is shown by the help bar; key handling itself lives in Update.
type menuKeys []key.Binding

func newMenuKeys(cfg menuConfig) menuKeys {
	keys := menuKeys{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		key.NewBinding(key.WithKeys("1"), key.WithHelp("1-9", "quick pick")),
	}
	if cfg.allowBack {
		return append(keys,
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc/q", strings.ToLower(cfg.backLabel))),
			key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")))
	}
	return append(keys, key.NewBinding(key.WithKeys("q"), key.WithHelp("q/esc", "quit")))
}

func (k menuKeys) ShortHelp() []key.Binding  { return k }
func (k menuKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k} }

// MenuItem represents a selectable item in a TUI list.
type MenuItem struct {
	ID        string
	TitleText string
	Details   string
	// Preview is pre-rendered content shown in the detail panel, such as a
	// palette swatch.
	Preview string
}

func (m MenuItem) FilterValue() string { return m.TitleText }

// itemDelegate renders one numbered line per item.
type itemDelegate struct {
	currentID string
}

func (d itemDelegate) Height() int                         { return 1 }
func (d itemDelegate) Spacing() int                        { return 0 }
func (d itemDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	menuItem, ok := item.(MenuItem)
	if !ok || m.Width() <= 0 {
		return
	}

	text := fmt.Sprintf("%d. %s", index+1, menuItem.TitleText)
	if menuItem.ID == d.currentID {
		text += " (current)"
	}
	text = ansi.Truncate(text, max(10, m.Width()-2), "...")

	if index == m.Index() {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(string(Primary))).Bold(true)
		fmt.Fprint(w, "> "+style.Render(text)) //nolint:errcheck
		return
	}
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(string(Foreground)))
	fmt.Fprint(w, "  "+style.Render(text)) //nolint:errcheck
}

type menuModel struct {
	list     list.Model
	help     help.Model
	keys     menuKeys
	cfg      menuConfig
	title    string
	subtitle string
	version  string

	choice   string
	quitting bool
	width    int
	height   int
}

func newMenuModel(title string, subtitle string, items []MenuItem, cfg menuConfig) menuModel {
	listItems := make([]list.Item, len(items))
	selected := 0
	for i, item := range items {
		listItems[i] = item
		if cfg.currentID != "" && item.ID == cfg.currentID {
			selected = i
		}
	}

	l := list.New(listItems, itemDelegate{currentID: cfg.currentID}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	l.Select(selected)

	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(lipgloss.Color(string(Accent))).Bold(true)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(lipgloss.Color(string(Muted)))

	return menuModel{
		list:     l,
		help:     h,
		keys:     newMenuKeys(cfg),
		cfg:      cfg,
		title:    title,
		subtitle: subtitle,
		version:  version.Get().Short(),
	}
}

func (m menuModel) Init() tea.Cmd { return nil }

func (m menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		layout := calculateMenuLayout(m.size())
		m.list.SetSize(layout.listWidth, layout.listHeight)
	case tea.KeyPressMsg:
		switch k := msg.String(); k {
		case "enter":
			if item, ok := m.list.SelectedItem().(MenuItem); ok {
				m.choice = item.ID
				return m, tea.Quit
			}
		case "1", "2", "3", "4", "5", "6", "7", "8", "9":
			if m.selectByNumber(k) {
				return m, tea.Quit
			}
		case "q", "esc", "ctrl+c":
			m.quitting = true
			m.choice = MenuActionQuit
			if m.cfg.allowBack && k != "ctrl+c" {
				m.choice = MenuActionBack
			}
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// selectByNumber picks the n-th visible item on the current page.
func (m *menuModel) selectByNumber(digit string) bool {
	n := int(digit[0] - '0')
	visible := m.list.VisibleItems()
	target := m.list.Index() - m.list.Cursor() + n - 1
	if n < 1 || target >= len(visible) {
		return false
	}
	m.list.Select(target)
	item, ok := visible[target].(MenuItem)
	if ok {
		m.choice = item.ID
	}
	return ok
}

func (m menuModel) size() (int, int) {
	width, height := m.width, m.height
	if width <= 0 {
		width = terminalWidth()
	}
	if height <= 0 {
		height = 26
	}
	return width, height
}

func (m menuModel) View() tea.View {
	if m.quitting {
		return tea.View{}
	}

	layout := calculateMenuLayout(m.size())
	left := lipgloss.NewStyle().Width(layout.leftWidth).Render(m.list.View())
	right := lipgloss.NewStyle().
		Width(layout.rightWidth).
		MaxHeight(layout.bodyHeight).
		Render(m.detailPanel(layout.rightWidth))

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
	if layout.stacked {
		body = lipgloss.JoinVertical(lipgloss.Left, left, "", right)
	}

	v := tea.NewView(Frame(m.title, m.subtitle, body, m.help.View(m.keys)))
	v.AltScreen = true
	return v
}

// detailPanel shows the highlighted item with its preview, then the version
// and footer note.
func (m menuModel) detailPanel(width int) string {
	heading := lipgloss.NewStyle().Foreground(lipgloss.Color(string(Accent))).Bold(true)
	fit := func(s string) string { return ansi.Truncate(s, max(8, width), "...") }

	lines := []string{heading.Render("Selection")}
	if item, ok := m.list.SelectedItem().(MenuItem); ok {
		lines = append(lines, PrimaryStyle().Render(fit(item.TitleText)))
		if item.Details != "" {
			lines = append(lines, MutedStyle.Render(fit(item.Details)))
		}
		if item.Preview != "" {
			lines = append(lines, "", item.Preview)
		}
	}

	lines = append(lines, "", heading.Render("bterm"), MutedStyle.Render(fit("version: "+m.version)))
	if m.cfg.footerNote != "" {
		lines = append(lines, MutedStyle.Render(fit("config:  "+m.cfg.footerNote)))
	}
	return strings.Join(lines, "\n")
}

type menuLayout struct {
	stacked    bool
	leftWidth  int
	rightWidth int
	bodyHeight int
	listWidth  int
	listHeight int
}

// calculateMenuLayout puts the list and the detail panel side by side when
// the terminal is wide enough for a full swatch next to the list.
func calculateMenuLayout(width int, height int) menuLayout {
	const (
		gap       = 2
		listWidth = 34
		minDetail = 40
	)
	bodyHeight := max(10, height-8)

	if width < listWidth+gap+minDetail {
		listHeight := max(5, bodyHeight/2)
		return menuLayout{
			stacked:    true,
			leftWidth:  max(1, width),
			rightWidth: max(1, width),
			bodyHeight: bodyHeight - listHeight,
			listWidth:  max(4, width-2),
			listHeight: listHeight,
		}
	}

	return menuLayout{
		leftWidth:  listWidth,
		rightWidth: width - listWidth - gap,
		bodyHeight: bodyHeight,
		listWidth:  listWidth,
		listHeight: bodyHeight,
	}
}

// RunMenuWithOptions displays a TUI list and returns the selected item ID,
// or one of the MenuAction values.
func RunMenuWithOptions(title string, subtitle string, items []MenuItem, options ...MenuOption) (string, error) {
	if !IsInteractiveTerminal() {
		return "", fmt.Errorf("non-interactive terminal")
	}
	cfg := defaultMenuConfig()
	for _, opt := range options {
		opt(&cfg)
	}

	result, err := tea.NewProgram(newMenuModel(title, subtitle, items, cfg)).Run()
	if err != nil {
		return "", err
	}
	if final, ok := result.(menuModel); ok {
		return final.choice, nil
	}
	return "", nil
}
