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

	"github.com/linruohan/nohrs/internal/version"
)

// Choices returned instead of an item ID.
const (
	MenuActionBack = "__back__"
	MenuActionQuit = "__quit__"
)

// MenuItem is one entry of the navigation sidebar.
type MenuItem struct {
	ID        string
	TitleText string
	Details   string
	// Badge is appended to the title, e.g. "2 modified".
	Badge string
	// Preview replaces Details in the side pane when set.
	Preview string
	// Disabled items are listed but cannot be opened.
	Disabled bool
}

// Title returns the sidebar label.
func (m MenuItem) Title() string { return m.TitleText }

// Description returns the item details.
func (m MenuItem) Description() string { return m.Details }

// FilterValue returns the text matched by the list filter.
func (m MenuItem) FilterValue() string { return m.TitleText + " " + m.ID }

// MenuOption configures RunMenuWithOptions.
type MenuOption func(*menuConfig)

type menuConfig struct {
	allowBack          bool
	backLabel          string
	initialSelectionID string
	status             []statusLine
}

type statusLine struct {
	label string
	value string
}

func defaultMenuConfig() menuConfig {
	return menuConfig{backLabel: "Back"}
}

// WithBackNavigation makes esc return MenuActionBack instead of quitting.
func WithBackNavigation(label string) MenuOption {
	return func(cfg *menuConfig) {
		cfg.allowBack = true
		if label != "" {
			cfg.backLabel = label
		}
	}
}

// WithInitialSelectionID pre-selects an item by ID when the menu opens.
func WithInitialSelectionID(id string) MenuOption {
	return func(cfg *menuConfig) {
		cfg.initialSelectionID = strings.TrimSpace(id)
	}
}

// WithStatus adds a line to the status section of the side pane.
func WithStatus(label, value string) MenuOption {
	return func(cfg *menuConfig) {
		cfg.status = append(cfg.status, statusLine{label: label, value: value})
	}
}

type navKeys struct {
	Open   key.Binding
	Jump   key.Binding
	Filter key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func newNavKeys(cfg menuConfig) navKeys {
	k := navKeys{
		Open:   key.NewBinding(key.WithKeys("enter", "right", "l"), key.WithHelp("enter", "open")),
		Jump:   key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "jump")),
		Filter: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
	if cfg.allowBack {
		k.Back = key.NewBinding(key.WithKeys("esc", "left", "h", "q"), key.WithHelp("esc", strings.ToLower(cfg.backLabel)))
	} else {
		k.Quit = key.NewBinding(key.WithKeys("ctrl+c", "esc", "q"), key.WithHelp("q", "quit"))
	}
	return k
}

func (k navKeys) ShortHelp() []key.Binding {
	bindings := []key.Binding{k.Open, k.Jump, k.Filter}
	if k.Back.Enabled() {
		return append(bindings, k.Back)
	}
	return append(bindings, k.Quit)
}

func (k navKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// navLayout splits the screen into the sidebar list and the side pane.
type navLayout struct {
	stacked    bool
	sidebar    int
	pane       int
	height     int
	listHeight int
}

const (
	minSidebarWidth = 24
	maxSidebarWidth = 36
	stackBelow      = 72
	chromeLines     = 7
)

func computeNavLayout(width, height int) navLayout {
	body := max(10, height-chromeLines)
	if width < stackBelow {
		top := max(5, body/2)
		return navLayout{
			stacked:    true,
			sidebar:    width,
			pane:       width,
			height:     body - top,
			listHeight: top,
		}
	}
	sidebar := min(maxSidebarWidth, max(minSidebarWidth, width/3))
	return navLayout{
		sidebar:    sidebar,
		pane:       width - sidebar - 3,
		height:     body,
		listHeight: body,
	}
}

type sidebarDelegate struct{}

func (sidebarDelegate) Height() int { return 1 }

func (sidebarDelegate) Spacing() int { return 0 }

func (sidebarDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

func (sidebarDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	entry, ok := item.(MenuItem)
	if !ok || m.Width() <= 0 {
		return
	}

	color := Foreground
	marker := "  "
	if entry.Disabled {
		color = Muted
	}
	title := lipgloss.NewStyle().Foreground(lipgloss.Color(string(color)))
	if index == m.Index() && m.FilterState() != list.Filtering {
		marker = "▌ "
		title = lipgloss.NewStyle().Foreground(lipgloss.Color(string(Primary))).Bold(true)
	}

	line := fmt.Sprintf("%d %s", index+1, entry.TitleText)
	if entry.Badge != "" {
		line += " · " + entry.Badge
	}
	line = ansi.Truncate(line, max(8, m.Width()-2), "…")
	fmt.Fprint(w, marker+title.Render(line)) //nolint:errcheck
}

type navModel struct {
	list  list.Model
	help  help.Model
	keys  navKeys
	cfg   menuConfig
	title string
	intro string

	choice string
	done   bool
	notice string

	width, height int
	version       string
}

func newNavModel(title, intro string, items []MenuItem, cfg menuConfig) navModel {
	entries := make([]list.Item, len(items))
	selected := 0
	for i, item := range items {
		entries[i] = item
		if cfg.initialSelectionID != "" && item.ID == cfg.initialSelectionID {
			selected = i
		}
	}

	l := list.New(entries, sidebarDelegate{}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.DisableQuitKeybindings()
	l.Select(selected)

	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(lipgloss.Color(string(Accent))).Bold(true)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(lipgloss.Color(string(Muted)))
	h.Styles.ShortSeparator = h.Styles.ShortDesc

	return navModel{
		list:    l,
		help:    h,
		keys:    newNavKeys(cfg),
		cfg:     cfg,
		title:   title,
		intro:   intro,
		version: version.Current().Short(),
	}
}

func (m navModel) Init() tea.Cmd { return nil }

func (m navModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		layout := computeNavLayout(m.width, m.height)
		m.list.SetSize(layout.sidebar-2, layout.listHeight)
		return m, nil
	case tea.KeyPressMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		m.notice = ""
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m.finish(MenuActionQuit)
		case m.cfg.allowBack && key.Matches(msg, m.keys.Back):
			return m.finish(MenuActionBack)
		case key.Matches(msg, m.keys.Open):
			if item, ok := m.list.SelectedItem().(MenuItem); ok {
				return m.open(item)
			}
		case key.Matches(msg, m.keys.Jump):
			if item, ok := m.jump(msg.String()); ok {
				return m.open(item)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m navModel) finish(choice string) (tea.Model, tea.Cmd) {
	m.choice = choice
	m.done = true
	return m, tea.Quit
}

func (m navModel) open(item MenuItem) (tea.Model, tea.Cmd) {
	if item.Disabled {
		m.notice = item.TitleText + " is not available here"
		return m, nil
	}
	return m.finish(item.ID)
}

// jump selects the nth visible item of the current list page.
func (m *navModel) jump(digit string) (MenuItem, bool) {
	if len(digit) != 1 || digit[0] < '1' || digit[0] > '9' {
		return MenuItem{}, false
	}
	visible := m.list.VisibleItems()
	target := max(0, m.list.Index()-m.list.Cursor()) + int(digit[0]-'1')
	if target >= len(visible) {
		return MenuItem{}, false
	}
	m.list.Select(target)
	item, ok := visible[target].(MenuItem)
	return item, ok
}

func (m navModel) View() tea.View {
	if m.done {
		return tea.View{}
	}

	width, height := m.width, m.height
	if width <= 0 {
		width = terminalWidth()
	}
	if height <= 0 {
		height = 26
	}
	layout := computeNavLayout(width, height)

	sidebar := lipgloss.NewStyle().
		Width(layout.sidebar).
		Height(layout.listHeight).
		Render(m.list.View())
	pane := lipgloss.NewStyle().
		Width(layout.pane).
		Height(layout.height).
		Render(m.paneView(layout.pane, layout.height))

	var body string
	if layout.stacked {
		body = lipgloss.JoinVertical(lipgloss.Left, sidebar, pane)
	} else {
		rule := lipgloss.NewStyle().
			Foreground(lipgloss.Color(string(Border))).
			Render(strings.Repeat("│\n", max(0, layout.height-1)) + "│")
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", rule, " ", pane)
	}

	footer := m.help.View(m.keys)
	if m.notice != "" {
		footer = WarningStyle.Render(m.notice)
	} else if filter := strings.TrimSpace(m.list.FilterValue()); filter != "" {
		footer = MutedStyle.Render("filter: "+filter) + "  " + footer
	}

	v := tea.NewView(Frame(m.title, m.intro, body, footer))
	v.AltScreen = true
	return v
}

func (m navModel) paneView(width, height int) string {
	item, ok := m.list.SelectedItem().(MenuItem)
	if !ok {
		return MutedStyle.Render("Nothing selected")
	}

	lines := []string{PrimaryStyle().Render(ansi.Truncate(item.TitleText, width, "…"))}
	if item.Badge != "" {
		lines = append(lines, AccentStyle().Render(item.Badge))
	}
	body := item.Preview
	if body == "" {
		body = lipgloss.NewStyle().Width(width).Render(MutedStyle.Render(item.Details))
	}
	if body != "" {
		lines = append(lines, "")
		for _, line := range strings.Split(body, "\n") {
			lines = append(lines, ansi.Truncate(line, width, "…"))
		}
	}

	status := []string{"", AccentStyle().Render("Status"), infoLine("nohrs", m.version, width)}
	for _, s := range m.cfg.status {
		status = append(status, infoLine(s.label, s.value, width))
	}

	room := height - len(status)
	if room < 1 {
		room = 1
	}
	if len(lines) > room {
		lines = append(lines[:room-1], MutedStyle.Render("…"))
	}
	return strings.Join(append(lines, status...), "\n")
}

func infoLine(label, value string, width int) string {
	if strings.TrimSpace(value) == "" {
		value = "-"
	}
	line := fmt.Sprintf("%-9s %s", strings.ToLower(label)+":", value)
	return MutedStyle.Render(ansi.Truncate(line, max(10, width), "…"))
}

// RunMenu shows items in the navigation sidebar and returns the chosen ID.
func RunMenu(title string, subtitle string, items []MenuItem) (string, error) {
	return RunMenuWithOptions(title, subtitle, items)
}

// RunMenuWithOptions is RunMenu with options. It fails without a terminal so
// callers can fall back to a plain prompt.
func RunMenuWithOptions(title string, subtitle string, items []MenuItem, options ...MenuOption) (string, error) {
	if !IsInteractiveTerminal() {
		return "", fmt.Errorf("non-interactive terminal")
	}
	cfg := defaultMenuConfig()
	for _, opt := range options {
		opt(&cfg)
	}

	result, err := tea.NewProgram(newNavModel(title, subtitle, items, cfg)).Run()
	if err != nil {
		return "", err
	}
	if final, ok := result.(navModel); ok {
		return final.choice, nil
	}
	return "", nil
}
