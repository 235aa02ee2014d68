// Package app implements the wrapped terminal UI: a tab-based Bubble Tea
// application over the aggregated summary.
package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/avilla-dev/cursor-wrapped/internal/ui/styles"
	"github.com/avilla-dev/cursor-wrapped/internal/watch"
)

// TabID identifies a tab in the application.
type TabID int

const (
	// TabOverview is the headline numbers tab.
	TabOverview TabID = iota
	// TabModels is the model breakdown tab.
	TabModels
	// TabRhythm is the activity patterns tab.
	TabRhythm
	// TabInfo is the configuration and version tab.
	TabInfo
)

// String returns the display name of the tab.
func (t TabID) String() string {
	switch t {
	case TabOverview:
		return "Overview"
	case TabModels:
		return "Models"
	case TabRhythm:
		return "Rhythm"
	case TabInfo:
		return "Info"
	default:
		return "Unknown"
	}
}

// Tab is the contract every tab implements.
type Tab interface {
	// Init initializes the tab and returns any initial commands.
	Init() tea.Cmd

	// Update handles messages and returns the updated tab and any commands.
	Update(msg tea.Msg) (Tab, tea.Cmd)

	// View renders the tab content.
	View() string

	// SetSize sets the available size for the tab.
	SetSize(width, height int)

	// ShortHelp returns key bindings for the help overlay.
	ShortHelp() []key.Binding
}

// KeyMap defines the application keybindings.
type KeyMap struct {
	Tab1    key.Binding
	Tab2    key.Binding
	Tab3    key.Binding
	Tab4    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Reload  key.Binding
	Help    key.Binding
	Quit    key.Binding
	Escape  key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Tab1:    key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "overview")),
		Tab2:    key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "models")),
		Tab3:    key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "rhythm")),
		Tab4:    key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "info")),
		NextTab: key.NewBinding(key.WithKeys("tab", "l", "right"), key.WithHelp("tab/→", "next tab")),
		PrevTab: key.NewBinding(key.WithKeys("shift+tab", "h", "left"), key.WithHelp("shift+tab/←", "prev tab")),
		Reload:  key.NewBinding(key.WithKeys("r", "ctrl+r"), key.WithHelp("r", "reload")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Escape:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	}
}

// Styles defines the chrome styles around tab content.
type Styles struct {
	TabBar      lipgloss.Style
	ActiveTab   lipgloss.Style
	InactiveTab lipgloss.Style
	Content     lipgloss.Style
	StatusBar   lipgloss.Style
	Toast       lipgloss.Style
	Title       lipgloss.Style
	Subtle      lipgloss.Style
	Highlight   lipgloss.Style
}

// DefaultStyles returns the default application styles.
func DefaultStyles() Styles {
	s := Styles{}
	s.TabBar = lipgloss.NewStyle().Padding(0, 1).BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).BorderForeground(styles.Subtle)
	s.ActiveTab = lipgloss.NewStyle().Bold(true).Foreground(styles.Primary).Padding(0, 2)
	s.InactiveTab = lipgloss.NewStyle().Foreground(styles.TextMuted).Padding(0, 2)
	s.Content = lipgloss.NewStyle().Padding(1, 2)
	s.StatusBar = lipgloss.NewStyle().Foreground(styles.TextMuted).Padding(0, 1)
	s.Toast = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Secondary).Padding(0, 1)
	s.Title = lipgloss.NewStyle().Bold(true).Foreground(styles.Primary)
	s.Subtle = lipgloss.NewStyle().Foreground(styles.TextMuted)
	s.Highlight = lipgloss.NewStyle().Foreground(styles.Secondary)
	return s
}

// Model is the main application model.
type Model struct {
	activeTab TabID
	tabs      []Tab
	tabNames  []string

	state   *State
	load    Loader
	watcher *watch.Watcher
	keymap  KeyMap
	styles  Styles

	width  int
	height int

	showHelp bool
	ready    bool
}

// NewModel creates the application model. watcher may be nil when live
// reload is disabled.
func NewModel(state *State, load Loader, watcher *watch.Watcher) *Model {
	return &Model{
		activeTab: TabOverview,
		tabNames:  []string{"Overview", "Models", "Rhythm", "Info"},
		tabs:      make([]Tab, 4),
		state:     state,
		load:      load,
		watcher:   watcher,
		keymap:    DefaultKeyMap(),
		styles:    DefaultStyles(),
	}
}

// SetTabs installs the tab implementations.
func (m *Model) SetTabs(tabs []Tab) {
	m.tabs = tabs
	if m.width > 0 && m.height > 0 {
		m.updateTabSizes()
	}
}

// State returns the shared application state.
func (m *Model) State() *State {
	return m.state
}

// Init starts the initial load, the housekeeping tick, and the watch
// subscription when enabled.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tickCmd(),
		reloadCmd(m.load, false),
	}
	if m.watcher != nil {
		cmds = append(cmds, waitForChangeCmd(m.watcher))
	}
	for _, tab := range m.tabs {
		if tab != nil {
			cmds = append(cmds, tab.Init())
		}
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.updateTabSizes()

	case tea.KeyMsg:
		if cmd := m.handleKeyMsg(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}

	case TickMsg:
		m.state.ClearExpiredNotifications()
		cmds = append(cmds, tickCmd())

	case SummaryReloadedMsg:
		cmds = append(cmds, m.handleReloaded(msg)...)

	case WatchChangedMsg:
		cmds = append(cmds, reloadCmd(m.load, true))
		if m.watcher != nil {
			cmds = append(cmds, waitForChangeCmd(m.watcher))
		}

	case WatchErrMsg:
		m.state.AddNotification(NotificationError,
			fmt.Sprintf("watch error: %v", msg.Err), DefaultNotificationDuration)
		if m.watcher != nil {
			cmds = append(cmds, waitForChangeCmd(m.watcher))
		}

	case TabSwitchMsg:
		m.activeTab = msg.Tab
		m.updateTabSizes()

	case ToggleHelpMsg:
		m.showHelp = !m.showHelp
	}

	if cmd := m.updateActiveTab(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleReloaded(msg SummaryReloadedMsg) []tea.Cmd {
	var cmds []tea.Cmd
	if msg.Err != nil {
		m.state.SetReloadError(msg.Err)
		m.state.AddNotification(NotificationError,
			fmt.Sprintf("reload failed: %v", msg.Err), DefaultNotificationDuration)
		return cmds
	}

	m.state.SetSummary(msg.Summary)
	if msg.FromWatch {
		m.state.AddNotification(NotificationSuccess, "Usage data refreshed", DefaultNotificationDuration)
		cmds = append(cmds, notifyDesktopCmd("Cursor Wrapped",
			fmt.Sprintf("Refreshed: %d requests aggregated", msg.Summary.Totals.Events)))
	}
	return cmds
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return tea.Quit

	case key.Matches(msg, m.keymap.Help):
		m.showHelp = !m.showHelp
		return nil

	case key.Matches(msg, m.keymap.Tab1):
		m.activeTab = TabOverview
		m.updateTabSizes()
		return nil

	case key.Matches(msg, m.keymap.Tab2):
		m.activeTab = TabModels
		m.updateTabSizes()
		return nil

	case key.Matches(msg, m.keymap.Tab3):
		m.activeTab = TabRhythm
		m.updateTabSizes()
		return nil

	case key.Matches(msg, m.keymap.Tab4):
		m.activeTab = TabInfo
		m.updateTabSizes()
		return nil

	case key.Matches(msg, m.keymap.NextTab):
		if !m.showHelp {
			m.activeTab = TabID((int(m.activeTab) + 1) % len(m.tabs))
			m.updateTabSizes()
		}
		return nil

	case key.Matches(msg, m.keymap.PrevTab):
		if !m.showHelp {
			m.activeTab = TabID((int(m.activeTab) - 1 + len(m.tabs)) % len(m.tabs))
			m.updateTabSizes()
		}
		return nil

	case key.Matches(msg, m.keymap.Reload):
		return reloadCmd(m.load, false)

	case key.Matches(msg, m.keymap.Escape):
		if m.showHelp {
			m.showHelp = false
		}
		return nil
	}

	return nil
}

func (m *Model) updateActiveTab(msg tea.Msg) tea.Cmd {
	if int(m.activeTab) < len(m.tabs) && m.tabs[m.activeTab] != nil {
		var cmd tea.Cmd
		m.tabs[m.activeTab], cmd = m.tabs[m.activeTab].Update(msg)
		return cmd
	}
	return nil
}

func (m *Model) updateTabSizes() {
	contentHeight := m.height - 5
	contentHeight = max(0, contentHeight)

	for _, tab := range m.tabs {
		if tab != nil {
			tab.SetSize(m.width, contentHeight)
		}
	}
}

// View renders the application UI.
func (m *Model) View() string {
	var b strings.Builder

	if m.width > 0 {
		b.WriteString(m.renderNavbar())
		b.WriteString("\n")
	}

	if !m.ready {
		b.WriteString(m.styles.Content.Render("Loading..."))
		return b.String()
	}

	if int(m.activeTab) < len(m.tabs) && m.tabs[m.activeTab] != nil {
		b.WriteString(m.tabs[m.activeTab].View())
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())

	mainView := b.String()

	if m.showHelp {
		mainView = m.overlayCentered(mainView, m.renderHelp())
	}

	if toasts := m.renderToasts(); len(toasts) > 0 {
		mainView = m.overlayToasts(mainView, toasts)
	}

	return mainView
}

func (m *Model) renderNavbar() string {
	var tabs []string

	for i, name := range m.tabNames {
		if TabID(i) == m.activeTab {
			tabs = append(tabs, m.styles.ActiveTab.Render(fmt.Sprintf("[%d] %s", i+1, name)))
		} else {
			tabs = append(tabs, m.styles.InactiveTab.Render(fmt.Sprintf(" %d  %s", i+1, name)))
		}
	}

	tabBar := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	return m.styles.TabBar.Width(m.width).Render(tabBar)
}

func (m *Model) renderStatusBar() string {
	parts := []string{m.state.InputPath()}
	if m.state.Watching() {
		parts = append(parts, "watching")
	}
	if t := m.state.LastReload(); !t.IsZero() {
		parts = append(parts, "reloaded "+t.Format("15:04:05"))
	}
	parts = append(parts, "? help")
	return m.styles.StatusBar.Render(strings.Join(parts, "  •  "))
}

func (m *Model) renderToasts() []string {
	notifications := m.state.Notifications()
	if len(notifications) == 0 {
		return nil
	}

	var toasts []string
	for _, n := range notifications {
		var prefix string
		var style lipgloss.Style
		switch n.Type {
		case NotificationSuccess:
			prefix = "[OK]"
			style = lipgloss.NewStyle().Foreground(styles.Success)
		case NotificationError:
			prefix = "[ERR]"
			style = lipgloss.NewStyle().Foreground(styles.Error).Bold(true)
		default:
			prefix = "[INFO]"
			style = lipgloss.NewStyle().Foreground(styles.Info)
		}
		content := style.Render(fmt.Sprintf("%s %s", prefix, n.Message))
		toasts = append(toasts, m.styles.Toast.Render(content))
	}
	return toasts
}

// overlayCentered paints the overlay on top of the main view at the center
// of the window, splicing each overlay line into the matching main line.
func (m *Model) overlayCentered(mainView string, overlay string) string {
	mainLines := strings.Split(mainView, "\n")
	overlayLines := strings.Split(overlay, "\n")

	overlayHeight := len(overlayLines)
	overlayWidth := lipgloss.Width(overlay)

	y := (m.height - overlayHeight) / 2
	x := (m.width - overlayWidth) / 2

	if y < 0 {
		y = 0
	}
	if x < 0 {
		x = 0
	}

	for i, overlayLine := range overlayLines {
		mainY := y + i
		if mainY >= len(mainLines) {
			break
		}

		mainLine := mainLines[mainY]

		left := ansi.Truncate(mainLine, x, "")
		right := ansi.TruncateLeft(mainLine, x+overlayWidth, "")

		if lipgloss.Width(left) < x {
			left += strings.Repeat(" ", x-lipgloss.Width(left))
		}

		mainLines[mainY] = left + overlayLine + right
	}

	return strings.Join(mainLines, "\n")
}

func (m *Model) overlayToasts(mainView string, toasts []string) string {
	toastStack := lipgloss.JoinVertical(lipgloss.Right, toasts...)
	toastLines := strings.Split(toastStack, "\n")
	mainLines := strings.Split(mainView, "\n")

	toastWidth := lipgloss.Width(toastStack)
	startX := max(m.width-toastWidth-2, 0)
	startY := 2

	for i, toastLine := range toastLines {
		lineIdx := startY + i
		if lineIdx >= len(mainLines) {
			break
		}

		mainLine := mainLines[lineIdx]
		mainLineWidth := lipgloss.Width(mainLine)

		if mainLineWidth < startX {
			padding := strings.Repeat(" ", startX-mainLineWidth)
			mainLines[lineIdx] = mainLine + padding + toastLine
		} else {
			truncated := ansi.Truncate(mainLine, startX, "")
			mainLines[lineIdx] = truncated + toastLine
		}
	}

	return strings.Join(mainLines, "\n")
}

func (m *Model) renderHelp() string {
	var lines []string

	lines = append(lines, m.styles.Title.Render("Keyboard Shortcuts"))
	lines = append(lines, "")

	lines = append(lines, m.styles.Highlight.Render("Navigation"))
	lines = append(lines, "  1-4        Switch tabs")
	lines = append(lines, "  Tab        Next tab")
	lines = append(lines, "  Shift+Tab  Previous tab")
	lines = append(lines, "")

	lines = append(lines, m.styles.Highlight.Render("Actions"))
	lines = append(lines, "  r          Reload data")
	lines = append(lines, "  ?          Toggle help")
	lines = append(lines, "  q/Ctrl+C   Quit")
	lines = append(lines, "")

	if int(m.activeTab) < len(m.tabs) && m.tabs[m.activeTab] != nil {
		tabHelp := m.tabs[m.activeTab].ShortHelp()
		if len(tabHelp) > 0 {
			lines = append(lines, m.styles.Highlight.Render(fmt.Sprintf("%s Tab", m.tabNames[m.activeTab])))
			for _, binding := range tabHelp {
				lines = append(lines, fmt.Sprintf("  %-10s %s", binding.Help().Key, binding.Help().Desc))
			}
			lines = append(lines, "")
		}
	}

	lines = append(lines, m.styles.Subtle.Render("Press ? or Esc to close"))

	return styles.HelpPanelStyle.Render(strings.Join(lines, "\n"))
}
