package info

import (
	"fmt"
	"runtime"

	"github.com/charmbracelet/lipgloss"

	"github.com/avilla-dev/cursor-wrapped/internal/ui/styles"
	"github.com/avilla-dev/cursor-wrapped/internal/version"
)

// View renders the info tab.
func (m *Model) View() string {
	var sections []string

	sections = append(sections, m.renderTitle())
	sections = append(sections, m.renderConfigCard())
	sections = append(sections, m.renderStatusCard())
	sections = append(sections, m.renderAboutCard())

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	m.viewport.SetContent(content)

	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(m.viewport.View())
}

func (m *Model) renderTitle() string {
	title := styles.TitleStyle.Render("Info")
	subtitle := styles.HelpStyle.Render("Configuration and application information")

	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "")
}

func (m *Model) cardWidth() int {
	w := m.width - 6
	if w < 50 {
		w = 50
	}
	if w > 80 {
		w = 80
	}
	return w
}

func (m *Model) renderRow(label, value string) string {
	labelStyle := lipgloss.NewStyle().
		Width(18).
		Foreground(styles.TextMuted)

	valueStyle := lipgloss.NewStyle().
		Foreground(styles.TextPrimary)

	return labelStyle.Render(label+":") + " " + valueStyle.Render(value)
}

func (m *Model) renderConfigCard() string {
	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Configuration"))
	rows = append(rows, "")

	if m.config != nil {
		rows = append(rows, m.renderRow("Usage export", m.config.InputPath))
		rows = append(rows, m.renderRow("Summary file", m.config.SummaryPath))
		htmlPath := m.config.HTMLPath
		if htmlPath == "" {
			htmlPath = "(disabled)"
		}
		rows = append(rows, m.renderRow("HTML report", htmlPath))
		rows = append(rows, m.renderRow("Top models", fmt.Sprintf("%d", m.config.TopModels)))
	} else {
		rows = append(rows, styles.HelpStyle.Render("Configuration not loaded"))
	}

	return styles.CardStyle.Width(m.cardWidth()).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderStatusCard() string {
	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Status"))
	rows = append(rows, "")

	rows = append(rows, m.renderRow("Input", m.state.InputPath()))

	watching := "no"
	if m.state.Watching() {
		watching = "yes"
	}
	rows = append(rows, m.renderRow("Watching", watching))

	if t := m.state.LastReload(); !t.IsZero() {
		rows = append(rows, m.renderRow("Last reload", t.Format("2006-01-02 15:04:05")))
	}

	if s := m.state.Summary(); s != nil && s.SkippedRecords > 0 {
		rows = append(rows, m.renderRow("Skipped records", fmt.Sprintf("%d", s.SkippedRecords)))
	}
	if err := m.state.ReloadError(); err != nil {
		rows = append(rows, "")
		rows = append(rows, styles.ErrorTextStyle.Render(err.Error()))
	}

	return styles.CardStyle.Width(m.cardWidth()).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderAboutCard() string {
	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("About Cursor Wrapped"))
	rows = append(rows, "")

	rows = append(rows, m.renderRow("Build", version.Info()))
	rows = append(rows, m.renderRow("Go Version", runtime.Version()))

	return styles.CardStyle.Width(m.cardWidth()).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}
