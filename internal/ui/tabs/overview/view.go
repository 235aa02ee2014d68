package overview

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/avilla-dev/cursor-wrapped/internal/format"
	"github.com/avilla-dev/cursor-wrapped/internal/models"
	"github.com/avilla-dev/cursor-wrapped/internal/ui/styles"
)

// View renders the overview tab.
func (m *Model) View() string {
	s := m.state.Summary()
	if s == nil {
		return styles.DocStyle.Render(styles.HelpStyle.Render("Aggregating usage data..."))
	}

	var sections []string
	sections = append(sections, m.renderTitle(s))
	sections = append(sections, m.renderActivityCard(s))
	sections = append(sections, m.renderCostCard(s))
	sections = append(sections, m.renderCacheCard(s))

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	m.viewport.SetContent(content)

	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(m.viewport.View())
}

func (m *Model) renderTitle(s *models.Summary) string {
	title := styles.TitleStyle.Render(fmt.Sprintf("Cursor Wrapped %d", s.Year))
	subtitle := styles.HelpStyle.Render(fmt.Sprintf("%s to %s, %d days active",
		format.Date(s.Span.Start), format.Date(s.Span.End), s.Span.DaysActive))

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

func (m *Model) renderStatRow(label, value string) string {
	return styles.StatLabelStyle.Render(label) + styles.StatValueStyle.Render(value)
}

func (m *Model) renderActivityCard(s *models.Summary) string {
	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Total Activity"))
	rows = append(rows, "")
	rows = append(rows, m.renderStatRow("Requests", fmt.Sprintf("%d", s.Totals.Events)))
	rows = append(rows, m.renderStatRow("Tokens processed", format.Number(s.Totals.Tokens)))
	rows = append(rows, m.renderStatRow("Tokens per day", format.Number(s.Totals.TokensPerDay)))
	rows = append(rows, m.renderStatRow("Average per request", format.Float(s.Tokens.Mean)))
	rows = append(rows, m.renderStatRow("Median per request", format.Float(s.Tokens.Median)))
	rows = append(rows, m.renderStatRow("Largest request", format.Number(s.Tokens.Max)))

	return styles.CardStyle.Width(m.cardWidth()).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderCostCard(s *models.Summary) string {
	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Your Investment"))
	rows = append(rows, "")
	rows = append(rows, m.renderStatRow("Total cost", format.Cost(s.Totals.Cost)))
	rows = append(rows, m.renderStatRow("Per active day", format.Cost(s.Totals.CostPerDay)))

	return styles.CardStyle.Width(m.cardWidth()).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderCacheCard(s *models.Summary) string {
	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Cache Efficiency"))
	rows = append(rows, "")
	rows = append(rows, m.renderStatRow("Cache hit rate", format.Percent(s.Cache.HitRate)))
	rows = append(rows, m.renderStatRow("Tokens from cache", format.Number(s.Cache.TokensSaved)))

	if s.SkippedRecords > 0 {
		rows = append(rows, "")
		rows = append(rows, styles.WarningTextStyle.Render(
			fmt.Sprintf("%d malformed record(s) skipped", s.SkippedRecords)))
	}

	return styles.CardStyle.Width(m.cardWidth()).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}
