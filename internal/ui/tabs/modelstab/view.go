package modelstab

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/avilla-dev/cursor-wrapped/internal/format"
	"github.com/avilla-dev/cursor-wrapped/internal/models"
	"github.com/avilla-dev/cursor-wrapped/internal/ui/styles"
)

// View renders the models tab.
func (m *Model) View() string {
	s := m.state.Summary()
	if s == nil {
		return styles.DocStyle.Render(styles.HelpStyle.Render("Aggregating usage data..."))
	}
	if len(s.Models) == 0 {
		return styles.DocStyle.Render(styles.HelpStyle.Render("No model usage recorded"))
	}

	var sections []string
	sections = append(sections, styles.TitleStyle.Render("Model Breakdown"))
	sections = append(sections, styles.HelpStyle.Render(
		fmt.Sprintf("%d models, ranked by request count", len(s.Models))))
	sections = append(sections, "")
	sections = append(sections, m.renderList(s))
	sections = append(sections, "")
	sections = append(sections, m.renderDetail(s))

	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m *Model) renderList(s *models.Summary) string {
	barWidth := m.width - 50
	if barWidth < 10 {
		barWidth = 10
	}

	var lines []string
	for i, mu := range s.Models {
		cursor := "  "
		nameStyle := lipgloss.NewStyle().Foreground(styles.TextPrimary)
		if i == m.selected {
			cursor = styles.RankStyle.Render("> ")
			nameStyle = nameStyle.Bold(true).Foreground(styles.Primary)
		}

		filled := int(mu.TokenShare * float64(barWidth))
		if filled > barWidth {
			filled = barWidth
		}
		bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)

		lines = append(lines, fmt.Sprintf("%s%s %s %s %s",
			cursor,
			styles.RankStyle.Render(fmt.Sprintf("%2d.", i+1)),
			nameStyle.Width(26).Render(mu.Model),
			styles.GetHeatStyle(1).Render(bar),
			styles.HelpStyle.Render(format.Percent(mu.TokenShare)),
		))
	}

	return strings.Join(lines, "\n")
}

func (m *Model) renderDetail(s *models.Summary) string {
	if m.selected >= len(s.Models) {
		m.selected = len(s.Models) - 1
	}
	mu := s.Models[m.selected]

	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render(mu.Model))
	rows = append(rows, "")
	rows = append(rows, styles.StatLabelStyle.Render("Requests")+
		styles.StatValueStyle.Render(fmt.Sprintf("%d", mu.Events)))
	rows = append(rows, styles.StatLabelStyle.Render("Tokens")+
		styles.StatValueStyle.Render(format.Number(mu.Tokens)))
	rows = append(rows, styles.StatLabelStyle.Render("Token share")+
		styles.StatValueStyle.Render(format.Percent(mu.TokenShare)))
	rows = append(rows, styles.StatLabelStyle.Render("Cost")+
		styles.StatValueStyle.Render(format.Cost(mu.Cost)))

	cardWidth := m.width - 6
	if cardWidth < 50 {
		cardWidth = 50
	}
	if cardWidth > 80 {
		cardWidth = 80
	}

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}
