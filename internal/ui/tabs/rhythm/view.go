package rhythm

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/avilla-dev/cursor-wrapped/internal/format"
	"github.com/avilla-dev/cursor-wrapped/internal/models"
	"github.com/avilla-dev/cursor-wrapped/internal/ui/components"
	"github.com/avilla-dev/cursor-wrapped/internal/ui/styles"
)

// View renders the rhythm tab.
func (m *Model) View() string {
	s := m.state.Summary()
	if s == nil {
		return styles.DocStyle.Render(styles.HelpStyle.Render("Aggregating usage data..."))
	}

	var sections []string
	sections = append(sections, styles.TitleStyle.Render("Activity Rhythm"))
	sections = append(sections, styles.HelpStyle.Render("When you work with Cursor"))
	sections = append(sections, "")
	sections = append(sections, m.renderPeaksCard(s))
	sections = append(sections, m.renderHourCard(s))
	sections = append(sections, m.renderWeekdayCard(s))
	sections = append(sections, m.renderMonthCard(s))

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	m.viewport.SetContent(content)

	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(m.viewport.View())
}

func (m *Model) cardWidth() int {
	w := m.width - 6
	if w < 60 {
		w = 60
	}
	if w > 90 {
		w = 90
	}
	return w
}

func (m *Model) renderPeaksCard(s *models.Summary) string {
	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Peak Times"))
	rows = append(rows, "")
	rows = append(rows, styles.StatLabelStyle.Render("Peak hour")+
		styles.StatValueStyle.Render(fmt.Sprintf("%s (%d requests)",
			format.Hour(s.Peaks.Hour.Bucket), s.Peaks.Hour.Events)))
	rows = append(rows, styles.StatLabelStyle.Render("Peak weekday")+
		styles.StatValueStyle.Render(fmt.Sprintf("%s (%d requests)",
			components.WeekdayName(s.Peaks.Weekday.Bucket), s.Peaks.Weekday.Events)))
	rows = append(rows, styles.StatLabelStyle.Render("Peak day of month")+
		styles.StatValueStyle.Render(fmt.Sprintf("day %d (%d requests)",
			s.Peaks.DayOfMonth.Bucket, s.Peaks.DayOfMonth.Events)))
	rows = append(rows, styles.StatLabelStyle.Render("Busiest day")+
		styles.StatValueStyle.Render(fmt.Sprintf("%s (%s tokens)",
			s.Peaks.BusiestDay.Date, format.Number(s.Peaks.BusiestDay.Tokens))))
	rows = append(rows, styles.StatLabelStyle.Render("Busiest month")+
		styles.StatValueStyle.Render(fmt.Sprintf("%s (%s tokens)",
			s.Peaks.BusiestMonth.Month, format.Number(s.Peaks.BusiestMonth.Tokens))))

	return styles.CardStyle.Width(m.cardWidth()).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderHourCard(s *models.Summary) string {
	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Requests by Hour"))
	rows = append(rows, "")
	rows = append(rows, components.RenderHourHeatmap(s.Peaks.HourCounts))
	rows = append(rows, "")
	rows = append(rows, components.RenderActivityLine(
		s.Peaks.HourCounts[:], m.cardWidth()-12, 6, "hour of day"))

	return styles.CardStyle.Width(m.cardWidth()).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderWeekdayCard(s *models.Summary) string {
	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Requests by Weekday"))
	rows = append(rows, "")
	rows = append(rows, components.RenderWeekdayPattern(s.Peaks.WeekdayCounts))
	rows = append(rows, "")
	rows = append(rows, components.RenderBarChart(s.Peaks.WeekdayCounts[:],
		[]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}, m.cardWidth()-8))

	return styles.CardStyle.Width(m.cardWidth()).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderMonthCard(s *models.Summary) string {
	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Requests by Day of Month"))
	rows = append(rows, "")
	rows = append(rows, components.RenderSparkline(s.Peaks.DayOfMonthCounts[:], 31))
	rows = append(rows, styles.HelpStyle.Render("1                             31"))

	return styles.CardStyle.Width(m.cardWidth()).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}
