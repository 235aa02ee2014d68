// Package console renders the wrapped summary as a styled report on a
// writer, normally stdout.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/avilla-dev/cursor-wrapped/internal/format"
	"github.com/avilla-dev/cursor-wrapped/internal/models"
	"github.com/avilla-dev/cursor-wrapped/internal/ui/components"
	"github.com/avilla-dev/cursor-wrapped/internal/ui/styles"
)

const reportWidth = 64

// Presenter writes the year-in-review report to W.
type Presenter struct {
	W io.Writer
	// TopModels limits the ranked model list; zero means show all.
	TopModels int
}

// New creates a console presenter writing to w.
func New(w io.Writer, topModels int) *Presenter {
	return &Presenter{W: w, TopModels: topModels}
}

// Render writes the full report. The summary is treated as read-only.
func (p *Presenter) Render(s *models.Summary) error {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(styles.BannerStyle.Render(fmt.Sprintf("CURSOR WRAPPED %d", s.Year)))
	b.WriteString("\n\n")

	p.writeSpan(&b, s)
	p.writeTotals(&b, s)
	p.writeCost(&b, s)
	p.writeModels(&b, s)
	p.writePeaks(&b, s)
	p.writeCache(&b, s)
	p.writeTokenStats(&b, s)

	if s.SkippedRecords > 0 {
		b.WriteString(styles.WarningTextStyle.Render(
			fmt.Sprintf("Note: %d malformed record(s) were skipped.", s.SkippedRecords)))
		b.WriteString("\n\n")
	}

	_, err := io.WriteString(p.W, b.String())
	if err != nil {
		return fmt.Errorf("write console report: %w", err)
	}
	return nil
}

func (p *Presenter) section(b *strings.Builder, title string) {
	b.WriteString(styles.SubTitleStyle.Render(title))
	b.WriteString("\n")
}

func (p *Presenter) row(b *strings.Builder, label, value string) {
	b.WriteString("  ")
	b.WriteString(styles.StatLabelStyle.Render(label))
	b.WriteString(styles.StatValueStyle.Render(value))
	b.WriteString("\n")
}

func (p *Presenter) writeSpan(b *strings.Builder, s *models.Summary) {
	p.section(b, "Your Year in Cursor")
	p.row(b, "From", format.Date(s.Span.Start))
	p.row(b, "To", format.Date(s.Span.End))
	p.row(b, "Days active", fmt.Sprintf("%d days", s.Span.DaysActive))
	b.WriteString("\n")
}

func (p *Presenter) writeTotals(b *strings.Builder, s *models.Summary) {
	p.section(b, "Total Activity")
	p.row(b, "Requests", fmt.Sprintf("%d", s.Totals.Events))
	p.row(b, "Tokens processed", format.Number(s.Totals.Tokens))
	p.row(b, "Tokens per day", format.Number(s.Totals.TokensPerDay))
	b.WriteString("\n")
}

func (p *Presenter) writeCost(b *strings.Builder, s *models.Summary) {
	p.section(b, "Your Investment")
	p.row(b, "Total cost", format.Cost(s.Totals.Cost))
	p.row(b, "Per active day", format.Cost(s.Totals.CostPerDay))
	b.WriteString("\n")
}

func (p *Presenter) writeModels(b *strings.Builder, s *models.Summary) {
	p.section(b, "Your Top Models")

	limit := p.TopModels
	if limit <= 0 || limit > len(s.Models) {
		limit = len(s.Models)
	}
	for i, m := range s.Models[:limit] {
		rank := styles.RankStyle.Render(fmt.Sprintf("%d.", i+1))
		b.WriteString(fmt.Sprintf("  %s %-28s %10s tokens (%s)\n",
			rank, prettyModelName(m.Model), format.Number(m.Tokens), format.Percent(m.TokenShare)))
	}
	b.WriteString("\n")
}

func (p *Presenter) writePeaks(b *strings.Builder, s *models.Summary) {
	p.section(b, "Peak Times")
	p.row(b, "Peak hour", fmt.Sprintf("%s (%d requests)",
		format.Hour(s.Peaks.Hour.Bucket), s.Peaks.Hour.Events))
	p.row(b, "Peak weekday", fmt.Sprintf("%s (%d requests)",
		components.WeekdayName(s.Peaks.Weekday.Bucket), s.Peaks.Weekday.Events))
	p.row(b, "Peak day of month", fmt.Sprintf("day %d (%d requests)",
		s.Peaks.DayOfMonth.Bucket, s.Peaks.DayOfMonth.Events))
	p.row(b, "Busiest day", fmt.Sprintf("%s (%s tokens)",
		s.Peaks.BusiestDay.Date, format.Number(s.Peaks.BusiestDay.Tokens)))
	p.row(b, "Busiest month", fmt.Sprintf("%s (%s tokens)",
		s.Peaks.BusiestMonth.Month, format.Number(s.Peaks.BusiestMonth.Tokens)))
	b.WriteString("\n")

	chart := components.RenderActivityLine(s.Peaks.HourCounts[:], reportWidth, 6, "requests by hour of day")
	b.WriteString(indent(chart, 2))
	b.WriteString("\n\n")

	bars := components.RenderBarChart(s.Peaks.WeekdayCounts[:],
		[]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}, reportWidth)
	b.WriteString(indent(bars, 2))
	b.WriteString("\n\n")
}

func (p *Presenter) writeCache(b *strings.Builder, s *models.Summary) {
	p.section(b, "Cache Efficiency")
	p.row(b, "Cache hit rate", format.Percent(s.Cache.HitRate))
	p.row(b, "Tokens from cache", format.Number(s.Cache.TokensSaved))
	b.WriteString("\n")
}

func (p *Presenter) writeTokenStats(b *strings.Builder, s *models.Summary) {
	p.section(b, "Token Statistics")
	p.row(b, "Average per request", format.Float(s.Tokens.Mean))
	p.row(b, "Median per request", format.Float(s.Tokens.Median))
	p.row(b, "Largest request", format.Number(s.Tokens.Max))
	b.WriteString("\n")
}

// prettyModelName turns a raw model identifier into a display name, e.g.
// "claude-4.5-sonnet" -> "4.5 Sonnet".
func prettyModelName(model string) string {
	name := strings.TrimPrefix(model, "claude-")
	words := strings.Split(strings.ReplaceAll(name, "-", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	return pad + strings.ReplaceAll(s, "\n", "\n"+pad)
}
