// Package htmlpage renders the wrapped summary as a self-contained static
// HTML page.
package htmlpage

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"github.com/avilla-dev/cursor-wrapped/internal/format"
	"github.com/avilla-dev/cursor-wrapped/internal/models"
	"github.com/avilla-dev/cursor-wrapped/internal/ui/components"
)

// Presenter writes the static page at Path.
type Presenter struct {
	Path string
	// TopModels limits the model table; zero shows all.
	TopModels int
}

// New creates an HTML presenter writing to path.
func New(path string, topModels int) *Presenter {
	return &Presenter{Path: path, TopModels: topModels}
}

var funcs = template.FuncMap{
	"number":  format.Number,
	"float":   format.Float,
	"cost":    func(d decimal.Decimal) string { return format.Cost(d) },
	"hour":    format.Hour,
	"date":    format.Date,
	"percent": format.Percent,
	"weekday": components.WeekdayName,
	"addOne":  func(i int) int { return i + 1 },
}

var page = template.Must(template.New("wrapped").Funcs(funcs).Parse(pageTemplate))

// Render executes the page template and writes it atomically.
func (p *Presenter) Render(s *models.Summary) error {
	limit := p.TopModels
	if limit <= 0 || limit > len(s.Models) {
		limit = len(s.Models)
	}
	data := struct {
		*models.Summary
		TopModels []models.ModelUsage
	}{Summary: s, TopModels: s.Models[:limit]}

	var buf bytes.Buffer
	if err := page.Execute(&buf, data); err != nil {
		return fmt.Errorf("render html page: %w", err)
	}

	dir := filepath.Dir(p.Path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create html directory: %w", err)
		}
	}
	tmpFile := p.Path + ".tmp"
	if err := os.WriteFile(tmpFile, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("write html page: %w", err)
	}
	if err := os.Rename(tmpFile, p.Path); err != nil {
		_ = os.Remove(tmpFile)
		return fmt.Errorf("write html page: %w", err)
	}
	return nil
}

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Cursor Wrapped {{.Year}}</title>
<style>
  body { background: #14121f; color: #e8e6f0; font-family: -apple-system, "Segoe UI", sans-serif; margin: 0; }
  main { max-width: 720px; margin: 0 auto; padding: 3rem 1.5rem; }
  h1 { color: #ff79c6; text-align: center; font-size: 2.4rem; margin-bottom: 0.25rem; }
  .subtitle { text-align: center; color: #9b93b8; margin-bottom: 2.5rem; }
  section { background: #1e1a2e; border-radius: 12px; padding: 1.25rem 1.5rem; margin-bottom: 1.25rem; }
  h2 { color: #bd93f9; font-size: 1.1rem; margin: 0 0 0.75rem; }
  dl { display: grid; grid-template-columns: max-content 1fr; gap: 0.3rem 1.25rem; margin: 0; }
  dt { color: #9b93b8; }
  dd { margin: 0; font-weight: 600; }
  table { width: 100%; border-collapse: collapse; }
  th, td { text-align: left; padding: 0.35rem 0.5rem; }
  th { color: #9b93b8; font-weight: 500; border-bottom: 1px solid #332d4d; }
  td.num, th.num { text-align: right; }
  .note { color: #ffb86c; font-size: 0.9rem; }
  footer { text-align: center; color: #9b93b8; margin-top: 2rem; font-size: 0.85rem; }
</style>
</head>
<body>
<main>
  <h1>Cursor Wrapped {{.Year}}</h1>
  <p class="subtitle">{{date .Span.Start}} &rarr; {{date .Span.End}} &middot; {{.Span.DaysActive}} days of coding</p>

  <section>
    <h2>Total Activity</h2>
    <dl>
      <dt>Requests</dt><dd>{{.Totals.Events}}</dd>
      <dt>Tokens processed</dt><dd>{{number .Totals.Tokens}}</dd>
      <dt>Tokens per day</dt><dd>{{number .Totals.TokensPerDay}}</dd>
      <dt>Total cost</dt><dd>{{cost .Totals.Cost}}</dd>
      <dt>Cost per day</dt><dd>{{cost .Totals.CostPerDay}}</dd>
    </dl>
  </section>

  <section>
    <h2>Top Models</h2>
    <table>
      <tr><th>#</th><th>Model</th><th class="num">Requests</th><th class="num">Tokens</th><th class="num">Share</th></tr>
      {{range $i, $m := .TopModels}}
      <tr>
        <td>{{addOne $i}}</td>
        <td>{{$m.Model}}</td>
        <td class="num">{{$m.Events}}</td>
        <td class="num">{{number $m.Tokens}}</td>
        <td class="num">{{percent $m.TokenShare}}</td>
      </tr>
      {{end}}
    </table>
  </section>

  <section>
    <h2>Peak Times</h2>
    <dl>
      <dt>Peak hour</dt><dd>{{hour .Peaks.Hour.Bucket}} ({{.Peaks.Hour.Events}} requests)</dd>
      <dt>Peak weekday</dt><dd>{{weekday .Peaks.Weekday.Bucket}} ({{.Peaks.Weekday.Events}} requests)</dd>
      <dt>Peak day of month</dt><dd>day {{.Peaks.DayOfMonth.Bucket}} ({{.Peaks.DayOfMonth.Events}} requests)</dd>
      <dt>Busiest day</dt><dd>{{.Peaks.BusiestDay.Date}} ({{number .Peaks.BusiestDay.Tokens}} tokens)</dd>
      <dt>Busiest month</dt><dd>{{.Peaks.BusiestMonth.Month}} ({{number .Peaks.BusiestMonth.Tokens}} tokens)</dd>
    </dl>
  </section>

  <section>
    <h2>Cache Efficiency</h2>
    <dl>
      <dt>Cache hit rate</dt><dd>{{percent .Cache.HitRate}}</dd>
      <dt>Tokens from cache</dt><dd>{{number .Cache.TokensSaved}}</dd>
    </dl>
  </section>

  <section>
    <h2>Token Statistics</h2>
    <dl>
      <dt>Average per request</dt><dd>{{float .Tokens.Mean}}</dd>
      <dt>Median per request</dt><dd>{{float .Tokens.Median}}</dd>
      <dt>Largest request</dt><dd>{{number .Tokens.Max}}</dd>
    </dl>
    {{if gt .SkippedRecords 0}}<p class="note">{{.SkippedRecords}} malformed record(s) were skipped.</p>{{end}}
  </section>

  <footer>Generated {{.GeneratedAt.Format "2006-01-02 15:04 MST"}} by cursor-wrapped</footer>
</main>
</body>
</html>
`
