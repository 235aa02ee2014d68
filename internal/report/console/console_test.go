package console

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/avilla-dev/cursor-wrapped/internal/models"
)

var ansiSeq = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiSeq.ReplaceAllString(s, "")
}

func sampleSummary() *models.Summary {
	return &models.Summary{
		Year: 2025,
		Span: models.TimeSpan{
			Start:      time.Date(2025, 1, 2, 8, 0, 0, 0, time.UTC),
			End:        time.Date(2025, 11, 30, 23, 0, 0, 0, time.UTC),
			DaysActive: 120,
		},
		Totals: models.Totals{
			Events:       1000,
			Tokens:       5_000_000,
			Cost:         decimal.RequireFromString("123.45"),
			TokensPerDay: 41_666,
			CostPerDay:   decimal.RequireFromString("1.03"),
		},
		Models: []models.ModelUsage{
			{Model: "claude-4.5-sonnet", Events: 700, Tokens: 4_000_000, TokenShare: 0.8},
			{Model: "gpt-5", Events: 300, Tokens: 1_000_000, TokenShare: 0.2},
		},
		Peaks: models.Peaks{
			Hour:         models.PeakBucket{Bucket: 14, Events: 90},
			DayOfMonth:   models.PeakBucket{Bucket: 3, Events: 70},
			Weekday:      models.PeakBucket{Bucket: 2, Events: 200},
			BusiestDay:   models.DayTotal{Date: "2025-07-20", Tokens: 400_000},
			BusiestMonth: models.MonthTotal{Month: "2025-07", Tokens: 1_200_000},
		},
		Cache:  models.CacheStats{HitRate: 0.42, Hits: 420, TokensSaved: 2_000_000},
		Tokens: models.TokenStats{Mean: 5000, Median: 3200, Max: 90_000},
	}
}

func TestRenderContainsSections(t *testing.T) {
	var buf strings.Builder
	if err := New(&buf, 0).Render(sampleSummary()); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	out := stripANSI(buf.String())

	wantFragments := []string{
		"CURSOR WRAPPED 2025",
		"Your Year in Cursor",
		"January 2, 2025",
		"120 days",
		"Total Activity",
		"5.00M",
		"Your Investment",
		"$123.45",
		"Your Top Models",
		"4.5 Sonnet",
		"80.0%",
		"Peak Times",
		"2:00 PM (90 requests)",
		"Tuesday (200 requests)",
		"day 3 (70 requests)",
		"2025-07-20",
		"Cache Efficiency",
		"42.0%",
		"Token Statistics",
		"90.00K",
	}
	for _, want := range wantFragments {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestRenderTopModelsLimit(t *testing.T) {
	var buf strings.Builder
	if err := New(&buf, 1).Render(sampleSummary()); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	out := stripANSI(buf.String())

	if !strings.Contains(out, "4.5 Sonnet") {
		t.Error("top model missing from limited report")
	}
	if strings.Contains(out, "Gpt 5") {
		t.Error("second model rendered despite top-models limit of 1")
	}
}

func TestRenderSkippedRecordsNote(t *testing.T) {
	s := sampleSummary()
	s.SkippedRecords = 4

	var buf strings.Builder
	if err := New(&buf, 0).Render(s); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	out := stripANSI(buf.String())

	if !strings.Contains(out, "4 malformed record(s) were skipped") {
		t.Error("skipped-records note missing")
	}

	var clean strings.Builder
	if err := New(&clean, 0).Render(sampleSummary()); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if strings.Contains(stripANSI(clean.String()), "malformed") {
		t.Error("skipped-records note rendered with zero skips")
	}
}

func TestPrettyModelName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"claude-4.5-sonnet", "4.5 Sonnet"},
		{"gpt-5", "Gpt 5"},
		{"gemini-3-pro", "Gemini 3 Pro"},
	}

	for _, tt := range tests {
		if got := prettyModelName(tt.in); got != tt.want {
			t.Errorf("prettyModelName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
