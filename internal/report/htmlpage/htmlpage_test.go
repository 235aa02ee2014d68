package htmlpage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/avilla-dev/cursor-wrapped/internal/models"
)

func sampleSummary() *models.Summary {
	return &models.Summary{
		GeneratedAt: time.Date(2025, 12, 31, 23, 0, 0, 0, time.UTC),
		Year:        2025,
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

func TestRenderWritesPage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pages", "wrapped.html")

	if err := New(path, 0).Render(sampleSummary()); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read page: %v", err)
	}
	page := string(data)

	wantFragments := []string{
		"<title>Cursor Wrapped 2025</title>",
		"Cursor Wrapped 2025",
		"120 days of coding",
		"claude-4.5-sonnet",
		"gpt-5",
		"5.00M",
		"$123.45",
		"2:00 PM",
		"Tuesday",
		"2025-07-20",
		"42.0%",
	}
	for _, want := range wantFragments {
		if !strings.Contains(page, want) {
			t.Errorf("page missing %q", want)
		}
	}

	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("temp file still present after write: %v", err)
	}
}

func TestRenderTopModelsLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wrapped.html")

	if err := New(path, 1).Render(sampleSummary()); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read page: %v", err)
	}
	if strings.Contains(string(data), "gpt-5") {
		t.Error("second model rendered despite top-models limit of 1")
	}
}

func TestRenderEscapesModelNames(t *testing.T) {
	s := sampleSummary()
	s.Models[0].Model = `<script>alert("x")</script>`

	path := filepath.Join(t.TempDir(), "wrapped.html")
	if err := New(path, 0).Render(s); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read page: %v", err)
	}
	if strings.Contains(string(data), "<script>alert") {
		t.Error("model name not escaped in page")
	}
}

func TestRenderSkippedNote(t *testing.T) {
	s := sampleSummary()
	s.SkippedRecords = 7

	path := filepath.Join(t.TempDir(), "wrapped.html")
	if err := New(path, 0).Render(s); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read page: %v", err)
	}
	if !strings.Contains(string(data), "7 malformed record(s) were skipped") {
		t.Error("skipped-records note missing")
	}
}
