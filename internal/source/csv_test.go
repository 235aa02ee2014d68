package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/avilla-dev/cursor-wrapped/internal/models"
)

const csvHeader = `Date,Kind,Model,Max Mode,Input (w/ Cache Write),Input (w/o Cache Write),Cache Read,Output Tokens,Total Tokens,Cost`

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "usage-events.csv")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write test csv: %v", err)
	}
	return path
}

func TestCSVLoad(t *testing.T) {
	path := writeCSV(t, csvHeader+`
2025-03-10T09:15:00Z,Included,claude-4.5-sonnet,Off,10,20,30,40,100,0.50
2025-03-10T14:30:00Z,Included,gpt-5,On,0,5,0,15,20,0.25
`)

	src := NewCSV(path, Filter{})
	result, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(result.Events) != 2 {
		t.Fatalf("len(Events) = %d, want 2", len(result.Events))
	}
	if result.Skipped != 0 {
		t.Errorf("Skipped = %d, want 0", result.Skipped)
	}

	e := result.Events[0]
	if e.Model != "claude-4.5-sonnet" {
		t.Errorf("Model = %q", e.Model)
	}
	if e.Kind != "Included" {
		t.Errorf("Kind = %q", e.Kind)
	}
	if e.MaxMode {
		t.Error("MaxMode = true for Off row")
	}
	if e.InputWithCacheWrite != 10 || e.InputWithoutCacheWrite != 20 ||
		e.CacheReadTokens != 30 || e.OutputTokens != 40 || e.RecordedTotalTokens != 100 {
		t.Errorf("token fields = %+v", e)
	}
	if got := e.Cost.String(); got != "0.5" {
		t.Errorf("Cost = %s, want 0.5", got)
	}
	if !result.Events[1].MaxMode {
		t.Error("MaxMode = false for On row")
	}
}

func TestCSVLoadSkipsMalformedRows(t *testing.T) {
	path := writeCSV(t, csvHeader+`
2025-03-10T09:15:00Z,Included,good,Off,0,0,0,0,100,0.10
not-a-timestamp,Included,bad-date,Off,0,0,0,0,100,0.10
2025-03-10T10:00:00Z,Included,bad-count,Off,0,abc,0,0,100,0.10
2025-03-10T11:00:00Z,Included,negative,Off,0,-5,0,0,100,0.10
2025-03-10T12:00:00Z,Included,bad-cost,Off,0,0,0,0,100,oops
2025-03-10T13:00:00Z,Included,also-good,Off,0,0,0,0,50,0.05
`)

	result, err := NewCSV(path, Filter{}).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(result.Events) != 2 {
		t.Errorf("len(Events) = %d, want 2", len(result.Events))
	}
	if result.Skipped != 4 {
		t.Errorf("Skipped = %d, want 4", result.Skipped)
	}
}

func TestCSVLoadBadTimestampAccounting(t *testing.T) {
	path := writeCSV(t, csvHeader+`
2025-03-10T09:15:00Z,Included,m,Off,0,0,0,0,10,0
bogus,Included,m,Off,0,0,0,0,10,0
2025-03-10T10:15:00Z,Included,m,Off,0,0,0,0,10,0
03/10/2025,Included,m,Off,0,0,0,0,10,0
2025-03-10T11:15:00Z,Included,m,Off,0,0,0,0,10,0
`)

	result, err := NewCSV(path, Filter{}).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(result.Events) != 3 {
		t.Errorf("len(Events) = %d, want 3", len(result.Events))
	}
	if result.Skipped != 2 {
		t.Errorf("Skipped = %d, want 2", result.Skipped)
	}
}

func TestCSVLoadFilters(t *testing.T) {
	path := writeCSV(t, csvHeader+`
2025-03-10T09:15:00Z,Included,kept,Off,0,0,0,0,100,0.10
2025-03-10T10:00:00Z,Errored,dropped-kind,Off,0,0,0,0,100,0
2025-03-10T11:00:00Z,Included,dropped-empty,Off,0,0,0,0,0,0
`)

	filter := Filter{Kinds: []string{"Included"}, NonZeroTokens: true}
	result, err := NewCSV(path, filter).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(result.Events) != 1 || result.Events[0].Model != "kept" {
		t.Errorf("Events = %+v, want only the kept row", result.Events)
	}
	// Filtered rows are valid, not malformed.
	if result.Skipped != 0 {
		t.Errorf("Skipped = %d, want 0", result.Skipped)
	}
}

func TestCSVLoadAcceptsEmptyAndNaNCells(t *testing.T) {
	path := writeCSV(t, csvHeader+`
2025-03-10T09:15:00Z,Included,m,Off,,,,,100,NaN
`)

	result, err := NewCSV(path, Filter{}).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(result.Events) != 1 {
		t.Fatalf("len(Events) = %d, want 1", len(result.Events))
	}
	e := result.Events[0]
	if e.InputWithCacheWrite != 0 || e.CacheReadTokens != 0 {
		t.Errorf("empty cells should parse as zero: %+v", e)
	}
	if !e.Cost.IsZero() {
		t.Errorf("NaN cost should parse as zero, got %s", e.Cost)
	}
}

func TestCSVLoadTimestampLayouts(t *testing.T) {
	path := writeCSV(t, csvHeader+`
2025-03-10 09:15:00,Included,space-layout,Off,0,0,0,0,10,0
2025-03-10T09:16:00,Included,no-zone,Off,0,0,0,0,10,0
2025-03-10T09:17:00+02:00,Included,offset,Off,0,0,0,0,10,0
`)

	result, err := NewCSV(path, Filter{}).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(result.Events) != 3 {
		t.Fatalf("len(Events) = %d, want 3", len(result.Events))
	}
	// The stated offset is kept, not converted.
	if _, off := result.Events[2].Timestamp.Zone(); off != 2*60*60 {
		t.Errorf("offset = %d, want +02:00 preserved", off)
	}
}

func TestCSVLoadMissingFile(t *testing.T) {
	src := NewCSV(filepath.Join(t.TempDir(), "nope.csv"), Filter{})
	if _, err := src.Load(context.Background()); err == nil {
		t.Fatal("Load() = nil error for missing file")
	}
}

func TestCSVLoadMissingDateColumn(t *testing.T) {
	path := writeCSV(t, "Kind,Model\nIncluded,m\n")
	if _, err := NewCSV(path, Filter{}).Load(context.Background()); err == nil {
		t.Fatal("Load() = nil error for export without Date column")
	}
}

func makeEvent(kind string, tokens int64) models.Event {
	return models.Event{
		Timestamp:           time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
		Kind:                kind,
		Model:               "m",
		RecordedTotalTokens: tokens,
	}
}

func TestFilterKeep(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		kind   string
		tokens int64
		want   bool
	}{
		{"empty filter keeps all", Filter{}, "Errored", 0, true},
		{"kind match", Filter{Kinds: []string{"Included"}}, "Included", 10, true},
		{"kind mismatch", Filter{Kinds: []string{"Included"}}, "Errored", 10, false},
		{"zero tokens dropped", Filter{NonZeroTokens: true}, "Included", 0, false},
		{"nonzero tokens kept", Filter{NonZeroTokens: true}, "Included", 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := makeEvent(tt.kind, tt.tokens)
			if got := tt.filter.Keep(e); got != tt.want {
				t.Errorf("Keep() = %v, want %v", got, tt.want)
			}
		})
	}
}
