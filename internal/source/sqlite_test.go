package source

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
)

const createUsageEvents = `
	CREATE TABLE usage_events (
		timestamp TEXT NOT NULL,
		kind TEXT,
		model TEXT,
		max_mode INTEGER NOT NULL DEFAULT 0,
		input_with_cache_write INTEGER NOT NULL DEFAULT 0,
		input_without_cache_write INTEGER NOT NULL DEFAULT 0,
		cache_read_tokens INTEGER NOT NULL DEFAULT 0,
		output_tokens INTEGER NOT NULL DEFAULT 0,
		total_tokens INTEGER NOT NULL DEFAULT 0,
		cost TEXT
	)
`

func seedUsageDB(t *testing.T, rows [][]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "usage.db")

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	defer func() { _ = db.Close() }()

	if _, err := db.Exec(createUsageEvents); err != nil {
		t.Fatalf("create table: %v", err)
	}
	for _, row := range rows {
		_, err := db.Exec(`INSERT INTO usage_events VALUES (?,?,?,?,?,?,?,?,?,?)`, row...)
		if err != nil {
			t.Fatalf("insert row: %v", err)
		}
	}
	return path
}

func TestSQLiteLoad(t *testing.T) {
	path := seedUsageDB(t, [][]any{
		{"2025-03-10T09:15:00Z", "Included", "claude-4.5-sonnet", 0, 10, 20, 30, 40, 100, "0.50"},
		{"2025-03-10T14:30:00Z", "Included", "gpt-5", 1, 0, 5, 0, 15, 20, "0.25"},
	})

	result, err := NewSQLite(path, Filter{}).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(result.Events) != 2 {
		t.Fatalf("len(Events) = %d, want 2", len(result.Events))
	}
	e := result.Events[0]
	if e.Model != "claude-4.5-sonnet" || e.RecordedTotalTokens != 100 {
		t.Errorf("first event = %+v", e)
	}
	if got := e.Cost.String(); got != "0.5" {
		t.Errorf("Cost = %s, want 0.5", got)
	}
	if !result.Events[1].MaxMode {
		t.Error("MaxMode not set from integer column")
	}
}

func TestSQLiteLoadSkipsMalformedRows(t *testing.T) {
	path := seedUsageDB(t, [][]any{
		{"2025-03-10T09:15:00Z", "Included", "good", 0, 0, 0, 0, 0, 100, "0.10"},
		{"garbage", "Included", "bad-date", 0, 0, 0, 0, 0, 100, "0.10"},
		{"2025-03-10T10:00:00Z", "Included", "negative", 0, 0, -5, 0, 0, 100, "0.10"},
		{"2025-03-10T11:00:00Z", "Included", "bad-cost", 0, 0, 0, 0, 0, 100, "oops"},
	})

	result, err := NewSQLite(path, Filter{}).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(result.Events) != 1 || result.Events[0].Model != "good" {
		t.Errorf("Events = %+v, want only the good row", result.Events)
	}
	if result.Skipped != 3 {
		t.Errorf("Skipped = %d, want 3", result.Skipped)
	}
}

func TestSQLiteLoadFilters(t *testing.T) {
	path := seedUsageDB(t, [][]any{
		{"2025-03-10T09:15:00Z", "Included", "kept", 0, 0, 0, 0, 0, 100, "0"},
		{"2025-03-10T10:00:00Z", "Errored", "dropped", 0, 0, 0, 0, 0, 100, "0"},
	})

	filter := Filter{Kinds: []string{"Included"}, NonZeroTokens: true}
	result, err := NewSQLite(path, filter).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(result.Events) != 1 || result.Events[0].Model != "kept" {
		t.Errorf("Events = %+v, want only the kept row", result.Events)
	}
	if result.Skipped != 0 {
		t.Errorf("Skipped = %d, want 0", result.Skipped)
	}
}

func TestSQLiteLoadMissingFile(t *testing.T) {
	src := NewSQLite(filepath.Join(t.TempDir(), "nope.db"), Filter{})
	if _, err := src.Load(context.Background()); err == nil {
		t.Fatal("Load() = nil error for missing database")
	}
}
