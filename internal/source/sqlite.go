package source

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	// Import modernc.org/sqlite as a blank import to register the driver
	_ "modernc.org/sqlite"

	"github.com/avilla-dev/cursor-wrapped/internal/logger"
	"github.com/avilla-dev/cursor-wrapped/internal/models"
)

// SQLiteSource reads usage events from a local SQLite database with a
// usage_events table mirroring the CSV export columns.
type SQLiteSource struct {
	path   string
	filter Filter
}

// NewSQLite creates a SQLite source for the database at path.
func NewSQLite(path string, filter Filter) *SQLiteSource {
	return &SQLiteSource{path: path, filter: filter}
}

const sqliteQuery = `
	SELECT timestamp, kind, model, max_mode,
	       input_with_cache_write, input_without_cache_write,
	       cache_read_tokens, output_tokens, total_tokens, cost
	FROM usage_events
	ORDER BY timestamp
`

// Load reads and validates every row of the usage_events table. Rows that
// fail validation are dropped and counted, matching the CSV source.
func (s *SQLiteSource) Load(ctx context.Context) (*Result, error) {
	if _, err := os.Stat(s.path); err != nil {
		return nil, fmt.Errorf("open usage database: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return nil, fmt.Errorf("open usage database: %w", err)
	}
	defer func() { _ = db.Close() }()

	rows, err := db.QueryContext(ctx, sqliteQuery)
	if err != nil {
		return nil, fmt.Errorf("query usage events: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			logger.Error("failed to close rows", "error", err)
		}
	}()

	result := &Result{}
	line := 0
	for rows.Next() {
		line++
		var (
			e       models.Event
			tsStr   string
			maxMode int64
			kind    sql.NullString
			model   sql.NullString
			costStr sql.NullString
		)
		err := rows.Scan(
			&tsStr,
			&kind,
			&model,
			&maxMode,
			&e.InputWithCacheWrite,
			&e.InputWithoutCacheWrite,
			&e.CacheReadTokens,
			&e.OutputTokens,
			&e.RecordedTotalTokens,
			&costStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scan usage event: %w", err)
		}

		ts, err := parseTimestamp(tsStr)
		if err != nil {
			result.Skipped++
			logger.Debug("skipping malformed row", "line", line, "error", err)
			continue
		}
		e.Timestamp = ts
		e.Kind = kind.String
		e.Model = model.String
		e.MaxMode = maxMode != 0

		cost, err := parseCost(costStr.String)
		if err != nil {
			result.Skipped++
			logger.Debug("skipping malformed row", "line", line, "error", err)
			continue
		}
		e.Cost = cost

		if err := checkEvent(e, line); err != nil {
			result.Skipped++
			logger.Debug("skipping malformed row", "error", err)
			continue
		}
		if !s.filter.Keep(e) {
			continue
		}
		result.Events = append(result.Events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read usage events: %w", err)
	}

	logger.Debug("loaded usage database",
		"path", s.path, "events", len(result.Events), "skipped", result.Skipped)
	return result, nil
}
