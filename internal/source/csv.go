package source

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/avilla-dev/cursor-wrapped/internal/logger"
	"github.com/avilla-dev/cursor-wrapped/internal/models"
)

// Column headers of the Cursor usage-events CSV export.
const (
	colDate              = "Date"
	colKind              = "Kind"
	colModel             = "Model"
	colMaxMode           = "Max Mode"
	colInputWithCache    = "Input (w/ Cache Write)"
	colInputWithoutCache = "Input (w/o Cache Write)"
	colCacheRead         = "Cache Read"
	colOutputTokens      = "Output Tokens"
	colTotalTokens       = "Total Tokens"
	colCost              = "Cost"
)

// CSVSource reads usage events from a Cursor CSV export. Columns are located
// by header name, so column order does not matter.
type CSVSource struct {
	path   string
	filter Filter
}

// NewCSV creates a CSV source for the export at path.
func NewCSV(path string, filter Filter) *CSVSource {
	return &CSVSource{path: path, filter: filter}
}

// Load reads and validates the whole export. Malformed rows are dropped and
// counted; an unreadable file is fatal.
func (s *CSVSource) Load(ctx context.Context) (*Result, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open usage export: %w", err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read usage export header: %w", err)
	}
	cols := indexColumns(header)
	if _, ok := cols[colDate]; !ok {
		return nil, fmt.Errorf("usage export %s: missing %q column", s.path, colDate)
	}

	result := &Result{}
	line := 1
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			result.Skipped++
			logger.Debug("skipping unreadable row", "line", line, "error", err)
			continue
		}

		event, perr := parseRow(cols, row, line)
		if perr != nil {
			result.Skipped++
			logger.Debug("skipping malformed row", "error", perr)
			continue
		}
		if !s.filter.Keep(event) {
			continue
		}
		result.Events = append(result.Events, event)
	}

	logger.Debug("loaded usage export",
		"path", s.path, "events", len(result.Events), "skipped", result.Skipped)
	return result, nil
}

// indexColumns maps header names to their positions.
func indexColumns(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	return cols
}

// parseRow converts one CSV row into an Event, or a *RecordError.
func parseRow(cols map[string]int, row []string, line int) (models.Event, error) {
	var e models.Event

	ts, err := parseTimestamp(field(cols, row, colDate))
	if err != nil {
		return e, &RecordError{Line: line, Reason: err.Error()}
	}
	e.Timestamp = ts
	e.Kind = field(cols, row, colKind)
	e.Model = field(cols, row, colModel)
	e.MaxMode = strings.EqualFold(field(cols, row, colMaxMode), "on") ||
		strings.EqualFold(field(cols, row, colMaxMode), "true")

	counts := []struct {
		col  string
		dest *int64
	}{
		{colInputWithCache, &e.InputWithCacheWrite},
		{colInputWithoutCache, &e.InputWithoutCacheWrite},
		{colCacheRead, &e.CacheReadTokens},
		{colOutputTokens, &e.OutputTokens},
		{colTotalTokens, &e.RecordedTotalTokens},
	}
	for _, c := range counts {
		v, err := parseCount(field(cols, row, c.col))
		if err != nil {
			return e, &RecordError{Line: line, Reason: fmt.Sprintf("%s: %v", c.col, err)}
		}
		*c.dest = v
	}

	cost, err := parseCost(field(cols, row, colCost))
	if err != nil {
		return e, &RecordError{Line: line, Reason: fmt.Sprintf("%s: %v", colCost, err)}
	}
	e.Cost = cost

	if err := checkEvent(e, line); err != nil {
		return e, err
	}
	return e, nil
}

func field(cols map[string]int, row []string, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(strings.Trim(row[i], `"`))
}

// parseCount parses a token counter. Empty cells count as zero.
func parseCount(s string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseInt(s, 10, 64)
}

// parseCost parses a cost cell. Empty and literal "NaN" cells count as zero,
// matching the export's convention for unbilled rows.
func parseCost(s string) (decimal.Decimal, error) {
	if s == "" || strings.EqualFold(s, "NaN") {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}
