// Package source turns raw usage exports into validated event records.
// Sources enforce the record schema at the boundary: rows that fail
// validation are dropped and counted, never passed through with wrong sign
// or a broken timestamp.
package source

import (
	"context"
	"fmt"
	"time"

	"github.com/avilla-dev/cursor-wrapped/internal/models"
)

// Result is what a source hands to the aggregation engine.
type Result struct {
	Events []models.Event
	// Skipped counts malformed rows that were dropped during loading.
	// Rows excluded by a Filter are valid and are not counted here.
	Skipped int
}

// Source produces a bounded sequence of normalized usage events.
type Source interface {
	Load(ctx context.Context) (*Result, error)
}

// Filter restricts which valid events a source yields.
type Filter struct {
	// Kinds keeps only events whose billing kind matches; empty keeps all.
	Kinds []string
	// NonZeroTokens drops events whose token total is zero.
	NonZeroTokens bool
}

// Keep reports whether an event passes the filter.
func (f Filter) Keep(e models.Event) bool {
	if f.NonZeroTokens && e.TotalTokens() == 0 {
		return false
	}
	if len(f.Kinds) == 0 {
		return true
	}
	for _, k := range f.Kinds {
		if e.Kind == k {
			return true
		}
	}
	return false
}

// RecordError describes a single malformed input row.
type RecordError struct {
	Line   int
	Reason string
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record %d: %s", e.Line, e.Reason)
}

// checkEvent validates a constructed event. It returns a *RecordError when a
// numeric field is negative or the timestamp is missing.
func checkEvent(e models.Event, line int) error {
	if e.Timestamp.IsZero() {
		return &RecordError{Line: line, Reason: "missing timestamp"}
	}
	counts := []struct {
		name  string
		value int64
	}{
		{"input (w/ cache write)", e.InputWithCacheWrite},
		{"input (w/o cache write)", e.InputWithoutCacheWrite},
		{"cache read", e.CacheReadTokens},
		{"output tokens", e.OutputTokens},
		{"total tokens", e.RecordedTotalTokens},
	}
	for _, c := range counts {
		if c.value < 0 {
			return &RecordError{Line: line, Reason: fmt.Sprintf("negative %s: %d", c.name, c.value)}
		}
	}
	if e.Cost.IsNegative() {
		return &RecordError{Line: line, Reason: fmt.Sprintf("negative cost: %s", e.Cost)}
	}
	return nil
}

// timestampLayouts are tried in order when parsing event timestamps.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// parseTimestamp parses an event timestamp, keeping the offset stated in the
// input as-is.
func parseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable timestamp %q", s)
}
