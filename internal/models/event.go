// Package models defines data structures and domain types.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Event represents one normalized usage event from an export.
// Events are immutable once created and carry no identity beyond their
// position in the input sequence.
type Event struct {
	Timestamp              time.Time
	Kind                   string
	Model                  string
	MaxMode                bool
	InputWithCacheWrite    int64
	InputWithoutCacheWrite int64
	CacheReadTokens        int64
	OutputTokens           int64
	RecordedTotalTokens    int64
	Cost                   decimal.Decimal
}

// InputTokens returns the combined input token count.
func (e Event) InputTokens() int64 {
	return e.InputWithCacheWrite + e.InputWithoutCacheWrite
}

// TotalTokens returns the recorded total from the export when present,
// otherwise the sum of the individual token categories.
func (e Event) TotalTokens() int64 {
	if e.RecordedTotalTokens > 0 {
		return e.RecordedTotalTokens
	}
	return e.InputTokens() + e.CacheReadTokens + e.OutputTokens
}

// CacheHit reports whether any tokens were served from cache.
// The export carries no explicit flag, so a nonzero cache-read count is used
// as a heuristic; a request that attempted a lookup but read zero cached
// tokens is indistinguishable from one that never tried.
func (e Event) CacheHit() bool {
	return e.CacheReadTokens > 0
}
