package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Summary is the single aggregate output document. Field names form the
// stable contract between the aggregation engine and the presenters, and
// survive a round trip through the persisted JSON file.
type Summary struct {
	GeneratedAt    time.Time    `json:"generated_at"`
	Year           int          `json:"year"`
	Span           TimeSpan     `json:"span"`
	Totals         Totals       `json:"totals"`
	Models         []ModelUsage `json:"model_breakdown"`
	Peaks          Peaks        `json:"peak_times"`
	Cache          CacheStats   `json:"cache_stats"`
	Tokens         TokenStats   `json:"token_stats"`
	SkippedRecords int          `json:"skipped_records"`
}

// TimeSpan describes the period covered by the input events.
type TimeSpan struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	// DaysActive counts distinct calendar dates with at least one valid
	// event, using each timestamp's own offset as parsed.
	DaysActive int `json:"days_active"`
}

// Totals holds the whole-period sums.
type Totals struct {
	Events          int             `json:"events"`
	Tokens          int64           `json:"tokens"`
	InputTokens     int64           `json:"input_tokens"`
	OutputTokens    int64           `json:"output_tokens"`
	CacheReadTokens int64           `json:"cache_read_tokens"`
	Cost            decimal.Decimal `json:"cost"`
	TokensPerDay    int64           `json:"tokens_per_day"`
	CostPerDay      decimal.Decimal `json:"cost_per_day"`
}

// ModelUsage is one row of the ranked model breakdown.
type ModelUsage struct {
	Model  string          `json:"model"`
	Events int             `json:"events"`
	Tokens int64           `json:"tokens"`
	Cost   decimal.Decimal `json:"cost"`
	// TokenShare is this model's fraction of total tokens, in [0,1].
	TokenShare float64 `json:"token_share"`
}

// PeakBucket is the winning bucket of one time dimension.
type PeakBucket struct {
	Bucket int `json:"bucket"`
	Events int `json:"events"`
}

// DayTotal is a calendar date with its token volume.
type DayTotal struct {
	Date   string `json:"date"` // "2006-01-02"
	Tokens int64  `json:"tokens"`
}

// MonthTotal is a calendar month with its token volume.
type MonthTotal struct {
	Month  string `json:"month"` // "2006-01"
	Tokens int64  `json:"tokens"`
}

// Peaks holds the time-of-day and day-of-week statistics. Peak buckets are
// selected by event count with ties broken toward the lowest bucket key;
// busiest day/month are selected by token volume with ties broken toward the
// earliest.
type Peaks struct {
	Hour             PeakBucket `json:"hour"`
	DayOfMonth       PeakBucket `json:"day_of_month"`
	Weekday          PeakBucket `json:"weekday"` // 0 = Sunday
	HourCounts       [24]int    `json:"hour_counts"`
	DayOfMonthCounts [31]int    `json:"day_of_month_counts"` // index 0 = day 1
	WeekdayCounts    [7]int     `json:"weekday_counts"`
	BusiestDay       DayTotal   `json:"busiest_day"`
	BusiestMonth     MonthTotal `json:"busiest_month"`
}

// CacheStats describes cache efficiency across the whole period.
type CacheStats struct {
	HitRate     float64 `json:"hit_rate"` // fraction in [0,1]
	Hits        int     `json:"hits"`
	TokensSaved int64   `json:"tokens_saved"`
}

// TokenStats describes the distribution of tokens per event.
type TokenStats struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Max    int64   `json:"max"`
}

// Validate checks the structural invariants of the summary before it is
// handed to presenters or persisted.
func (s *Summary) Validate() error {
	if s.Totals.Events < 0 || s.SkippedRecords < 0 {
		return fmt.Errorf("summary: negative event or skip count")
	}
	if s.Cache.HitRate < 0 || s.Cache.HitRate > 1 {
		return fmt.Errorf("summary: cache hit rate %v outside [0,1]", s.Cache.HitRate)
	}
	if s.Cache.Hits < 0 || s.Cache.Hits > s.Totals.Events {
		return fmt.Errorf("summary: cache hit count %d outside [0,%d]", s.Cache.Hits, s.Totals.Events)
	}
	if s.Totals.Events > 0 {
		if len(s.Models) == 0 {
			return fmt.Errorf("summary: model breakdown empty with %d events", s.Totals.Events)
		}
		if s.Span.DaysActive < 1 {
			return fmt.Errorf("summary: days active must be >= 1 with events present")
		}
	}
	for _, m := range s.Models {
		if m.Events < 0 || m.Tokens < 0 {
			return fmt.Errorf("summary: negative counts for model %q", m.Model)
		}
		if m.TokenShare < 0 || m.TokenShare > 1 {
			return fmt.Errorf("summary: token share %v for model %q outside [0,1]", m.TokenShare, m.Model)
		}
	}
	if err := s.Peaks.validate(); err != nil {
		return err
	}
	return nil
}

func (p *Peaks) validate() error {
	if p.Hour.Bucket < 0 || p.Hour.Bucket > 23 {
		return fmt.Errorf("summary: peak hour %d outside 0-23", p.Hour.Bucket)
	}
	if p.DayOfMonth.Bucket < 1 || p.DayOfMonth.Bucket > 31 {
		return fmt.Errorf("summary: peak day of month %d outside 1-31", p.DayOfMonth.Bucket)
	}
	if p.Weekday.Bucket < 0 || p.Weekday.Bucket > 6 {
		return fmt.Errorf("summary: peak weekday %d outside 0-6", p.Weekday.Bucket)
	}
	for _, c := range p.HourCounts {
		if c < 0 {
			return fmt.Errorf("summary: negative hour bucket count")
		}
	}
	for _, c := range p.DayOfMonthCounts {
		if c < 0 {
			return fmt.Errorf("summary: negative day-of-month bucket count")
		}
	}
	for _, c := range p.WeekdayCounts {
		if c < 0 {
			return fmt.Errorf("summary: negative weekday bucket count")
		}
	}
	return nil
}
