// Package engine reduces a sequence of usage events into a summary document.
// It is purely computational: no I/O, no shared state, and the same input
// always produces the same summary. Callers may run independent aggregations
// concurrently.
package engine

import (
	"errors"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/avilla-dev/cursor-wrapped/internal/models"
)

// ErrEmptyInput is returned when no valid events remain to aggregate; mean,
// median and max are undefined over an empty sequence.
var ErrEmptyInput = errors.New("no valid usage events to aggregate")

const (
	dayKeyLayout   = "2006-01-02"
	monthKeyLayout = "2006-01"
)

// modelAcc accumulates per-model counters during the single pass.
type modelAcc struct {
	events int
	tokens int64
	cost   decimal.Decimal
}

// Aggregate reduces events into a Summary. The skipped argument is the count
// of malformed rows the source already dropped; it is carried through for
// transparency. Timestamps are bucketed in the offset they were parsed with,
// without conversion.
func Aggregate(events []models.Event, skipped int) (*models.Summary, error) {
	if len(events) == 0 {
		return nil, ErrEmptyInput
	}

	s := &models.Summary{
		GeneratedAt:    time.Now().UTC(),
		SkippedRecords: skipped,
	}

	byModel := make(map[string]*modelAcc)
	dayTokens := make(map[string]int64)
	monthTokens := make(map[string]int64)
	perEvent := make([]int64, 0, len(events))

	s.Totals.Cost = decimal.Zero
	s.Span.Start = events[0].Timestamp
	s.Span.End = events[0].Timestamp

	for _, e := range events {
		tokens := e.TotalTokens()

		s.Totals.Events++
		s.Totals.Tokens += tokens
		s.Totals.InputTokens += e.InputTokens()
		s.Totals.OutputTokens += e.OutputTokens
		s.Totals.CacheReadTokens += e.CacheReadTokens
		s.Totals.Cost = s.Totals.Cost.Add(e.Cost)

		if e.Timestamp.Before(s.Span.Start) {
			s.Span.Start = e.Timestamp
		}
		if e.Timestamp.After(s.Span.End) {
			s.Span.End = e.Timestamp
		}

		acc := byModel[e.Model]
		if acc == nil {
			acc = &modelAcc{cost: decimal.Zero}
			byModel[e.Model] = acc
		}
		acc.events++
		acc.tokens += tokens
		acc.cost = acc.cost.Add(e.Cost)

		s.Peaks.HourCounts[e.Timestamp.Hour()]++
		s.Peaks.DayOfMonthCounts[e.Timestamp.Day()-1]++
		s.Peaks.WeekdayCounts[int(e.Timestamp.Weekday())]++

		dayTokens[e.Timestamp.Format(dayKeyLayout)] += tokens
		monthTokens[e.Timestamp.Format(monthKeyLayout)] += tokens

		if e.CacheHit() {
			s.Cache.Hits++
		}
		perEvent = append(perEvent, tokens)
	}

	s.Year = s.Span.End.Year()
	s.Span.DaysActive = len(dayTokens)

	days := int64(s.Span.DaysActive)
	s.Totals.TokensPerDay = s.Totals.Tokens / days
	s.Totals.CostPerDay = s.Totals.Cost.DivRound(decimal.NewFromInt(days), 6)

	s.Models = rankModels(byModel, s.Totals.Tokens)

	s.Peaks.Hour = peakOf(s.Peaks.HourCounts[:], 0)
	s.Peaks.DayOfMonth = peakOf(s.Peaks.DayOfMonthCounts[:], 1)
	s.Peaks.Weekday = peakOf(s.Peaks.WeekdayCounts[:], 0)
	s.Peaks.BusiestDay = busiestDay(dayTokens)
	s.Peaks.BusiestMonth = busiestMonth(monthTokens)

	s.Cache.HitRate = float64(s.Cache.Hits) / float64(s.Totals.Events)
	s.Cache.TokensSaved = s.Totals.CacheReadTokens

	s.Tokens = tokenStats(perEvent)

	return s, nil
}

// rankModels orders the per-model aggregates by event count descending, then
// token sum descending, then model name ascending. The ordering is total, so
// the result does not depend on input order.
func rankModels(byModel map[string]*modelAcc, totalTokens int64) []models.ModelUsage {
	ranked := make([]models.ModelUsage, 0, len(byModel))
	for name, acc := range byModel {
		usage := models.ModelUsage{
			Model:  name,
			Events: acc.events,
			Tokens: acc.tokens,
			Cost:   acc.cost,
		}
		if totalTokens > 0 {
			usage.TokenShare = float64(acc.tokens) / float64(totalTokens)
		}
		ranked = append(ranked, usage)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Events != ranked[j].Events {
			return ranked[i].Events > ranked[j].Events
		}
		if ranked[i].Tokens != ranked[j].Tokens {
			return ranked[i].Tokens > ranked[j].Tokens
		}
		return ranked[i].Model < ranked[j].Model
	})
	return ranked
}

// peakOf finds the bucket with the highest count. Ties go to the lowest
// bucket key, which the strict comparison guarantees since buckets are
// visited in ascending order. offset maps slice index to bucket key.
func peakOf(counts []int, offset int) models.PeakBucket {
	peak := models.PeakBucket{Bucket: offset}
	for i, c := range counts {
		if c > peak.Events {
			peak = models.PeakBucket{Bucket: i + offset, Events: c}
		}
	}
	return peak
}

// busiestDay picks the calendar date with the highest token volume, ties
// broken toward the earliest date.
func busiestDay(dayTokens map[string]int64) models.DayTotal {
	var best models.DayTotal
	for i, k := range sortedKeys(dayTokens) {
		if i == 0 || dayTokens[k] > best.Tokens {
			best = models.DayTotal{Date: k, Tokens: dayTokens[k]}
		}
	}
	return best
}

// busiestMonth picks the calendar month with the highest token volume, ties
// broken toward the earliest month.
func busiestMonth(monthTokens map[string]int64) models.MonthTotal {
	var best models.MonthTotal
	for i, k := range sortedKeys(monthTokens) {
		if i == 0 || monthTokens[k] > best.Tokens {
			best = models.MonthTotal{Month: k, Tokens: monthTokens[k]}
		}
	}
	return best
}

func sortedKeys(m map[string]int64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// tokenStats computes mean, order-statistic median and max of the per-event
// token totals. The caller guarantees a non-empty slice.
func tokenStats(perEvent []int64) models.TokenStats {
	sorted := make([]int64, len(perEvent))
	copy(sorted, perEvent)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var sum int64
	for _, v := range sorted {
		sum += v
	}

	n := len(sorted)
	var median float64
	if n%2 == 1 {
		median = float64(sorted[n/2])
	} else {
		median = float64(sorted[n/2-1]+sorted[n/2]) / 2
	}

	return models.TokenStats{
		Mean:   float64(sum) / float64(n),
		Median: median,
		Max:    sorted[n-1],
	}
}
