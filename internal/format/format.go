// Package format holds display helpers shared by the console, HTML and
// terminal presenters.
package format

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Number compacts a large count with a K/M/B suffix.
// Examples: 500 -> "500", 1500 -> "1.50K", 2500000 -> "2.50M"
func Number(n int64) string {
	return Float(float64(n))
}

// Float compacts a large float with a K/M/B suffix.
func Float(n float64) string {
	switch {
	case n >= 1_000_000_000:
		return fmt.Sprintf("%.2fB", n/1_000_000_000)
	case n >= 1_000_000:
		return fmt.Sprintf("%.2fM", n/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.2fK", n/1_000)
	}
	return fmt.Sprintf("%d", int64(n))
}

// Cost renders a dollar amount with two decimal places.
func Cost(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// Hour renders an hour-of-day (0-23) on a 12-hour clock.
func Hour(h int) string {
	switch {
	case h == 0:
		return "12:00 AM"
	case h < 12:
		return fmt.Sprintf("%d:00 AM", h)
	case h == 12:
		return "12:00 PM"
	default:
		return fmt.Sprintf("%d:00 PM", h-12)
	}
}

// Date renders a timestamp as a long-form calendar date.
func Date(t time.Time) string {
	return t.Format("January 2, 2006")
}

// Percent renders a fraction in [0,1] as a percentage with one decimal.
func Percent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}
