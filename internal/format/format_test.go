package format

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestNumber(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{500, "500"},
		{999, "999"},
		{1000, "1.00K"},
		{1500, "1.50K"},
		{2_500_000, "2.50M"},
		{1_234_567_890, "1.23B"},
	}

	for _, tt := range tests {
		if got := Number(tt.in); got != tt.want {
			t.Errorf("Number(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{42.7, "42"},
		{1250.5, "1.25K"},
		{3_141_592, "3.14M"},
	}

	for _, tt := range tests {
		if got := Float(tt.in); got != tt.want {
			t.Errorf("Float(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCost(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "$0.00"},
		{"1.5", "$1.50"},
		{"123.456", "$123.46"},
	}

	for _, tt := range tests {
		d, err := decimal.NewFromString(tt.in)
		if err != nil {
			t.Fatalf("parse %q: %v", tt.in, err)
		}
		if got := Cost(d); got != tt.want {
			t.Errorf("Cost(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestHour(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "12:00 AM"},
		{1, "1:00 AM"},
		{11, "11:00 AM"},
		{12, "12:00 PM"},
		{13, "1:00 PM"},
		{23, "11:00 PM"},
	}

	for _, tt := range tests {
		if got := Hour(tt.in); got != tt.want {
			t.Errorf("Hour(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDate(t *testing.T) {
	d := time.Date(2025, 3, 9, 15, 0, 0, 0, time.UTC)
	if got := Date(d); got != "March 9, 2025" {
		t.Errorf("Date() = %q, want %q", got, "March 9, 2025")
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.0%"},
		{0.25, "25.0%"},
		{0.333, "33.3%"},
		{1, "100.0%"},
	}

	for _, tt := range tests {
		if got := Percent(tt.in); got != tt.want {
			t.Errorf("Percent(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
