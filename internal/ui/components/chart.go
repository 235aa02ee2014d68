// Package components provides reusable chart primitives shared by the
// console report and the terminal UI.
package components

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/avilla-dev/cursor-wrapped/internal/ui/styles"
)

// RenderActivityLine plots a per-hour activity series as an ASCII line chart.
func RenderActivityLine(counts []int, width, height int, caption string) string {
	if len(counts) == 0 {
		return styles.HelpStyle.Render("No data available")
	}
	if width < 20 {
		width = 20
	}
	if height < 3 {
		height = 3
	}

	data := make([]float64, len(counts))
	for i, c := range counts {
		data[i] = float64(c)
	}

	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}

// RenderBarChart creates a horizontal bar chart of labelled counts.
func RenderBarChart(values []int, labels []string, width int) string {
	if len(values) == 0 {
		return ""
	}

	maxVal := 0
	for _, v := range values {
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	maxLabelLen := 0
	for _, l := range labels {
		if len(l) > maxLabelLen {
			maxLabelLen = len(l)
		}
	}

	barWidth := width - maxLabelLen - 10 // Leave room for label and value
	if barWidth < 10 {
		barWidth = 10
	}

	var lines []string
	for i, v := range values {
		label := ""
		if i < len(labels) {
			label = labels[i]
		}

		barLen := v * barWidth / maxVal
		if barLen < 0 {
			barLen = 0
		}

		line := fmt.Sprintf("%*s │%s %d", maxLabelLen, label, strings.Repeat("█", barLen), v)
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

// HeatmapBlocks are Unicode block characters for heatmaps (low to high intensity).
var HeatmapBlocks = []rune{'░', '▒', '▓', '█'}

// RenderHourHeatmap creates a 24-cell heatmap of per-hour event counts, with
// a gap at noon for readability.
func RenderHourHeatmap(counts [24]int) string {
	maxVal := 0
	for _, c := range counts {
		if c > maxVal {
			maxVal = c
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	var result strings.Builder
	result.WriteString("00 ")

	for i, c := range counts {
		intensity := c * (len(HeatmapBlocks) - 1) / maxVal
		if intensity >= len(HeatmapBlocks) {
			intensity = len(HeatmapBlocks) - 1
		}

		style := styles.GetHeatStyle(intensity)
		result.WriteString(style.Render(string(HeatmapBlocks[intensity])))

		if i == 11 {
			result.WriteString(" ")
		}
	}

	result.WriteString(" 23")
	return result.String()
}

// weekdayNames indexes short day names by time.Weekday (Sunday = 0).
var weekdayNames = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// WeekdayName returns the full name for a weekday bucket key (0 = Sunday).
func WeekdayName(d int) string {
	full := []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
	if d < 0 || d >= len(full) {
		return "Unknown"
	}
	return full[d]
}

// RenderWeekdayPattern renders per-weekday counts as labelled spark blocks.
func RenderWeekdayPattern(counts [7]int) string {
	maxVal := 0
	for _, c := range counts {
		if c > maxVal {
			maxVal = c
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	sparkChars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	var parts []string
	for i, c := range counts {
		intensity := c * (len(sparkChars) - 1) / maxVal
		if intensity >= len(sparkChars) {
			intensity = len(sparkChars) - 1
		}
		parts = append(parts, fmt.Sprintf("%s %s", weekdayNames[i], string(sparkChars[intensity])))
	}

	return strings.Join(parts, " ")
}

// RenderSparkline creates a compact inline sparkline of a count series.
func RenderSparkline(values []int, width int) string {
	if len(values) == 0 {
		return ""
	}

	sparkChars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	maxVal := 0
	for _, v := range values {
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	step := float64(len(values)) / float64(width)
	if step < 1 {
		step = 1
	}

	var result strings.Builder
	for i := 0; i < width && int(float64(i)*step) < len(values); i++ {
		v := values[int(float64(i)*step)]
		normalized := v * (len(sparkChars) - 1) / maxVal
		if normalized >= len(sparkChars) {
			normalized = len(sparkChars) - 1
		}
		result.WriteRune(sparkChars[normalized])
	}

	return result.String()
}
