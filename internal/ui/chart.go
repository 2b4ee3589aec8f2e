package ui

import (
	"fmt"
	"strings"
	"time"
)

// sparkBlocks are the eight vertical resolution steps of a text sparkline.
var sparkBlocks = []rune("▁▂▃▄▅▆▇█")

// sparkline renders values as a row of block characters, keeping the most
// recent width samples when the series is longer than the row.
func sparkline(values []float64, width int) string {
	if len(values) == 0 || width <= 0 {
		return ""
	}
	if len(values) > width {
		values = values[len(values)-width:]
	}

	min, max := values[0], values[0]
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	var b strings.Builder
	span := max - min
	for _, v := range values {
		idx := len(sparkBlocks) / 2
		if span > 0 {
			idx = int((v - min) / span * float64(len(sparkBlocks)-1))
		}
		b.WriteRune(sparkBlocks[idx])
	}
	return b.String()
}

// renderTrend draws the trend panel body for the current chart state.
func renderTrend(m RenderModel, width int, styles Styles) string {
	switch m.TrendState {
	case TrendMalformed:
		return styles.WarningText.Render("Error processing trend data:") + "\n" +
			styles.MutedText.Render(m.TrendErr)
	case TrendEmpty:
		return styles.MutedText.Render("Trend data is not available or log file is empty.")
	}

	chartWidth := width - 14
	if chartWidth < 8 {
		chartWidth = 8
	}

	temps := make([]float64, len(m.Points))
	targets := make([]float64, len(m.Points))
	humids := make([]float64, len(m.Points))
	for i, p := range m.Points {
		temps[i] = p.Temperature
		targets[i] = p.TargetTemp
		humids[i] = p.Humidity
	}

	last := m.Points[len(m.Points)-1]
	rows := []string{
		trendRow(styles, "Temp", sparkline(temps, chartWidth), fmt.Sprintf("%.1f°C", last.Temperature)),
		trendRow(styles, "Target", sparkline(targets, chartWidth), fmt.Sprintf("%.1f°C", last.TargetTemp)),
		trendRow(styles, "Humid", sparkline(humids, chartWidth), fmt.Sprintf("%.1f%%", last.Humidity)),
	}

	caption := fmt.Sprintf("Showing %d data points from the log.", len(m.Points))
	if span := trendSpan(m.Points); span != "" {
		caption += "  " + span
	}
	rows = append(rows, styles.FaintText.Render(caption))

	return strings.Join(rows, "\n")
}

func trendRow(styles Styles, label, spark, current string) string {
	return styles.MetricLabel.Render(fmt.Sprintf("%-7s", label)) +
		styles.Accent.Render(spark) + " " +
		styles.Text.Render(current)
}

// trendSpan formats the chart's covered time range as HH:MM:SS local time.
func trendSpan(points []ChartPoint) string {
	if len(points) == 0 {
		return ""
	}
	first := time.Unix(points[0].Timestamp, 0).Format("15:04:05")
	last := time.Unix(points[len(points)-1].Timestamp, 0).Format("15:04:05")
	if first == last {
		return first
	}
	return first + " – " + last
}
