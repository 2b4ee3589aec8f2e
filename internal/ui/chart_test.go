package ui

import (
	"strings"
	"testing"
)

func TestSparkline_EmptyAndZeroWidth(t *testing.T) {
	if got := sparkline(nil, 10); got != "" {
		t.Fatalf("sparkline(nil) = %q, want empty", got)
	}
	if got := sparkline([]float64{1, 2}, 0); got != "" {
		t.Fatalf("sparkline width 0 = %q, want empty", got)
	}
}

func TestSparkline_KeepsMostRecentSamples(t *testing.T) {
	values := []float64{0, 0, 0, 0, 0, 1, 2, 3}
	got := sparkline(values, 3)
	if len([]rune(got)) != 3 {
		t.Fatalf("sparkline = %q (%d runes), want 3", got, len([]rune(got)))
	}
	// The tail is strictly increasing, so the runes must be too.
	runes := []rune(got)
	if !(runes[0] < runes[1] && runes[1] < runes[2]) {
		t.Fatalf("sparkline = %q, want increasing blocks", got)
	}
}

func TestSparkline_ConstantSeries(t *testing.T) {
	got := sparkline([]float64{5, 5, 5, 5}, 10)
	if len([]rune(got)) != 4 {
		t.Fatalf("sparkline = %q, want 4 runes", got)
	}
	first := []rune(got)[0]
	for _, r := range got {
		if r != first {
			t.Fatalf("constant series rendered unevenly: %q", got)
		}
	}
}

func TestSparkline_FullRange(t *testing.T) {
	got := []rune(sparkline([]float64{0, 100}, 10))
	if got[0] != sparkBlocks[0] {
		t.Fatalf("minimum rendered as %q, want lowest block", string(got[0]))
	}
	if got[1] != sparkBlocks[len(sparkBlocks)-1] {
		t.Fatalf("maximum rendered as %q, want highest block", string(got[1]))
	}
}

func TestRenderTrend_States(t *testing.T) {
	styles := GetTheme("").Styles()

	empty := RenderModel{TrendState: TrendEmpty}
	if out := renderTrend(empty, 60, styles); !strings.Contains(out, "not available") {
		t.Fatalf("empty state output = %q", out)
	}

	malformed := RenderModel{TrendState: TrendMalformed, TrendErr: "mismatched array lengths"}
	if out := renderTrend(malformed, 60, styles); !strings.Contains(out, "mismatched array lengths") {
		t.Fatalf("malformed state output = %q", out)
	}

	data := RenderModel{
		TrendState: TrendData,
		Points: []ChartPoint{
			{Timestamp: 0, Temperature: 20, Humidity: 60, TargetTemp: 25},
			{Timestamp: 60, Temperature: 22, Humidity: 62, TargetTemp: 25},
			{Timestamp: 120, Temperature: 24, Humidity: 64, TargetTemp: 25},
		},
	}
	out := renderTrend(data, 60, styles)
	if !strings.Contains(out, "Showing 3 data points from the log.") {
		t.Fatalf("data caption missing: %q", out)
	}
	if !strings.Contains(out, "24.0°C") || !strings.Contains(out, "64.0%") {
		t.Fatalf("latest readings missing: %q", out)
	}
}
