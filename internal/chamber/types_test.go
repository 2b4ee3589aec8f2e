package chamber

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestStatusDecode_MissingFieldsGetDefaults(t *testing.T) {
	// Older firmware may omit any field; the decode must never fail and the
	// normalized snapshot must carry documented defaults.
	var s Status
	if err := json.Unmarshal([]byte(`{}`), &s); err != nil {
		t.Fatalf("decode empty payload: %v", err)
	}
	s.normalize()

	if s.Mode != "N/A" || s.Stage != "N/A" {
		t.Fatalf("mode/stage = %q/%q, want N/A defaults", s.Mode, s.Stage)
	}
	if s.Temperature != 0 || s.Humidity != 0 || s.TargetTemp != 0 {
		t.Fatalf("readings not zero: %#v", s)
	}
	if s.FanOn || s.FanOn2 || s.HeaterOn || s.HeaterOn2 || s.BuzzerOn {
		t.Fatalf("actuators not false: %#v", s)
	}
	if s.CountdownStr != "N/A" {
		t.Fatalf("CountdownStr = %q, want N/A", s.CountdownStr)
	}
	if s.UptimeStr != "0:00:00" {
		t.Fatalf("UptimeStr = %q, want 0:00:00", s.UptimeStr)
	}
}

func TestStatusDecode_UnrecognizedModePassesThrough(t *testing.T) {
	var s Status
	if err := json.Unmarshal([]byte(`{"mode":"CALIBRATING"}`), &s); err != nil {
		t.Fatalf("decode: %v", err)
	}
	s.normalize()
	if s.Mode != "CALIBRATING" {
		t.Fatalf("Mode = %q, want verbatim pass-through", s.Mode)
	}
	if s.Manual() {
		t.Fatal("Manual() = true for unrecognized mode, want false")
	}
}

func TestFormatCountdown(t *testing.T) {
	cases := []struct {
		name string
		in   int64
		want string
	}{
		{"two_minutes_five", 125, "02:05"},
		{"zero_means_not_scheduled", 0, "N/A"},
		{"negative", -5, "N/A"},
		{"under_a_minute", 59, "00:59"},
		{"long", 3725, "62:05"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatCountdown(tc.in); got != tc.want {
				t.Fatalf("FormatCountdown(%d) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestFormatUptime(t *testing.T) {
	cases := []struct {
		name string
		in   int64
		want string
	}{
		{"zero", 0, "0:00:00"},
		{"negative_clamped", -10, "0:00:00"},
		{"minutes", 125, "0:02:05"},
		{"hours", 3661, "1:01:01"},
		{"one_day", 90061, "1 day, 1:01:01"},
		{"two_days", 2*86400 + 5, "2 days, 0:00:05"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatUptime(tc.in); got != tc.want {
				t.Fatalf("FormatUptime(%d) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestFormatUptime_Deterministic(t *testing.T) {
	// The derived string depends only on the uptime value, never on the
	// wall clock.
	first := FormatUptime(4242)
	for i := 0; i < 3; i++ {
		if got := FormatUptime(4242); got != first {
			t.Fatalf("FormatUptime(4242) = %q, want stable %q", got, first)
		}
	}
}

func TestDisplayStage(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"LEAF_DRYING", "Leaf Drying"},
		{"YELLOWING", "Yellowing"},
		{"MIDRIB_DRYING", "Midrib Drying"},
		{"custom_stage", "Custom Stage"},
		{"N/A", "N/a"},
	}
	for _, tc := range cases {
		if got := DisplayStage(tc.in); got != tc.want {
			t.Fatalf("DisplayStage(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTrendSeriesValidate(t *testing.T) {
	ok := TrendSeries{
		Timestamps:  []int64{1, 2, 3},
		Temperature: []float64{20, 21, 22},
		Humidity:    []float64{60, 61, 62},
		TargetTemp:  []float64{25, 25, 25},
	}
	if err := ok.validate(); err != nil {
		t.Fatalf("validate aligned series: %v", err)
	}

	ragged := ok
	ragged.Humidity = ragged.Humidity[:2]
	err := ragged.validate()
	if err == nil {
		t.Fatal("validate ragged series returned nil, want MalformedTrendError")
	}
	var malformed *MalformedTrendError
	if !errors.As(err, &malformed) {
		t.Fatalf("validate error = %T, want *MalformedTrendError", err)
	}
}

func TestTrendSeriesClone_Independent(t *testing.T) {
	orig := TrendSeries{
		Timestamps:  []int64{1},
		Temperature: []float64{20},
		Humidity:    []float64{60},
		TargetTemp:  []float64{25},
	}
	dup := orig.Clone()
	dup.Temperature[0] = 99
	if orig.Temperature[0] != 20 {
		t.Fatalf("Clone shares backing array: orig temperature = %v", orig.Temperature[0])
	}
}

func TestCommandManualOnly(t *testing.T) {
	manualOnly := []Command{CmdFan1Toggle, CmdFan2Toggle, CmdHeater1Toggle, CmdHeater2Toggle}
	for _, cmd := range manualOnly {
		if !cmd.ManualOnly() {
			t.Fatalf("%q.ManualOnly() = false, want true", cmd)
		}
	}
	for _, cmd := range []Command{CmdMode, CmdReset, CmdStage, CmdServo} {
		if cmd.ManualOnly() {
			t.Fatalf("%q.ManualOnly() = true, want false", cmd)
		}
	}
}

func TestValidAngle(t *testing.T) {
	for _, angle := range []int{0, 45, 90, 180} {
		if !ValidAngle(angle) {
			t.Fatalf("ValidAngle(%d) = false, want true", angle)
		}
	}
	for _, angle := range []int{-1, 30, 91, 360} {
		if ValidAngle(angle) {
			t.Fatalf("ValidAngle(%d) = true, want false", angle)
		}
	}
}
