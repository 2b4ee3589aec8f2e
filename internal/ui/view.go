package ui

import (
	"fmt"

	"github.com/tleaf/barnview/internal/chamber"
	"github.com/tleaf/barnview/internal/state"
)

// TrendState classifies what the chart widget should show.
type TrendState int

const (
	// TrendEmpty means the controller has no history yet: an informational
	// empty state, not an error.
	TrendEmpty TrendState = iota
	// TrendData means aligned samples are available for charting.
	TrendData
	// TrendMalformed means the trend payload was unusable; only the chart
	// degrades.
	TrendMalformed
)

// ChartPoint is one aligned trend sample.
type ChartPoint struct {
	Timestamp   int64
	Temperature float64
	Humidity    float64
	TargetTemp  float64
}

// StageControl describes one stage button.
type StageControl struct {
	Stage    string // raw enum value sent to the controller
	Label    string // display-cased
	Key      string // keyboard shortcut
	Disabled bool   // true when already the active stage
}

// OverrideControl describes one manual actuator toggle.
type OverrideControl struct {
	Cmd   chamber.Command
	Label string
	Key   string
	On    bool
}

// RenderModel is everything the dashboard needs to draw one frame. It is
// produced by BuildRenderModel and contains no behavior.
type RenderModel struct {
	HasStatus      bool
	ConnectionLost bool
	ConnectionErr  string

	Mode      string
	Stage     string // raw
	StageName string // display-cased
	Uptime    string
	Countdown string

	Temperature string
	Humidity    string
	Target      string // "Target: 40.0 °C" in AUTO, "Target: N/A" otherwise
	FanState    string // "ON" iff either fan unit is on
	HeaterState string // "ON" iff either heater unit is on
	AlarmActive bool

	TrendState TrendState
	TrendErr   string
	Points     []ChartPoint

	Stages         []StageControl
	ServoAngle     int
	NextServoAngle int
	ManualMode     bool
	Overrides      []OverrideControl // empty unless ManualMode
}

// BuildRenderModel maps a snapshot to a render model. It performs no I/O
// and reads no clocks, so the same snapshot always yields the same model.
func BuildRenderModel(snap state.Snapshot) RenderModel {
	status := snap.Status

	m := RenderModel{
		HasStatus:      snap.HasStatus,
		ConnectionLost: snap.LastError != nil,

		Mode:      fallback(status.Mode, "N/A"),
		Stage:     status.Stage,
		StageName: chamber.DisplayStage(fallback(status.Stage, "N/A")),
		Uptime:    fallback(status.UptimeStr, "N/A"),
		Countdown: fallback(status.CountdownStr, "N/A"),

		Temperature: fmt.Sprintf("%.1f °C", status.Temperature),
		Humidity:    fmt.Sprintf("%.1f %%", status.Humidity),
		FanState:    onOff(status.FanOn || status.FanOn2),
		HeaterState: onOff(status.HeaterOn || status.HeaterOn2),
		AlarmActive: status.BuzzerOn,

		ServoAngle:     status.ServoAngle,
		NextServoAngle: nextServoAngle(status.ServoAngle),
		ManualMode:     status.Manual(),
	}

	if snap.LastError != nil {
		m.ConnectionErr = snap.LastError.Error()
	}

	if status.Mode == chamber.ModeAuto {
		m.Target = fmt.Sprintf("Target: %.1f °C", status.TargetTemp)
	} else {
		m.Target = "Target: N/A"
	}

	m.Stages = stageControls(status.Stage)
	if m.ManualMode {
		m.Overrides = overrideControls(status)
	}

	m.TrendState, m.TrendErr, m.Points = trendView(snap)

	return m
}

func trendView(snap state.Snapshot) (TrendState, string, []ChartPoint) {
	if snap.TrendErr != nil {
		return TrendMalformed, snap.TrendErr.Error(), nil
	}
	if snap.Trend == nil || snap.Trend.Len() == 0 {
		return TrendEmpty, "", nil
	}

	trend := snap.Trend
	points := make([]ChartPoint, trend.Len())
	for i := range trend.Timestamps {
		points[i] = ChartPoint{
			Timestamp:   trend.Timestamps[i],
			Temperature: trend.Temperature[i],
			Humidity:    trend.Humidity[i],
			TargetTemp:  trend.TargetTemp[i],
		}
	}
	return TrendData, "", points
}

func stageControls(current string) []StageControl {
	controls := make([]StageControl, len(chamber.Stages))
	for i, stage := range chamber.Stages {
		controls[i] = StageControl{
			Stage:    stage,
			Label:    chamber.DisplayStage(stage),
			Key:      fmt.Sprintf("%d", i+1),
			Disabled: stage == current,
		}
	}
	return controls
}

func overrideControls(status chamber.Status) []OverrideControl {
	return []OverrideControl{
		{Cmd: chamber.CmdFan1Toggle, Label: "Fan 1", Key: "f", On: status.FanOn},
		{Cmd: chamber.CmdFan2Toggle, Label: "Fan 2", Key: "F", On: status.FanOn2},
		{Cmd: chamber.CmdHeater1Toggle, Label: "Heater 1", Key: "g", On: status.HeaterOn},
		{Cmd: chamber.CmdHeater2Toggle, Label: "Heater 2", Key: "G", On: status.HeaterOn2},
	}
}

// nextServoAngle returns the allowed angle after the current one, wrapping
// at the end of the set. An unknown current angle restarts the cycle.
func nextServoAngle(current int) int {
	for i, angle := range chamber.ServoAngles {
		if angle == current {
			return chamber.ServoAngles[(i+1)%len(chamber.ServoAngles)]
		}
	}
	return chamber.ServoAngles[0]
}

func onOff(on bool) string {
	if on {
		return "ON"
	}
	return "OFF"
}

func fallback(value, def string) string {
	if value == "" {
		return def
	}
	return value
}
