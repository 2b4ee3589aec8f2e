package chamber

import (
	"fmt"
	"strings"
)

// Status mirrors the payload returned by /api/status, normalized for display.
// Every wire field is optional; absent fields decode to their zero value so
// an older controller firmware never breaks the client.
type Status struct {
	Mode             string  `json:"mode"`
	Stage            string  `json:"stage"`
	Temperature      float64 `json:"temperature"`
	Humidity         float64 `json:"humidity"`
	TargetTemp       float64 `json:"target_temp"`
	NextTempIncrease int64   `json:"next_temp_increase"`
	ServoAngle       int     `json:"servo_angle"`
	FanOn            bool    `json:"fan_on"`
	FanOn2           bool    `json:"fan_on_2"`
	HeaterOn         bool    `json:"dehumidifier_on"`
	HeaterOn2        bool    `json:"dehumidifier_on_2"`
	BuzzerOn         bool    `json:"buzzer_on"`
	Uptime           int64   `json:"uptime"`

	// Derived at fetch time, never from wall clock.
	UptimeStr    string `json:"-"`
	CountdownStr string `json:"-"`
}

// normalize fills derived fields and display fallbacks after decoding.
func (s *Status) normalize() {
	if strings.TrimSpace(s.Mode) == "" {
		s.Mode = "N/A"
	}
	if strings.TrimSpace(s.Stage) == "" {
		s.Stage = "N/A"
	}
	s.UptimeStr = FormatUptime(s.Uptime)
	s.CountdownStr = FormatCountdown(s.NextTempIncrease)
}

// Manual reports whether the controller is in MANUAL mode. Any other value,
// including unrecognized strings passed through verbatim, counts as not
// manual.
func (s Status) Manual() bool {
	return s.Mode == ModeManual
}

// DisplayStage renders a raw stage name for the operator: underscores become
// spaces and each word is title-cased. Unrecognized stages pass through.
func DisplayStage(stage string) string {
	words := strings.Fields(strings.ReplaceAll(stage, "_", " "))
	for i, w := range words {
		lower := strings.ToLower(w)
		words[i] = strings.ToUpper(lower[:1]) + lower[1:]
	}
	return strings.Join(words, " ")
}

// FormatUptime renders uptime seconds the way the controller reports it on
// its own console: unpadded hours, zero-padded minutes and seconds, with a
// day prefix past 24h. The result depends only on the input, so the same
// snapshot always renders the same string.
func FormatUptime(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	days := seconds / 86400
	seconds %= 86400
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60

	base := fmt.Sprintf("%d:%02d:%02d", hours, minutes, secs)
	switch {
	case days == 1:
		return "1 day, " + base
	case days > 1:
		return fmt.Sprintf("%d days, %s", days, base)
	default:
		return base
	}
}

// FormatCountdown renders seconds-until-next-setpoint-change as MM:SS.
// Zero or negative means "no scheduled increase", not "increase now".
func FormatCountdown(seconds int64) string {
	if seconds <= 0 {
		return "N/A"
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// TrendSeries mirrors /api/trend_data: four parallel arrays aligned by
// index.
type TrendSeries struct {
	Timestamps  []int64   `json:"timestamps"`
	Temperature []float64 `json:"temperature"`
	Humidity    []float64 `json:"humidity"`
	TargetTemp  []float64 `json:"target_temp"`
}

// Len returns the number of samples.
func (t TrendSeries) Len() int { return len(t.Timestamps) }

// validate rejects ragged arrays so consumers never index out of range.
func (t TrendSeries) validate() error {
	n := len(t.Timestamps)
	if len(t.Temperature) != n || len(t.Humidity) != n || len(t.TargetTemp) != n {
		return &MalformedTrendError{
			Reason: fmt.Sprintf("mismatched array lengths: timestamps=%d temperature=%d humidity=%d target_temp=%d",
				n, len(t.Temperature), len(t.Humidity), len(t.TargetTemp)),
		}
	}
	return nil
}

// Clone returns an independent copy of the series.
func (t TrendSeries) Clone() TrendSeries {
	dup := TrendSeries{
		Timestamps:  make([]int64, len(t.Timestamps)),
		Temperature: make([]float64, len(t.Temperature)),
		Humidity:    make([]float64, len(t.Humidity)),
		TargetTemp:  make([]float64, len(t.TargetTemp)),
	}
	copy(dup.Timestamps, t.Timestamps)
	copy(dup.Temperature, t.Temperature)
	copy(dup.Humidity, t.Humidity)
	copy(dup.TargetTemp, t.TargetTemp)
	return dup
}

// Controller mode values.
const (
	ModeAuto   = "AUTO"
	ModeManual = "MANUAL"
)

// Stages lists the curing stages in process order.
var Stages = []string{"YELLOWING", "LEAF_DRYING", "MIDRIB_DRYING"}

// ServoAngles lists the vent angles the controller accepts, in degrees.
var ServoAngles = []int{0, 45, 90, 180}

// ValidAngle reports whether angle is a member of the allowed set.
func ValidAngle(angle int) bool {
	for _, a := range ServoAngles {
		if a == angle {
			return true
		}
	}
	return false
}

// Command names a control endpoint on the controller.
type Command string

// The full command set. Each maps to POST /api/<command>.
const (
	CmdMode          Command = "mode"
	CmdReset         Command = "reset"
	CmdStage         Command = "stage"
	CmdServo         Command = "servo"
	CmdFan1Toggle    Command = "fan1_toggle"
	CmdFan2Toggle    Command = "fan2_toggle"
	CmdHeater1Toggle Command = "heater1_toggle"
	CmdHeater2Toggle Command = "heater2_toggle"
)

// ManualOnly reports whether the command is an actuator override that the UI
// must withhold outside MANUAL mode. The transport itself does not care.
func (c Command) ManualOnly() bool {
	switch c {
	case CmdFan1Toggle, CmdFan2Toggle, CmdHeater1Toggle, CmdHeater2Toggle:
		return true
	}
	return false
}

// StagePayload is the request body for CmdStage.
type StagePayload struct {
	Stage string `json:"stage"`
}

// ServoPayload is the request body for CmdServo.
type ServoPayload struct {
	Angle int `json:"angle"`
}
