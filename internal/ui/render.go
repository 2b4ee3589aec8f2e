package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const minWideLayout = 86

// renderMain draws the dashboard: header, alert banners, the overview and
// readings panels, the trend panel, the controls panel and the footer.
func (m Model) renderMain() string {
	styles := m.theme.Styles()
	rm := BuildRenderModel(m.snapshot)

	width := m.width
	if width < 40 {
		width = 40
	}

	var b strings.Builder

	b.WriteString(m.renderHeader(rm, styles, width))
	b.WriteString("\n")

	if banner := m.renderBanners(rm, styles, width); banner != "" {
		b.WriteString(banner)
		b.WriteString("\n")
	}

	overview := m.renderOverview(rm, styles)
	readings := m.renderReadings(rm, styles)
	if width >= minWideLayout {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, overview, " ", readings))
	} else {
		b.WriteString(lipgloss.JoinVertical(lipgloss.Left, overview, readings))
	}
	b.WriteString("\n")

	b.WriteString(m.renderTrendPanel(rm, styles, width))
	b.WriteString("\n")

	b.WriteString(m.renderControls(rm, styles, width))
	b.WriteString("\n")

	b.WriteString(m.renderFooter(styles, width))

	return b.String()
}

func (m Model) renderHeader(rm RenderModel, styles Styles, width int) string {
	left := styles.Title.Render("Barnview") + styles.MutedText.Render("  curing chamber")

	var conn string
	if rm.ConnectionLost || !rm.HasStatus {
		conn = styles.DangerText.Render("● OFFLINE")
	} else {
		conn = styles.SuccessText.Render("● ONLINE")
	}

	host := styles.MutedText.Render(m.client.Host())
	right := conn + "  " + host

	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	line := left + strings.Repeat(" ", gap) + right
	return styles.Header.Width(width).Render(line)
}

// renderBanners stacks the connection-lost and alarm banners. The last good
// reading stays on screen underneath, so the operator can still see where
// the chamber was when contact dropped.
func (m Model) renderBanners(rm RenderModel, styles Styles, width int) string {
	var rows []string

	if rm.ConnectionLost {
		text := "Connection to the controller lost. Retrying..."
		if rm.ConnectionErr != "" {
			text = "Connection lost: " + rm.ConnectionErr
		}
		rows = append(rows, styles.Banner.Width(width).Render(text))
	}

	if rm.AlarmActive {
		rows = append(rows, styles.Banner.Width(width).Render("ALARM: buzzer is sounding."))
	}

	if len(rows) == 0 {
		return ""
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderOverview(rm RenderModel, styles Styles) string {
	rows := []string{
		metricRow(styles, "Mode", rm.Mode),
		metricRow(styles, "Stage", rm.StageName),
		metricRow(styles, "Uptime", rm.Uptime),
		metricRow(styles, "Next Temp Step", rm.Countdown),
		metricRow(styles, "Vent Angle", fmt.Sprintf("%d°", rm.ServoAngle)),
	}
	body := styles.Title.Render("Overview") + "\n" + strings.Join(rows, "\n")
	return styles.Panel.Render(body)
}

func (m Model) renderReadings(rm RenderModel, styles Styles) string {
	rows := []string{
		metricRow(styles, "Temperature", rm.Temperature),
		metricRow(styles, "Humidity", rm.Humidity),
		metricRow(styles, "Target", strings.TrimPrefix(rm.Target, "Target: ")),
		metricRow(styles, "Fans", rm.FanState),
		metricRow(styles, "Heaters", rm.HeaterState),
	}
	body := styles.Title.Render("Readings") + "\n" + strings.Join(rows, "\n")
	return styles.Panel.Render(body)
}

func (m Model) renderTrendPanel(rm RenderModel, styles Styles, width int) string {
	inner := width - 6
	if inner < 20 {
		inner = 20
	}
	body := styles.Title.Render("Trend") + "\n" + renderTrend(rm, inner, styles)
	return styles.Panel.Width(width - 2).Render(body)
}

func (m Model) renderControls(rm RenderModel, styles Styles, width int) string {
	var rows []string

	var stages []string
	for _, sc := range rm.Stages {
		label := "[" + sc.Key + "] " + sc.Label
		if sc.Disabled {
			stages = append(stages, styles.FaintText.Render(label+" (current)"))
		} else {
			stages = append(stages, styles.KeyLabel.Render(label))
		}
	}
	rows = append(rows, styles.MetricLabel.Render("Stage   ")+strings.Join(stages, "  "))

	modeHint := styles.KeyLabel.Render("[m] Switch to ")
	if rm.ManualMode {
		modeHint += styles.KeyLabel.Render("AUTO")
	} else {
		modeHint += styles.KeyLabel.Render("MANUAL")
	}
	servoHint := styles.KeyLabel.Render(fmt.Sprintf("[v] Vent → %d°", rm.NextServoAngle))
	resetHint := styles.KeyLabel.Render("[r] Reset cycle")
	rows = append(rows, styles.MetricLabel.Render("Cycle   ")+modeHint+"  "+servoHint+"  "+resetHint)

	if rm.ManualMode {
		var overrides []string
		for _, oc := range rm.Overrides {
			state := styles.FaintText.Render("off")
			if oc.On {
				state = styles.SuccessText.Render("ON")
			}
			overrides = append(overrides, styles.KeyLabel.Render("["+oc.Key+"] "+oc.Label)+" "+state)
		}
		rows = append(rows, styles.MetricLabel.Render("Manual  ")+strings.Join(overrides, "  "))
	} else {
		rows = append(rows, styles.MetricLabel.Render("Manual  ")+styles.FaintText.Render("switch to MANUAL mode to toggle fans and heaters"))
	}

	if m.confirmReset {
		rows = append(rows, styles.WarningText.Render("Reset the curing cycle? [y/n]"))
	}
	if m.editingHost {
		rows = append(rows, styles.MetricLabel.Render("Host    ")+m.hostInput.View()+styles.FaintText.Render("  enter to apply, esc to cancel"))
	}

	body := styles.Title.Render("Controls") + "\n" + strings.Join(rows, "\n")
	return styles.Panel.Width(width - 2).Render(body)
}

func (m Model) renderFooter(styles Styles, width int) string {
	hints := styles.KeyHint.Render("[h] help  [t] theme  [c] host  [q] quit")

	var status string
	switch {
	case m.notice.text != "":
		switch m.notice.level {
		case toastSuccess:
			status = styles.SuccessText.Render(m.notice.text)
		case toastError:
			status = styles.DangerText.Render(m.notice.text)
		default:
			status = styles.InfoText.Render(m.notice.text)
		}
	case !m.lastUpdated.IsZero():
		status = styles.FaintText.Render(fmt.Sprintf("Last update %s · refresh %s",
			m.lastUpdated.Format("15:04:05"), m.pollTick.Round(time.Second)))
	}

	gap := width - lipgloss.Width(hints) - lipgloss.Width(status)
	if gap < 1 {
		gap = 1
	}
	return hints + strings.Repeat(" ", gap) + status
}

func metricRow(styles Styles, label, value string) string {
	return styles.MetricLabel.Render(fmt.Sprintf("%-16s", label)) + styles.MetricValue.Render(value)
}
