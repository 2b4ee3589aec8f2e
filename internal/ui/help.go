package ui

import "strings"

type helpEntry struct {
	key  string
	desc string
}

var helpEntries = []helpEntry{
	{"m", "toggle AUTO / MANUAL mode"},
	{"1 2 3", "select curing stage"},
	{"v", "cycle vent servo angle"},
	{"f / F", "toggle fan 1 / fan 2 (MANUAL only)"},
	{"g / G", "toggle heater 1 / heater 2 (MANUAL only)"},
	{"r", "reset the curing cycle (asks to confirm)"},
	{"c", "change controller host"},
	{"t", "cycle colour theme"},
	{"h / ?", "toggle this help"},
	{"q / ctrl+c", "quit"},
}

// renderHelp draws the key binding overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	var rows []string
	rows = append(rows, styles.Title.Render("Key Bindings"))
	rows = append(rows, "")
	for _, e := range helpEntries {
		rows = append(rows, styles.KeyLabel.Render(padRight(e.key, 12))+styles.Text.Render(e.desc))
	}
	rows = append(rows, "")
	rows = append(rows, styles.FaintText.Render("Theme: "+m.theme.Name+"  ·  Controller: "+m.client.Host()))
	rows = append(rows, styles.FaintText.Render("Press any key to close."))

	return styles.Panel.Render(strings.Join(rows, "\n"))
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
