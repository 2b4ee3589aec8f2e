package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines colors for the UI.
type Theme struct {
	Name string

	Background string
	Surface    string

	Text   string
	Muted  string
	Faint  string
	Accent string

	Success string
	Warning string
	Danger  string
	Info    string

	Border      string
	BorderFocus string
}

// Styles holds the lipgloss styles derived from a theme.
type Styles struct {
	Header lipgloss.Style
	Panel  lipgloss.Style
	Title  lipgloss.Style

	Text      lipgloss.Style
	MutedText lipgloss.Style
	FaintText lipgloss.Style
	Accent    lipgloss.Style

	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style
	InfoText    lipgloss.Style

	MetricLabel lipgloss.Style
	MetricValue lipgloss.Style

	KeyHint  lipgloss.Style
	KeyLabel lipgloss.Style

	Banner lipgloss.Style
	Toast  lipgloss.Style
}

// Styles returns lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 1),

		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		Text:      lipgloss.NewStyle().Foreground(lipgloss.Color(t.Text)),
		MutedText: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)),
		FaintText: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Faint)),
		Accent:    lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)),

		SuccessText: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Success)),
		WarningText: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Warning)),
		DangerText:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Danger)),
		InfoText:    lipgloss.NewStyle().Foreground(lipgloss.Color(t.Info)),

		MetricLabel: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),
		MetricValue: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Bold(true),

		KeyHint: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),
		KeyLabel: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		Banner: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Toast: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Bold(true),
	}
}

// Themes available for cycling with the theme key.
var themes = []Theme{
	{
		Name:        "Ember",
		Background:  "#1c1917",
		Surface:     "#292524",
		Text:        "#fafaf9",
		Muted:       "#a8a29e",
		Faint:       "#57534e",
		Accent:      "#fb923c",
		Success:     "#4ade80",
		Warning:     "#facc15",
		Danger:      "#f87171",
		Info:        "#38bdf8",
		Border:      "#44403c",
		BorderFocus: "#fb923c",
	},
	{
		Name:        "Slate",
		Background:  "#0f172a",
		Surface:     "#1e293b",
		Text:        "#f1f5f9",
		Muted:       "#94a3b8",
		Faint:       "#475569",
		Accent:      "#38bdf8",
		Success:     "#34d399",
		Warning:     "#fbbf24",
		Danger:      "#fb7185",
		Info:        "#a78bfa",
		Border:      "#334155",
		BorderFocus: "#38bdf8",
	},
}

// GetTheme returns the theme with the given name, falling back to the first
// theme when unknown.
func GetTheme(name string) Theme {
	for _, t := range themes {
		if t.Name == name {
			return t
		}
	}
	return themes[0]
}

// NextTheme returns the name of the theme after the given one, wrapping at
// the end of the list.
func NextTheme(name string) string {
	for i, t := range themes {
		if t.Name == name {
			return themes[(i+1)%len(themes)].Name
		}
	}
	return themes[0].Name
}
