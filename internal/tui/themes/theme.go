// Package themes defines the visual styles for the dashboard TUI.
package themes

import "github.com/charmbracelet/lipgloss"

// Theme defines the visual style for the TUI.
type Theme struct {
	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	Normal       lipgloss.Style
	Bold         lipgloss.Style
	Faint        lipgloss.Style
	Selected     lipgloss.Style
	Salary       lipgloss.Style
	IconCircle   lipgloss.Style
	BadgeGoal    lipgloss.Style
	BadgeDebt    lipgloss.Style
	BadgeMonthly lipgloss.Style
	BadgeOneTime lipgloss.Style
	BadgeFilter  lipgloss.Style
	Positive     lipgloss.Style
	Negative     lipgloss.Style
	Disabled     lipgloss.Style
	Box          lipgloss.Style
	BorderedBox  lipgloss.Style
	RoundedBox   lipgloss.Style
	Primary      lipgloss.Color
	Muted        lipgloss.Color
	Border       lipgloss.Color
	Foreground   lipgloss.Color
}

// Default is the default dark theme.
var Default = Theme{
	Primary:    lipgloss.Color("#7c3aed"),
	Muted:      lipgloss.Color("#737373"),
	Border:     lipgloss.Color("#404040"),
	Foreground: lipgloss.Color("#fafafa"),

	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#fafafa")),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a3a3a3")),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#fafafa")),
	Bold: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#fafafa")),
	Faint: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#737373")),
	Selected: lipgloss.NewStyle().
		Background(lipgloss.Color("#7c3aed")).
		Foreground(lipgloss.Color("#fafafa")).
		Bold(true),
	Salary: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#fafafa")),
	IconCircle: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#7c3aed")).
		Width(4).
		Align(lipgloss.Center),
	BadgeGoal: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#34d399")).
		Padding(0, 1),
	BadgeDebt: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#f87171")).
		Padding(0, 1),
	BadgeMonthly: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#60a5fa")).
		Padding(0, 1),
	BadgeOneTime: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#4ade80")).
		Padding(0, 1),
	BadgeFilter: lipgloss.NewStyle().
		Background(lipgloss.Color("#262626")).
		Foreground(lipgloss.Color("#e5e5e5")).
		Padding(0, 1),
	Positive: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#10b981")),
	Negative: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#a31621")),
	Disabled: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#525252")),

	Box: lipgloss.NewStyle().
		Padding(1, 2),
	BorderedBox: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#404040")).
		Padding(1, 2),
	RoundedBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#404040")).
		Padding(0, 1),
}

// CatppuccinMocha is the Catppuccin Mocha theme.
var CatppuccinMocha = Theme{
	Primary:    lipgloss.Color("#cba6f7"),
	Muted:      lipgloss.Color("#6c7086"),
	Border:     lipgloss.Color("#45475a"),
	Foreground: lipgloss.Color("#cdd6f4"),

	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#cdd6f4")),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a6adc8")),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#cdd6f4")),
	Bold: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#cdd6f4")),
	Faint: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#6c7086")),
	Selected: lipgloss.NewStyle().
		Background(lipgloss.Color("#cba6f7")).
		Foreground(lipgloss.Color("#1e1e2e")).
		Bold(true),
	Salary: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#cdd6f4")),
	IconCircle: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#cba6f7")).
		Width(4).
		Align(lipgloss.Center),
	BadgeGoal: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a6e3a1")).
		Padding(0, 1),
	BadgeDebt: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#f38ba8")).
		Padding(0, 1),
	BadgeMonthly: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#89b4fa")).
		Padding(0, 1),
	BadgeOneTime: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a6e3a1")).
		Padding(0, 1),
	BadgeFilter: lipgloss.NewStyle().
		Background(lipgloss.Color("#313244")).
		Foreground(lipgloss.Color("#cdd6f4")).
		Padding(0, 1),
	Positive: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#a6e3a1")),
	Negative: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#f38ba8")),
	Disabled: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#45475a")),

	Box: lipgloss.NewStyle().
		Padding(1, 2),
	BorderedBox: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#45475a")).
		Padding(1, 2),
	RoundedBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#45475a")).
		Padding(0, 1),
}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	switch name {
	case "catppuccin-mocha":
		return CatppuccinMocha
	default:
		return Default
	}
}
