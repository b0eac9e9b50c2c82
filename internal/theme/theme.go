package theme

import "charm.land/lipgloss/v2"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	TimerIdle    *lipgloss.Style
	TimerArming  *lipgloss.Style
	TimerReady   *lipgloss.Style
	TimerRunning *lipgloss.Style
	StatsLabel   *lipgloss.Style
	StatsValue   *lipgloss.Style
	StatsBest    *lipgloss.Style
	ListHeader   *lipgloss.Style
	ListItem     *lipgloss.Style
	ListSelected *lipgloss.Style
	Footer       *lipgloss.Style
	Error        *lipgloss.Style
}

var defaultStyles = Styles{
	TimerIdle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	TimerArming: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	TimerReady: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	TimerRunning: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
	),
	StatsLabel: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	StatsValue: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	StatsBest: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	ListHeader: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	ListItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	ListSelected: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

// Render applies style to s, tolerating a nil style.
func Render(style *lipgloss.Style, s string) string {
	if style == nil || s == "" {
		return s
	}
	return style.Render(s)
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
