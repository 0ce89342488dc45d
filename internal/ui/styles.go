package ui

import "github.com/charmbracelet/lipgloss"

// styles groups the lipgloss styles used by the browser.
type styles struct {
	Title    lipgloss.Style
	Count    lipgloss.Style
	Query    lipgloss.Style
	Row      lipgloss.Style
	Selected lipgloss.Style
	Phone    lipgloss.Style
	Help     lipgloss.Style
	Flash    lipgloss.Style
	Prompt   lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		Count:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Query:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Row:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62")),
		Phone:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Flash:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Prompt:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
	}
}
