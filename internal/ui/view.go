package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the header, the virtualized row viewport and the footer.
func (m Model) View() string {
	if m.width == 0 || m.ctrl == nil {
		return "measuring terminal..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderRows())
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderHeader() string {
	title := m.styles.Title.Render("rolodex")

	var state string
	switch {
	case !m.loaded:
		state = m.styles.Count.Render("loading…")
	case m.query != "":
		state = m.styles.Query.Render(fmt.Sprintf("/%s", m.query)) +
			m.styles.Count.Render(fmt.Sprintf("  %d of %d", len(m.records), m.total))
	default:
		state = m.styles.Count.Render(fmt.Sprintf("%d contacts", len(m.records)))
	}

	line := title + "  " + state
	return lipgloss.NewStyle().Width(m.width).Render(line)
}

// renderRows paints the tick snapshot into the viewport; the live controller
// rows belong to the scheduler and are never read here. Rows in the overscan
// margin are materialised but fall outside the drawable range, so they simply
// do not produce lines.
func (m Model) renderRows() string {
	geo := m.ctrl.Geometry()
	lines := make([]string, geo.ViewportHeight)

	for _, row := range m.rows {
		screenY := row.y - m.offset
		if screenY < 0 || screenY > geo.ViewportHeight-geo.RowHeight {
			continue
		}

		style := m.styles.Row
		if row.index == m.cursor {
			style = m.styles.Selected
		}
		label := style.Render(row.label)
		if row.phone != "" {
			label += "  " + m.styles.Phone.Render(row.phone)
		}
		lines[screenY] = label
	}

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderFooter() string {
	switch m.mode {
	case modeSearch:
		return m.styles.Prompt.Render("search: ") + m.input.View()
	case modeAdd:
		return m.styles.Prompt.Render("add: ") + m.input.View()
	}

	if m.flash != "" {
		return m.styles.Flash.Render(m.flash)
	}
	return m.styles.Help.Render("j/k move · / search · a add · d delete · esc clear · q quit")
}
