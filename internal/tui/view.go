package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/nanokata/internal/cycles"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateDashboard:
		content = m.viewDashboard()
	case StateLedger:
		content = docStyle.Render(m.ledger.View())
	case StateAdd:
		if m.form != nil {
			content = docStyle.Render(m.form.View())
		}
	}

	sections := []string{m.viewTabs(), content}
	if m.errMsg != "" {
		sections = append(sections, errorStyle.Render("  "+m.errMsg))
	}
	sections = append(sections, m.help.View(m))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Dashboard", "Ledger"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewDashboard() string {
	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render(cycles.DayKey(m.clock)+"  ·  cycle "+cycles.Label(cycles.IndexOf(m.clock))),
		"",
		m.statsPanel.View(),
		"",
		m.strip.View(),
		"",
		m.grid.View(),
	))
}
