// Package stats renders the daily density and current streak panel.
package stats

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	densityStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	streakStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("154")).
			Bold(true)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

type Model struct {
	density float64
	streak  int
}

func New(density float64, streak int) Model {
	return Model{density: density, streak: streak}
}

func (m *Model) SetStats(density float64, streak int) {
	m.density = density
	m.streak = streak
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m, nil
}

func (m Model) View() string {
	unit := "days"
	if m.streak == 1 {
		unit = "day"
	}

	density := lipgloss.JoinVertical(lipgloss.Left,
		labelStyle.Render("DAILY DENSITY"),
		densityStyle.Render(fmt.Sprintf("%.2f", m.density)),
		hintStyle.Render("across waking cycles (6-E)"),
	)
	streak := lipgloss.JoinVertical(lipgloss.Left,
		labelStyle.Render("CURRENT STREAK"),
		streakStyle.Render(fmt.Sprintf("%d", m.streak)),
		hintStyle.Render(fmt.Sprintf("%s with 1.0 density", unit)),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().MarginRight(6).Render(density),
		streak,
	)
}
