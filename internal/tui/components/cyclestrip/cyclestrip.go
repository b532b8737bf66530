// Package cyclestrip renders the sixteen cycles of one day as a row of
// tiles, each showing its hex label and the earliest check-in time when one
// exists.
package cyclestrip

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/nanokata/internal/metrics"
)

var (
	baseTile = lipgloss.NewStyle().
			Width(6).
			Height(2).
			Align(lipgloss.Center).
			Margin(0, 1, 0, 0)

	checkedTile = baseTile.
			Foreground(lipgloss.Color("16")).
			Background(lipgloss.Color("154")).
			Bold(true)

	pastTile = baseTile.
			Foreground(lipgloss.Color("250")).
			Background(lipgloss.Color("241"))

	futureTile = baseTile.
			Foreground(lipgloss.Color("245")).
			Background(lipgloss.Color("236"))
)

// tileStyle picks the tile by state; non-waking cycles keep their state
// styling and are only dimmed on top of it.
func tileStyle(c metrics.CycleMetadata) lipgloss.Style {
	style := futureTile
	switch c.State {
	case metrics.CycleChecked:
		style = checkedTile
	case metrics.CyclePast:
		style = pastTile
	}
	if !c.IsWaking {
		style = style.Faint(true)
	}
	return style
}

type Model struct {
	cycles []metrics.CycleMetadata
}

func New(cycles []metrics.CycleMetadata) Model {
	return Model{cycles: cycles}
}

func (m *Model) SetCycles(cycles []metrics.CycleMetadata) {
	m.cycles = cycles
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m, nil
}

func (m Model) View() string {
	tiles := make([]string, 0, len(m.cycles))
	for _, c := range m.cycles {
		style := tileStyle(c)

		content := c.Label
		if c.EarliestCheckInTime != "" {
			content = c.Label + "\n" + c.EarliestCheckInTime
		}
		tiles = append(tiles, style.Render(content))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
}
