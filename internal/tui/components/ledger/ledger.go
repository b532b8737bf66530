// Package ledger renders the scrolling table of check-ins.
package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/nanokata/internal/cycles"
	"github.com/julianstephens/nanokata/internal/models"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Bold(true)

	timeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	cycleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("16")).
			Background(lipgloss.Color("154")).
			Bold(true).
			Padding(0, 1)

	focusStyles = map[models.Focus]lipgloss.Style{
		models.FocusRhyt:  lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
		models.FocusHyker: lipgloss.NewStyle().Foreground(lipgloss.Color("135")),
		models.FocusOther: lipgloss.NewStyle().Foreground(lipgloss.Color("247")),
	}

	cellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))
)

type Model struct {
	viewport viewport.Model
	checkIns []models.CheckIn
	loc      *time.Location
	width    int
	height   int
}

func New(loc *time.Location, width, height int) Model {
	return Model{
		viewport: viewport.New(width, height),
		loc:      loc,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.checkIns) == 0 {
		return "\n  No check-ins yet today.\n  Press 'a' to add one."
	}
	return m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	m.render()
}

func (m *Model) SetCheckIns(checkIns []models.CheckIn) {
	m.checkIns = checkIns
	m.render()
}

func (m *Model) render() {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("%-14s %-7s %-22s %-8s %-16s %s",
		"TIME", "CYCLE", "NOW", "FOCUS", "SOUL", "PREP")))
	b.WriteString("\n")

	for _, ci := range m.checkIns {
		local := ci.CheckedAt.In(m.loc)

		focusStyle, ok := focusStyles[ci.Focus]
		if !ok {
			focusStyle = cellStyle
		}

		line := fmt.Sprintf("%s %s %s %s %s %s\n",
			timeStyle.Render(fmt.Sprintf("%-14s", local.Format("Jan 2 15:04"))),
			cycleStyle.Render(cycles.Label(cycles.IndexOf(local))),
			cellStyle.Render(fmt.Sprintf("%-22s", truncate(ci.Now, 22))),
			focusStyle.Render(fmt.Sprintf("%-8s", ci.Focus)),
			cellStyle.Render(fmt.Sprintf("%-16s", truncate(ci.Soul, 16))),
			cellStyle.Render(truncate(ci.Prep, 24)),
		)
		b.WriteString(line)
	}

	m.viewport.SetContent(b.String())
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 1 {
		return s[:max]
	}
	return s[:max-1] + "…"
}
