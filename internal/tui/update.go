package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/nanokata/internal/cycles"
	"github.com/julianstephens/nanokata/internal/models"
	"github.com/julianstephens/nanokata/internal/tui/components/pointgrid"
	"github.com/julianstephens/nanokata/internal/validation"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ledger.SetSize(msg.Width-4, msg.Height-8)
		m.grid.SetSize(min(msg.Width/2, 48), 4)
		return m, nil

	case pointgrid.TickMsg:
		var cmd tea.Cmd
		m.grid, cmd = m.grid.Update(msg)
		return m, cmd

	case clockTickMsg:
		now := time.Time(msg)
		// Crossing local midnight starts a fresh day: the cached check-ins
		// belong to the previous one, so reload instead of re-classifying.
		if cycles.DayKey(now.In(m.loc)) != cycles.DayKey(m.clock) {
			m.refreshData(now)
		} else {
			m.refreshCycles(now)
		}
		return m, clockTick()
	}

	if m.state == StateAdd && m.form != nil {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % 2
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state + 1) % 2
		case key.Matches(msg, m.keys.Add):
			m.checkInForm = &CheckInFormModel{Focus: models.FocusOther}
			m.form = newCheckInForm(m.checkInForm)
			m.state = StateAdd
			return m, m.form.Init()
		case key.Matches(msg, m.keys.Refresh):
			m.refreshData(time.Now())
		}
	}

	if m.state == StateLedger {
		var cmd tea.Cmd
		m.ledger, cmd = m.ledger.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		if err := m.submitCheckIn(); err != nil {
			m.errMsg = err.Error()
		}
		m.form = nil
		m.checkInForm = nil
		m.state = StateDashboard
	case huh.StateAborted:
		m.form = nil
		m.checkInForm = nil
		m.state = StateDashboard
	}

	return m, cmd
}

// submitCheckIn runs the completed form values through the same validation
// the CLI uses, then persists and refreshes the dashboard.
func (m *Model) submitCheckIn() error {
	focus, when, result := m.validator.ValidateCheckIn(validation.CheckInInput{
		Now:   m.checkInForm.Now,
		Focus: string(m.checkInForm.Focus),
		Soul:  m.checkInForm.Soul,
		Prep:  m.checkInForm.Prep,
	})
	if result.HasIssues() {
		return result.Err()
	}

	_, err := m.store.AddCheckIn(models.CheckIn{
		CheckedAt: when,
		Now:       m.checkInForm.Now,
		Focus:     focus,
		Soul:      m.checkInForm.Soul,
		Prep:      m.checkInForm.Prep,
	})
	if err != nil {
		return err
	}

	m.refreshData(time.Now())
	return nil
}

func requireText(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s cannot be empty", field)
		}
		return nil
	}
}
