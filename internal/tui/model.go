package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/nanokata/internal/cycles"
	"github.com/julianstephens/nanokata/internal/metrics"
	"github.com/julianstephens/nanokata/internal/models"
	"github.com/julianstephens/nanokata/internal/storage"
	"github.com/julianstephens/nanokata/internal/tui/components/cyclestrip"
	"github.com/julianstephens/nanokata/internal/tui/components/ledger"
	"github.com/julianstephens/nanokata/internal/tui/components/pointgrid"
	"github.com/julianstephens/nanokata/internal/tui/components/stats"
	"github.com/julianstephens/nanokata/internal/validation"
)

type SessionState int

const (
	StateDashboard SessionState = iota
	StateLedger
	StateAdd
)

type CheckInFormModel struct {
	Now   string
	Focus models.Focus
	Soul  string
	Prep  string
}

type Model struct {
	store     storage.Provider
	loc       *time.Location
	validator *validation.Validator
	state     SessionState
	keys      KeyMap
	help      help.Model

	strip      cyclestrip.Model
	statsPanel stats.Model
	ledger     ledger.Model
	grid       pointgrid.Model

	form          *huh.Form
	checkInForm   *CheckInFormModel
	todayCheckIns []models.CheckIn
	clock         time.Time
	errMsg        string
	quitting      bool
	width         int
	height        int
}

func NewModel(store storage.Provider, loc *time.Location) Model {
	now := time.Now().In(loc)

	m := Model{
		store:      store,
		loc:        loc,
		validator:  validation.New(),
		state:      StateDashboard,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		strip:      cyclestrip.New(nil),
		statsPanel: stats.New(0, 0),
		ledger:     ledger.New(loc, 0, 0),
		grid:       pointgrid.New(pointgrid.Animated),
		clock:      now,
	}
	m.refreshData(now)

	return m
}

func (m Model) ShortHelp() []key.Binding {
	return m.keys.ShortHelp()
}

func (m Model) FullHelp() [][]key.Binding {
	return m.keys.FullHelp()
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.grid.Init(), clockTick())
}

type clockTickMsg time.Time

func clockTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return clockTickMsg(t)
	})
}

// refreshData reloads the check-ins for now's day from the store and
// recomputes the cycle states, density and streak.
func (m *Model) refreshData(now time.Time) {
	m.clock = now.In(m.loc)

	checkIns, err := m.store.GetCheckInsForRange(cycles.StartOfDay(m.clock), cycles.EndOfDay(m.clock))
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.todayCheckIns = checkIns
	m.errMsg = ""

	streak, err := metrics.CurrentStreak(m.clock, m.loc, m.store.GetCheckInsForRange)
	if err != nil {
		m.errMsg = err.Error()
		return
	}

	density := metrics.ComputeDensity(checkIns, m.clock, m.loc)
	m.strip.SetCycles(metrics.Classify(checkIns, m.clock, m.loc))
	m.statsPanel.SetStats(density.Density, streak)
	m.ledger.SetCheckIns(checkIns)
}

// refreshCycles re-classifies the cached check-ins against the current
// instant so tiles flip from future to past as time crosses a boundary.
func (m *Model) refreshCycles(now time.Time) {
	m.clock = now.In(m.loc)
	m.strip.SetCycles(metrics.Classify(m.todayCheckIns, m.clock, m.loc))
}

func newCheckInForm(fm *CheckInFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Now").
				Description("What are you doing right now?").
				Value(&fm.Now).
				Validate(requireText("now")),
			huh.NewSelect[models.Focus]().
				Title("Focus").
				Options(
					huh.NewOption("rhyt", models.FocusRhyt),
					huh.NewOption("hyker", models.FocusHyker),
					huh.NewOption("other", models.FocusOther),
				).
				Value(&fm.Focus),
			huh.NewInput().
				Title("Soul").
				Description("How is your inner state?").
				Value(&fm.Soul).
				Validate(requireText("soul")),
			huh.NewInput().
				Title("Prep").
				Description("What comes next?").
				Value(&fm.Prep).
				Validate(requireText("prep")),
		),
	).WithTheme(huh.ThemeDracula())
}
