// Package pointgrid renders a purely decorative animated grid of dots. It
// has no knowledge of check-ins or cycles; the dashboard composes it for
// ambience only.
package pointgrid

import (
	"math"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	motionFX       = 0.2
	motionFY       = 0.3
	frameInterval  = 100 * time.Millisecond
	defaultRows    = 4
	defaultColumns = 48
)

// Config controls one grid's animation. A zero BaseSpeed renders a static
// grid in StaticColor.
type Config struct {
	BaseSpeed   float64
	StaticColor string
}

// Animated is the default ambient preset.
var Animated = Config{BaseSpeed: 0.0003}

// Static renders a motionless dimmed grid.
var Static = Config{BaseSpeed: 0, StaticColor: "240"}

// Shades from dim to bright, indexed by the wave value.
var shades = []string{"22", "28", "34", "40", "76", "82", "118", "154"}

type TickMsg time.Time

type Model struct {
	config Config
	rows   int
	cols   int
	seed   float64
	now    time.Time
}

func New(config Config) Model {
	return Model{
		config: config,
		rows:   defaultRows,
		cols:   defaultColumns,
		seed:   float64(rand.Intn(1000000)),
		now:    time.Now(),
	}
}

func (m *Model) SetSize(cols, rows int) {
	if cols > 0 {
		m.cols = cols
	}
	if rows > 0 {
		m.rows = rows
	}
}

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	if m.config.BaseSpeed == 0 {
		return nil
	}
	return tick()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		m.now = time.Time(msg)
		if m.config.BaseSpeed == 0 {
			return m, nil
		}
		return m, tick()
	}
	return m, nil
}

// normalize maps a -1..1 wave value onto 0..value.
func normalize(sine, value float64) float64 {
	return value*0.5 + sine*(value*0.5)
}

// calcWave returns -1..1 for a timestamp and grid co-ordinate.
func calcWave(t, x, y float64) float64 {
	sx := math.Sin(x*motionFX + t)
	sy := math.Cos(y*motionFY + t)
	return math.Sin(sx + sy + t)
}

func (m Model) View() string {
	if m.config.BaseSpeed == 0 {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(m.config.StaticColor))
		row := strings.Repeat("· ", m.cols/2)
		rows := make([]string, m.rows)
		for i := range rows {
			rows[i] = style.Render(row)
		}
		return strings.Join(rows, "\n")
	}

	t := m.config.BaseSpeed * (float64(m.now.UnixMilli()) + m.seed)

	var b strings.Builder
	for y := 0; y < m.rows; y++ {
		for x := 0; x < m.cols; x++ {
			f := calcWave(t, float64(x), float64(y))
			idx := int(normalize(f, float64(len(shades)-1)))
			if idx < 0 {
				idx = 0
			}
			if idx >= len(shades) {
				idx = len(shades) - 1
			}

			dot := "·"
			if f > 0.3 {
				dot = "•"
			}
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(shades[idx])).Render(dot))
			b.WriteString(" ")
		}
		if y < m.rows-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
