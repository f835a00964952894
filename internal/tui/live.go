// Package tui renders the heart as a terminal character animation. A pure
// frame builder does the rasterizing; a Bubble Tea program drives it on a
// fixed tick and handles pause/quit keys.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/pulse/internal/anim"
	"github.com/san-kum/pulse/internal/config"
	"github.com/san-kum/pulse/internal/palette"
)

const (
	tickInterval = 80 * time.Millisecond
	waveWindow   = 60 // pulse samples kept for the waveform strip
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	pausedTag  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
)

type model struct {
	cfg    *config.Config
	cycler *palette.Cycler
	clock  anim.Clock

	phase anim.Phase
	t     float64 // elapsed seconds at the last running tick
	wave  []float64
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func newModel(cfg *config.Config, cycler *palette.Cycler, clock anim.Clock) model {
	return model{
		cfg:    cfg,
		cycler: cycler,
		clock:  clock,
		phase:  anim.Running,
		wave:   make([]float64, 0, waveWindow),
	}
}

func (m model) Init() tea.Cmd { return tick() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.phase = m.phase.Close()
			return m, tea.Quit
		case " ", "p":
			m.phase = m.phase.Toggle()
		}
		return m, nil
	case tickMsg:
		// A paused frame stays frozen: t only advances while running, and
		// because pulse and hue are functions of absolute elapsed time the
		// animation resumes in phase, not where it left off.
		if m.phase == anim.Running {
			m.t = m.clock.Elapsed()
			m.wave = append(m.wave, m.cycler.Pulse(m.t))
			if len(m.wave) > waveWindow {
				m.wave = m.wave[1:]
			}
		}
		return m, tick()
	}
	return m, nil
}

func (m model) View() string {
	t := m.t
	hue := lipgloss.Color(m.cycler.Color(t).Hex())
	heartStyle := lipgloss.NewStyle().Foreground(hue)

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("pulse"))
	sb.WriteString(dimStyle.Render(fmt.Sprintf("  %.1fs", t)))
	if m.phase == anim.Paused {
		sb.WriteString("  " + pausedTag.Render("PAUSED"))
	}
	sb.WriteByte('\n')

	sb.WriteString(heartStyle.Render(Frame(m.cfg.Grid.Width, m.cfg.Grid.Height, m.cycler.Pulse(t))))

	if len(m.wave) >= 2 && m.cfg.Grid.Width > 20 {
		sb.WriteString(dimStyle.Render(asciigraph.Plot(m.wave,
			asciigraph.Height(3),
			asciigraph.Width(m.cfg.Grid.Width-10))))
		sb.WriteByte('\n')
	}

	sb.WriteString(dimStyle.Render("[space] pause  [q] quit"))
	return sb.String()
}

// Run blocks until the user quits, then returns the farewell line the
// caller should print. Interrupts land here as a normal quit.
func Run(cfg *config.Config, cycler *palette.Cycler, clock anim.Clock) (string, error) {
	p := tea.NewProgram(newModel(cfg, cycler, clock), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return "", err
	}
	return "stay healthy ❤", nil
}
