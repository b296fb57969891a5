// Package viz renders the simulation live in the terminal.
package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/dyeflow/internal/metrics"
	"github.com/san-kum/dyeflow/internal/sim"
)

const (
	// canvasCells is the side length of the downsampled preview. Two grid
	// rows share one terminal row via the half-block glyph.
	canvasCells = 48

	historyCapacity = 120
)

type TickMsg time.Time

// Model steps the simulator from the bubbletea event loop and draws each
// frame as a downsampled half-block image. An optional recorder sink
// receives every full-resolution frame so the run can still be encoded
// after the preview closes.
type Model struct {
	sim      *sim.Simulator
	recorder sim.FrameSink
	drift    *metrics.DyeDrift

	frame    []uint8
	n        int
	running  bool
	history  []float64
	showHelp bool
}

func NewModel(s *sim.Simulator, recorder sim.FrameSink) Model {
	drift := metrics.NewDyeDrift(s.Base())
	s.AddMetric(drift)
	return Model{
		sim:      s,
		recorder: recorder,
		drift:    drift,
		frame:    make([]uint8, s.Config().Resolution*s.Config().Resolution*3),
		n:        s.Config().Resolution,
		running:  true,
		history:  make([]float64, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd { return m.tick() }

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.sim.FrameDelay(), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.sim.Reset()
			m.history = m.history[:0]
			m.running = true
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running && !m.sim.Done() {
			pix := m.sim.Step()
			copy(m.frame, pix)
			if m.recorder != nil {
				m.recorder.Accept(pix, m.sim.FrameDelay())
			}
			m.history = append(m.history, m.drift.Value())
			if len(m.history) > historyCapacity {
				m.history = m.history[1:]
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) View() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render("DYEFLOW") + "\n")

	status := "RUNNING"
	if m.sim.Done() {
		status = "DONE - press q to encode"
	} else if !m.running {
		status = "PAUSED"
	}
	s.WriteString(status + "\n\n")

	cfg := m.sim.Config()
	t := float64(m.sim.StepCount()) / float64(cfg.Steps) * 6.0
	s.WriteString(labelStyle.Render("Frame") + valueStyle.Render(fmt.Sprintf("%d / %d", m.sim.StepCount(), cfg.Steps)) + "\n")
	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.2f", t)) + "\n")
	s.WriteString(labelStyle.Render("Grid") + valueStyle.Render(fmt.Sprintf("%d x %d", cfg.Resolution, cfg.Resolution)) + "\n")
	s.WriteString(labelStyle.Render("Drift") + valueStyle.Render(fmt.Sprintf("%.2f", m.drift.Value())) + "\n")

	if len(m.history) > 1 {
		chart := asciigraph.Plot(m.history,
			asciigraph.Height(4),
			asciigraph.Width(30),
			asciigraph.Caption("dye drift"),
		)
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	s.WriteString(helpStyle.Render("SP:Pause R:Restart Q:Quit ?:Help"))
	if m.showHelp {
		s.WriteString(helpStyle.Render("\nquitting encodes the frames\nproduced so far"))
	}

	stats := statsStyle.Render(s.String())
	canvas := canvasStyle.Render(m.renderCanvas())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvas, stats)
}

// renderCanvas downsamples the latest frame to canvasCells² and packs two
// rows per text line with the upper half block.
func (m Model) renderCanvas() string {
	var b strings.Builder
	for y := 0; y < canvasCells; y += 2 {
		for x := 0; x < canvasCells; x++ {
			top := m.cellColor(x, y)
			bottom := m.cellColor(x, y+1)
			b.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(top)).
				Background(lipgloss.Color(bottom)).
				Render("▀"))
		}
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

// cellColor nearest-samples the frame at preview cell (x, y).
func (m Model) cellColor(x, y int) string {
	sx := x * m.n / canvasCells
	sy := y * m.n / canvasCells
	i := (sy*m.n + sx) * 3
	return fmt.Sprintf("#%02x%02x%02x", m.frame[i], m.frame[i+1], m.frame[i+2])
}
