package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/pendsim/internal/anim"
	"github.com/san-kum/pendsim/internal/metrics"
	"github.com/san-kum/pendsim/internal/sim"
)

type TickMsg time.Time

type AnimationOptions struct {
	Interval      time.Duration
	Trail         int
	Width, Height int
	Theme         Theme
}

func DefaultAnimationOptions() AnimationOptions {
	return AnimationOptions{
		Interval: 20 * time.Millisecond,
		Trail:    40,
		Width:    40,
		Height:   20,
		Theme:    ThemeCyberpunk,
	}
}

// Animation replays a finished trajectory, one schedule frame per tick.
// It quits after the last frame or on q / ctrl+c.
type Animation struct {
	scene    *scene
	traj     *sim.Trajectory
	schedule *anim.Schedule
	energy   []float64
	opts     AnimationOptions
	styles   Styles
	frame    int
	paused   bool
	done     bool
}

func NewAnimation(tr *sim.Trajectory, sched *anim.Schedule, opts AnimationOptions) Animation {
	def := DefaultAnimationOptions()
	if opts.Interval <= 0 {
		opts.Interval = def.Interval
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = def.Width, def.Height
	}
	if opts.Theme.Name == "" {
		opts.Theme = def.Theme
	}

	return Animation{
		scene:    newScene(tr, sched, opts.Width, opts.Height, opts.Trail),
		traj:     tr,
		schedule: sched,
		energy:   metrics.EnergySeries(tr),
		opts:     opts,
		styles:   NewStyles(opts.Theme),
	}
}

func (m Animation) Frame() int { return m.frame }

func (m Animation) Done() bool { return m.done }

func (m Animation) tick() tea.Cmd {
	return tea.Tick(m.opts.Interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Animation) Init() tea.Cmd { return m.tick() }

func (m Animation) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.done = true
			return m, tea.Quit
		case " ", "p":
			m.paused = !m.paused
		}
		return m, nil
	case TickMsg:
		if m.paused {
			return m, m.tick()
		}
		if m.frame >= m.schedule.FrameCount-1 {
			m.done = true
			return m, tea.Quit
		}
		m.frame++
		return m, m.tick()
	}
	return m, nil
}

func (m Animation) View() string {
	m.scene.draw(m.frame)
	canvasView := m.styles.Canvas.Render(m.scene.canvas.String())

	idx := m.schedule.SampleIndex(m.frame)
	sample := m.traj.At(idx)

	var s strings.Builder
	s.WriteString(m.styles.Header.Render("PENDULUM") + "\n")
	s.WriteString(m.styles.Row("Frame", fmt.Sprintf("%d/%d", m.frame+1, m.schedule.FrameCount)))
	s.WriteString(m.styles.Row("Sample", fmt.Sprintf("%d/%d", idx, m.schedule.StepCount)))
	s.WriteString(m.styles.Row("Time", fmt.Sprintf("%.3fs", sample.Time)))
	s.WriteString(m.styles.Row("Angle", fmt.Sprintf("%+.4f rad", sample.Angle)))
	s.WriteString(m.styles.Row("Velocity", fmt.Sprintf("%+.4f rad/s", sample.AngularVelocity)))
	s.WriteString(m.styles.Row("Energy", fmt.Sprintf("%.5f", m.energy[idx])))

	if chart := EnergyChart(m.energy[:idx+1], 24, 4); chart != "" {
		s.WriteString(m.styles.Graph.Render(chart) + "\n")
	}

	progress := float64(m.frame+1) / float64(m.schedule.FrameCount)
	s.WriteString(ProgressBar(progress, 24) + "\n")

	status := "space/p:pause q:quit"
	if m.paused {
		status = "PAUSED  " + status
	}
	s.WriteString(m.styles.Hint.Render(status))

	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, m.styles.Panel.Render(s.String()))
}

// RunAnimation plays the animation full-screen until it ends or is quit.
func RunAnimation(tr *sim.Trajectory, sched *anim.Schedule, opts AnimationOptions) error {
	_, err := tea.NewProgram(NewAnimation(tr, sched, opts), tea.WithAltScreen()).Run()
	return err
}
