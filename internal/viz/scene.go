package viz

import (
	"math"

	"github.com/san-kum/pendsim/internal/anim"
	"github.com/san-kum/pendsim/internal/sim"
)

// BobRadius is the bob size in world units.
const BobRadius = 0.05

// ViewMin and ViewMax bound both axes of the world window.
const (
	ViewMin = -2.0
	ViewMax = 2.0
)

// scene draws one animation frame: trail, rod, pivot and bob.
type scene struct {
	canvas   *Canvas
	view     Viewport
	xs, ys   []float64
	schedule *anim.Schedule
	trail    int
}

func newScene(tr *sim.Trajectory, sched *anim.Schedule, width, height, trail int) *scene {
	c := NewCanvas(width, height)
	xs, ys := tr.Cartesian()
	return &scene{
		canvas:   c,
		view:     NewViewport(c, ViewMin, ViewMax),
		xs:       xs,
		ys:       ys,
		schedule: sched,
		trail:    trail,
	}
}

func (s *scene) draw(frame int) {
	s.canvas.Clear()

	start := frame - s.trail
	if start < 0 {
		start = 0
	}
	for f := start; f < frame; f++ {
		i := s.schedule.SampleIndex(f)
		if !finite(s.xs[i], s.ys[i]) {
			continue
		}
		s.canvas.Set(s.view.Project(s.xs[i], s.ys[i]))
	}

	px, py := s.view.Project(0, 0)
	s.canvas.FillCircle(px, py, 1)

	i := s.schedule.SampleIndex(frame)
	if !finite(s.xs[i], s.ys[i]) {
		return
	}
	bx, by := s.view.Project(s.xs[i], s.ys[i])
	s.canvas.DrawLine(px, py, bx, by)
	s.canvas.FillCircle(bx, by, s.view.Scale(BobRadius))
}

func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
