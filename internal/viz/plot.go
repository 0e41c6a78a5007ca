package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/pendsim/internal/sim"
)

type PlotOptions struct {
	Width, Height int

	// ElapsedAxis labels the horizontal axis in seconds rather than
	// sample index. asciigraph has no x axis, so only the caption changes.
	ElapsedAxis bool
}

func DefaultPlotOptions() PlotOptions {
	return PlotOptions{Width: 70, Height: 10}
}

// PlotASCII draws the angle and angular velocity as two separate charts.
func PlotASCII(tr *sim.Trajectory, opts PlotOptions) string {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts = DefaultPlotOptions()
	}

	axis := fmt.Sprintf("sample index 0..%d", tr.StepCount())
	if opts.ElapsedAxis {
		axis = fmt.Sprintf("time 0..%.4gs", float64(tr.StepCount())*tr.Parameters().TimeStep)
	}

	var b strings.Builder
	b.WriteString(asciigraph.Plot(tr.Angles(),
		asciigraph.Height(opts.Height),
		asciigraph.Width(opts.Width),
		asciigraph.Caption("angle (rad) vs "+axis)))
	b.WriteString("\n\n")
	b.WriteString(asciigraph.Plot(tr.AngularVelocities(),
		asciigraph.Height(opts.Height),
		asciigraph.Width(opts.Width),
		asciigraph.Caption("angular velocity (rad/s) vs "+axis)))
	b.WriteString("\n")
	return b.String()
}

// EnergyChart plots an energy series compactly, as the animation panel does.
func EnergyChart(series []float64, width, height int) string {
	if len(series) < 2 {
		return ""
	}
	return asciigraph.Plot(series, asciigraph.Height(height), asciigraph.Width(width), asciigraph.Caption("energy"))
}
