package viz

import (
	"strings"
	"testing"

	"github.com/san-kum/pendsim/internal/sim"
)

func TestPlotASCII(t *testing.T) {
	traj, err := sim.Integrate(sim.DefaultParameters())
	if err != nil {
		t.Fatal(err)
	}

	out := PlotASCII(traj, DefaultPlotOptions())
	for _, want := range []string{"angle (rad) vs sample index 0..1000", "angular velocity (rad/s) vs sample index 0..1000"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing caption %q", want)
		}
	}

	out = PlotASCII(traj, PlotOptions{Width: 40, Height: 5, ElapsedAxis: true})
	if !strings.Contains(out, "time 0..5s") {
		t.Error("expected elapsed-time caption")
	}
}

func TestEnergyChartShortSeries(t *testing.T) {
	if EnergyChart([]float64{1}, 10, 3) != "" {
		t.Error("expected no chart for a single value")
	}
}

func TestGetTheme(t *testing.T) {
	if GetTheme("ocean").Name != "ocean" {
		t.Error("expected ocean theme")
	}
	if GetTheme("nope").Name != "cyberpunk" {
		t.Error("expected cyberpunk fallback")
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("ThemeNames length mismatch")
	}
}

func TestProgressBar(t *testing.T) {
	if got := ProgressBar(0.5, 10); got != "█████░░░░░" {
		t.Errorf("ProgressBar(0.5, 10) = %q", got)
	}
	if got := ProgressBar(2, 4); got != "████" {
		t.Errorf("ProgressBar(2, 4) = %q", got)
	}
}
