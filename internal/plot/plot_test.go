package plot

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/pendsim/internal/sim"
)

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

func TestSaveTrajectory(t *testing.T) {
	traj, err := sim.Integrate(sim.DefaultParameters())
	if err != nil {
		t.Fatal(err)
	}

	dir := filepath.Join(t.TempDir(), "out")
	paths, err := SaveTrajectory(dir, traj, Options{Width: 3, Height: 2, DPI: 40})
	if err != nil {
		t.Fatal(err)
	}

	want := []string{AngleFile, AngularVelocityFile, PhaseFile, TipPathFile}
	if len(paths) != len(want) {
		t.Fatalf("expected %d files, got %d", len(want), len(paths))
	}
	for i, name := range want {
		if filepath.Base(paths[i]) != name {
			t.Errorf("file %d = %s, want %s", i, filepath.Base(paths[i]), name)
		}
		data, err := os.ReadFile(paths[i])
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.HasPrefix(data, pngSignature) {
			t.Errorf("%s is not a PNG", name)
		}
	}
}

func TestSaveTrajectoryElapsedAxis(t *testing.T) {
	p := sim.DefaultParameters()
	p.Duration = 1
	traj, err := sim.Integrate(p)
	if err != nil {
		t.Fatal(err)
	}

	opts := Options{Width: 3, Height: 2, DPI: 40, ElapsedAxis: true}
	if _, err := SaveTrajectory(t.TempDir(), traj, opts); err != nil {
		t.Fatal(err)
	}
}

func TestLimitedTicker(t *testing.T) {
	ticks := limitedTicker(5, "%.1f").Ticks(0, 4)
	if len(ticks) != 5 {
		t.Fatalf("expected 5 ticks, got %d", len(ticks))
	}
	if ticks[4].Label != "4.0" {
		t.Errorf("last label = %q", ticks[4].Label)
	}
	if len(limitedTicker(5, "%.1f").Ticks(1, 1)) != 1 {
		t.Error("expected a single tick for a flat range")
	}
}

func TestFinitePoints(t *testing.T) {
	xs := []float64{0, 1, 2, 3, 4}
	ys := []float64{0.1, math.NaN(), 0.3, math.Inf(1), 0.5}

	pts := finitePoints(xs, ys)
	if len(pts) != 3 {
		t.Fatalf("expected 3 finite points, got %d", len(pts))
	}
	if pts[1].X != 2 || pts[1].Y != 0.3 {
		t.Errorf("unexpected point %+v", pts[1])
	}
}

func TestSaveLinePlotDivergedSamples(t *testing.T) {
	dir := t.TempDir()
	opts := Options{Width: 3, Height: 2, DPI: 40}

	xs := []float64{0, 1, 2, 3}
	ys := []float64{0.2, 0.4, math.Inf(1), math.NaN()}
	path := filepath.Join(dir, "partial.png")
	if err := saveLinePlot(path, "Angle", "sample index", "angle (rad)", xs, ys, opts); err != nil {
		t.Fatalf("finite prefix should still plot: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, pngSignature) {
		t.Error("partial plot is not a PNG")
	}

	nan := []float64{math.NaN(), math.NaN()}
	err = saveLinePlot(filepath.Join(dir, "none.png"), "Angle", "x", "y", []float64{0, 1}, nan, opts)
	if err == nil || !strings.Contains(err.Error(), "diverged") {
		t.Errorf("expected divergence error, got %v", err)
	}
}
