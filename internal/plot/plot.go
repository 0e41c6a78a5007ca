// Package plot writes static PNG charts of a trajectory with gonum/plot.
package plot

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/san-kum/pendsim/internal/sim"
)

const (
	AngleFile           = "angle.png"
	AngularVelocityFile = "angular_velocity.png"
	PhaseFile           = "phase.png"
	TipPathFile         = "tip_path.png"
)

type Options struct {
	Width, Height float64 // inches
	DPI           int

	// ElapsedAxis plots against index*dt instead of the sample index.
	ElapsedAxis bool
}

func DefaultOptions() Options {
	return Options{Width: 8, Height: 6, DPI: 150}
}

// SaveTrajectory writes the angle, angular velocity, phase portrait and
// bob path charts into dir and returns the written paths.
func SaveTrajectory(dir string, tr *sim.Trajectory, opts Options) ([]string, error) {
	def := DefaultOptions()
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = def.Width, def.Height
	}
	if opts.DPI <= 0 {
		opts.DPI = def.DPI
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create directory: %w", err)
	}

	axis, xlabel := tr.IndexAxis(), "sample index"
	if opts.ElapsedAxis {
		axis, xlabel = tr.ElapsedAxis(), "time (s)"
	}
	angles := tr.Angles()
	omegas := tr.AngularVelocities()
	xs, ys := tr.Cartesian()

	charts := []struct {
		file, title, xlabel, ylabel string
		xs, ys                      []float64
	}{
		{AngleFile, "Angle", xlabel, "angle (rad)", axis, angles},
		{AngularVelocityFile, "Angular Velocity", xlabel, "angular velocity (rad/s)", axis, omegas},
		{PhaseFile, "Phase Portrait", "angle (rad)", "angular velocity (rad/s)", angles, omegas},
		{TipPathFile, "Bob Path", "x", "y", xs, ys},
	}

	paths := make([]string, 0, len(charts))
	for _, c := range charts {
		path := filepath.Join(dir, c.file)
		if err := saveLinePlot(path, c.title, c.xlabel, c.ylabel, c.xs, c.ys, opts); err != nil {
			return paths, fmt.Errorf("%s: %w", c.file, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func limitedTicker(maxLabels int, labelFmt string) plot.Ticker {
	if maxLabels < 2 {
		maxLabels = 2
	}
	return plot.TickerFunc(func(min, max float64) []plot.Tick {
		if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
			return nil
		}
		if min == max {
			return []plot.Tick{{Value: min, Label: fmt.Sprintf(labelFmt, min)}}
		}
		step := (max - min) / float64(maxLabels-1)
		ticks := make([]plot.Tick, 0, maxLabels)
		for i := 0; i < maxLabels; i++ {
			v := min + float64(i)*step
			ticks = append(ticks, plot.Tick{Value: v, Label: fmt.Sprintf(labelFmt, v)})
		}
		return ticks
	})
}

func stylePlot(p *plot.Plot) {
	p.Title.TextStyle.Font.Size = vg.Points(16)
	p.Title.Padding = vg.Points(8)

	p.X.Label.TextStyle.Font.Size = vg.Points(13)
	p.Y.Label.TextStyle.Font.Size = vg.Points(13)
	p.X.Padding = vg.Points(10)
	p.Y.Padding = vg.Points(10)

	p.X.Tick.Label.Font.Size = vg.Points(11)
	p.Y.Tick.Label.Font.Size = vg.Points(11)

	p.X.Tick.Marker = limitedTicker(8, "%.4g")
	p.Y.Tick.Marker = limitedTicker(8, "%.3g")

	p.Add(plotter.NewGrid())
}

func saveLinePlot(path, title, xlabel, ylabel string, xs, ys []float64, opts Options) error {
	if len(xs) != len(ys) || len(xs) == 0 {
		return fmt.Errorf("plot data invalid")
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	stylePlot(p)

	pts := finitePoints(xs, ys)
	if len(pts) == 0 {
		return fmt.Errorf("trajectory diverged: no finite samples to plot")
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(1.5)
	p.Add(line)

	return savePlotPNG(p, opts, path)
}

// finitePoints pairs xs with ys, dropping samples where either is NaN or
// infinite.
func finitePoints(xs, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, 0, len(xs))
	for i := range xs {
		if !isFinite(xs[i]) || !isFinite(ys[i]) {
			continue
		}
		pts = append(pts, plotter.XY{X: xs[i], Y: ys[i]})
	}
	return pts
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func savePlotPNG(p *plot.Plot, opts Options, path string) (err error) {
	w := vg.Length(opts.Width) * vg.Inch
	h := vg.Length(opts.Height) * vg.Inch

	c := vgimg.NewWith(
		vgimg.UseWH(w, h),
		vgimg.UseDPI(opts.DPI),
	)
	p.Draw(draw.New(c))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create png: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("cannot close png: %w", cerr)
		}
	}()

	bw := bufio.NewWriter(f)
	pngc := vgimg.PngCanvas{Canvas: c}
	if _, err := pngc.WriteTo(bw); err != nil {
		return fmt.Errorf("cannot write png: %w", err)
	}
	return bw.Flush()
}
