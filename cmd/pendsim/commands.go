package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/pendsim/internal/analysis"
	"github.com/san-kum/pendsim/internal/anim"
	"github.com/san-kum/pendsim/internal/config"
	"github.com/san-kum/pendsim/internal/export"
	"github.com/san-kum/pendsim/internal/metrics"
	"github.com/san-kum/pendsim/internal/plot"
	"github.com/san-kum/pendsim/internal/server"
	"github.com/san-kum/pendsim/internal/sim"
	"github.com/san-kum/pendsim/internal/viz"
)

// simulate runs the configured pendulum with the default metrics attached.
func simulate(ctx context.Context, cfg *config.Config) (*sim.Result, error) {
	p := cfg.Parameters()
	s := sim.NewPendulum(p)
	for _, m := range metrics.Defaults(s.System()) {
		s.AddMetric(m)
	}

	logger.Debug("simulating", "steps", p.StepCount(), "dt", p.TimeStep)
	start := time.Now()
	res, err := s.Run(ctx, p)
	if err != nil {
		return nil, err
	}
	logger.Info("simulation complete", "elapsed", time.Since(start))
	return res, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	res, err := simulate(ctx, cfg)
	if err != nil {
		return err
	}

	styles := viz.NewStyles(viz.GetTheme(cfg.Animation.Theme))
	fmt.Println(styles.Header.Render("pendulum run"))
	if err := printSummary(os.Stdout, res); err != nil {
		return err
	}
	fmt.Println()
	fmt.Print(viz.PlotASCII(res.Trajectory, viz.PlotOptions{
		Width:       70,
		Height:      10,
		ElapsedAxis: cfg.Plot.ElapsedAxis,
	}))
	return nil
}

func printSummary(out io.Writer, res *sim.Result) error {
	tr := res.Trajectory
	p := tr.Parameters()
	final := tr.Final()

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "steps\t%d\n", tr.StepCount())
	fmt.Fprintf(w, "samples\t%d\n", tr.Len())
	fmt.Fprintf(w, "final time\t%.4fs\n", final.Time)
	fmt.Fprintf(w, "final angle\t%.6f rad\n", final.Angle)
	fmt.Fprintf(w, "final angular velocity\t%.6f rad/s\n", final.AngularVelocity)
	fmt.Fprintf(w, "energy drift\t%+.6e\n", res.EnergyDrift)
	fmt.Fprintf(w, "drift bound\t%.6e\n", metrics.DriftBound(p))

	names := make([]string, 0, len(res.Metrics))
	for name := range res.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "%s\t%.6f\n", name, res.Metrics[name])
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	res, err := simulate(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	paths, err := plot.SaveTrajectory(cfg.Plot.OutDir, res.Trajectory, plot.Options{
		Width:       cfg.Plot.Width,
		Height:      cfg.Plot.Height,
		DPI:         cfg.Plot.DPI,
		ElapsedAxis: cfg.Plot.ElapsedAxis,
	})
	if err != nil {
		return err
	}
	for _, path := range paths {
		fmt.Println(path)
	}
	return nil
}

func animateRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	res, err := simulate(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	sched, err := anim.ForTrajectory(res.Trajectory, cfg.Animation.FPS)
	if err != nil {
		return err
	}
	logger.Debug("schedule", "frames", sched.FrameCount, "stride", sched.Stride)

	if gifPath != "" {
		opts := viz.DefaultGIFOptions()
		opts.Trail = cfg.Animation.Trail
		if cfg.Animation.IntervalMs >= 10 {
			opts.Delay = cfg.Animation.IntervalMs / 10
		}
		err := writeFile(gifPath, func(w io.Writer) error {
			return viz.RenderGIF(w, res.Trajectory, sched, opts)
		})
		if err != nil {
			return err
		}
		fmt.Printf("wrote %d frames to %s\n", sched.FrameCount, gifPath)
		return nil
	}

	opts := viz.DefaultAnimationOptions()
	opts.Interval = time.Duration(cfg.Animation.IntervalMs) * time.Millisecond
	opts.Trail = cfg.Animation.Trail
	opts.Theme = viz.GetTheme(cfg.Animation.Theme)
	return viz.RunAnimation(res.Trajectory, sched, opts)
}

func exportRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	res, err := simulate(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	var write func(io.Writer) error
	switch format {
	case "csv":
		write = func(w io.Writer) error { return export.WriteCSV(w, res.Trajectory) }
	case "json":
		write = func(w io.Writer) error { return export.WriteJSON(w, res.Trajectory, res.Metrics) }
	case "svg":
		write = func(w io.Writer) error { return export.WriteSVG(w, res.Trajectory, 600, 600) }
	default:
		return fmt.Errorf("unknown format: %s (available: csv, json, svg)", format)
	}

	if outPath == "" {
		return write(os.Stdout)
	}
	if err := writeFile(outPath, write); err != nil {
		return err
	}
	logger.Info("exported", "format", format, "path", outPath)
	return nil
}

// writeFile creates path and runs write against it. A failed close is
// returned like any other write error.
func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	return write(f)
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	res, err := simulate(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	tr := res.Trajectory

	ps := analysis.PowerSpectrum(tr.Angles())
	if len(ps) > 8 {
		plotData := ps[:len(ps)/4]
		fmt.Println(asciigraph.Plot(plotData,
			asciigraph.Height(12),
			asciigraph.Width(70),
			asciigraph.Caption("power spectrum (angle)"),
		))
		fmt.Println()
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "small-angle period\t%.4f s\n", analysis.SmallAnglePeriod(tr.Parameters()))
	if period := analysis.ZeroCrossingPeriod(tr); period > 0 {
		fmt.Fprintf(w, "zero-crossing period\t%.4f s\n", period)
	} else {
		fmt.Fprintln(w, "zero-crossing period\tn/a")
	}
	if f := analysis.DominantFrequency(tr); f > 0 {
		fmt.Fprintf(w, "dominant frequency\t%.3f hz\n", f)
		fmt.Fprintf(w, "dominant period\t%.4f s\n", analysis.DominantPeriod(tr))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("phase portrait (angle vs angular velocity):")
	fmt.Print(analysis.PhasePortraitToASCII(analysis.NewPhasePortrait(tr), 60, 20))
	return nil
}

func benchRun(cmd *cobra.Command, args []string) error {
	durations := []float64{1.0, 5.0, 10.0}
	dts := []float64{0.0001, 0.001, 0.01}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DURATION\tDT\tSTEPS\tTIME\tSTEPS/SEC\tDRIFT")

	for _, dur := range durations {
		for _, step := range dts {
			p := sim.DefaultParameters()
			p.Duration = dur
			p.TimeStep = step

			start := time.Now()
			res, err := sim.NewPendulum(p).Run(cmd.Context(), p)
			if err != nil {
				return err
			}
			elapsed := time.Since(start)

			steps := res.Trajectory.StepCount()
			stepsPerSec := float64(steps) / elapsed.Seconds()

			fmt.Fprintf(w, "%.1fs\t%.4fs\t%d\t%v\t%.0f\t%.3e\n",
				dur, step, steps, elapsed, stepsPerSec, res.EnergyDrift)
		}
	}

	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTHETA\tOMEGA\tLENGTH\tDURATION\tDT")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%.3f\t%.3f\t%.2f\t%.1fs\t%.4fs\n",
			name, p.Theta, p.Omega, p.Length, p.Duration, p.Dt)
	}
	return w.Flush()
}

func serveRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if logger.GetLevel() > log.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	return server.Serve(ctx, cfg.Server.Addr, server.NewRouter(cfg, logger), logger)
}

func configInit(cmd *cobra.Command, args []string) error {
	path := config.DefaultFile
	if len(args) > 0 {
		path = args[0]
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := initConfig(path, cfg, force); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}

// initConfig saves cfg to path. An existing file is kept unless overwrite is
// set.
func initConfig(path string, cfg *config.Config, overwrite bool) error {
	if err := cfg.Parameters().Validate(); err != nil {
		return err
	}
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}
	return config.Save(path, cfg)
}
