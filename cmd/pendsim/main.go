package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/san-kum/pendsim/internal/config"
)

var (
	configFile string
	preset     string
	logLevel   string

	theta    float64
	omega    float64
	length   float64
	gravity  float64
	duration float64
	dt       float64

	fps      int
	interval int
	trail    int
	theme    string
	gifPath  string

	outDir  string
	seconds bool
	format  string
	outPath string
	addr    string
	force   bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "pendsim"})

func main() {
	rootCmd := &cobra.Command{
		Use:           "pendsim",
		Short:         "simple pendulum simulator (forward Euler)",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := log.ParseLevel(logLevel)
			if err != nil {
				return fmt.Errorf("invalid log level %q: %w", logLevel, err)
			}
			logger.SetLevel(level)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "diagnostic log level (debug, info, warn, error)")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run simulation and print a summary",
		RunE:  runSimulation,
	}
	addSimFlags(runCmd)

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "write PNG plots of angle, angular velocity, phase and bob path",
		RunE:  plotRun,
	}
	addSimFlags(plotCmd)
	plotCmd.Flags().StringVar(&outDir, "out", config.DefaultOutDir, "output directory")
	plotCmd.Flags().BoolVar(&seconds, "seconds", false, "plot against elapsed seconds instead of sample index")

	animateCmd := &cobra.Command{
		Use:   "animate",
		Short: "animate the pendulum in the terminal",
		RunE:  animateRun,
	}
	addSimFlags(animateCmd)
	animateCmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frames per simulated second")
	animateCmd.Flags().IntVar(&interval, "interval", config.DefaultIntervalMs, "redraw interval (ms)")
	animateCmd.Flags().IntVar(&trail, "trail", config.DefaultTrail, "trail length in frames")
	animateCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme")
	animateCmd.Flags().StringVar(&gifPath, "gif", "", "write the frames to a GIF instead of playing them")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "export trajectory data",
		RunE:  exportRun,
	}
	addSimFlags(exportCmd)
	exportCmd.Flags().StringVar(&format, "format", "csv", "output format (csv, json, svg)")
	exportCmd.Flags().StringVar(&outPath, "out", "", "output file (default stdout)")

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "period and frequency analysis",
		RunE:  analyzeRun,
	}
	addSimFlags(analyzeCmd)

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark the integrator over durations and time steps",
		RunE:  benchRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE:  listPresets,
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "serve the simulator over HTTP",
		RunE:  serveRun,
	}
	serveCmd.Flags().StringVar(&addr, "addr", config.DefaultAddr, "listen address")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage configuration files",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the effective configuration as yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE:  configInit,
	}
	addSimFlags(configInitCmd)
	configInitCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(runCmd, plotCmd, animateCmd, exportCmd, analyzeCmd, benchCmd, presetsCmd, serveCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func addSimFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&theta, "theta", config.DefaultTheta, "initial angle (rad)")
	cmd.Flags().Float64Var(&omega, "omega", config.DefaultOmega, "initial angular velocity (rad/s)")
	cmd.Flags().Float64Var(&length, "length", config.DefaultLength, "rod length (m)")
	cmd.Flags().Float64Var(&gravity, "gravity", config.DefaultGravity, "gravitational acceleration (m/s^2)")
	cmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration (s)")
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep (s)")
}

// loadConfig layers the config file, then the preset, then any flag the
// user set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		logger.Debug("loaded config", "path", configFile)
	}

	if preset != "" {
		if err := cfg.ApplyPreset(preset); err != nil {
			return nil, err
		}
		logger.Debug("applied preset", "name", preset)
	}

	flags := cmd.Flags()
	if flags.Changed("theta") {
		cfg.Simulation.Theta = theta
	}
	if flags.Changed("omega") {
		cfg.Simulation.Omega = omega
	}
	if flags.Changed("length") {
		cfg.Simulation.Length = length
	}
	if flags.Changed("gravity") {
		cfg.Simulation.Gravity = gravity
	}
	if flags.Changed("time") {
		cfg.Simulation.Duration = duration
	}
	if flags.Changed("dt") {
		cfg.Simulation.Dt = dt
	}
	if flags.Changed("fps") {
		cfg.Animation.FPS = fps
	}
	if flags.Changed("interval") {
		cfg.Animation.IntervalMs = interval
	}
	if flags.Changed("trail") {
		cfg.Animation.Trail = trail
	}
	if flags.Changed("theme") {
		cfg.Animation.Theme = theme
	}
	if flags.Changed("out") && cmd.Name() == "plot" {
		cfg.Plot.OutDir = outDir
	}
	if flags.Changed("seconds") {
		cfg.Plot.ElapsedAxis = seconds
	}
	if flags.Changed("addr") {
		cfg.Server.Addr = addr
	}
	return cfg, nil
}
