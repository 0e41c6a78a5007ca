package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/pendsim/internal/physics"
	"github.com/san-kum/pendsim/internal/sim"
)

const (
	DefaultTheta      = 0.2
	DefaultOmega      = 0.0
	DefaultLength     = 1.0
	DefaultGravity    = physics.StandardGravity
	DefaultDuration   = 5.0
	DefaultDt         = 0.005
	DefaultFPS        = 30
	DefaultIntervalMs = 20
	DefaultTrail      = 40
	DefaultTheme      = "cyberpunk"
	DefaultOutDir     = "plots"
	DefaultAddr       = ":8080"
	DefaultFile       = "pendsim.yaml"
)

type Config struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Animation  AnimationConfig  `yaml:"animation"`
	Plot       PlotConfig       `yaml:"plot"`
	Server     ServerConfig     `yaml:"server"`
}

type SimulationConfig struct {
	Theta    float64 `yaml:"theta"`
	Omega    float64 `yaml:"omega"`
	Length   float64 `yaml:"length"`
	Gravity  float64 `yaml:"gravity"`
	Duration float64 `yaml:"duration"`
	Dt       float64 `yaml:"dt"`
}

type AnimationConfig struct {
	FPS        int    `yaml:"fps"`
	IntervalMs int    `yaml:"interval_ms"`
	Trail      int    `yaml:"trail"`
	Theme      string `yaml:"theme"`
}

type PlotConfig struct {
	OutDir string  `yaml:"out_dir"`
	Width  float64 `yaml:"width_in"`
	Height float64 `yaml:"height_in"`
	DPI    int     `yaml:"dpi"`

	// ElapsedAxis plots against index*dt instead of the sample index.
	ElapsedAxis bool `yaml:"elapsed_axis"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

func DefaultConfig() *Config {
	return &Config{
		Simulation: SimulationConfig{
			Theta:    DefaultTheta,
			Omega:    DefaultOmega,
			Length:   DefaultLength,
			Gravity:  DefaultGravity,
			Duration: DefaultDuration,
			Dt:       DefaultDt,
		},
		Animation: AnimationConfig{
			FPS:        DefaultFPS,
			IntervalMs: DefaultIntervalMs,
			Trail:      DefaultTrail,
			Theme:      DefaultTheme,
		},
		Plot: PlotConfig{
			OutDir: DefaultOutDir,
			Width:  8,
			Height: 6,
			DPI:    150,
		},
		Server: ServerConfig{
			Addr: DefaultAddr,
		},
	}
}

// Load overlays the YAML file at path onto DefaultConfig.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Parameters converts the simulation section. It does not validate.
func (c *Config) Parameters() sim.Parameters {
	return sim.Parameters{
		InitialAngle:           c.Simulation.Theta,
		InitialAngularVelocity: c.Simulation.Omega,
		RodLength:              c.Simulation.Length,
		Gravity:                c.Simulation.Gravity,
		Duration:               c.Simulation.Duration,
		TimeStep:               c.Simulation.Dt,
	}
}

// ApplyPreset copies a preset's simulation section over c.
func (c *Config) ApplyPreset(name string) error {
	preset := GetPreset(name)
	if preset == nil {
		return fmt.Errorf("unknown preset: %s (available: %v)", name, ListPresets())
	}
	c.Simulation = *preset
	return nil
}
