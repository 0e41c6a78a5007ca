package config

import (
	"sort"

	"github.com/san-kum/pendsim/internal/physics"
)

var Presets = map[string]*SimulationConfig{
	"small": {
		Theta: 0.2, Omega: 0.0, Length: 1.0, Gravity: physics.StandardGravity, Duration: 5.0, Dt: 0.005,
	},
	"large": {
		Theta: 2.5, Omega: 0.0, Length: 1.0, Gravity: physics.StandardGravity, Duration: 10.0, Dt: 0.001,
	},
	"spinning": {
		Theta: 0.1, Omega: 8.0, Length: 1.0, Gravity: physics.StandardGravity, Duration: 10.0, Dt: 0.001,
	},
	"unstable": {
		Theta: 1.0, Omega: 0.0, Length: 0.5, Gravity: physics.StandardGravity, Duration: 20.0, Dt: 0.05,
	},
	"rest": {
		Theta: 0.0, Omega: 0.0, Length: 1.0, Gravity: physics.StandardGravity, Duration: 5.0, Dt: 0.005,
	},
}

func GetPreset(name string) *SimulationConfig {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
