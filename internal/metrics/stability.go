package metrics

import (
	"math"

	"github.com/san-kum/pendsim/internal/dynamo"
)

// Stability is the fraction of samples whose angle stays within threshold.
// With threshold = pi it reports how long the pendulum stayed below the
// pivot before going over the top.
type Stability struct {
	name       string
	threshold  float64
	violations int
	samples    int
}

func NewStability(threshold float64) *Stability {
	return &Stability{
		name:      "stability",
		threshold: threshold,
	}
}

func (s *Stability) Name() string {
	return s.name
}

func (s *Stability) Observe(x dynamo.State, t float64) {
	s.samples++
	if math.Abs(x[0]) > s.threshold {
		s.violations++
	}
}

func (s *Stability) Value() float64 {
	if s.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(s.violations)/float64(s.samples)
}

func (s *Stability) Reset() {
	s.violations = 0
	s.samples = 0
}

// PeakAngle is the largest |theta| observed.
type PeakAngle struct {
	peak float64
}

func NewPeakAngle() *PeakAngle { return &PeakAngle{} }

func (p *PeakAngle) Name() string { return "peak_angle" }

func (p *PeakAngle) Observe(x dynamo.State, t float64) {
	p.peak = math.Max(p.peak, math.Abs(x[0]))
}

func (p *PeakAngle) Value() float64 { return p.peak }

func (p *PeakAngle) Reset() { p.peak = 0 }

// Defaults returns the metrics the CLI attaches to every pendulum run.
func Defaults(dyn dynamo.System) []dynamo.Metric {
	return []dynamo.Metric{
		NewEnergy(dyn),
		NewEnergyDrift(dyn),
		NewStability(math.Pi),
		NewPeakAngle(),
	}
}
