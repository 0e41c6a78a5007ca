package metrics

import (
	"math"

	"github.com/san-kum/pendsim/internal/dynamo"
	"github.com/san-kum/pendsim/internal/physics"
	"github.com/san-kum/pendsim/internal/sim"
)

// EnergySeries evaluates 0.5*omega^2 - (g/L)*cos(theta) at every sample.
func EnergySeries(tr *sim.Trajectory) []float64 {
	p := tr.Parameters()
	pend := physics.NewPendulum(p.RodLength, p.Gravity)
	series := make([]float64, tr.Len())
	for i := range series {
		s := tr.At(i)
		series[i] = pend.Energy(dynamo.State{s.Angle, s.AngularVelocity})
	}
	return series
}

// Monotonic returns +1 if series never decreases, -1 if it never increases,
// and 0 otherwise. A constant series reports +1.
func Monotonic(series []float64) int {
	up, down := true, true
	for i := 1; i < len(series); i++ {
		if series[i] < series[i-1] {
			up = false
		}
		if series[i] > series[i-1] {
			down = false
		}
	}
	switch {
	case up:
		return 1
	case down:
		return -1
	default:
		return 0
	}
}

// DriftBound is an upper estimate of the energy forward Euler adds over a
// run. Near the bottom the scheme scales oscillation energy by 1 + (g/L)dt²
// each step, so over n steps it grows by a factor exp((g/L)*dt*duration);
// the bound doubles that growth to leave room for the nonlinear term.
func DriftBound(p sim.Parameters) float64 {
	k := p.Gravity / p.RodLength
	osc := 0.5*p.InitialAngularVelocity*p.InitialAngularVelocity + k*(1-math.Cos(p.InitialAngle))
	return 2 * osc * math.Expm1(math.Abs(k)*p.TimeStep*p.Duration)
}

type Energy struct {
	name        string
	dyn         dynamo.System
	samples     int
	totalEnergy float64
}

// NewEnergy averages the energy of dyn over every observed sample.
func NewEnergy(dyn dynamo.System) *Energy {
	return &Energy{
		name: "energy",
		dyn:  dyn,
	}
}

func (e *Energy) Name() string { return e.name }

func (e *Energy) Observe(x dynamo.State, t float64) {
	h, ok := e.dyn.(dynamo.Hamiltonian)
	if !ok {
		return
	}
	e.totalEnergy += h.Energy(x)
	e.samples++
}

func (e *Energy) Value() float64 {
	if e.samples == 0 {
		return 0
	}
	return e.totalEnergy / float64(e.samples)
}

func (e *Energy) Reset() {
	e.totalEnergy = 0
	e.samples = 0
}

type EnergyDrift struct {
	name          string
	initialEnergy float64
	maxDrift      float64
	samples       int
	dyn           dynamo.System
}

// NewEnergyDrift tracks the largest |E - E0| seen during a run.
func NewEnergyDrift(dyn dynamo.System) *EnergyDrift {
	return &EnergyDrift{
		name: "energy_drift",
		dyn:  dyn,
	}
}

func (e *EnergyDrift) Name() string { return e.name }

func (e *EnergyDrift) Observe(x dynamo.State, t float64) {
	h, ok := e.dyn.(dynamo.Hamiltonian)
	if !ok {
		return
	}

	energy := h.Energy(x)
	if e.samples == 0 {
		e.initialEnergy = energy
	}
	e.samples++

	e.maxDrift = math.Max(e.maxDrift, math.Abs(energy-e.initialEnergy))
}

func (e *EnergyDrift) Value() float64 {
	return e.maxDrift
}

func (e *EnergyDrift) Reset() {
	e.initialEnergy = 0
	e.maxDrift = 0
	e.samples = 0
}
