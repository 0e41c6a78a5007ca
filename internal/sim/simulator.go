package sim

import (
	"context"
	"fmt"

	"github.com/san-kum/pendsim/internal/dynamo"
	"github.com/san-kum/pendsim/internal/integrators"
	"github.com/san-kum/pendsim/internal/physics"
)

// ctxCheckInterval is how many steps run between context polls.
const ctxCheckInterval = 1024

type Simulator struct {
	dyn        dynamo.System
	integrator dynamo.Integrator
	metrics    []dynamo.Metric
}

type Result struct {
	Trajectory  *Trajectory
	Metrics     map[string]float64
	EnergyDrift float64
}

func New(dyn dynamo.System, integrator dynamo.Integrator) *Simulator {
	return &Simulator{
		dyn:        dyn,
		integrator: integrator,
		metrics:    make([]dynamo.Metric, 0),
	}
}

// NewPendulum wires the pendulum system to forward Euler.
func NewPendulum(p Parameters) *Simulator {
	return New(physics.NewPendulum(p.RodLength, p.Gravity), integrators.NewEuler())
}

func (s *Simulator) AddMetric(m dynamo.Metric) { s.metrics = append(s.metrics, m) }

func (s *Simulator) System() dynamo.System { return s.dyn }

// Integrate runs forward Euler on a fresh pendulum.
func Integrate(p Parameters) (*Trajectory, error) {
	result, err := NewPendulum(p).Run(context.Background(), p)
	if err != nil {
		return nil, err
	}
	return result.Trajectory, nil
}

// Run validates p, then fills the whole trajectory. A cancelled context
// aborts the run without returning partial output.
func (s *Simulator) Run(ctx context.Context, p Parameters) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if s.dyn.StateDim() != 2 {
		return nil, fmt.Errorf("%w: system has %d state variables, want 2", dynamo.ErrInvalidState, s.dyn.StateDim())
	}

	steps := p.StepCount()
	dt := p.TimeStep
	traj := &Trajectory{
		params: p,
		angles: make([]float64, steps+1),
		omegas: make([]float64, steps+1),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	x := dynamo.State{p.InitialAngle, p.InitialAngularVelocity}
	traj.angles[0], traj.omegas[0] = x[0], x[1]
	s.observe(x, 0)

	for i := 0; i < steps; i++ {
		if i%ctxCheckInterval == 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}
		}

		t := float64(i) * dt
		x = s.integrator.Step(s.dyn, x, t, dt)
		traj.angles[i+1], traj.omegas[i+1] = x[0], x[1]
		s.observe(x, t+dt)
	}

	result := &Result{
		Trajectory: traj,
		Metrics:    make(map[string]float64, len(s.metrics)),
	}
	if h, ok := s.dyn.(dynamo.Hamiltonian); ok {
		x0 := dynamo.State{traj.angles[0], traj.omegas[0]}
		result.EnergyDrift = h.Energy(x) - h.Energy(x0)
	}
	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

func (s *Simulator) observe(x dynamo.State, t float64) {
	for _, m := range s.metrics {
		m.Observe(x, t)
	}
}
