package physics

import (
	"math"

	"github.com/san-kum/pendsim/internal/dynamo"
)

// StandardGravity is the conventional value of g in m/s².
const StandardGravity = 9.80665

// Pendulum is a point mass on a rigid massless rod. State is {theta, omega}.
type Pendulum struct {
	Length  float64
	Gravity float64
}

func NewPendulum(length, gravity float64) *Pendulum {
	return &Pendulum{
		Length:  length,
		Gravity: gravity,
	}
}

func (p *Pendulum) StateDim() int {
	return 2
}

func (p *Pendulum) Derive(x dynamo.State, t float64) dynamo.State {
	theta := x[0]
	omega := x[1]

	// g/L is formed first so the acceleration term rounds the same way as
	// omega - (g/L)*sin(theta)*dt.
	alpha := -(p.Gravity / p.Length) * math.Sin(theta)

	return dynamo.State{omega, alpha}
}

// Energy is the specific mechanical energy per unit length squared:
// 0.5*omega^2 - (g/L)*cos(theta).
func (p *Pendulum) Energy(x dynamo.State) float64 {
	return 0.5*x[1]*x[1] - (p.Gravity/p.Length)*math.Cos(x[0])
}
