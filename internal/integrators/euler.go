package integrators

import "github.com/san-kum/pendsim/internal/dynamo"

// Euler is the explicit forward Euler method: every component of the next
// state is built from derivatives evaluated at the current state only.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(dyn dynamo.System, x dynamo.State, t float64, dt float64) dynamo.State {
	dx := dyn.Derive(x, t)
	result := make(dynamo.State, len(x))
	for i := range x {
		// explicit conversion forbids fusing into an FMA
		result[i] = x[i] + float64(dt*dx[i])
	}
	return result
}
