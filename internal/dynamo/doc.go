// Package dynamo provides the primitives shared by the pendulum simulator.
//
// The package defines the small set of types every other package speaks:
//
//   - [State]: vector representing system state
//   - [System]: interface for ODE systems (dX/dt = f(X, t))
//   - [Integrator]: fixed-step numerical integrator
//   - [Metric]: per-sample observer that reduces a run to one number
//
// # Errors
//
// Parameter validation failures wrap [ErrInvalidParameter] so callers can
// test for them with errors.Is regardless of which field was rejected:
//
//	_, err := sim.Integrate(p)
//	if errors.Is(err, dynamo.ErrInvalidParameter) {
//	    // refuse to run
//	}
package dynamo
