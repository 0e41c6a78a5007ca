// Package physics provides the dynamical system being simulated.
//
// [Pendulum] implements [dynamo.System] for the nonlinear equation
//
//	theta'' = -(g/L) * sin(theta)
//
// with no small-angle linearization. It also implements
// [dynamo.Hamiltonian]:
//
//	dyn := physics.NewPendulum(1.0, physics.StandardGravity)
//	energy := dyn.Energy(dynamo.State{0.2, 0})
package physics
