package integrators

import (
	"math"
	"testing"

	"github.com/san-kum/pendsim/internal/dynamo"
	"github.com/san-kum/pendsim/internal/physics"
)

type simpleDynamics struct{}

func (s *simpleDynamics) Derive(x dynamo.State, t float64) dynamo.State {
	return dynamo.State{x[1], -x[0]}
}

func (s *simpleDynamics) StateDim() int { return 2 }

func TestEulerUsesCurrentDerivative(t *testing.T) {
	integ := NewEuler()
	dt := 0.1

	x := integ.Step(&simpleDynamics{}, dynamo.State{1.0, 0.0}, 0, dt)

	// position moves with the old velocity (zero), velocity picks up -x*dt
	if x[0] != 1.0 {
		t.Errorf("position should not move on first step, got %f", x[0])
	}
	if math.Abs(x[1]+dt) > 1e-15 {
		t.Errorf("velocity error: got %f, expected %f", x[1], -dt)
	}
}

func TestEulerPendulumRecurrence(t *testing.T) {
	p := physics.NewPendulum(1.0, physics.StandardGravity)
	integ := NewEuler()
	dt := 0.005

	x := dynamo.State{0.2, 0.0}
	for i := 0; i < 200; i++ {
		next := integ.Step(p, x, float64(i)*dt, dt)

		wantOmega := x[1] - float64((p.Gravity/p.Length)*math.Sin(x[0])*dt)
		wantTheta := x[0] + float64(x[1]*dt)

		if next[1] != wantOmega {
			t.Fatalf("step %d: omega = %.17g, want %.17g", i, next[1], wantOmega)
		}
		if next[0] != wantTheta {
			t.Fatalf("step %d: theta = %.17g, want %.17g", i, next[0], wantTheta)
		}
		x = next
	}
}

func TestEulerEnergyGrowsOnOscillator(t *testing.T) {
	integ := NewEuler()
	dyn := &simpleDynamics{}
	dt := 0.01

	x := dynamo.State{1.0, 0.0}
	energy := func(s dynamo.State) float64 { return 0.5 * (s[0]*s[0] + s[1]*s[1]) }
	prev := energy(x)

	for i := 0; i < 100; i++ {
		x = integ.Step(dyn, x, float64(i)*dt, dt)
		e := energy(x)
		if e <= prev {
			t.Fatalf("step %d: energy did not grow (%f -> %f)", i, prev, e)
		}
		prev = e
	}

	// each step scales the oscillator energy by exactly 1+dt^2
	expected := 0.5 * math.Pow(1+dt*dt, 100)
	if math.Abs(prev-expected) > 1e-12 {
		t.Errorf("expected energy %f, got %f", expected, prev)
	}
}

func TestEulerDoesNotMutateInput(t *testing.T) {
	integ := NewEuler()
	x := dynamo.State{0.5, 0.1}

	integ.Step(&simpleDynamics{}, x, 0, 0.1)

	if x[0] != 0.5 || x[1] != 0.1 {
		t.Errorf("input state mutated: %v", x)
	}
}
