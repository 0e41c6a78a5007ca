package sim

import (
	"math"

	"github.com/san-kum/pendsim/internal/dynamo"
	"github.com/san-kum/pendsim/internal/physics"
)

// Parameters describe one simulation request. Angles are in radians, lengths
// in meters, times in seconds.
type Parameters struct {
	InitialAngle           float64 `json:"initial_angle"`
	InitialAngularVelocity float64 `json:"initial_angular_velocity"`
	RodLength              float64 `json:"rod_length"`
	Gravity                float64 `json:"gravity"`
	Duration               float64 `json:"duration"`
	TimeStep               float64 `json:"time_step"`
}

// DefaultParameters returns the reference run: 0.2 rad released from rest on
// a 1 m rod for 5 s at dt = 5 ms.
func DefaultParameters() Parameters {
	return Parameters{
		InitialAngle:           0.2,
		InitialAngularVelocity: 0,
		RodLength:              1.0,
		Gravity:                physics.StandardGravity,
		Duration:               5,
		TimeStep:               0.005,
	}
}

// StepCount is floor(duration / time_step).
func (p Parameters) StepCount() int {
	return int(p.Duration / p.TimeStep)
}

// Validate reports the first offending field as a *dynamo.ParameterError.
func (p Parameters) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"initial_angle", p.InitialAngle},
		{"initial_angular_velocity", p.InitialAngularVelocity},
		{"rod_length", p.RodLength},
		{"gravity", p.Gravity},
		{"duration", p.Duration},
		{"time_step", p.TimeStep},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return &dynamo.ParameterError{Name: f.name, Value: f.value, Reason: "must be finite"}
		}
	}

	if p.RodLength <= 0 {
		return &dynamo.ParameterError{Name: "rod_length", Value: p.RodLength, Reason: "must be positive"}
	}
	if p.Duration <= 0 {
		return &dynamo.ParameterError{Name: "duration", Value: p.Duration, Reason: "must be positive"}
	}
	if p.TimeStep <= 0 {
		return &dynamo.ParameterError{Name: "time_step", Value: p.TimeStep, Reason: "must be positive"}
	}
	if p.TimeStep > p.Duration {
		return &dynamo.ParameterError{Name: "time_step", Value: p.TimeStep, Reason: "must not exceed duration"}
	}
	if p.Duration/p.TimeStep >= math.MaxInt {
		return &dynamo.ParameterError{Name: "time_step", Value: p.TimeStep, Reason: "step count overflows"}
	}
	return nil
}
