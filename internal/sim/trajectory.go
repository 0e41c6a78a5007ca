package sim

import "math"

// Sample is the pendulum state at one step. Time is Index*time_step.
type Sample struct {
	Index           int     `json:"index"`
	Time            float64 `json:"time"`
	Angle           float64 `json:"angle"`
	AngularVelocity float64 `json:"angular_velocity"`
}

// Trajectory is the full, read-only output of one run. Accessors that return
// slices hand out copies.
type Trajectory struct {
	params Parameters
	angles []float64
	omegas []float64
}

func (tr *Trajectory) Len() int { return len(tr.angles) }

func (tr *Trajectory) StepCount() int { return len(tr.angles) - 1 }

func (tr *Trajectory) Parameters() Parameters { return tr.params }

func (tr *Trajectory) At(i int) Sample {
	return Sample{
		Index:           i,
		Time:            float64(i) * tr.params.TimeStep,
		Angle:           tr.angles[i],
		AngularVelocity: tr.omegas[i],
	}
}

func (tr *Trajectory) Final() Sample { return tr.At(tr.Len() - 1) }

func (tr *Trajectory) Samples() []Sample {
	out := make([]Sample, tr.Len())
	for i := range out {
		out[i] = tr.At(i)
	}
	return out
}

func (tr *Trajectory) Angles() []float64 { return cloneFloats(tr.angles) }

func (tr *Trajectory) AngularVelocities() []float64 { return cloneFloats(tr.omegas) }

// IndexAxis returns 0, 1, ..., step_count.
func (tr *Trajectory) IndexAxis() []float64 {
	axis := make([]float64, tr.Len())
	for i := range axis {
		axis[i] = float64(i)
	}
	return axis
}

// ElapsedAxis returns i*time_step for every sample.
func (tr *Trajectory) ElapsedAxis() []float64 {
	axis := make([]float64, tr.Len())
	for i := range axis {
		axis[i] = float64(i) * tr.params.TimeStep
	}
	return axis
}

// Cartesian projects the angles onto a unit rod hanging from the origin.
func (tr *Trajectory) Cartesian() (xs, ys []float64) {
	return Project(tr.angles)
}

// Project maps each angle to x = sin(theta), y = -cos(theta).
func Project(angles []float64) (xs, ys []float64) {
	xs = make([]float64, len(angles))
	ys = make([]float64, len(angles))
	for i, theta := range angles {
		xs[i] = math.Sin(theta)
		ys[i] = -math.Cos(theta)
	}
	return xs, ys
}

func cloneFloats(s []float64) []float64 {
	c := make([]float64, len(s))
	copy(c, s)
	return c
}
