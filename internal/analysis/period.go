package analysis

import (
	"math"

	"github.com/san-kum/pendsim/internal/sim"
)

// SmallAnglePeriod is 2*pi*sqrt(L/g), the linearized pendulum's period.
func SmallAnglePeriod(p sim.Parameters) float64 {
	return 2 * math.Pi * math.Sqrt(p.RodLength/p.Gravity)
}

// ZeroCrossingPeriod estimates the oscillation period from the mean spacing
// of sign changes in the angle, interpolated linearly between samples.
// It returns 0 when the angle crosses zero fewer than twice.
func ZeroCrossingPeriod(tr *sim.Trajectory) float64 {
	dt := tr.Parameters().TimeStep
	crossings := make([]float64, 0)

	prev := tr.At(0).Angle
	for i := 1; i < tr.Len(); i++ {
		cur := tr.At(i).Angle
		if (prev < 0 && cur >= 0) || (prev > 0 && cur <= 0) {
			frac := prev / (prev - cur)
			crossings = append(crossings, (float64(i-1)+frac)*dt)
		}
		prev = cur
	}

	if len(crossings) < 2 {
		return 0
	}
	halfPeriod := (crossings[len(crossings)-1] - crossings[0]) / float64(len(crossings)-1)
	return 2 * halfPeriod
}

// DominantFrequency returns the frequency in Hz of the strongest non-DC bin
// of the angle spectrum.
func DominantFrequency(tr *sim.Trajectory) float64 {
	data := tr.Angles()
	n := len(data)

	ps := PowerSpectrum(data)

	maxPower := 0.0
	maxIdx := 0
	for i := 1; i < len(ps); i++ {
		if ps[i] > maxPower {
			maxPower = ps[i]
			maxIdx = i
		}
	}

	return float64(maxIdx) / (float64(n) * tr.Parameters().TimeStep)
}

// DominantPeriod is the reciprocal of DominantFrequency, or 0 for a flat signal.
func DominantPeriod(tr *sim.Trajectory) float64 {
	f := DominantFrequency(tr)
	if f == 0 {
		return 0
	}
	return 1 / f
}
