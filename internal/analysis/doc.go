// Package analysis characterizes a finished trajectory.
//
//   - [ZeroCrossingPeriod]: oscillation period from angle sign changes
//   - [DominantFrequency]: strongest frequency of the angle spectrum
//   - [SmallAnglePeriod]: linearized reference period 2*pi*sqrt(L/g)
//   - [NewPhasePortrait]: angle against angular velocity
package analysis
