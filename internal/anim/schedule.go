// Package anim maps animation frames onto trajectory samples.
package anim

import (
	"fmt"

	"github.com/san-kum/pendsim/internal/dynamo"
	"github.com/san-kum/pendsim/internal/sim"
)

// Schedule decides which sample each animation frame shows. Frames are
// spaced Stride = StepCount / FrameCount samples apart (integer division),
// so trailing samples past FrameCount*Stride are never shown and a frame
// count above the step count pins every frame to sample 0.
type Schedule struct {
	FrameCount int
	StepCount  int
	Stride     int
}

// FrameCount is int(fps * duration).
func FrameCount(fps int, duration float64) (int, error) {
	if fps <= 0 {
		return 0, fmt.Errorf("%w: fps must be positive, got %d", dynamo.ErrFrameCount, fps)
	}
	n := int(float64(fps) * duration)
	if n <= 0 {
		return 0, fmt.Errorf("%w: %d fps over %gs", dynamo.ErrFrameCount, fps, duration)
	}
	return n, nil
}

func NewSchedule(stepCount, fps int, duration float64) (*Schedule, error) {
	frames, err := FrameCount(fps, duration)
	if err != nil {
		return nil, err
	}
	return &Schedule{
		FrameCount: frames,
		StepCount:  stepCount,
		Stride:     stepCount / frames,
	}, nil
}

// ForTrajectory builds the schedule for tr at the given frame rate.
func ForTrajectory(tr *sim.Trajectory, fps int) (*Schedule, error) {
	return NewSchedule(tr.StepCount(), fps, tr.Parameters().Duration)
}

func (s *Schedule) SampleIndex(frame int) int {
	return frame * s.Stride
}

// Indices lists SampleIndex for every frame in order.
func (s *Schedule) Indices() []int {
	out := make([]int, s.FrameCount)
	for j := range out {
		out[j] = s.SampleIndex(j)
	}
	return out
}
