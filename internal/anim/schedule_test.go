package anim

import (
	"errors"
	"testing"

	"github.com/san-kum/pendsim/internal/dynamo"
	"github.com/san-kum/pendsim/internal/sim"
)

func TestReferenceSchedule(t *testing.T) {
	traj, err := sim.Integrate(sim.DefaultParameters())
	if err != nil {
		t.Fatal(err)
	}

	s, err := ForTrajectory(traj, 30)
	if err != nil {
		t.Fatalf("schedule failed: %v", err)
	}

	if s.FrameCount != 150 {
		t.Errorf("expected 150 frames, got %d", s.FrameCount)
	}
	// 1000 / 150 truncates to 6
	if s.Stride != 6 {
		t.Errorf("expected stride 6, got %d", s.Stride)
	}
	if got := s.SampleIndex(149); got != 894 {
		t.Errorf("last frame should show sample 894, got %d", got)
	}
}

func TestSampleIndexTruncation(t *testing.T) {
	tests := []struct {
		name     string
		steps    int
		fps      int
		duration float64
		frame    int
		want     int
	}{
		{"exact", 100, 10, 1, 3, 30},
		{"truncated stride", 99, 10, 1, 9, 81},
		{"more frames than steps", 10, 30, 1, 29, 0},
		{"first frame", 1000, 30, 5, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSchedule(tt.steps, tt.fps, tt.duration)
			if err != nil {
				t.Fatal(err)
			}
			if got := s.SampleIndex(tt.frame); got != tt.want {
				t.Errorf("SampleIndex(%d) = %d, want %d", tt.frame, got, tt.want)
			}
		})
	}
}

func TestFrameCount(t *testing.T) {
	n, err := FrameCount(30, 5)
	if err != nil || n != 150 {
		t.Errorf("FrameCount(30, 5) = %d, %v", n, err)
	}

	n, err = FrameCount(30, 0.51)
	if err != nil || n != 15 {
		t.Errorf("FrameCount(30, 0.51) = %d, %v; want 15", n, err)
	}

	if _, err := FrameCount(0, 5); !errors.Is(err, dynamo.ErrFrameCount) {
		t.Errorf("expected ErrFrameCount for zero fps, got %v", err)
	}
	if _, err := FrameCount(30, 0.01); !errors.Is(err, dynamo.ErrFrameCount) {
		t.Errorf("expected ErrFrameCount when frames truncate to zero, got %v", err)
	}
}

func TestIndicesWithinTrajectory(t *testing.T) {
	s, err := NewSchedule(1000, 30, 5)
	if err != nil {
		t.Fatal(err)
	}

	idx := s.Indices()
	if len(idx) != s.FrameCount {
		t.Fatalf("expected %d indices, got %d", s.FrameCount, len(idx))
	}
	for j, i := range idx {
		if i < 0 || i > s.StepCount {
			t.Errorf("frame %d maps outside trajectory: %d", j, i)
		}
	}
}
