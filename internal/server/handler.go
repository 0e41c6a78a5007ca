package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/san-kum/pendsim/internal/anim"
	"github.com/san-kum/pendsim/internal/config"
	"github.com/san-kum/pendsim/internal/dynamo"
	"github.com/san-kum/pendsim/internal/export"
	"github.com/san-kum/pendsim/internal/metrics"
	"github.com/san-kum/pendsim/internal/sim"
)

// MaxSteps caps the trajectory length a single request may ask for.
const MaxSteps = 1_000_000

type Handler struct {
	cfg    *config.Config
	logger *log.Logger
}

func NewHandler(cfg *config.Config, logger *log.Logger) *Handler {
	return &Handler{cfg: cfg, logger: logger}
}

// SimulateRequest overlays the posted fields onto the configured defaults.
type SimulateRequest struct {
	sim.Parameters
	FPS int `json:"fps"`
}

type ScheduleResponse struct {
	FPS           int   `json:"fps"`
	FrameCount    int   `json:"frame_count"`
	Stride        int   `json:"stride"`
	SampleIndices []int `json:"sample_indices"`
}

type SimulateResponse struct {
	Trajectory  export.Document  `json:"trajectory"`
	Schedule    ScheduleResponse `json:"schedule"`
	EnergyDrift float64          `json:"energy_drift"`
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Simulate integrates the posted parameters.
func (h *Handler) Simulate(c *gin.Context) {
	req := SimulateRequest{
		Parameters: h.cfg.Parameters(),
		FPS:        h.cfg.Animation.FPS,
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p := req.Parameters
	if err := p.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if n := p.StepCount(); n > MaxSteps {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("too many steps: %d > %d", n, MaxSteps)})
		return
	}

	s := sim.NewPendulum(p)
	for _, m := range metrics.Defaults(s.System()) {
		s.AddMetric(m)
	}
	res, err := s.Run(c.Request.Context(), p)
	if err != nil {
		h.logger.Warn("simulation failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	final := res.Trajectory.Final()
	if !(dynamo.State{final.Angle, final.AngularVelocity}).IsValid() {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "trajectory diverged to a non-finite state"})
		return
	}

	sched, err := anim.ForTrajectory(res.Trajectory, req.FPS)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, dynamo.ErrFrameCount) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	h.logger.Debug("simulated", "steps", p.StepCount(), "frames", sched.FrameCount, "drift", res.EnergyDrift)

	c.JSON(http.StatusOK, SimulateResponse{
		Trajectory: export.NewDocument(res.Trajectory, res.Metrics),
		Schedule: ScheduleResponse{
			FPS:           req.FPS,
			FrameCount:    sched.FrameCount,
			Stride:        sched.Stride,
			SampleIndices: sched.Indices(),
		},
		EnergyDrift: res.EnergyDrift,
	})
}

func (h *Handler) ListPresets(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"presets": config.ListPresets()})
}

func (h *Handler) GetPreset(c *gin.Context) {
	name := c.Param("name")
	cfg := config.DefaultConfig()
	if err := cfg.ApplyPreset(name); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"name": name, "parameters": cfg.Parameters()})
}
