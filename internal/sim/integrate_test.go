package sim_test

import (
	"context"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/pendsim/internal/dynamo"
	"github.com/san-kum/pendsim/internal/metrics"
	"github.com/san-kum/pendsim/internal/physics"
	"github.com/san-kum/pendsim/internal/sim"
)

func relClose(got, want float64) bool {
	scale := math.Max(math.Abs(want), 1)
	return math.Abs(got-want) <= 1e-12*scale
}

var _ = Describe("Integrate", func() {
	var params sim.Parameters

	BeforeEach(func() {
		params = sim.DefaultParameters()
	})

	Context("with the reference parameters", func() {
		var traj *sim.Trajectory

		BeforeEach(func() {
			var err error
			traj, err = sim.Integrate(params)
			Expect(err).NotTo(HaveOccurred())
		})

		It("produces step_count+1 samples", func() {
			Expect(params.StepCount()).To(Equal(1000))
			Expect(traj.Len()).To(Equal(1001))
			Expect(traj.StepCount()).To(Equal(1000))
		})

		It("starts exactly at the initial condition", func() {
			s := traj.At(0)
			Expect(s.Angle).To(Equal(0.2))
			Expect(s.AngularVelocity).To(Equal(0.0))
			Expect(s.Time).To(Equal(0.0))
		})

		It("takes the first step with the old angular velocity", func() {
			s := traj.At(1)
			Expect(s.Angle).To(Equal(0.2))
			Expect(s.AngularVelocity).To(BeNumerically("~", -0.0097414, 1e-6))
			Expect(s.AngularVelocity).To(Equal(-float64(9.80665 * math.Sin(0.2) * 0.005)))
		})

		It("obeys the forward Euler recurrence at every step", func() {
			k := params.Gravity / params.RodLength
			dt := params.TimeStep
			for i := 0; i < traj.StepCount(); i++ {
				cur, next := traj.At(i), traj.At(i+1)
				wantOmega := cur.AngularVelocity - k*math.Sin(cur.Angle)*dt
				wantTheta := cur.Angle + cur.AngularVelocity*dt
				Expect(relClose(next.AngularVelocity, wantOmega)).To(BeTrue(), "omega at step %d", i+1)
				Expect(relClose(next.Angle, wantTheta)).To(BeTrue(), "theta at step %d", i+1)
			}
		})

		It("spaces sample times by time_step", func() {
			Expect(traj.At(10).Time).To(BeNumerically("~", 0.05, 1e-15))
			Expect(traj.Final().Time).To(BeNumerically("~", 5.0, 1e-12))
		})

		It("uses sample indices for the plotting axis", func() {
			axis := traj.IndexAxis()
			Expect(axis).To(HaveLen(1001))
			Expect(axis[0]).To(Equal(0.0))
			Expect(axis[1000]).To(Equal(1000.0))

			elapsed := traj.ElapsedAxis()
			Expect(elapsed[1000]).To(BeNumerically("~", 5.0, 1e-12))
		})

		It("hands out copies of its sequences", func() {
			angles := traj.Angles()
			angles[0] = 42
			Expect(traj.At(0).Angle).To(Equal(0.2))

			omegas := traj.AngularVelocities()
			Expect(omegas).To(HaveLen(traj.Len()))
		})

		It("projects the initial angle onto the unit circle", func() {
			xs, ys := traj.Cartesian()
			Expect(xs).To(HaveLen(traj.Len()))
			Expect(ys).To(HaveLen(traj.Len()))
			Expect(xs[0]).To(BeNumerically("~", 0.19867, 1e-5))
			Expect(ys[0]).To(BeNumerically("~", -0.98007, 1e-5))
		})

		It("is deterministic", func() {
			again, err := sim.Integrate(params)
			Expect(err).NotTo(HaveOccurred())
			Expect(again.Angles()).To(Equal(traj.Angles()))
			Expect(again.AngularVelocities()).To(Equal(traj.AngularVelocities()))
		})
	})

	Context("from rest at the bottom", func() {
		It("stays exactly at the equilibrium", func() {
			params.InitialAngle = 0
			params.InitialAngularVelocity = 0

			traj, err := sim.Integrate(params)
			Expect(err).NotTo(HaveOccurred())
			for _, s := range traj.Samples() {
				Expect(s.Angle).To(Equal(0.0))
				Expect(s.AngularVelocity).To(Equal(0.0))
			}
		})
	})

	Context("energy", func() {
		It("drifts upward monotonically within the step-size bound", func() {
			traj, err := sim.Integrate(params)
			Expect(err).NotTo(HaveOccurred())

			series := metrics.EnergySeries(traj)
			Expect(metrics.Monotonic(series)).To(Equal(1))

			drift := series[len(series)-1] - series[0]
			Expect(drift).To(BeNumerically(">", 0))
			Expect(drift).To(BeNumerically("<", metrics.DriftBound(params)))
		})

		It("drifts less with a smaller step", func() {
			coarse, err := sim.Integrate(params)
			Expect(err).NotTo(HaveOccurred())

			params.TimeStep = 0.0005
			fine, err := sim.Integrate(params)
			Expect(err).NotTo(HaveOccurred())

			coarseSeries := metrics.EnergySeries(coarse)
			fineSeries := metrics.EnergySeries(fine)
			coarseDrift := coarseSeries[len(coarseSeries)-1] - coarseSeries[0]
			fineDrift := fineSeries[len(fineSeries)-1] - fineSeries[0]

			Expect(fineDrift).To(BeNumerically(">", 0))
			Expect(fineDrift).To(BeNumerically("<", coarseDrift/5))
		})
	})

	Context("with large steps", func() {
		It("returns the unstable output without intervening", func() {
			params.InitialAngle = 3.0
			params.TimeStep = 0.5
			params.Duration = 50

			traj, err := sim.Integrate(params)
			Expect(err).NotTo(HaveOccurred())
			Expect(traj.Len()).To(Equal(101))

			overTheTop := false
			for _, a := range traj.Angles() {
				if math.Abs(a) > math.Pi {
					overTheTop = true
					break
				}
			}
			Expect(overTheTop).To(BeTrue())
		})
	})

	DescribeTable("rejects invalid parameters before running",
		func(mutate func(p *sim.Parameters), field string) {
			mutate(&params)

			traj, err := sim.Integrate(params)
			Expect(traj).To(BeNil())
			Expect(err).To(MatchError(dynamo.ErrInvalidParameter))

			var perr *dynamo.ParameterError
			Expect(err).To(BeAssignableToTypeOf(perr))
			Expect(err.(*dynamo.ParameterError).Name).To(Equal(field))
		},
		Entry("zero rod length", func(p *sim.Parameters) { p.RodLength = 0 }, "rod_length"),
		Entry("negative rod length", func(p *sim.Parameters) { p.RodLength = -1 }, "rod_length"),
		Entry("zero time step", func(p *sim.Parameters) { p.TimeStep = 0 }, "time_step"),
		Entry("negative time step", func(p *sim.Parameters) { p.TimeStep = -0.01 }, "time_step"),
		Entry("zero duration", func(p *sim.Parameters) { p.Duration = 0 }, "duration"),
		Entry("negative duration", func(p *sim.Parameters) { p.Duration = -5 }, "duration"),
		Entry("step longer than duration", func(p *sim.Parameters) { p.TimeStep = 6 }, "time_step"),
		Entry("step count overflows int", func(p *sim.Parameters) { p.TimeStep = 1e-300 }, "time_step"),
		Entry("NaN angle", func(p *sim.Parameters) { p.InitialAngle = math.NaN() }, "initial_angle"),
		Entry("infinite velocity", func(p *sim.Parameters) { p.InitialAngularVelocity = math.Inf(1) }, "initial_angular_velocity"),
		Entry("infinite gravity", func(p *sim.Parameters) { p.Gravity = math.Inf(-1) }, "gravity"),
	)
})

type countingMetric struct {
	count int
}

func (c *countingMetric) Name() string                      { return "count" }
func (c *countingMetric) Observe(x dynamo.State, t float64) { c.count++ }
func (c *countingMetric) Value() float64                    { return float64(c.count) }
func (c *countingMetric) Reset()                            { c.count = 0 }

type threeStateSystem struct{}

func (threeStateSystem) Derive(x dynamo.State, t float64) dynamo.State { return dynamo.State{0, 0, 0} }
func (threeStateSystem) StateDim() int                                 { return 3 }

var _ = Describe("Simulator", func() {
	It("observes every sample including the initial condition", func() {
		p := sim.DefaultParameters()
		s := sim.NewPendulum(p)
		m := &countingMetric{}
		s.AddMetric(m)

		result, err := s.Run(context.Background(), p)
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Metrics).To(HaveKeyWithValue("count", 1001.0))
	})

	It("reports the signed energy drift", func() {
		p := sim.DefaultParameters()
		result, err := sim.NewPendulum(p).Run(context.Background(), p)
		Expect(err).NotTo(HaveOccurred())

		series := metrics.EnergySeries(result.Trajectory)
		Expect(result.EnergyDrift).To(BeNumerically("~", series[len(series)-1]-series[0], 1e-12))
	})

	It("attaches the default metrics", func() {
		p := sim.DefaultParameters()
		dyn := physics.NewPendulum(p.RodLength, p.Gravity)
		s := sim.NewPendulum(p)
		for _, m := range metrics.Defaults(dyn) {
			s.AddMetric(m)
		}

		result, err := s.Run(context.Background(), p)
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Metrics).To(HaveKey("energy_drift"))
		Expect(result.Metrics["stability"]).To(Equal(1.0))
		Expect(result.Metrics["peak_angle"]).To(BeNumerically("~", 0.2, 0.05))
	})

	It("returns nothing when the context is already cancelled", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		p := sim.DefaultParameters()
		result, err := sim.NewPendulum(p).Run(ctx, p)
		Expect(err).To(MatchError(context.Canceled))
		Expect(result).To(BeNil())
	})

	It("refuses systems that are not two-dimensional", func() {
		p := sim.DefaultParameters()
		_, err := sim.New(threeStateSystem{}, nil).Run(context.Background(), p)
		Expect(err).To(MatchError(dynamo.ErrInvalidState))
	})
})
