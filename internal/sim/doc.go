// Package sim integrates the simple pendulum and materializes the result.
//
// [Integrate] is the pure entry point: it validates [Parameters], runs
// forward Euler for floor(duration/time_step) steps and returns an
// immutable [Trajectory] of step_count+1 samples.
//
//	traj, err := sim.Integrate(sim.DefaultParameters())
//	if err != nil {
//	    return err
//	}
//	xs, ys := traj.Cartesian()
//
// [Simulator] is the general form used when metrics must observe every
// sample or the run must honor a context.
//
// # Time Axis
//
// [Trajectory.IndexAxis] returns sample indices 0..step_count, the default
// plotting axis. [Trajectory.ElapsedAxis] returns index*time_step.
package sim
