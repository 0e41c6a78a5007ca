// Package viz renders pendulum trajectories in the terminal.
//
//   - [PlotASCII]: angle and angular velocity charts via asciigraph
//   - [Animation]: Bubble Tea model that replays the trajectory frame by frame
//   - [RenderGIF]: the same frames encoded as an animated GIF
//   - [Canvas]: Braille-based pixel canvas used by both
//
// # Viewport
//
// The bob is drawn at (sin θ, -cos θ) inside a fixed [-2, 2] square window,
// with the pivot at the origin and a bob of radius [BobRadius].
//
// # Key Bindings
//
//	Space/P - Pause/Resume playback
//	Q       - Quit
package viz
