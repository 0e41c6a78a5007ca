package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/pendsim/internal/sim"
)

// PathColor is the stroke WriteSVG uses for the bob path.
const PathColor = "#00ccff"

type Point struct {
	X, Y float64
}

// Points zips two parallel sequences, truncating to the shorter one.
func Points(xs, ys []float64) []Point {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	pts := make([]Point, n)
	for i := 0; i < n; i++ {
		pts[i] = Point{xs[i], ys[i]}
	}
	return pts
}

// TrajectoryToSVG draws points as a single polyline scaled to fit.
func TrajectoryToSVG(points []Point, width, height int, strokeColor string) string {
	if len(points) < 2 {
		return ""
	}

	// Find bounds
	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	// Add padding
	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i, p := range points {
		x := (p.X - minX) / rangeX * float64(width)
		y := float64(height) - (p.Y-minY)/rangeY*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}

// WriteSVG draws the bob path (x, y) of tr.
func WriteSVG(w io.Writer, tr *sim.Trajectory, width, height int) error {
	xs, ys := tr.Cartesian()
	svg := TrajectoryToSVG(Points(xs, ys), width, height, PathColor)
	if svg == "" {
		return fmt.Errorf("svg needs at least two samples, got %d", tr.Len())
	}
	_, err := io.WriteString(w, svg)
	return err
}
