package viz

import (
	"math"
	"strings"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const brailleBlank = 0x2800

type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
		}
	}
	return c
}

// Set sets a pixel at (x, y) in sub-pixel coordinates.
// The canvas size in sub-pixels is (Width*2) x (Height*4).
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	subX := x % 2
	subY := y % 4

	c.Grid[row][col] |= rune(pixelMap[subY][subX])
}

// IsSet reports whether the sub-pixel at (x, y) is lit.
func (c *Canvas) IsSet(x, y int) bool {
	if x < 0 || y < 0 || x/2 >= c.Width || y/4 >= c.Height {
		return false
	}
	return c.Grid[y/4][x/2]&rune(pixelMap[y%4][x%2]) != 0
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// FillCircle lights every sub-pixel within r of (cx, cy). The centre is
// always lit, so a circle smaller than one sub-pixel is still visible.
func (c *Canvas) FillCircle(cx, cy int, r float64) {
	c.Set(cx, cy)
	ri := int(math.Ceil(r))
	for dy := -ri; dy <= ri; dy++ {
		for dx := -ri; dx <= ri; dx++ {
			if float64(dx*dx+dy*dy) <= r*r {
				c.Set(cx+dx, cy+dy)
			}
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Viewport maps a square world window [Min, Max] x [Min, Max] onto the
// canvas sub-pixels, centred, with y pointing up.
type Viewport struct {
	Min, Max float64
	scale    float64
	cx, cy   float64
}

func NewViewport(c *Canvas, min, max float64) Viewport {
	cw, ch := float64(c.Width*2), float64(c.Height*4)
	side := math.Min(cw, ch)
	return Viewport{
		Min:   min,
		Max:   max,
		scale: (side - 1) / (max - min),
		cx:    (cw - 1) / 2,
		cy:    (ch - 1) / 2,
	}
}

// Project converts world coordinates to sub-pixel coordinates.
func (v Viewport) Project(x, y float64) (int, int) {
	mid := (v.Min + v.Max) / 2
	px := v.cx + (x-mid)*v.scale
	py := v.cy - (y-mid)*v.scale
	return int(math.Round(px)), int(math.Round(py))
}

// Scale converts a world length to sub-pixels.
func (v Viewport) Scale(d float64) float64 { return d * v.scale }

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
