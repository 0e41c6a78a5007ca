package viz

import (
	"image"
	"image/color"
	"image/gif"
	"io"

	"github.com/san-kum/pendsim/internal/anim"
	"github.com/san-kum/pendsim/internal/sim"
)

const (
	dotW = 4
	dotH = 4
)

type GIFOptions struct {
	Width, Height int
	Trail         int

	// Delay between frames in hundredths of a second.
	Delay int
}

func DefaultGIFOptions() GIFOptions {
	return GIFOptions{Width: 40, Height: 20, Trail: 40, Delay: 2}
}

// RenderGIF encodes every schedule frame of tr as a looping GIF.
func RenderGIF(w io.Writer, tr *sim.Trajectory, sched *anim.Schedule, opts GIFOptions) error {
	def := DefaultGIFOptions()
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = def.Width, def.Height
	}
	if opts.Delay <= 0 {
		opts.Delay = def.Delay
	}

	sc := newScene(tr, sched, opts.Width, opts.Height, opts.Trail)
	out := gif.GIF{LoopCount: 0}
	for f := 0; f < sched.FrameCount; f++ {
		sc.draw(f)
		out.Image = append(out.Image, rasterize(sc.canvas))
		out.Delay = append(out.Delay, opts.Delay)
	}
	return gif.EncodeAll(w, &out)
}

// rasterize paints each lit braille dot as a dotW x dotH block.
func rasterize(c *Canvas) *image.Paletted {
	imgW, imgH := c.Width*2*dotW, c.Height*4*dotH
	img := image.NewPaletted(image.Rect(0, 0, imgW, imgH), color.Palette{color.Black, color.White})
	for y := 0; y < c.Height*4; y++ {
		for x := 0; x < c.Width*2; x++ {
			if !c.IsSet(x, y) {
				continue
			}
			for py := 0; py < dotH; py++ {
				for px := 0; px < dotW; px++ {
					img.SetColorIndex(x*dotW+px, y*dotH+py, 1)
				}
			}
		}
	}
	return img
}
