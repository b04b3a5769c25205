// Package term implements a raster.PixelSink backed by an in-memory
// pixel grid, presented to a terminal using the half-block
// double-vertical-resolution technique.
package term

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

// Framebuffer is a row-major pixel grid implementing raster.PixelSink.
// Height is typically 2x the terminal row count, since Draw packs two
// framebuffer rows into one terminal cell via the upper-half-block
// glyph.
type Framebuffer struct {
	Width  int
	Height int
	Pixels []color.RGBA

	cur color.RGBA
}

// NewFramebuffer creates a framebuffer of the given pixel dimensions.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{Width: width, Height: height, Pixels: make([]color.RGBA, width*height)}
}

// ViewportSize implements raster.PixelSink.
func (fb *Framebuffer) ViewportSize() (int, int) { return fb.Width, fb.Height }

// SetColor implements raster.PixelSink.
func (fb *Framebuffer) SetColor(r, g, b uint8) { fb.cur = color.RGBA{R: r, G: g, B: b, A: 255} }

// DrawPoint implements raster.PixelSink.
func (fb *Framebuffer) DrawPoint(x, y int) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	fb.Pixels[y*fb.Width+x] = fb.cur
}

// Clear fills the framebuffer with a solid color.
func (fb *Framebuffer) Clear(c color.RGBA) {
	for i := range fb.Pixels {
		fb.Pixels[i] = c
	}
}

// GetPixel returns the color at (x, y), or transparent black if out of
// bounds.
func (fb *Framebuffer) GetPixel(x, y int) color.RGBA {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return color.RGBA{}
	}
	return fb.Pixels[y*fb.Width+x]
}

// Resize reallocates the pixel grid if the dimensions changed.
func (fb *Framebuffer) Resize(width, height int) {
	if width == fb.Width && height == fb.Height {
		return
	}
	fb.Width, fb.Height = width, height
	fb.Pixels = make([]color.RGBA, width*height)
}

// ToImage converts the framebuffer to a standard Go image.RGBA, useful
// for debugging a frame outside the terminal.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			img.SetRGBA(x, y, fb.Pixels[y*fb.Width+x])
		}
	}
	return img
}

// SavePNG saves the framebuffer as a PNG file.
func (fb *Framebuffer) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, fb.ToImage())
}
