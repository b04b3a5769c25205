// Package raster provides the CPU software rasterizer: depth-buffered,
// perspective-correct triangle rasterization with flat or Gouraud
// shading, driven by a single directional light plus an ambient term.
package raster

import (
	"image/color"
	"math"
)

// Texture holds a 2D image for nearest-point sampling. There is no wrap
// mode and no bilinear filtering — coordinates outside [0, 1] are
// clamped to the edge.
type Texture struct {
	Width  int
	Height int
	Pixels []color.RGBA // row-major
}

// NewTexture creates an empty texture with the given dimensions.
func NewTexture(width, height int) *Texture {
	return &Texture{
		Width:  width,
		Height: height,
		Pixels: make([]color.RGBA, width*height),
	}
}

// SetPixel sets a pixel, bounds-checked.
func (t *Texture) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || x >= t.Width || y < 0 || y >= t.Height {
		return
	}
	t.Pixels[y*t.Width+x] = c
}

// Sample returns the nearest texel for UV coordinates in [0, 1],
// clamping out-of-range coordinates to the edge.
func (t *Texture) Sample(u, v float64) color.RGBA {
	if t.Width == 0 || t.Height == 0 {
		return color.RGBA{}
	}

	x := int(math.Floor(u * float64(t.Width)))
	y := int(math.Floor(v * float64(t.Height)))

	if x < 0 {
		x = 0
	} else if x >= t.Width {
		x = t.Width - 1
	}
	if y < 0 {
		y = 0
	} else if y >= t.Height {
		y = t.Height - 1
	}

	return t.Pixels[y*t.Width+x]
}
