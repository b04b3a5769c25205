package loader

import "image/color"

// rgba8 converts the 16-bit-per-channel values returned by
// image.Color.RGBA() into an 8-bit color.RGBA.
func rgba8(r, g, b, a uint32) color.RGBA {
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}
