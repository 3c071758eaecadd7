package core

import (
	"image"
	"image/color"
	"image/draw"
)

// Canvas is the full-resolution frame the world composes into every tick.
// Platforms present it either directly (window) or downsampled into a Screen.
type Canvas struct {
	img *image.RGBA
}

// NewCanvas allocates a canvas of the given logical size.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Width returns the canvas width in logical pixels.
func (c *Canvas) Width() int {
	return c.img.Rect.Dx()
}

// Height returns the canvas height in logical pixels.
func (c *Canvas) Height() int {
	return c.img.Rect.Dy()
}

// Fill paints every pixel with a solid color.
func (c *Canvas) Fill(col color.Color) {
	draw.Draw(c.img, c.img.Rect, image.NewUniform(col), image.Point{}, draw.Src)
}

// Blit composites src with its top-left corner at (x, y), respecting alpha.
// Parts that fall outside the canvas are clipped.
func (c *Canvas) Blit(src image.Image, x, y int) {
	sb := src.Bounds()
	dr := image.Rect(x, y, x+sb.Dx(), y+sb.Dy())
	draw.Draw(c.img, dr, src, sb.Min, draw.Over)
}

// ColorAt returns the RGB color at (x, y), ignoring alpha.
// Out-of-bounds coordinates yield black.
func (c *Canvas) ColorAt(x, y int) Color {
	if !(image.Point{X: x, Y: y}).In(c.img.Rect) {
		return ColorBlack
	}
	i := c.img.PixOffset(x, y)
	p := c.img.Pix[i : i+3 : i+3]
	return RGB(p[0], p[1], p[2])
}

// Image exposes the underlying RGBA buffer.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}
