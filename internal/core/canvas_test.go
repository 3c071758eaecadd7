package core

import (
	"image"
	"image/color"
	"testing"
)

func solidImage(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestCanvasBlitRespectsAlpha(t *testing.T) {
	c := NewCanvas(20, 20)
	c.Fill(color.RGBA{G: 200, A: 255})

	sprite := image.NewRGBA(image.Rect(0, 0, 4, 4))
	sprite.Set(1, 1, color.RGBA{R: 255, A: 255})
	c.Blit(sprite, 10, 10)

	if got := c.ColorAt(11, 11); got != RGB(255, 0, 0) {
		t.Errorf("opaque sprite pixel = %06x, expected red", got)
	}
	if got := c.ColorAt(10, 10); got != RGB(0, 200, 0) {
		t.Errorf("transparent sprite pixel should keep background, got %06x", got)
	}
}

func TestCanvasBlitClips(t *testing.T) {
	c := NewCanvas(10, 10)
	c.Fill(color.Black)

	// Partly off the left and bottom edges; must not panic.
	c.Blit(solidImage(8, 8, color.White), -4, 6)

	if got := c.ColorAt(0, 9); got != ColorWhite {
		t.Errorf("clipped blit should cover (0, 9), got %06x", got)
	}
	if got := c.ColorAt(5, 9); got != ColorBlack {
		t.Errorf("clipped blit should end at x=4, got %06x at (5, 9)", got)
	}
	if got := c.ColorAt(-1, 0); got != ColorBlack {
		t.Errorf("out of bounds ColorAt should be black, got %06x", got)
	}
}

func TestColorHex(t *testing.T) {
	if got := RGB(0x12, 0xab, 0xff).Hex(); got != "#12abff" {
		t.Errorf("Hex() = %q, expected #12abff", got)
	}
	if ColorNone.Hex() != "" {
		t.Error("ColorNone should have an empty hex form")
	}
}
