package core

import "fmt"

// Color is a 24-bit RGB value packed as 0xRRGGBB.
// ColorNone marks a cell that keeps the terminal's default color.
type Color int32

// ColorNone means "use the terminal default".
const ColorNone Color = -1

// Colors used by the HUD.
const (
	ColorBlack Color = 0x000000
	ColorWhite Color = 0xffffff
	ColorGray  Color = 0x8a8a8a
	ColorGold  Color = 0xffd75f
)

// RGB packs three 8-bit channels into a Color.
func RGB(r, g, b uint8) Color {
	return Color(int32(r)<<16 | int32(g)<<8 | int32(b))
}

// Channels unpacks the color into its components.
func (c Color) Channels() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Hex returns the "#rrggbb" form used by lipgloss. ColorNone yields "".
func (c Color) Hex() string {
	if c == ColorNone {
		return ""
	}
	r, g, b := c.Channels()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// RGBA implements color.Color. ColorNone is fully transparent.
func (c Color) RGBA() (r, g, b, a uint32) {
	if c == ColorNone {
		return 0, 0, 0, 0
	}
	cr, cg, cb := c.Channels()
	r, g, b = uint32(cr), uint32(cg), uint32(cb)
	return r | r<<8, g | g<<8, b | b<<8, 0xffff
}
