// Package sprite slices sprite sheets into animation frames and derives the
// per-pixel collision masks used by the world.
package sprite

import "image"

// DefaultThreshold is the alpha value a pixel must exceed to count as solid.
const DefaultThreshold = 127

// Mask is a per-pixel solidity bitmap of a frame or surface.
type Mask struct {
	w, h int
	bits []bool
}

// NewMask creates an empty mask.
func NewMask(w, h int) *Mask {
	return &Mask{w: w, h: h, bits: make([]bool, w*h)}
}

// FullMask creates a mask with every pixel solid.
func FullMask(w, h int) *Mask {
	m := NewMask(w, h)
	for i := range m.bits {
		m.bits[i] = true
	}
	return m
}

// MaskFromImage marks every pixel whose alpha exceeds threshold as solid.
// The mask is anchored at the image's bounds minimum.
func MaskFromImage(img image.Image, threshold uint8) *Mask {
	b := img.Bounds()
	m := NewMask(b.Dx(), b.Dy())
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			_, _, _, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			m.bits[y*m.w+x] = uint8(a>>8) > threshold
		}
	}
	return m
}

// Width returns the mask width.
func (m *Mask) Width() int { return m.w }

// Height returns the mask height.
func (m *Mask) Height() int { return m.h }

// Get reports whether (x, y) is solid. Out-of-range pixels are empty.
func (m *Mask) Get(x, y int) bool {
	if x < 0 || x >= m.w || y < 0 || y >= m.h {
		return false
	}
	return m.bits[y*m.w+x]
}

// Set changes the solidity of (x, y). Out-of-range pixels are ignored.
func (m *Mask) Set(x, y int, solid bool) {
	if x < 0 || x >= m.w || y < 0 || y >= m.h {
		return
	}
	m.bits[y*m.w+x] = solid
}

// Count returns the number of solid pixels.
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}
	return n
}

// Overlaps reports whether any solid pixel of m coincides with a solid pixel of
// other when other's origin sits at (dx, dy) in m's coordinates.
func (m *Mask) Overlaps(other *Mask, dx, dy int) bool {
	x0, x1 := max(0, dx), min(m.w, dx+other.w)
	y0, y1 := max(0, dy), min(m.h, dy+other.h)
	if x0 >= x1 || y0 >= y1 {
		return false
	}
	for y := y0; y < y1; y++ {
		row := m.bits[y*m.w : (y+1)*m.w]
		orow := other.bits[(y-dy)*other.w : (y-dy+1)*other.w]
		for x := x0; x < x1; x++ {
			if row[x] && orow[x-dx] {
				return true
			}
		}
	}
	return false
}
